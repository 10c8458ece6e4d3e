package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"budgetdash/internal/middleware"
)

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Budget    *BudgetHandler
	Expense   *ExpenseHandler
	Goal      *GoalHandler
}

// NewRouter builds the Gin engine with middleware and all API routes.
func NewRouter(h Handlers, sessions middleware.SessionProvider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/status", h.Auth.Status)

	// The goal lives in the local store and needs no session.
	v1.GET("/goal", h.Goal.GetGoal)
	v1.PUT("/goal", h.Goal.SaveGoal)
	v1.POST("/goal/calculate", h.Goal.CalculateGoal)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.RequireSession(sessions))

	protected.GET("/profile", h.Auth.GetProfile)
	protected.GET("/dashboard", h.Dashboard.GetDashboard)
	protected.GET("/budget", h.Budget.GetBudget)
	protected.POST("/budget", h.Budget.SetBudget)
	protected.GET("/expenses", h.Expense.ListExpenses)
	protected.POST("/expenses", h.Expense.CreateExpense)

	return router
}

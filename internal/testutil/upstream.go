package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// FakeUpstream is an in-process budget service. It keeps budgets and
// expenses per month and accepts a single bearer token.
type FakeUpstream struct {
	*httptest.Server

	mu       sync.Mutex
	token    string
	users    map[string]string
	budgets  map[string]gin.H
	expenses map[string][]gin.H
	nextID   int
	requests []string
}

// NewFakeUpstream starts a fake budget service that issues token on login.
// It is closed when the test ends.
func NewFakeUpstream(t *testing.T, token string) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{
		token:    token,
		users:    map[string]string{},
		budgets:  map[string]gin.H{},
		expenses: map[string][]gin.H{},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(f.record)
	r.POST("/auth/login", f.login)
	r.POST("/auth/register", f.register)

	authed := r.Group("", f.authorize)
	authed.GET("/users/profile", f.profile)
	authed.GET("/budget", f.getBudget)
	authed.POST("/budget", f.setBudget)
	authed.GET("/expenses", f.getExpenses)
	authed.POST("/expenses", f.createExpense)

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Close)
	return f
}

// AddUser registers an account that can log in.
func (f *FakeUpstream) AddUser(username, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = password
}

// PutBudget stores the budget for month. A nil spent omits spentAmount.
func (f *FakeUpstream) PutBudget(month string, limit, spent any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	b := gin.H{"id": f.nextID, "month": month, "limitAmount": limit}
	if spent != nil {
		b["spentAmount"] = spent
	}
	f.budgets[month] = b
}

// PutExpense appends an expense to month.
func (f *FakeUpstream) PutExpense(month, description, category string, amount any, date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.expenses[month] = append(f.expenses[month], gin.H{
		"id":          f.nextID,
		"description": description,
		"category":    category,
		"amount":      amount,
		"date":        date,
		"month":       month,
	})
}

// RevokeToken makes every authenticated call fail with 401.
func (f *FakeUpstream) RevokeToken() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
}

// Requests returns "METHOD /path" for every call received so far.
func (f *FakeUpstream) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

func (f *FakeUpstream) record(c *gin.Context) {
	f.mu.Lock()
	f.requests = append(f.requests, c.Request.Method+" "+c.Request.URL.Path)
	f.mu.Unlock()
	c.Next()
}

func (f *FakeUpstream) authorize(c *gin.Context) {
	f.mu.Lock()
	ok := f.token != "" && c.GetHeader("Authorization") == "Bearer "+f.token
	f.mu.Unlock()
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.Next()
}

func (f *FakeUpstream) login(c *gin.Context) {
	var body struct{ Username, Password string }
	_ = c.ShouldBindJSON(&body)

	f.mu.Lock()
	defer f.mu.Unlock()
	if pw, ok := f.users[body.Username]; !ok || pw != body.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": f.token})
}

func (f *FakeUpstream) register(c *gin.Context) {
	var body struct{ Username, Email, Password string }
	_ = c.ShouldBindJSON(&body)

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[body.Username]; exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	}
	f.users[body.Username] = body.Password
	c.String(http.StatusOK, "User registered successfully")
}

func (f *FakeUpstream) profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"id": 1, "username": "alice", "email": "alice@example.com"})
}

func (f *FakeUpstream) getBudget(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.budgets[c.Query("month")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Budget not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

func (f *FakeUpstream) setBudget(c *gin.Context) {
	limit, err := strconv.ParseFloat(c.Query("limitAmount"), 64)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid limit"})
		return
	}
	month := c.Query("month")
	f.PutBudget(month, limit, 0)

	f.mu.Lock()
	defer f.mu.Unlock()
	c.JSON(http.StatusOK, f.budgets[month])
}

func (f *FakeUpstream) getExpenses(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.expenses[c.Query("month")]
	if list == nil {
		list = []gin.H{}
	}
	c.JSON(http.StatusOK, list)
}

func (f *FakeUpstream) createExpense(c *gin.Context) {
	var body struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Date        string  `json:"date"`
		Month       string  `json:"month"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expense"})
		return
	}
	f.PutExpense(body.Month, body.Description, body.Category, body.Amount, body.Date)

	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.expenses[body.Month]
	c.JSON(http.StatusOK, list[len(list)-1])
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetdash/internal/logger"
	"budgetdash/internal/models"
	"budgetdash/internal/pagination"
	"budgetdash/internal/services"
	"budgetdash/internal/session"
	"budgetdash/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// --- mock services ---

type mockAuthService struct {
	loginFn    func(ctx context.Context, creds models.Credentials) (*models.AuthStatus, error)
	registerFn func(ctx context.Context, reg models.Registration) error
	logoutFn   func(ctx context.Context) error
	profileFn  func(ctx context.Context) (*models.Profile, error)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (*models.AuthStatus, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, creds)
	}
	return &models.AuthStatus{Authenticated: true, Username: creds.Username}, nil
}

func (m *mockAuthService) Register(ctx context.Context, reg models.Registration) error {
	if m.registerFn != nil {
		return m.registerFn(ctx, reg)
	}
	return nil
}

func (m *mockAuthService) Logout(ctx context.Context) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx)
	}
	return nil
}

func (m *mockAuthService) Status(context.Context) *models.AuthStatus {
	return &models.AuthStatus{}
}

func (m *mockAuthService) Profile(ctx context.Context) (*models.Profile, error) {
	if m.profileFn != nil {
		return m.profileFn(ctx)
	}
	return &models.Profile{}, nil
}

var _ services.AuthServicer = (*mockAuthService)(nil)

type mockViewport struct {
	showFn func(ctx context.Context, month models.MonthKey) (*models.Dashboard, error)
}

func (m *mockViewport) Show(ctx context.Context, month models.MonthKey) (*models.Dashboard, error) {
	return m.showFn(ctx, month)
}

func (m *mockViewport) Current() (*models.Dashboard, bool) { return nil, false }

func (m *mockViewport) Selected() models.MonthKey { return "" }

var _ services.ViewportServicer = (*mockViewport)(nil)

type mockBudgetService struct {
	getBudgetFn func(ctx context.Context, month models.MonthKey) (*models.BudgetView, error)
	setBudgetFn func(ctx context.Context, input models.BudgetInput) (*models.Budget, error)
}

func (m *mockBudgetService) GetBudget(ctx context.Context, month models.MonthKey) (*models.BudgetView, error) {
	if m.getBudgetFn != nil {
		return m.getBudgetFn(ctx, month)
	}
	return &models.BudgetView{Month: month}, nil
}

func (m *mockBudgetService) SetBudget(ctx context.Context, input models.BudgetInput) (*models.Budget, error) {
	if m.setBudgetFn != nil {
		return m.setBudgetFn(ctx, input)
	}
	return &models.Budget{Month: input.Month, LimitAmount: models.NewAmount(input.LimitAmount)}, nil
}

var _ services.BudgetServicer = (*mockBudgetService)(nil)

type mockExpenseService struct {
	listFn   func(ctx context.Context, month models.MonthKey, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	createFn func(ctx context.Context, input models.NewExpense) (*models.Expense, error)
}

func (m *mockExpenseService) ListExpenses(ctx context.Context, month models.MonthKey, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.listFn != nil {
		return m.listFn(ctx, month, page)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) CreateExpense(ctx context.Context, input models.NewExpense) (*models.Expense, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return &models.Expense{}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

type mockGoalService struct {
	getFn       func(ctx context.Context) (*models.GoalState, error)
	saveFn      func(ctx context.Context, input models.GoalInput) (*models.GoalState, error)
	calculateFn func(input models.GoalInput) (*models.GoalState, error)
}

func (m *mockGoalService) GetGoal(ctx context.Context) (*models.GoalState, error) {
	if m.getFn != nil {
		return m.getFn(ctx)
	}
	return &models.GoalState{}, nil
}

func (m *mockGoalService) SaveGoal(ctx context.Context, input models.GoalInput) (*models.GoalState, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, input)
	}
	return &models.GoalState{GoalAmount: input.GoalAmount, SavedAmount: input.SavedAmount}, nil
}

func (m *mockGoalService) CalculateGoal(input models.GoalInput) (*models.GoalState, error) {
	if m.calculateFn != nil {
		return m.calculateFn(input)
	}
	return &models.GoalState{}, nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

// --- helpers ---

func injectSession(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.Session{Token: "test-token", Username: username}
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Set("username", username)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

func errorFields(t *testing.T, result map[string]interface{}) map[string]interface{} {
	t.Helper()
	errObj, _ := result["error"].(map[string]interface{})
	fields, ok := errObj["fields"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected field messages, got: %v", result)
	}
	return fields
}

package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"budgetdash/internal/app"
	"budgetdash/internal/client"
	"budgetdash/internal/handlers"
	"budgetdash/internal/logger"
	"budgetdash/internal/storage"
	"budgetdash/internal/testutil"
	"budgetdash/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Upstream *testutil.FakeUpstream
	Router   *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite store and a fake budget service.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	up := testutil.NewFakeUpstream(t, "integration-token")
	up.AddUser("alice", "secret1")

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	a, err := app.Wire(storage.NewStore(db), client.NewBudgetClient(up.URL, client.NewHTTPClient(5*time.Second)), "integration-secret")
	if err != nil {
		t.Fatalf("failed to wire app: %v", err)
	}

	return &testApp{Upstream: up, Router: handlers.NewRouter(a.Handlers(), a.Sessions)}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login(t *testing.T) {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/api/v1/auth/login", `{"username":"alice","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func errorCode(result map[string]interface{}) string {
	errObj, _ := result["error"].(map[string]interface{})
	code, _ := errObj["code"].(string)
	return code
}

func summaryOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	s, ok := parseJSON(t, rec)["summary"].(map[string]interface{})
	if !ok {
		t.Fatalf("missing summary: %s", rec.Body.String())
	}
	return s
}

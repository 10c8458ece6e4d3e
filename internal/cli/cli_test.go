package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"budgetdash/internal/app"
	"budgetdash/internal/client"
	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/logger"
	"budgetdash/internal/storage"
	"budgetdash/internal/testutil"
	"budgetdash/internal/validator"
)

func init() {
	logger.Init("test")
	validator.Register()
}

type harness struct {
	t   *testing.T
	up  *testutil.FakeUpstream
	svc *Services
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	up := testutil.NewFakeUpstream(t, "cli-token")
	up.AddUser("alice", "secret1")

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	a, err := app.Wire(storage.NewStore(db), client.NewBudgetClient(up.URL, client.NewHTTPClient(5*time.Second)), "cli-test-secret")
	if err != nil {
		t.Fatalf("failed to wire services: %v", err)
	}
	return &harness{t: t, up: up, svc: &Services{
		Sessions: a.Sessions,
		Auth:     a.Auth,
		Viewport: a.Viewport,
		Budgets:  a.Budgets,
		Expenses: a.Expenses,
		Goals:    a.Goals,
	}}
}

func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(h.svc)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, _, err := h.run(args...)
	if err != nil {
		h.t.Fatalf("budget %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestLoginAndWhoami(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("login", "-u", "alice", "-p", "secret1")
	if !strings.Contains(out, "Signed in as alice") {
		t.Errorf("unexpected login output %q", out)
	}

	out = h.mustRun("whoami")
	if !strings.Contains(out, "alice@example.com") {
		t.Errorf("unexpected whoami output %q", out)
	}

	h.mustRun("logout")
	if _, _, err := h.run("summary"); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Errorf("expected unauthenticated after logout, got %v", err)
	}
}

func TestLoginRejected(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("login", "-u", "alice", "-p", "wrong")
	testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
}

func TestSummaryExceeded(t *testing.T) {
	h := newHarness(t)
	h.up.PutBudget("2026-03", 1000, 0)
	h.up.PutExpense("2026-03", "Rent", "Housing", 1200, "2026-03-01")
	h.mustRun("login", "-u", "alice", "-p", "secret1")

	out := h.mustRun("summary", "--month", "2026-03")
	for _, want := range []string{"March 2026", "1200.00 (computed)", "-200.00", "Budget exceeded! Overspent by 200.00.", "Housing", "Not enough data"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryNoBudget(t *testing.T) {
	h := newHarness(t)
	h.up.PutExpense("2026-04", "Groceries", "Food", 50, "2026-04-02")
	h.mustRun("login", "-u", "alice", "-p", "secret1")

	out := h.mustRun("summary", "-m", "2026-04")
	if !strings.Contains(out, "not set") {
		t.Errorf("expected no budget output:\n%s", out)
	}
}

func TestSessionRevoked(t *testing.T) {
	h := newHarness(t)
	h.mustRun("login", "-u", "alice", "-p", "secret1")
	h.up.RevokeToken()

	_, _, err := h.run("budget", "show", "-m", "2026-03")
	testutil.AssertAppError(t, err, "UNAUTHENTICATED")

	// The stored token was dropped, so the next command fails locally.
	before := len(h.up.Requests())
	_, _, err = h.run("expense", "list")
	testutil.AssertAppError(t, err, "UNAUTHENTICATED")
	if len(h.up.Requests()) != before {
		t.Error("no request should reach the budget service without a session")
	}
}

func TestBudgetSetAndShow(t *testing.T) {
	h := newHarness(t)
	h.mustRun("login", "-u", "alice", "-p", "secret1")

	out := h.mustRun("budget", "set", "-m", "2026-05", "-l", "2500")
	if !strings.Contains(out, "May 2026 set to 2500.00") {
		t.Errorf("unexpected output %q", out)
	}

	out = h.mustRun("budget", "show", "-m", "2026-05")
	if !strings.Contains(out, "2500.00") {
		t.Errorf("unexpected output %q", out)
	}

	_, _, err := h.run("budget", "set", "-m", "2026-05", "-l", "0")
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")

	_, _, err = h.run("budget", "set", "-m", "2026-05", "-l", "many")
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")
}

func TestExpenseAddAndList(t *testing.T) {
	h := newHarness(t)
	h.mustRun("login", "-u", "alice", "-p", "secret1")

	out := h.mustRun("expense", "add", "-d", "Bus pass", "-a", "45.5", "-c", "Transport", "--date", "2026-06-03")
	if !strings.Contains(out, "Recorded 45.50 for Transport on 2026-06-03") {
		t.Errorf("unexpected output %q", out)
	}

	out = h.mustRun("expense", "list", "-m", "2026-06")
	if !strings.Contains(out, "Bus pass") || !strings.Contains(out, "Page 1 of 1 (1 expenses)") {
		t.Errorf("unexpected list output:\n%s", out)
	}

	_, _, err := h.run("expense", "add", "-a", "10", "-c", "Snacks", "--date", "2026-06-03")
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")
}

func TestGoalCommands(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("goal", "calc", "-g", "1200", "-s", "200", "-n", "12")
	if !strings.Contains(out, "100.00") || !strings.Contains(out, "16.7%") {
		t.Errorf("unexpected calc output:\n%s", out)
	}

	h.mustRun("goal", "save", "-g", "500", "-s", "600")
	out = h.mustRun("goal", "show")
	if !strings.Contains(out, "100.0%") {
		t.Errorf("saved more than the goal should cap at 100%%:\n%s", out)
	}

	_, _, err := h.run("goal", "calc", "-g", "0")
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	err := apperrors.WithFields(apperrors.ErrValidation, map[string]string{
		"date":   "Date is required.",
		"amount": "Valid amount is required.",
	})
	PrintError(&buf, err)
	want := "Error: Invalid input\n  amount: Valid amount is required.\n  date: Date is required.\n"
	if buf.String() != want {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	PrintError(&buf, apperrors.ErrUnauthenticated)
	if !strings.Contains(buf.String(), "budget login") {
		t.Errorf("expected login hint, got %q", buf.String())
	}
}

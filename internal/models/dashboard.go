package models

// Notice reports a non-fatal fetch failure. The affected input was replaced
// by its zero value.
type Notice struct {
	Source  string `json:"source"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Dashboard is the Summary for a month plus how it was obtained.
type Dashboard struct {
	Summary Summary  `json:"summary"`
	Notices []Notice `json:"notices,omitempty"`
	// Partial is set when at least one input could not be fetched.
	Partial bool `json:"partial"`
	// Stale is set when the budget service was unreachable and the previous
	// Summary for the month was kept.
	Stale bool `json:"stale"`
}

// BudgetView is the budget for a month, which may not exist.
type BudgetView struct {
	Month     MonthKey `json:"month"`
	HasBudget bool     `json:"hasBudget"`
	Budget    *Budget  `json:"budget"`
}

// AuthStatus describes the local session.
type AuthStatus struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

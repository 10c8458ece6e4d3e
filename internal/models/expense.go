package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// ID is an upstream record identifier. The budget service may send it as a
// JSON number or string; it is kept as text.
type ID string

// UnmarshalJSON accepts numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	*id = ID(data)
	return nil
}

// Expense is a single recorded expense as returned by the budget service.
type Expense struct {
	ID          ID       `json:"id,omitempty"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Amount      Amount   `json:"amount"`
	Date        string   `json:"date"`
	Month       MonthKey `json:"month,omitempty"`
}

// Day parses the expense date.
func (e Expense) Day() (time.Time, bool) {
	return ParseDay(e.Date)
}

// Equal reports whether two expenses carry the same data.
func (e Expense) Equal(o Expense) bool {
	return e.ID == o.ID &&
		e.Description == o.Description &&
		e.Category == o.Category &&
		e.Amount.Equal(o.Amount) &&
		e.Date == o.Date &&
		e.Month == o.Month
}

// NewExpense is user input for recording an expense. It is validated before
// anything is sent to the budget service.
type NewExpense struct {
	Description string   `json:"description" binding:"required,max=255"`
	Amount      Amount   `json:"amount" binding:"required,gt=0"`
	Category    Category `json:"category" binding:"required,expense_category"`
	Date        string   `json:"date" binding:"required,iso_date"`
}

package models

import "time"

// Local storage keys.
const (
	SessionTokenKey = "budget_app_token"
	SavingsGoalKey  = "budget_savings_goal"
)

// LocalItem is a key/value entry in the local store.
type LocalItem struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name used by migrations.
func (LocalItem) TableName() string { return "local_items" }

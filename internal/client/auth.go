package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"budgetdash/internal/models"
)

// Login exchanges credentials for a token. The budget service replies with
// the token as a bare string or wrapped as {"token": "..."}.
func (c *BudgetClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	data, err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login", body: creds, login: true})
	if err != nil {
		return "", err
	}
	return parseToken(data), nil
}

// Register creates an account.
func (c *BudgetClient) Register(ctx context.Context, reg models.Registration) error {
	_, err := c.do(ctx, call{method: http.MethodPost, path: "/auth/register", body: reg, login: true})
	return err
}

// GetProfile fetches the identity of the session's account.
func (c *BudgetClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	data, err := c.do(ctx, call{method: http.MethodGet, path: "/users/profile"})
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if !isObject(data) || json.Unmarshal(data, &profile) != nil {
		return &models.Profile{}, nil
	}
	return &profile, nil
}

func parseToken(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ""
	}
	switch data[0] {
	case '{':
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return ""
		}
		return body.Token
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ""
		}
		return s
	}
	return string(data)
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

func isArray(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '['
}

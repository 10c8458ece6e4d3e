// Package uuid issues the request IDs that correlate a local request with the
// budget service calls made on its behalf.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string, so request IDs sort by arrival in logs.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}
	return id.String()
}

// Normalize returns s in canonical form when it is a valid UUID, or a fresh
// ID otherwise. Incoming IDs are echoed to the budget service, so arbitrary
// client input is never forwarded.
func Normalize(s string) string {
	if s == "" {
		return New()
	}
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return New()
	}
	return parsed.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

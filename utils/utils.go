package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GetUUID returns a fresh v4 UUID. Used for user and itinerary ids.
func GetUUID() string {
	return uuid.New().String()
}

// NormalizeEmail lowercases and trims an email so uniqueness is
// case-insensitive. "A@x.com" and "a@x.com" are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

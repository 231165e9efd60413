// Package validation holds the pure input checks for the auth endpoints.
// Each function returns the first violated rule's message, or "" when the
// payload is acceptable.
package validation

import (
	"stockroom/internal/models"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
)

func ValidateRegistration(req models.RegisterRequest) string {
	if req.Username == "" || req.Password == "" {
		return "Username and password required"
	}
	if len(req.Username) < minUsernameLength {
		return "Username must be at least 3 characters"
	}
	if len(req.Password) < minPasswordLength {
		return "Password must be at least 6 characters"
	}
	return ""
}

func ValidateLogin(req models.LoginRequest) string {
	if req.Username == "" || req.Password == "" {
		return "Username and password required"
	}
	return ""
}

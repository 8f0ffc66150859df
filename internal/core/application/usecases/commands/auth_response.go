package commands

import "time"

// AuthResponse is the result of a successful registration or login.
type AuthResponse struct {
	Token       string
	Email       string
	FirstName   string
	LastName    string
	Role        string
	AccountType string
	ExpiresAt   time.Time
}

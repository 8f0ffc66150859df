package ports

import (
	"time"

	"mescolis/internal/core/domain/model/user"
)

// TokenClaims is the identity carried by an issued access token.
type TokenClaims struct {
	UserID      string
	Email       string
	FirstName   string
	LastName    string
	AccountType string
	Role        string
}

// TokenIssuer issues and verifies signed access tokens.
type TokenIssuer interface {
	// Issue creates a signed token for the user, valid for the issuer's
	// configured lifetime. Returns the token and its expiry.
	Issue(aggregate *user.User) (token string, expiresAt time.Time, err error)

	// Verify parses and validates a token, returning its claims.
	Verify(token string) (*TokenClaims, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare reports whether the plaintext password matches the hash.
	Compare(hash, password string) bool
}

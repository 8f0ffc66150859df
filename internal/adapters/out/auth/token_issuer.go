package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mescolis/internal/core/domain/model/user"
	"mescolis/internal/core/ports"
)

var ErrTokenIsInvalid = errors.New("token is invalid")

type accessClaims struct {
	Email       string `json:"email"`
	GivenName   string `json:"given_name"`
	Surname     string `json:"surname"`
	AccountType string `json:"account_type"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenIssuer implements ports.TokenIssuer with HS256 signed tokens.
type JWTTokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewJWTTokenIssuer(secret, issuer, audience string, ttl time.Duration) *JWTTokenIssuer {
	return &JWTTokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

func (i *JWTTokenIssuer) Issue(aggregate *user.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(i.ttl)

	claims := accessClaims{
		Email:       aggregate.Email(),
		GivenName:   aggregate.FirstName(),
		Surname:     aggregate.LastName(),
		AccountType: aggregate.AccountType().String(),
		Role:        aggregate.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   aggregate.ID().String(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (i *JWTTokenIssuer) Verify(tokenString string) (*ports.TokenClaims, error) {
	var claims accessClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return i.secret, nil
		},
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrTokenIsInvalid
	}

	return &ports.TokenClaims{
		UserID:      claims.Subject,
		Email:       claims.Email,
		FirstName:   claims.GivenName,
		LastName:    claims.Surname,
		AccountType: claims.AccountType,
		Role:        claims.Role,
	}, nil
}

package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/ports"
)

const claimsContextKey = "auth.claims"

// AdminRole is the role required by the administration endpoints.
const AdminRole = "Admin"

// AuthMiddleware authenticates requests with bearer tokens and stores the
// verified claims on the echo context.
type AuthMiddleware struct {
	issuer ports.TokenIssuer
}

func NewAuthMiddleware(issuer ports.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		claims, err := m.issuer.Verify(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid or expired token",
			})
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// RequireAdmin rejects authenticated requests whose token lacks the admin
// role. It must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims := claimsFrom(ctx)
		if claims == nil || claims.Role != AdminRole {
			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Administrator role required",
			})
		}
		return next(ctx)
	}
}

func claimsFrom(ctx echo.Context) *ports.TokenClaims {
	claims, _ := ctx.Get(claimsContextKey).(*ports.TokenClaims)
	return claims
}

// currentUserID extracts the authenticated user's id from the context.
func currentUserID(ctx echo.Context) (kernel.UUID, bool) {
	claims := claimsFrom(ctx)
	if claims == nil {
		return kernel.UUID{}, false
	}
	id, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

package user_test

import (
	"testing"
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "$2a$10$abcdefghijklmnopqrstuv"

func TestNewUser(t *testing.T) {
	validID := kernel.NewUUID()
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("should create active consumer account", func(t *testing.T) {
		u, err := user.NewUser(
			validID, "alice@example.com", testHash, "Alice", "Tremblay",
			"", "", user.Consumer, "fr", now)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(validID))
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, user.Consumer, u.AccountType())
		assert.Equal(t, "Consumer", u.Role())
		assert.Equal(t, "fr", u.PreferredLanguage())
		assert.True(t, u.IsActive())
		assert.Equal(t, now, u.CreatedAt())
		assert.Nil(t, u.LastLoginAt())
		assert.Empty(t, u.PaymentCustomerID())
	})

	t.Run("should derive Business role for business accounts", func(t *testing.T) {
		u, err := user.NewUser(
			validID, "ops@acme.example", testHash, "Ops", "Team",
			"Acme Inc", "416-555-0100", user.Business, "en", now)

		require.NoError(t, err)
		assert.Equal(t, "Business", u.Role())
		assert.Equal(t, "Acme Inc", u.CompanyName())
	})

	t.Run("should downgrade admin registrations to Business role", func(t *testing.T) {
		u, err := user.NewUser(
			validID, "eve@example.com", testHash, "Eve", "Martin",
			"", "", user.Admin, "en", now)

		require.NoError(t, err)
		assert.Equal(t, "Business", u.Role())
	})

	t.Run("should normalize email to lower case", func(t *testing.T) {
		u, err := user.NewUser(
			validID, "  Alice@Example.COM ", testHash, "Alice", "Tremblay",
			"", "", user.Consumer, "en", now)

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email())
	})

	t.Run("should default preferred language to en", func(t *testing.T) {
		u, err := user.NewUser(
			validID, "alice@example.com", testHash, "Alice", "Tremblay",
			"", "", user.Consumer, "", now)

		require.NoError(t, err)
		assert.Equal(t, "en", u.PreferredLanguage())
	})

	t.Run("should reject malformed emails", func(t *testing.T) {
		for _, email := range []string{"", "   ", "no-at-sign"} {
			u, err := user.NewUser(
				validID, email, testHash, "Alice", "Tremblay",
				"", "", user.Consumer, "en", now)

			require.Error(t, err, "email %q should be rejected", email)
			assert.Nil(t, u)
		}
	})

	t.Run("should require a password hash", func(t *testing.T) {
		u, err := user.NewUser(
			validID, "alice@example.com", "", "Alice", "Tremblay",
			"", "", user.Consumer, "en", now)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should require first and last name", func(t *testing.T) {
		_, err := user.NewUser(
			validID, "alice@example.com", testHash, "", "Tremblay",
			"", "", user.Consumer, "en", now)
		require.Error(t, err)

		_, err = user.NewUser(
			validID, "alice@example.com", testHash, "Alice", "  ",
			"", "", user.Consumer, "en", now)
		require.Error(t, err)
	})

	t.Run("should reject invalid account type", func(t *testing.T) {
		u, err := user.NewUser(
			validID, "alice@example.com", testHash, "Alice", "Tremblay",
			"", "", user.UnknownAccountType, "en", now)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := user.NewUser(
			invalidID, "bad", "", "", "", "", "", user.UnknownAccountType, "en", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password hash")
		assert.Contains(t, err.Error(), "account type")
	})
}

func TestRestoreUser(t *testing.T) {
	validID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should restore without re-deriving the role", func(t *testing.T) {
		lastLogin := now.Add(-time.Hour)

		u, err := user.RestoreUser(
			validID, "admin@mescolis.example", testHash, "Platform", "Administrator",
			"", "", user.Business, "Admin", "cus_123", "en", false, now.Add(-48*time.Hour), &lastLogin)

		require.NoError(t, err)
		assert.Equal(t, "Admin", u.Role(), "restored role should be kept as stored")
		assert.Equal(t, "cus_123", u.PaymentCustomerID())
		assert.False(t, u.IsActive())
		require.NotNil(t, u.LastLoginAt())
	})

	t.Run("should validate the same invariants as NewUser", func(t *testing.T) {
		_, err := user.RestoreUser(
			validID, "not-an-email", testHash, "Alice", "Tremblay",
			"", "", user.Consumer, "Consumer", "", "en", true, now, nil)

		require.Error(t, err)
	})
}

func TestUser_AttachPaymentCustomer(t *testing.T) {
	u, err := user.NewUser(
		kernel.NewUUID(), "alice@example.com", testHash, "Alice", "Tremblay",
		"", "", user.Consumer, "en", time.Now())
	require.NoError(t, err)

	t.Run("should reject empty customer reference", func(t *testing.T) {
		require.Error(t, u.AttachPaymentCustomer(""))
		assert.Empty(t, u.PaymentCustomerID())
	})

	t.Run("should attach customer reference", func(t *testing.T) {
		require.NoError(t, u.AttachPaymentCustomer("cus_456"))
		assert.Equal(t, "cus_456", u.PaymentCustomerID())
	})
}

func TestUser_RecordLogin(t *testing.T) {
	u, err := user.NewUser(
		kernel.NewUUID(), "alice@example.com", testHash, "Alice", "Tremblay",
		"", "", user.Consumer, "en", time.Now())
	require.NoError(t, err)

	loginTime := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	u.RecordLogin(loginTime)

	require.NotNil(t, u.LastLoginAt())
	assert.Equal(t, loginTime, *u.LastLoginAt())
}

func TestUser_ToggleActive(t *testing.T) {
	u, err := user.NewUser(
		kernel.NewUUID(), "alice@example.com", testHash, "Alice", "Tremblay",
		"", "", user.Consumer, "en", time.Now())
	require.NoError(t, err)

	t.Run("should flip and report the new state", func(t *testing.T) {
		assert.False(t, u.ToggleActive())
		assert.False(t, u.IsActive())

		assert.True(t, u.ToggleActive())
		assert.True(t, u.IsActive())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("should fail for nil user", func(t *testing.T) {
		var u *user.User

		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})

	t.Run("should fail for zero value user", func(t *testing.T) {
		var u user.User

		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestAccountType(t *testing.T) {
	t.Run("should parse defined types from strings", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected user.AccountType
		}{
			{"Consumer", user.Consumer},
			{"Business", user.Business},
			{"Admin", user.Admin},
		}

		for _, tc := range testCases {
			parsed, err := user.AccountTypeFromString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		}
	})

	t.Run("should reject undefined strings", func(t *testing.T) {
		for _, s := range []string{"", "consumer", "Unknown", "Root"} {
			_, err := user.AccountTypeFromString(s)
			require.Error(t, err, "%q should be rejected", s)
		}
	})

	t.Run("should map account types to registration roles", func(t *testing.T) {
		assert.Equal(t, "Consumer", user.Consumer.RegistrationRole())
		assert.Equal(t, "Business", user.Business.RegistrationRole())
		assert.Equal(t, "Business", user.Admin.RegistrationRole())
	})
}

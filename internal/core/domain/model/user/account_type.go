package user

import (
	"fmt"

	"mescolis/internal/pkg/errs"
)

// AccountType classifies a user account for pricing and authorization.
type AccountType int

const (
	// UnknownAccountType represents an invalid or undefined account type.
	UnknownAccountType AccountType = iota

	// Consumer is an individual account.
	Consumer

	// Business is a company account.
	Business

	// Admin is a back-office account. It can only be created by the seed
	// process, never through public registration.
	Admin
)

func getAccountTypeStrings() map[AccountType]string {
	return map[AccountType]string{
		UnknownAccountType: "Unknown",
		Consumer:           "Consumer",
		Business:           "Business",
		Admin:              "Admin",
	}
}

// AccountTypeFromString parses an account type from its string form.
func AccountTypeFromString(s string) (AccountType, error) {
	for accountType, name := range getAccountTypeStrings() {
		if accountType != UnknownAccountType && name == s {
			return accountType, nil
		}
	}
	return UnknownAccountType, errs.NewValueIsInvalidErrorWithCause(
		"account type", fmt.Errorf("%q is not a valid account type", s))
}

// Validate checks that the AccountType holds one of the defined values.
func (a AccountType) Validate() error {
	switch a {
	case Consumer, Business, Admin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"account type", fmt.Errorf("%d is not a valid account type", a))
	}
}

// String returns the human-readable name of the account type.
func (a AccountType) String() string {
	if s, ok := getAccountTypeStrings()[a]; ok {
		return s
	}
	return "Unknown"
}

// RegistrationRole returns the role granted on self-service registration.
// Requests for an Admin account are downgraded to Business; admin accounts
// are created only by the seed process.
func (a AccountType) RegistrationRole() string {
	switch a {
	case Business, Admin:
		return "Business"
	default:
		return "Consumer"
	}
}

// Package user contains the account aggregate and its invariants.
package user

import (
	"errors"
	"strings"
	"time"

	"mescolis/internal/core/domain/model/kernel"
	"mescolis/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is the account aggregate. It owns credentials, profile data, the
// account type and the reference to the external payment-processor customer.
//
// Invariants:
//   - Email and password hash are always present
//   - Account type is one of the defined values
//   - The role a user carries is derived from its account type
type User struct {
	id                kernel.UUID
	email             string
	passwordHash      string
	firstName         string
	lastName          string
	companyName       string
	phone             string
	accountType       AccountType
	role              string
	paymentCustomerID string
	preferredLanguage string
	isActive          bool
	createdAt         time.Time
	lastLoginAt       *time.Time

	isConstructed bool
}

// NewUser creates an active account with the role derived from the account
// type. The password must already be hashed by the caller; the aggregate
// never sees plaintext credentials.
func NewUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	companyName string,
	phone string,
	accountType AccountType,
	preferredLanguage string,
	now time.Time,
) (*User, error) {
	u := &User{
		companyName:       companyName,
		phone:             phone,
		preferredLanguage: preferredLanguage,
		isActive:          true,
		createdAt:         now.UTC(),
		isConstructed:     true,
	}
	if u.preferredLanguage == "" {
		u.preferredLanguage = "en"
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setName(firstName, lastName),
		u.setAccountType(accountType),
	); err != nil {
		return nil, err
	}

	u.role = accountType.RegistrationRole()
	return u, nil
}

// RestoreUser reconstructs a User from persistence without re-deriving
// state. It validates the same invariants as NewUser.
func RestoreUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	firstName string,
	lastName string,
	companyName string,
	phone string,
	accountType AccountType,
	role string,
	paymentCustomerID string,
	preferredLanguage string,
	isActive bool,
	createdAt time.Time,
	lastLoginAt *time.Time,
) (*User, error) {
	u := &User{
		companyName:       companyName,
		phone:             phone,
		role:              role,
		paymentCustomerID: paymentCustomerID,
		preferredLanguage: preferredLanguage,
		isActive:          isActive,
		createdAt:         createdAt,
		lastLoginAt:       lastLoginAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setName(firstName, lastName),
		u.setAccountType(accountType),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the account email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// FirstName returns the user's given name.
func (u *User) FirstName() string { return u.firstName }

// LastName returns the user's surname.
func (u *User) LastName() string { return u.lastName }

// CompanyName returns the optional company name.
func (u *User) CompanyName() string { return u.companyName }

// Phone returns the optional phone number.
func (u *User) Phone() string { return u.phone }

// AccountType returns the account classification.
func (u *User) AccountType() AccountType { return u.accountType }

// Role returns the authorization role carried in session tokens.
func (u *User) Role() string { return u.role }

// PaymentCustomerID returns the external payment-processor customer reference.
func (u *User) PaymentCustomerID() string { return u.paymentCustomerID }

// PreferredLanguage returns the user's preferred language code.
func (u *User) PreferredLanguage() string { return u.preferredLanguage }

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool { return u.isActive }

// CreatedAt returns the account creation time.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// LastLoginAt returns the time of the most recent login, or nil.
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }

// AttachPaymentCustomer records the external payment-processor customer
// reference. The reference is set once after registration.
func (u *User) AttachPaymentCustomer(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("payment customer id")
	}
	u.paymentCustomerID = customerID
	return nil
}

// RecordLogin stores the time of a successful authentication.
func (u *User) RecordLogin(now time.Time) {
	t := now.UTC()
	u.lastLoginAt = &t
}

// ToggleActive flips the active flag and returns the new value.
// Toggling twice restores the original state.
func (u *User) ToggleActive() bool {
	u.isActive = !u.isActive
	return u.isActive
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setName(firstName string, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	u.firstName = firstName
	u.lastName = lastName
	return nil
}

func (u *User) setAccountType(accountType AccountType) error {
	if err := accountType.Validate(); err != nil {
		return err
	}
	u.accountType = accountType
	return nil
}

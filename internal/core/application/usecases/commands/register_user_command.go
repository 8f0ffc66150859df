package commands

import (
	"errors"
	"net/mail"
	"strings"

	"mescolis/internal/core/domain/model/user"
	"mescolis/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrEmailIsInvalid     = errors.New("email address is invalid")
	ErrPasswordIsTooShort = errors.New("password must be at least 8 characters")
	ErrFirstNameIsRequired = errors.New("first name is required")
	ErrLastNameIsRequired  = errors.New("last name is required")
)

const minPasswordLength = 8

// RegisterUserCommand represents a request to open a new account.
// Carries the plaintext password; hashing happens in the handler.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email             string
	password          string
	firstName         string
	lastName          string
	companyName       string
	phone             string
	accountType       user.AccountType
	preferredLanguage string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Validates email shape, password length, names and the account type.
func NewRegisterUserCommand(
	email string,
	password string,
	firstName string,
	lastName string,
	companyName string,
	phone string,
	accountType user.AccountType,
	preferredLanguage string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		companyName:       companyName,
		phone:             phone,
		preferredLanguage: preferredLanguage,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setNames(firstName, lastName),
		cmd.setAccountType(accountType),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the normalized (lowercased) email address.
func (c RegisterUserCommand) Email() string { return c.email }

// Password returns the plaintext password.
func (c RegisterUserCommand) Password() string { return c.password }

// FirstName returns the account holder's first name.
func (c RegisterUserCommand) FirstName() string { return c.firstName }

// LastName returns the account holder's last name.
func (c RegisterUserCommand) LastName() string { return c.lastName }

// CompanyName returns the optional company name.
func (c RegisterUserCommand) CompanyName() string { return c.companyName }

// Phone returns the optional phone number.
func (c RegisterUserCommand) Phone() string { return c.phone }

// AccountType returns the requested account type.
func (c RegisterUserCommand) AccountType() user.AccountType { return c.accountType }

// PreferredLanguage returns the requested interface language.
func (c RegisterUserCommand) PreferredLanguage() string { return c.preferredLanguage }

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setNames(firstName string, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return ErrFirstNameIsRequired
	}
	if strings.TrimSpace(lastName) == "" {
		return ErrLastNameIsRequired
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *RegisterUserCommand) setAccountType(accountType user.AccountType) error {
	if err := accountType.Validate(); err != nil {
		return err
	}

	c.accountType = accountType
	return nil
}

package shipment

import (
	"errors"
	"strings"

	"mescolis/internal/pkg/errs"
	"mescolis/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an Address that was not
// created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address value object. A fresh pair of
// address records is created for every shipment; addresses are never
// deduplicated or shared between shipments.
type Address struct { //nolint:recvcheck //using for validation
	street        string
	street2       string
	city          string
	province      string
	postalCode    string
	country       string
	companyName   string
	contactName   string
	contactPhone  string
	isResidential bool

	guard guard.ConstructorGuard
}

// NewAddress creates a validated postal address. Street, city, province,
// postal code and the two-letter country code are required; the company and
// contact fields are optional.
func NewAddress(
	street string,
	street2 string,
	city string,
	province string,
	postalCode string,
	country string,
	companyName string,
	contactName string,
	contactPhone string,
	isResidential bool,
) (Address, error) {
	a := Address{
		street2:       street2,
		companyName:   companyName,
		contactName:   contactName,
		contactPhone:  contactPhone,
		isResidential: isResidential,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setRequired("street", street, &a.street),
		a.setRequired("city", city, &a.city),
		a.setRequired("province", province, &a.province),
		a.setRequired("postal code", postalCode, &a.postalCode),
		a.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return a, nil
}

// Validate checks that the Address was created via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the first street line.
func (a Address) Street() string { return a.street }

// Street2 returns the optional second street line.
func (a Address) Street2() string { return a.street2 }

// City returns the city name.
func (a Address) City() string { return a.city }

// Province returns the province or state.
func (a Address) Province() string { return a.province }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the two-letter country code.
func (a Address) Country() string { return a.country }

// CompanyName returns the optional company name.
func (a Address) CompanyName() string { return a.companyName }

// ContactName returns the optional contact name.
func (a Address) ContactName() string { return a.contactName }

// ContactPhone returns the optional contact phone number.
func (a Address) ContactPhone() string { return a.contactPhone }

// IsResidential reports whether the address is residential.
func (a Address) IsResidential() bool { return a.isResidential }

func (a *Address) setRequired(name string, value string, target *string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*target = value
	return nil
}

func (a *Address) setCountry(country string) error {
	country = strings.ToUpper(strings.TrimSpace(country))
	if len(country) != 2 {
		return errs.NewValueIsInvalidError("country")
	}
	a.country = country
	return nil
}

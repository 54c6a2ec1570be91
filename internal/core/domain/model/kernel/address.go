package kernel

import (
	"errors"
	"fmt"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a recipient's postal address. It is an immutable value
// object; the zero value is invalid and fails validation.
//
// Street, number, state, city and zip code are required; the complement is
// optional.
//
// Example:
//
//	addr, err := kernel.NewAddress("Baker Street", 221, "B", "London", "LDN", "NW1 6XE")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street     string
	number     int
	complement string
	city       string
	state      string
	zipCode    string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. The complement may be empty; every
// other component is required and the number must be positive.
func NewAddress(street string, number int, complement, city, state, zipCode string) (Address, error) {
	addr := Address{
		complement: complement,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setNumber(number),
		addr.setCity(city),
		addr.setState(state),
		addr.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was constructed via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() int {
	return a.number
}

// Complement returns the optional address complement (apartment, block, ...).
func (a Address) Complement() string {
	return a.complement
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// State returns the state or region code.
func (a Address) State() string {
	return a.state
}

// ZipCode returns the postal code.
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEqual reports whether two addresses have identical components.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.number == other.number &&
		a.complement == other.complement &&
		a.city == other.city &&
		a.state == other.state &&
		a.zipCode == other.zipCode
}

// String renders the address on a single line, as used in notification mails.
func (a Address) String() string {
	if a.complement != "" {
		return fmt.Sprintf("%s, %d (%s) - %s/%s, %s", a.street, a.number, a.complement, a.city, a.state, a.zipCode)
	}
	return fmt.Sprintf("%s, %d - %s/%s, %s", a.street, a.number, a.city, a.state, a.zipCode)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%d is not greater than 0", number))
	}
	a.number = number
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setZipCode(zipCode string) error {
	if zipCode == "" {
		return errs.NewValueIsRequiredError("zip code")
	}
	a.zipCode = zipCode
	return nil
}

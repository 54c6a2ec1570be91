package kernel

import (
	"net/mail"

	"parcels/internal/pkg/errs"
)

// Email is a syntactically validated email address value object.
// The zero value is invalid; use NewEmail to create instances.
type Email struct {
	address string
}

// NewEmail parses and validates an email address.
// Returns a ValueIsRequiredError when empty and a ValueIsInvalidError when the
// address does not parse as an RFC 5322 address.
func NewEmail(address string) (Email, error) {
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{address: parsed.Address}, nil
}

// String returns the normalized address.
func (e Email) String() string {
	return e.address
}

// IsEqual reports whether two emails hold the same address.
func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}

// Validate returns an error for the zero value.
func (e Email) Validate() error {
	if e.address == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}

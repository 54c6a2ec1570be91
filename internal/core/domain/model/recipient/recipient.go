// Package recipient provides the Recipient aggregate root: the party a package
// is delivered to. Recipient names are unique among non-removed rows, and a
// recipient cannot be soft-deleted while an open delivery references it.
package recipient

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	// ErrRecipientIsNotConstructed is returned when a Recipient was not
	// created through NewRecipient or RestoreRecipient.
	ErrRecipientIsNotConstructed = errors.New(
		"Recipient must be created via NewRecipient or RestoreRecipient")

	// ErrDuplicateName rejects a creation or rename colliding with another
	// recipient's name.
	ErrDuplicateName = errors.New("a recipient with this name already exists")

	// ErrAlreadyRemoved rejects a repeated soft-delete.
	ErrAlreadyRemoved = errors.New("recipient is already removed")

	// ErrHasOpenDelivery blocks soft-deletion while an open delivery still
	// references this recipient.
	ErrHasOpenDelivery = errors.New("recipient has an open delivery")
)

// Recipient is the aggregate root for a delivery recipient, holding the
// postal address packages are shipped to.
type Recipient struct {
	id        kernel.UUID
	name      string
	address   kernel.Address
	removedAt *time.Time
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewRecipient creates an active recipient. Name uniqueness is a
// repository-level concern checked by the caller.
func NewRecipient(id kernel.UUID, name string, address kernel.Address, createdAt time.Time) (*Recipient, error) {
	r := &Recipient{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecipient reconstructs a recipient from persistence.
func RestoreRecipient(
	id kernel.UUID, name string, address kernel.Address,
	removedAt *time.Time, createdAt time.Time,
) (*Recipient, error) {
	r, err := NewRecipient(id, name, address, createdAt)
	if err != nil {
		return nil, err
	}

	r.removedAt = removedAt
	return r, nil
}

// Validate ensures the recipient was created through a constructor.
func (r *Recipient) Validate() error {
	if r == nil {
		return ErrRecipientIsNotConstructed
	}
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// ID returns the recipient's unique identifier.
func (r *Recipient) ID() kernel.UUID {
	return r.id
}

// Name returns the recipient's name.
func (r *Recipient) Name() string {
	return r.name
}

// Address returns the recipient's postal address.
func (r *Recipient) Address() kernel.Address {
	return r.address
}

// RemovedAt returns the soft-delete timestamp, or nil while active.
func (r *Recipient) RemovedAt() *time.Time {
	return r.removedAt
}

// CreatedAt returns the creation timestamp.
func (r *Recipient) CreatedAt() time.Time {
	return r.createdAt
}

// IsRemoved reports whether the recipient was soft-deleted.
func (r *Recipient) IsRemoved() bool {
	return r.removedAt != nil
}

// IsEqual compares two recipients by identifier.
func (r *Recipient) IsEqual(other *Recipient) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// Rename changes the recipient's name. The caller re-checks uniqueness
// against other rows when the name actually changes.
func (r *Recipient) Rename(name string) error {
	return r.setName(name)
}

// Relocate replaces the recipient's postal address.
func (r *Recipient) Relocate(address kernel.Address) error {
	return r.setAddress(address)
}

// Remove soft-deletes the recipient. hasOpenDelivery is the caller's
// observation of whether any open delivery still references this recipient.
func (r *Recipient) Remove(at time.Time, hasOpenDelivery bool) error {
	if r.removedAt != nil {
		return ErrAlreadyRemoved
	}
	if hasOpenDelivery {
		return ErrHasOpenDelivery
	}

	r.removedAt = &at
	return nil
}

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Recipient) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}

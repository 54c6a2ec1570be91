// Package deliveryman provides the Deliveryman aggregate root: the courier who
// withdraws and delivers packages. Deliverymen are soft-deleted, and deletion
// is blocked while any open delivery still references them.
package deliveryman

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var (
	// ErrDeliverymanIsNotConstructed is returned when a Deliveryman was not
	// created through NewDeliveryman or RestoreDeliveryman.
	ErrDeliverymanIsNotConstructed = errors.New(
		"Deliveryman must be created via NewDeliveryman or RestoreDeliveryman")

	// ErrDuplicateEmail rejects a creation or update reusing another
	// deliveryman's email. Emails are unique across all rows, removed included.
	ErrDuplicateEmail = errors.New("a deliveryman with this email already exists")

	// ErrAlreadyRemoved rejects a repeated soft-delete.
	ErrAlreadyRemoved = errors.New("deliveryman is already removed")

	// ErrHasOpenDelivery blocks soft-deletion while an open delivery still
	// references this deliveryman.
	ErrHasOpenDelivery = errors.New("deliveryman has an open delivery")
)

// Deliveryman is the aggregate root for a courier. It owns an optional avatar
// file reference and a soft-delete timestamp.
type Deliveryman struct {
	id        kernel.UUID
	name      string
	email     kernel.Email
	avatarID  *kernel.UUID
	removedAt *time.Time
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewDeliveryman creates an active deliveryman with a validated email.
// Email uniqueness is a repository-level concern checked by the caller.
func NewDeliveryman(id kernel.UUID, name string, email kernel.Email, createdAt time.Time) (*Deliveryman, error) {
	dm := &Deliveryman{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dm.setID(id),
		dm.setName(name),
		dm.setEmail(email),
	); err != nil {
		return nil, err
	}

	return dm, nil
}

// RestoreDeliveryman reconstructs a deliveryman from persistence.
func RestoreDeliveryman(
	id kernel.UUID, name string, email kernel.Email,
	avatarID *kernel.UUID, removedAt *time.Time, createdAt time.Time,
) (*Deliveryman, error) {
	dm, err := NewDeliveryman(id, name, email, createdAt)
	if err != nil {
		return nil, err
	}

	if avatarID != nil {
		if err = avatarID.Validate(); err != nil {
			return nil, err
		}
		dm.avatarID = avatarID
	}

	dm.removedAt = removedAt
	return dm, nil
}

// Validate ensures the deliveryman was created through a constructor.
func (dm *Deliveryman) Validate() error {
	if dm == nil {
		return ErrDeliverymanIsNotConstructed
	}
	return dm.guard.Validate(ErrDeliverymanIsNotConstructed)
}

// ID returns the deliveryman's unique identifier.
func (dm *Deliveryman) ID() kernel.UUID {
	return dm.id
}

// Name returns the deliveryman's name.
func (dm *Deliveryman) Name() string {
	return dm.name
}

// Email returns the deliveryman's email address.
func (dm *Deliveryman) Email() kernel.Email {
	return dm.email
}

// AvatarID returns the avatar file reference, or nil.
func (dm *Deliveryman) AvatarID() *kernel.UUID {
	return dm.avatarID
}

// RemovedAt returns the soft-delete timestamp, or nil while active.
func (dm *Deliveryman) RemovedAt() *time.Time {
	return dm.removedAt
}

// CreatedAt returns the creation timestamp.
func (dm *Deliveryman) CreatedAt() time.Time {
	return dm.createdAt
}

// IsRemoved reports whether the deliveryman was soft-deleted.
func (dm *Deliveryman) IsRemoved() bool {
	return dm.removedAt != nil
}

// IsEqual compares two deliverymen by identifier.
func (dm *Deliveryman) IsEqual(other *Deliveryman) bool {
	return other != nil && dm.id.IsEqual(other.id)
}

// Rename changes the deliveryman's name.
func (dm *Deliveryman) Rename(name string) error {
	return dm.setName(name)
}

// ChangeEmail replaces the email address. The caller re-checks uniqueness
// against other rows when the address actually changes.
func (dm *Deliveryman) ChangeEmail(email kernel.Email) error {
	return dm.setEmail(email)
}

// SetAvatar attaches an avatar file reference. The caller verifies the file
// exists.
func (dm *Deliveryman) SetAvatar(avatarID kernel.UUID) error {
	if err := avatarID.Validate(); err != nil {
		return err
	}
	dm.avatarID = &avatarID
	return nil
}

// Remove soft-deletes the deliveryman. hasOpenDelivery is the caller's
// observation of whether any open delivery still references this deliveryman;
// removal is rejected with ErrHasOpenDelivery while one does.
func (dm *Deliveryman) Remove(at time.Time, hasOpenDelivery bool) error {
	if dm.removedAt != nil {
		return ErrAlreadyRemoved
	}
	if hasOpenDelivery {
		return ErrHasOpenDelivery
	}

	dm.removedAt = &at
	return nil
}

func (dm *Deliveryman) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	dm.id = id
	return nil
}

func (dm *Deliveryman) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	dm.name = name
	return nil
}

func (dm *Deliveryman) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	dm.email = email
	return nil
}

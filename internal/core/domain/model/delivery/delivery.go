package delivery

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

const (
	// PickupMinHour is the earliest local hour (inclusive) a package may be withdrawn.
	PickupMinHour = 8
	// PickupMaxHour is the latest local hour (inclusive) a package may be withdrawn.
	PickupMaxHour = 18
	// MaxDailyWithdrawals is the number of packages a deliveryman may withdraw per calendar day.
	MaxDailyWithdrawals = 5
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrPickupOutOfHours rejects withdrawals whose local hour falls outside
	// [PickupMinHour, PickupMaxHour].
	ErrPickupOutOfHours = errors.New("withdrawals are only allowed between 8h and 18h")

	// ErrDailyWithdrawalLimitExceeded rejects a withdrawal that would exceed
	// MaxDailyWithdrawals for the deliveryman on that calendar day.
	ErrDailyWithdrawalLimitExceeded = errors.New("the daily limit of 5 withdrawals has been exceeded")

	// ErrAlreadyCanceled rejects a cancellation of an already canceled delivery.
	ErrAlreadyCanceled = errors.New("delivery is already canceled")

	// ErrAlreadyPickedUp rejects a cancellation after the package was withdrawn.
	ErrAlreadyPickedUp = errors.New("delivery has already been picked up by the deliveryman")

	// ErrAlreadyDelivered rejects a cancellation after the package was delivered.
	ErrAlreadyDelivered = errors.New("delivery has already been delivered")

	// ErrAlreadyRemoved rejects a repeated soft-delete.
	ErrAlreadyRemoved = errors.New("delivery is already removed")

	// ErrStillOpen rejects a soft-delete while the delivery is neither
	// canceled nor delivered.
	ErrStillOpen = errors.New("delivery is still open and cannot be removed")
)

// Delivery is the aggregate root for a package delivery. Its lifecycle is
// recorded as three independent nullable timestamps (start date for the
// withdrawal, end date for the completion, and the cancellation time), plus a
// soft-delete timestamp.
//
// Invariants:
//   - once the cancellation or completion timestamp is set it is never cleared
//   - the soft-delete timestamp may only be set once the delivery is no longer
//     open (canceled or delivered)
//   - a delivery is "open" while both cancellation and completion are unset
//
// All state transitions go through the guarded methods below; direct struct
// construction is prevented by the constructor guard.
type Delivery struct {
	id            kernel.UUID
	product       string
	recipientID   kernel.UUID
	deliverymanID kernel.UUID
	signatureID   *kernel.UUID

	startDate  *time.Time
	endDate    *time.Time
	canceledAt *time.Time
	removedAt  *time.Time
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a new open delivery for the given recipient and
// deliveryman. The product description must not be empty.
func NewDelivery(id, recipientID, deliverymanID kernel.UUID, product string, createdAt time.Time) (*Delivery, error) {
	d := &Delivery{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setRecipientID(recipientID),
		d.setDeliverymanID(deliverymanID),
		d.setProduct(product),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence, including any
// lifecycle timestamps already recorded.
func RestoreDelivery(
	id, recipientID, deliverymanID kernel.UUID,
	product string,
	signatureID *kernel.UUID,
	startDate, endDate, canceledAt, removedAt *time.Time,
	createdAt time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, recipientID, deliverymanID, product, createdAt)
	if err != nil {
		return nil, err
	}

	if signatureID != nil {
		if err = signatureID.Validate(); err != nil {
			return nil, err
		}
		d.signatureID = signatureID
	}

	d.startDate = startDate
	d.endDate = endDate
	d.canceledAt = canceledAt
	d.removedAt = removedAt
	return d, nil
}

// Validate ensures the delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Product returns the product description.
func (d *Delivery) Product() string {
	return d.product
}

// RecipientID returns the identifier of the recipient.
func (d *Delivery) RecipientID() kernel.UUID {
	return d.recipientID
}

// DeliverymanID returns the identifier of the assigned deliveryman.
func (d *Delivery) DeliverymanID() kernel.UUID {
	return d.deliverymanID
}

// SignatureID returns the identifier of the signature file, or nil when the
// package has not been delivered with a signature.
func (d *Delivery) SignatureID() *kernel.UUID {
	return d.signatureID
}

// StartDate returns the withdrawal timestamp, or nil before pickup.
func (d *Delivery) StartDate() *time.Time {
	return d.startDate
}

// EndDate returns the completion timestamp, or nil before delivery.
func (d *Delivery) EndDate() *time.Time {
	return d.endDate
}

// CanceledAt returns the cancellation timestamp, or nil.
func (d *Delivery) CanceledAt() *time.Time {
	return d.canceledAt
}

// RemovedAt returns the soft-delete timestamp, or nil while active.
func (d *Delivery) RemovedAt() *time.Time {
	return d.removedAt
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// IsOpen reports whether the delivery is still open: neither canceled nor
// delivered. Open deliveries block the soft-deletion of their recipient and
// deliveryman.
func (d *Delivery) IsOpen() bool {
	return d.canceledAt == nil && d.endDate == nil
}

// Status derives the lifecycle status from the recorded timestamps.
func (d *Delivery) Status() Status {
	switch {
	case d.removedAt != nil:
		return Removed
	case d.canceledAt != nil:
		return Canceled
	case d.endDate != nil:
		return Delivered
	case d.startDate != nil:
		return Withdrawn
	default:
		return Open
	}
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Withdraw records the package pickup by the deliveryman.
//
// The withdrawal time's local hour must fall within
// [PickupMinHour, PickupMaxHour]; otherwise ErrPickupOutOfHours is returned.
// sameDayWithdrawals is the number of withdrawals already recorded for the
// deliveryman on the same calendar day, as observed by the caller; the
// withdrawal is rejected with ErrDailyWithdrawalLimitExceeded when it would
// push that count past MaxDailyWithdrawals. The observed count includes every
// recorded same-day withdrawal; a re-submission of this same delivery counts
// against its own limit.
func (d *Delivery) Withdraw(at time.Time, sameDayWithdrawals int) error {
	if err := validatePickupHour(at); err != nil {
		return err
	}

	if sameDayWithdrawals+1 > MaxDailyWithdrawals {
		return ErrDailyWithdrawalLimitExceeded
	}

	d.startDate = &at
	return nil
}

// RecordPickup sets the withdrawal timestamp checking only the pickup window.
// Used by the administrative update path, which does not apply the daily limit.
func (d *Delivery) RecordPickup(at time.Time) error {
	if err := validatePickupHour(at); err != nil {
		return err
	}

	d.startDate = &at
	return nil
}

// Complete records the delivery completion with the recipient's signature.
// The caller is responsible for verifying that the signature file exists.
func (d *Delivery) Complete(at time.Time, signatureID kernel.UUID) error {
	if err := signatureID.Validate(); err != nil {
		return err
	}

	d.endDate = &at
	d.signatureID = &signatureID
	return nil
}

// RecordDelivered sets the completion timestamp without touching the
// signature. Used by the administrative update path.
func (d *Delivery) RecordDelivered(at time.Time) {
	d.endDate = &at
}

// AttachSignature links an uploaded signature file to the delivery.
// The caller is responsible for verifying that the file exists.
func (d *Delivery) AttachSignature(signatureID kernel.UUID) error {
	if err := signatureID.Validate(); err != nil {
		return err
	}

	d.signatureID = &signatureID
	return nil
}

// Cancel cancels an open, not yet withdrawn delivery.
//
// Returns ErrAlreadyCanceled, ErrAlreadyPickedUp or ErrAlreadyDelivered when
// the delivery has already left the fully open state. A withdrawn package can
// only be canceled through CancelOnProblem.
func (d *Delivery) Cancel(at time.Time) error {
	switch {
	case d.canceledAt != nil:
		return ErrAlreadyCanceled
	case d.startDate != nil:
		return ErrAlreadyPickedUp
	case d.endDate != nil:
		return ErrAlreadyDelivered
	}

	d.canceledAt = &at
	return nil
}

// CancelOnProblem cancels the delivery because of a reported problem.
// Unlike Cancel, a withdrawn package may still be canceled through this path;
// only a repeated cancellation is rejected.
func (d *Delivery) CancelOnProblem(at time.Time) error {
	if d.canceledAt != nil {
		return ErrAlreadyCanceled
	}

	d.canceledAt = &at
	return nil
}

// Remove soft-deletes the delivery. Only canceled or delivered packages can be
// removed; an open delivery is rejected with ErrStillOpen.
func (d *Delivery) Remove(at time.Time) error {
	if d.removedAt != nil {
		return ErrAlreadyRemoved
	}
	if d.IsOpen() {
		return ErrStillOpen
	}

	d.removedAt = &at
	return nil
}

// ChangeProduct updates the product description.
func (d *Delivery) ChangeProduct(product string) error {
	return d.setProduct(product)
}

// Reassign moves the delivery to another recipient and deliveryman.
func (d *Delivery) Reassign(recipientID, deliverymanID kernel.UUID) error {
	return errors.Join(
		d.setRecipientID(recipientID),
		d.setDeliverymanID(deliverymanID),
	)
}

func validatePickupHour(at time.Time) error {
	hour := at.Hour()
	if hour < PickupMinHour || hour > PickupMaxHour {
		return ErrPickupOutOfHours
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.recipientID = id
	return nil
}

func (d *Delivery) setDeliverymanID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.deliverymanID = id
	return nil
}

func (d *Delivery) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	d.product = product
	return nil
}

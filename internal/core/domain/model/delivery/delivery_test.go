package delivery_test

import (
	"testing"
	"time"

	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Book", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return d
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 4, hour, minute, 0, 0, time.UTC)
}

func TestNewDelivery(t *testing.T) {
	t.Run("valid_delivery_starts_open", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.Open, d.Status())
		assert.True(t, d.IsOpen())
		assert.Nil(t, d.StartDate())
		assert.Nil(t, d.EndDate())
		assert.Nil(t, d.CanceledAt())
		assert.Nil(t, d.RemovedAt())
		assert.Nil(t, d.SignatureID())
	})

	t.Run("empty_product_is_rejected", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_ids_are_rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := delivery.NewDelivery(zero, kernel.NewUUID(), kernel.NewUUID(), "Book", time.Now())
		require.Error(t, err)

		_, err = delivery.NewDelivery(kernel.NewUUID(), zero, kernel.NewUUID(), "Book", time.Now())
		require.Error(t, err)

		_, err = delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), zero, "Book", time.Now())
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var d delivery.Delivery

		assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, d.Validate())
	})
}

func TestDelivery_Withdraw_PickupWindow(t *testing.T) {
	testCases := []struct {
		name     string
		at       time.Time
		accepted bool
	}{
		{"before_window_7h59", at(7, 59), false},
		{"window_start_8h00", at(8, 0), true},
		{"mid_window_9h00", at(9, 0), true},
		{"window_end_18h59", at(18, 59), true},
		{"after_window_19h00", at(19, 0), false},
		{"midnight", at(0, 0), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDelivery(t)

			err := d.Withdraw(tc.at, 0)

			if tc.accepted {
				require.NoError(t, err)
				require.NotNil(t, d.StartDate())
				assert.Equal(t, tc.at, *d.StartDate())
				assert.Equal(t, delivery.Withdrawn, d.Status())
			} else {
				require.ErrorIs(t, err, delivery.ErrPickupOutOfHours)
				assert.Nil(t, d.StartDate())
			}
		})
	}
}

func TestDelivery_Withdraw_DailyLimit(t *testing.T) {
	t.Run("fifth_withdrawal_is_accepted", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Withdraw(at(9, 0), delivery.MaxDailyWithdrawals-1))
	})

	t.Run("sixth_withdrawal_is_rejected", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.Withdraw(at(9, 0), delivery.MaxDailyWithdrawals)

		require.ErrorIs(t, err, delivery.ErrDailyWithdrawalLimitExceeded)
		assert.Nil(t, d.StartDate())
	})

	t.Run("resubmission_counts_against_its_own_limit", func(t *testing.T) {
		// The observed count includes every recorded same-day withdrawal,
		// including a previous withdrawal of this same delivery.
		d := newTestDelivery(t)
		require.NoError(t, d.Withdraw(at(9, 0), 4))

		err := d.Withdraw(at(10, 0), 5)

		require.ErrorIs(t, err, delivery.ErrDailyWithdrawalLimitExceeded)
	})

	t.Run("hour_window_is_checked_before_limit", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.Withdraw(at(7, 0), delivery.MaxDailyWithdrawals)

		require.ErrorIs(t, err, delivery.ErrPickupOutOfHours)
	})
}

func TestDelivery_RecordPickup(t *testing.T) {
	t.Run("checks_only_the_window", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.RecordPickup(at(8, 30)))
		require.NotNil(t, d.StartDate())
	})

	t.Run("out_of_hours_is_rejected", func(t *testing.T) {
		d := newTestDelivery(t)

		require.ErrorIs(t, d.RecordPickup(at(19, 0)), delivery.ErrPickupOutOfHours)
	})
}

func TestDelivery_Complete(t *testing.T) {
	t.Run("records_end_date_and_signature", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Withdraw(at(9, 0), 0))
		signatureID := kernel.NewUUID()

		err := d.Complete(at(16, 0), signatureID)

		require.NoError(t, err)
		require.NotNil(t, d.EndDate())
		require.NotNil(t, d.SignatureID())
		assert.True(t, signatureID.IsEqual(*d.SignatureID()))
		assert.Equal(t, delivery.Delivered, d.Status())
		assert.False(t, d.IsOpen())
	})

	t.Run("invalid_signature_id_is_rejected", func(t *testing.T) {
		d := newTestDelivery(t)
		var zero kernel.UUID

		err := d.Complete(at(16, 0), zero)

		require.Error(t, err)
		assert.Nil(t, d.EndDate())
	})
}

func TestDelivery_Cancel(t *testing.T) {
	now := at(11, 0)

	t.Run("open_delivery_is_canceled", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Cancel(now))
		require.NotNil(t, d.CanceledAt())
		assert.Equal(t, delivery.Canceled, d.Status())
		assert.False(t, d.IsOpen())
	})

	t.Run("second_cancel_is_rejected", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Cancel(now))

		require.ErrorIs(t, d.Cancel(now), delivery.ErrAlreadyCanceled)
	})

	t.Run("withdrawn_delivery_cannot_be_canceled", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Withdraw(at(9, 0), 0))

		require.ErrorIs(t, d.Cancel(now), delivery.ErrAlreadyPickedUp)
		assert.Nil(t, d.CanceledAt())
	})

	t.Run("delivered_delivery_cannot_be_canceled", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Withdraw(at(9, 0), 0))
		require.NoError(t, d.Complete(at(16, 0), kernel.NewUUID()))

		// The withdrawal check fires first: start date is always set before
		// the end date on this path.
		require.ErrorIs(t, d.Cancel(now), delivery.ErrAlreadyPickedUp)
	})
}

func TestDelivery_CancelOnProblem(t *testing.T) {
	now := at(11, 0)

	t.Run("withdrawn_delivery_can_be_canceled", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Withdraw(at(9, 0), 0))

		require.NoError(t, d.CancelOnProblem(now))
		assert.Equal(t, delivery.Canceled, d.Status())
	})

	t.Run("already_canceled_is_rejected", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.CancelOnProblem(now))

		require.ErrorIs(t, d.CancelOnProblem(now), delivery.ErrAlreadyCanceled)
	})
}

func TestDelivery_Remove(t *testing.T) {
	now := at(12, 0)

	t.Run("open_delivery_cannot_be_removed", func(t *testing.T) {
		d := newTestDelivery(t)

		require.ErrorIs(t, d.Remove(now), delivery.ErrStillOpen)
		assert.Nil(t, d.RemovedAt())
	})

	t.Run("withdrawn_delivery_cannot_be_removed", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Withdraw(at(9, 0), 0))

		require.ErrorIs(t, d.Remove(now), delivery.ErrStillOpen)
	})

	t.Run("canceled_delivery_can_be_removed", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Cancel(at(11, 0)))

		require.NoError(t, d.Remove(now))
		require.NotNil(t, d.RemovedAt())
		assert.Equal(t, delivery.Removed, d.Status())
	})

	t.Run("delivered_delivery_can_be_removed", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Withdraw(at(9, 0), 0))
		require.NoError(t, d.Complete(at(16, 0), kernel.NewUUID()))

		require.NoError(t, d.Remove(now))
	})

	t.Run("second_removal_is_rejected", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Cancel(at(11, 0)))
		require.NoError(t, d.Remove(now))

		require.ErrorIs(t, d.Remove(now), delivery.ErrAlreadyRemoved)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("restores_all_lifecycle_timestamps", func(t *testing.T) {
		id := kernel.NewUUID()
		signatureID := kernel.NewUUID()
		start := at(9, 0)
		end := at(16, 0)
		removed := at(17, 0)
		created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

		d, err := delivery.RestoreDelivery(
			id, kernel.NewUUID(), kernel.NewUUID(), "Book",
			&signatureID, &start, &end, nil, &removed, created,
		)

		require.NoError(t, err)
		assert.True(t, id.IsEqual(d.ID()))
		assert.Equal(t, start, *d.StartDate())
		assert.Equal(t, end, *d.EndDate())
		assert.Equal(t, removed, *d.RemovedAt())
		assert.Equal(t, created, d.CreatedAt())
		assert.Equal(t, delivery.Removed, d.Status())
	})

	t.Run("invalid_signature_id_is_rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Book",
			&zero, nil, nil, nil, nil, time.Now(),
		)

		require.Error(t, err)
	})
}

func TestDelivery_Reassign(t *testing.T) {
	d := newTestDelivery(t)
	recipientID := kernel.NewUUID()
	deliverymanID := kernel.NewUUID()

	require.NoError(t, d.Reassign(recipientID, deliverymanID))

	assert.True(t, recipientID.IsEqual(d.RecipientID()))
	assert.True(t, deliverymanID.IsEqual(d.DeliverymanID()))
}

func TestDelivery_ChangeProduct(t *testing.T) {
	d := newTestDelivery(t)

	require.NoError(t, d.ChangeProduct("Laptop"))
	assert.Equal(t, "Laptop", d.Product())

	require.Error(t, d.ChangeProduct(""))
	assert.Equal(t, "Laptop", d.Product())
}

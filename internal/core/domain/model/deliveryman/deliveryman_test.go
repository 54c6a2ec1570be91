package deliveryman_test

import (
	"testing"
	"time"

	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeliveryman(t *testing.T) *deliveryman.Deliveryman {
	t.Helper()

	email, err := kernel.NewEmail("john@example.com")
	require.NoError(t, err)

	dm, err := deliveryman.NewDeliveryman(kernel.NewUUID(), "John Doe", email, time.Now())
	require.NoError(t, err)
	return dm
}

func TestNewDeliveryman(t *testing.T) {
	t.Run("valid_deliveryman", func(t *testing.T) {
		dm := newTestDeliveryman(t)

		require.NoError(t, dm.Validate())
		assert.Equal(t, "John Doe", dm.Name())
		assert.Equal(t, "john@example.com", dm.Email().String())
		assert.False(t, dm.IsRemoved())
		assert.Nil(t, dm.AvatarID())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		email, _ := kernel.NewEmail("john@example.com")

		_, err := deliveryman.NewDeliveryman(kernel.NewUUID(), "", email, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_email_is_rejected", func(t *testing.T) {
		var email kernel.Email

		_, err := deliveryman.NewDeliveryman(kernel.NewUUID(), "John Doe", email, time.Now())

		require.Error(t, err)
	})
}

func TestDeliveryman_Remove(t *testing.T) {
	now := time.Now()

	t.Run("active_without_open_deliveries_is_removed", func(t *testing.T) {
		dm := newTestDeliveryman(t)

		require.NoError(t, dm.Remove(now, false))
		assert.True(t, dm.IsRemoved())
		require.NotNil(t, dm.RemovedAt())
		assert.Equal(t, now, *dm.RemovedAt())
	})

	t.Run("open_delivery_blocks_removal", func(t *testing.T) {
		dm := newTestDeliveryman(t)

		require.ErrorIs(t, dm.Remove(now, true), deliveryman.ErrHasOpenDelivery)
		assert.False(t, dm.IsRemoved())
	})

	t.Run("second_removal_is_rejected", func(t *testing.T) {
		dm := newTestDeliveryman(t)
		require.NoError(t, dm.Remove(now, false))

		require.ErrorIs(t, dm.Remove(now, false), deliveryman.ErrAlreadyRemoved)
	})
}

func TestDeliveryman_ChangeEmail(t *testing.T) {
	dm := newTestDeliveryman(t)
	newEmail, _ := kernel.NewEmail("john.doe@example.com")

	require.NoError(t, dm.ChangeEmail(newEmail))
	assert.Equal(t, "john.doe@example.com", dm.Email().String())
}

func TestDeliveryman_SetAvatar(t *testing.T) {
	t.Run("valid_avatar", func(t *testing.T) {
		dm := newTestDeliveryman(t)
		avatarID := kernel.NewUUID()

		require.NoError(t, dm.SetAvatar(avatarID))
		require.NotNil(t, dm.AvatarID())
		assert.True(t, avatarID.IsEqual(*dm.AvatarID()))
	})

	t.Run("zero_avatar_id_is_rejected", func(t *testing.T) {
		dm := newTestDeliveryman(t)
		var zero kernel.UUID

		require.Error(t, dm.SetAvatar(zero))
		assert.Nil(t, dm.AvatarID())
	})
}

func TestRestoreDeliveryman(t *testing.T) {
	email, _ := kernel.NewEmail("john@example.com")
	avatarID := kernel.NewUUID()
	removedAt := time.Now()
	createdAt := removedAt.Add(-time.Hour)

	dm, err := deliveryman.RestoreDeliveryman(
		kernel.NewUUID(), "John Doe", email, &avatarID, &removedAt, createdAt,
	)

	require.NoError(t, err)
	assert.True(t, dm.IsRemoved())
	require.NotNil(t, dm.AvatarID())
	assert.True(t, avatarID.IsEqual(*dm.AvatarID()))
	assert.Equal(t, createdAt, dm.CreatedAt())
}

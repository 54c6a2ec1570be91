package recipient_test

import (
	"testing"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/recipient"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipient(t *testing.T) *recipient.Recipient {
	t.Helper()

	addr, err := kernel.NewAddress("Main Street", 10, "", "Springfield", "SP", "12345")
	require.NoError(t, err)

	r, err := recipient.NewRecipient(kernel.NewUUID(), "Jane Doe", addr, time.Now())
	require.NoError(t, err)
	return r
}

func TestNewRecipient(t *testing.T) {
	t.Run("valid_recipient", func(t *testing.T) {
		r := newTestRecipient(t)

		require.NoError(t, r.Validate())
		assert.Equal(t, "Jane Doe", r.Name())
		assert.Equal(t, "Main Street", r.Address().Street())
		assert.False(t, r.IsRemoved())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		addr, _ := kernel.NewAddress("Main Street", 10, "", "Springfield", "SP", "12345")

		_, err := recipient.NewRecipient(kernel.NewUUID(), "", addr, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_address_is_rejected", func(t *testing.T) {
		var addr kernel.Address

		_, err := recipient.NewRecipient(kernel.NewUUID(), "Jane Doe", addr, time.Now())

		require.Error(t, err)
	})
}

func TestRecipient_Remove(t *testing.T) {
	now := time.Now()

	t.Run("active_without_open_deliveries_is_removed", func(t *testing.T) {
		r := newTestRecipient(t)

		require.NoError(t, r.Remove(now, false))
		assert.True(t, r.IsRemoved())
	})

	t.Run("open_delivery_blocks_removal", func(t *testing.T) {
		r := newTestRecipient(t)

		require.ErrorIs(t, r.Remove(now, true), recipient.ErrHasOpenDelivery)
		assert.False(t, r.IsRemoved())
	})

	t.Run("second_removal_is_rejected", func(t *testing.T) {
		r := newTestRecipient(t)
		require.NoError(t, r.Remove(now, false))

		require.ErrorIs(t, r.Remove(now, false), recipient.ErrAlreadyRemoved)
	})
}

func TestRecipient_Rename(t *testing.T) {
	r := newTestRecipient(t)

	require.NoError(t, r.Rename("Janet Doe"))
	assert.Equal(t, "Janet Doe", r.Name())

	require.Error(t, r.Rename(""))
	assert.Equal(t, "Janet Doe", r.Name())
}

func TestRecipient_Relocate(t *testing.T) {
	r := newTestRecipient(t)
	addr, _ := kernel.NewAddress("Oak Avenue", 42, "Apt 2", "Shelbyville", "SB", "54321")

	require.NoError(t, r.Relocate(addr))
	assert.True(t, addr.IsEqual(r.Address()))
}

func TestRestoreRecipient(t *testing.T) {
	addr, _ := kernel.NewAddress("Main Street", 10, "", "Springfield", "SP", "12345")
	removedAt := time.Now()

	r, err := recipient.RestoreRecipient(kernel.NewUUID(), "Jane Doe", addr, &removedAt, removedAt.Add(-time.Hour))

	require.NoError(t, err)
	assert.True(t, r.IsRemoved())
}

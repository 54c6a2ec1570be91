package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()

	addr, err := kernel.NewAddress("Main Street", 10, "", "Springfield", "SP", "12345")
	require.NoError(t, err)
	return addr
}

func TestNewCreateRecipientCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewCreateRecipientCommand(id, "Jane Doe", testAddress(t))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, id.IsEqual(cmd.RecipientID()))
		assert.Equal(t, "Jane Doe", cmd.Name())
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		_, err := commands.NewCreateRecipientCommand(kernel.NewUUID(), "", testAddress(t))

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_address_is_rejected", func(t *testing.T) {
		var addr kernel.Address

		_, err := commands.NewCreateRecipientCommand(kernel.NewUUID(), "Jane Doe", addr)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CreateRecipientCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateRecipientCommandIsNotConstructed)
	})
}

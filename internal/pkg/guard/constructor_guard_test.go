package guard_test

import (
	"errors"
	"testing"

	"parcels/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsage demonstrates the intended embedding pattern.
func TestConstructorGuardUsage(t *testing.T) {
	type signature struct {
		fileID string
		guard  guard.ConstructorGuard
	}

	var errSignatureNotConstructed = errors.New("signature must be created via newSignature")

	newSignature := func(fileID string) (signature, error) {
		if fileID == "" {
			return signature{}, errors.New("file ID is required")
		}
		return signature{fileID: fileID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_instance_passes_validation", func(t *testing.T) {
		s, err := newSignature("f-1")

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errSignatureNotConstructed))
	})

	t.Run("zero_value_instance_fails_validation", func(t *testing.T) {
		var s signature

		err := s.guard.Validate(errSignatureNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errSignatureNotConstructed, err)
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}

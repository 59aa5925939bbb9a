package privateuse1

import (
	"testing"

	"github.com/mengph/pytorch/accelerators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnableDisable(t *testing.T) {
	assert.False(t, Enabled())
	assert.False(t, accelerators.Registered().IsAvailable(accelerators.PrivateUse1))

	Enable()
	defer Disable()
	assert.True(t, Enabled())

	device, err := accelerators.Resolve(accelerators.Registered(), true)
	require.NoError(t, err)
	assert.Equal(t, accelerators.PrivateUse1, device)

	Disable()
	assert.False(t, Enabled())
	assert.False(t, accelerators.Registered().IsAvailable(accelerators.PrivateUse1))
}

func TestEnableIsIdempotent(t *testing.T) {
	// Register panics on double registration; Enable must only register once.
	require.NotPanics(t, func() {
		Enable()
		Enable()
	})
	Disable()
}

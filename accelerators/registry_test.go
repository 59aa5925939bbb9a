package accelerators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	withHooks(t, FlagSet{})

	Register(CUDA, func() bool { return true })
	Register(MPS, func() bool { return false })

	av := Registered()
	assert.True(t, av.IsAvailable(CUDA))
	assert.False(t, av.IsAvailable(MPS), "hook reports not present")
	assert.False(t, av.IsAvailable(XPU), "no hook registered")

	assert.Equal(t, []DeviceType{CUDA, MPS}, RegisteredDevices())
}

func TestRegister_TwiceIsFatal(t *testing.T) {
	withHooks(t, FlagSet{})
	Register(XPU, func() bool { return true })
	require.Panics(t, func() { Register(XPU, func() bool { return true }) })
}

func TestRegister_InvalidIsFatal(t *testing.T) {
	withHooks(t, FlagSet{})
	require.Panics(t, func() { Register(DeviceNone, func() bool { return true }) })
	require.Panics(t, func() { Register(CUDA, nil) })

	// The panic names the offending device; the hook itself is never
	// formatted (nor called).
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "Register must panic with an error")
		assert.Contains(t, err.Error(), CUDA.String())
	}()
	Register(CUDA, nil)
}

func TestDeviceTypeString(t *testing.T) {
	names := make(map[string]bool)
	for _, device := range Devices() {
		name := device.String()
		assert.NotEmpty(t, name)
		assert.False(t, names[name], "device names must be unique")
		names[name] = true
	}
	assert.Equal(t, "none", DeviceNone.String())
	assert.Equal(t, "invalid", DeviceType(255).String())
}

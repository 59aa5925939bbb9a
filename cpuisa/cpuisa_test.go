package cpuisa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported_WidestFirst(t *testing.T) {
	supported := Supported()
	for i := 1; i < len(supported); i++ {
		assert.GreaterOrEqual(t, supported[i-1].BitWidth, supported[i].BitWidth)
	}
}

func TestSupported_Cached(t *testing.T) {
	assert.Equal(t, Supported(), Supported())
}

func TestBest(t *testing.T) {
	supported := Supported()
	best, found := Best()
	if len(supported) == 0 {
		assert.False(t, found)
		return
	}
	require.True(t, found)
	assert.Equal(t, supported[0], best)
}

func TestCapTo(t *testing.T) {
	detected := []VecISA{AVX512, AVX2}

	assert.Equal(t, []VecISA{AVX2}, capTo(detected, "avx2"))
	assert.Equal(t, detected, capTo(detected, "avx512"))
	assert.Empty(t, capTo(detected, "default"))
	assert.Equal(t, detected, capTo(detected, "no-such-isa"),
		"unknown capability name warns but leaves detection untouched")
	assert.Empty(t, capTo(nil, "avx2"))
}

//go:build darwin

package mps

import (
	"runtime"

	"github.com/mengph/pytorch/accelerators"
)

func init() {
	accelerators.Register(accelerators.MPS, available)
}

// Metal Performance Shaders are available on every Apple Silicon Mac. Intel
// Macs have partial Metal support, not enough for the compute path.
func available() bool {
	return runtime.GOARCH == "arm64"
}

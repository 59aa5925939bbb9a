// Package rocm registers the HIP (AMD ROCm GPU) backend presence hook.
//
//	import _ "github.com/mengph/pytorch/accelerators/rocm"
//
// Detection probes the amdgpu compute interface on Linux; other platforms
// register as never present.
package rocm

import (
	"github.com/mengph/pytorch/accelerators"
)

func init() {
	accelerators.Register(accelerators.HIP, available)
}

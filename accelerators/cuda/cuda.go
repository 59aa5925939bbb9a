// Package cuda registers the CUDA (Nvidia GPU) backend presence hook.
//
// Importing this package (usually blank) lets the accelerator resolver see
// whether an Nvidia driver is installed on the host:
//
//	import _ "github.com/mengph/pytorch/accelerators/cuda"
//
// Detection is only implemented on Linux, by probing the kernel driver
// surface; on other platforms the backend registers as never present.
package cuda

import (
	"github.com/mengph/pytorch/accelerators"
)

func init() {
	accelerators.Register(accelerators.CUDA, available)
}

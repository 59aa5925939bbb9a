// Package xpu registers the XPU (Intel GPU) backend presence hook.
//
//	import _ "github.com/mengph/pytorch/accelerators/xpu"
//
// Detection scans the DRM render nodes for an Intel GPU on Linux; other
// platforms register as never present.
package xpu

import (
	"github.com/mengph/pytorch/accelerators"
)

func init() {
	accelerators.Register(accelerators.XPU, available)
}

// Package all registers detection for every supported accelerator backend.
//
// To enable them all, simply include:
//
//	import _ "github.com/mengph/pytorch/accelerators/all"
//
// The privateuse1 override backend is not included: test harnesses enable it
// explicitly.
package all

import (
	_ "github.com/mengph/pytorch/accelerators/cuda"
	_ "github.com/mengph/pytorch/accelerators/mps"
	_ "github.com/mengph/pytorch/accelerators/mtia"
	_ "github.com/mengph/pytorch/accelerators/rocm"
	_ "github.com/mengph/pytorch/accelerators/xpu"
)

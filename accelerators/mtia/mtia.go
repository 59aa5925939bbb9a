// Package mtia registers the MTIA (Meta Training and Inference Accelerator)
// backend presence hook.
//
//	import _ "github.com/mengph/pytorch/accelerators/mtia"
package mtia

import (
	"github.com/mengph/pytorch/accelerators"
)

func init() {
	accelerators.Register(accelerators.MTIA, available)
}

// Package privateuse1 is the override backend, reserved for out-of-tree
// integrations and test harnesses.
//
// Unlike the real backends, it is not registered by a blank import: callers
// opt in explicitly with Enable. Once enabled it wins resolution over every
// other backend and deliberately bypasses the mutual-exclusion checks, so a
// synthetic backend can run alongside a real one.
package privateuse1

import (
	"sync"
	"sync/atomic"

	"github.com/mengph/pytorch/accelerators"
)

var (
	registerOnce sync.Once
	present      atomic.Bool
)

// Enable registers the PrivateUse1 backend (first call only) and marks it
// present.
func Enable() {
	registerOnce.Do(func() {
		accelerators.Register(accelerators.PrivateUse1, present.Load)
	})
	present.Store(true)
}

// Disable marks the backend absent again. The registration itself is
// permanent; only the presence flag is cleared.
func Disable() {
	present.Store(false)
}

// Enabled reports whether the backend currently registers as present.
func Enabled() bool {
	return present.Load()
}

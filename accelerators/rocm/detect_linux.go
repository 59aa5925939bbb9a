//go:build linux

package rocm

import (
	"os"
	"sync"

	"k8s.io/klog/v2"
)

// kfdPath is the Kernel Fusion Driver device node, the compute entry point of
// the amdgpu stack.
const kfdPath = "/dev/kfd"

var detectOnce = sync.OnceValue(func() bool {
	if _, err := os.Stat(kfdPath); err != nil {
		return false
	}
	klog.V(1).Infof("rocm: amdgpu compute device detected at %s", kfdPath)
	return true
})

func available() bool { return detectOnce() }

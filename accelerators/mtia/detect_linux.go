//go:build linux

package mtia

import (
	"path/filepath"
	"sync"

	"k8s.io/klog/v2"
)

var detectOnce = sync.OnceValue(func() bool {
	// MTIA boards expose accel nodes through the kernel's compute accelerator
	// subsystem.
	nodes, err := filepath.Glob("/dev/accel/accel*")
	if err != nil || len(nodes) == 0 {
		return false
	}
	klog.V(1).Infof("mtia: %d accelerator node(s) detected under /dev/accel", len(nodes))
	return true
})

func available() bool { return detectOnce() }

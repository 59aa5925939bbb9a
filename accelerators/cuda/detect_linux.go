//go:build linux

package cuda

import (
	"os"
	"sync"

	"k8s.io/klog/v2"
)

// nvidiaDriverPath is published by the Nvidia kernel module when it is loaded.
const nvidiaDriverPath = "/proc/driver/nvidia/version"

var detectOnce = sync.OnceValue(func() bool {
	if _, err := os.Stat(nvidiaDriverPath); err != nil {
		return false
	}
	klog.V(1).Infof("cuda: Nvidia kernel driver detected at %s", nvidiaDriverPath)
	return true
})

func available() bool { return detectOnce() }

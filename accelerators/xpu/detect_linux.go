//go:build linux

package xpu

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

// Intel's PCI vendor id, as reported under /sys/class/drm.
const intelVendorID = "0x8086"

var detectOnce = sync.OnceValue(func() bool {
	nodes, err := filepath.Glob("/sys/class/drm/renderD*/device/vendor")
	if err != nil {
		return false
	}
	for _, node := range nodes {
		vendor, err := os.ReadFile(node)
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(vendor)) == intelVendorID {
			klog.V(1).Infof("xpu: Intel GPU render node detected at %s", filepath.Dir(node))
			return true
		}
	}
	return false
})

func available() bool { return detectOnce() }

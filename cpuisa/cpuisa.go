// Package cpuisa reports which vector instruction set extensions the host CPU
// supports, for the code paths that run on the CPU when no accelerator is
// available.
//
// Detection runs once and is cached for the process lifetime. The result can
// be narrowed (never widened) with the ATEN_CPU_CAPABILITY environment
// variable, e.g. ATEN_CPU_CAPABILITY=avx2 on an AVX-512 machine, or
// ATEN_CPU_CAPABILITY=default to disable vector extensions entirely.
package cpuisa

import (
	"os"
	"slices"
	"sync"

	"k8s.io/klog/v2"
)

// VecISA describes one vector instruction set extension.
type VecISA struct {
	Name     string
	BitWidth int
}

// String implements fmt.Stringer.
func (isa VecISA) String() string { return isa.Name }

var (
	AVX512 = VecISA{Name: "avx512", BitWidth: 512}
	AVX2   = VecISA{Name: "avx2", BitWidth: 256}
	NEON   = VecISA{Name: "neon", BitWidth: 256}
)

// CapabilityEnv is the environment variable that caps the detected
// capability.
const CapabilityEnv = "ATEN_CPU_CAPABILITY"

var supportedOnce = sync.OnceValue(func() []VecISA {
	isas := detect()
	if capability, found := os.LookupEnv(CapabilityEnv); found {
		isas = capTo(isas, capability)
	}
	klog.V(1).Infof("cpuisa: supported vector extensions: %v", isas)
	return isas
})

// capTo drops every ISA wider than the named one. "default" drops them all.
// An unknown name leaves the detected list untouched, with a warning.
func capTo(isas []VecISA, capability string) []VecISA {
	if capability == "default" {
		return nil
	}
	for i, isa := range isas {
		if isa.Name == capability {
			return isas[i:]
		}
	}
	klog.Warningf("cpuisa: %s=%q does not match any supported vector extension, ignoring it", CapabilityEnv, capability)
	return isas
}

// Supported returns the host's vector extensions, widest first, after
// applying the ATEN_CPU_CAPABILITY cap.
func Supported() []VecISA {
	return slices.Clone(supportedOnce())
}

// Best returns the widest supported vector extension, or false if the host
// has none.
func Best() (VecISA, bool) {
	supported := supportedOnce()
	if len(supported) == 0 {
		return VecISA{}, false
	}
	return supported[0], true
}

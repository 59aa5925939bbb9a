// Package accelerators decides which hardware accelerator backend (if any) the
// current process should use.
//
// Several accelerator backends may be compiled into the same binary, each one
// registering a presence hook during initialization (see the subpackages cuda,
// rocm, mps, xpu, mtia and privateuse1). At most one of them is expected to be
// meaningfully active at a time, and GetAccelerator is the single authority
// answering which one that is. The only exception is PrivateUse1, which is
// explicitly allowed to coexist with any other backend, so test harnesses can
// run a synthetic backend alongside a real one.
//
// The usual way to enable detection of every supported backend is a blank
// import of the aggregate package:
//
//	import _ "github.com/mengph/pytorch/accelerators/all"
//
// Mutual-exclusion violations (two exclusive backends compiled in together)
// and "accelerator required but none available" are configuration errors, not
// recoverable runtime conditions: GetAccelerator panics with a stack trace.
// See package github.com/gomlx/exceptions.
package accelerators

// DeviceType identifies one accelerator backend. It is a fixed, closed
// enumeration: values are defined here at build time and never constructed
// dynamically.
type DeviceType int

const (
	// DeviceNone is the zero value, meaning no accelerator.
	DeviceNone DeviceType = iota

	// PrivateUse1 is the override backend reserved for out-of-tree or test
	// integrations. It bypasses mutual-exclusion checks and always wins.
	PrivateUse1

	// CUDA is the Nvidia GPU backend.
	CUDA

	// MTIA is the Meta Training and Inference Accelerator backend.
	MTIA

	// HIP is the AMD ROCm GPU backend.
	HIP

	// MPS is the Apple Metal Performance Shaders backend.
	MPS

	// XPU is the Intel GPU backend.
	XPU
)

// String implements fmt.Stringer.
func (d DeviceType) String() string {
	switch d {
	case DeviceNone:
		return "none"
	case PrivateUse1:
		return "privateuse1"
	case CUDA:
		return "cuda"
	case MTIA:
		return "mtia"
	case HIP:
		return "hip"
	case MPS:
		return "mps"
	case XPU:
		return "xpu"
	}
	return "invalid"
}

// Devices returns every known accelerator device type, the override backend
// first, then the real backends in resolution priority order.
func Devices() []DeviceType {
	return []DeviceType{PrivateUse1, CUDA, MTIA, HIP, MPS, XPU}
}

// DeviceNum represents which device of a backend holds a buffer or executes a
// computation. It is up to the backend to interpret it.
type DeviceNum int

package accelerators

import (
	"fmt"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// acceleratorPriority is the resolution order for the mutually exclusive
// backends. The order reflects backend maturity and preference, and the
// exclusion set of each entry is the tail of the list after it: a selected
// backend must not coexist with any lower-priority one. XPU, being last,
// has an empty tail and is therefore never checked against anything.
var acceleratorPriority = []DeviceType{CUDA, MTIA, HIP, MPS, XPU}

// MutualExclusionError reports two mutually exclusive backends present at the
// same time. This indicates a broken build or deployment where two exclusive
// backends were compiled in simultaneously; it is never resolved silently.
type MutualExclusionError struct {
	// Selected is the backend that won on priority.
	Selected DeviceType

	// Conflicting is the lower-priority backend that is also present.
	Conflicting DeviceType
}

// Error implements the error interface.
func (e *MutualExclusionError) Error() string {
	return fmt.Sprintf("cannot have %s with other devices: %s is already in use", e.Conflicting, e.Selected)
}

// ErrNoAccelerator is returned by Resolve (and causes GetAccelerator to
// panic) when the caller required an accelerator and none is present.
var ErrNoAccelerator = errors.New("cannot access accelerator device when none is available")

// Resolve evaluates the presence flags visible through av and returns the
// accelerator backend the process should use.
//
// PrivateUse1, if present, wins immediately and skips all mutual-exclusion
// checks. Otherwise the first present backend in priority order wins, provided
// no lower-priority backend is also present -- two exclusive backends present
// at once yield a MutualExclusionError. With nothing present, Resolve returns
// ErrNoAccelerator if required is true, and (DeviceNone, nil) otherwise.
//
// Resolve is a pure function over the current flag state: it keeps no cache,
// mutates nothing, and is safe for concurrent use as long as av is.
func Resolve(av Availability, required bool) (DeviceType, error) {
	if av.IsAvailable(PrivateUse1) {
		// PrivateUse1 is explicitly allowed next to another device, so test
		// harnesses can register a synthetic backend alongside a real one.
		return PrivateUse1, nil
	}
	for i, device := range acceleratorPriority {
		if !av.IsAvailable(device) {
			continue
		}
		for _, lower := range acceleratorPriority[i+1:] {
			if av.IsAvailable(lower) {
				return DeviceNone, errors.WithStack(&MutualExclusionError{Selected: device, Conflicting: lower})
			}
		}
		return device, nil
	}
	if required {
		return DeviceNone, errors.WithStack(ErrNoAccelerator)
	}
	return DeviceNone, nil
}

// GetAccelerator resolves the active accelerator over the globally registered
// backends. The returned bool is false only when no backend is present and
// required is false.
//
// Errors are fatal: a mutual-exclusion violation, or required set with no
// backend present, panics with a stack trace rather than returning -- both
// conditions mean an invalid build or deployment, not a transient fault.
func GetAccelerator(required bool) (DeviceType, bool) {
	device, err := Resolve(Registered(), required)
	if err != nil {
		exceptions.Panicf("accelerators: %+v", err)
	}
	if device == DeviceNone {
		return DeviceNone, false
	}
	klog.V(2).Infof("accelerators: resolved active accelerator to %s", device)
	return device, true
}

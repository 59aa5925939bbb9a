package accelerators

import (
	"slices"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/maps"
	"k8s.io/klog/v2"
)

// Availability answers whether a backend is currently present. The resolver
// only ever reads through this interface, so synthetic combinations can be
// evaluated in tests without any real backend compiled in (see FlagSet).
type Availability interface {
	IsAvailable(device DeviceType) bool
}

var presenceHooks = make(map[DeviceType]func() bool)

// Register installs the presence hook for the given backend.
//
// Each backend subpackage calls Register from its init(), so every hook is in
// place before any accelerator-dependent code runs; hooks are never replaced
// or removed afterwards. Registering the same device twice is a configuration
// error and panics.
func Register(device DeviceType, present func() bool) {
	if device == DeviceNone || present == nil {
		exceptions.Panicf("accelerators.Register(%s): nil presence hook or invalid device", device)
	}
	if _, found := presenceHooks[device]; found {
		exceptions.Panicf("accelerators.Register(%s): backend registered twice", device)
	}
	presenceHooks[device] = present
	klog.V(1).Infof("accelerators: registered backend %s", device)
}

// Registered returns the Availability view over the globally registered
// presence hooks. A device with no hook registered is simply not available.
func Registered() Availability { return globalRegistry{} }

type globalRegistry struct{}

func (globalRegistry) IsAvailable(device DeviceType) bool {
	hook, found := presenceHooks[device]
	return found && hook()
}

// RegisteredDevices lists the backends that registered a presence hook,
// whether or not their hook currently reports the device present.
func RegisteredDevices() []DeviceType {
	devices := maps.Keys(presenceHooks)
	slices.Sort(devices)
	return devices
}

// FlagSet is a static Availability: devices map to their presence flag, absent
// entries are not available.
type FlagSet map[DeviceType]bool

// IsAvailable implements Availability.
func (f FlagSet) IsAvailable(device DeviceType) bool { return f[device] }

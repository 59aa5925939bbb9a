// Package allocstats accounts device memory the way a caching allocator
// consumes it: bytes requested by clients, bytes actually handed out, and
// bytes reserved from the device, each split between a small and a large
// allocation pool.
//
// The package only does the bookkeeping. It owns no memory and talks to no
// device; backends report their allocator events into a Tracker and the
// runtime reads the per-device summaries back out.
package allocstats

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"

	"github.com/mengph/pytorch/accelerators"
)

// Stat is one accounting counter. Current and Peak describe the live value,
// Allocated and Freed accumulate the total traffic since the last reset.
type Stat struct {
	Current   int64
	Peak      int64
	Allocated int64
	Freed     int64
}

func (s *Stat) increase(amount int64) {
	s.Current += amount
	s.Allocated += amount
	s.Peak = max(s.Peak, s.Current)
}

func (s *Stat) decrease(amount int64) {
	s.Current -= amount
	s.Freed += amount
	if s.Current < 0 {
		exceptions.Panicf("allocstats: negative current value (%d), freed more than was allocated", s.Current)
	}
}

// StatType selects which pool a counter describes.
type StatType int

const (
	// Aggregate sums both pools.
	Aggregate StatType = iota

	// SmallPool covers allocations up to SmallAllocationLimit.
	SmallPool

	// LargePool covers everything above SmallAllocationLimit.
	LargePool

	numStatTypes
)

// String implements fmt.Stringer.
func (t StatType) String() string {
	switch t {
	case Aggregate:
		return "aggregate"
	case SmallPool:
		return "small_pool"
	case LargePool:
		return "large_pool"
	}
	return "invalid"
}

// SmallAllocationLimit is the pool split point: allocations of at most this
// many bytes are served from the small pool.
const SmallAllocationLimit = 1 << 20

func poolFor(bytes int64) StatType {
	if bytes <= SmallAllocationLimit {
		return SmallPool
	}
	return LargePool
}

// StatArray holds one Stat per StatType.
type StatArray [numStatTypes]Stat

func (a *StatArray) increase(pool StatType, amount int64) {
	a[Aggregate].increase(amount)
	a[pool].increase(amount)
}

func (a *StatArray) decrease(pool StatType, amount int64) {
	a[Aggregate].decrease(amount)
	a[pool].decrease(amount)
}

// DeviceStats is the memory accounting summary of one device.
type DeviceStats struct {
	// AllocatedBytes were handed out to clients, after rounding.
	AllocatedBytes StatArray

	// ReservedBytes were obtained from the device, whether currently handed
	// out or cached for reuse.
	ReservedBytes StatArray

	// ActiveBytes are inside blocks that still have live references.
	ActiveBytes StatArray

	// RequestedBytes are what clients actually asked for, before rounding.
	RequestedBytes StatArray
}

// Tracker accumulates allocator events per device. Safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	devices []DeviceStats
}

// NewTracker returns a Tracker covering deviceCount devices.
func NewTracker(deviceCount accelerators.DeviceNum) *Tracker {
	if deviceCount <= 0 {
		exceptions.Panicf("allocstats.NewTracker(%d): device count must be positive", deviceCount)
	}
	return &Tracker{devices: make([]DeviceStats, deviceCount)}
}

// NumDevices returns the number of devices the Tracker covers.
func (t *Tracker) NumDevices() accelerators.DeviceNum {
	return accelerators.DeviceNum(len(t.devices))
}

func (t *Tracker) deviceStats(device accelerators.DeviceNum) *DeviceStats {
	if device < 0 || int(device) >= len(t.devices) {
		exceptions.Panicf("allocstats: device %d out of range, tracker covers %d device(s)", device, len(t.devices))
	}
	return &t.devices[device]
}

// RecordAlloc accounts one allocation: requested is what the client asked
// for, allocated is the rounded block size actually handed out. The pool is
// chosen by the allocated size.
func (t *Tracker) RecordAlloc(device accelerators.DeviceNum, requested, allocated int64) {
	pool := poolFor(allocated)
	t.mu.Lock()
	defer t.mu.Unlock()
	stats := t.deviceStats(device)
	stats.AllocatedBytes.increase(pool, allocated)
	stats.ActiveBytes.increase(pool, allocated)
	stats.RequestedBytes.increase(pool, requested)
}

// RecordFree accounts the release of an allocation previously recorded with
// RecordAlloc, with the same sizes.
func (t *Tracker) RecordFree(device accelerators.DeviceNum, requested, allocated int64) {
	pool := poolFor(allocated)
	t.mu.Lock()
	defer t.mu.Unlock()
	stats := t.deviceStats(device)
	stats.AllocatedBytes.decrease(pool, allocated)
	stats.ActiveBytes.decrease(pool, allocated)
	stats.RequestedBytes.decrease(pool, requested)
}

// RecordReserve accounts bytes obtained from the device, whether to serve an
// allocation or to grow the cache.
func (t *Tracker) RecordReserve(device accelerators.DeviceNum, bytes int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deviceStats(device).ReservedBytes.increase(poolFor(bytes), bytes)
}

// RecordRelease accounts bytes returned to the device, e.g. when the cache is
// emptied.
func (t *Tracker) RecordRelease(device accelerators.DeviceNum, bytes int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.deviceStats(device).ReservedBytes.decrease(poolFor(bytes), bytes)
}

// ResetPeakStats resets the peak values of one device to its current values.
func (t *Tracker) ResetPeakStats(device accelerators.DeviceNum) {
	t.mu.Lock()
	defer t.mu.Unlock()
	stats := t.deviceStats(device)
	for _, array := range []*StatArray{&stats.AllocatedBytes, &stats.ReservedBytes, &stats.ActiveBytes, &stats.RequestedBytes} {
		for i := range array {
			array[i].Peak = array[i].Current
		}
	}
}

// ResetAccumulatedStats zeroes the Allocated/Freed accumulators of one
// device. Current and Peak are untouched.
func (t *Tracker) ResetAccumulatedStats(device accelerators.DeviceNum) {
	t.mu.Lock()
	defer t.mu.Unlock()
	stats := t.deviceStats(device)
	for _, array := range []*StatArray{&stats.AllocatedBytes, &stats.ReservedBytes, &stats.ActiveBytes, &stats.RequestedBytes} {
		for i := range array {
			array[i].Allocated = 0
			array[i].Freed = 0
		}
	}
}

// DeviceStats returns a copy of the accounting summary for one device.
func (t *Tracker) DeviceStats(device accelerators.DeviceNum) DeviceStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return *t.deviceStats(device)
}

// String returns a human-readable per-device summary.
func (t *Tracker) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var parts []string
	for device := range t.devices {
		stats := &t.devices[device]
		parts = append(parts, fmt.Sprintf("device #%d: allocated=%s (peak %s), reserved=%s, requested=%s",
			device,
			humanizeBytes(stats.AllocatedBytes[Aggregate].Current),
			humanizeBytes(stats.AllocatedBytes[Aggregate].Peak),
			humanizeBytes(stats.ReservedBytes[Aggregate].Current),
			humanizeBytes(stats.RequestedBytes[Aggregate].Current)))
	}
	return strings.Join(parts, "\n")
}

func humanizeBytes(bytes int64) string {
	if bytes < 0 {
		return fmt.Sprintf("%d B(!?)", bytes)
	}
	return humanize.IBytes(uint64(bytes))
}

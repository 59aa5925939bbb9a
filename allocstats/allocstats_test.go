package allocstats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_AllocFree(t *testing.T) {
	tracker := NewTracker(2)
	require.EqualValues(t, 2, tracker.NumDevices())

	tracker.RecordAlloc(0, 100, 512)
	tracker.RecordAlloc(0, 3<<20, 4<<20)
	tracker.RecordAlloc(1, 200, 256)

	stats := tracker.DeviceStats(0)
	assert.EqualValues(t, 512+4<<20, stats.AllocatedBytes[Aggregate].Current)
	assert.EqualValues(t, 512, stats.AllocatedBytes[SmallPool].Current)
	assert.EqualValues(t, 4<<20, stats.AllocatedBytes[LargePool].Current)
	assert.EqualValues(t, 100+3<<20, stats.RequestedBytes[Aggregate].Current)

	// Device 1 accounting is independent.
	assert.EqualValues(t, 256, tracker.DeviceStats(1).AllocatedBytes[Aggregate].Current)

	tracker.RecordFree(0, 3<<20, 4<<20)
	stats = tracker.DeviceStats(0)
	assert.EqualValues(t, 512, stats.AllocatedBytes[Aggregate].Current)
	assert.EqualValues(t, 4<<20, stats.AllocatedBytes[Aggregate].Freed)
	// Peak keeps the high-water mark after the free.
	assert.EqualValues(t, 512+4<<20, stats.AllocatedBytes[Aggregate].Peak)
}

func TestTracker_PoolSplit(t *testing.T) {
	tracker := NewTracker(1)
	tracker.RecordAlloc(0, SmallAllocationLimit, SmallAllocationLimit)
	tracker.RecordAlloc(0, SmallAllocationLimit+1, SmallAllocationLimit+1)

	stats := tracker.DeviceStats(0)
	assert.EqualValues(t, SmallAllocationLimit, stats.AllocatedBytes[SmallPool].Current,
		"allocation at the limit goes to the small pool")
	assert.EqualValues(t, SmallAllocationLimit+1, stats.AllocatedBytes[LargePool].Current)
}

func TestTracker_ReserveRelease(t *testing.T) {
	tracker := NewTracker(1)
	tracker.RecordReserve(0, 8<<20)
	tracker.RecordRelease(0, 8<<20)

	stats := tracker.DeviceStats(0)
	assert.EqualValues(t, 0, stats.ReservedBytes[Aggregate].Current)
	assert.EqualValues(t, 8<<20, stats.ReservedBytes[Aggregate].Peak)
	assert.EqualValues(t, 8<<20, stats.ReservedBytes[Aggregate].Freed)
}

func TestTracker_Resets(t *testing.T) {
	tracker := NewTracker(1)
	tracker.RecordAlloc(0, 1024, 1024)
	tracker.RecordFree(0, 1024, 1024)
	tracker.RecordAlloc(0, 512, 512)

	tracker.ResetPeakStats(0)
	stats := tracker.DeviceStats(0)
	assert.EqualValues(t, 512, stats.AllocatedBytes[Aggregate].Peak,
		"peak collapses to current")
	assert.EqualValues(t, 1024+512, stats.AllocatedBytes[Aggregate].Allocated,
		"accumulators survive a peak reset")

	tracker.ResetAccumulatedStats(0)
	stats = tracker.DeviceStats(0)
	assert.EqualValues(t, 0, stats.AllocatedBytes[Aggregate].Allocated)
	assert.EqualValues(t, 0, stats.AllocatedBytes[Aggregate].Freed)
	assert.EqualValues(t, 512, stats.AllocatedBytes[Aggregate].Current,
		"live values survive an accumulator reset")
}

func TestTracker_OutOfRangeIsFatal(t *testing.T) {
	tracker := NewTracker(1)
	require.Panics(t, func() { tracker.RecordAlloc(1, 1, 1) })
	require.Panics(t, func() { tracker.DeviceStats(-1) })
	require.Panics(t, func() { NewTracker(0) })
}

func TestTracker_OverFreeIsFatal(t *testing.T) {
	tracker := NewTracker(1)
	tracker.RecordAlloc(0, 10, 10)
	require.Panics(t, func() { tracker.RecordFree(0, 20, 20) })
}

func TestTracker_Concurrent(t *testing.T) {
	tracker := NewTracker(1)
	const goroutines = 8
	const rounds = 1000
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				tracker.RecordAlloc(0, 100, 128)
				tracker.RecordFree(0, 100, 128)
			}
		}()
	}
	wg.Wait()

	stats := tracker.DeviceStats(0)
	assert.EqualValues(t, 0, stats.AllocatedBytes[Aggregate].Current)
	assert.EqualValues(t, goroutines*rounds*128, stats.AllocatedBytes[Aggregate].Allocated)
}

func TestTracker_String(t *testing.T) {
	tracker := NewTracker(1)
	tracker.RecordAlloc(0, 1<<20, 1<<20)
	assert.Contains(t, tracker.String(), "device #0")
	assert.Contains(t, tracker.String(), "1.0 MiB")
}

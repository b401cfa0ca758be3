package cpufeatures

import "sync/atomic"

// Counters for monitoring capability-record usage across a process.
var (
	initCount    uint64
	cleanupCount uint64
	probeErrors  uint64
	overrideOps  uint64
	guardTrips   uint64
)

// Metrics provides access to capability-record counters.
type Metrics struct {
	Inits       uint64 `json:"inits"`
	Cleanups    uint64 `json:"cleanups"`
	ProbeErrors uint64 `json:"probe_errors"`
	Overrides   uint64 `json:"overrides"`
	GuardTrips  uint64 `json:"guard_trips"`
}

// GetMetrics returns a snapshot of the current counters.
func GetMetrics() Metrics {
	return Metrics{
		Inits:       atomic.LoadUint64(&initCount),
		Cleanups:    atomic.LoadUint64(&cleanupCount),
		ProbeErrors: atomic.LoadUint64(&probeErrors),
		Overrides:   atomic.LoadUint64(&overrideOps),
		GuardTrips:  atomic.LoadUint64(&guardTrips),
	}
}

// ResetMetrics clears all counters.
func ResetMetrics() {
	atomic.StoreUint64(&initCount, 0)
	atomic.StoreUint64(&cleanupCount, 0)
	atomic.StoreUint64(&probeErrors, 0)
	atomic.StoreUint64(&overrideOps, 0)
	atomic.StoreUint64(&guardTrips, 0)
}

// Internal metric recording functions
func recordInit() {
	atomic.AddUint64(&initCount, 1)
}

func recordCleanup() {
	atomic.AddUint64(&cleanupCount, 1)
}

func recordProbeError() {
	atomic.AddUint64(&probeErrors, 1)
}

func recordOverride() {
	atomic.AddUint64(&overrideOps, 1)
}

func recordGuardTrip() {
	atomic.AddUint64(&guardTrips, 1)
}

package cpufeatures

import "github.com/xyproto/env/v2"

// guard is the misuse-detection layer in front of the capability record.
// When enabled it verifies the explicit initialization state before every
// operation and panics with a *CapError on violations. When disabled every
// check is a no-op and correct call discipline is trusted, matching
// release-build behavior.
type guard struct {
	enabled bool
}

func newGuard() guard {
	return guard{enabled: debugChecksEnabled()}
}

// debugChecksEnabled decides the default guard state from the environment.
// CPUFEATURES_DEBUG wins when set; otherwise checks are on everywhere but
// production.
func debugChecksEnabled() bool {
	if env.Has("CPUFEATURES_DEBUG") {
		return env.Bool("CPUFEATURES_DEBUG")
	}
	return !isProductionEnv()
}

// initialized asserts that the record is live, i.e. between Init and Cleanup.
func (g guard) initialized(ok bool, op string) {
	if g.enabled && !ok {
		recordGuardTrip()
		panic(&CapError{Code: CAP_NOT_INITIALIZED, message: "cpufeatures: " + op + " called before Init or after Cleanup"})
	}
}

// uninitialized asserts that the record is not live, i.e. Init is legal.
func (g guard) uninitialized(ok bool) {
	if g.enabled && ok {
		recordGuardTrip()
		panic(&CapError{Code: CAP_ALREADY_INITIALIZED, message: "cpufeatures: Init called twice without an intervening Cleanup"})
	}
}

// cleanable asserts that Cleanup follows a matching Init.
func (g guard) cleanable(ok bool) {
	if g.enabled && !ok {
		recordGuardTrip()
		panic(&CapError{Code: CAP_CLEANUP_WITHOUT_INIT, message: "cpufeatures: Cleanup called without a prior Init"})
	}
}

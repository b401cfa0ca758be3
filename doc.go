// Package cpufeatures separates the CPU capabilities of the machine
// running a code generator (the "host") from the capabilities of the
// machine the generated code is meant to run on (the "target").
//
// When both are the same ARM machine, target capabilities are host
// capabilities and every query forwards to the detected host record.
// When the generator runs under an instruction-set simulator on a
// different architecture, the target view carries its own settable
// capability flags so generator code paths can be exercised on hardware
// that does not natively support them.
//
// # Basic Usage
//
// Detect the host once, build a target view, and hand it to the code
// generator:
//
//	host := cpufeatures.NewHost()
//	host.Init()
//	defer host.Cleanup()
//
//	target := cpufeatures.NewTarget(host)
//	if target.IntegerDivisionSupported() {
//		// emit SDIV/UDIV
//	} else {
//		// emit a runtime division call
//	}
//
// Under simulation, override individual capabilities to test generator
// paths deterministically:
//
//	sim := cpufeatures.NewSimulatedTarget(host)
//	sim.SetIntegerDivisionSupported(false)
//	sim.SetVectorUnitSupported(true)
//
// Tests and simulators that need a fully synthetic host can initialize
// from a raw descriptor instead of probing:
//
//	host.InitFrom(cpufeatures.Descriptor{
//		Hardware: "BCM2835",
//		Features: "half thumb fastmult vfpv3 neon idiva",
//	})
//
// # Lifecycle
//
// Init and Cleanup form a strict pair: Init must not be called twice
// without an intervening Cleanup, and Cleanup requires a prior Init.
// Accessors are only valid between the two. Misuse is detected by a
// guard layer that panics with a *CapError; the guard is enabled by
// default and disabled in production (CPUFEATURES_ENV=production) or
// explicitly via CPUFEATURES_DEBUG=false, in which case call discipline
// is trusted and nothing is checked.
//
// # Concurrency
//
// Init and Cleanup are single-threaded operations. Between them the
// accessors are read-only and safe for concurrent use; the caller is
// responsible for ordering Init before and Cleanup after any concurrent
// readers. The override setters are intended for single-threaded test
// setup only.
//
// # Error Handling
//
// No recoverable errors are returned from the API. A failed or partial
// probe degrades to conservative defaults (all optional capabilities
// reported absent), and API misuse trips the guard. Guard panics carry
// a *CapError whose message is sanitized in production environments.
//
// # Platform Support
//
// Real detection runs on linux/arm (auxiliary-vector feature bits plus
// /proc/cpuinfo), linux/arm64 and darwin/arm64 (ARMv8 baseline plus the
// platform's hardware name). On every other platform the probe yields
// conservative defaults and the simulated target view is the intended
// consumer surface.
package cpufeatures

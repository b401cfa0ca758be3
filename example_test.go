package cpufeatures_test

import (
	"fmt"

	cpufeatures "github.com/blacktop/go-cpufeatures"
)

// Example shows the basic detect-once, read-many workflow a code
// generator drives at startup.
func Example() {
	host := cpufeatures.NewHost()
	host.InitFrom(cpufeatures.Descriptor{
		Hardware: "BCM2836",
		Features: "half thumb fastmult vfpv3 neon idiva",
	})
	defer host.Cleanup()

	target := cpufeatures.NewNativeTarget(host)
	fmt.Println("hardware:", target.Hardware())
	fmt.Println("integer division:", target.IntegerDivisionSupported())
	fmt.Println("vector unit:", target.VectorUnitSupported())
	fmt.Println("double truncate round:", target.DoubleTruncateRoundSupported())
	// Output:
	// hardware: BCM2836
	// integer division: true
	// vector unit: true
	// double truncate round: false
}

// ExampleSimulatedTarget exercises a generator path that the host
// hardware cannot run natively by overriding target capabilities.
func ExampleSimulatedTarget() {
	host := cpufeatures.NewHost()
	host.InitFrom(cpufeatures.Descriptor{Hardware: "Goldfish"})
	defer host.Cleanup()

	sim := cpufeatures.NewSimulatedTarget(host)
	sim.SetIntegerDivisionSupported(true)

	fmt.Println("integer division:", sim.IntegerDivisionSupported())
	fmt.Println("host unchanged:", host.IntegerDivisionSupported())
	// Output:
	// integer division: true
	// host unchanged: false
}

//go:build !((linux && (arm || arm64)) || (darwin && arm64))

package cpufeatures

// hostProbe on a non-ARM host: the generator is running under
// simulation, so there is no real target hardware to describe.
// Conservative defaults keep every optional instruction form off until
// the test harness overrides them through a SimulatedTarget.
func hostProbe() (capSet, error) {
	return defaultCaps(), nil
}

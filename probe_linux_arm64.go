//go:build linux && arm64

package cpufeatures

// hostProbe on ARMv8: division, the Advanced SIMD unit and the
// hard-float ABI are architectural, so only the hardware name needs
// probing.
func hostProbe() (capSet, error) {
	caps := armv8Caps()
	name, err := cpuinfoHardware()
	if err != nil {
		return caps, err
	}
	caps.hardware = name
	return caps, nil
}

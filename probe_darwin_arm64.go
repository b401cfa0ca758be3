//go:build darwin && arm64

package cpufeatures

import "golang.org/x/sys/unix"

// hostProbe on Apple Silicon: ARMv8 baseline feature bits plus the CPU
// brand string from sysctl.
func hostProbe() (capSet, error) {
	caps := armv8Caps()
	name, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return caps, err
	}
	caps.hardware = name
	return caps, nil
}

//go:build linux && arm

package cpufeatures

import "golang.org/x/sys/cpu"

// hostProbe takes the feature bits from the auxiliary vector as exposed
// through x/sys/cpu and the hardware name from /proc/cpuinfo. A missing
// name is a partial result, not a failure: the feature bits stand.
func hostProbe() (capSet, error) {
	caps := capSet{
		integerDivisionSupported: cpu.ARM.HasIDIVA,
		vectorUnitSupported:      cpu.ARM.HasNEON,
		hardFloatABISupported:    cpu.ARM.HasVFPv3 || cpu.ARM.HasVFPv4,
		storePCReadOffset:        DefaultStorePCReadOffset,
	}
	name, err := cpuinfoHardware()
	if err != nil {
		return caps, err
	}
	caps.hardware = name
	return caps, nil
}

package cpufeatures

import "strings"

// Descriptor is a raw capability descriptor for the ARM family, shaped
// like the kernel's /proc/cpuinfo summary: a hardware identifier plus a
// whitespace-separated feature token list. Unrecognized or empty input
// degrades to conservative defaults rather than failing.
type Descriptor struct {
	Hardware string
	Features string // e.g. "half thumb fastmult vfpv3 neon idiva idivt"

	// StorePCReadOffset overrides the store-PC read offset when
	// non-zero; most callers leave it alone and get PC+8.
	StorePCReadOffset int
}

func (d Descriptor) parse() capSet {
	caps := capSet{
		hardware:          d.Hardware,
		storePCReadOffset: DefaultStorePCReadOffset,
	}
	if d.StorePCReadOffset != 0 {
		caps.storePCReadOffset = d.StorePCReadOffset
	}
	for _, tok := range strings.Fields(d.Features) {
		switch tok {
		case "idiva", "idivt":
			caps.integerDivisionSupported = true
		case "neon", "asimd":
			caps.vectorUnitSupported = true
		case "vfpv3", "vfpv4", "fp":
			caps.hardFloatABISupported = true
		}
	}
	return caps
}

// parseCPUInfoHardware extracts the "Hardware" line from a /proc/cpuinfo
// dump. Newer kernels omit it, in which case the first "model name" line
// stands in. Returns the empty string when neither is present.
func parseCPUInfoHardware(info string) string {
	var model string
	for _, line := range strings.Split(info, "\n") {
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Hardware":
			return strings.TrimSpace(val)
		case "model name":
			if model == "" {
				model = strings.TrimSpace(val)
			}
		}
	}
	return model
}

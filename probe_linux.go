//go:build linux

package cpufeatures

import "os"

// cpuinfoHardware reads the hardware name out of /proc/cpuinfo.
func cpuinfoHardware() (string, error) {
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return "", err
	}
	return parseCPUInfoHardware(string(data)), nil
}

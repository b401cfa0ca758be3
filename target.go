package cpufeatures

import "runtime"

// NativeTarget answers capability queries for a generator running on the
// ARM hardware it also targets. Every query forwards to the host record,
// so the two views cannot diverge.
type NativeTarget struct {
	host *Host
}

// NewNativeTarget wraps an initialized host record in a forwarding view.
func NewNativeTarget(h *Host) *NativeTarget {
	return &NativeTarget{host: h}
}

func (t *NativeTarget) Hardware() string               { return t.host.Hardware() }
func (t *NativeTarget) IntegerDivisionSupported() bool { return t.host.IntegerDivisionSupported() }
func (t *NativeTarget) VectorUnitSupported() bool      { return t.host.VectorUnitSupported() }
func (t *NativeTarget) HardFloatABISupported() bool    { return t.host.HardFloatABISupported() }
func (t *NativeTarget) StorePCReadOffset() int         { return t.host.StorePCReadOffset() }

// DoubleTruncateRoundSupported reports whether the target has a
// truncating double-to-double round instruction. The ARM family has
// none; this is a property of the instruction set, not of the executing
// hardware, so it never consults the host.
func (t *NativeTarget) DoubleTruncateRoundSupported() bool { return false }

// SimulatedTarget answers capability queries for a generator running
// under simulation on a different host architecture. The two flags a
// simulator can meaningfully vary are held independently of the host
// record and seeded from it at construction; everything else still
// forwards.
type SimulatedTarget struct {
	host            *Host
	integerDivision bool
	vectorUnit      bool
}

// NewSimulatedTarget builds a simulated view over an initialized host
// record, seeding the settable flags from the host's detected values.
func NewSimulatedTarget(h *Host) *SimulatedTarget {
	return &SimulatedTarget{
		host:            h,
		integerDivision: h.IntegerDivisionSupported(),
		vectorUnit:      h.VectorUnitSupported(),
	}
}

func (t *SimulatedTarget) Hardware() string            { return t.host.Hardware() }
func (t *SimulatedTarget) HardFloatABISupported() bool { return t.host.HardFloatABISupported() }
func (t *SimulatedTarget) StorePCReadOffset() int      { return t.host.StorePCReadOffset() }

func (t *SimulatedTarget) IntegerDivisionSupported() bool {
	t.host.guard.initialized(t.host.initialized, "IntegerDivisionSupported")
	return t.integerDivision
}

func (t *SimulatedTarget) VectorUnitSupported() bool {
	t.host.guard.initialized(t.host.initialized, "VectorUnitSupported")
	return t.vectorUnit
}

// DoubleTruncateRoundSupported is the same instruction-set constant the
// native view answers; no override can change it.
func (t *SimulatedTarget) DoubleTruncateRoundSupported() bool { return false }

// SetIntegerDivisionSupported overrides the division capability of the
// simulated target. Intended for single-threaded test setup only.
func (t *SimulatedTarget) SetIntegerDivisionSupported(supported bool) {
	t.host.guard.initialized(t.host.initialized, "SetIntegerDivisionSupported")
	t.integerDivision = supported
	recordOverride()
}

// SetVectorUnitSupported overrides the vector-unit capability of the
// simulated target. Intended for single-threaded test setup only.
func (t *SimulatedTarget) SetVectorUnitSupported(supported bool) {
	t.host.guard.initialized(t.host.initialized, "SetVectorUnitSupported")
	t.vectorUnit = supported
	recordOverride()
}

// NewTarget returns the capability view the code generator should
// consult: the native forwarding view when the generator itself runs on
// the ARM family, the simulated view otherwise.
func NewTarget(h *Host) Features {
	switch runtime.GOARCH {
	case "arm", "arm64":
		return NewNativeTarget(h)
	default:
		return NewSimulatedTarget(h)
	}
}

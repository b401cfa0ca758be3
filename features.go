package cpufeatures

// DefaultStorePCReadOffset is the byte offset observed when an ARM store
// instruction reads the program counter as a side effect. Architecturally
// this is PC+8 on every core the generator targets; a few legacy
// implementations observed PC+12, which the descriptor path can still
// express.
const DefaultStorePCReadOffset = 8

// capSet is the cached capability record populated by Init. The zero
// value doubles as the uninitialized sentinel Cleanup resets to.
type capSet struct {
	hardware                 string
	integerDivisionSupported bool
	vectorUnitSupported      bool
	hardFloatABISupported    bool
	storePCReadOffset        int
}

// defaultCaps is the conservative record used when detection yields
// nothing usable: every optional capability absent, no hardware name.
func defaultCaps() capSet {
	return capSet{storePCReadOffset: DefaultStorePCReadOffset}
}

// armv8Caps is the ARMv8 baseline: the division instructions, the
// Advanced SIMD unit and the hard-float ABI are all mandatory.
func armv8Caps() capSet {
	return capSet{
		integerDivisionSupported: true,
		vectorUnitSupported:      true,
		hardFloatABISupported:    true,
		storePCReadOffset:        DefaultStorePCReadOffset,
	}
}

// Features is the capability query surface the code generator consults.
// Implementations answer for the generation target, which may or may not
// be the machine running the generator.
type Features interface {
	Hardware() string
	IntegerDivisionSupported() bool
	VectorUnitSupported() bool
	HardFloatABISupported() bool
	StorePCReadOffset() int
	DoubleTruncateRoundSupported() bool
}

// Host caches the capabilities of the machine actually running the code
// generator. Detection happens exactly once in Init; the record is
// read-only between Init and Cleanup.
type Host struct {
	caps        capSet
	initialized bool
	guard       guard
}

// NewHost returns an empty host record. Nothing is probed until Init.
func NewHost() *Host {
	return &Host{guard: newGuard()}
}

// Init probes the execution environment and caches the result. A failed
// or partial probe is not an error: whatever the probe filled in stands
// and the remaining fields keep their conservative defaults.
func (h *Host) Init() {
	h.guard.uninitialized(h.initialized)

	caps, err := hostProbe()
	if err != nil {
		recordProbeError()
	}
	h.caps = caps
	h.initialized = true
	recordInit()
}

// InitFrom initializes the record from a raw capability descriptor
// instead of probing. This is the seam simulators and tests use to
// construct deterministic hosts.
func (h *Host) InitFrom(desc Descriptor) {
	h.guard.uninitialized(h.initialized)

	h.caps = desc.parse()
	h.initialized = true
	recordInit()
}

// Cleanup releases the hardware name and resets the record to its
// uninitialized state. Requires a matching Init.
func (h *Host) Cleanup() {
	h.guard.cleanable(h.initialized)

	h.caps = capSet{}
	h.initialized = false
	recordCleanup()
}

// Hardware returns the detected silicon/platform name, or the empty
// string when detection found none.
func (h *Host) Hardware() string {
	h.guard.initialized(h.initialized, "Hardware")
	return h.caps.hardware
}

// IntegerDivisionSupported reports whether the host has the SDIV/UDIV
// instructions.
func (h *Host) IntegerDivisionSupported() bool {
	h.guard.initialized(h.initialized, "IntegerDivisionSupported")
	return h.caps.integerDivisionSupported
}

// VectorUnitSupported reports whether the host has a NEON/Advanced SIMD
// execution unit.
func (h *Host) VectorUnitSupported() bool {
	h.guard.initialized(h.initialized, "VectorUnitSupported")
	return h.caps.vectorUnitSupported
}

// HardFloatABISupported reports whether the hardware floating-point
// calling convention is available.
func (h *Host) HardFloatABISupported() bool {
	h.guard.initialized(h.initialized, "HardFloatABISupported")
	return h.caps.hardFloatABISupported
}

// StorePCReadOffset returns the byte offset observed when a store reads
// the program counter; the generator needs it to compute relative
// addresses correctly.
func (h *Host) StorePCReadOffset() int {
	h.guard.initialized(h.initialized, "StorePCReadOffset")
	return h.caps.storePCReadOffset
}

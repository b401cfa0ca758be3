package cpufeatures

import (
	"errors"
	"testing"
)

// wantGuardPanic runs fn and fails the test unless it panics with a
// *CapError carrying the expected code.
func wantGuardPanic(t *testing.T, code uint32, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected guard panic, got none")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("guard panicked with %T, want error", r)
		}
		var capErr *CapError
		if !errors.As(err, &capErr) {
			t.Fatalf("guard panicked with %v, want *CapError", err)
		}
		if capErr.Code != code {
			t.Errorf("guard panic code = 0x%08x, want 0x%08x", capErr.Code, code)
		}
	}()
	fn()
}

func TestLifecyclePairing(t *testing.T) {
	t.Run("should reject cleanup without init", func(t *testing.T) {
		h := NewHost()
		wantGuardPanic(t, CAP_CLEANUP_WITHOUT_INIT, func() {
			h.Cleanup()
		})
	})

	t.Run("should reject double init", func(t *testing.T) {
		h := NewHost()
		h.Init()
		defer h.Cleanup()
		wantGuardPanic(t, CAP_ALREADY_INITIALIZED, func() {
			h.Init()
		})
	})

	t.Run("should reject accessor before init", func(t *testing.T) {
		h := NewHost()
		wantGuardPanic(t, CAP_NOT_INITIALIZED, func() {
			h.Hardware()
		})
	})

	t.Run("should reject accessor after cleanup", func(t *testing.T) {
		h := NewHost()
		h.Init()
		h.Cleanup()
		wantGuardPanic(t, CAP_NOT_INITIALIZED, func() {
			h.IntegerDivisionSupported()
		})
	})

	t.Run("should allow init cleanup init", func(t *testing.T) {
		h := NewHost()
		h.Init()
		h.Cleanup()
		h.Init()
		defer h.Cleanup()
		if got := h.StorePCReadOffset(); got == 0 {
			t.Errorf("StorePCReadOffset() = %d after re-init, want non-zero", got)
		}
	})
}

func TestGuardDisabled(t *testing.T) {
	t.Run("should trust call discipline when disabled", func(t *testing.T) {
		h := NewHost()
		h.guard.enabled = false

		// Misuse goes undetected and reads return zero values.
		if got := h.Hardware(); got != "" {
			t.Errorf("Hardware() = %q before init with guard off, want empty", got)
		}
		if h.VectorUnitSupported() {
			t.Error("VectorUnitSupported() = true before init with guard off, want false")
		}
		h.Cleanup() // no matching Init, still a no-op without the guard
	})
}

func TestDefaultSafety(t *testing.T) {
	t.Run("should resolve to conservative defaults on empty descriptor", func(t *testing.T) {
		h := NewHost()
		h.InitFrom(Descriptor{})
		defer h.Cleanup()

		if got := h.Hardware(); got != "" {
			t.Errorf("Hardware() = %q, want empty", got)
		}
		if h.IntegerDivisionSupported() {
			t.Error("IntegerDivisionSupported() = true, want false")
		}
		if h.VectorUnitSupported() {
			t.Error("VectorUnitSupported() = true, want false")
		}
		if h.HardFloatABISupported() {
			t.Error("HardFloatABISupported() = true, want false")
		}
		if got := h.StorePCReadOffset(); got != DefaultStorePCReadOffset {
			t.Errorf("StorePCReadOffset() = %d, want %d", got, DefaultStorePCReadOffset)
		}
	})

	t.Run("should ignore unrecognized feature tokens", func(t *testing.T) {
		h := NewHost()
		h.InitFrom(Descriptor{Features: "swp half thumb edsp java tls"})
		defer h.Cleanup()

		if h.IntegerDivisionSupported() || h.VectorUnitSupported() || h.HardFloatABISupported() {
			t.Error("unrecognized tokens should not enable any capability")
		}
	})
}

func TestInitFromDescriptor(t *testing.T) {
	t.Run("should populate all five fields", func(t *testing.T) {
		h := NewHost()
		h.InitFrom(Descriptor{
			Hardware: "BCM2836",
			Features: "half thumb fastmult vfpv3 neon idiva idivt",
		})
		defer h.Cleanup()

		if got := h.Hardware(); got != "BCM2836" {
			t.Errorf("Hardware() = %q, want %q", got, "BCM2836")
		}
		if !h.IntegerDivisionSupported() {
			t.Error("IntegerDivisionSupported() = false, want true")
		}
		if !h.VectorUnitSupported() {
			t.Error("VectorUnitSupported() = false, want true")
		}
		if !h.HardFloatABISupported() {
			t.Error("HardFloatABISupported() = false, want true")
		}
		if got := h.StorePCReadOffset(); got != 8 {
			t.Errorf("StorePCReadOffset() = %d, want 8", got)
		}
	})

	t.Run("should honor a legacy store-PC offset", func(t *testing.T) {
		h := NewHost()
		h.InitFrom(Descriptor{Hardware: "SA1100", StorePCReadOffset: 12})
		defer h.Cleanup()

		if got := h.StorePCReadOffset(); got != 12 {
			t.Errorf("StorePCReadOffset() = %d, want 12", got)
		}
	})

	t.Run("should release the hardware name on cleanup", func(t *testing.T) {
		h := NewHost()
		h.InitFrom(Descriptor{Hardware: "Qualcomm MSM8974"})
		h.Cleanup()
		if h.caps.hardware != "" {
			t.Errorf("hardware = %q after Cleanup, want empty", h.caps.hardware)
		}
	})
}

func TestHostProbe(t *testing.T) {
	t.Run("should return consistent results", func(t *testing.T) {
		first, err := hostProbe()
		if err != nil {
			t.Logf("hostProbe() partial result: %v", err)
		}
		for i := 0; i < 5; i++ {
			caps, _ := hostProbe()
			if caps != first {
				t.Errorf("hostProbe() call %d = %+v, want %+v", i, caps, first)
			}
		}
	})

	t.Run("should always report a store-PC offset", func(t *testing.T) {
		caps, _ := hostProbe()
		if caps.storePCReadOffset != DefaultStorePCReadOffset {
			t.Errorf("storePCReadOffset = %d, want %d", caps.storePCReadOffset, DefaultStorePCReadOffset)
		}
	})
}

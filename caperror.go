package cpufeatures

import (
	"fmt"

	"github.com/xyproto/env/v2"
)

// Capability-core error codes. These only surface through guard panics
// and probe bookkeeping; no recoverable error is returned by the API.
const (
	CAP_OK uint32 = iota
	CAP_NOT_INITIALIZED
	CAP_ALREADY_INITIALIZED
	CAP_CLEANUP_WITHOUT_INIT
	CAP_PROBE_FAILED
)

// CapError wraps a capability-core error code.
type CapError struct {
	Code    uint32
	message string // Optional custom message for specific errors
}

func (e CapError) Error() string {
	// Use custom message if available
	if e.message != "" {
		return e.message
	}

	if isProductionEnv() {
		return e.sanitizedError()
	}
	return e.detailedError()
}

// detailedError provides full error context for development
func (e CapError) detailedError() string {
	switch e.Code {
	case CAP_OK:
		return "cpufeatures: ok"
	case CAP_NOT_INITIALIZED:
		return "cpufeatures: not initialized (CAP_NOT_INITIALIZED) - accessor called before Init or after Cleanup"
	case CAP_ALREADY_INITIALIZED:
		return "cpufeatures: already initialized (CAP_ALREADY_INITIALIZED) - Init called twice without Cleanup"
	case CAP_CLEANUP_WITHOUT_INIT:
		return "cpufeatures: cleanup without init (CAP_CLEANUP_WITHOUT_INIT) - Cleanup requires a prior Init"
	case CAP_PROBE_FAILED:
		return "cpufeatures: probe failed (CAP_PROBE_FAILED) - detection degraded to conservative defaults"
	default:
		return fmt.Sprintf("cpufeatures: unknown error code 0x%08x", e.Code)
	}
}

// sanitizedError provides minimal error information for production
func (e CapError) sanitizedError() string {
	switch e.Code {
	case CAP_OK:
		return "cpufeatures: ok"
	case CAP_NOT_INITIALIZED:
		return "cpufeatures: not initialized"
	case CAP_ALREADY_INITIALIZED:
		return "cpufeatures: already initialized"
	case CAP_CLEANUP_WITHOUT_INIT:
		return "cpufeatures: cleanup without init"
	case CAP_PROBE_FAILED:
		return "cpufeatures: probe failed"
	default:
		return "cpufeatures: capability error"
	}
}

// isProductionEnv checks if we're running in production environment
func isProductionEnv() bool {
	switch env.Str("CPUFEATURES_ENV") {
	case "production", "prod":
		return true
	}

	// Check if debug mode is explicitly disabled
	if env.Has("CPUFEATURES_DEBUG") && !env.Bool("CPUFEATURES_DEBUG") {
		return true
	}

	return false
}

// Common specific errors for API consumers
var (
	ErrNotInitialized     = &CapError{Code: CAP_NOT_INITIALIZED}
	ErrAlreadyInitialized = &CapError{Code: CAP_ALREADY_INITIALIZED}
	ErrCleanupWithoutInit = &CapError{Code: CAP_CLEANUP_WITHOUT_INIT}
)

package core

// debugAssertionsEnabled gates the invariant checks spec.md categorizes as
// "invariant violation" (debug-only assertion, never a production error
// path). The teacher has no equivalent since Rust's debug_assert! is
// compiled out in release builds; this is the Go stand-in for that knob.
var debugAssertionsEnabled = false

// EnableDebugAssertions turns on the invariant checks scattered through
// pkg/core, pkg/geometry and pkg/accel (Unit-vector norm, AABB bounds
// exactness, BVH id coverage). Intended for tests, not production renders.
func EnableDebugAssertions(enabled bool) {
	debugAssertionsEnabled = enabled
}

// DebugAssertionsEnabled reports whether invariant checks are currently on,
// for packages outside core (geometry, accel) that share the same knob.
func DebugAssertionsEnabled() bool {
	return debugAssertionsEnabled
}

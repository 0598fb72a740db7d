package core

import "testing"

func TestUnit_ViolationPanicsWhenAssertionsEnabled(t *testing.T) {
	EnableDebugAssertions(true)
	defer EnableDebugAssertions(false)

	defer func() {
		if recover() == nil {
			t.Error("expected NewUnitUnchecked to panic on a non-unit vector")
		}
	}()
	NewUnitUnchecked(Vec3{2, 0, 0})
}

func TestUnit_NoPanicWhenAssertionsDisabled(t *testing.T) {
	EnableDebugAssertions(false)
	defer func() {
		if recover() != nil {
			t.Error("did not expect a panic with debug assertions disabled")
		}
	}()
	NewUnitUnchecked(Vec3{2, 0, 0})
}

func TestUnit_WithinToleranceNeverPanics(t *testing.T) {
	EnableDebugAssertions(true)
	defer EnableDebugAssertions(false)
	NewUnitUnchecked(Vec3{1.000001, 0, 0})
}

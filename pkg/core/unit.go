package core

// Norm is implemented by any vector-like type that has a squared norm, so
// Unit[V] can enforce its invariant without depending on Vec3 specifically.
type Norm interface {
	NormSquared() float32
}

// unitTolerance bounds how far ||v||^2 may drift from 1 before a debug build
// should complain; mirrors the original program's assertion in Unit::new_unchecked.
const unitTolerance = 1e-5

// Unit wraps a V known to have unit norm. The zero value is not a valid unit
// vector; always construct one through Normalize or NewUnitUnchecked.
type Unit[V Norm] struct {
	v V
}

// NewUnitUnchecked wraps v as a Unit without renormalizing it. Callers assert
// v already has unit norm; debugAssertUnit below is where that gets checked.
func NewUnitUnchecked[V Norm](v V) Unit[V] {
	debugAssertUnit(v)
	return Unit[V]{v: v}
}

// Get returns the wrapped vector.
func (u Unit[V]) Get() V { return u.v }

func debugAssertUnit[V Norm](v V) {
	if !debugAssertionsEnabled {
		return
	}
	ns := v.NormSquared()
	if ns < 1-unitTolerance || ns > 1+unitTolerance {
		panic("core: Unit invariant violated: ||v||^2 not within tolerance of 1")
	}
}

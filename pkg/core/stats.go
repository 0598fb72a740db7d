package core

// ColorVarianceEstimator accumulates per-pixel samples with Welford's online
// algorithm, tracking mean and variance per RGB channel without storing the
// sample history. Grounded on the original renderer's ColorVarianceEstimator.
type ColorVarianceEstimator struct {
	count uint32
	mean  Vec3
	m2    Vec3
}

func (e *ColorVarianceEstimator) Count() uint32 { return e.count }
func (e *ColorVarianceEstimator) Mean() Color   { return ColorFromVec3(e.mean) }

// Update folds value into the running statistics.
func (e *ColorVarianceEstimator) Update(value Color) {
	e.count++
	v := value.AsVec3()
	n := float32(e.count)
	delta := v.Sub(e.mean)
	e.mean = e.mean.Add(delta.Div(n))
	delta2 := v.Sub(e.mean)
	e.m2 = e.m2.Add(Vec3{X: delta.X * delta2.X, Y: delta.Y * delta2.Y, Z: delta.Z * delta2.Z})
}

// Variance returns the per-channel population variance of the samples
// (m2 / n, no Bessel correction), or false if fewer than two samples have
// been accumulated.
func (e *ColorVarianceEstimator) Variance() (Color, bool) {
	if e.count < 2 {
		return Black, false
	}
	n := float32(e.count)
	return ColorFromVec3(e.m2.Div(n)), true
}

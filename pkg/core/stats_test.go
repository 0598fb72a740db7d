package core

import "testing"

func TestColorVarianceEstimator_UndefinedBelowTwoSamples(t *testing.T) {
	var e ColorVarianceEstimator
	if _, ok := e.Variance(); ok {
		t.Error("expected no variance with zero samples")
	}
	e.Update(Color{1, 1, 1})
	if _, ok := e.Variance(); ok {
		t.Error("expected no variance with one sample")
	}
}

func TestColorVarianceEstimator_MatchesOfflineComputation(t *testing.T) {
	samples := []float32{2, 4, 4, 4, 5, 5, 7, 9}
	var e ColorVarianceEstimator
	for _, s := range samples {
		e.Update(Color{s, s, s})
	}

	var sum float32
	for _, s := range samples {
		sum += s
	}
	mean := sum / float32(len(samples))

	var sumSq float32
	for _, s := range samples {
		d := s - mean
		sumSq += d * d
	}
	wantVariance := sumSq / float32(len(samples))

	gotMean := e.Mean()
	if !almostEqual32(gotMean.R, mean, 1e-3) {
		t.Errorf("mean: got %v, want %v", gotMean.R, mean)
	}

	gotVariance, ok := e.Variance()
	if !ok {
		t.Fatal("expected variance to be defined")
	}
	if !almostEqual32(gotVariance.R, wantVariance, 1e-2) {
		t.Errorf("variance: got %v, want %v", gotVariance.R, wantVariance)
	}
}

func TestColorVarianceEstimator_ConstantSamplesHaveLowerVarianceThanSpread(t *testing.T) {
	var narrow, wide ColorVarianceEstimator
	for i := 0; i < 100; i++ {
		narrow.Update(Color{1, 1, 1})
	}
	wide.Update(Color{0, 0, 0})
	wide.Update(Color{2, 2, 2})

	nv, _ := narrow.Variance()
	wv, _ := wide.Variance()
	if nv.R >= wv.R {
		t.Errorf("constant samples should have lower variance than spread samples: %v vs %v", nv.R, wv.R)
	}
}

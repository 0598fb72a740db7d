package renderer

import (
	"math"
	"math/rand"

	"pathtracer/pkg/accel"
	"pathtracer/pkg/core"
	"pathtracer/pkg/integrator"
)

// StopConditionKind selects which rule decides when a pixel has enough
// samples.
type StopConditionKind int

const (
	StopSampleCount StopConditionKind = iota
	StopVariance
)

// StopCondition is either a fixed sample budget, or an adaptive rule that
// keeps sampling until every channel's variance relative to (mean + 1),
// divided by sqrt(count), is at most a threshold (after a minimum number of
// samples).
type StopCondition struct {
	Kind                 StopConditionKind
	SampleCount          uint32
	MinSamples           uint32
	MaxRelativeVariance  float32
}

func SampleCountStop(n uint32) StopCondition {
	return StopCondition{Kind: StopSampleCount, SampleCount: n}
}

func VarianceStop(minSamples uint32, maxRelativeVariance float32) StopCondition {
	return StopCondition{Kind: StopVariance, MinSamples: minSamples, MaxRelativeVariance: maxRelativeVariance}
}

// IsDone reports whether e has accumulated enough samples under s.
func (s StopCondition) IsDone(e *core.ColorVarianceEstimator) bool {
	switch s.Kind {
	case StopSampleCount:
		return e.Count() >= s.SampleCount
	case StopVariance:
		if e.Count() < s.MinSamples {
			return false
		}
		return relativeStandardErrorWithin(e, s.MaxRelativeVariance)
	default:
		return true
	}
}

// relativeStandardErrorWithin reports whether every channel's variance
// relative to the mean plus one (guarding near-black pixels against
// division by ~0), scaled down by sqrt(count), is within maxRel.
func relativeStandardErrorWithin(e *core.ColorVarianceEstimator, maxRel float32) bool {
	variance, ok := e.Variance()
	if !ok {
		return false
	}
	sqrtN := float32(math.Sqrt(float64(e.Count())))
	mean := e.Mean()

	channels := [3][2]float32{
		{variance.R, mean.R},
		{variance.G, mean.G},
		{variance.B, mean.B},
	}
	for _, ch := range channels {
		relVariance := ch[0] / (ch[1] + 1)
		relative := relVariance / sqrtN
		if relative > maxRel {
			return false
		}
	}
	return true
}

// PixelResult is everything the tile scheduler needs to record and display
// about one pixel: its converged colour, the raw and relative variance of
// the samples that produced it, and how many samples that took.
type PixelResult struct {
	Color       core.Color
	Variance    core.Color
	RelVariance core.Color
	Samples     uint32
}

// CpuRenderSettings configures the per-pixel driver and the integrator it
// drives: how many bounces a path may take, whether samples are
// antialiased, which light-transport strategy to use, when to stop
// sampling, and how the acceleration tree should be built.
type CpuRenderSettings struct {
	StopCondition StopCondition
	MaxBounces    int
	AntiAlias     bool
	Strategy      integrator.Strategy
	SplitStrategy accel.SplitStrategy
}

func DefaultCpuRenderSettings() CpuRenderSettings {
	return CpuRenderSettings{
		StopCondition: SampleCountStop(64),
		MaxBounces:    8,
		AntiAlias:     true,
		Strategy:      integrator.StrategySampleLights,
		SplitStrategy: accel.LargestAxisSplit{},
	}
}

// CalculatePixel samples pixel (px, py) until settings.StopCondition says to
// stop, and reports the resulting estimate.
func CalculatePixel(
	scene *core.Scene,
	cam *RayCamera,
	accelerator accel.Accel,
	lights []core.ObjectID,
	settings CpuRenderSettings,
	px, py int,
	rng *rand.Rand,
) PixelResult {
	var estimator core.ColorVarianceEstimator
	for !settings.StopCondition.IsDone(&estimator) {
		ray := cam.Ray(px, py, rng)
		sample := integrator.TraceRay(scene, accelerator, lights, settings.Strategy, ray, true, rng, settings.MaxBounces, true, scene.Camera.Medium)
		estimator.Update(sample)
	}

	mean := estimator.Mean()
	variance, _ := estimator.Variance()
	relVariance := core.Color{
		R: variance.R / (mean.R + 1),
		G: variance.G / (mean.G + 1),
		B: variance.B / (mean.B + 1),
	}
	return PixelResult{Color: mean, Variance: variance, RelVariance: relVariance, Samples: estimator.Count()}
}

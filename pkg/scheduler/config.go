package scheduler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pathtracer/pkg/accel"
	"pathtracer/pkg/integrator"
	"pathtracer/pkg/renderer"
)

// RenderConfig is the on-disk description of a render: everything
// CpuRenderSettings and CpuRenderer need, expressed as plain data so it can
// be loaded from a YAML file instead of built up in code.
type RenderConfig struct {
	BlockSize int `yaml:"blockSize"`
	Workers   int `yaml:"workers"`

	MaxBounces int  `yaml:"maxBounces"`
	AntiAlias  bool `yaml:"antiAlias"`

	Strategy      string `yaml:"strategy"`      // "simple" | "sampleLights"
	SplitStrategy string `yaml:"splitStrategy"` // "largestAxis" | "sah"

	StopCondition StopConditionConfig `yaml:"stopCondition"`
}

type StopConditionConfig struct {
	Kind                string  `yaml:"kind"` // "sampleCount" | "variance"
	SampleCount         uint32  `yaml:"sampleCount"`
	MinSamples          uint32  `yaml:"minSamples"`
	MaxRelativeVariance float32 `yaml:"maxRelativeVariance"`
}

func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		BlockSize:     defaultBlockSize,
		Workers:       0, // 0 means "use runtime.NumCPU()"
		MaxBounces:    8,
		AntiAlias:     true,
		Strategy:      "sampleLights",
		SplitStrategy: "largestAxis",
		StopCondition: StopConditionConfig{Kind: "sampleCount", SampleCount: 64},
	}
}

// LoadConfig reads and parses a YAML render configuration file.
func LoadConfig(path string) (RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RenderConfig{}, fmt.Errorf("scheduler: reading config %q: %w", path, err)
	}
	cfg := DefaultRenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("scheduler: parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// Settings resolves the string-keyed config into the concrete types the
// renderer and integrator expect.
func (c RenderConfig) Settings() (renderer.CpuRenderSettings, error) {
	var strategy integrator.Strategy
	switch c.Strategy {
	case "", "sampleLights":
		strategy = integrator.StrategySampleLights
	case "simple":
		strategy = integrator.StrategySimple
	default:
		return renderer.CpuRenderSettings{}, fmt.Errorf("scheduler: unknown strategy %q", c.Strategy)
	}

	var split accel.SplitStrategy
	switch c.SplitStrategy {
	case "", "largestAxis":
		split = accel.LargestAxisSplit{}
	case "sah":
		split = accel.SurfaceAreaHeuristicSplit{}
	default:
		return renderer.CpuRenderSettings{}, fmt.Errorf("scheduler: unknown split strategy %q", c.SplitStrategy)
	}

	var stop renderer.StopCondition
	switch c.StopCondition.Kind {
	case "", "sampleCount":
		n := c.StopCondition.SampleCount
		if n == 0 {
			n = 64
		}
		stop = renderer.SampleCountStop(n)
	case "variance":
		stop = renderer.VarianceStop(c.StopCondition.MinSamples, c.StopCondition.MaxRelativeVariance)
	default:
		return renderer.CpuRenderSettings{}, fmt.Errorf("scheduler: unknown stop condition kind %q", c.StopCondition.Kind)
	}

	maxBounces := c.MaxBounces
	if maxBounces == 0 {
		maxBounces = 8
	}

	return renderer.CpuRenderSettings{
		StopCondition: stop,
		MaxBounces:    maxBounces,
		AntiAlias:     c.AntiAlias,
		Strategy:      strategy,
		SplitStrategy: split,
	}, nil
}

// NewCpuRendererFromConfig builds a ready-to-use CpuRenderer from a
// RenderConfig.
func NewCpuRendererFromConfig(c RenderConfig) (*CpuRenderer, error) {
	settings, err := c.Settings()
	if err != nil {
		return nil, err
	}
	r := NewCpuRenderer(settings)
	if c.BlockSize > 0 {
		r.BlockSize = c.BlockSize
	}
	if c.Workers > 0 {
		r.Workers = c.Workers
	}
	return r, nil
}

package scheduler

import (
	"context"
	"testing"

	"pathtracer/pkg/accel"
	"pathtracer/pkg/core"
	"pathtracer/pkg/integrator"
	"pathtracer/pkg/renderer"
)

func unlitSphereScene() *core.Scene {
	objects := []core.Object{
		{
			Shape: core.Sphere,
			Material: core.Material{
				MaterialType: core.DiffuseType(),
				Albedo:       core.NewColor(0.8, 0.2, 0.2),
				Outside:      core.Vacuum,
			},
			Transform: core.Translation(core.NewVec3(0, 0, 5)),
		},
	}
	return &core.Scene{
		Objects:     objects,
		SkyEmission: core.NewColor(0.5, 0.5, 0.6),
		Camera: core.Camera{
			FovHorizontal: 1.0,
			Transform:     core.IdentityTransform(),
			Medium:        core.Vacuum,
		},
	}
}

func TestCpuRenderer_Render_FillsEveryPixel(t *testing.T) {
	scene := unlitSphereScene()
	settings := renderer.CpuRenderSettings{
		StopCondition: renderer.SampleCountStop(2),
		MaxBounces:    2,
		AntiAlias:     true,
		Strategy:      integrator.StrategySimple,
		SplitStrategy: accel.LargestAxisSplit{},
	}
	r := NewCpuRenderer(settings)
	r.BlockSize = 8
	r.Workers = 4

	img, err := r.Render(context.Background(), scene, 32, 24)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	for i, p := range img.Pixels {
		if p.Samples == 0 {
			t.Fatalf("pixel %d was never sampled", i)
		}
	}
}

func TestCpuRenderer_Render_RespectsCancellation(t *testing.T) {
	scene := unlitSphereScene()
	settings := renderer.CpuRenderSettings{
		StopCondition: renderer.SampleCountStop(100000),
		MaxBounces:    4,
		AntiAlias:     true,
		Strategy:      integrator.StrategySimple,
		SplitStrategy: accel.LargestAxisSplit{},
	}
	r := NewCpuRenderer(settings)
	r.Workers = 2

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, scene, 16, 16)
	if err == nil {
		t.Error("expected an error from an already-cancelled context")
	}
}

func TestCombinedProgress_FansOutToBoth(t *testing.T) {
	var first, second recordingProgress
	combined := CombinedProgress{First: &first, Second: &second}
	combined.Init(10, 10, 4)
	combined.BlockDone(Block{}, nil)
	combined.Done()

	if first.inits != 1 || second.inits != 1 {
		t.Error("expected both handlers to receive Init")
	}
	if first.blocks != 1 || second.blocks != 1 {
		t.Error("expected both handlers to receive BlockDone")
	}
	if first.dones != 1 || second.dones != 1 {
		t.Error("expected both handlers to receive Done")
	}
}

type recordingProgress struct {
	inits, blocks, dones int
}

func (r *recordingProgress) Init(width, height, totalBlocks int)                     { r.inits++ }
func (r *recordingProgress) BlockDone(block Block, pixels []renderer.PixelResult) { r.blocks++ }
func (r *recordingProgress) Done()                                                   { r.dones++ }

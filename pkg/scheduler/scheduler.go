package scheduler

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"pathtracer/pkg/accel"
	"pathtracer/pkg/core"
	"pathtracer/pkg/integrator"
	"pathtracer/pkg/renderer"
)

// CpuRenderer drives a full-image render: it splits the frame into blocks,
// hands blocks to a pool of worker goroutines, and funnels their results
// through a single collector goroutine that owns the target image and the
// progress handler (so neither needs synchronization of its own).
type CpuRenderer struct {
	Settings  renderer.CpuRenderSettings
	BlockSize int
	Workers   int
	Progress  ProgressHandler
	Logger    core.Logger
}

func NewCpuRenderer(settings renderer.CpuRenderSettings) *CpuRenderer {
	return &CpuRenderer{
		Settings:  settings,
		BlockSize: defaultBlockSize,
		Workers:   defaultWorkerCount(),
		Progress:  NoProgress{},
		Logger:    core.NewDefaultLogger(),
	}
}

// Render builds an acceleration structure for scene.Objects, then renders a
// width x height image, reporting per-block progress and returning the
// completed image. It returns early with ctx's error if cancelled.
func (r *CpuRenderer) Render(ctx context.Context, scene *core.Scene, width, height int) (*Image, error) {
	blockSize := r.BlockSize
	if blockSize <= 0 {
		blockSize = defaultBlockSize
	}
	workers := r.Workers
	if workers <= 0 {
		workers = defaultWorkerCount()
	}
	progress := r.Progress
	if progress == nil {
		progress = NoProgress{}
	}

	bvh := accel.New(scene.Objects, r.Settings.SplitStrategy)
	lights := integrator.CollectLights(scene)
	cam := renderer.NewRayCamera(scene.Camera, width, height, r.Settings.AntiAlias)

	blocks := SplitIntoBlocks(width, height, blockSize)
	ShuffleBlocks(blocks, rand.New(rand.NewSource(1)))

	image := NewImage(width, height)
	progress.Init(width, height, len(blocks))

	results := make(chan blockResult, workers*2)
	collectorDone := make(chan struct{})

	// collector: the sole goroutine that touches `image` and `progress`,
	// so blocks can apply out of order without any locking.
	go func() {
		defer close(collectorDone)
		for res := range results {
			image.applyBlock(res)
			progress.BlockDone(res.block, res.pixels)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, block := range blocks {
		block := block
		seed := int64(i) + 42
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seed))
			pixels := r.renderBlock(scene, cam, bvh, lights, block, rng)
			select {
			case results <- blockResult{block: block, pixels: pixels}:
			case <-gctx.Done():
				return gctx.Err()
			}
			return nil
		})
	}

	err := g.Wait()
	close(results)
	<-collectorDone
	progress.Done()
	if err != nil {
		return image, err
	}
	return image, nil
}

func (r *CpuRenderer) renderBlock(
	scene *core.Scene, cam *renderer.RayCamera, bvh accel.Accel, lights []core.ObjectID,
	block Block, rng *rand.Rand,
) []renderer.PixelResult {
	pixels := make([]renderer.PixelResult, 0, block.Width*block.Height)
	for y := block.Y; y < block.Y+block.Height; y++ {
		for x := block.X; x < block.X+block.Width; x++ {
			pixels = append(pixels, renderer.CalculatePixel(scene, cam, bvh, lights, r.Settings, x, y, rng))
		}
	}
	return pixels
}

func defaultWorkerCount() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

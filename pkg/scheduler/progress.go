package scheduler

import (
	"time"

	"pathtracer/pkg/core"
	"pathtracer/pkg/renderer"
)

// ProgressHandler is notified as blocks finish rendering. pixels holds the
// block's PixelResults in row-major order within the block, so a handler
// that needs the colour data (a live-preview sink, say) doesn't have to
// track the target image itself. BlockDone is called only from the
// collector goroutine, Init and Done from the goroutine running Render;
// calls never overlap, so implementations need no locking, but must not
// block the render for long.
type ProgressHandler interface {
	Init(width, height, totalBlocks int)
	BlockDone(block Block, pixels []renderer.PixelResult)
	Done()
}

// NoProgress discards all progress notifications.
type NoProgress struct{}

func (NoProgress) Init(width, height, totalBlocks int)                     {}
func (NoProgress) BlockDone(block Block, pixels []renderer.PixelResult) {}
func (NoProgress) Done()                                                   {}

// ConsoleProgress prints a percentage-complete line to Logger as blocks
// finish, throttled so it updates at most once per tick.
type ConsoleProgress struct {
	Logger core.Logger
	Tick   time.Duration

	total     int
	done      int
	lastPrint time.Time
	started   time.Time
}

func NewConsoleProgress(logger core.Logger) *ConsoleProgress {
	return &ConsoleProgress{Logger: logger, Tick: 500 * time.Millisecond}
}

func (p *ConsoleProgress) Init(width, height, totalBlocks int) {
	p.total = totalBlocks
	p.done = 0
	p.started = time.Now()
	p.lastPrint = time.Time{}
	p.Logger.Printf("rendering %dx%d in %d blocks", width, height, totalBlocks)
}

func (p *ConsoleProgress) BlockDone(block Block, pixels []renderer.PixelResult) {
	p.done++
	now := time.Now()
	if p.done < p.total && now.Sub(p.lastPrint) < p.Tick {
		return
	}
	p.lastPrint = now
	pct := 100 * float64(p.done) / float64(maxInt(p.total, 1))
	p.Logger.Printf("progress: %d/%d blocks (%.1f%%) elapsed=%s", p.done, p.total, pct, now.Sub(p.started).Round(time.Millisecond))
}

func (p *ConsoleProgress) Done() {
	p.Logger.Printf("render complete: %d blocks in %s", p.done, time.Now().Sub(p.started).Round(time.Millisecond))
}

// CombinedProgress fans a single progress stream out to two handlers, e.g. a
// console logger and a live preview sink.
type CombinedProgress struct {
	First, Second ProgressHandler
}

func (c CombinedProgress) Init(width, height, totalBlocks int) {
	c.First.Init(width, height, totalBlocks)
	c.Second.Init(width, height, totalBlocks)
}

func (c CombinedProgress) BlockDone(block Block, pixels []renderer.PixelResult) {
	c.First.BlockDone(block, pixels)
	c.Second.BlockDone(block, pixels)
}

func (c CombinedProgress) Done() {
	c.First.Done()
	c.Second.Done()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package preview

import (
	"pathtracer/pkg/core"
	"pathtracer/pkg/renderer"
	"pathtracer/pkg/scheduler"
)

var rgbChannels = []string{"R", "G", "B"}

// TevProgress streams finished blocks to a tev instance as a live preview.
// Once a send fails the client is dropped and all further updates are
// silently ignored: a disconnected viewer must never abort a render.
type TevProgress struct {
	imageName string
	client    *TevClient
	logger    core.Logger
}

func NewTevProgress(imageName string, client *TevClient, logger core.Logger) *TevProgress {
	return &TevProgress{imageName: imageName, client: client, logger: logger}
}

func (p *TevProgress) trySend(op func() error) {
	if p.client == nil {
		return
	}
	if err := op(); err != nil {
		p.logger.Printf("preview: communication with tev failed, disabling live preview: %v", err)
		p.client = nil
	}
}

func (p *TevProgress) Init(width, height, totalBlocks int) {
	p.trySend(func() error { return p.client.sendCloseImage(p.imageName) })
	p.trySend(func() error {
		return p.client.sendCreateImage(p.imageName, int32(width), int32(height), rgbChannels)
	})
}

// BlockDone is called by the scheduler's collector goroutine once per
// finished block, with that block's freshly rendered pixels in row-major
// order; it relies on that single-goroutine guarantee for safe access to
// p.client.
func (p *TevProgress) BlockDone(block scheduler.Block, pixels []renderer.PixelResult) {
	if p.client == nil {
		return
	}
	data := make([]float32, 0, 3*len(pixels))
	for _, px := range pixels {
		data = append(data, px.Color.R, px.Color.G, px.Color.B)
	}
	p.trySend(func() error {
		return p.client.sendUpdateImage(p.imageName, rgbChannels, int32(block.X), int32(block.Y), int32(block.Width), int32(block.Height), data)
	})
}

func (p *TevProgress) Done() {
	p.logger.Printf("preview: render of %q complete", p.imageName)
}

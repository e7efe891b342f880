package pattern

import (
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/triangles/internal/config"
	"github.com/iburimskiy/triangles/internal/view"
)

// Renderer splits a frame into horizontal bands and fills them on up to
// Workers goroutines. The output is identical to Render.
type Renderer struct {
	Workers int
}

func (r Renderer) Render(buf []byte, st view.State, fc *FrameCounter) {
	if r.Workers <= 1 {
		Render(buf, st, fc)
		return
	}

	// The counter is sampled before any band starts and advanced only
	// after every band has been written.
	f := fc.Value()

	pixels := len(buf) / config.BytesPerPixel
	rows := (pixels + config.Width - 1) / config.Width
	bandRows := (rows + r.Workers - 1) / r.Workers
	if bandRows < 1 {
		bandRows = 1
	}
	bandPixels := bandRows * config.Width

	var g errgroup.Group
	g.SetLimit(r.Workers)
	for start := 0; start < pixels; start += bandPixels {
		end := min(start+bandPixels, pixels)
		band := buf[start*config.BytesPerPixel : end*config.BytesPerPixel]
		first := uint32(start)
		g.Go(func() error {
			fill(band, first, st, f)
			return nil
		})
	}
	_ = g.Wait()

	fc.Advance()
}

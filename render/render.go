// Package render fills a mandel.Buffer in parallel. The rows of the image are
// split into disjoint ranges, one goroutine renders each range into its own
// band of the buffer and the render returns once every goroutine is done.
package render

import (
	"fmt"

	mandel "github.com/ivanrybin/mandelbrot_set"
	"golang.org/x/sync/errgroup"
)

// Renderer renders a whole image with one goroutine per work range.
type Renderer struct {
	// Shader colors the pixels, mandel.Gray if nil.
	Shader mandel.Shader

	// OnBandRender, if set, is called by each worker after its range is
	// complete. It is called from several goroutines at once.
	OnBandRender func(r WorkRange)
}

var _ mandel.Renderer = Renderer{}

// Render allocates the buffer, renders every work range concurrently and
// waits for all of them. A worker panic aborts the render with
// mandel.ErrRenderFault; no partial buffer is returned in that case.
func (rd Renderer) Render(cfg mandel.Config) (*mandel.Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shader := rd.Shader
	if shader == nil {
		shader = mandel.Gray{}
	}

	buf, err := mandel.NewBuffer(cfg.Resolution, shader.Model())
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	for i, wr := range Partition(cfg.Resolution.Height, cfg.Workers) {
		band := buf.Band(wr.Top, wr.Rows)
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("%w: worker %d, %s: %v", mandel.ErrRenderFault, i, wr, p)
				}
			}()

			renderBand(cfg, shader, band)
			if rd.OnBandRender != nil {
				rd.OnBandRender(wr)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

func renderBand(cfg mandel.Config, shader mandel.Shader, band mandel.Band) {
	for row := band.Top; row < band.Top+band.Rows; row++ {
		for col := 0; col < band.Width; col++ {
			c := mandel.PixelToPoint(row, col, cfg.Resolution, cfg.Region)
			escape := mandel.Escape(c, cfg.Iterations)
			band.Set(row, col, escape, shader.Shade(escape, cfg.Iterations))
		}
	}
}

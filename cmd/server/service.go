package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	mandel "github.com/ivanrybin/mandelbrot_set"
	"github.com/ivanrybin/mandelbrot_set/encode"
	"github.com/ivanrybin/mandelbrot_set/render"
)

// errBusy is returned when every render slot stayed taken until the request
// deadline.
var errBusy = errors.New("render service busy")

// renderService runs renders on behalf of network clients. Renders cannot be
// interrupted, so a render that outlives its deadline keeps running in the
// background and its result is dropped. It keeps holding its slot until it
// finishes, which bounds the memory held by abandoned renders.
type renderService struct {
	timeout time.Duration
	slots   chan struct{}

	// render is render.Renderer.Render unless replaced in tests
	render func(cfg mandel.Config, shader mandel.Shader) (*mandel.Buffer, error)
}

var _ mandel.RenderService = (*renderService)(nil)

// newRenderService returns a service running at most maxRenders renders at
// a time, each waited for at most timeout.
func newRenderService(timeout time.Duration, maxRenders int) *renderService {
	return &renderService{
		timeout: timeout,
		slots:   make(chan struct{}, max(maxRenders, 1)),
		render: func(cfg mandel.Config, shader mandel.Shader) (*mandel.Buffer, error) {
			return render.Renderer{Shader: shader}.Render(cfg)
		},
	}
}

// RenderPNG validates req, renders it and returns the PNG encoded image.
func (s *renderService) RenderPNG(ctx context.Context, req mandel.RenderRequest) (mandel.RenderResponse, []byte, error) {
	cfg, shader, err := req.Config()
	if err != nil {
		return mandel.RenderResponse{}, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case s.slots <- struct{}{}:
	case <-ctx.Done():
		return mandel.RenderResponse{}, nil, fmt.Errorf("%w: %w", errBusy, context.Cause(ctx))
	}

	type result struct {
		buf *mandel.Buffer
		err error
	}
	done := make(chan result, 1)
	start := time.Now()
	go func() {
		defer func() { <-s.slots }()
		buf, err := s.render(cfg, shader)
		done <- result{buf, err}
	}()

	var buf *mandel.Buffer
	select {
	case res := <-done:
		if res.err != nil {
			return mandel.RenderResponse{}, nil, fmt.Errorf("render: %w", res.err)
		}
		buf = res.buf
	case <-ctx.Done():
		return mandel.RenderResponse{}, nil, fmt.Errorf("render of %s discarded: %w", cfg.Resolution, context.Cause(ctx))
	}
	log.Printf("rendered %s of %s in %s", cfg.Resolution, cfg.Region, time.Since(start))

	var out bytes.Buffer
	if err := encode.Encode(&out, encode.PNG, buf.Image); err != nil {
		return mandel.RenderResponse{}, nil, fmt.Errorf("encode: %w", err)
	}
	resp := mandel.RenderResponse{Width: buf.Width, Height: buf.Height, Bytes: out.Len()}
	return resp, out.Bytes(), nil
}

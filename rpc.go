package mandel

import "context"

//go:generate go run github.com/marben/irpc/cmd/irpc@v0.0.0-20260109104542-2d3fde99869b rpc.go

// RenderService renders an image on a remote server. The answer carries the
// PNG encoded image and its size; a rejected or failed request returns only
// the error.
type RenderService interface {
	RenderPNG(ctx context.Context, req RenderRequest) (RenderResponse, []byte, error)
}

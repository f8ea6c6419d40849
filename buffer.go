package mandel

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Buffer is the assembled result of a render: the escape time of every pixel
// and the shaded image, both row major and of the same size.
//
// A Buffer is written through disjoint Bands while a render is running and
// must be treated as read only once the render returned it.
type Buffer struct {
	Width, Height int
	Escapes       []uint32
	Image         draw.Image
}

// NewBuffer allocates a buffer for res. The image is an *image.Gray when model
// is color.GrayModel and an *image.RGBA otherwise. Sizes that overflow or
// exceed MaxPixels are refused with ErrRenderFault.
func NewBuffer(res Resolution, model color.Model) (*Buffer, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}
	n, ok := res.Pixels()
	if !ok || n > MaxPixels {
		return nil, fmt.Errorf("%w: cannot allocate %s buffer: more than %d pixels", ErrRenderFault, res, MaxPixels)
	}

	rect := image.Rect(0, 0, res.Width, res.Height)
	var img draw.Image
	if model == color.GrayModel {
		img = image.NewGray(rect)
	} else {
		img = image.NewRGBA(rect)
	}
	return &Buffer{
		Width:   res.Width,
		Height:  res.Height,
		Escapes: make([]uint32, n),
		Image:   img,
	}, nil
}

// EscapeAt returns the escape time stored for pixel (row, col).
func (b *Buffer) EscapeAt(row, col int) int {
	return int(b.Escapes[row*b.Width+col])
}

// Band returns a writable view of rows [top, top+rows). Views of disjoint row
// ranges share no memory cell, so they can be filled concurrently.
func (b *Buffer) Band(top, rows int) Band {
	lo, hi := top*b.Width, (top+rows)*b.Width
	return Band{
		Top:     top,
		Rows:    rows,
		Width:   b.Width,
		escapes: b.Escapes[lo:hi:hi],
		img:     subImage(b.Image, image.Rect(0, top, b.Width, top+rows)),
	}
}

// Band is a horizontal strip of a Buffer. Row arguments are in buffer
// coordinates.
type Band struct {
	Top, Rows, Width int

	escapes []uint32
	img     draw.Image
}

// Set stores the escape time and color of pixel (row, col).
func (b Band) Set(row, col, escape int, c color.Color) {
	b.escapes[(row-b.Top)*b.Width+col] = uint32(escape)
	b.img.Set(col, row, c)
}

// Bounds returns the band rectangle in buffer coordinates.
func (b Band) Bounds() image.Rectangle {
	return b.img.Bounds()
}

func subImage(img draw.Image, r image.Rectangle) draw.Image {
	switch m := img.(type) {
	case *image.Gray:
		return m.SubImage(r).(*image.Gray)
	case *image.RGBA:
		return m.SubImage(r).(*image.RGBA)
	default:
		panic(fmt.Sprintf("mandel: unsupported buffer image %T", img))
	}
}

package mandel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewBufferImageType(t *testing.T) {
	gray, err := NewBuffer(Resolution{4, 3}, color.GrayModel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := gray.Image.(*image.Gray); !ok {
		t.Fatalf("gray model buffer image is %T", gray.Image)
	}
	if len(gray.Escapes) != 12 {
		t.Fatalf("len(Escapes) = %d, want 12", len(gray.Escapes))
	}

	rgba, err := NewBuffer(Resolution{4, 3}, color.RGBAModel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rgba.Image.(*image.RGBA); !ok {
		t.Fatalf("rgba model buffer image is %T", rgba.Image)
	}
}

func TestNewBufferRefusesHugeImages(t *testing.T) {
	for _, res := range []Resolution{{MaxPixels, 2}, {1 << 40, 1 << 40}} {
		_, err := NewBuffer(res, color.GrayModel)
		if !errors.Is(err, ErrRenderFault) {
			t.Errorf("NewBuffer(%s): expected ErrRenderFault, got %v", res, err)
		}
	}
	if _, err := NewBuffer(Resolution{0, 1}, color.GrayModel); !errors.Is(err, ErrConfig) {
		t.Errorf("NewBuffer(0x1): expected ErrConfig, got %v", err)
	}
}

func TestBandsWriteOnlyTheirRows(t *testing.T) {
	buf, err := NewBuffer(Resolution{5, 4}, color.GrayModel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, bottom := buf.Band(0, 1), buf.Band(1, 3)

	if got, want := bottom.Bounds(), image.Rect(0, 1, 5, 4); got != want {
		t.Fatalf("bottom bounds = %v, want %v", got, want)
	}

	for col := 0; col < 5; col++ {
		top.Set(0, col, 1, color.Gray{Y: 10})
		for row := 1; row < 4; row++ {
			bottom.Set(row, col, row+1, color.Gray{Y: uint8(20 * row)})
		}
	}

	img := buf.Image.(*image.Gray)
	for row := 0; row < 4; row++ {
		for col := 0; col < 5; col++ {
			wantEscape, wantY := 1, uint8(10)
			if row > 0 {
				wantEscape, wantY = row+1, uint8(20*row)
			}
			if got := buf.EscapeAt(row, col); got != wantEscape {
				t.Errorf("EscapeAt(%d,%d) = %d, want %d", row, col, got, wantEscape)
			}
			if got := img.GrayAt(col, row).Y; got != wantY {
				t.Errorf("GrayAt(%d,%d) = %d, want %d", col, row, got, wantY)
			}
		}
	}
}

func TestBandCannotGrowIntoNeighbour(t *testing.T) {
	buf, err := NewBuffer(Resolution{3, 3}, color.GrayModel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	band := buf.Band(0, 1)
	if cap(band.escapes) != 3 {
		t.Fatalf("band escapes capacity = %d, want 3", cap(band.escapes))
	}
}

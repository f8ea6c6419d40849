package encode

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"
)

func testImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 6, 4))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 10)
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"pic.png":        PNG,
		"out/PIC.PNG":    PNG,
		"a.jpg":          JPEG,
		"a.jpeg":         JPEG,
		"deep/zoom.tif":  TIFF,
		"deep/zoom.tiff": TIFF,
		"pic":            PNG,
		"pic.gif":        PNG,
		"pic.tiff.bak":   PNG,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	src := testImage()
	if err := Write(path, src); err != nil {
		t.Fatalf("Write: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertSamePixels(t, src, got)
}

func TestEncodeTIFF(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	if err := Encode(&buf, TIFF, src); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := tiff.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	assertSamePixels(t, src, got)
}

func TestEncodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, JPEG, testImage()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte{0xff, 0xd8}) {
		t.Fatalf("output is not a JPEG stream")
	}
}

func assertSamePixels(t *testing.T, want *image.Gray, got image.Image) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), want.Bounds())
	}
	b := want.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(got.At(x, y)).(color.Gray)
			if g != want.GrayAt(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g, want.GrayAt(x, y))
			}
		}
	}
}

func TestEncodeUnsupported(t *testing.T) {
	if err := Encode(io.Discard, Format("gif"), testImage()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestWriteWithoutExtensionIsPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic")
	if err := Write(path, testImage()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("file without extension is not a PNG")
	}
}

func TestWriteMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := Write(filepath.Join(dir, "missing", "pic.png"), testImage()); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
	assertEmptyDir(t, dir)
}

func TestWriteFailureLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()

	// png refuses empty images
	if err := Write(filepath.Join(dir, "empty.png"), image.NewGray(image.Rect(0, 0, 0, 0))); err == nil {
		t.Fatalf("expected an encoding error")
	}
	assertEmptyDir(t, dir)

	failing := errors.New("disk on fire")
	err := WriteFunc(filepath.Join(dir, "half.png"), func(w io.Writer) error {
		if _, err := w.Write([]byte("half an image")); err != nil {
			return err
		}
		return failing
	})
	if !errors.Is(err, failing) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
	assertEmptyDir(t, dir)
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, testImage()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatalf("file was not replaced by a PNG")
	}
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		t.Errorf("unexpected file left behind: %s", e.Name())
	}
}

package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/edd255/simp/internal/pixmap"
)

func testGrid(t *testing.T) *pixmap.Grid {
	t.Helper()
	g, err := pixmap.New(3, 4)
	if err != nil {
		t.Fatalf("building grid: %v", err)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			g.Set(row, col, pixmap.Pixel{R: uint8(50 * row), G: uint8(60 * col), B: 128})
		}
	}
	return g
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testGrid(t), 1.0); err != nil {
		t.Fatalf("PNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", img.Bounds().Dx(), img.Bounds().Dy())
	}

	r, g, b, _ := img.At(2, 1).RGBA()
	if uint8(r>>8) != 50 || uint8(g>>8) != 120 || uint8(b>>8) != 128 {
		t.Errorf("pixel (2,1): got (%d,%d,%d), want (50,120,128)", r>>8, g>>8, b>>8)
	}
}

func TestPNG_Scaled(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testGrid(t), 2.0); err != nil {
		t.Fatalf("PNG with scale failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("scaled dimensions: got %dx%d, want 8x6", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestPNG_BadScale(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, testGrid(t), -1); err == nil {
		t.Error("negative scale should fail")
	}
	if err := PNG(&buf, testGrid(t), 0.01); err == nil {
		t.Error("scale collapsing the image should fail")
	}
}

package export

import (
	"bytes"
	"image/png"
	"testing"

	"pencilmatch/internal/colour"
	"pencilmatch/internal/extract"
)

func manyColors(n int) []extract.ExtractedColor {
	colors := make([]extract.ExtractedColor, n)
	for i := range colors {
		rgb := colour.RGB{R: uint8(i * 30), G: 100, B: 200}
		colors[i] = extract.ExtractedColor{RGB: rgb, Hex: rgb.Hex(), Percentage: 100.0 / float64(n)}
	}
	return colors
}

func TestSwatchImageHorizontal(t *testing.T) {
	img, err := SwatchImage(manyColors(3), LayoutHorizontal)
	if err != nil {
		t.Fatalf("SwatchImage error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 140 {
		t.Errorf("image is %dx%d, want 300x140", bounds.Dx(), bounds.Dy())
	}

	// The centre of the second cell carries the second colour.
	r, g, b, _ := img.At(150, 50).RGBA()
	got := colour.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	if got != (colour.RGB{R: 30, G: 100, B: 200}) {
		t.Errorf("second swatch colour = %v", got)
	}
}

func TestSwatchImageGridWraps(t *testing.T) {
	img, err := SwatchImage(manyColors(5), LayoutGrid)
	if err != nil {
		t.Fatalf("SwatchImage error: %v", err)
	}

	// Five swatches in a four-column grid: 4x2 cells.
	bounds := img.Bounds()
	if bounds.Dx() != 400 || bounds.Dy() != 280 {
		t.Errorf("image is %dx%d, want 400x280", bounds.Dx(), bounds.Dy())
	}
}

func TestSwatchImageGridFewerThanRow(t *testing.T) {
	img, err := SwatchImage(manyColors(2), LayoutGrid)
	if err != nil {
		t.Fatalf("SwatchImage error: %v", err)
	}
	if got := img.Bounds().Dx(); got != 200 {
		t.Errorf("width = %d, want 200", got)
	}
}

func TestSwatchImageErrors(t *testing.T) {
	if _, err := SwatchImage(nil, LayoutHorizontal); err == nil {
		t.Error("empty palette did not error")
	}
	if _, err := SwatchImage(manyColors(2), "diagonal"); err == nil {
		t.Error("unknown layout did not error")
	}
}

func TestSwatchPNGEncodes(t *testing.T) {
	var buf bytes.Buffer
	if err := SwatchPNG(&buf, manyColors(3), LayoutHorizontal); err != nil {
		t.Fatalf("SwatchPNG error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 300 {
		t.Errorf("decoded width = %d, want 300", img.Bounds().Dx())
	}

	// Label area stays on the white background outside the glyphs.
	r, g, b, _ := img.At(95, 135).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("label background = (%d, %d, %d), want white", r>>8, g>>8, b>>8)
	}
}

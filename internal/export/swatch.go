package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"pencilmatch/internal/colour"
	"pencilmatch/internal/extract"
)

// Layout selects how palette swatches are arranged.
type Layout string

const (
	LayoutHorizontal Layout = "horizontal"
	LayoutGrid       Layout = "grid"
)

// Swatch cell geometry in pixels.
const (
	swatchWidth  = 100
	swatchHeight = 100
	textHeight   = 40
	gridColumns  = 4
)

// SwatchImage renders the palette as labelled colour swatches. The
// horizontal layout is a single strip; the grid layout wraps after
// four columns.
func SwatchImage(colors []extract.ExtractedColor, layout Layout) (image.Image, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colours to render")
	}

	cols := len(colors)
	if layout == LayoutGrid {
		cols = gridColumns
		if len(colors) < cols {
			cols = len(colors)
		}
	} else if layout != LayoutHorizontal {
		return nil, fmt.Errorf("unknown swatch layout %q", layout)
	}
	rows := (len(colors) + cols - 1) / cols

	cellHeight := swatchHeight + textHeight
	img := image.NewRGBA(image.Rect(0, 0, cols*swatchWidth, rows*cellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, c := range colors {
		x := (i % cols) * swatchWidth
		y := (i / cols) * cellHeight

		cell := image.Rect(x, y, x+swatchWidth, y+swatchHeight)
		draw.Draw(img, cell, image.NewUniform(colour.ToColor(c.RGB)), image.Point{}, draw.Src)

		textY := y + swatchHeight + 5
		drawLabel(img, x+5, textY, c.Hex)
		drawLabel(img, x+5, textY+15, fmt.Sprintf("%.1f%%", c.Percentage))
	}

	return img, nil
}

// SwatchPNG renders the palette swatches and encodes them as PNG.
func SwatchPNG(w io.Writer, colors []extract.ExtractedColor, layout Layout) error {
	img, err := SwatchImage(colors, layout)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding swatch png: %w", err)
	}
	return nil
}

// drawLabel draws text with its top-left corner at (x, y).
func drawLabel(dst draw.Image, x, y int, text string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(x, y+face.Ascent),
	}
	d.DrawString(text)
}

// Package extract implements dominant-colour extraction from images
// using k-means clustering, together with spatial analysis of where
// each extracted colour appears.
package extract

import (
	"image"

	"github.com/disintegration/imaging"

	"pencilmatch/internal/colour"
)

// PixelBuffer is an immutable row-major grid of RGB pixels derived once
// from a decoded source image.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []colour.RGB
}

// NewPixelBuffer normalises the image to 8-bit RGB and downscales it so
// the longer dimension is at most maxSize, preserving aspect ratio.
// Lanczos resampling keeps the downscale clean; this is a performance
// optimisation, clustering results are approximate regardless.
func NewPixelBuffer(img image.Image, maxSize int) *PixelBuffer {
	bounds := img.Bounds()
	if maxSize > 0 && (bounds.Dx() > maxSize || bounds.Dy() > maxSize) {
		img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
	}

	// Clone flattens any colour mode (greyscale, paletted, YCbCr) into NRGBA.
	nrgba := imaging.Clone(img)
	width := nrgba.Bounds().Dx()
	height := nrgba.Bounds().Dy()

	pixels := make([]colour.RGB, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := nrgba.PixOffset(x, y)
			pixels = append(pixels, colour.RGB{
				R: nrgba.Pix[i],
				G: nrgba.Pix[i+1],
				B: nrgba.Pix[i+2],
			})
		}
	}

	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// At returns the pixel at (x, y). Callers must stay within bounds.
func (p *PixelBuffer) At(x, y int) colour.RGB {
	return p.Pixels[y*p.Width+x]
}

// Len returns the total pixel count.
func (p *PixelBuffer) Len() int {
	return len(p.Pixels)
}

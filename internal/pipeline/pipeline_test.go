package pipeline

import (
	"image"
	"image/color"
	"testing"

	"pencilmatch/internal/catalog"
	"pencilmatch/internal/extract"
	"pencilmatch/internal/match"
)

func solidImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestRunMatchesFollowPaletteOrder(t *testing.T) {
	p := New(extract.NewExtractor(), match.New(catalog.All()))
	img := solidImage(40, 40, color.RGBA{R: 237, G: 28, B: 36, A: 255})

	result := p.Run(img, 3, 2, match.DefaultMaxDifference)

	if len(result.Palette) != 3 {
		t.Fatalf("palette has %d colours, want 3", len(result.Palette))
	}
	if len(result.Matches) == 0 {
		t.Fatal("expected catalog matches for a catalogued red")
	}

	// Matches are concatenated in palette order: once a later palette
	// colour's target appears, the earlier one must not recur.
	seen := make(map[int]bool)
	current := -1
	for _, m := range result.Matches {
		idx := -1
		for i, c := range result.Palette {
			if c.RGB == m.TargetRGB {
				idx = i
				break
			}
		}
		if idx < 0 {
			t.Fatalf("match target %v is not a palette colour", m.TargetRGB)
		}
		if idx != current {
			if seen[idx] {
				t.Fatalf("matches for palette colour %d are not contiguous", idx)
			}
			seen[idx] = true
			current = idx
		}
	}

	if result.ProcessingTime <= 0 {
		t.Errorf("processing time = %v, want positive", result.ProcessingTime)
	}
}

func TestRunFailedExtractionYieldsEmptyResult(t *testing.T) {
	p := New(extract.NewExtractor(), match.New(catalog.All()))

	result := p.Run(nil, 3, 2, match.DefaultMaxDifference)

	if len(result.Palette) != 0 {
		t.Errorf("palette has %d colours, want 0", len(result.Palette))
	}
	if len(result.Matches) != 0 {
		t.Errorf("matches has %d entries, want 0", len(result.Matches))
	}
}

func TestRunEmptyCatalogStillReturnsPalette(t *testing.T) {
	p := New(extract.NewExtractor(), match.New(nil))
	img := solidImage(30, 30, color.RGBA{R: 90, G: 140, B: 60, A: 255})

	result := p.Run(img, 3, 2, match.DefaultMaxDifference)

	if len(result.Palette) != 3 {
		t.Errorf("palette has %d colours, want 3", len(result.Palette))
	}
	if len(result.Matches) != 0 {
		t.Errorf("matches has %d entries, want 0 for an empty catalog", len(result.Matches))
	}
}

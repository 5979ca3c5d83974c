package extract

import (
	"fmt"
	"image"
	"sort"

	"github.com/hashicorp/go-hclog"

	"pencilmatch/internal/colour"
)

// Brightness bounds for the pre-clustering filter. Pixels whose mean
// channel value falls outside (minBrightness, maxBrightness) are
// near-black or near-white and would drag cluster centres away from
// the meaningful hues.
const (
	minBrightness = 20
	maxBrightness = 235
)

// Fixed seed so palettes are reproducible across runs.
const clusterSeed = 42

// ExtractedColor is one dominant colour of an image: the cluster centre
// with its share of the (filtered) image and where it appears.
type ExtractedColor struct {
	RGB        colour.RGB   `json:"rgb"`
	Hex        string       `json:"hex"`
	Percentage float64      `json:"percentage"`
	HSV        colour.HSV   `json:"hsv"`
	Brightness float64      `json:"brightness"`
	Location   LocationInfo `json:"location"`
}

// Config holds extraction settings supplied by the caller.
type Config struct {
	NumColors int
	MaxSize   int
}

// DefaultConfig returns the default extraction configuration.
func DefaultConfig() Config {
	return Config{
		NumColors: 8,
		MaxSize:   300,
	}
}

// Validate validates the extraction configuration.
func (c Config) Validate() error {
	if c.NumColors < 3 || c.NumColors > 15 {
		return fmt.Errorf("colour count must be between 3 and 15, got %d", c.NumColors)
	}
	if c.MaxSize < 1 {
		return fmt.Errorf("max size must be positive, got %d", c.MaxSize)
	}
	return nil
}

// Extractor extracts dominant colours from images.
type Extractor struct {
	maxSize int
	seed    int64
	logger  hclog.Logger
}

// NewExtractor creates an Extractor with default settings.
func NewExtractor() *Extractor {
	return &Extractor{
		maxSize: DefaultConfig().MaxSize,
		seed:    clusterSeed,
		logger:  hclog.NewNullLogger(),
	}
}

// SetLogger attaches a logger. The extractor never fails loudly, so the
// logger is the only place failures are reported.
func (e *Extractor) SetLogger(logger hclog.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// SetMaxSize overrides the downscale bound for the longer image dimension.
func (e *Extractor) SetMaxSize(maxSize int) {
	if maxSize > 0 {
		e.maxSize = maxSize
	}
}

// Extract returns numColors dominant colours sorted by descending
// percentage. An empty result means extraction failed; callers must
// check for emptiness rather than for an error.
func (e *Extractor) Extract(img image.Image, numColors int) []ExtractedColor {
	colors, err := e.extract(img, numColors)
	if err != nil {
		e.logger.Warn("colour extraction failed", "error", err)
		return nil
	}
	return colors
}

func (e *Extractor) extract(img image.Image, numColors int) ([]ExtractedColor, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if numColors < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", numColors)
	}

	buf := NewPixelBuffer(img, e.maxSize)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}

	// Drop near-black/near-white pixels so clustering focuses on
	// meaningful hues. If that leaves too few points, cluster the
	// whole image instead.
	filtered := filterByBrightness(buf.Pixels)
	if len(filtered) < numColors {
		filtered = buf.Pixels
	}
	if len(filtered) < numColors {
		return nil, fmt.Errorf("image has %d usable pixels, need at least %d", len(filtered), numColors)
	}

	km := newKMeans(numColors, e.seed)
	centroids, fitAssignments := km.fit(toPoints(filtered))
	if len(centroids) != numColors {
		return nil, fmt.Errorf("clustering produced %d centres, expected %d", len(centroids), numColors)
	}

	// Percentages come from the filtered fit, but spatial analysis
	// needs every pixel of the image assigned to a cluster.
	allAssignments := predict(toPoints(buf.Pixels), centroids)

	counts := make([]int, numColors)
	for _, a := range fitAssignments {
		counts[a]++
	}
	total := float64(len(fitAssignments))

	colors := make([]ExtractedColor, 0, numColors)
	for i, c := range centroids {
		rgb := centroidRGB(c)
		colors = append(colors, ExtractedColor{
			RGB:        rgb,
			Hex:        rgb.Hex(),
			Percentage: float64(counts[i]) / total * 100,
			HSV:        colour.RGBToHSV(rgb),
			Brightness: rgb.Brightness(),
			Location:   AnalyzeLocation(allAssignments, buf.Width, buf.Height, i),
		})
	}

	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Percentage > colors[j].Percentage
	})

	return colors, nil
}

// filterByBrightness keeps pixels whose mean channel brightness is
// strictly inside (minBrightness, maxBrightness).
func filterByBrightness(pixels []colour.RGB) []colour.RGB {
	filtered := make([]colour.RGB, 0, len(pixels))
	for _, p := range pixels {
		b := p.Brightness()
		if b > minBrightness && b < maxBrightness {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// centroidRGB converts a cluster centre to an integer RGB triple.
func centroidRGB(p point3) colour.RGB {
	return colour.RGB{
		R: clampChannel(p.R),
		G: clampChannel(p.G),
		B: clampChannel(p.B),
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Package pipeline composes colour extraction and catalog matching
// into a single analysis run.
package pipeline

import (
	"image"
	"time"

	"github.com/hashicorp/go-hclog"

	"pencilmatch/internal/extract"
	"pencilmatch/internal/match"
)

// Result is one complete analysis of an image.
type Result struct {
	Palette []extract.ExtractedColor `json:"palette"`
	Matches []match.Match            `json:"matches"`

	// ProcessingTime covers the extraction stage only; matching is
	// cheap and not part of the reported telemetry.
	ProcessingTime time.Duration `json:"processing_time"`
}

// Pipeline runs extraction followed by per-colour catalog matching.
type Pipeline struct {
	extractor *extract.Extractor
	matcher   *match.Matcher
	logger    hclog.Logger
}

// New creates a Pipeline from its two stages.
func New(extractor *extract.Extractor, matcher *match.Matcher) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		matcher:   matcher,
		logger:    hclog.NewNullLogger(),
	}
}

// SetLogger attaches a logger to the pipeline and its extractor.
func (p *Pipeline) SetLogger(logger hclog.Logger) {
	if logger == nil {
		return
	}
	p.logger = logger
	p.extractor.SetLogger(logger)
}

// Run extracts numColors dominant colours and matches each against the
// catalog, concatenating the match lists in palette order. A failed
// extraction yields an empty palette and no matches; the result is
// still valid output.
func (p *Pipeline) Run(img image.Image, numColors, maxPerBrand int, maxDifference float64) Result {
	start := time.Now()
	palette := p.extractor.Extract(img, numColors)
	elapsed := time.Since(start)

	var matches []match.Match
	for _, c := range palette {
		matches = append(matches, p.matcher.FindMatches(c.RGB, maxPerBrand, maxDifference)...)
	}

	p.logger.Debug("analysis complete",
		"colours", len(palette),
		"matches", len(matches),
		"extraction_time", elapsed,
	)

	return Result{
		Palette:        palette,
		Matches:        matches,
		ProcessingTime: elapsed,
	}
}

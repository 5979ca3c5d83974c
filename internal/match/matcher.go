// Package match ranks catalogued pencils against a target colour by
// perceptual colour difference.
package match

import (
	"sort"

	"pencilmatch/internal/catalog"
	"pencilmatch/internal/colour"
)

// DefaultMaxDifference is the Delta E cutoff beyond which a pencil is
// not considered a match at all.
const DefaultMaxDifference = 50.0

// Complementary suggestions are capped tighter than regular matches.
const complementaryCap = 3

// Quality buckets a Delta E value for display and persistence.
type Quality string

const (
	QualityExcellent  Quality = "Excellent match"
	QualityVeryGood   Quality = "Very good match"
	QualityGood       Quality = "Good match"
	QualityAcceptable Quality = "Acceptable match"
	QualityPoor       Quality = "Poor match"
)

// QualityFor maps a colour difference to its quality tier.
func QualityFor(difference float64) Quality {
	switch {
	case difference < 3:
		return QualityExcellent
	case difference < 6:
		return QualityVeryGood
	case difference < 12:
		return QualityGood
	case difference < 25:
		return QualityAcceptable
	default:
		return QualityPoor
	}
}

// Match is one catalogued pencil scored against a target colour.
type Match struct {
	Brand      string     `json:"brand"`
	Name       string     `json:"name"`
	Code       string     `json:"code"`
	PencilRGB  colour.RGB `json:"pencil_rgb"`
	TargetRGB  colour.RGB `json:"target_rgb"`
	Difference float64    `json:"color_difference"`
	Quality    Quality    `json:"quality"`
}

// Matcher scores targets against an injected pencil catalog. The
// catalog is read-only, so a Matcher is safe for concurrent use.
type Matcher struct {
	pencils []catalog.Pencil
}

// New creates a Matcher over the given catalog entries.
func New(pencils []catalog.Pencil) *Matcher {
	return &Matcher{pencils: pencils}
}

// FindMatches returns the pencils within maxDifference of the target,
// sorted ascending by difference, with at most maxPerBrand entries for
// any single brand. The cap is applied after the global sort, so a
// brand's quota is filled by its globally closest entries and the
// overall ordering is preserved. A non-positive maxDifference falls
// back to DefaultMaxDifference.
func (m *Matcher) FindMatches(target colour.RGB, maxPerBrand int, maxDifference float64) []Match {
	if maxPerBrand < 1 {
		return nil
	}
	if maxDifference <= 0 {
		maxDifference = DefaultMaxDifference
	}

	var matches []Match
	for _, p := range m.pencils {
		diff := colour.Difference(target, p.RGB)
		if diff > maxDifference {
			continue
		}
		matches = append(matches, newMatch(p, target, diff))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Difference < matches[j].Difference
	})

	perBrand := make(map[string]int)
	capped := matches[:0]
	for _, match := range matches {
		if perBrand[match.Brand] >= maxPerBrand {
			continue
		}
		perBrand[match.Brand]++
		capped = append(capped, match)
	}
	return capped
}

// FindBestMatch returns the single closest pencil, optionally
// restricted to one brand. brand == "" searches the whole catalog.
// The second return is false only when no pencil was considered.
func (m *Matcher) FindBestMatch(target colour.RGB, brand string) (Match, bool) {
	var best Match
	found := false
	for _, p := range m.pencils {
		if brand != "" && p.Brand != brand {
			continue
		}
		diff := colour.Difference(target, p.RGB)
		if !found || diff < best.Difference {
			best = newMatch(p, target, diff)
			found = true
		}
	}
	return best, found
}

// Complementary suggests pencils for the colour opposite the target on
// the colour wheel, capped at three matches per brand.
func (m *Matcher) Complementary(target colour.RGB) []Match {
	return m.FindMatches(colour.Complement(target), complementaryCap, DefaultMaxDifference)
}

func newMatch(p catalog.Pencil, target colour.RGB, diff float64) Match {
	return Match{
		Brand:      p.Brand,
		Name:       p.Name,
		Code:       p.Code,
		PencilRGB:  p.RGB,
		TargetRGB:  target,
		Difference: diff,
		Quality:    QualityFor(diff),
	}
}

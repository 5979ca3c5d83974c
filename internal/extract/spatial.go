package extract

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution classifies how a colour is spread across an image.
type Distribution string

const (
	DistributionWidespread   Distribution = "widespread"
	DistributionConcentrated Distribution = "concentrated"
	DistributionLocalized    Distribution = "localized"
	DistributionScattered    Distribution = "scattered"
	DistributionUnknown      Distribution = "unknown"
	DistributionNone         Distribution = "none"
)

// Coverage is the share of a colour's pixels falling in each of six
// overlapping image regions, in percent of the colour's own pixel
// count. The vertical and horizontal axes are computed independently,
// so each axis sums to ~100 on its own.
type Coverage struct {
	Top    float64 `json:"top"`
	Middle float64 `json:"middle"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Center float64 `json:"center"`
	Right  float64 `json:"right"`
}

// LocationInfo describes where a colour cluster appears in the image.
type LocationInfo struct {
	Regions      []string     `json:"regions"`
	Distribution Distribution `json:"distribution"`
	PrimaryAreas []string     `json:"primary_areas"`
	Coverage     Coverage     `json:"coverage"`
}

// Coverage threshold (percent) above which a region counts as primary.
const primaryAreaThreshold = 20.0

// areaDescriptions maps region tags to their human-readable form.
var areaDescriptions = map[string]string{
	"top":    "Upper portion",
	"middle": "Middle section",
	"bottom": "Lower portion",
	"left":   "Left side",
	"center": "Center area",
	"right":  "Right side",
}

// AnalyzeLocation classifies the spatial distribution of the cluster
// within the image. assignments is the row-major per-pixel cluster id
// grid for the full image. Analysis never aborts the caller's pipeline:
// malformed input yields the "Analysis unavailable" sentinel and an
// absent cluster yields the "Not found" sentinel.
func AnalyzeLocation(assignments []int, width, height, clusterID int) LocationInfo {
	if width <= 0 || height <= 0 || len(assignments) != width*height {
		return unavailableLocation()
	}

	var ys, xs []float64
	for i, a := range assignments {
		if a == clusterID {
			ys = append(ys, float64(i/width))
			xs = append(xs, float64(i%width))
		}
	}

	if len(ys) == 0 {
		return LocationInfo{
			Regions:      []string{"Not found"},
			Distribution: DistributionScattered,
			PrimaryAreas: []string{},
		}
	}

	coverage := regionalCoverage(ys, xs, height, width)
	primary := primaryAreas(coverage)

	return LocationInfo{
		Regions:      describeRegions(primary),
		Distribution: classifyDistribution(ys, xs, height, width),
		PrimaryAreas: primary,
		Coverage:     coverage,
	}
}

func unavailableLocation() LocationInfo {
	return LocationInfo{
		Regions:      []string{"Analysis unavailable"},
		Distribution: DistributionUnknown,
		PrimaryAreas: []string{},
	}
}

// classifyDistribution buckets the cluster by its normalised spread and
// standard deviation. The checks are ordered; the first match wins.
func classifyDistribution(ys, xs []float64, height, width int) Distribution {
	if len(ys) == 0 {
		return DistributionNone
	}

	h := float64(height)
	w := float64(width)

	ySpread := (floats.Max(ys) - floats.Min(ys)) / h
	xSpread := (floats.Max(xs) - floats.Min(xs)) / w
	yStd := stat.PopStdDev(ys, nil) / h
	xStd := stat.PopStdDev(xs, nil) / w

	switch {
	case ySpread > 0.7 && xSpread > 0.7:
		return DistributionWidespread
	case yStd < 0.15 && xStd < 0.15:
		return DistributionConcentrated
	case ySpread < 0.3 || xSpread < 0.3:
		return DistributionLocalized
	default:
		return DistributionScattered
	}
}

// regionalCoverage computes the percentage of the cluster's pixels
// falling into vertical thirds (top/middle/bottom) and horizontal
// thirds (left/center/right), relative to the cluster's pixel count.
func regionalCoverage(ys, xs []float64, height, width int) Coverage {
	var cov Coverage
	total := float64(len(ys))
	if total == 0 {
		return cov
	}

	h := float64(height)
	w := float64(width)

	for _, y := range ys {
		switch {
		case y < h/3:
			cov.Top++
		case y < 2*h/3:
			cov.Middle++
		default:
			cov.Bottom++
		}
	}
	for _, x := range xs {
		switch {
		case x < w/3:
			cov.Left++
		case x < 2*w/3:
			cov.Center++
		default:
			cov.Right++
		}
	}

	cov.Top = cov.Top / total * 100
	cov.Middle = cov.Middle / total * 100
	cov.Bottom = cov.Bottom / total * 100
	cov.Left = cov.Left / total * 100
	cov.Center = cov.Center / total * 100
	cov.Right = cov.Right / total * 100

	return cov
}

// primaryAreas returns the region tags with coverage above the
// threshold. Vertical regions take priority: horizontal regions are
// only considered when no vertical region qualifies.
func primaryAreas(cov Coverage) []string {
	var primary []string

	if cov.Top > primaryAreaThreshold {
		primary = append(primary, "top")
	}
	if cov.Middle > primaryAreaThreshold {
		primary = append(primary, "middle")
	}
	if cov.Bottom > primaryAreaThreshold {
		primary = append(primary, "bottom")
	}

	if len(primary) == 0 {
		if cov.Left > primaryAreaThreshold {
			primary = append(primary, "left")
		}
		if cov.Center > primaryAreaThreshold {
			primary = append(primary, "center")
		}
		if cov.Right > primaryAreaThreshold {
			primary = append(primary, "right")
		}
	}

	if len(primary) == 0 {
		return []string{"scattered"}
	}
	return primary
}

// describeRegions maps primary areas to human-readable descriptions,
// collapsing the top+bottom and left+right combinations to a single
// phrase.
func describeRegions(primary []string) []string {
	if len(primary) == 0 || (len(primary) == 1 && primary[0] == "scattered") {
		return []string{"Throughout the image"}
	}

	var regions []string
	set := make(map[string]bool, len(primary))
	for _, area := range primary {
		set[area] = true
		if desc, ok := areaDescriptions[area]; ok {
			regions = append(regions, desc)
		}
	}

	if set["top"] && set["bottom"] {
		return []string{"Top and bottom edges"}
	}
	if set["left"] && set["right"] {
		return []string{"Left and right sides"}
	}

	if len(regions) == 0 {
		return []string{"Various areas"}
	}
	return regions
}

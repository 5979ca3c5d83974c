package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV represents a colour in HSV space with hue in degrees (0-360)
// and saturation/value in 0-1.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Normalized returns hue, saturation and value all scaled to 0-1.
// Some export formats expect the normalised representation.
func (h HSV) Normalized() (float64, float64, float64) {
	return h.H / 360.0, h.S, h.V
}

// HSL represents a colour in HSL space with hue in degrees (0-360)
// and saturation/lightness in 0-1.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Normalized returns hue, saturation and lightness all scaled to 0-1.
func (h HSL) Normalized() (float64, float64, float64) {
	return h.H / 360.0, h.S, h.L
}

// toColorful converts an 8-bit RGB value to a colorful.Color.
func toColorful(rgb RGB) colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}

// RGBToLab converts an RGB colour to CIE LAB (D65 reference white).
// go-colorful normalises L to 0..1, so the components are rescaled to
// the conventional ranges (L 0-100).
func RGBToLab(rgb RGB) (l, a, b float64) {
	cl, ca, cb := toColorful(rgb).Lab()
	return cl * 100, ca * 100, cb * 100
}

// RGBToHSV converts an RGB colour to HSV.
func RGBToHSV(rgb RGB) HSV {
	h, s, v := toColorful(rgb).Hsv()
	return HSV{H: h, S: s, V: v}
}

// RGBToHSL converts an RGB colour to HSL.
func RGBToHSL(rgb RGB) HSL {
	h, s, l := toColorful(rgb).Hsl()
	return HSL{H: h, S: s, L: l}
}

// HSVToRGB converts an HSV colour back to 8-bit RGB.
func HSVToRGB(hsv HSV) RGB {
	c := colorful.Hsv(hsv.H, hsv.S, hsv.V).Clamped()
	return RGB{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
	}
}

// Complement returns the colour opposite on the colour wheel: the hue is
// rotated by 180 degrees while saturation and value are kept.
func Complement(rgb RGB) RGB {
	hsv := RGBToHSV(rgb)
	hsv.H = math.Mod(hsv.H+180, 360)
	return HSVToRGB(hsv)
}

// Difference returns the CIE76 Delta E between two RGB colours: the
// Euclidean distance between their LAB vectors. If the LAB conversion
// produces a non-finite result the raw RGB Euclidean distance is used
// instead; valid 8-bit triples never take that path.
func Difference(rgb1, rgb2 RGB) float64 {
	l1, a1, b1 := RGBToLab(rgb1)
	l2, a2, b2 := RGBToLab(rgb2)

	dl := l1 - l2
	da := a1 - a2
	db := b1 - b2
	deltaE := math.Sqrt(dl*dl + da*da + db*db)
	if math.IsNaN(deltaE) || math.IsInf(deltaE, 0) {
		return rgbDistance(rgb1, rgb2)
	}
	return deltaE
}

// rgbDistance is the fail-safe fallback metric: Euclidean distance in
// raw RGB space.
func rgbDistance(rgb1, rgb2 RGB) float64 {
	dr := float64(rgb1.R) - float64(rgb2.R)
	dg := float64(rgb1.G) - float64(rgb2.G)
	db := float64(rgb1.B) - float64(rgb2.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

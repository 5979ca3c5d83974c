package colour

import (
	"math"
	"testing"
)

func TestRGBToLab(t *testing.T) {
	tests := []struct {
		name    string
		rgb     RGB
		wantL   float64
		wantA   float64
		wantB   float64
	}{
		{
			name:  "black",
			rgb:   RGB{R: 0, G: 0, B: 0},
			wantL: 0, wantA: 0, wantB: 0,
		},
		{
			name:  "white",
			rgb:   RGB{R: 255, G: 255, B: 255},
			wantL: 100, wantA: 0, wantB: 0,
		},
		{
			name:  "red",
			rgb:   RGB{R: 255, G: 0, B: 0},
			wantL: 53.24, wantA: 80.09, wantB: 67.20,
		},
		{
			name:  "green",
			rgb:   RGB{R: 0, G: 255, B: 0},
			wantL: 87.73, wantA: -86.18, wantB: 83.18,
		},
		{
			name:  "blue",
			rgb:   RGB{R: 0, G: 0, B: 255},
			wantL: 32.30, wantA: 79.19, wantB: -107.86,
		},
	}

	const tolerance = 0.5

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, a, b := RGBToLab(tt.rgb)
			if math.Abs(l-tt.wantL) > tolerance ||
				math.Abs(a-tt.wantA) > tolerance ||
				math.Abs(b-tt.wantB) > tolerance {
				t.Errorf("RGBToLab(%v) = (%.2f, %.2f, %.2f), want (%.2f, %.2f, %.2f)",
					tt.rgb, l, a, b, tt.wantL, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestDifferenceZeroForIdenticalColours(t *testing.T) {
	colours := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 237, G: 28, B: 36},
		{R: 12, G: 200, B: 99},
	}

	for _, c := range colours {
		if d := Difference(c, c); d != 0 {
			t.Errorf("Difference(%v, %v) = %f, want 0", c, c, d)
		}
	}
}

func TestDifferenceSymmetry(t *testing.T) {
	pairs := [][2]RGB{
		{{R: 255, G: 0, B: 0}, {R: 0, G: 0, B: 255}},
		{{R: 10, G: 20, B: 30}, {R: 200, G: 100, B: 50}},
		{{R: 237, G: 28, B: 36}, {R: 255, G: 0, B: 0}},
	}

	for _, p := range pairs {
		d1 := Difference(p[0], p[1])
		d2 := Difference(p[1], p[0])
		if d1 != d2 {
			t.Errorf("Difference not symmetric: %f vs %f for %v/%v", d1, d2, p[0], p[1])
		}
		if d1 <= 0 {
			t.Errorf("Difference(%v, %v) = %f, want > 0", p[0], p[1], d1)
		}
	}
}

func TestDifferenceMagnitudes(t *testing.T) {
	red := RGB{R: 255, G: 0, B: 0}

	// True Red is perceptually close to pure red.
	trueRed := RGB{R: 237, G: 28, B: 36}
	if d := Difference(red, trueRed); d > 15 {
		t.Errorf("Difference(red, true red) = %f, want small", d)
	}

	// Black is very far from pure red.
	black := RGB{R: 0, G: 0, B: 0}
	if d := Difference(red, black); d < 50 {
		t.Errorf("Difference(red, black) = %f, want > 50", d)
	}
}

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want HSV
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: HSV{H: 0, S: 1, V: 1}},
		{name: "green", rgb: RGB{R: 0, G: 255, B: 0}, want: HSV{H: 120, S: 1, V: 1}},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, want: HSV{H: 240, S: 1, V: 1}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: HSV{H: 0, S: 0, V: 1}},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: HSV{H: 0, S: 0, V: 0}},
	}

	const tolerance = 0.01

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToHSV(tt.rgb)
			if math.Abs(got.H-tt.want.H) > tolerance ||
				math.Abs(got.S-tt.want.S) > tolerance ||
				math.Abs(got.V-tt.want.V) > tolerance {
				t.Errorf("RGBToHSV(%v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestHSVNormalized(t *testing.T) {
	hsv := HSV{H: 180, S: 0.5, V: 0.25}
	h, s, v := hsv.Normalized()
	if h != 0.5 || s != 0.5 || v != 0.25 {
		t.Errorf("Normalized() = (%f, %f, %f), want (0.5, 0.5, 0.25)", h, s, v)
	}
}

func TestHSVToRGBRoundTrip(t *testing.T) {
	colours := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 128, B: 255},
		{R: 34, G: 139, B: 34},
		{R: 221, G: 160, B: 221},
	}

	for _, c := range colours {
		got := HSVToRGB(RGBToHSV(c))
		// Round-tripping through HSV can shift channels by a unit.
		if absDiff(got.R, c.R) > 1 || absDiff(got.G, c.G) > 1 || absDiff(got.B, c.B) > 1 {
			t.Errorf("HSVToRGB(RGBToHSV(%v)) = %v", c, got)
		}
	}
}

func TestComplement(t *testing.T) {
	// Pure red (hue 0) complements to cyan (hue 180, i.e. 0.5 normalised).
	comp := Complement(RGB{R: 255, G: 0, B: 0})
	h, _, _ := RGBToHSV(comp).Normalized()
	if math.Abs(h-0.5) > 0.01 {
		t.Errorf("Complement(red) hue = %f normalised, want ~0.5", h)
	}
	if comp.R != 0 || comp.G != 255 || comp.B != 255 {
		t.Errorf("Complement(red) = %v, want cyan", comp)
	}
}

func TestRGBToHSL(t *testing.T) {
	hsl := RGBToHSL(RGB{R: 255, G: 0, B: 0})
	if math.Abs(hsl.H-0) > 0.01 || math.Abs(hsl.S-1) > 0.01 || math.Abs(hsl.L-0.5) > 0.01 {
		t.Errorf("RGBToHSL(red) = %+v, want {0 1 0.5}", hsl)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

// Package export renders palettes and pencil matches in the formats
// design tools and spreadsheets expect.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"pencilmatch/internal/colour"
	"pencilmatch/internal/extract"
)

// Format identifies a palette export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatAdobe    Format = "adobe"
	FormatFigma    Format = "figma"
	FormatAffinity Format = "affinity"
	FormatPhotopea Format = "photopea"
)

// Formats lists the supported palette formats.
func Formats() []Format {
	return []Format{
		FormatJSON, FormatCSV, FormatCSS, FormatSCSS,
		FormatAdobe, FormatFigma, FormatAffinity, FormatPhotopea,
	}
}

// Palette renders the colours in the requested format.
func Palette(format Format, colors []extract.ExtractedColor, meta map[string]any) (string, error) {
	switch format {
	case FormatJSON:
		return JSON(colors, meta)
	case FormatCSV:
		return CSV(colors)
	case FormatCSS:
		return CSS(colors, "color"), nil
	case FormatSCSS:
		return SCSS(colors, "color"), nil
	case FormatAdobe:
		return AdobeSwatch(colors, "Custom Palette"), nil
	case FormatFigma:
		return Figma(colors)
	case FormatAffinity:
		return Affinity(colors), nil
	case FormatPhotopea:
		return Photopea(colors)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}

type jsonRGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

type jsonHSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type jsonColor struct {
	Index      int     `json:"index"`
	Hex        string  `json:"hex"`
	RGB        jsonRGB `json:"rgb"`
	HSL        jsonHSL `json:"hsl"`
	Percentage float64 `json:"percentage"`
	Brightness float64 `json:"brightness"`
}

type jsonPalette struct {
	PaletteInfo  map[string]any `json:"palette_info"`
	Colors       []jsonColor    `json:"colors"`
	ExportFormat string         `json:"export_format"`
	TotalColors  int            `json:"total_colors"`
}

// JSON renders the palette as indented JSON with hue in degrees and
// saturation/lightness as percentages.
func JSON(colors []extract.ExtractedColor, meta map[string]any) (string, error) {
	if meta == nil {
		meta = map[string]any{}
	}
	doc := jsonPalette{
		PaletteInfo:  meta,
		Colors:       make([]jsonColor, 0, len(colors)),
		ExportFormat: "json",
		TotalColors:  len(colors),
	}
	for i, c := range colors {
		hsl := colour.RGBToHSL(c.RGB)
		doc.Colors = append(doc.Colors, jsonColor{
			Index: i,
			Hex:   c.Hex,
			RGB:   jsonRGB{R: c.RGB.R, G: c.RGB.G, B: c.RGB.B},
			HSL: jsonHSL{
				H: round1(hsl.H),
				S: round1(hsl.S * 100),
				L: round1(hsl.L * 100),
			},
			Percentage: round2(c.Percentage),
			Brightness: round2(c.Brightness),
		})
	}
	return marshalIndent(doc)
}

// CSV renders the palette as a spreadsheet with one row per colour.
func CSV(colors []extract.ExtractedColor) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"Index", "Hex", "R", "G", "B", "Percentage", "Brightness"}); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for i, c := range colors {
		row := []string{
			fmt.Sprintf("%d", i),
			c.Hex,
			fmt.Sprintf("%d", c.RGB.R),
			fmt.Sprintf("%d", c.RGB.G),
			fmt.Sprintf("%d", c.RGB.B),
			formatFloat(round2(c.Percentage)),
			formatFloat(round2(c.Brightness)),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return sb.String(), nil
}

// CSS renders the palette as custom properties plus foreground and
// background utility classes.
func CSS(colors []extract.ExtractedColor, prefix string) string {
	var sb strings.Builder
	sb.WriteString("/* Color Palette CSS */\n")
	sb.WriteString(":root {\n")
	for i, c := range colors {
		fmt.Fprintf(&sb, "  --%s-%d: %s;\n", prefix, i+1, c.Hex)
	}
	sb.WriteString("}\n\n")
	for i, c := range colors {
		fmt.Fprintf(&sb, ".%s-%d {\n  color: %s;\n}\n\n", prefix, i+1, c.Hex)
		fmt.Fprintf(&sb, ".bg-%s-%d {\n  background-color: %s;\n}\n\n", prefix, i+1, c.Hex)
	}
	return sb.String()
}

// SCSS renders the palette as SCSS variables and a colour map.
func SCSS(colors []extract.ExtractedColor, prefix string) string {
	var sb strings.Builder
	sb.WriteString("// Color Palette SCSS Variables\n\n")
	for i, c := range colors {
		fmt.Fprintf(&sb, "$%s-%d: %s;\n", prefix, i+1, c.Hex)
	}
	sb.WriteString("\n// Color map for easy iteration\n")
	sb.WriteString("$palette-colors: (\n")
	for i, c := range colors {
		fmt.Fprintf(&sb, "  '%s-%d': %s", prefix, i+1, c.Hex)
		if i < len(colors)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(");\n")
	return sb.String()
}

// AdobeSwatch renders a simplified text form of an Adobe Swatch
// Exchange palette.
func AdobeSwatch(colors []extract.ExtractedColor, name string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Adobe Swatch Exchange - %s\n", name)
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")
	for i, c := range colors {
		fmt.Fprintf(&sb, "Color %d: %s\n", i+1, c.Hex)
		fmt.Fprintf(&sb, "  RGB: (%d, %d, %d)\n", c.RGB.R, c.RGB.G, c.RGB.B)
		fmt.Fprintf(&sb, "  RGB Normalized: (%.3f, %.3f, %.3f)\n",
			float64(c.RGB.R)/255, float64(c.RGB.G)/255, float64(c.RGB.B)/255)
		fmt.Fprintf(&sb, "  Percentage: %.1f%%\n\n", c.Percentage)
	}
	return sb.String()
}

type figmaRGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type figmaColor struct {
	Name       string   `json:"name"`
	Hex        string   `json:"hex"`
	RGB        figmaRGB `json:"rgb"`
	Percentage float64  `json:"percentage"`
}

type figmaPalette struct {
	Version string       `json:"version"`
	Type    string       `json:"type"`
	Colors  []figmaColor `json:"colors"`
}

// Figma renders the palette as plugin-importable JSON with 0-1 channel
// values.
func Figma(colors []extract.ExtractedColor) (string, error) {
	doc := figmaPalette{
		Version: "1.0",
		Type:    "color-palette",
		Colors:  make([]figmaColor, 0, len(colors)),
	}
	for i, c := range colors {
		doc.Colors = append(doc.Colors, figmaColor{
			Name: fmt.Sprintf("Color %d", i+1),
			Hex:  c.Hex,
			RGB: figmaRGB{
				R: float64(c.RGB.R) / 255,
				G: float64(c.RGB.G) / 255,
				B: float64(c.RGB.B) / 255,
				A: 1.0,
			},
			Percentage: c.Percentage,
		})
	}
	return marshalIndent(doc)
}

// Affinity renders an .afpalette XML document with 6-decimal channel
// components.
func Affinity(colors []extract.ExtractedColor) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(`<palette name="Extracted Color Palette" version="2.0">` + "\n")
	sb.WriteString("  <colors>\n")
	for i, c := range colors {
		fmt.Fprintf(&sb, "    <color name=\"Color %d\" model=\"rgb\">\n", i+1)
		fmt.Fprintf(&sb, "      <component id=\"red\" value=\"%.6f\"/>\n", float64(c.RGB.R)/255)
		fmt.Fprintf(&sb, "      <component id=\"green\" value=\"%.6f\"/>\n", float64(c.RGB.G)/255)
		fmt.Fprintf(&sb, "      <component id=\"blue\" value=\"%.6f\"/>\n", float64(c.RGB.B)/255)
		fmt.Fprintf(&sb, "      <component id=\"alpha\" value=\"1.0\"/>\n")
		sb.WriteString("    </color>\n")
	}
	sb.WriteString("  </colors>\n")
	sb.WriteString("</palette>")
	return sb.String()
}

type photopeaHSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

type photopeaColor struct {
	Name       string      `json:"name"`
	RGB        jsonRGB     `json:"rgb"`
	HSV        photopeaHSV `json:"hsv"`
	Hex        string      `json:"hex"`
	Percentage float64     `json:"percentage"`
}

type photopeaPalette struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Version   string          `json:"version"`
	Colors    []photopeaColor `json:"colors"`
	UsageNote string          `json:"usage_note"`
}

// Photopea renders a swatch palette importable through Photopea's
// swatches panel.
func Photopea(colors []extract.ExtractedColor) (string, error) {
	doc := photopeaPalette{
		Name:      "Extracted_Color_Palette",
		Type:      "photopea_palette",
		Version:   "1.0",
		Colors:    make([]photopeaColor, 0, len(colors)),
		UsageNote: "Import this JSON into Photopea via Window > Swatches > Load Swatches",
	}
	for i, c := range colors {
		hsv := colour.RGBToHSV(c.RGB)
		doc.Colors = append(doc.Colors, photopeaColor{
			Name: fmt.Sprintf("Color_%d", i+1),
			RGB:  jsonRGB{R: c.RGB.R, G: c.RGB.G, B: c.RGB.B},
			HSV: photopeaHSV{
				H: round2(hsv.H),
				S: round2(hsv.S * 100),
				V: round2(hsv.V * 100),
			},
			Hex:        c.Hex,
			Percentage: c.Percentage,
		})
	}
	return marshalIndent(doc)
}

func marshalIndent(doc any) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling palette: %w", err)
	}
	return string(data), nil
}

func formatFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

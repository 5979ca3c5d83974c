package export

import (
	"encoding/csv"
	"fmt"
	"strings"

	"pencilmatch/internal/colour"
	"pencilmatch/internal/match"
)

// The text shopping list keeps only the closest pencils per brand.
const shoppingListTopN = 10

// ShoppingFormat identifies a shopping list output format.
type ShoppingFormat string

const (
	ShoppingText ShoppingFormat = "text"
	ShoppingCSV  ShoppingFormat = "csv"
	ShoppingJSON ShoppingFormat = "json"
)

// ShoppingList renders a de-duplicated pencil shopping list from match
// results. Duplicate brand/code pairs keep their closest occurrence,
// and pencils are ordered by ascending colour difference.
func ShoppingList(matches []match.Match, format ShoppingFormat) (string, error) {
	pencils := dedupeMatches(matches)
	switch format {
	case ShoppingText:
		return shoppingText(pencils), nil
	case ShoppingCSV:
		return shoppingCSV(pencils)
	case ShoppingJSON:
		return shoppingJSON(pencils)
	default:
		return "", fmt.Errorf("unknown shopping list format %q", format)
	}
}

// dedupeMatches collapses repeated brand/code pairs to the lowest
// difference seen and returns the survivors sorted ascending. The
// input is already sorted per target, so a stable insertion pass over
// a small list keeps this simple.
func dedupeMatches(matches []match.Match) []match.Match {
	best := make(map[string]match.Match)
	var order []string
	for _, m := range matches {
		key := m.Brand + "_" + m.Code
		existing, ok := best[key]
		if !ok {
			order = append(order, key)
			best[key] = m
			continue
		}
		if m.Difference < existing.Difference {
			best[key] = m
		}
	}

	out := make([]match.Match, 0, len(order))
	for _, key := range order {
		out = append(out, best[key])
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Difference < out[j-1].Difference; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// shoppingBrands returns the distinct brands in first-appearance order.
func shoppingBrands(pencils []match.Match) []string {
	seen := make(map[string]bool)
	var brands []string
	for _, p := range pencils {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	return brands
}

func shoppingText(pencils []match.Match) string {
	var sb strings.Builder
	sb.WriteString("COLORED PENCIL SHOPPING LIST\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")

	for _, brand := range shoppingBrands(pencils) {
		header := strings.ToUpper(brand) + " PENCILS:"
		sb.WriteString(header + "\n")
		sb.WriteString(strings.Repeat("-", len(header)) + "\n")

		n := 0
		for _, p := range pencils {
			if p.Brand != brand || n >= shoppingListTopN {
				continue
			}
			fmt.Fprintf(&sb, "- %s (%s) - Match Quality: %s\n", p.Name, p.Code, qualityText(p.Difference))
			n++
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func shoppingCSV(pencils []match.Match) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"Brand", "Name", "Code", "Color Difference", "Match Quality"}); err != nil {
		return "", fmt.Errorf("writing shopping list header: %w", err)
	}
	for _, p := range pencils {
		row := []string{
			p.Brand,
			p.Name,
			p.Code,
			formatFloat(round2(p.Difference)),
			qualityText(p.Difference),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing shopping list row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing shopping list: %w", err)
	}
	return sb.String(), nil
}

type shoppingItem struct {
	Brand        string     `json:"brand"`
	Name         string     `json:"name"`
	Code         string     `json:"code"`
	Difference   float64    `json:"color_difference"`
	MatchQuality string     `json:"match_quality"`
	RGB          colour.RGB `json:"rgb"`
}

type shoppingDoc struct {
	ShoppingList []shoppingItem `json:"shopping_list"`
	TotalPencils int            `json:"total_pencils"`
	Brands       []string       `json:"brands"`
}

func shoppingJSON(pencils []match.Match) (string, error) {
	doc := shoppingDoc{
		ShoppingList: make([]shoppingItem, 0, len(pencils)),
		TotalPencils: len(pencils),
		Brands:       shoppingBrands(pencils),
	}
	for _, p := range pencils {
		doc.ShoppingList = append(doc.ShoppingList, shoppingItem{
			Brand:        p.Brand,
			Name:         p.Name,
			Code:         p.Code,
			Difference:   round2(p.Difference),
			MatchQuality: qualityText(p.Difference),
			RGB:          p.PencilRGB,
		})
	}
	return marshalIndent(doc)
}

// qualityText is the short tier label used on shopping lists.
func qualityText(difference float64) string {
	switch {
	case difference < 3:
		return "Excellent"
	case difference < 6:
		return "Very Good"
	case difference < 12:
		return "Good"
	case difference < 25:
		return "Acceptable"
	default:
		return "Poor"
	}
}

package export

import (
	"encoding/json"
	"strings"
	"testing"

	"pencilmatch/internal/colour"
	"pencilmatch/internal/match"
)

func testMatches() []match.Match {
	return []match.Match{
		{Brand: "Prismacolor", Name: "True Red", Code: "PC922", PencilRGB: colour.RGB{R: 237, G: 28, B: 36}, Difference: 4.2},
		{Brand: "Derwent", Name: "Crimson Lake", Code: "20", PencilRGB: colour.RGB{R: 220, G: 20, B: 60}, Difference: 8.1},
		// Same pencil matched again from another palette colour, closer.
		{Brand: "Prismacolor", Name: "True Red", Code: "PC922", PencilRGB: colour.RGB{R: 237, G: 28, B: 36}, Difference: 1.5},
		{Brand: "Prismacolor", Name: "Black", Code: "PC935", PencilRGB: colour.RGB{}, Difference: 30.0},
	}
}

func TestShoppingListDedupesAndSorts(t *testing.T) {
	out, err := ShoppingList(testMatches(), ShoppingCSV)
	if err != nil {
		t.Fatalf("ShoppingList error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"Brand,Name,Code,Color Difference,Match Quality",
		"Prismacolor,True Red,PC922,1.5,Excellent",
		"Derwent,Crimson Lake,20,8.1,Good",
		"Prismacolor,Black,PC935,30,Poor",
	}
	if len(lines) != len(want) {
		t.Fatalf("csv has %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
}

func TestShoppingListText(t *testing.T) {
	out, err := ShoppingList(testMatches(), ShoppingText)
	if err != nil {
		t.Fatalf("ShoppingList error: %v", err)
	}

	for _, want := range []string{
		"COLORED PENCIL SHOPPING LIST",
		"PRISMACOLOR PENCILS:",
		"DERWENT PENCILS:",
		"- True Red (PC922) - Match Quality: Excellent",
		"- Crimson Lake (20) - Match Quality: Good",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text list missing %q", want)
		}
	}
}

func TestShoppingListJSON(t *testing.T) {
	out, err := ShoppingList(testMatches(), ShoppingJSON)
	if err != nil {
		t.Fatalf("ShoppingList error: %v", err)
	}

	var doc struct {
		ShoppingList []struct {
			Brand        string  `json:"brand"`
			Code         string  `json:"code"`
			Difference   float64 `json:"color_difference"`
			MatchQuality string  `json:"match_quality"`
		} `json:"shopping_list"`
		TotalPencils int      `json:"total_pencils"`
		Brands       []string `json:"brands"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.TotalPencils != 3 {
		t.Errorf("total_pencils = %d, want 3 after dedupe", doc.TotalPencils)
	}
	if len(doc.Brands) != 2 {
		t.Errorf("brands = %v, want 2 entries", doc.Brands)
	}
	if doc.ShoppingList[0].Code != "PC922" || doc.ShoppingList[0].Difference != 1.5 {
		t.Errorf("first item = %+v, want deduped True Red", doc.ShoppingList[0])
	}
	if doc.ShoppingList[0].MatchQuality != "Excellent" {
		t.Errorf("quality = %s", doc.ShoppingList[0].MatchQuality)
	}
}

func TestShoppingListUnknownFormat(t *testing.T) {
	if _, err := ShoppingList(testMatches(), "yaml"); err == nil {
		t.Error("unknown format did not error")
	}
}

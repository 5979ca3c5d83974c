package catalog

import (
	"testing"

	"pencilmatch/internal/colour"
)

func TestBrandsCoverAllTables(t *testing.T) {
	brands := Brands()
	if len(brands) != 6 {
		t.Fatalf("Brands() returned %d brands, want 6", len(brands))
	}
	for _, b := range brands {
		if len(ByBrand(b)) == 0 {
			t.Errorf("ByBrand(%q) is empty", b)
		}
	}
}

func TestAllMatchesBrandTotals(t *testing.T) {
	total := 0
	for _, b := range Brands() {
		total += len(ByBrand(b))
	}
	if got := len(All()); got != total {
		t.Errorf("All() returned %d pencils, brand tables hold %d", got, total)
	}
}

func TestEveryPencilIsComplete(t *testing.T) {
	for _, p := range All() {
		if p.Brand == "" || p.Name == "" || p.Code == "" {
			t.Errorf("incomplete pencil: %+v", p)
		}
	}
}

func TestByBrandUnknown(t *testing.T) {
	if got := ByBrand("Crayola"); got != nil {
		t.Errorf("ByBrand(unknown) = %v, want nil", got)
	}
}

func TestKnownEntries(t *testing.T) {
	tests := []struct {
		brand string
		name  string
		code  string
		rgb   colour.RGB
	}{
		{Prismacolor, "True Red", "PC922", colour.RGB{R: 237, G: 28, B: 36}},
		{Prismacolor, "Black", "PC935", colour.RGB{}},
		{FaberCastell, "Ultramarine", "FC120", colour.RGB{R: 63, G: 105, B: 170}},
		{CaranDAche, "Scarlet", "070", colour.RGB{R: 237, G: 28, B: 36}},
		{Derwent, "Chinese White", "72", colour.RGB{R: 255, G: 255, B: 255}},
		{Staedtler, "Rose", "26", colour.RGB{R: 255, G: 0, B: 127}},
		{KohINoor, "Dark Grey", "3970", colour.RGB{R: 64, G: 64, B: 64}},
	}

	for _, tt := range tests {
		t.Run(tt.brand+"/"+tt.name, func(t *testing.T) {
			found := false
			for _, p := range ByBrand(tt.brand) {
				if p.Name == tt.name && p.Code == tt.code {
					found = true
					if p.RGB != tt.rgb {
						t.Errorf("%s %s rgb = %v, want %v", tt.brand, tt.name, p.RGB, tt.rgb)
					}
				}
			}
			if !found {
				t.Errorf("%s %s (%s) not in catalog", tt.brand, tt.name, tt.code)
			}
		})
	}
}

func TestByBrandReturnsCopy(t *testing.T) {
	first := ByBrand(Prismacolor)
	first[0].Name = "mutated"
	if second := ByBrand(Prismacolor); second[0].Name == "mutated" {
		t.Error("ByBrand exposes the underlying table")
	}
}

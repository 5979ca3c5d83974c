// Package catalog holds the built-in coloured pencil reference tables.
// The tables are fixed at compile time and never mutated, so they are
// safe for concurrent readers.
package catalog

import "pencilmatch/internal/colour"

// Pencil is one catalogued coloured pencil.
type Pencil struct {
	Brand string     `json:"brand"`
	Name  string     `json:"name"`
	Code  string     `json:"code"`
	RGB   colour.RGB `json:"rgb"`
}

// Brand names as they appear in the catalog.
const (
	Prismacolor  = "Prismacolor"
	FaberCastell = "Faber Castell"
	CaranDAche   = "Caran d'Ache"
	Derwent      = "Derwent"
	Staedtler    = "Staedtler"
	KohINoor     = "Koh-I-Noor"
)

var brands = []string{
	Prismacolor,
	FaberCastell,
	CaranDAche,
	Derwent,
	Staedtler,
	KohINoor,
}

var tables = map[string][]Pencil{
	Prismacolor:  prismacolor,
	FaberCastell: faberCastell,
	CaranDAche:   caranDAche,
	Derwent:      derwent,
	Staedtler:    staedtler,
	KohINoor:     kohINoor,
}

// Brands lists all catalogued brands in display order.
func Brands() []string {
	out := make([]string, len(brands))
	copy(out, brands)
	return out
}

// All returns every pencil across every brand. The result is a fresh
// slice the caller may reorder freely.
func All() []Pencil {
	var out []Pencil
	for _, b := range brands {
		out = append(out, tables[b]...)
	}
	return out
}

// ByBrand returns the pencils of one brand, or nil for an unknown brand.
func ByBrand(brand string) []Pencil {
	table, ok := tables[brand]
	if !ok {
		return nil
	}
	out := make([]Pencil, len(table))
	copy(out, table)
	return out
}

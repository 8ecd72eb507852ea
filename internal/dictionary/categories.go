// Package dictionary holds curated default data seeded into a fresh ledger.
package dictionary

import (
	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/ledger"
)

type categoryDef struct {
	Name  string
	Color string
}

var curated = map[ledger.CategoryType][]categoryDef{
	ledger.CategoryTypeIncome: {
		{Name: "Gehalt", Color: "#36B37E"},
		{Name: "Bonus", Color: "#00B8D9"},
		{Name: "Geschenk", Color: "#6554C0"},
		{Name: "Rückerstattung", Color: "#00875A"},
		{Name: "Investitionen", Color: "#0052CC"},
		{Name: "Sonstiges Einkommen", Color: "#8777D9"},
	},
	ledger.CategoryTypeExpense: {
		{Name: "Lebensmittel", Color: "#FF5630"},
		{Name: "Wohnen", Color: "#FF8B00"},
		{Name: "Transport", Color: "#FFAB00"},
		{Name: "Gesundheit", Color: "#36B37E"},
		{Name: "Versicherung", Color: "#00B8D9"},
		{Name: "Unterhaltung", Color: "#6554C0"},
		{Name: "Shopping", Color: "#FF5630"},
		{Name: "Restaurant", Color: "#FF8B00"},
		{Name: "Bildung", Color: "#00B8D9"},
		{Name: "Abonnements", Color: "#6554C0"},
		{Name: "Schulden", Color: "#FF5630"},
		{Name: "Sonstige Ausgaben", Color: "#8777D9"},
	},
}

// DefaultCategories returns the starter category set for a first run, with
// fresh ids. Income categories come first, then expenses.
func DefaultCategories() []ledger.Category {
	out := make([]ledger.Category, 0, len(curated[ledger.CategoryTypeIncome])+len(curated[ledger.CategoryTypeExpense]))
	for _, typ := range []ledger.CategoryType{ledger.CategoryTypeIncome, ledger.CategoryTypeExpense} {
		for _, def := range curated[typ] {
			out = append(out, ledger.Category{ID: uuid.New(), Name: def.Name, Type: typ, Color: def.Color})
		}
	}
	return out
}

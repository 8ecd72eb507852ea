package dictionary

import (
	"testing"

	"github.com/google/uuid"

	"github.com/haushalt/ledger/internal/ledger"
)

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) == 0 {
		t.Fatal("starter set must not be empty")
	}

	seen := make(map[uuid.UUID]struct{})
	sawExpense := false
	for _, c := range cats {
		if c.ID == uuid.Nil {
			t.Fatalf("category %q has no id", c.Name)
		}
		if _, dup := seen[c.ID]; dup {
			t.Fatalf("duplicate id for %q", c.Name)
		}
		seen[c.ID] = struct{}{}
		switch c.Type {
		case ledger.CategoryTypeIncome:
			if sawExpense {
				t.Fatal("income categories must precede expenses")
			}
		case ledger.CategoryTypeExpense:
			sawExpense = true
		default:
			t.Fatalf("category %q has invalid type %q", c.Name, c.Type)
		}
		if c.Name == "" || c.Color == "" {
			t.Fatalf("category missing name or color: %+v", c)
		}
	}
}

func TestDefaultCategoriesFreshIDs(t *testing.T) {
	a := DefaultCategories()
	b := DefaultCategories()
	if a[0].ID == b[0].ID {
		t.Fatal("each call must mint fresh ids")
	}
}

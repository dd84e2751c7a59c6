package services

import (
	"errors"
	"testing"

	"hotchick-orders/models"
)

func TestLookupMenuItem(t *testing.T) {
	e, err := LookupMenuItem("French Fries")
	if err != nil {
		t.Fatalf("LookupMenuItem: %v", err)
	}
	if e.FixedPrice != 70 {
		t.Errorf("FixedPrice = %d, want 70", e.FixedPrice)
	}

	_, err = LookupMenuItem("Pizza")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
}

func TestMenuEntryAt(t *testing.T) {
	if _, err := MenuEntryAt(0); err != nil {
		t.Errorf("MenuEntryAt(0): %v", err)
	}
	for _, idx := range []int{-1, len(models.Menu)} {
		if _, err := MenuEntryAt(idx); !errors.Is(err, ErrItemNotFound) {
			t.Errorf("MenuEntryAt(%d) err = %v, want ErrItemNotFound", idx, err)
		}
	}
}

func TestPriceOptions(t *testing.T) {
	fixed := models.MenuEntry{Name: "French Fries", FixedPrice: 70}
	opts := PriceOptions(fixed)
	if len(opts) != 1 {
		t.Fatalf("fixed price: len(opts) = %d, want 1", len(opts))
	}
	if opts[0].Label != "Option 1" || opts[0].UnitPrice != 70 || opts[0].Index != 0 {
		t.Errorf("fixed option = %+v", opts[0])
	}

	portioned := models.MenuEntry{Name: "Fried chicken wings (3pc/5pc)", Portions: []int64{80, 130}}
	opts = PriceOptions(portioned)
	if len(opts) != 2 {
		t.Fatalf("portioned: len(opts) = %d, want 2", len(opts))
	}
	want := []models.PriceOption{
		{Label: "Option 1", Index: 1, UnitPrice: 80},
		{Label: "Option 2", Index: 2, UnitPrice: 130},
	}
	for i, w := range want {
		if opts[i] != w {
			t.Errorf("opts[%d] = %+v, want %+v", i, opts[i], w)
		}
	}
}

// The catalog is hand-maintained data; check its invariants hold.
func TestMenuCatalogInvariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range models.Menu {
		if e.Name == "" {
			t.Error("menu entry with empty name")
		}
		if seen[e.Name] {
			t.Errorf("duplicate menu entry %q", e.Name)
		}
		seen[e.Name] = true

		if e.HasPortions() {
			if e.FixedPrice != 0 {
				t.Errorf("%q has both fixed price and portions", e.Name)
			}
			for i, p := range e.Portions {
				if p <= 0 {
					t.Errorf("%q portion %d price = %d, want > 0", e.Name, i+1, p)
				}
			}
		} else if e.FixedPrice <= 0 {
			t.Errorf("%q fixed price = %d, want > 0", e.Name, e.FixedPrice)
		}
	}
}

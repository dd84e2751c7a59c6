package services

import (
	"errors"
	"testing"

	"hotchick-orders/models"
)

var (
	wings = models.MenuEntry{Name: "Fried chicken wings (3pc/5pc)", Portions: []int64{80, 130}}
	fries = models.MenuEntry{Name: "French Fries", FixedPrice: 70}
)

func TestAddItem_TotalIsSumOfLines(t *testing.T) {
	cart := &models.Cart{}
	adds := []struct {
		entry models.MenuEntry
		opt   int
		qty   int
	}{
		{wings, 2, 3}, // 3 * 130 = 390
		{fries, 0, 1}, // 1 * 70 = 70
		{wings, 1, 2}, // 2 * 80 = 160
		{fries, 0, 4}, // 4 * 70 = 280
	}

	var want int64
	for _, a := range adds {
		line, err := AddItem(cart, a.entry, a.opt, a.qty)
		if err != nil {
			t.Fatalf("AddItem(%s, opt=%d, qty=%d): %v", a.entry.Name, a.opt, a.qty, err)
		}
		if line.LineTotal != int64(a.qty)*line.UnitPrice {
			t.Errorf("LineTotal = %d, want qty*unit = %d", line.LineTotal, int64(a.qty)*line.UnitPrice)
		}
		want += line.LineTotal
	}
	if got := CartTotal(cart); got != want {
		t.Errorf("CartTotal = %d, want %d", got, want)
	}
}

func TestAddItem_QuantityBounds(t *testing.T) {
	tests := []struct {
		qty     int
		wantErr bool
	}{
		{0, true},
		{-1, true},
		{11, true},
		{1, false},
		{10, false},
	}
	for _, tt := range tests {
		cart := &models.Cart{}
		_, err := AddItem(cart, fries, 0, tt.qty)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidQuantity) {
				t.Errorf("AddItem(qty=%d) err = %v, want ErrInvalidQuantity", tt.qty, err)
			}
			if len(cart.Items) != 0 {
				t.Errorf("AddItem(qty=%d) mutated cart on error", tt.qty)
			}
		} else if err != nil {
			t.Errorf("AddItem(qty=%d): %v", tt.qty, err)
		}
	}
}

func TestAddItem_PortionSelection(t *testing.T) {
	tests := []struct {
		name      string
		entry     models.MenuEntry
		opt       int
		wantErr   bool
		wantPrice int64
		wantNote  string
	}{
		{"portion 1", wings, 1, false, 80, "(Portion 1)"},
		{"portion 2", wings, 2, false, 130, "(Portion 2)"},
		{"portion 0 invalid", wings, 0, true, 0, ""},
		{"portion out of range", wings, 3, true, 0, ""},
		{"fixed price ignores option", fries, 99, false, 70, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := &models.Cart{}
			line, err := AddItem(cart, tt.entry, tt.opt, 1)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPortion) {
					t.Fatalf("err = %v, want ErrInvalidPortion", err)
				}
				if len(cart.Items) != 0 {
					t.Error("cart mutated on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddItem: %v", err)
			}
			if line.UnitPrice != tt.wantPrice {
				t.Errorf("UnitPrice = %d, want %d", line.UnitPrice, tt.wantPrice)
			}
			if line.PortionNote != tt.wantNote {
				t.Errorf("PortionNote = %q, want %q", line.PortionNote, tt.wantNote)
			}
		})
	}
}

func TestAddItem_DuplicatesStaySeparateLines(t *testing.T) {
	cart := &models.Cart{}
	if _, err := AddItem(cart, fries, 0, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := AddItem(cart, fries, 0, 2); err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2 (lines must never merge)", len(cart.Items))
	}
	if got := CartTotal(cart); got != 280 {
		t.Errorf("CartTotal = %d, want 280", got)
	}
}

func TestClearCart(t *testing.T) {
	cart := &models.Cart{}
	if _, err := AddItem(cart, fries, 0, 1); err != nil {
		t.Fatal(err)
	}
	ClearCart(cart)
	if len(cart.Items) != 0 {
		t.Errorf("len(Items) = %d after clear, want 0", len(cart.Items))
	}
	if got := CartTotal(cart); got != 0 {
		t.Errorf("CartTotal = %d for empty cart, want 0", got)
	}
}

package services

import (
	"errors"
	"fmt"

	"hotchick-orders/models"
)

// MaxQuantity is the per-line quantity cap offered by the UI.
const MaxQuantity = 10

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 10")
	ErrInvalidPortion  = errors.New("invalid portion selection")
)

// AddItem validates the selection, computes the line total and appends a new
// line to the cart. optionIndex is the 1-based portion index for portioned
// entries and is ignored for fixed-price entries. Lines are never merged:
// adding the same item twice yields two lines.
func AddItem(cart *models.Cart, entry models.MenuEntry, optionIndex, quantity int) (models.LineItem, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return models.LineItem{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	var unitPrice int64
	var portionNote string
	if entry.HasPortions() {
		if optionIndex < 1 || optionIndex > len(entry.Portions) {
			return models.LineItem{}, fmt.Errorf("%w: option %d of %d for %q",
				ErrInvalidPortion, optionIndex, len(entry.Portions), entry.Name)
		}
		unitPrice = entry.Portions[optionIndex-1]
		portionNote = fmt.Sprintf("(Portion %d)", optionIndex)
	} else {
		unitPrice = entry.FixedPrice
	}

	line := models.LineItem{
		ItemName:    entry.Name,
		PortionNote: portionNote,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   int64(quantity) * unitPrice,
	}
	cart.Items = append(cart.Items, line)
	return line, nil
}

// CartTotal recomputes the order total from the lines. Nothing stores the
// total redundantly, so it cannot drift.
func CartTotal(cart *models.Cart) int64 {
	var total int64
	for _, it := range cart.Items {
		total += it.LineTotal
	}
	return total
}

// ClearCart empties the cart. Called only after the order has been
// persisted (or the user explicitly abandons the cart).
func ClearCart(cart *models.Cart) {
	cart.Items = nil
}

package services

import (
	"errors"
	"fmt"

	"hotchick-orders/models"
)

var ErrItemNotFound = errors.New("menu item not found")

// LookupMenuItem finds an entry by exact name. The keyboards only offer
// known names, but callback data is still checked here.
func LookupMenuItem(name string) (models.MenuEntry, error) {
	for _, e := range models.Menu {
		if e.Name == name {
			return e, nil
		}
	}
	return models.MenuEntry{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
}

// MenuEntryAt returns the entry at the given catalog position. The bot keys
// its callbacks by position to stay inside Telegram's 64-byte callback limit.
func MenuEntryAt(idx int) (models.MenuEntry, error) {
	if idx < 0 || idx >= len(models.Menu) {
		return models.MenuEntry{}, fmt.Errorf("%w: index %d", ErrItemNotFound, idx)
	}
	return models.Menu[idx], nil
}

// PriceOptions lists the selectable prices for an entry: a single synthetic
// option for a fixed price, or one "Option i" per portion in list order.
func PriceOptions(entry models.MenuEntry) []models.PriceOption {
	if !entry.HasPortions() {
		return []models.PriceOption{{Label: "Option 1", Index: 0, UnitPrice: entry.FixedPrice}}
	}
	opts := make([]models.PriceOption, 0, len(entry.Portions))
	for i, p := range entry.Portions {
		opts = append(opts, models.PriceOption{
			Label:     fmt.Sprintf("Option %d", i+1),
			Index:     i + 1,
			UnitPrice: p,
		})
	}
	return opts
}

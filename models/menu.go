package models

// MenuEntry is one sellable item. Exactly one of FixedPrice or Portions is
// set: FixedPrice > 0 for single-price items, otherwise Portions holds the
// per-portion prices in menu order. Prices are whole rupees.
type MenuEntry struct {
	Name       string
	FixedPrice int64
	Portions   []int64
}

// HasPortions reports whether the entry is priced per portion.
func (e MenuEntry) HasPortions() bool { return len(e.Portions) > 0 }

// PriceOption is one selectable price for a menu entry.
type PriceOption struct {
	Label     string // "Option 1", "Option 2", ...
	Index     int    // 1-based portion index, 0 for fixed-price entries
	UnitPrice int64
}

// Menu is the full catalog, in display order. Loaded once; never mutated.
var Menu = []MenuEntry{
	{Name: "Fried chicken wings (3pc/5pc)", Portions: []int64{80, 130}},
	{Name: "Fried chicken lollipop (2pc/5pc)", Portions: []int64{100, 180}},
	{Name: "Fried chicken strips (3pc/6pc)", Portions: []int64{90, 160}},
	{Name: "Crispy chicken popcorn (medium/large)", Portions: []int64{70, 120}},
	{Name: "Jumbo wings (2pc/4pc)", Portions: []int64{120, 200}},
	{Name: "Mini chicken crisper", FixedPrice: 79},
	{Name: "Classic zinger burger", FixedPrice: 110},
	{Name: "Chicken cheese burger", FixedPrice: 130},
	{Name: "Mexican chicken burger", FixedPrice: 130},
	{Name: "BBQ chicken burger", FixedPrice: 150},
	{Name: "French Fries", FixedPrice: 70},
	{Name: "Peri Peri Fries", FixedPrice: 80},
	{Name: "Fried Mushroom", FixedPrice: 100},
	{Name: "Fresh Garden Sandwich", FixedPrice: 70},
	{Name: "Veg Cheese Sandwich", FixedPrice: 70},
	{Name: "Fried Mushroom Sandwich", FixedPrice: 110},
	{Name: "Creamy Mushroom Sandwich", FixedPrice: 140},
	{Name: "Classic Chicken Sandwich", FixedPrice: 100},
	{Name: "Chicken Cheese Sandwich", FixedPrice: 110},
	{Name: "Hot Garlic Chicken Sandwich", FixedPrice: 130},
	{Name: "Mint Lime Mojito", FixedPrice: 59},
	{Name: "Virgin Lychee Mojito", FixedPrice: 79},
	{Name: "Green Apple Mojito", FixedPrice: 79},
	{Name: "Frozen Strawberry Mojito", FixedPrice: 79},
	{Name: "Blue Sea Mojito", FixedPrice: 99},
	{Name: "Pina Colada", FixedPrice: 99},
	{Name: "Bubble Gum Mojito", FixedPrice: 99},
	{Name: "Hot garlic wings (4pc)", FixedPrice: 120},
	{Name: "Nashville hot chicken strips (4pc)", FixedPrice: 140},
	{Name: "Creamy Mushroom", FixedPrice: 140},
	{Name: "Mac & Cheese", FixedPrice: 99},
	{Name: "Buffalo Wings", FixedPrice: 140},
	{Name: "Mac & Cheese with Chicken & Fries", FixedPrice: 179},
	{Name: "Fish & Chips with Spicy Dip", FixedPrice: 179},
	{Name: "Lays with Fiery Chicken", FixedPrice: 179},
	{Name: "6 pc hot and crispy bucket chicken", FixedPrice: 179},
	{Name: "12 pc hot and crispy bucket chicken", FixedPrice: 299},
	{Name: "The Hot Chick Feast", FixedPrice: 229},
	{Name: "Hot Chick Dinner Platter", FixedPrice: 299},
	{Name: "Spicy Main Chick Burger", FixedPrice: 150},
	{Name: "Cheesy Side Chick Burger", FixedPrice: 150},
	{Name: "Sizzlin' Hot Chick Burger", FixedPrice: 150},
	{Name: "The Flirtini Chick (Mojito)", FixedPrice: 99},
	{Name: "Thick Thighs", FixedPrice: 200},
	{Name: "The Chick Stack", FixedPrice: 140},
	{Name: "Chicks 'N' Fries", FixedPrice: 100},
	{Name: "Garlic Tease", FixedPrice: 150},
}

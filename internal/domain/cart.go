package domain

import "sort"

// CartLine is a quantity of one catalog item held in a cart. Quantity is always positive.
type CartLine struct {
	Item     *Item
	Quantity int
}

func (l CartLine) Subtotal() float64 {
	return l.Item.UnitPrice() * float64(l.Quantity)
}

// LineRecord is the persisted form of a cart line.
type LineRecord struct {
	ItemID   string `json:"tovar_id" bson:"tovar_id"`
	Quantity int    `json:"kolichestvo" bson:"kolichestvo"`
}

// Cart maps item id to cart line.
type Cart struct {
	lines map[string]*CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// AddLine adds quantity units of item, merging with an existing line.
// The combined quantity may not exceed the item's current stock.
func (c *Cart) AddLine(item *Item, quantity int) error {
	if quantity <= 0 {
		return newError(KindInvalidData, "cannot add zero or negative quantity")
	}
	existing := 0
	line, ok := c.lines[item.ID()]
	if ok {
		existing = line.Quantity
	}
	if existing+quantity > item.Stock() {
		return InsufficientQuantity("not enough %q: available %d, already in cart %d", item.Name(), item.Stock(), existing)
	}
	if ok {
		line.Quantity += quantity
		return nil
	}
	c.lines[item.ID()] = &CartLine{Item: item, Quantity: quantity}
	return nil
}

func (c *Cart) RemoveLine(itemID string) error {
	if _, ok := c.lines[itemID]; !ok {
		return newError(KindItemNotFound, "item with id %s not found in cart", itemID)
	}
	delete(c.lines, itemID)
	return nil
}

// Line returns a copy of the line for itemID.
func (c *Cart) Line(itemID string) (CartLine, bool) {
	line, ok := c.lines[itemID]
	if !ok {
		return CartLine{}, false
	}
	return *line, true
}

// Lines returns copies of all lines ordered by item id.
func (c *Cart) Lines() []CartLine {
	ids := make([]string, 0, len(c.lines))
	for id := range c.lines {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]CartLine, 0, len(ids))
	for _, id := range ids {
		result = append(result, *c.lines[id])
	}
	return result
}

func (c *Cart) Len() int      { return len(c.lines) }
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Total is evaluated against current item prices.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

func (c *Cart) ToList() []LineRecord {
	lines := c.Lines()
	records := make([]LineRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, LineRecord{ItemID: line.Item.ID(), Quantity: line.Quantity})
	}
	return records
}

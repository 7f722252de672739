package domain

import "math"

// Item is a catalog entry. Stock only changes when Store.Checkout commits an order.
type Item struct {
	id        string
	name      string
	unitPrice float64
	stock     int
}

func NewItem(id, name string, unitPrice float64, stock int) (*Item, error) {
	if err := validatePrice(unitPrice); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, newError(KindInvalidData, "stock cannot be negative")
	}
	return &Item{
		id:        id,
		name:      name,
		unitPrice: unitPrice,
		stock:     stock,
	}, nil
}

func (i *Item) ID() string         { return i.id }
func (i *Item) Name() string       { return i.name }
func (i *Item) UnitPrice() float64 { return i.unitPrice }
func (i *Item) Stock() int         { return i.stock }

// SetUnitPrice changes the catalog price. Placed orders keep the price they were sold at.
func (i *Item) SetUnitPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return newError(KindInvalidData, "price must be a finite number")
	}
	if price < 0 {
		return newError(KindInvalidData, "price cannot be negative")
	}
	return nil
}

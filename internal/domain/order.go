package domain

import (
	"fmt"
	"strings"
)

type OrderStatus string

const OrderStatusNew OrderStatus = "New"

func (s OrderStatus) String() string {
	return string(s)
}

// Currency is the label used when rendering money.
const Currency = "KZT"

// OrderLine holds the unit price copied at sale time.
type OrderLine struct {
	Item            *Item
	Quantity        int
	UnitPriceAtSale float64
}

func (l OrderLine) Subtotal() float64 {
	return l.UnitPriceAtSale * float64(l.Quantity)
}

type Order struct {
	ID       string
	Customer *Customer
	Lines    []OrderLine
	Status   OrderStatus
	total    float64
}

// NewOrder computes the total once; it is not recomputed afterwards.
func NewOrder(id string, customer *Customer, lines []OrderLine) *Order {
	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	return &Order{
		ID:       id,
		Customer: customer,
		Lines:    lines,
		Status:   OrderStatusNew,
		total:    total,
	}
}

func (o *Order) Total() float64 { return o.total }

// DetailField is one labeled row of the order view.
type DetailField struct {
	Label string
	Value string
}

func (o *Order) Details() []DetailField {
	items := make([]string, 0, len(o.Lines))
	for _, line := range o.Lines {
		items = append(items, fmt.Sprintf("%s (x%d)", line.Item.Name(), line.Quantity))
	}
	return []DetailField{
		{Label: "Order #", Value: o.ID},
		{Label: "Customer", Value: o.Customer.Name},
		{Label: "Status", Value: o.Status.String()},
		{Label: "Items", Value: strings.Join(items, ", ")},
		{Label: "Total", Value: FormatMoney(o.total)},
	}
}

func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f %s", amount, Currency)
}

package domain

import (
	"sort"
	"strconv"
	"sync"
)

// Store owns the catalog and the order ledger. Item stock and customer carts
// are only replaced or decremented from inside Checkout.
type Store struct {
	mu     sync.RWMutex
	items  map[string]*Item  // itemID -> item
	orders map[string]*Order // orderID -> order
}

func NewStore() *Store {
	return &Store{
		items:  make(map[string]*Item),
		orders: make(map[string]*Order),
	}
}

// AddItem inserts the item, replacing any entry with the same id.
func (s *Store) AddItem(item *Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.ID()] = item
}

func (s *Store) Item(id string) (*Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// Items returns the catalog ordered by item id.
func (s *Store) Items() []*Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Item, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool {
		return lessID(result[i].ID(), result[j].ID())
	})
	return result
}

// CheckStock reports whether the item exists and has at least quantity units.
func (s *Store) CheckStock(itemID string, quantity int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.checkStock(itemID, quantity)
}

func (s *Store) checkStock(itemID string, quantity int) bool {
	item, ok := s.items[itemID]
	if !ok {
		return false
	}
	return item.stock >= quantity
}

// Checkout turns the customer's cart into an order. Either every line is
// purchased or nothing changes.
func (s *Store) Checkout(customer *Customer) (*Order, error) {
	cart := customer.Cart()
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass: validate every line against current stock
	cartLines := cart.Lines()
	lines := make([]OrderLine, 0, len(cartLines))
	for _, cl := range cartLines {
		if !s.checkStock(cl.Item.ID(), cl.Quantity) {
			return nil, InsufficientQuantity("not enough stock for %q", cl.Item.Name())
		}
		item := s.items[cl.Item.ID()]
		lines = append(lines, OrderLine{
			Item:            item,
			Quantity:        cl.Quantity,
			UnitPriceAtSale: item.UnitPrice(),
		})
	}

	// Second pass: record the order and take the stock
	id := strconv.Itoa(len(s.orders) + 1)
	order := NewOrder(id, customer, lines)
	s.orders[id] = order

	for _, line := range lines {
		line.Item.stock -= line.Quantity
	}

	customer.resetCart()
	return order, nil
}

func (s *Store) Order(id string) (*Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	return order, ok
}

// Orders returns the ledger in creation order.
func (s *Store) Orders() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Order, 0, len(s.orders))
	for _, order := range s.orders {
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool {
		return lessID(result[i].ID, result[j].ID)
	})
	return result
}

// lessID orders numeric ids numerically and everything else lexically.
func lessID(a, b string) bool {
	ai, errA := strconv.Atoi(a)
	bi, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return ai < bi
	}
	return a < b
}

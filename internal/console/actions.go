package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

func (c *Console) listItems() {
	c.println("\n--- Shop items ---")
	c.printf("%-5s %-20s %-12s %-10s\n", "ID", "Name", "Price", "Stock")
	c.println(strings.Repeat("-", 50))
	for _, item := range c.shop.Items() {
		c.printf("%-5s %-20s %-12.2f %-10d\n", item.ID(), item.Name(), item.UnitPrice(), item.Stock())
	}
	c.println(strings.Repeat("-", 50))
}

func (c *Console) addToCart(s *Session) error {
	line, ok := c.prompt("Enter item ID: ")
	if !ok {
		return nil
	}
	item, found := c.shop.Item(strings.TrimSpace(line))
	if !found {
		c.println("Item with this ID not found.")
		return nil
	}

	qtyLine, ok := c.prompt("Enter quantity: ")
	if !ok {
		return nil
	}
	qty, valid := parseQuantity(qtyLine)
	if !valid {
		c.println("Error: enter a number!")
		return nil
	}

	if err := s.Customer.Cart().AddLine(item, qty); err != nil {
		return err
	}
	c.logger.Debug("item added to cart", zap.String("item_id", item.ID()), zap.Int("quantity", qty))
	c.printf("Added: %s x%d\n", item.Name(), qty)
	return nil
}

// parseQuantity accepts unsigned decimal numbers only.
func parseQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *Console) viewCart(s *Session) {
	cart := s.Customer.Cart()
	if cart.IsEmpty() {
		c.println("Cart is empty.")
		return
	}
	c.println("\n--- Your cart ---")
	for _, line := range cart.Lines() {
		c.printf("[ID: %s] %s: %d pcs = %.2f\n", line.Item.ID(), line.Item.Name(), line.Quantity, line.Subtotal())
	}
	c.printf("TOTAL: %.2f\n", cart.Total())
}

func (c *Console) removeFromCart(s *Session) error {
	line, ok := c.prompt("Enter item ID to remove: ")
	if !ok {
		return nil
	}
	id := strings.TrimSpace(line)
	if err := s.Customer.Cart().RemoveLine(id); err != nil {
		return err
	}
	c.printf("Item with ID %s removed from cart.\n", id)
	return nil
}

func (c *Console) checkout(ctx context.Context, s *Session) error {
	order, err := c.shop.Checkout(s.Customer)
	if err != nil {
		return err
	}
	c.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("customer_id", s.Customer.ID),
		zap.Float64("total", order.Total()))

	c.println("\n!!! ORDER PLACED SUCCESSFULLY !!!")
	for _, field := range order.Details() {
		c.printf("%s: %s\n", field.Label, field.Value)
	}

	// Sinks are best effort; the order already exists in the ledger.
	if c.sink != nil {
		if errSink := c.sink.Record(ctx, order); errSink != nil {
			c.logger.Error("order sink failed", zap.String("order_id", order.ID), zap.Error(errSink))
		}
	}

	return c.clients.ClearCart(ctx, s.Name)
}

func (c *Console) showHistory(ctx context.Context, s *Session) error {
	orders, err := c.history.ListByCustomer(ctx, s.Customer.ID)
	if err != nil {
		return fmt.Errorf("failed to load order history: %w", err)
	}
	if len(orders) == 0 {
		c.println("No archived orders yet.")
		return nil
	}
	c.println("\n--- Your orders ---")
	for _, order := range orders {
		names := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			names = append(names, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
		}
		c.printf("Order #%s [%s] %.2f %s: %s\n",
			order.OrderNumber, order.Status, order.TotalAmount, order.Currency, strings.Join(names, ", "))
	}
	return nil
}

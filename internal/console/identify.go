package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/Halzat4/Online-shop/internal/repository"
	"go.uber.org/zap"
)

var (
	yesAnswers = map[string]bool{"yes": true, "y": true, "да": true}
	noAnswers  = map[string]bool{"no": true, "n": true, "нет": true}
)

// Identify asks for the customer's name and builds their session, restoring a
// saved cart for returning clients.
func (c *Console) Identify(ctx context.Context) (*Session, error) {
	name, err := c.askName()
	if err != nil {
		return nil, err
	}

	rec, err := c.clients.Lookup(ctx, name)
	if errors.Is(err, repository.ErrClientNotFound) {
		return c.registerNew(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}

	c.printf("Found existing client: %s, phone: %s\n", name, rec.Contact)
	useStored, err := c.confirm("Use this data? (yes/no): ")
	if err != nil {
		return nil, err
	}

	if useStored {
		customer, errCustomer := domain.NewCustomer(rec.ID, name, rec.Contact)
		if errCustomer == nil {
			c.restoreCart(customer, rec.Cart)
			return &Session{Name: name, Customer: customer}, nil
		}
		c.println("The saved phone number is invalid, enter a new one.")
	}

	customer, err := c.askContact(rec.ID, name)
	if err != nil {
		return nil, err
	}
	if err := c.clients.UpdateContact(ctx, name, customer.Contact()); err != nil {
		return nil, err
	}
	return &Session{Name: name, Customer: customer}, nil
}

func (c *Console) askName() (string, error) {
	for {
		line, ok := c.prompt("Enter your name: ")
		if !ok {
			return "", io.EOF
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		c.println("Name cannot be empty.")
	}
}

func (c *Console) confirm(label string) (bool, error) {
	for {
		line, ok := c.prompt(label)
		if !ok {
			return false, io.EOF
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		switch {
		case yesAnswers[answer]:
			return true, nil
		case noAnswers[answer]:
			return false, nil
		}
		c.println("Please answer 'yes' or 'no'.")
	}
}

// askContact prompts until the contact passes customer validation.
func (c *Console) askContact(id, name string) (*domain.Customer, error) {
	for {
		line, ok := c.prompt("Enter your phone number: ")
		if !ok {
			return nil, io.EOF
		}
		customer, err := domain.NewCustomer(id, name, strings.TrimSpace(line))
		if err == nil {
			return customer, nil
		}
		c.printf("[ERROR]: %v\n", err)
	}
}

func (c *Console) registerNew(ctx context.Context, name string) (*Session, error) {
	for {
		line, ok := c.prompt("Enter your phone number: ")
		if !ok {
			return nil, io.EOF
		}
		rec, err := c.clients.Register(ctx, name, strings.TrimSpace(line))
		if domain.KindOf(err) != 0 {
			c.printf("[ERROR]: %v\n", err)
			continue
		}
		if err != nil {
			return nil, err
		}

		customer, err := domain.NewCustomer(rec.ID, name, rec.Contact)
		if err != nil {
			return nil, err
		}
		return &Session{Name: name, Customer: customer}, nil
	}
}

func (c *Console) restoreCart(customer *domain.Customer, lines []domain.LineRecord) {
	if len(lines) == 0 {
		return
	}
	c.println("Restoring cart...")
	for _, w := range c.shop.RestoreCart(customer, lines) {
		c.logger.Warn("cart line skipped", zap.String("item_id", w.ItemID), zap.Int("quantity", w.Quantity))
		c.printf("Warning: %s\n", w)
	}
}

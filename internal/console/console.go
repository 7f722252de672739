package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Halzat4/Online-shop/internal/archive"
	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/Halzat4/Online-shop/internal/repository"
	"go.uber.org/zap"
)

// ClientDirectory is the persistence the console needs for client records.
type ClientDirectory interface {
	Lookup(ctx context.Context, name string) (repository.ClientRecord, error)
	Register(ctx context.Context, name, contact string) (repository.ClientRecord, error)
	UpdateContact(ctx context.Context, name, contact string) error
	SaveCart(ctx context.Context, name string, lines []domain.LineRecord) error
	ClearCart(ctx context.Context, name string) error
}

// OrderHistory lists a customer's archived orders.
type OrderHistory interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*archive.PlacedOrder, error)
}

// Session is the acting customer. It is passed explicitly to every action.
type Session struct {
	Name     string
	Customer *domain.Customer
}

type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	shop    *domain.Store
	clients ClientDirectory
	sink    OrderSink
	history OrderHistory
	logger  *zap.Logger
}

// New builds a console. sink may be nil when no order backend is configured.
func New(in io.Reader, out io.Writer, shop *domain.Store, clients ClientDirectory, sink OrderSink, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		shop:    shop,
		clients: clients,
		sink:    sink,
		logger:  logger,
	}
}

// WithHistory enables the order history menu entry.
func (c *Console) WithHistory(h OrderHistory) *Console {
	c.history = h
	return c
}

// Run identifies the customer and serves the menu until they leave or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.println("Welcome to the console shop!")

	session, err := c.Identify(ctx)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.printMenu()
		choice, ok := c.prompt("Your choice: ")
		if !ok {
			return nil
		}

		done, err := c.dispatch(ctx, session, strings.TrimSpace(choice))
		if err != nil {
			c.reportError(err)
		}
		if done {
			return nil
		}
	}
}

func (c *Console) printMenu() {
	c.println("\nChoose an action:")
	c.println("1. Show items")
	c.println("2. Add item to cart")
	c.println("3. View cart")
	c.println("4. Remove item from cart")
	c.println("5. Place order")
	c.println("6. Save cart and exit")
	c.println("7. Exit without saving")
	if c.history != nil {
		c.println("8. Show order history")
	}
}

func (c *Console) dispatch(ctx context.Context, s *Session, choice string) (bool, error) {
	switch choice {
	case "1":
		c.listItems()
	case "2":
		return false, c.addToCart(s)
	case "3":
		c.viewCart(s)
	case "4":
		return false, c.removeFromCart(s)
	case "5":
		return false, c.checkout(ctx, s)
	case "6":
		if err := c.clients.SaveCart(ctx, s.Name, s.Customer.Cart().ToList()); err != nil {
			return false, err
		}
		c.println("Cart saved. Goodbye.")
		return true, nil
	case "7":
		c.println("Goodbye.")
		return true, nil
	case "8":
		if c.history != nil {
			return false, c.showHistory(ctx, s)
		}
		c.println("Invalid choice, try again.")
	default:
		c.println("Invalid choice, try again.")
	}
	return false, nil
}

// reportError keeps the session running after any failure.
func (c *Console) reportError(err error) {
	if domain.KindOf(err) != 0 {
		c.printf("\n[SHOP ERROR]: %v\n", err)
		return
	}
	c.logger.Error("action failed", zap.Error(err))
	c.printf("\n[ERROR]: %v\n", err)
}

// prompt reads one line. ok is false once input is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

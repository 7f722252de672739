package archive

import (
	"time"

	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/google/uuid"
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type OrderItem struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PlacedOrder is the archived copy of an order.
type PlacedOrder struct {
	ID           uuid.UUID
	OrderNumber  string
	CustomerID   string
	CustomerName string
	Status       domain.OrderStatus
	TotalAmount  float64
	Currency     string
	Items        []OrderItem
	CreatedAt    time.Time
}

func FromOrder(order *domain.Order) *PlacedOrder {
	items := make([]OrderItem, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, OrderItem{
			ItemID:    line.Item.ID(),
			Name:      line.Item.Name(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPriceAtSale,
		})
	}
	return &PlacedOrder{
		ID:           uuid.New(),
		OrderNumber:  order.ID,
		CustomerID:   order.Customer.ID,
		CustomerName: order.Customer.Name,
		Status:       order.Status,
		TotalAmount:  order.Total(),
		Currency:     domain.Currency,
		Items:        items,
	}
}

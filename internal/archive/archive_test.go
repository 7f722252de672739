package archive

import (
	"testing"

	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *domain.Order {
	t.Helper()
	customer, err := domain.NewCustomer("7", "Aigerim", "77001112233")
	require.NoError(t, err)
	laptop, err := domain.NewItem("1", "Laptop", 1000, 10)
	require.NoError(t, err)
	mouse, err := domain.NewItem("2", "Mouse", 50, 10)
	require.NoError(t, err)

	return domain.NewOrder("3", customer, []domain.OrderLine{
		{Item: laptop, Quantity: 2, UnitPriceAtSale: 1000},
		{Item: mouse, Quantity: 1, UnitPriceAtSale: 50},
	})
}

func TestFromOrder(t *testing.T) {
	placed := FromOrder(newTestOrder(t))

	assert.NotEqual(t, uuid.Nil, placed.ID)
	assert.Equal(t, "3", placed.OrderNumber)
	assert.Equal(t, "7", placed.CustomerID)
	assert.Equal(t, "Aigerim", placed.CustomerName)
	assert.Equal(t, domain.OrderStatusNew, placed.Status)
	assert.Equal(t, 2050.0, placed.TotalAmount)
	assert.Equal(t, domain.Currency, placed.Currency)
	assert.Equal(t, []OrderItem{
		{ItemID: "1", Name: "Laptop", Quantity: 2, UnitPrice: 1000},
		{ItemID: "2", Name: "Mouse", Quantity: 1, UnitPrice: 50},
	}, placed.Items)
}

func TestFromOrder_UniqueIDs(t *testing.T) {
	order := newTestOrder(t)
	assert.NotEqual(t, FromOrder(order).ID, FromOrder(order).ID)
}

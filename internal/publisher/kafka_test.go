package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockWriter captures messages instead of sending them to a broker
type MockWriter struct {
	Messages []kafka.Message
	Err      error
	Closed   bool
}

func (m *MockWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, msgs...)
	return nil
}

func (m *MockWriter) Close() error {
	m.Closed = true
	return nil
}

func newTestOrder(t *testing.T) *domain.Order {
	t.Helper()
	customer, err := domain.NewCustomer("7", "Aigerim", "77001112233")
	require.NoError(t, err)
	laptop, err := domain.NewItem("1", "Laptop", 1000, 10)
	require.NoError(t, err)

	return domain.NewOrder("5", customer, []domain.OrderLine{
		{Item: laptop, Quantity: 4, UnitPriceAtSale: 1000},
	})
}

func TestRecord_PublishesEvent(t *testing.T) {
	writer := &MockWriter{}
	p := newKafkaPublisher(writer, nil)

	require.NoError(t, p.Record(context.Background(), newTestOrder(t)))
	require.Len(t, writer.Messages, 1)

	msg := writer.Messages[0]
	assert.Equal(t, "5", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, EventOrderPlaced, string(msg.Headers[0].Value))

	var event OrderPlacedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "5", event.OrderID)
	assert.Equal(t, "7", event.CustomerID)
	assert.Equal(t, "New", event.Status)
	assert.Equal(t, 4000.0, event.TotalAmount)
	require.Len(t, event.Items, 1)
	assert.Equal(t, "Laptop", event.Items[0].Name)
	assert.Equal(t, 4, event.Items[0].Quantity)
}

func TestRecord_WriterError(t *testing.T) {
	writer := &MockWriter{Err: errors.New("broker unavailable")}
	p := newKafkaPublisher(writer, nil)

	err := p.Record(context.Background(), newTestOrder(t))
	assert.ErrorContains(t, err, "failed to publish order 5")
}

func TestClose(t *testing.T) {
	writer := &MockWriter{}
	p := newKafkaPublisher(writer, nil)

	require.NoError(t, p.Close())
	assert.True(t, writer.Closed)
}

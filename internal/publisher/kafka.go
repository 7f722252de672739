package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Halzat4/Online-shop/internal/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	Topic            = "shop-orders"
	EventOrderPlaced = "order_placed"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type eventItem struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderPlacedEvent is the message payload published for every order.
type OrderPlacedEvent struct {
	EventID      string      `json:"event_id"`
	OrderID      string      `json:"order_id"`
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Status       string      `json:"status"`
	Items        []eventItem `json:"items"`
	TotalAmount  float64     `json:"total_amount"`
	Currency     string      `json:"currency"`
	PlacedAt     time.Time   `json:"placed_at"`
}

type KafkaPublisher struct {
	timeout time.Duration
	writer  messageWriter
	logger  *zap.Logger
}

func NewKafkaPublisher(logger *zap.Logger, brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, logger)
}

func newKafkaPublisher(w messageWriter, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{timeout: 5 * time.Second, writer: w, logger: logger}
}

// Record publishes an order_placed event keyed by order id.
func (p *KafkaPublisher) Record(ctx context.Context, order *domain.Order) error {
	event := newOrderPlacedEvent(order, time.Now().UTC())
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventOrderPlaced)},
		},
	}

	writeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
		return fmt.Errorf("failed to publish order %s: %w", order.ID, err)
	}

	p.logger.Info("order event published",
		zap.String("order_id", order.ID),
		zap.String("event_id", event.EventID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func newOrderPlacedEvent(order *domain.Order, at time.Time) OrderPlacedEvent {
	items := make([]eventItem, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, eventItem{
			ItemID:    line.Item.ID(),
			Name:      line.Item.Name(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPriceAtSale,
		})
	}
	return OrderPlacedEvent{
		EventID:      uuid.New().String(),
		OrderID:      order.ID,
		CustomerID:   order.Customer.ID,
		CustomerName: order.Customer.Name,
		Status:       order.Status.String(),
		Items:        items,
		TotalAmount:  order.Total(),
		Currency:     domain.Currency,
		PlacedAt:     at,
	}
}

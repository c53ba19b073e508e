package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Типы агрегатов и событий, которые пишутся в outbox.
const (
	AggregateTypeOrder   = "order"
	EventTypeOrderPlaced = "order.placed"
)

// OrderPlacedEvent — полезная нагрузка события о размещённом заказе.
type OrderPlacedEvent struct {
	OrderID    string            `json:"order_id"`
	CustomerID string            `json:"customer_id"`
	Lines      []OrderPlacedLine `json:"lines"`
	Total      decimal.Decimal   `json:"total"`
	PlacedAt   time.Time         `json:"placed_at"`
}

// OrderPlacedLine — позиция заказа в событии.
type OrderPlacedLine struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// NewOrderPlacedMessage собирает outbox-сообщение для заказа.
func NewOrderPlacedMessage(order Order) (OutboxMessage, error) {
	event := OrderPlacedEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Lines:      make([]OrderPlacedLine, 0, len(order.Products)),
		Total:      order.Total,
		PlacedAt:   order.CreatedAt,
	}
	for _, line := range order.Products {
		event.Lines = append(event.Lines, OrderPlacedLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessage{}, err
	}
	return OutboxMessage{
		AggregateType: AggregateTypeOrder,
		AggregateID:   order.ID,
		EventType:     EventTypeOrderPlaced,
		Payload:       payload,
	}, nil
}

// EventEnvelope — конверт, в котором outbox-сообщение уходит в брокер.
type EventEnvelope struct {
	ID            string          `json:"id"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     string          `json:"event_type"`
	Payload       json.RawMessage `json:"payload"`
	PublishedAt   time.Time       `json:"published_at"`
}

// NewEventEnvelope оборачивает сообщение outbox для публикации.
func NewEventEnvelope(msg OutboxMessage, publishedAt time.Time) EventEnvelope {
	return EventEnvelope{
		ID:            msg.ID,
		AggregateType: msg.AggregateType,
		AggregateID:   msg.AggregateID,
		EventType:     msg.EventType,
		Payload:       json.RawMessage(msg.Payload),
		PublishedAt:   publishedAt.UTC(),
	}
}

// PartitionKey возвращает ключ партиционирования: события одного агрегата
// должны попадать в одну партицию.
func (m OutboxMessage) PartitionKey() string {
	if m.AggregateID != "" {
		return m.AggregateID
	}
	return m.ID
}

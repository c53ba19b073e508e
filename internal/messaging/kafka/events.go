package kafka

import (
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Topics витрины.
const (
	TopicOrderEvents     = "storefront.order.events"
	TopicDeadLetterQueue = "storefront.dlq"
)

// Kafka headers для retry и DLQ.
const (
	HeaderEventType     = "x-event-type"
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
)

// OrderPlaced — разобранное событие размещения вместе с конвертом.
type OrderPlaced struct {
	Envelope domain.EventEnvelope
	Event    domain.OrderPlacedEvent
}

// ParseEnvelope разбирает конверт outbox-сообщения.
func ParseEnvelope(message *sarama.ConsumerMessage) (domain.EventEnvelope, error) {
	var envelope domain.EventEnvelope
	if err := json.Unmarshal(message.Value, &envelope); err != nil {
		return domain.EventEnvelope{}, fmt.Errorf("failed to unmarshal event envelope: %w", err)
	}
	return envelope, nil
}

// ParseOrderPlaced разбирает событие order.placed; другие типы событий отклоняются.
func ParseOrderPlaced(message *sarama.ConsumerMessage) (OrderPlaced, error) {
	envelope, err := ParseEnvelope(message)
	if err != nil {
		return OrderPlaced{}, err
	}
	if envelope.EventType != domain.EventTypeOrderPlaced {
		return OrderPlaced{}, fmt.Errorf("unexpected event type %q", envelope.EventType)
	}

	var event domain.OrderPlacedEvent
	if err := json.Unmarshal(envelope.Payload, &event); err != nil {
		return OrderPlaced{}, fmt.Errorf("failed to unmarshal order placed payload: %w", err)
	}
	return OrderPlaced{Envelope: envelope, Event: event}, nil
}

func headerValue(message *sarama.ConsumerMessage, key string) (string, bool) {
	for _, header := range message.Headers {
		if header != nil && string(header.Key) == key {
			return string(header.Value), true
		}
	}
	return "", false
}

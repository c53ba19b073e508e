package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const headerAggregateID = "aggregate_id"

// Publisher публикует в канал; реализуется *amqp.Channel.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// OutboxPublisher отправляет outbox-сообщения в exchange с routing key,
// равным типу события.
type OutboxPublisher struct {
	ch       Publisher
	exchange string
	logger   *log.Entry
	now      func() time.Time
}

// NewOutboxPublisher создаёт паблишер; пустой exchange означает ExchangeEvents.
func NewOutboxPublisher(ch Publisher, exchange string, logger *log.Entry) *OutboxPublisher {
	if exchange == "" {
		exchange = ExchangeEvents
	}
	if logger == nil {
		logger = log.WithField("component", "rabbitmq-publisher")
	}
	return &OutboxPublisher{ch: ch, exchange: exchange, logger: logger, now: time.Now}
}

// Publish отправляет persistent-сообщение в конверте.
func (p *OutboxPublisher) Publish(ctx context.Context, event domain.OutboxMessage) error {
	if p == nil || p.ch == nil {
		return fmt.Errorf("rabbitmq outbox publisher is not initialized")
	}

	now := p.now().UTC()
	body, err := json.Marshal(domain.NewEventEnvelope(event, now))
	if err != nil {
		return fmt.Errorf("marshal outbox envelope: %w", err)
	}

	routingKey := event.EventType
	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		MessageId:    event.ID,
		Type:         event.EventType,
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Headers:      amqp.Table{headerAggregateID: event.PartitionKey()},
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish to rabbitmq exchange %s: %w", p.exchange, err)
	}

	p.logger.WithFields(log.Fields{
		"outbox_id":   event.ID,
		"event_type":  event.EventType,
		"exchange":    p.exchange,
		"routing_key": routingKey,
	}).Debug("message published to rabbitmq")
	return nil
}

var _ domain.OutboxPublisher = (*OutboxPublisher)(nil)

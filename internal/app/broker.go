package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/rabbitmq"
)

// eventBus — публикаторы outbox для выбранного брокера.
type eventBus struct {
	publisher domain.OutboxPublisher
	dlq       domain.OutboxPublisher
	closeFn   func() error
}

// initEventBus подключает брокер. Для BrokerNone возвращает пустую шину:
// события копятся в outbox до появления брокера.
func initEventBus(ctx context.Context, cfg Config, logger *log.Entry) (eventBus, error) {
	switch cfg.Broker {
	case BrokerNone, "":
		logger.Info("event broker is disabled, outbox records stay pending")
		return eventBus{}, nil

	case BrokerKafka:
		producer, err := initKafkaProducer(cfg.KafkaBrokerList(), logger)
		if err != nil {
			return eventBus{}, err
		}
		return eventBus{
			publisher: kafka.NewOutboxPublisher(producer, kafka.TopicOrderEvents),
			dlq:       kafka.NewOutboxPublisher(producer, kafka.TopicDeadLetterQueue),
			closeFn:   producer.Close,
		}, nil

	case BrokerRabbitMQ:
		conn, err := rabbitmq.Dial(ctx, cfg.RabbitMQURL, logger.WithField("component", "rabbitmq"))
		if err != nil {
			return eventBus{}, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		publisherLogger := logger.WithField("component", "rabbitmq-publisher")
		logger.Info("rabbitmq publisher initialized")
		return eventBus{
			publisher: rabbitmq.NewOutboxPublisher(conn.Channel(), rabbitmq.ExchangeEvents, publisherLogger),
			dlq:       rabbitmq.NewOutboxPublisher(conn.Channel(), rabbitmq.ExchangeDeadLetter, publisherLogger),
			closeFn:   conn.Close,
		}, nil

	default:
		return eventBus{}, fmt.Errorf("unsupported broker %q", cfg.Broker)
	}
}

func initKafkaProducer(brokers []string, logger *log.Entry) (*kafka.Producer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are empty")
	}
	producer, err := kafka.NewProducer(brokers)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	logger.WithField("brokers", brokers).Info("kafka producer initialized")
	return producer, nil
}

func (b eventBus) close(logger *log.Entry) {
	if b.closeFn == nil {
		return
	}
	if err := b.closeFn(); err != nil {
		logger.WithError(err).Warn("failed to close event broker")
		return
	}
	logger.Info("event broker closed")
}

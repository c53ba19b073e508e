// Package rabbitmq публикует outbox-сообщения витрины в topic exchange RabbitMQ.
package rabbitmq

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

const (
	// ExchangeEvents — topic exchange для событий витрины.
	ExchangeEvents = "storefront.events"
	// ExchangeDeadLetter — exchange для сообщений, не доставленных после всех попыток.
	ExchangeDeadLetter = "storefront.dlq"
	exchangeKind       = "topic"

	defaultDialAttempts = 5
	defaultDialDelay    = 2 * time.Second
)

// Connection владеет соединением и каналом публикации.
type Connection struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Dial подключается к брокеру с повторами и объявляет exchanges витрины.
func Dial(ctx context.Context, url string, logger *log.Entry) (*Connection, error) {
	if logger == nil {
		logger = log.WithField("component", "rabbitmq")
	}

	var (
		conn *amqp.Connection
		err  error
	)
	for attempt := 1; attempt <= defaultDialAttempts; attempt++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		logger.WithError(err).WithField("attempt", attempt).Warn("failed to connect to rabbitmq")
		if attempt == defaultDialAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(defaultDialDelay):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}
	if err := DeclareExchanges(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	logger.Info("rabbitmq connection established")
	return &Connection{conn: conn, channel: ch}, nil
}

// ExchangeDeclarer объявляет exchange; реализуется *amqp.Channel.
type ExchangeDeclarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
}

// DeclareExchanges создаёт durable exchanges событий и DLQ.
func DeclareExchanges(ch ExchangeDeclarer) error {
	for _, name := range []string{ExchangeEvents, ExchangeDeadLetter} {
		if err := ch.ExchangeDeclare(name, exchangeKind, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare exchange %s: %w", name, err)
		}
	}
	return nil
}

// Channel возвращает канал для публикации.
func (c *Connection) Channel() *amqp.Channel {
	return c.channel
}

// Close закрывает канал и соединение.
func (c *Connection) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			firstErr = fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return firstErr
}

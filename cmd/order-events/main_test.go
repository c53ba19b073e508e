package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
)

func testPrinter(out *bytes.Buffer) *printer {
	logger := log.New()
	logger.SetLevel(log.WarnLevel)
	return &printer{out: out, logger: logger.WithField("component", "test")}
}

func envelopeMessage(t *testing.T, eventType string, payload any) *sarama.ConsumerMessage {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	value, err := json.Marshal(domain.NewEventEnvelope(domain.OutboxMessage{
		ID:            "evt-1",
		AggregateType: "order",
		AggregateID:   "order-1",
		EventType:     eventType,
		Payload:       raw,
	}, time.Now()))
	require.NoError(t, err)
	return &sarama.ConsumerMessage{Topic: kafka.TopicOrderEvents, Partition: 2, Offset: 41, Value: value}
}

func TestPrinter_OrderPlaced(t *testing.T) {
	var out bytes.Buffer
	p := testPrinter(&out)

	event := domain.OrderPlacedEvent{
		OrderID:    "order-1",
		CustomerID: "cust-1",
		Total:      decimal.RequireFromString("25.5"),
		Lines: []domain.OrderPlacedLine{
			{ProductID: "p1", Quantity: 2, Price: decimal.RequireFromString("10")},
			{ProductID: "p2", Quantity: 1, Price: decimal.RequireFromString("5.5")},
		},
	}
	require.NoError(t, p.handle(context.Background(), envelopeMessage(t, domain.EventTypeOrderPlaced, event)))

	var got placedLine
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, placedLine{
		EventID:    "evt-1",
		OrderID:    "order-1",
		CustomerID: "cust-1",
		Total:      "25.50",
		Lines:      2,
		Units:      3,
		Partition:  2,
		Offset:     41,
	}, got)
}

func TestPrinter_SkipsOtherEvents(t *testing.T) {
	var out bytes.Buffer
	p := testPrinter(&out)

	require.NoError(t, p.handle(context.Background(), envelopeMessage(t, "customer.created", map[string]string{"id": "c"})))
	assert.Empty(t, out.String())
}

func TestPrinter_RejectsMalformed(t *testing.T) {
	var out bytes.Buffer
	p := testPrinter(&out)

	err := p.handle(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")})
	require.Error(t, err)

	bad := envelopeMessage(t, domain.EventTypeOrderPlaced, "not an object")
	require.Error(t, p.handle(context.Background(), bad))
	assert.Empty(t, out.String())
}

func TestParseConfig(t *testing.T) {
	getenv := func(key string) string {
		if key == "STOREFRONT_KAFKA_BROKERS" {
			return "kafka-1:9092,kafka-2:9092"
		}
		return ""
	}

	cfg, err := parseConfig(nil, getenv)
	require.NoError(t, err)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.brokers)
	assert.Equal(t, defaultGroupID, cfg.groupID)
	assert.Equal(t, kafka.TopicOrderEvents, cfg.topic)
	assert.True(t, cfg.dlq)

	cfg, err = parseConfig([]string{"-brokers", "local:9092", "-dlq=false", "-max-retries", "5"}, getenv)
	require.NoError(t, err)
	assert.Equal(t, []string{"local:9092"}, cfg.brokers)
	assert.False(t, cfg.dlq)
	assert.Equal(t, 5, cfg.maxRetries)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no brokers", args: []string{"-brokers", " , "}},
		{name: "empty group", args: []string{"-brokers", "b", "-group", ""}},
		{name: "empty topic", args: []string{"-brokers", "b", "-topic", " "}},
		{name: "zero retries", args: []string{"-brokers", "b", "-max-retries", "0"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args, func(string) string { return "" })
			require.Error(t, err)
		})
	}
}

type fakeLifecycle struct {
	started  bool
	stopped  bool
	startErr error
}

func (f *fakeLifecycle) Start(context.Context) error {
	f.started = true
	return f.startErr
}

func (f *fakeLifecycle) Stop() error {
	f.stopped = true
	return nil
}

func TestConsume_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &fakeLifecycle{}
	require.NoError(t, consume(ctx, c, log.WithField("component", "test")))
	assert.True(t, c.started)
	assert.True(t, c.stopped)
}

func TestConsume_StartError(t *testing.T) {
	c := &fakeLifecycle{startErr: errors.New("boom")}
	require.EqualError(t, consume(context.Background(), c, log.WithField("component", "test")), "boom")
	assert.False(t, c.stopped)
}

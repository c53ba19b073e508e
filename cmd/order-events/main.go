package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
)

const defaultGroupID = "storefront-order-events"

type config struct {
	brokers    []string
	groupID    string
	topic      string
	maxRetries int
	dlq        bool
	logLevel   string
}

// placedLine — строка вывода для одного события order.placed.
type placedLine struct {
	EventID    string `json:"event_id"`
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id"`
	Total      string `json:"total"`
	Lines      int    `json:"lines"`
	Units      int64  `json:"units"`
	Partition  int32  `json:"partition"`
	Offset     int64  `json:"offset"`
}

// printer пишет разобранные события построчно в JSON.
type printer struct {
	mu     sync.Mutex
	out    io.Writer
	logger *log.Entry
}

func (p *printer) handle(_ context.Context, message *sarama.ConsumerMessage) error {
	envelope, err := kafka.ParseEnvelope(message)
	if err != nil {
		return err
	}
	if envelope.EventType != domain.EventTypeOrderPlaced {
		p.logger.WithField("event_type", envelope.EventType).Debug("skip event")
		return nil
	}

	placed, err := kafka.ParseOrderPlaced(message)
	if err != nil {
		return err
	}

	line := placedLine{
		EventID:    placed.Envelope.ID,
		OrderID:    placed.Event.OrderID,
		CustomerID: placed.Event.CustomerID,
		Total:      placed.Event.Total.StringFixed(2),
		Lines:      len(placed.Event.Lines),
		Partition:  message.Partition,
		Offset:     message.Offset,
	}
	for _, l := range placed.Event.Lines {
		line.Units += l.Quantity
	}

	data, err := json.Marshal(line)
	if err != nil {
		return fmt.Errorf("marshal output line: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fail("%v", err)
	}

	level, err := log.ParseLevel(cfg.logLevel)
	if err != nil {
		fail("invalid log level %q: %v", cfg.logLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		fail("order events consumer failed: %v", err)
	}
}

func parseConfig(args []string, getenv func(string) string) (config, error) {
	fs := flag.NewFlagSet("order-events", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		brokersRaw string
		cfg        config
	)
	fs.StringVar(&brokersRaw, "brokers", "", "Kafka brokers, comma-separated (fallback: STOREFRONT_KAFKA_BROKERS)")
	fs.StringVar(&cfg.groupID, "group", defaultGroupID, "consumer group id")
	fs.StringVar(&cfg.topic, "topic", kafka.TopicOrderEvents, "topic with order events")
	fs.IntVar(&cfg.maxRetries, "max-retries", 3, "handler attempts before the message goes to DLQ")
	fs.BoolVar(&cfg.dlq, "dlq", true, "send unprocessable messages to "+kafka.TopicDeadLetterQueue)
	fs.StringVar(&cfg.logLevel, "log-level", "info", "logrus level")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if strings.TrimSpace(brokersRaw) == "" {
		brokersRaw = getenv("STOREFRONT_KAFKA_BROKERS")
	}
	for _, broker := range strings.Split(brokersRaw, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.brokers = append(cfg.brokers, broker)
		}
	}

	switch {
	case len(cfg.brokers) == 0:
		return config{}, errors.New("kafka brokers are required (-brokers or STOREFRONT_KAFKA_BROKERS)")
	case strings.TrimSpace(cfg.groupID) == "":
		return config{}, errors.New("group is required")
	case strings.TrimSpace(cfg.topic) == "":
		return config{}, errors.New("topic is required")
	case cfg.maxRetries <= 0:
		return config{}, errors.New("max-retries must be > 0")
	}
	return cfg, nil
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	logger := log.WithField("component", "order-events")
	p := &printer{out: out, logger: logger}

	opts := []kafka.ConsumerOption{
		kafka.WithConsumerLogger(logger),
		kafka.WithMaxRetries(cfg.maxRetries),
	}
	if cfg.dlq {
		producer, err := kafka.NewProducer(cfg.brokers)
		if err != nil {
			return err
		}
		defer func() {
			if err := producer.Close(); err != nil {
				logger.WithError(err).Warn("failed to close dlq producer")
			}
		}()
		opts = append(opts, kafka.WithDLQ(producer, kafka.TopicDeadLetterQueue))
	}

	consumer, err := kafka.NewConsumer(cfg.brokers, cfg.groupID, []string{cfg.topic}, p.handle, opts...)
	if err != nil {
		return err
	}
	return consume(ctx, consumer, logger)
}

type lifecycle interface {
	Start(ctx context.Context) error
	Stop() error
}

func consume(ctx context.Context, consumer lifecycle, logger *log.Entry) error {
	if err := consumer.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	logger.Info("shutting down order events consumer")
	return consumer.Stop()
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

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
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/storefront/internal/service/outbox"
)

const (
	defaultReplayLimit = 100
	defaultIdleTimeout = 2 * time.Second
)

type config struct {
	brokers     []string
	sourceTopic string
	targetTopic string
	limit       int
	execute     bool
	fromNewest  bool
	idleTimeout time.Duration
}

// replayMessage — сообщение, которое будет заново отправлено в исходный topic.
type replayMessage struct {
	topic     string
	key       string
	value     []byte
	eventType string
}

type offsetClient interface {
	GetOffset(topic string, partition int32, time int64) (int64, error)
	Partitions(topic string) ([]int32, error)
}

type partitionConsumer interface {
	Messages() <-chan *sarama.ConsumerMessage
	Errors() <-chan *sarama.ConsumerError
	Close() error
}

type partitionSource interface {
	ConsumePartition(topic string, partition int32, offset int64) (partitionConsumer, error)
}

type sender interface {
	Send(ctx context.Context, topic, key string, value []byte, headers map[string]string) error
}

type saramaSource struct {
	consumer sarama.Consumer
}

func (s saramaSource) ConsumePartition(topic string, partition int32, offset int64) (partitionConsumer, error) {
	return s.consumer.ConsumePartition(topic, partition, offset)
}

type replayStats struct {
	processed int
	replayed  int
	skipped   int
}

func (s *replayStats) add(other replayStats) {
	s.processed += other.processed
	s.replayed += other.replayed
	s.skipped += other.skipped
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := parseConfig(os.Args[1:], os.Getenv)
	if err != nil {
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	closeAll, client, source, producer, err := connect(cfg)
	if err != nil {
		fail("%v", err)
	}
	defer closeAll()

	stats, err := replay(ctx, cfg, client, source, producer)
	if err != nil {
		fail("dlq replay failed: %v", err)
	}
	printSummary(os.Stdout, cfg, stats)
}

func parseConfig(args []string, getenv func(string) string) (config, error) {
	fs := flag.NewFlagSet("dlq-reprocess", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		brokersRaw string
		cfg        config
	)
	fs.StringVar(&brokersRaw, "brokers", "", "Kafka brokers, comma-separated (fallback: STOREFRONT_KAFKA_BROKERS)")
	fs.StringVar(&cfg.sourceTopic, "source-topic", kafka.TopicDeadLetterQueue, "DLQ topic to scan")
	fs.StringVar(&cfg.targetTopic, "target-topic", kafka.TopicOrderEvents, "topic for replayed outbox events")
	fs.IntVar(&cfg.limit, "limit", defaultReplayLimit, "max messages to scan")
	fs.BoolVar(&cfg.execute, "execute", false, "publish messages; without it only candidates are logged")
	fs.BoolVar(&cfg.fromNewest, "from-newest", false, "scan the latest messages of each partition")
	fs.DurationVar(&cfg.idleTimeout, "idle-timeout", defaultIdleTimeout, "stop reading a partition after this idle period")
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
	case strings.TrimSpace(cfg.sourceTopic) == "":
		return config{}, errors.New("source-topic is required")
	case strings.TrimSpace(cfg.targetTopic) == "":
		return config{}, errors.New("target-topic is required")
	case cfg.limit <= 0:
		return config{}, errors.New("limit must be > 0")
	case cfg.idleTimeout <= 0:
		return config{}, errors.New("idle-timeout must be > 0")
	}
	return cfg, nil
}

func connect(cfg config) (func(), offsetClient, partitionSource, sender, error) {
	consumerConfig := sarama.NewConfig()
	consumerConfig.Consumer.Return.Errors = true

	client, err := sarama.NewClient(cfg.brokers, consumerConfig)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("create kafka client: %w", err)
	}
	consumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, nil, nil, nil, fmt.Errorf("create kafka consumer: %w", err)
	}

	closers := []io.Closer{consumer, client}
	var producer sender
	if cfg.execute {
		syncProducer, err := sarama.NewSyncProducer(cfg.brokers, kafka.NewConfig())
		if err != nil {
			_ = consumer.Close()
			_ = client.Close()
			return nil, nil, nil, nil, fmt.Errorf("create kafka producer: %w", err)
		}
		wrapped := kafka.NewProducerFrom(syncProducer, log.WithField("component", "dlq-reprocess"))
		closers = append([]io.Closer{wrapped}, closers...)
		producer = wrapped
	}

	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}
	return closeAll, client, saramaSource{consumer: consumer}, producer, nil
}

func replay(ctx context.Context, cfg config, client offsetClient, source partitionSource, producer sender) (replayStats, error) {
	var total replayStats
	if client == nil || source == nil {
		return total, errors.New("kafka client and consumer are required")
	}
	if cfg.execute && producer == nil {
		return total, errors.New("producer is required in execute mode")
	}

	partitions, err := client.Partitions(cfg.sourceTopic)
	if err != nil {
		return total, fmt.Errorf("get partitions for topic %s: %w", cfg.sourceTopic, err)
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i] < partitions[j] })

	for _, partition := range partitions {
		if total.processed >= cfg.limit {
			break
		}
		stats, err := replayPartition(ctx, cfg, client, source, producer, partition, cfg.limit-total.processed)
		total.add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func replayPartition(
	ctx context.Context,
	cfg config,
	client offsetClient,
	source partitionSource,
	producer sender,
	partition int32,
	limit int,
) (replayStats, error) {
	var stats replayStats

	oldest, err := client.GetOffset(cfg.sourceTopic, partition, sarama.OffsetOldest)
	if err != nil {
		return stats, fmt.Errorf("get oldest offset for partition %d: %w", partition, err)
	}
	newest, err := client.GetOffset(cfg.sourceTopic, partition, sarama.OffsetNewest)
	if err != nil {
		return stats, fmt.Errorf("get newest offset for partition %d: %w", partition, err)
	}
	if newest <= oldest {
		return stats, nil
	}

	start := oldest
	if cfg.fromNewest {
		start = max(newest-int64(limit), oldest)
	}

	pc, err := source.ConsumePartition(cfg.sourceTopic, partition, start)
	if err != nil {
		return stats, fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer func() { _ = pc.Close() }()

	idle := time.NewTimer(cfg.idleTimeout)
	defer idle.Stop()

	for stats.processed < limit {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case <-idle.C:
			return stats, nil
		case consumerErr := <-pc.Errors():
			if consumerErr != nil {
				return stats, fmt.Errorf("partition %d consumer error: %w", partition, consumerErr)
			}
		case msg, ok := <-pc.Messages():
			if !ok || msg == nil || msg.Offset >= newest {
				return stats, nil
			}
			idle.Reset(cfg.idleTimeout)
			stats.processed++

			replayed, err := replayOne(ctx, cfg, producer, msg)
			if err != nil {
				return stats, err
			}
			if replayed {
				stats.replayed++
			} else {
				stats.skipped++
			}

			if msg.Offset+1 >= newest {
				return stats, nil
			}
		}
	}
	return stats, nil
}

// replayOne возвращает false, если сообщение пропущено как нераспознанное.
func replayOne(ctx context.Context, cfg config, producer sender, msg *sarama.ConsumerMessage) (bool, error) {
	entry := log.WithFields(log.Fields{"partition": msg.Partition, "offset": msg.Offset})
	candidate, err := extractReplayMessage(msg, cfg.targetTopic)
	if err != nil {
		entry.WithError(err).Warn("skip unsupported dlq message")
		return false, nil
	}

	if !cfg.execute {
		entry.WithFields(log.Fields{"target_topic": candidate.topic, "key": candidate.key}).Info("dlq replay candidate")
		return true, nil
	}

	headers := map[string]string{}
	if candidate.eventType != "" {
		headers[kafka.HeaderEventType] = candidate.eventType
	}
	if err := producer.Send(ctx, candidate.topic, candidate.key, candidate.value, headers); err != nil {
		return false, fmt.Errorf("publish replay message: %w", err)
	}
	return true, nil
}

// extractReplayMessage распознаёт два формата DLQ: сообщение, которое не смог
// обработать consumer, и конверт outbox с outbox.DeadLetter в payload.
func extractReplayMessage(msg *sarama.ConsumerMessage, defaultTopic string) (replayMessage, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(msg.Value, &probe); err != nil {
		return replayMessage{}, fmt.Errorf("decode dlq message: %w", err)
	}

	if _, ok := probe["original_value"]; ok {
		return fromConsumerDLQ(msg.Value, defaultTopic)
	}
	if _, ok := probe["payload"]; ok {
		return fromOutboxDLQ(msg.Value, defaultTopic)
	}
	return replayMessage{}, errors.New("unknown dlq message format")
}

func fromConsumerDLQ(value []byte, defaultTopic string) (replayMessage, error) {
	var dlq kafka.DLQMessage
	if err := json.Unmarshal(value, &dlq); err != nil {
		return replayMessage{}, fmt.Errorf("decode consumer dlq message: %w", err)
	}
	if len(dlq.OriginalValue) == 0 {
		return replayMessage{}, errors.New("consumer dlq message has no original value")
	}

	original := []byte(dlq.OriginalValue)
	// Невалидный JSON consumer сохраняет строкой; отправляем исходные байты.
	var quoted string
	if err := json.Unmarshal(original, &quoted); err == nil {
		original = []byte(quoted)
	}

	topic := strings.TrimSpace(dlq.OriginalTopic)
	if topic == "" {
		topic = defaultTopic
	}

	var envelope domain.EventEnvelope
	_ = json.Unmarshal(original, &envelope)

	return replayMessage{topic: topic, key: dlq.OriginalKey, value: original, eventType: envelope.EventType}, nil
}

func fromOutboxDLQ(value []byte, defaultTopic string) (replayMessage, error) {
	var envelope domain.EventEnvelope
	if err := json.Unmarshal(value, &envelope); err != nil {
		return replayMessage{}, fmt.Errorf("decode outbox dlq envelope: %w", err)
	}

	var dead outbox.DeadLetter
	if err := json.Unmarshal(envelope.Payload, &dead); err != nil {
		return replayMessage{}, fmt.Errorf("decode outbox dead letter: %w", err)
	}
	if len(dead.Payload) == 0 {
		return replayMessage{}, errors.New("outbox dead letter has no event payload")
	}

	original := domain.OutboxMessage{
		ID:            firstNonEmpty(dead.OutboxID, envelope.ID),
		AggregateType: firstNonEmpty(dead.AggregateType, envelope.AggregateType),
		AggregateID:   firstNonEmpty(dead.AggregateID, envelope.AggregateID),
		EventType:     firstNonEmpty(dead.EventType, envelope.EventType),
		Payload:       dead.Payload,
	}
	encoded, err := json.Marshal(domain.NewEventEnvelope(original, time.Now()))
	if err != nil {
		return replayMessage{}, fmt.Errorf("encode replay envelope: %w", err)
	}

	return replayMessage{
		topic:     defaultTopic,
		key:       original.PartitionKey(),
		value:     encoded,
		eventType: original.EventType,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func printSummary(out io.Writer, cfg config, stats replayStats) {
	mode := "dry-run"
	if cfg.execute {
		mode = "execute"
	}
	_, _ = fmt.Fprintf(out, "mode=%s processed=%d replayed=%d skipped=%d\n", mode, stats.processed, stats.replayed, stats.skipped)
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// Package kafkasink ships batch payloads to a Kafka topic instead of the
// HTTP ingest endpoint. The endpoint name travels as the record key so
// consumers can route payloads the same way the HTTP service does.
package kafkasink

import (
	"context"
	"fmt"

	"github.com/hugolhafner/go-eventlog/sink"
	"github.com/hugolhafner/go-eventlog/transport"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ transport.Transport = (*Sink)(nil)

type Config struct {
	SeedBrokers []string
	Topic       string
	Sink        sink.Sink
}

func defaultConfig() Config {
	return Config{
		SeedBrokers: []string{"localhost:9092"},
		Topic:       "viewer-logs",
		Sink:        sink.Noop(),
	}
}

type Option func(*Config)

func WithSeedBrokers(brokers []string) Option {
	return func(cfg *Config) {
		cfg.SeedBrokers = brokers
	}
}

func WithTopic(topic string) Option {
	return func(cfg *Config) {
		cfg.Topic = topic
	}
}

func WithSink(s sink.Sink) Option {
	return func(cfg *Config) {
		cfg.Sink = s
	}
}

type Sink struct {
	client *kgo.Client
	config Config
}

func New(opts ...Option) (*Sink, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.SeedBrokers...),
		kgo.WithLogger(newKgoLogger(cfg.Sink)),
	)
	if err != nil {
		return nil, fmt.Errorf("create kgo client: %w", err)
	}

	return &Sink{client: client, config: cfg}, nil
}

func (s *Sink) Send(ctx context.Context, endpoint string, payload []byte) error {
	record := &kgo.Record{
		Topic: s.config.Topic,
		Key:   []byte(endpoint),
		Value: payload,
	}

	results := s.client.ProduceSync(ctx, record)
	return results.FirstErr()
}

func (s *Sink) Flush(ctx context.Context) error {
	return s.client.Flush(ctx)
}

func (s *Sink) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *Sink) Close() {
	s.client.Close()
}

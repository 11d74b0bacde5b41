package collector

import (
	"context"
	"fmt"
	"sync"

	"github.com/hugolhafner/go-eventlog/autosave"
	"github.com/hugolhafner/go-eventlog/batch"
	"github.com/hugolhafner/go-eventlog/record"
	"github.com/hugolhafner/go-eventlog/sink"
	"github.com/hugolhafner/go-eventlog/transport"
)

var _ Collector = (*Cache)(nil)

// SaveKinds is the default set of event types persisted by Save: errors
// and metrics are the only kinds the ingest service keeps.
var SaveKinds = []batch.EventType{batch.EventTypeError, batch.EventTypeMetric}

// Cache buffers forwarded records per event type until they are persisted.
type Cache struct {
	config Config

	mu          sync.Mutex
	buffers     map[batch.EventType][]record.Record
	file        File
	contentType string
	transport   transport.Transport
	network     Network

	trigger autosave.Trigger
	done    chan struct{}
}

func New(opts ...ConfigOption) *Cache {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Cache{
		config:    cfg,
		buffers:   make(map[batch.EventType][]record.Record),
		transport: cfg.Transport,
		network:   cfg.Network,
		trigger:   cfg.AutoSave,
	}

	if c.transport == nil && cfg.Network.LogURL != "" {
		c.transport = newNetworkTransport(cfg.Network, cfg.Sink)
	}

	if c.trigger != nil {
		c.done = make(chan struct{})
		go c.autoSaveLoop()
	}

	return c
}

func newNetworkTransport(n Network, s sink.Sink) transport.Transport {
	return transport.NewHTTP(
		n.LogURL,
		transport.WithAppHost(n.AppHost),
		transport.WithLocale(n.Locale),
		transport.WithSink(s),
	)
}

func (c *Cache) Info(msg string) {
	c.append(batch.EventTypeInfo, record.New(msg))
}

func (c *Cache) Warn(msg string) {
	c.append(batch.EventTypeWarning, record.New(msg))
}

func (c *Cache) Error(msg string) {
	c.append(batch.EventTypeError, record.New(msg))
}

func (c *Cache) Metric(code string, value any) {
	c.append(batch.EventTypeMetric, record.NewMetric(code, value))
}

func (c *Cache) append(kind batch.EventType, r record.Record) {
	c.mu.Lock()
	c.buffers[kind] = append(c.buffers[kind], r)
	c.mu.Unlock()

	if c.trigger != nil {
		c.trigger.RecordLogged(1)
	}
}

func (c *Cache) SetFile(file File) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.file = file
}

func (c *Cache) SetContentType(contentType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contentType = contentType
}

// SetupNetworkLayer replaces the delivery settings and rebuilds the
// transport from them.
func (c *Cache) SetupNetworkLayer(network Network) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.network = network
	c.transport = newNetworkTransport(network, c.config.Sink)
}

// Reset discards all buffered records and the session metadata.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffers = make(map[batch.EventType][]record.Record)
	c.file = File{}
	c.contentType = ""
}

// Save transforms the buffered records of the requested kinds into batches
// and delivers them. The buffer is left untouched: callers clear it
// explicitly once the save succeeded.
func (c *Cache) Save(kinds []batch.EventType) error {
	c.mu.Lock()
	batches := make([]batch.Batch, 0, len(kinds))
	total := 0
	for _, kind := range kinds {
		var b batch.Batch
		if kind == batch.EventTypeMetric {
			b = batch.TransformMetrics(c.buffers[kind])
		} else {
			b = batch.Transform(kind, c.buffers[kind])
		}
		batches = append(batches, b)
		total += len(b.Events)
	}

	payload := Payload{
		File:        c.file,
		ContentType: c.contentType,
		Locale:      c.network.Locale,
		Batches:     batches,
	}
	endpoint := c.network.Endpoint
	t := c.transport
	c.mu.Unlock()

	if total == 0 || t == nil {
		return nil
	}

	data, err := c.config.Serialiser.Serialise(endpoint, payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	if err := t.Send(context.Background(), endpoint, data); err != nil {
		return fmt.Errorf("send payload: %w", err)
	}

	return nil
}

// ClearCache discards all buffered records.
func (c *Cache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffers = make(map[batch.EventType][]record.Record)
}

// Close stops the auto-save loop, if one was configured.
func (c *Cache) Close() {
	if c.trigger == nil {
		return
	}

	c.trigger.Close()
	<-c.done
}

func (c *Cache) autoSaveLoop() {
	defer close(c.done)

	for range c.trigger.C() {
		if err := c.Save(SaveKinds); err != nil {
			c.config.Sink.Error(fmt.Sprintf("auto-save failed: %v", err))
			continue
		}
		c.ClearCache()
	}
}

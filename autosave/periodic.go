package autosave

import (
	"sync"
	"time"
)

var _ Trigger = (*PeriodicTrigger)(nil)

type PeriodicTriggerConfig struct {
	MaxInterval time.Duration
	MaxCount    int
}

type PeriodicTriggerOption func(*PeriodicTriggerConfig)

func WithMaxInterval(d time.Duration) PeriodicTriggerOption {
	return func(cfg *PeriodicTriggerConfig) {
		cfg.MaxInterval = d
	}
}

func WithMaxCount(c int) PeriodicTriggerOption {
	return func(cfg *PeriodicTriggerConfig) {
		cfg.MaxCount = c
	}
}

// PeriodicTrigger is safe for concurrent use: records may be logged from
// multiple goroutines while the flush loop drains C.
type PeriodicTrigger struct {
	c PeriodicTriggerConfig

	mu        sync.Mutex
	count     int
	lastFlush time.Time
	closed    bool
	channel   chan struct{}
}

func NewPeriodicTrigger(opts ...PeriodicTriggerOption) *PeriodicTrigger {
	cfg := PeriodicTriggerConfig{
		MaxInterval: 30 * time.Second,
		MaxCount:    100,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &PeriodicTrigger{
		c:         cfg,
		count:     0,
		lastFlush: time.Now(),
		channel:   make(chan struct{}, 1),
	}
}

func (p *PeriodicTrigger) RecordLogged(count int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.count += count
	if p.count > 0 && (p.count >= p.c.MaxCount || time.Since(p.lastFlush) >= p.c.MaxInterval) {
		select {
		case p.channel <- struct{}{}:
		default:
		}

		p.count = 0
		p.lastFlush = time.Now()
	}
}

func (p *PeriodicTrigger) C() chan struct{} {
	return p.channel
}

func (p *PeriodicTrigger) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.closed = true
	close(p.channel)
}

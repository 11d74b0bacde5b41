package mocktransport

import (
	"context"
	"sync"

	"github.com/hugolhafner/go-eventlog/transport"
)

var _ transport.Transport = (*Transport)(nil)

// SentPayload represents a payload that was delivered via the mock transport.
type SentPayload struct {
	Endpoint string
	Payload  []byte
}

type Transport struct {
	mu sync.Mutex

	sent    []SentPayload
	sendErr func(endpoint string, payload []byte) error
}

type Option func(*Transport)

// WithSendError injects a delivery error. The callback is consulted on
// every Send.
func WithSendError(fn func(endpoint string, payload []byte) error) Option {
	return func(t *Transport) {
		t.sendErr = fn
	}
}

func New(opts ...Option) *Transport {
	t := &Transport{
		sent: make([]SentPayload, 0),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Transport) Send(ctx context.Context, endpoint string, payload []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sendErr != nil {
		if err := t.sendErr(endpoint, payload); err != nil {
			return err
		}
	}

	p := make([]byte, len(payload))
	copy(p, payload)
	t.sent = append(t.sent, SentPayload{Endpoint: endpoint, Payload: p})

	return nil
}

// SentPayloads returns a copy of everything delivered so far.
func (t *Transport) SentPayloads() []SentPayload {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]SentPayload, len(t.sent))
	copy(out, t.sent)
	return out
}

func (t *Transport) SentPayloadsForEndpoint(endpoint string) []SentPayload {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []SentPayload
	for _, p := range t.sent {
		if p.Endpoint == endpoint {
			out = append(out, p)
		}
	}
	return out
}

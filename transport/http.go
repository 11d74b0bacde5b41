package transport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hugolhafner/dskit/backoff"
	"github.com/hugolhafner/go-eventlog/errorhandler"
	"github.com/hugolhafner/go-eventlog/sink"
)

var _ Transport = (*HTTP)(nil)

type HTTPConfig struct {
	BaseURL string
	AppHost string
	Locale  string
	Timeout time.Duration

	Handler errorhandler.Handler
	Client  *http.Client
	Sink    sink.Sink
}

func defaultHTTPConfig(baseURL string) HTTPConfig {
	return HTTPConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Sink:    sink.Noop(),
	}
}

type HTTPOption func(*HTTPConfig)

func WithAppHost(host string) HTTPOption {
	return func(cfg *HTTPConfig) {
		cfg.AppHost = host
	}
}

func WithLocale(locale string) HTTPOption {
	return func(cfg *HTTPConfig) {
		cfg.Locale = locale
	}
}

func WithTimeout(d time.Duration) HTTPOption {
	return func(cfg *HTTPConfig) {
		cfg.Timeout = d
	}
}

func WithHandler(h errorhandler.Handler) HTTPOption {
	return func(cfg *HTTPConfig) {
		cfg.Handler = h
	}
}

func WithClient(c *http.Client) HTTPOption {
	return func(cfg *HTTPConfig) {
		cfg.Client = c
	}
}

func WithSink(s sink.Sink) HTTPOption {
	return func(cfg *HTTPConfig) {
		cfg.Sink = s
	}
}

// HTTP posts payloads to baseURL+endpoint. Delivery failures are routed
// through the configured error handler, which decides between retrying,
// dropping the payload and surfacing the error.
type HTTP struct {
	config HTTPConfig
	client *http.Client
}

func NewHTTP(baseURL string, opts ...HTTPOption) *HTTP {
	cfg := defaultHTTPConfig(baseURL)
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Handler == nil {
		cfg.Handler = errorhandler.WithMaxAttempts(3, backoff.NewFixed(time.Second), errorhandler.LogAndFail(cfg.Sink))
	}

	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &HTTP{config: cfg, client: client}
}

func (h *HTTP) Send(ctx context.Context, endpoint string, payload []byte) error {
	ec := errorhandler.NewErrorContext(endpoint, payload, nil).
		WithPhase(errorhandler.PhaseSend)

	for {
		err := h.post(ctx, endpoint, payload)
		if err == nil {
			return nil
		}

		action := h.config.Handler.Handle(ctx, ec.WithError(err))
		switch action.Type() {
		case errorhandler.ActionTypeRetry:
			ec = ec.IncrementAttempt()
		case errorhandler.ActionTypeDrop:
			return nil
		default:
			return err
		}
	}
}

func (h *HTTP) post(ctx context.Context, endpoint string, payload []byte) error {
	url := strings.TrimRight(h.config.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if h.config.AppHost != "" {
		req.Header.Set("X-App-Host", h.config.AppHost)
	}
	if h.config.Locale != "" {
		req.Header.Set("Accept-Language", h.config.Locale)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("post payload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("post payload: HTTP %d", resp.StatusCode)
	}

	return nil
}

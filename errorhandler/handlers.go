package errorhandler

import (
	"context"
	"fmt"
	"time"

	"github.com/hugolhafner/dskit/backoff"
	"github.com/hugolhafner/go-eventlog/sink"
)

// LogAndDrop logs the delivery error and discards the payload
func LogAndDrop(s sink.Sink) Handler {
	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			s.Error(fmt.Sprintf(
				"error delivering payload to %s, dropping: attempt=%d phase=%s err=%v",
				ec.Endpoint, ec.Attempt, ec.Phase, ec.Error,
			))
			return ActionDrop{}
		},
	)
}

// LogAndFail logs the delivery error and gives up
func LogAndFail(s sink.Sink) Handler {
	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			s.Error(fmt.Sprintf(
				"error delivering payload to %s, failing: attempt=%d phase=%s err=%v",
				ec.Endpoint, ec.Attempt, ec.Phase, ec.Error,
			))
			return ActionFail{}
		},
	)
}

// SilentFail gives up without logging
func SilentFail() Handler {
	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			return ActionFail{}
		},
	)
}

// WithMaxAttempts wraps a handler with retry logic
// When the max attempts is reached, the fallback handler is called
func WithMaxAttempts(maxAttempts int, b backoff.Backoff, fallback Handler) Handler {
	return HandlerFunc(
		func(ctx context.Context, ec ErrorContext) Action {
			select {
			case <-ctx.Done():
				return ActionFail{}
			case <-time.After(b.Next(uint(ec.Attempt))):
			}

			if ec.Attempt < maxAttempts {
				return ActionRetry{}
			}

			if fallback == nil {
				return ActionFail{}
			}

			return fallback.Handle(ctx, ec)
		},
	)
}

//go:build unit

package errorhandler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugolhafner/dskit/backoff"
	"github.com/hugolhafner/go-eventlog/errorhandler"
	mocksink "github.com/hugolhafner/go-eventlog/sink/mock"
	"github.com/stretchr/testify/require"
)

func TestLogAndDrop(t *testing.T) {
	t.Parallel()
	var testErr = errors.New("delivery failed")

	tests := []struct {
		name string
		err  error
	}{
		{"simple error", testErr},
		{"nil error", nil},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				ec := errorhandler.NewErrorContext("/batch", nil, nil)

				s := mocksink.New()
				h := errorhandler.LogAndDrop(s)
				action := h.Handle(context.Background(), ec.WithError(tt.err))

				require.Equal(t, errorhandler.ActionDrop{}, action)
				s.AssertPrintedOnChannel(t, mocksink.ChannelError)
			},
		)
	}
}

func TestLogAndFail(t *testing.T) {
	t.Parallel()

	ec := errorhandler.NewErrorContext("/batch", []byte(`{}`), errors.New("delivery failed"))

	s := mocksink.New()
	h := errorhandler.LogAndFail(s)
	action := h.Handle(context.Background(), ec)

	require.Equal(t, errorhandler.ActionFail{}, action)
	s.AssertPrintedOnChannel(t, mocksink.ChannelError)
}

func TestSilentFail(t *testing.T) {
	t.Parallel()

	ec := errorhandler.NewErrorContext("/batch", nil, errors.New("delivery failed"))

	action := errorhandler.SilentFail().Handle(context.Background(), ec)
	require.Equal(t, errorhandler.ActionFail{}, action)
}

func TestWithMaxAttempts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attempt int
		expect  errorhandler.Action
	}{
		{"first attempt retries", 1, errorhandler.ActionRetry{}},
		{"second attempt retries", 2, errorhandler.ActionRetry{}},
		{"final attempt falls back", 3, errorhandler.ActionDrop{}},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				ec := errorhandler.NewErrorContext("/batch", nil, errors.New("delivery failed")).
					WithAttempt(tt.attempt)

				h := errorhandler.WithMaxAttempts(
					3, backoff.NewFixed(0),
					errorhandler.LogAndDrop(mocksink.New()),
				)
				action := h.Handle(context.Background(), ec)

				require.Equal(t, tt.expect, action)
			},
		)
	}
}

func TestWithMaxAttempts_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ec := errorhandler.NewErrorContext("/batch", nil, errors.New("delivery failed"))
	h := errorhandler.WithMaxAttempts(3, backoff.NewFixed(time.Hour), nil)

	action := h.Handle(ctx, ec)
	require.Equal(t, errorhandler.ActionFail{}, action)
}

func TestPhaseRouter(t *testing.T) {
	t.Parallel()

	drop := errorhandler.HandlerFunc(
		func(ctx context.Context, ec errorhandler.ErrorContext) errorhandler.Action {
			return errorhandler.ActionDrop{}
		},
	)
	retry := errorhandler.HandlerFunc(
		func(ctx context.Context, ec errorhandler.ErrorContext) errorhandler.Action {
			return errorhandler.ActionRetry{}
		},
	)

	router := errorhandler.NewPhaseRouter(nil, drop, retry)

	ec := errorhandler.NewErrorContext("/batch", nil, errors.New("delivery failed"))

	action := router.Handle(context.Background(), ec.WithPhase(errorhandler.PhaseEncode))
	require.Equal(t, errorhandler.ActionDrop{}, action)

	action = router.Handle(context.Background(), ec.WithPhase(errorhandler.PhaseSend))
	require.Equal(t, errorhandler.ActionRetry{}, action)

	// Unknown phases fall back to the default handler.
	action = router.Handle(context.Background(), ec)
	require.Equal(t, errorhandler.ActionFail{}, action)
}

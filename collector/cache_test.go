//go:build unit

package collector_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hugolhafner/go-eventlog/autosave"
	"github.com/hugolhafner/go-eventlog/batch"
	"github.com/hugolhafner/go-eventlog/collector"
	mocktransport "github.com/hugolhafner/go-eventlog/transport/mock"
	"github.com/stretchr/testify/require"
)

func TestCache_SaveBuildsPayload(t *testing.T) {
	t.Parallel()

	tr := mocktransport.New()
	c := collector.New(
		collector.WithNetwork(collector.Network{Endpoint: "/batch", Locale: "en-US"}),
		collector.WithTransport(tr),
	)

	c.SetFile(collector.File{ID: "f1", Version: "3"})
	c.SetContentType("pdf")
	c.Error("boom")
	c.Metric("load_time", 250)

	require.NoError(t, c.Save(collector.SaveKinds))

	sent := tr.SentPayloadsForEndpoint("/batch")
	require.Len(t, sent, 1)

	var payload collector.Payload
	require.NoError(t, json.Unmarshal(sent[0].Payload, &payload))

	require.Equal(t, collector.File{ID: "f1", Version: "3"}, payload.File)
	require.Equal(t, "pdf", payload.ContentType)
	require.Equal(t, "en-US", payload.Locale)
	require.Len(t, payload.Batches, 2)

	require.Equal(t, batch.EventTypeError, payload.Batches[0].EventType)
	require.Len(t, payload.Batches[0].Events, 1)
	require.Equal(t, "ERROR", payload.Batches[0].Events[0].Code)
	require.Equal(t, "boom", payload.Batches[0].Events[0].Value)

	require.Equal(t, batch.EventTypeMetric, payload.Batches[1].EventType)
	require.Len(t, payload.Batches[1].Events, 1)
	require.Equal(t, "load_time", payload.Batches[1].Events[0].Code)
}

func TestCache_SaveSkipsEmptyBuffers(t *testing.T) {
	t.Parallel()

	tr := mocktransport.New()
	c := collector.New(collector.WithTransport(tr))

	require.NoError(t, c.Save(collector.SaveKinds))

	tr.AssertNothingSent(t)
}

func TestCache_SaveWithoutTransportIsNoop(t *testing.T) {
	t.Parallel()

	c := collector.New()
	c.Error("boom")

	require.NoError(t, c.Save(collector.SaveKinds))
}

func TestCache_SaveDoesNotClear(t *testing.T) {
	t.Parallel()

	tr := mocktransport.New()
	c := collector.New(
		collector.WithNetwork(collector.Network{Endpoint: "/batch"}),
		collector.WithTransport(tr),
	)

	c.Error("boom")

	require.NoError(t, c.Save(collector.SaveKinds))
	require.NoError(t, c.Save(collector.SaveKinds))

	// The buffer is only cleared by ClearCache, so both saves ship the
	// record.
	tr.AssertSentCount(t, 2)

	c.ClearCache()
	require.NoError(t, c.Save(collector.SaveKinds))
	tr.AssertSentCount(t, 2)
}

func TestCache_SaveErrorPropagates(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("connection refused")
	tr := mocktransport.New(
		mocktransport.WithSendError(
			func(endpoint string, payload []byte) error {
				return sendErr
			},
		),
	)
	c := collector.New(collector.WithTransport(tr))

	c.Error("boom")

	err := c.Save(collector.SaveKinds)
	require.ErrorIs(t, err, sendErr)
}

func TestCache_SaveOnlyRequestedKinds(t *testing.T) {
	t.Parallel()

	tr := mocktransport.New()
	c := collector.New(collector.WithTransport(tr))

	c.Info("visible")
	c.Warn("degraded")
	c.Error("boom")

	require.NoError(t, c.Save([]batch.EventType{batch.EventTypeWarning}))

	sent := tr.SentPayloads()
	require.Len(t, sent, 1)

	var payload collector.Payload
	require.NoError(t, json.Unmarshal(sent[0].Payload, &payload))

	require.Len(t, payload.Batches, 1)
	require.Equal(t, batch.EventTypeWarning, payload.Batches[0].EventType)
	require.Len(t, payload.Batches[0].Events, 1)
	require.Equal(t, "degraded", payload.Batches[0].Events[0].Value)
}

func TestCache_Reset(t *testing.T) {
	t.Parallel()

	tr := mocktransport.New()
	c := collector.New(collector.WithTransport(tr))

	c.SetFile(collector.File{ID: "f1"})
	c.SetContentType("pdf")
	c.Error("boom")

	c.Reset()

	require.NoError(t, c.Save(collector.SaveKinds))
	tr.AssertNothingSent(t)
}

func TestCache_AutoSave(t *testing.T) {
	t.Parallel()

	tr := mocktransport.New()
	trigger := autosave.NewPeriodicTrigger(
		autosave.WithMaxCount(2),
		autosave.WithMaxInterval(time.Hour),
	)
	c := collector.New(
		collector.WithNetwork(collector.Network{Endpoint: "/batch"}),
		collector.WithTransport(tr),
		collector.WithAutoSave(trigger),
	)

	c.Error("first")
	c.Error("second")

	require.Eventually(
		t, func() bool {
			return len(tr.SentPayloads()) == 1
		}, time.Second, 10*time.Millisecond,
	)

	c.Close()
}

package mocktransport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertSentCount verifies that exactly n payloads were delivered.
func (t *Transport) AssertSentCount(tb testing.TB, expected int) {
	tb.Helper()

	actual := len(t.SentPayloads())
	require.Equal(tb, expected, actual, "expected %d payloads, got %d", expected, actual)
}

// AssertSentCountForEndpoint verifies that exactly n payloads were delivered to an endpoint.
func (t *Transport) AssertSentCountForEndpoint(tb testing.TB, endpoint string, expected int) {
	tb.Helper()

	actual := len(t.SentPayloadsForEndpoint(endpoint))
	require.Equal(tb, expected, actual, "expected %d payloads delivered to endpoint %q, got %d", expected, endpoint, actual)
}

// AssertSent verifies that the given payload was delivered to the endpoint.
func (t *Transport) AssertSent(tb testing.TB, endpoint string, payload []byte) {
	tb.Helper()

	for _, p := range t.SentPayloadsForEndpoint(endpoint) {
		if bytes.Equal(p.Payload, payload) {
			return
		}
	}

	tb.Errorf(
		"expected payload %q to be delivered to endpoint %q, but it was not found",
		string(payload), endpoint,
	)
}

// AssertNothingSent verifies that no payloads were delivered.
func (t *Transport) AssertNothingSent(tb testing.TB) {
	tb.Helper()

	require.Empty(tb, t.SentPayloads(), "expected no payloads to be delivered")
}

package mocksink

import (
	"testing"
)

func (m *MockSink) AssertPrinted(tb testing.TB, channel Channel, message string) {
	for _, entry := range m.Entries {
		if entry.Channel == channel && entry.Message == message {
			return
		}
	}

	tb.Errorf("expected message '%s' on channel '%s' to be printed", message, channel)
}

func (m *MockSink) AssertPrintedOnChannel(tb testing.TB, channel Channel) {
	for _, entry := range m.Entries {
		if entry.Channel == channel {
			return
		}
	}

	tb.Errorf("expected channel '%s' to be printed to", channel)
}

func (m *MockSink) AssertNotPrinted(tb testing.TB, message string) {
	for _, entry := range m.Entries {
		if entry.Message == message {
			tb.Errorf("expected message '%s' to NOT be printed", message)
			return
		}
	}
}

func (m *MockSink) AssertNothingPrinted(tb testing.TB) {
	if len(m.Entries) > 0 {
		tb.Errorf("expected nothing to be printed, got %d entries", len(m.Entries))
	}
}

func (m *MockSink) AssertPrintedCount(tb testing.TB, expected int) {
	if len(m.Entries) != expected {
		tb.Errorf("expected %d printed entries, got %d", expected, len(m.Entries))
	}
}

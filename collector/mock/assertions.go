package mockcollector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertCalled verifies that the method was invoked at least once.
func (m *MockCollector) AssertCalled(tb testing.TB, method string) {
	tb.Helper()

	for _, c := range m.Calls {
		if c.Method == method {
			return
		}
	}

	tb.Errorf("expected method '%s' to be called", method)
}

// AssertNotCalled verifies that the method was never invoked.
func (m *MockCollector) AssertNotCalled(tb testing.TB, method string) {
	tb.Helper()

	for _, c := range m.Calls {
		if c.Method == method {
			tb.Errorf("expected method '%s' to NOT be called", method)
			return
		}
	}
}

// AssertCalledWith verifies that the method was invoked with the given arguments.
func (m *MockCollector) AssertCalledWith(tb testing.TB, method string, args ...any) {
	tb.Helper()

	for _, c := range m.Calls {
		if c.Method != method || len(c.Args) != len(args) {
			continue
		}

		match := true
		for i := range args {
			if !assert.ObjectsAreEqual(args[i], c.Args[i]) {
				match = false
				break
			}
		}

		if match {
			return
		}
	}

	tb.Errorf("expected method '%s' to be called with %v", method, args)
}

// AssertCallOrder verifies that the given methods were invoked in the given
// relative order, ignoring unrelated calls in between.
func (m *MockCollector) AssertCallOrder(tb testing.TB, methods ...string) {
	tb.Helper()

	i := 0
	for _, c := range m.Calls {
		if i < len(methods) && c.Method == methods[i] {
			i++
		}
	}

	require.Equal(tb, len(methods), i, "expected call order %v, got %v", methods, m.Methods())
}

// AssertNothingCalled verifies that no methods were invoked.
func (m *MockCollector) AssertNothingCalled(tb testing.TB) {
	tb.Helper()

	require.Empty(tb, m.Calls, "expected no collector calls")
}

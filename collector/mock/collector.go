package mockcollector

import (
	"github.com/hugolhafner/go-eventlog/batch"
	"github.com/hugolhafner/go-eventlog/collector"
)

var _ collector.Collector = (*MockCollector)(nil)

// Call records a single method invocation, in order.
type Call struct {
	Method string
	Args   []any
}

type MockCollector struct {
	Calls []Call

	// SaveErr is returned by Save when set.
	SaveErr error
}

func New() *MockCollector {
	return &MockCollector{}
}

func (m *MockCollector) record(method string, args ...any) {
	m.Calls = append(m.Calls, Call{Method: method, Args: args})
}

func (m *MockCollector) Info(msg string) {
	m.record("Info", msg)
}

func (m *MockCollector) Warn(msg string) {
	m.record("Warn", msg)
}

func (m *MockCollector) Error(msg string) {
	m.record("Error", msg)
}

func (m *MockCollector) Metric(code string, value any) {
	m.record("Metric", code, value)
}

func (m *MockCollector) SetFile(file collector.File) {
	m.record("SetFile", file)
}

func (m *MockCollector) SetContentType(contentType string) {
	m.record("SetContentType", contentType)
}

func (m *MockCollector) SetupNetworkLayer(network collector.Network) {
	m.record("SetupNetworkLayer", network)
}

func (m *MockCollector) Reset() {
	m.record("Reset")
}

func (m *MockCollector) Save(kinds []batch.EventType) error {
	m.record("Save", kinds)
	return m.SaveErr
}

func (m *MockCollector) ClearCache() {
	m.record("ClearCache")
}

// Methods returns the method names of all recorded calls, in order.
func (m *MockCollector) Methods() []string {
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Method
	}
	return out
}

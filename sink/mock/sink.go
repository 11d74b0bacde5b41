package mocksink

import (
	"github.com/hugolhafner/go-eventlog/sink"
)

var _ sink.Sink = (*MockSink)(nil)

// Channel identifies which console channel received a message.
type Channel string

const (
	ChannelInfo  Channel = "info"
	ChannelWarn  Channel = "warn"
	ChannelError Channel = "error"
)

type Entry struct {
	Channel Channel
	Message string
}

type MockSink struct {
	Entries []Entry
}

func New() *MockSink {
	return &MockSink{}
}

func (m *MockSink) Info(msg string) {
	m.record(ChannelInfo, msg)
}

func (m *MockSink) Warn(msg string) {
	m.record(ChannelWarn, msg)
}

func (m *MockSink) Error(msg string) {
	m.record(ChannelError, msg)
}

func (m *MockSink) record(ch Channel, msg string) {
	m.Entries = append(m.Entries, Entry{
		Channel: ch,
		Message: msg,
	})
}

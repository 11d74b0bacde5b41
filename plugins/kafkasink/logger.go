package kafkasink

import (
	"fmt"

	"github.com/hugolhafner/go-eventlog/sink"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ kgo.Logger = (*kgoLogger)(nil)

type kgoLogger struct {
	s sink.Sink
}

func newKgoLogger(s sink.Sink) *kgoLogger {
	return &kgoLogger{s: s}
}

func (kl *kgoLogger) Level() kgo.LogLevel {
	return kgo.LogLevelWarn
}

func (kl *kgoLogger) Log(level kgo.LogLevel, msg string, args ...interface{}) {
	line := msg
	if len(args) > 0 {
		line = fmt.Sprintf("%s %v", msg, args)
	}

	switch level {
	case kgo.LogLevelError:
		kl.s.Error(line)
	case kgo.LogLevelWarn:
		kl.s.Warn(line)
	default:
		kl.s.Info(line)
	}
}

package zapsink

import (
	"github.com/hugolhafner/go-eventlog/sink"
	"go.uber.org/zap"
)

var _ sink.Sink = (*ZapSink)(nil)

type ZapSink struct {
	l *zap.Logger
}

func New(l *zap.Logger) sink.Sink {
	return &ZapSink{
		l,
	}
}

func (z *ZapSink) Info(msg string) {
	z.l.Info(msg)
}

func (z *ZapSink) Warn(msg string) {
	z.l.Warn(msg)
}

func (z *ZapSink) Error(msg string) {
	z.l.Error(msg)
}

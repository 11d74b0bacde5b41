// Package eventlog is a logging and analytics facade for an embedded
// document viewer. It gates console output by a configured verbosity
// level and forwards log and metric calls to an optional collector that
// buffers them for batch delivery.
package eventlog

import (
	"fmt"
	"strings"

	"github.com/hugolhafner/go-eventlog/collector"
	"github.com/hugolhafner/go-eventlog/sink"
)

type Logger struct {
	level     ConsoleLevel
	sink      sink.Sink
	collector collector.Collector
}

// New builds a Logger. When saving is enabled and no collector was
// injected, a default collector is constructed from the network settings.
func New(opts ...ConfigOption) *Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := cfg.Collector
	if c == nil && cfg.SavingEnabled {
		c = collector.New(
			collector.WithNetwork(collector.Network{
				LogURL:   cfg.LogURL,
				AppHost:  cfg.AppHost,
				Endpoint: cfg.LogEndpoint,
				Locale:   cfg.Locale,
			}),
			collector.WithSink(cfg.Sink),
		)
	}

	return &Logger{
		level:     cfg.ConsoleLevel,
		sink:      cfg.Sink,
		collector: c,
	}
}

// SetLevel sets the console threshold. Values outside the enum domain are
// accepted and simply never permit printing.
func (l *Logger) SetLevel(level ConsoleLevel) {
	l.level = level
}

// CanPrint reports whether a log of the given kind passes the console
// threshold. Thresholds outside the enum domain never permit printing.
func (l *Logger) CanPrint(kind Kind) bool {
	if l.level < LevelInfo || l.level >= LevelSilent {
		return false
	}

	return kind.severity() >= l.level
}

// Log prints the call through the console channel for its kind when the
// threshold permits, then forwards the message to the collector when one
// is present. Either half degrades to a no-op independently.
func (l *Logger) Log(kind Kind, args ...any) {
	if l.CanPrint(kind) {
		l.print(kind, fmt.Sprintf("[%s] %s", kind, join(args)))
	}

	if l.collector == nil {
		return
	}

	msg := join(args)
	switch kind {
	case KindWarning:
		l.collector.Warn(msg)
	case KindError, KindUncaughtError:
		l.collector.Error(msg)
	default:
		l.collector.Info(msg)
	}
}

func (l *Logger) print(kind Kind, msg string) {
	switch kind {
	case KindWarning:
		l.sink.Warn(msg)
	case KindError, KindUncaughtError:
		l.sink.Error(msg)
	default:
		l.sink.Info(msg)
	}
}

func (l *Logger) Info(args ...any) {
	l.Log(KindInfo, args...)
}

func (l *Logger) Warn(args ...any) {
	l.Log(KindWarning, args...)
}

func (l *Logger) Error(args ...any) {
	l.Log(KindError, args...)
}

// UncaughtError reports an error that surfaced outside any handler. It
// prints on the error channel.
func (l *Logger) UncaughtError(args ...any) {
	l.Log(KindUncaughtError, args...)
}

// Metric records a measured value. Print-gating uses the metric kind;
// the typed pair is forwarded to the collector unchanged.
func (l *Logger) Metric(code string, value any) {
	if l.CanPrint(KindMetric) {
		l.sink.Info(fmt.Sprintf("[%s] %s %v", KindMetric, code, value))
	}

	if l.collector != nil {
		l.collector.Metric(code, value)
	}
}

func (l *Logger) SetFile(file collector.File) {
	if l.collector != nil {
		l.collector.SetFile(file)
	}
}

func (l *Logger) SetContentType(contentType string) {
	if l.collector != nil {
		l.collector.SetContentType(contentType)
	}
}

func (l *Logger) SetupNetworkLayer(network collector.Network) {
	if l.collector != nil {
		l.collector.SetupNetworkLayer(network)
	}
}

func (l *Logger) Reset() {
	if l.collector != nil {
		l.collector.Reset()
	}
}

// Save persists the buffered error and metric records, then clears the
// collector cache. The clear only happens after a successful persist, so
// a failed save never loses buffered records.
func (l *Logger) Save() error {
	if l.collector == nil {
		return nil
	}

	if err := l.collector.Save(collector.SaveKinds); err != nil {
		return err
	}

	l.collector.ClearCache()
	return nil
}

func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

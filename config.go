package eventlog

import (
	"github.com/hugolhafner/go-eventlog/collector"
	"github.com/hugolhafner/go-eventlog/sink"
)

type Config struct {
	ConsoleLevel  ConsoleLevel
	SavingEnabled bool

	// Network settings handed verbatim to the default collector when one
	// is built. Ignored when a collector is injected.
	LogURL      string
	AppHost     string
	LogEndpoint string
	Locale      string

	Sink      sink.Sink
	Collector collector.Collector
}

type ConfigOption func(*Config)

func WithConsoleLevel(level ConsoleLevel) ConfigOption {
	return func(c *Config) {
		c.ConsoleLevel = level
	}
}

func WithSavingEnabled(enabled bool) ConfigOption {
	return func(c *Config) {
		c.SavingEnabled = enabled
	}
}

func WithLogURL(url string) ConfigOption {
	return func(c *Config) {
		c.LogURL = url
	}
}

func WithAppHost(host string) ConfigOption {
	return func(c *Config) {
		c.AppHost = host
	}
}

func WithLogEndpoint(endpoint string) ConfigOption {
	return func(c *Config) {
		c.LogEndpoint = endpoint
	}
}

func WithLocale(locale string) ConfigOption {
	return func(c *Config) {
		c.Locale = locale
	}
}

func WithSink(s sink.Sink) ConfigOption {
	return func(c *Config) {
		c.Sink = s
	}
}

// WithCollector injects the collaborator log and metric calls are
// forwarded to. Without one, and with saving disabled, forwarding is a
// no-op.
func WithCollector(c collector.Collector) ConfigOption {
	return func(cfg *Config) {
		cfg.Collector = c
	}
}

func defaultConfig() Config {
	return Config{
		ConsoleLevel: LevelInfo,
		Sink:         sink.Stdout(),
	}
}

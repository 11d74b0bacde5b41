package collector

import (
	"github.com/hugolhafner/go-eventlog/autosave"
	"github.com/hugolhafner/go-eventlog/serde"
	"github.com/hugolhafner/go-eventlog/sink"
	"github.com/hugolhafner/go-eventlog/transport"
)

type Config struct {
	Network    Network
	Transport  transport.Transport
	Serialiser serde.Serialiser[Payload]
	Sink       sink.Sink
	AutoSave   autosave.Trigger
}

type ConfigOption func(*Config)

func WithNetwork(n Network) ConfigOption {
	return func(c *Config) {
		c.Network = n
	}
}

// WithTransport overrides the transport built from the network settings.
func WithTransport(t transport.Transport) ConfigOption {
	return func(c *Config) {
		c.Transport = t
	}
}

func WithSerialiser(s serde.Serialiser[Payload]) ConfigOption {
	return func(c *Config) {
		c.Serialiser = s
	}
}

func WithSink(s sink.Sink) ConfigOption {
	return func(c *Config) {
		c.Sink = s
	}
}

// WithAutoSave flushes the cache whenever the trigger fires. The buffer is
// only cleared after a successful save.
func WithAutoSave(t autosave.Trigger) ConfigOption {
	return func(c *Config) {
		c.AutoSave = t
	}
}

func defaultConfig() Config {
	return Config{
		Serialiser: serde.JSON[Payload](),
		Sink:       sink.Noop(),
	}
}

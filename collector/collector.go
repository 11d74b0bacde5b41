// Package collector implements the host-side half of the logging facade:
// it buffers forwarded records per event type and persists them as batch
// payloads through a transport.
package collector

import (
	"github.com/hugolhafner/go-eventlog/batch"
)

// File identifies the document the buffered records belong to.
type File struct {
	ID      string `json:"id"`
	Version string `json:"version,omitempty"`
}

// Network carries the delivery settings for the persistence layer.
type Network struct {
	LogURL  string
	AppHost string
	// Endpoint is the path payloads are posted to, relative to LogURL.
	Endpoint string
	Locale   string
}

// Payload is the wire shape produced by Save: session metadata plus one
// batch per requested event type.
type Payload struct {
	File        File          `json:"file"`
	ContentType string        `json:"content_type,omitempty"`
	Locale      string        `json:"locale,omitempty"`
	Batches     []batch.Batch `json:"batches"`
}

// Collector is the capability set the facade forwards to. All methods
// must tolerate being called in any order.
type Collector interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Metric(code string, value any)

	SetFile(file File)
	SetContentType(contentType string)
	SetupNetworkLayer(network Network)
	Reset()

	Save(kinds []batch.EventType) error
	ClearCache()
}

package record

import (
	"time"
)

// Record is a single buffered log entry. Immutable once created.
type Record struct {
	Timestamp string `json:"timestamp"`
	Message   any    `json:"message"`
}

// Metric is the message shape of a metric record.
type Metric struct {
	Code  string `json:"code"`
	Value any    `json:"value"`
}

// Now returns the current UTC time as an ISO-8601 string.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func New(message any) Record {
	return Record{
		Timestamp: Now(),
		Message:   message,
	}
}

func NewMetric(code string, value any) Record {
	return New(Metric{
		Code:  code,
		Value: value,
	})
}

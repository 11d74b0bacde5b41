package batch

// EventType groups records of the same kind into a single payload.
type EventType string

const (
	EventTypeError   EventType = "ERROR"
	EventTypeWarning EventType = "WARNING"
	EventTypeInfo    EventType = "INFO"
	EventTypeMetric  EventType = "METRIC"
)

// ControlCode is the reserved metric code marking a record as a control
// event rather than a measured value.
const ControlCode = "control"

// Event is a single entry of a batch.
type Event struct {
	Timestamp string `json:"timestamp"`
	Code      string `json:"code"`
	Value     any    `json:"value,omitempty"`
}

// Batch is the grouped-by-event-type payload built from buffered records.
// It has no identity beyond the transform call that produced it.
type Batch struct {
	EventType EventType `json:"event_type"`
	Events    []Event   `json:"events"`
}

package batch

import (
	"github.com/hugolhafner/go-eventlog/record"
)

// Transform maps records of a non-metric kind into a batch, preserving
// input order. Each record's message becomes the event value and the
// event type becomes the event code.
func Transform(eventType EventType, records []record.Record) Batch {
	events := make([]Event, 0, len(records))
	for _, r := range records {
		events = append(events, Event{
			Timestamp: r.Timestamp,
			Code:      string(eventType),
			Value:     r.Message,
		})
	}

	return Batch{
		EventType: eventType,
		Events:    events,
	}
}

// TransformMetrics partitions metric records in one pass. Records whose
// code equals ControlCode contribute their value as a control code;
// everything else maps to a metric event in input order. A non-empty
// control set is coalesced into exactly one trailing synthetic event whose
// value is the ordered code list, timestamped at transform time.
func TransformMetrics(records []record.Record) Batch {
	events := make([]Event, 0, len(records))
	var controls []any

	for _, r := range records {
		m, ok := r.Message.(record.Metric)
		if !ok {
			continue
		}

		if m.Code == ControlCode {
			controls = append(controls, m.Value)
			continue
		}

		events = append(events, Event{
			Timestamp: r.Timestamp,
			Code:      m.Code,
			Value:     m.Value,
		})
	}

	if len(controls) > 0 {
		events = append(events, Event{
			Timestamp: record.Now(),
			Code:      ControlCode,
			Value:     controls,
		})
	}

	return Batch{
		EventType: EventTypeMetric,
		Events:    events,
	}
}

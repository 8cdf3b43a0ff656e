// Package event defines the event record and the input line parser.
package event

// Separator divides the kind field from the timestamp field.
// The comma must be followed by exactly one space.
const Separator = ", "

// Record is one parsed (kind, timestamp) pair from the input.
// Timestamps are opaque integers; they are never interpreted as wall time.
type Record struct {
	Kind      string
	Timestamp int64
}

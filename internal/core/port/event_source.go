package port

import "context"

// EventSource is a pull feed of spend events. Run delivers events to sink
// in feed order until ctx is done.
type EventSource interface {
	Run(ctx context.Context, sink EventSink) error
}

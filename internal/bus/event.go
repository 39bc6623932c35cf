package bus

import "time"

// Event is a state change published by the navigation controller or a
// call session.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Topic namespaces. Subscribe with a namespace to receive every kind in it.
const (
	NavNamespace  = "nav."
	CallNamespace = "call."
)

package fsops

import (
	"fmt"
	"io"
)

// EventKind distinguishes the progress events a Materializer emits.
type EventKind int

const (
	DirectoryEnsured EventKind = iota
	FileWritten
)

// Event reports one completed filesystem effect.
type Event struct {
	Kind EventKind
	Path string
}

// String renders the event as the progress line shown to users.
func (e Event) String() string {
	if e.Kind == DirectoryEnsured {
		return "Created directory: " + e.Path
	}
	return "Created: " + e.Path
}

// Observer receives progress events. Observers cannot fail the operation
// that produced the event.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// WriterObserver prints one line per event to w. Write errors are dropped.
func WriterObserver(w io.Writer) Observer {
	return ObserverFunc(func(e Event) {
		_, _ = fmt.Fprintln(w, e.String())
	})
}

// Discard is an Observer that ignores every event.
var Discard Observer = ObserverFunc(func(Event) {})

// Recorder collects events in order.
type Recorder struct {
	Events []Event
}

// Observe appends e.
func (r *Recorder) Observe(e Event) {
	r.Events = append(r.Events, e)
}

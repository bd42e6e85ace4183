package transcript

import (
	"time"

	"github.com/matzehuels/listview/pkg/engine"
)

// Recorder keeps operations and diagrams in memory.
type Recorder struct {
	entries []Entry
	closed  bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Operation appends an entry for op.
func (r *Recorder) Operation(op Operation) error {
	if op.Time.IsZero() {
		op.Time = time.Now()
	}
	r.entries = append(r.entries, Entry{Operation: op})
	return nil
}

// WriteDiagram attaches d to the last operation that expects a diagram and
// has none yet, or to a new unnamed entry otherwise.
func (r *Recorder) WriteDiagram(d *engine.Diagram) error {
	if n := len(r.entries); n > 0 {
		last := &r.entries[n-1]
		if last.WithDiagram && last.Diagram == nil {
			last.Diagram = d
			return nil
		}
	}
	r.entries = append(r.entries, Entry{
		Operation: Operation{Time: time.Now(), WithDiagram: true},
		Diagram:   d,
	})
	return nil
}

// Close marks the recorder closed. Entries stay readable.
func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool { return r.closed }

// Entries returns every recorded entry in order.
func (r *Recorder) Entries() []Entry { return r.entries }

// Diagrams returns the entries that carry a diagram.
func (r *Recorder) Diagrams() []Entry {
	var out []Entry
	for _, e := range r.entries {
		if e.Diagram != nil {
			out = append(out, e)
		}
	}
	return out
}

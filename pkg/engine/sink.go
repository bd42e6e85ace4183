package engine

import (
	"io"

	"github.com/matzehuels/listview/pkg/diff"
)

// Diagram is one rendered state of the structure.
type Diagram struct {
	Seq     int          // 1 for the first render of an engine
	DOT     string       // complete "strict digraph { ... }" source
	Nodes   int          // distinct nodes drawn
	Levels  int          // display levels
	Summary diff.Summary // classification counts against the previous render
}

// Sink receives every successfully rendered diagram. A sink that also
// implements [io.Closer] is closed once by [Engine.Close].
type Sink interface {
	WriteDiagram(d *Diagram) error
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(d *Diagram) error

func (f SinkFunc) WriteDiagram(d *Diagram) error { return f(d) }

// WriterSink writes each diagram's DOT source to w.
func WriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s *writerSink) WriteDiagram(d *Diagram) error {
	_, err := io.WriteString(s.w, d.DOT)
	return err
}

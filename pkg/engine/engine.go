package engine

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/listview/pkg/accessor"
	"github.com/matzehuels/listview/pkg/diff"
	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/observability"
	"github.com/matzehuels/listview/pkg/render/dot"
	"github.com/matzehuels/listview/pkg/snapshot"
)

// Options configures an [Engine].
type Options struct {
	// Render controls highlighting and layout hints.
	Render dot.Options

	// Name identifies the engine in logs and observability hooks.
	Name string

	// Logger receives debug-level render summaries. Defaults to log.Default().
	Logger *log.Logger

	// NewID generates node identifiers; see [snapshot.Options].
	NewID func() string
}

// DefaultOptions returns options with highlighting enabled.
func DefaultOptions() Options {
	return Options{Render: dot.DefaultOptions()}
}

// Engine renders a structure against its own previous snapshot.
type Engine struct {
	acc  accessor.Accessor
	sink Sink
	opts Options

	prev   *snapshot.Snapshot
	seq    int
	closed bool
}

// New returns an engine with an empty previous snapshot, so the first
// render classifies everything as new.
func New(acc accessor.Accessor, sink Sink, opts Options) (*Engine, error) {
	if accessor.IsAbsent(acc) {
		return nil, errors.New(errors.ErrCodeConfiguration, "engine: accessor is required")
	}
	if f, ok := acc.(*accessor.Funcs); ok {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	if accessor.IsAbsent(sink) {
		return nil, errors.New(errors.ErrCodeConfiguration, "engine: sink is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Name == "" {
		opts.Name = "listview"
	}
	return &Engine{
		acc:  acc,
		sink: sink,
		opts: opts,
		prev: snapshot.Empty(),
	}, nil
}

// Render is [Engine.RenderContext] with a background context.
func (e *Engine) Render() (*Diagram, error) {
	return e.RenderContext(context.Background())
}

// RenderContext walks the structure, classifies it against the previous
// render, and writes the diagram to the sink.
//
// Accessor errors are returned with code ACCESSOR_FAILURE and sink errors
// with SINK_FAILURE. In both cases the previous snapshot is kept.
func (e *Engine) RenderContext(ctx context.Context) (*Diagram, error) {
	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, e.opts.Name)

	d, err := e.render(ctx)

	var stats observability.RenderStats
	if d != nil {
		stats = observability.RenderStats{
			Nodes:         d.Nodes,
			Levels:        d.Levels,
			NewNodes:      d.Summary.NewNodes,
			ModifiedData:  d.Summary.ModifiedData,
			ModifiedEdges: d.Summary.ModifiedEdges,
			ModifiedRefs:  d.Summary.ModifiedRefs,
			Removed:       d.Summary.Removed,
			Bytes:         len(d.DOT),
		}
	}
	hooks.OnRenderComplete(ctx, e.opts.Name, stats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (e *Engine) render(ctx context.Context) (*Diagram, error) {
	if e.closed {
		return nil, errors.New(errors.ErrCodeSink, "engine %s: sink is closed", e.opts.Name)
	}

	b, err := snapshot.Take(e.acc, snapshot.Options{NewID: e.opts.NewID})
	if err != nil {
		return nil, err
	}
	cur := b.Snapshot()
	r := diff.Compute(cur, e.prev)

	d := &Diagram{
		Seq:     e.seq + 1,
		DOT:     dot.Render(b, r, e.opts.Render),
		Nodes:   b.Len(),
		Levels:  b.Levels.Len(),
		Summary: r.Summary(),
	}

	if err := e.sink.WriteDiagram(d); err != nil {
		observability.Sink().OnSinkError(ctx, e.opts.Name, err)
		return nil, errors.Wrap(errors.ErrCodeSink, err, "engine %s: write diagram %d", e.opts.Name, d.Seq)
	}
	observability.Sink().OnDiagramWritten(ctx, e.opts.Name, len(d.DOT))

	e.prev = cur
	e.seq = d.Seq
	e.opts.Logger.Debug("rendered diagram",
		"stream", e.opts.Name,
		"seq", d.Seq,
		"nodes", d.Nodes,
		"levels", d.Levels,
		"new", d.Summary.NewNodes,
		"modified", d.Summary.ModifiedData+d.Summary.ModifiedEdges+d.Summary.ModifiedRefs,
		"removed", d.Summary.Removed)
	return d, nil
}

// Previous returns the snapshot of the last successful render. It is empty
// before the first render.
func (e *Engine) Previous() *snapshot.Snapshot { return e.prev }

// Renders returns the number of successful renders.
func (e *Engine) Renders() int { return e.seq }

// Forget discards the previous snapshot so the next render draws everything
// as new.
func (e *Engine) Forget() { e.prev = snapshot.Empty() }

// Close releases the sink. Further renders fail with SINK_FAILURE. Calling
// Close more than once is a no-op.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	c, ok := e.sink.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		observability.Sink().OnSinkError(context.Background(), e.opts.Name, err)
		return errors.Wrap(errors.ErrCodeSink, err, "engine %s: close sink", e.opts.Name)
	}
	return nil
}

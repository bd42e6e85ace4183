package transcript

import (
	"bufio"
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/listview/pkg/engine"
	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/render/dot"
)

// DefaultTitle heads a transcript when [Options.Title] is empty.
const DefaultTitle = "LinkedList operation transcript"

// Options configures a [Document].
type Options struct {
	Title string

	// InlineSVG embeds Graphviz SVG output instead of DOT laid out by
	// d3-graphviz in the browser.
	InlineSVG bool

	// NewColor and ModifiedColor are named in the legend. A legend is only
	// written when Legend is set.
	Legend        bool
	NewColor      string
	ModifiedColor string

	// Now and NewID replace the clock and the diagram element ID generator.
	Now   func() time.Time
	NewID func() string
}

// Document is an HTML transcript written to an underlying writer.
type Document struct {
	w      *bufio.Writer
	closer io.Closer
	opts   Options
	closed bool
}

// NewDocument writes the preamble to w and returns the document.
func NewDocument(w io.Writer, opts Options) (*Document, error) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.NewColor == "" {
		opts.NewColor = dot.DefaultNewColor
	}
	if opts.ModifiedColor == "" {
		opts.ModifiedColor = dot.DefaultModifiedColor
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	d := &Document{w: bufio.NewWriter(w), opts: opts}
	if err := d.preamble(); err != nil {
		return nil, err
	}
	return d, nil
}

// Create creates or truncates path and writes a transcript to it. Close
// closes the file.
func Create(path string, opts Options) (*Document, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSink, err, "create transcript")
	}
	d, err := NewDocument(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	d.closer = f
	return d, nil
}

func (d *Document) preamble() error {
	ts := d.opts.Now().Format(TimestampFormat)
	title := html.EscapeString(d.opts.Title)

	fmt.Fprintf(d.w, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(d.w, "<title>%s at %s</title>\n", title, ts)
	d.w.WriteString("<style>html, body { font-family: sans-serif; }</style>\n")
	d.w.WriteString("</head>\n<body>\n")
	if !d.opts.InlineSVG {
		d.w.WriteString("<script src=\"https://d3js.org/d3.v4.min.js\"></script>\n")
		d.w.WriteString("<script src=\"https://unpkg.com/viz.js@1.8.0/viz.js\"></script>\n")
		d.w.WriteString("<script src=\"https://unpkg.com/d3-graphviz@0.1.2/build/d3-graphviz.js\"></script>\n")
	}
	fmt.Fprintf(d.w, "<h1>%s</h1>\n", title)
	fmt.Fprintf(d.w, "<h3>Time generated: %s</h3>\n", ts)
	if d.opts.Legend {
		d.legend("added", d.opts.NewColor)
		d.legend("modified", d.opts.ModifiedColor)
	}
	d.w.WriteString("<hr/>\n")
	return d.flush("write preamble")
}

func (d *Document) legend(what, color string) {
	c := html.EscapeString(color)
	fmt.Fprintf(d.w, "<p>Elements highlighted in <span style=\"font-weight: 600; color: %s;\">%s</span> were "+
		"<strong>%s</strong> as a result of the last operation.</p>\n", c, c, what)
}

// Operation writes the heading for op.
func (d *Document) Operation(op Operation) error {
	if d.closed {
		return errors.New(errors.ErrCodeSink, "transcript is closed")
	}
	if op.Time.IsZero() {
		op.Time = d.opts.Now()
	}
	tag := "h4"
	if op.WithDiagram {
		tag = "h2"
	}
	fmt.Fprintf(d.w, "<%s><code>%s</code> at %s from <code>%s</code></%s>\n",
		tag, html.EscapeString(op.Name), op.Time.Format(TimestampFormat),
		html.EscapeString(op.Caller.String()), tag)
	return d.flush("write operation")
}

// WriteDiagram embeds dg below the last heading.
func (d *Document) WriteDiagram(dg *engine.Diagram) error {
	if d.closed {
		return errors.New(errors.ErrCodeSink, "transcript is closed")
	}
	id := d.opts.NewID()

	if d.opts.InlineSVG {
		svg, err := dot.RenderSVG(context.Background(), dg.DOT)
		if err != nil {
			return errors.Wrap(errors.ErrCodeSink, err, "lay out diagram %d", dg.Seq)
		}
		fmt.Fprintf(d.w, "<div id=\"%s\">\n", id)
		d.w.Write(svg)
		d.w.WriteString("\n</div>\n")
		return d.flush("write diagram")
	}

	fmt.Fprintf(d.w, "<div id=\"%s\"></div>\n<script>\n", id)
	fmt.Fprintf(d.w, "d3.select('[id=\"%s\"]').graphviz().engine('dot').renderDot(`\n", id)
	d.w.WriteString(escapeTemplate(dg.DOT))
	d.w.WriteString("`);\n</script>\n")
	return d.flush("write diagram")
}

// Close writes the postamble and closes the underlying file, if any.
// Calling Close more than once is a no-op.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.w.WriteString("<hr/>\n<p>This report was generated by <code>listview</code>.</p>\n</body>\n</html>\n")
	err := d.flush("write postamble")
	if d.closer != nil {
		if cerr := d.closer.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeSink, cerr, "close transcript")
		}
	}
	return err
}

func (d *Document) flush(what string) error {
	if err := d.w.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeSink, err, "%s", what)
	}
	return nil
}

// templateEscaper makes DOT source safe inside a JavaScript template literal
// that is itself inside a script element.
var templateEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"${", `\${`,
	"</", `<\/`,
)

func escapeTemplate(s string) string { return templateEscaper.Replace(s) }

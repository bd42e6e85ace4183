package dot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/listview/pkg/diff"
	"github.com/matzehuels/listview/pkg/snapshot"
)

const (
	// DefaultNewColor highlights nodes and edges added since the last render.
	DefaultNewColor = "blue"
	// DefaultModifiedColor highlights data and edges changed since the last render.
	DefaultModifiedColor = "red"

	nodePrefix = "__NODE_"
	headerNode = "__HEADER_NAME"
	tailNode   = "__TAIL_NAME"
	anchorNode = "__DUMMY_"
)

// Options configures diagram generation.
type Options struct {
	// Highlight colors new and modified elements. When false every element
	// is drawn in the default color.
	Highlight bool

	// NewColor and ModifiedColor are Graphviz color names or "#rrggbb"
	// values. Empty values fall back to the defaults.
	NewColor      string
	ModifiedColor string

	// OrderingEdges chains the per-level anchors with invisible edges so
	// levels are laid out left to right in rank order.
	OrderingEdges bool
}

// DefaultOptions returns highlighting on with the default colors.
func DefaultOptions() Options {
	return Options{
		Highlight:     true,
		NewColor:      DefaultNewColor,
		ModifiedColor: DefaultModifiedColor,
		OrderingEdges: true,
	}
}

// Render converts a build and its classification to Graphviz DOT. A nil
// result renders every element unchanged.
//
// Nodes are emitted one rank=same group per level in ascending rank order,
// each record labeled {<prev>|<data> value|<next>}. Edges follow the same
// level order so the output is deterministic for a given build.
func Render(b *snapshot.Build, r *diff.Result, opts Options) string {
	w := &writer{b: b, r: r, opts: opts}
	if w.opts.NewColor == "" {
		w.opts.NewColor = DefaultNewColor
	}
	if w.opts.ModifiedColor == "" {
		w.opts.ModifiedColor = DefaultModifiedColor
	}
	if r == nil {
		w.r = &diff.Result{}
	}
	return w.render()
}

type writer struct {
	buf  bytes.Buffer
	b    *snapshot.Build
	r    *diff.Result
	opts Options
}

func (w *writer) render() string {
	w.buf.WriteString("strict digraph {\n")
	w.buf.WriteString("  node[shape=record,penwidth=1.5];\n")
	w.buf.WriteString("  edge[penwidth=2];\n")
	w.buf.WriteString("  rankdir=LR;\n")
	w.buf.WriteString("  bgcolor=transparent;\n")
	w.buf.WriteString("  splines=true;\n")
	w.buf.WriteString("  ordering=out;\n")

	w.sentinel(headerNode, w.b.HeadName)
	if w.b.HasTail {
		w.sentinel(tailNode, w.b.TailName)
	}
	w.levels()
	w.references()

	w.buf.WriteString("  edge[tailclip=false,arrowtail=dot,dir=both];\n")
	for _, n := range w.b.Levels.Nodes() {
		w.edges(n)
	}
	if w.opts.OrderingEdges && w.b.Levels.Len() > 1 {
		w.buf.WriteString("  " + anchorNode + "0")
		for i := 1; i < w.b.Levels.Len(); i++ {
			fmt.Fprintf(&w.buf, " -> %s%d", anchorNode, i)
		}
		w.buf.WriteString(" [style=invis];\n")
	}

	w.buf.WriteString("}\n")
	return w.buf.String()
}

func (w *writer) sentinel(id, label string) {
	fmt.Fprintf(&w.buf, "  %s[style=filled,fillcolor=black,fontcolor=white,fontname=monospace,shape=ellipse,label=\"%s\"];\n",
		id, escapeString(label))
}

func (w *writer) levels() {
	for i := range w.b.Levels.Len() {
		fmt.Fprintf(&w.buf, "  {rank=same; %s%d[shape=none,label=\"\",height=0,width=0]; ", anchorNode, i)
		for _, n := range w.b.Levels.Level(i) {
			w.node(n)
		}
		w.buf.WriteString("}\n")
	}
}

func (w *writer) node(n *snapshot.GraphNode) {
	d := w.r.Node(n.Base)
	label := "null"
	if !n.IsNull() {
		label = "{<prev>|<data> " + escapeRecord(n.Label) + "|<next>}"
	}
	attrs := []string{`label="` + label + `"`}
	attrs = w.appendColor(attrs, "color", d.Node)
	attrs = w.appendColor(attrs, "fontcolor", d.Data)
	fmt.Fprintf(&w.buf, "%s%s[%s]; ", nodePrefix, n.ID, strings.Join(attrs, ","))
}

// references draws the header and trailer edges. An absent target is drawn
// as a distinct empty-set marker rather than omitted.
func (w *writer) references() {
	if w.b.Head == nil {
		w.absent(headerNode, w.r.Head)
	} else {
		attrs := w.appendColor(nil, "color", w.r.Head)
		fmt.Fprintf(&w.buf, "  %s -> %s%s [%s];\n", headerNode, nodePrefix, w.b.Head.ID, strings.Join(attrs, ","))
	}
	if !w.b.HasTail {
		return
	}
	if w.b.Tail == nil {
		w.absent(tailNode, w.r.Tail)
	} else {
		attrs := w.appendColor([]string{"dir=back"}, "color", w.r.Tail)
		fmt.Fprintf(&w.buf, "  %s%s -> %s [%s];\n", nodePrefix, w.b.Tail.ID, tailNode, strings.Join(attrs, ","))
	}
}

func (w *writer) absent(sentinel string, s diff.Status) {
	fmt.Fprintf(&w.buf, "  %s_NULL [shape=circle,label=<<B>∅</B>>];\n", sentinel)
	attrs := w.appendColor(nil, "color", s)
	fmt.Fprintf(&w.buf, "  %s -> %s_NULL [%s];\n", sentinel, sentinel, strings.Join(attrs, ","))
}

// edges draws next before prev so rankdir ordering is preserved. Edges that
// touch the header node do not constrain the layout, which keeps circular
// lists readable.
func (w *writer) edges(n *snapshot.GraphNode) {
	d := w.r.Node(n.Base)
	if next := w.b.Lookup(n.Next); next != nil {
		w.edge(n, next, "next", "nw", d.Next)
	}
	if prev := w.b.Lookup(n.Prev); prev != nil {
		w.edge(n, prev, "prev", "se", d.Prev)
	}
}

func (w *writer) edge(from, to *snapshot.GraphNode, port, compass string, s diff.Status) {
	attrs := w.appendColor(nil, "color", s)
	if w.b.IsHeader(from.Base) || w.b.IsHeader(to.Base) {
		attrs = append(attrs, "constraint=false")
	}
	fmt.Fprintf(&w.buf, "  %s%s:%s:c -> %s%s:%s [%s];\n",
		nodePrefix, from.ID, port, nodePrefix, to.ID, compass, strings.Join(attrs, ","))
}

func (w *writer) appendColor(attrs []string, name string, s diff.Status) []string {
	if !w.opts.Highlight {
		return attrs
	}
	switch s {
	case diff.New:
		return append(attrs, name+"="+quoteColor(w.opts.NewColor))
	case diff.Modified:
		return append(attrs, name+"="+quoteColor(w.opts.ModifiedColor))
	}
	return attrs
}

// quoteColor quotes colors that are not plain DOT identifiers, such as
// "#ff0000".
func quoteColor(c string) string {
	for _, r := range c {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return `"` + escapeString(c) + `"`
		}
	}
	return c
}

var (
	stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	recordEscaper = strings.NewReplacer(
		`\`, `\\`, `"`, `\"`, "\n", `\n`,
		`{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
	)
)

func escapeString(s string) string { return stringEscaper.Replace(s) }

// escapeRecord escapes text placed in a record field so that braces, bars
// and angle brackets are drawn literally.
func escapeRecord(s string) string { return recordEscaper.Replace(s) }

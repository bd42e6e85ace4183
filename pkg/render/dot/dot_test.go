package dot

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/listview/pkg/accessor"
	"github.com/matzehuels/listview/pkg/diff"
	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/list"
	"github.com/matzehuels/listview/pkg/snapshot"
)

func seqIDs() func() string {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("n%d", i)
	}
}

// renderPair renders acc after a previous snapshot prev and returns the DOT
// and the new snapshot.
func renderPair(t *testing.T, acc accessor.Accessor, prev *snapshot.Snapshot, opts Options) (string, *snapshot.Snapshot) {
	t.Helper()
	b, err := snapshot.Take(acc, snapshot.Options{NewID: seqIDs()})
	if err != nil {
		t.Fatalf("Take() error: %v", err)
	}
	r := diff.Compute(b.Snapshot(), prev)
	return Render(b, r, opts), b.Snapshot()
}

func TestRenderSingleNode(t *testing.T) {
	got, _ := renderPair(t, list.New("A").Accessor(), nil, DefaultOptions())
	want := `strict digraph {
  node[shape=record,penwidth=1.5];
  edge[penwidth=2];
  rankdir=LR;
  bgcolor=transparent;
  splines=true;
  ordering=out;
  __HEADER_NAME[style=filled,fillcolor=black,fontcolor=white,fontname=monospace,shape=ellipse,label="first"];
  __TAIL_NAME[style=filled,fillcolor=black,fontcolor=white,fontname=monospace,shape=ellipse,label="last"];
  {rank=same; __DUMMY_0[shape=none,label="",height=0,width=0]; __NODE_n1[label="{<prev>|<data> A|<next>}",color=blue,fontcolor=blue]; }
  __HEADER_NAME -> __NODE_n1 [color=red];
  __NODE_n1 -> __TAIL_NAME [dir=back,color=red];
  edge[tailclip=false,arrowtail=dot,dir=both];
}
`
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderUnchangedHasNoColors(t *testing.T) {
	acc := list.New("A", "B", "C").Accessor()
	_, prev := renderPair(t, acc, nil, DefaultOptions())
	got, _ := renderPair(t, acc, prev, DefaultOptions())
	if strings.Contains(got, "color=blue") || strings.Contains(got, "color=red") {
		t.Errorf("unchanged render should carry no highlight:\n%s", got)
	}
}

func TestRenderEdges(t *testing.T) {
	got, _ := renderPair(t, list.New("A", "B").Accessor(), nil, DefaultOptions())
	for _, want := range []string{
		"  __NODE_n1:next:c -> __NODE_n2:nw [color=blue,constraint=false];\n",
		"  __NODE_n2:prev:c -> __NODE_n1:se [color=blue,constraint=false];\n",
		"  __DUMMY_0 -> __DUMMY_1 [style=invis];\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in\n%s", want, got)
		}
	}
	// Edges are emitted after the dir=both default so they get dotted tails.
	if strings.Index(got, "dir=both") > strings.Index(got, ":next:c") {
		t.Error("edge defaults must precede node edges")
	}
}

func TestRenderEdgesAwayFromHeaderAreConstrained(t *testing.T) {
	got, _ := renderPair(t, list.New("A", "B", "C").Accessor(), nil, DefaultOptions())
	if !strings.Contains(got, "  __NODE_n2:next:c -> __NODE_n3:nw [color=blue];\n") {
		t.Errorf("B -> C edge should not be unconstrained:\n%s", got)
	}
}

func TestRenderAbsentReferences(t *testing.T) {
	got, _ := renderPair(t, list.New[string]().Accessor(), nil, DefaultOptions())
	for _, want := range []string{
		"  __HEADER_NAME_NULL [shape=circle,label=<<B>∅</B>>];\n",
		"  __HEADER_NAME -> __HEADER_NAME_NULL [];\n",
		"  __TAIL_NAME -> __TAIL_NAME_NULL [];\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() missing %q in\n%s", want, got)
		}
	}
	if strings.Contains(got, "rank=same") {
		t.Error("empty list should have no levels")
	}
}

func TestRenderAbsentAfterPresentIsModified(t *testing.T) {
	l := list.New("A")
	_, prev := renderPair(t, l.Accessor(), nil, DefaultOptions())
	l.MakeEmpty()
	got, _ := renderPair(t, l.Accessor(), prev, DefaultOptions())
	if !strings.Contains(got, "  __HEADER_NAME -> __HEADER_NAME_NULL [color=red];\n") {
		t.Errorf("header losing its target should be highlighted:\n%s", got)
	}
}

func TestRenderRingHasNoTrailer(t *testing.T) {
	got, _ := renderPair(t, list.NewRing("A", "B").Accessor(), nil, DefaultOptions())
	if strings.Contains(got, tailNode) {
		t.Errorf("ring diagram should not draw a trailer:\n%s", got)
	}
	if !strings.Contains(got, `label="head"`) {
		t.Errorf("ring header should be labeled head:\n%s", got)
	}
}

func TestRenderNoHighlight(t *testing.T) {
	got, _ := renderPair(t, list.New("A", "B").Accessor(), nil, Options{})
	if strings.Contains(got, "color=blue") || strings.Contains(got, "color=red") {
		t.Errorf("Highlight=false should not color anything:\n%s", got)
	}
	if strings.Contains(got, "style=invis") {
		t.Error("OrderingEdges=false should omit the anchor chain")
	}
}

func TestRenderCustomColors(t *testing.T) {
	opts := Options{Highlight: true, NewColor: "#00ff00", ModifiedColor: "orange"}
	got, _ := renderPair(t, list.New("A").Accessor(), nil, opts)
	if !strings.Contains(got, `color="#00ff00"`) || !strings.Contains(got, "color=orange") {
		t.Errorf("custom colors not applied:\n%s", got)
	}
}

func TestRenderNilResult(t *testing.T) {
	b, err := snapshot.Take(list.New("A").Accessor(), snapshot.Options{NewID: seqIDs()})
	if err != nil {
		t.Fatal(err)
	}
	got := Render(b, nil, DefaultOptions())
	if strings.Contains(got, "color=blue") || strings.Contains(got, "color=red") {
		t.Errorf("nil result should render unchanged:\n%s", got)
	}
}

func TestRenderNullNode(t *testing.T) {
	type cell struct {
		prev, next *cell
		data       any
	}
	null := &cell{}
	acc := &accessor.Funcs{
		HeadFunc: func() (accessor.Node, error) { return null, nil },
		PrevFunc: func(accessor.Node) (accessor.Node, error) { return nil, nil },
		DataFunc: func(accessor.Node) (any, error) { return nil, nil },
		NextFunc: func(accessor.Node) (accessor.Node, error) { return nil, nil },
	}
	got, _ := renderPair(t, acc, nil, Options{})
	if !strings.Contains(got, `__NODE_n1[label="null"]`) {
		t.Errorf("null node should use the bare null label:\n%s", got)
	}
}

func TestEscapeRecord(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{"{a|b}", `\{a\|b\}`},
		{"<tag>", `\<tag\>`},
		{`back\slash`, `back\\slash`},
		{"two\nlines", `two\nlines`},
	}
	for _, tt := range tests {
		if got := escapeRecord(tt.in); got != tt.want {
			t.Errorf("escapeRecord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderIsAcceptedByGraphviz(t *testing.T) {
	tricky := list.New(`"quoted"`, "{braces}", "a|b", "<html>", `\`)
	tests := []struct {
		name string
		acc  accessor.Accessor
	}{
		{"list", list.New(1, 2, 3).Accessor()},
		{"ring", list.NewRing("x", "y", "z").Accessor()},
		{"empty", list.New[int]().Accessor()},
		{"escaping", tricky.Accessor()},
	}
	ctx := context.Background()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, _ := renderPair(t, tt.acc, nil, DefaultOptions())
			if err := Validate(ctx, src); err != nil {
				t.Fatalf("Validate() error: %v\n%s", err, src)
			}
			svg, err := RenderSVG(ctx, src)
			if err != nil {
				t.Fatalf("RenderSVG() error: %v", err)
			}
			if !strings.Contains(string(svg), "<svg") {
				t.Error("RenderSVG() output is not SVG")
			}
		})
	}
}

func TestExportErrorCodes(t *testing.T) {
	valid := "digraph g { a -> b }"
	tests := []struct {
		name   string
		src    string
		format Format
		want   errors.Code
	}{
		{"malformed DOT", "digraph g { a -> ", FormatSVG, errors.ErrCodeInvalidFormat},
		{"unsupported format", valid, Format("pdf"), errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Export(context.Background(), tt.src, tt.format)
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("Export() code = %q, want %q (err %v)", got, tt.want, err)
			}
		})
	}
	for _, f := range []Format{FormatSVG, FormatPNG, FormatJPG, FormatDOT} {
		if _, err := Export(context.Background(), valid, f); err != nil {
			t.Errorf("Export(%s) error: %v", f, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"svg", "png", "jpg", "dot"} {
		if f, err := ParseFormat(name); err != nil || string(f) != name {
			t.Errorf("ParseFormat(%q) = %q, %v", name, f, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("ParseFormat(pdf) should fail")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.00 50.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
}

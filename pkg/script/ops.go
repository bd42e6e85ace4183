package script

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/list"
	"github.com/matzehuels/listview/pkg/listview"
	"github.com/matzehuels/listview/pkg/transcript"
)

type argKind int

const (
	argPos  argKind = iota // integer position
	argItem                // list element
	argAny                 // position or element
)

func (k argKind) String() string {
	switch k {
	case argPos:
		return "position"
	case argItem:
		return "item"
	default:
		return "position or item"
	}
}

// signature describes the arguments a call accepts. Arguments past
// len(params)-optional may be omitted; a variadic call repeats its last
// parameter.
type signature struct {
	params   []argKind
	optional int
	variadic bool
	run      func(v *listview.View[string], args []any) error
}

var calls = map[string]signature{
	"add":      {params: []argKind{argItem}, run: func(v *listview.View[string], a []any) error { return v.Add(item(a[0])) }},
	"addFirst": {params: []argKind{argItem}, run: func(v *listview.View[string], a []any) error { return v.AddFirst(item(a[0])) }},
	"addLast":  {params: []argKind{argItem}, run: func(v *listview.View[string], a []any) error { return v.AddLast(item(a[0])) }},
	"insert": {params: []argKind{argPos, argItem}, run: func(v *listview.View[string], a []any) error {
		return v.Insert(pos(a[0]), item(a[1]))
	}},
	"set": {params: []argKind{argPos, argItem}, run: func(v *listview.View[string], a []any) error {
		_, err := v.Set(pos(a[0]), item(a[1]))
		return err
	}},
	"remove": {params: []argKind{argAny}, run: func(v *listview.View[string], a []any) error {
		if isPos(a[0]) {
			_, err := v.RemoveAt(pos(a[0]))
			return err
		}
		_, err := v.Remove(item(a[0]))
		return err
	}},
	"removeFirst": {run: func(v *listview.View[string], _ []any) error {
		_, err := v.RemoveFirst()
		return err
	}},
	"removeLast": {run: func(v *listview.View[string], _ []any) error {
		_, err := v.RemoveLast()
		return err
	}},
	"removeRange": {params: []argKind{argPos, argPos}, run: func(v *listview.View[string], a []any) error {
		return v.RemoveRange(pos(a[0]), pos(a[1]))
	}},
	"makeEmpty": {run: func(v *listview.View[string], _ []any) error { return v.MakeEmpty() }},

	"size": {run: func(v *listview.View[string], _ []any) error {
		_ = v.Size()
		return v.Err()
	}},
	"get": {params: []argKind{argPos}, run: func(v *listview.View[string], a []any) error {
		_, err := v.Get(pos(a[0]))
		return err
	}},
	"indexOf": {params: []argKind{argItem, argPos}, optional: 1, run: func(v *listview.View[string], a []any) error {
		if len(a) == 2 {
			_ = v.IndexOfFrom(item(a[0]), pos(a[1]))
		} else {
			_ = v.IndexOf(item(a[0]))
		}
		return v.Err()
	}},
	"getSubList": {params: []argKind{argPos, argPos}, run: func(v *listview.View[string], a []any) error {
		_, err := v.SubList(pos(a[0]), pos(a[1]))
		return err
	}},
	"equals": {params: []argKind{argItem}, optional: 1, variadic: true, run: func(v *listview.View[string], a []any) error {
		other := list.New[string]()
		for _, x := range a {
			other.Add(item(x))
		}
		_ = v.Equal(other)
		return v.Err()
	}},
	"toString": {run: func(v *listview.View[string], _ []any) error {
		_ = v.String()
		return v.Err()
	}},
	"iterator": {run: func(v *listview.View[string], _ []any) error {
		for range v.All() {
		}
		return v.Err()
	}},
}

// Calls returns the supported call names in sorted order.
func Calls() []string {
	names := make([]string, 0, len(calls))
	for name := range calls {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Usage describes the arguments of a call, e.g. "indexOf(item [, position])".
// It returns "" for unknown calls.
func Usage(name string) string {
	sig, ok := calls[name]
	if !ok {
		return ""
	}
	required := len(sig.params) - sig.optional
	var b strings.Builder
	b.WriteString(name + "(")
	for i, k := range sig.params {
		sep := ""
		if i > 0 {
			sep = ", "
		}
		switch {
		case i >= required && i > 0:
			fmt.Fprintf(&b, " [%s%s]", sep, k)
		case i >= required:
			fmt.Fprintf(&b, "[%s]", k)
		default:
			b.WriteString(sep + k.String())
		}
	}
	if sig.variadic {
		b.WriteString("...")
	}
	b.WriteString(")")
	return b.String()
}

func (o Op) validate() error {
	sig, ok := calls[o.Call]
	if !ok {
		return fmt.Errorf("unknown call %q (want one of %s)", o.Call, strings.Join(Calls(), ", "))
	}
	lo, hi := len(sig.params)-sig.optional, len(sig.params)
	if n := len(o.Args); n < lo || (!sig.variadic && n > hi) {
		return fmt.Errorf("%s takes %s, got %d", o.Call, arity(lo, hi, sig.variadic), n)
	}
	for i, a := range o.Args {
		k := sig.params[min(i, len(sig.params)-1)]
		if !accepts(k, a) {
			return fmt.Errorf("%s argument %d: want %s, got %T", o.Call, i+1, k, a)
		}
	}
	return nil
}

func arity(lo, hi int, variadic bool) string {
	switch {
	case variadic:
		return fmt.Sprintf("at least %d arguments", lo)
	case lo == hi:
		return fmt.Sprintf("%d arguments", lo)
	default:
		return fmt.Sprintf("%d to %d arguments", lo, hi)
	}
}

func accepts(k argKind, a any) bool {
	switch k {
	case argPos:
		return isPos(a)
	case argItem:
		return isItem(a)
	default:
		return isPos(a) || isItem(a)
	}
}

func isPos(a any) bool {
	switch a.(type) {
	case int64, int:
		return true
	}
	return false
}

func isItem(a any) bool {
	switch a.(type) {
	case string, int64, int, float64, bool:
		return true
	}
	return false
}

func pos(a any) int {
	switch n := a.(type) {
	case int64:
		return int(n)
	case int:
		return n
	}
	return -1
}

func item(a any) string { return fmt.Sprint(a) }

// Apply runs every op of s against v, stopping at the first failure. Each
// transcript entry is attributed to the op's line in s.Path.
func Apply(v *listview.View[string], s *Script) error {
	file := s.Path
	if file == "" {
		file = "script"
	}
	for i, op := range s.Ops {
		sig, ok := calls[op.Call]
		if !ok {
			return errors.New(errors.ErrCodeInvalidScript, "op %d: unknown call %q", i+1, op.Call)
		}
		v.At(transcript.Caller{File: file, Line: op.Line})
		if err := sig.run(v, op.Args); err != nil {
			if errors.GetCode(err) != "" {
				return err
			}
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "op %d%s %s", i+1, op.location(), op)
		}
	}
	return nil
}

// Run creates the script's list, wraps it in a view writing to t, and applies
// the script.
func Run(s *Script, t listview.Transcript, opts listview.Options) (*listview.View[string], error) {
	v, err := listview.New(s.NewList(), t, opts)
	if err != nil {
		return nil, err
	}
	if err := Apply(v, s); err != nil {
		return v, err
	}
	return v, nil
}

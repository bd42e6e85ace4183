package snapshot

import (
	"fmt"

	"github.com/matzehuels/listview/pkg/accessor"
)

// cell is a hand-built node for structures the list package cannot produce.
type cell struct {
	prev *cell
	data any
	next *cell
}

func link(cells ...*cell) {
	for i := 0; i+1 < len(cells); i++ {
		cells[i].next = cells[i+1]
		cells[i+1].prev = cells[i]
	}
}

func cellAccessor(head, tail *cell, hasTail bool) *accessor.Funcs {
	read := func(f func(*cell) any) func(accessor.Node) (any, error) {
		return func(n accessor.Node) (any, error) {
			c, ok := n.(*cell)
			if !ok {
				return nil, fmt.Errorf("unexpected node %T", n)
			}
			return f(c), nil
		}
	}
	fns := &accessor.Funcs{
		HeadFunc: func() (accessor.Node, error) { return head, nil },
		PrevFunc: read(func(c *cell) any { return c.prev }),
		DataFunc: read(func(c *cell) any { return c.data }),
		NextFunc: read(func(c *cell) any { return c.next }),
	}
	if hasTail {
		fns.TailFunc = func() (accessor.Node, error) { return tail, nil }
	}
	return fns
}

// seqIDs returns a deterministic ID generator.
func seqIDs() func() string {
	i := 0
	return func() string {
		i++
		return fmt.Sprintf("n%d", i)
	}
}

func labels(nodes []*GraphNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label
	}
	return out
}

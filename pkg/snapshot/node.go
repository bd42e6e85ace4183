package snapshot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/listview/pkg/accessor"
)

// GraphNode is the engine's copy of one caller node, valid for one render.
type GraphNode struct {
	ID    string        // DOT-safe identifier, unique per render
	Base  accessor.Node // caller handle this node was copied from
	Prev  accessor.Node // prev handle at discovery time (nil if absent)
	Data  any           // payload at discovery time (nil if absent)
	Label string        // textual form of Data captured at discovery time
	Next  accessor.Node // next handle at discovery time (nil if absent)
	Rank  int           // display level assigned during the walk
}

// IsNull reports whether prev, data and next are all absent, i.e. the node
// is a bare placeholder.
func (n *GraphNode) IsNull() bool {
	return n.Prev == nil && n.Data == nil && n.Next == nil
}

// HasData reports whether the node carried a payload.
func (n *GraphNode) HasData() bool { return n.Data != nil }

// NewID returns a fresh identifier derived from a random UUID. Hyphens are
// removed so the result is a valid DOT identifier once prefixed.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func dataLabel(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

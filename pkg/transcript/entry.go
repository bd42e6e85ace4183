package transcript

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/matzehuels/listview/pkg/engine"
)

// TimestampFormat is the layout of every timestamp in a transcript.
const TimestampFormat = "2006-01-02 15:04:05.000"

// Caller is the source location that invoked an operation.
type Caller struct {
	File string
	Line int
}

// CallerAt returns the location skip frames above its own caller, as with
// [runtime.Caller]. It returns the zero Caller when the stack is too shallow.
func CallerAt(skip int) Caller {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{}
	}
	return Caller{File: file, Line: line}
}

// String formats the location as "file.go:42" using the base file name.
func (c Caller) String() string {
	if c.File == "" {
		return "unknown:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(c.File), c.Line)
}

// Operation is one recorded call on the observed list.
type Operation struct {
	Name        string    // e.g. "add(A)"
	Caller      Caller    // where the operation was called from
	Time        time.Time // zero means now
	WithDiagram bool      // a diagram follows this operation
}

// Entry is an operation together with the diagram rendered for it, if any.
type Entry struct {
	Operation
	Diagram *engine.Diagram
}

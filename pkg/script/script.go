package script

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/listview/pkg/errors"
	"github.com/matzehuels/listview/pkg/list"
)

// Kind selects the list implementation a script runs against.
type Kind string

const (
	KindLinked   Kind = "linked"
	KindCircular Kind = "circular"
)

// Script is a parsed operation script.
type Script struct {
	Kind  Kind   `toml:"kind"`
	Title string `toml:"title"`
	Ops   []Op   `toml:"op"`

	// Path is the file the script was loaded from, if any.
	Path string `toml:"-"`
}

// Op is one call with its arguments.
type Op struct {
	Call string `toml:"call"`
	Args []any  `toml:"args"`

	// Line is the 1-based line of the op's [[op]] header, or 0 if unknown.
	Line int `toml:"-"`
}

// String formats the op the way it appears in a transcript, e.g.
// "insert(0, B)".
func (o Op) String() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = fmt.Sprint(a)
	}
	return o.Call + "(" + strings.Join(parts, ", ") + ")"
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read script %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	s.Path = path
	return s, nil
}

// Parse decodes and validates a script. An empty kind means linked.
func Parse(data []byte) (*Script, error) {
	var s Script
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown key %q", und[0].String())
	}
	if s.Kind == "" {
		s.Kind = KindLinked
	}
	if lines := opLines(data); len(lines) == len(s.Ops) {
		for i := range s.Ops {
			s.Ops[i].Line = lines[i]
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// opLines returns the line numbers of every [[op]] header. A line may be as
// long as the whole script. On a scan error it returns nil, leaving ops
// without line numbers.
func opLines(data []byte) []int {
	var lines []int
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), len(data)+1)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if strings.ReplaceAll(line, " ", "") == "[[op]]" {
			lines = append(lines, n)
		}
	}
	if sc.Err() != nil {
		return nil
	}
	return lines
}

// Validate checks the kind and every op's name and arguments.
func (s *Script) Validate() error {
	switch s.Kind {
	case KindLinked, KindCircular:
	default:
		return errors.New(errors.ErrCodeInvalidScript, "unknown kind %q (want linked or circular)", s.Kind)
	}
	for i, op := range s.Ops {
		if err := op.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScript, err, "op %d%s", i+1, op.location())
		}
	}
	return nil
}

func (o Op) location() string {
	if o.Line == 0 {
		return ""
	}
	return fmt.Sprintf(" (line %d)", o.Line)
}

// NewList returns an empty list of the script's kind.
func (s *Script) NewList() list.Interface[string] {
	if s.Kind == KindCircular {
		return list.NewRing[string]()
	}
	return list.New[string]()
}

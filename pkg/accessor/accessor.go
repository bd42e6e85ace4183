package accessor

import (
	"reflect"

	"github.com/matzehuels/listview/pkg/errors"
)

// Node is an opaque handle to one node of the caller's structure.
// Handles are compared by identity (==) and used as map keys.
type Node = any

// Accessor exposes the fields of a linked structure to the diagram engine.
//
// Head and Tail return nil when the reference is absent. HasTail reports
// whether the structure has a trailer reference at all; when it does not, the
// structure is assumed to be potentially circular and no trailer sentinel is
// drawn. HeadName and TailName are display labels for the sentinels.
type Accessor interface {
	Head() (Node, error)
	Tail() (Node, error)
	HasTail() bool

	Prev(n Node) (Node, error)
	Data(n Node) (any, error)
	Next(n Node) (Node, error)

	HeadName() string
	TailName() string
}

// IsAbsent reports whether v is nil or a typed nil (pointer, map, slice,
// channel, function, or interface).
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// normalize collapses typed nils to an untyped nil.
func normalize(v any) any {
	if IsAbsent(v) {
		return nil
	}
	return v
}

// Funcs adapts a set of closures to [Accessor].
//
// HeadFunc, PrevFunc, DataFunc and NextFunc are required. A nil TailFunc
// means the structure has no trailer reference.
type Funcs struct {
	HeadFunc func() (Node, error)
	TailFunc func() (Node, error)
	PrevFunc func(Node) (Node, error)
	DataFunc func(Node) (any, error)
	NextFunc func(Node) (Node, error)

	HeadLabel string
	TailLabel string
}

// Validate checks that all required closures are set.
func (f *Funcs) Validate() error {
	switch {
	case f.HeadFunc == nil:
		return errors.New(errors.ErrCodeConfiguration, "accessor: head function is required")
	case f.PrevFunc == nil:
		return errors.New(errors.ErrCodeConfiguration, "accessor: prev function is required")
	case f.DataFunc == nil:
		return errors.New(errors.ErrCodeConfiguration, "accessor: data function is required")
	case f.NextFunc == nil:
		return errors.New(errors.ErrCodeConfiguration, "accessor: next function is required")
	}
	return nil
}

func (f *Funcs) Head() (Node, error) {
	n, err := f.HeadFunc()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAccessor, err, "read %s", f.HeadName())
	}
	return normalize(n), nil
}

func (f *Funcs) Tail() (Node, error) {
	if f.TailFunc == nil {
		return nil, nil
	}
	n, err := f.TailFunc()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAccessor, err, "read %s", f.TailName())
	}
	return normalize(n), nil
}

func (f *Funcs) HasTail() bool { return f.TailFunc != nil }

func (f *Funcs) Prev(n Node) (Node, error) {
	p, err := f.PrevFunc(n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAccessor, err, "read prev")
	}
	return normalize(p), nil
}

func (f *Funcs) Data(n Node) (any, error) {
	d, err := f.DataFunc(n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAccessor, err, "read data")
	}
	return normalize(d), nil
}

func (f *Funcs) Next(n Node) (Node, error) {
	p, err := f.NextFunc(n)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAccessor, err, "read next")
	}
	return normalize(p), nil
}

func (f *Funcs) HeadName() string {
	if f.HeadLabel == "" {
		return "head"
	}
	return f.HeadLabel
}

func (f *Funcs) TailName() string {
	if f.TailLabel == "" {
		return "tail"
	}
	return f.TailLabel
}

var _ Accessor = (*Funcs)(nil)

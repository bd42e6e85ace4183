package accessor

import (
	"reflect"
	"strings"
	"unsafe"

	"github.com/matzehuels/listview/pkg/errors"
)

// Names lists the lower-case substrings used to locate fields by name.
type Names struct {
	Head []string // list field holding the first node
	Tail []string // list field holding the last node (optional)
	Prev []string // node field referencing the previous node
	Data []string // node field holding the payload
	Next []string // node field referencing the next node
}

// DefaultNames matches the common spellings of linked-list fields.
var DefaultNames = Names{
	Head: []string{"begin", "first", "front", "head", "init"},
	Tail: []string{"end", "final", "last", "tail", "trail"},
	Prev: []string{"prev"},
	Data: []string{"data"},
	Next: []string{"next"},
}

// Reflect reads a list's fields through reflection. Create one with [Discover].
type Reflect struct {
	list     reflect.Value // addressable list struct
	nodeType reflect.Type  // pointer-to-struct type of every node

	head, tail       int // field indices in the list struct; tail < 0 when absent
	prev, data, next int // field indices in the node struct

	headName, tailName string
}

// Fields describes what [Discover] located, as declared field names.
type Fields struct {
	Head, Tail       string
	Prev, Data, Next string
	NodeType         string
}

// Discover locates header, trailer, and node fields of list using [DefaultNames].
// list must be a non-nil pointer to a struct.
func Discover(list any) (*Reflect, error) {
	return DiscoverWith(list, DefaultNames)
}

// DiscoverWith is like [Discover] with custom field names.
//
// It fails with CONFIGURATION_FAILURE when no header field exists, when the
// header and trailer types differ, when the header is not a pointer to a
// struct, or when a prev, data, or next field cannot be found on that struct.
func DiscoverWith(list any, names Names) (*Reflect, error) {
	v := reflect.ValueOf(list)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, errors.New(errors.ErrCodeConfiguration, "accessor: want non-nil pointer to struct, got %T", list)
	}
	lv := v.Elem()
	lt := lv.Type()

	head := findField(lt, names.Head)
	if head < 0 {
		return nil, errors.New(errors.ErrCodeConfiguration, "accessor: unable to find header field in %s", lt)
	}
	headType := lt.Field(head).Type

	tail := findField(lt, names.Tail)
	if tail >= 0 && lt.Field(tail).Type != headType {
		return nil, errors.New(errors.ErrCodeConfiguration,
			"accessor: header %q and trailer %q must have the same type (%s vs %s)",
			lt.Field(head).Name, lt.Field(tail).Name, headType, lt.Field(tail).Type)
	}

	if headType.Kind() != reflect.Pointer || headType.Elem().Kind() != reflect.Struct {
		return nil, errors.New(errors.ErrCodeConfiguration,
			"accessor: header %q must be a pointer to a node struct, got %s", lt.Field(head).Name, headType)
	}
	nt := headType.Elem()

	r := &Reflect{
		list:     lv,
		nodeType: headType,
		head:     head,
		tail:     tail,
		headName: lt.Field(head).Name,
	}
	if tail >= 0 {
		r.tailName = lt.Field(tail).Name
	}

	for _, f := range []struct {
		dst   *int
		names []string
		role  string
	}{
		{&r.prev, names.Prev, "prev"},
		{&r.data, names.Data, "data"},
		{&r.next, names.Next, "next"},
	} {
		*f.dst = findField(nt, f.names)
		if *f.dst < 0 {
			return nil, errors.New(errors.ErrCodeConfiguration, "accessor: unable to resolve %s field on node type %s", f.role, nt)
		}
	}
	return r, nil
}

// findField returns the index of the first field whose lower-cased name
// contains any of names, or -1.
func findField(t reflect.Type, names []string) int {
	for i := range t.NumField() {
		lower := strings.ToLower(t.Field(i).Name)
		for _, name := range names {
			if strings.Contains(lower, name) {
				return i
			}
		}
	}
	return -1
}

// readable returns a view of the addressable field f that can be converted to
// an interface even when f is unexported.
func readable(f reflect.Value) reflect.Value {
	if f.CanInterface() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

func fieldValue(f reflect.Value) any {
	f = readable(f)
	switch f.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if f.IsNil() {
			return nil
		}
	}
	return f.Interface()
}

// Fields reports the declared names of the discovered fields.
func (r *Reflect) Fields() Fields {
	nt := r.nodeType.Elem()
	return Fields{
		Head:     r.headName,
		Tail:     r.tailName,
		Prev:     nt.Field(r.prev).Name,
		Data:     nt.Field(r.data).Name,
		Next:     nt.Field(r.next).Name,
		NodeType: nt.String(),
	}
}

func (r *Reflect) Head() (Node, error) {
	return fieldValue(r.list.Field(r.head)), nil
}

func (r *Reflect) Tail() (Node, error) {
	if r.tail < 0 {
		return nil, nil
	}
	return fieldValue(r.list.Field(r.tail)), nil
}

func (r *Reflect) HasTail() bool { return r.tail >= 0 }

func (r *Reflect) Prev(n Node) (Node, error) { return r.nodeField(n, r.prev, "prev") }

func (r *Reflect) Data(n Node) (any, error) { return r.nodeField(n, r.data, "data") }

func (r *Reflect) Next(n Node) (Node, error) { return r.nodeField(n, r.next, "next") }

func (r *Reflect) nodeField(n Node, idx int, role string) (any, error) {
	if n == nil {
		return nil, errors.New(errors.ErrCodeAccessor, "accessor: read %s of nil node", role)
	}
	v := reflect.ValueOf(n)
	if v.Type() != r.nodeType {
		return nil, errors.New(errors.ErrCodeAccessor, "accessor: read %s: node has type %T, want %s", role, n, r.nodeType)
	}
	if v.IsNil() {
		return nil, errors.New(errors.ErrCodeAccessor, "accessor: read %s of nil node", role)
	}
	return fieldValue(v.Elem().Field(idx)), nil
}

func (r *Reflect) HeadName() string { return r.headName }

func (r *Reflect) TailName() string { return r.tailName }

var _ Accessor = (*Reflect)(nil)

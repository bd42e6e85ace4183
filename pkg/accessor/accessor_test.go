package accessor

import (
	stderrors "errors"
	"testing"

	"github.com/matzehuels/listview/pkg/errors"
)

type testNode struct {
	prev *testNode
	data string
	next *testNode
}

func TestIsAbsent(t *testing.T) {
	var nilNode *testNode
	var nilMap map[string]int
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", nilNode, true},
		{"nil map", nilMap, true},
		{"pointer", &testNode{}, false},
		{"zero int", 0, false},
		{"empty string", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAbsent(tt.v); got != tt.want {
				t.Errorf("IsAbsent(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func funcsFor(head, tail *testNode, withTail bool) *Funcs {
	f := &Funcs{
		HeadFunc: func() (Node, error) { return head, nil },
		PrevFunc: func(n Node) (Node, error) { return n.(*testNode).prev, nil },
		DataFunc: func(n Node) (any, error) { return n.(*testNode).data, nil },
		NextFunc: func(n Node) (Node, error) { return n.(*testNode).next, nil },
	}
	if withTail {
		f.TailFunc = func() (Node, error) { return tail, nil }
	}
	return f
}

func TestFuncsNormalizesTypedNil(t *testing.T) {
	a := &testNode{data: "A"}
	f := funcsFor(a, nil, true)

	n, err := f.Head()
	if err != nil || n != Node(a) {
		t.Fatalf("Head() = %v, %v; want a", n, err)
	}

	next, err := f.Next(a)
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if next != nil {
		t.Errorf("Next() = %#v, want untyped nil", next)
	}

	tail, err := f.Tail()
	if err != nil || tail != nil {
		t.Errorf("Tail() = %#v, %v; want untyped nil", tail, err)
	}
}

func TestFuncsWithoutTail(t *testing.T) {
	f := funcsFor(nil, nil, false)
	if f.HasTail() {
		t.Error("HasTail() = true, want false")
	}
	if n, err := f.Tail(); n != nil || err != nil {
		t.Errorf("Tail() = %v, %v; want nil, nil", n, err)
	}
	if f.HeadName() != "head" || f.TailName() != "tail" {
		t.Errorf("default labels = %q/%q", f.HeadName(), f.TailName())
	}
}

func TestFuncsWrapsFailures(t *testing.T) {
	cause := stderrors.New("restricted")
	f := funcsFor(nil, nil, false)
	f.DataFunc = func(Node) (any, error) { return nil, cause }

	_, err := f.Data(&testNode{})
	if !errors.Is(err, errors.ErrCodeAccessor) {
		t.Errorf("Data() error = %v, want ACCESSOR_FAILURE", err)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Data() error should wrap the cause")
	}
}

func TestFuncsValidate(t *testing.T) {
	if err := funcsFor(nil, nil, false).Validate(); err != nil {
		t.Errorf("Validate() on complete funcs: %v", err)
	}
	f := funcsFor(nil, nil, false)
	f.NextFunc = nil
	if err := f.Validate(); !errors.Is(err, errors.ErrCodeConfiguration) {
		t.Errorf("Validate() = %v, want CONFIGURATION_FAILURE", err)
	}
}

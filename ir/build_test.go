package ir

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func names(n *Node) []string {
	var res []string
	for name := range n.All() {
		res = append(res, name)
	}
	return res
}

func TestDuplicateNameRejected(t *testing.T) {
	r := mustNew(t, ObjectType)
	checkErr(t, r.AddString(Name("a"), "x"), nil)
	checkErr(t, r.AddString(Name("a"), "y"), ErrNameDuplication)
	if r.Len() != 1 {
		t.Fatalf("len %d after rejected insert", r.Len())
	}
	v, err := r.ObjectItem("a")
	checkErr(t, err, nil)
	s, err := v.StringValue()
	checkErr(t, err, nil)
	if s != "x" {
		t.Errorf("a = %q, want x", s)
	}
}

func TestAppendToArray(t *testing.T) {
	r := mustNew(t, ArrayType)
	s, err := NewString("...")
	checkErr(t, err, nil)
	checkErr(t, r.AddItemToArray(s), nil)
	i, err := NewInt(5)
	checkErr(t, err, nil)
	checkErr(t, r.AddItemToArray(i), nil)
	sz, err := r.ArraySize()
	checkErr(t, err, nil)
	if sz != 2 {
		t.Fatalf("size %d, want 2", sz)
	}
	if s.Parent() != r || s.ParentIndex() != 0 || i.ParentIndex() != 1 {
		t.Errorf("bad parent links")
	}
}

func TestBuilderErrors(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		apply func(n *Node) error
		want  error
	}{
		{"named into array", ArrayType, func(n *Node) error { return n.AddInt(Name("a"), 1) }, ErrInvalidParameter},
		{"unnamed into object", ObjectType, func(n *Node) error { return n.AddInt(NoName, 1) }, ErrInvalidParameter},
		{"empty name is a name", ObjectType, func(n *Node) error { return n.AddInt(Name(""), 1) }, nil},
		{"nan", ArrayType, func(n *Node) error { return n.AddDouble(NoName, math.NaN()) }, ErrInvalidParameter},
		{"inf", ArrayType, func(n *Node) error { return n.AddDouble(NoName, math.Inf(-1)) }, ErrInvalidParameter},
		{"bad utf8 value", ArrayType, func(n *Node) error { return n.AddString(NoName, "\xff") }, ErrInvalidParameter},
		{"bad utf8 name", ObjectType, func(n *Node) error { return n.AddNull(Name("\xfe")) }, ErrInvalidParameter},
		{"AddObject into array", ArrayType, func(n *Node) error {
			c, _ := NewNull()
			return n.AddObject("a", c)
		}, ErrInvalidParameter},
		{"AddItemToArray into object", ObjectType, func(n *Node) error {
			c, _ := NewNull()
			return n.AddItemToArray(c)
		}, ErrInvalidParameter},
		{"nil child", ArrayType, func(n *Node) error { return n.AddItemToArray(nil) }, ErrNullArgument},
		{"self", ArrayType, func(n *Node) error { return n.AddItemToArray(n) }, ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := mustNew(t, tt.typ)
			err := tt.apply(n)
			checkErr(t, err, tt.want)
			wantLen := 0
			if tt.want == nil {
				wantLen = 1
			}
			if n.Len() != wantLen {
				t.Errorf("len %d, want %d", n.Len(), wantLen)
			}
		})
	}
}

func TestInsertIntoScalar(t *testing.T) {
	r := mustNew(t, ArrayType)
	checkErr(t, r.AddInt(NoName, 1), nil)
	c := r.Child(0)
	checkErr(t, c.AddInt(NoName, 2), ErrTypeMismatch)
	checkErr(t, c.AddInt(Name("x"), 2), ErrTypeMismatch)
	var nilNode *Node
	checkErr(t, nilNode.AddInt(NoName, 2), ErrNullArgument)
	if CodeOf(c.AddNull(NoName)) != TypeMismatch {
		t.Errorf("want TypeMismatch code")
	}
}

func TestCheckOrder(t *testing.T) {
	r := mustNew(t, ObjectType)
	checkErr(t, r.AddInt(Name("a"), 1), nil)
	// invalid payload under a duplicate name reports the payload
	checkErr(t, r.AddDouble(Name("a"), math.NaN()), ErrInvalidParameter)
	// a duplicate wins over allocation failure
	refuseAfter(t, 0)
	checkErr(t, r.AddInt(Name("a"), 2), ErrNameDuplication)
	checkErr(t, r.AddInt(Name("b"), 2), ErrOutOfMemory)
}

func TestAdoptOwnership(t *testing.T) {
	a := mustNew(t, ObjectType)
	b := mustNew(t, ObjectType)
	inner, err := a.StartArray(Name("in"))
	checkErr(t, err, nil)

	// already owned by a
	checkErr(t, b.AddObject("x", inner), ErrInvalidParameter)
	// a holds inner, so inner cannot hold a
	checkErr(t, inner.AddItemToArray(a), ErrInvalidParameter)

	c := mustNew(t, ArrayType)
	checkErr(t, b.AddObject("c", c), nil)
	if c.Parent() != b || c.ParentName() != "c" {
		t.Fatalf("c not owned by b")
	}
	if got := c.Path(); got != "$.c" {
		t.Errorf("path %q", got)
	}
	checkErr(t, a.AddObject("c", c), ErrInvalidParameter)
}

func TestAddUint(t *testing.T) {
	r := mustNew(t, ArrayType)
	checkErr(t, r.AddUint(NoName, 7), nil)
	checkErr(t, r.AddUint(NoName, math.MaxInt32+1), nil)
	if got := r.Child(0).Type(); got != IntegerType {
		t.Errorf("small uint stored as %s", got)
	}
	big := r.Child(1)
	if big.Type() != DoubleType {
		t.Fatalf("large uint stored as %s", big.Type())
	}
	f, err := big.DoubleValue()
	checkErr(t, err, nil)
	if f != math.MaxInt32+1 {
		t.Errorf("got %v", f)
	}
}

func TestInsertionOrder(t *testing.T) {
	r := mustNew(t, ObjectType)
	for _, k := range []string{"z", "a", "m", ""} {
		checkErr(t, r.AddNull(Name(k)), nil)
	}
	if diff := cmp.Diff([]string{"z", "a", "m", ""}, names(r)); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
}

func TestInsertAtomicUnderRefusal(t *testing.T) {
	for grant := 0; grant < 3; grant++ {
		r := mustNew(t, ObjectType)
		checkErr(t, r.AddInt(Name("keep"), 1), nil)
		refuseAfter(t, grant)
		err := r.AddString(Name("name"), "value")
		SetAllocator(nil)
		if err == nil {
			continue
		}
		checkErr(t, err, ErrOutOfMemory)
		if diff := cmp.Diff([]string{"keep"}, names(r)); diff != "" {
			t.Errorf("grant %d: names changed (-want +got):\n%s", grant, diff)
		}
	}
}

func TestNewRoots(t *testing.T) {
	_, err := New(StringType)
	checkErr(t, err, ErrInvalidParameter)
	_, err = NewDouble(math.Inf(1))
	checkErr(t, err, ErrInvalidParameter)
	_, err = NewString("\xc3")
	checkErr(t, err, ErrInvalidParameter)
	refuseAfter(t, 0)
	_, err = New(ArrayType)
	checkErr(t, err, ErrOutOfMemory)
}

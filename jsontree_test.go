package jsontree

import (
	"errors"
	"strings"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/parse"
)

func TestInitialize(t *testing.T) {
	t.Cleanup(func() { Initialize() })

	deep := []byte(strings.Repeat("[", 4) + strings.Repeat("]", 4))
	Initialize(WithMaxDepth(3))
	if _, err := Parse(deep, 0); !errors.Is(err, parse.ErrDepth) {
		t.Errorf("depth 3: got %v", err)
	}
	Initialize()
	if _, err := Parse(deep, 0); err != nil {
		t.Errorf("defaults: %v", err)
	}

	Initialize(WithAllocator(func(int) bool { return false }))
	if _, err := New(ir.ArrayType); ir.CodeOf(err) != ir.OutOfMemory {
		t.Errorf("refusing allocator: got %v", err)
	}
	Initialize()
	if _, err := New(ir.ArrayType); err != nil {
		t.Errorf("after reset: %v", err)
	}
}

func TestScenarios(t *testing.T) {
	r, err := New(ir.ObjectType)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.AddString(ir.Name("a"), "x"); err != nil {
		t.Fatal(err)
	}
	if err := r.AddString(ir.Name("a"), "y"); ir.CodeOf(err) != ir.NameDuplication {
		t.Errorf("got %v", err)
	}
	if s, _ := ToString(r); s != `{"a":"x"}` {
		t.Errorf("got %s", s)
	}

	buf := []byte(`{"n":1.5}`)
	if _, err := Parse(buf, len(buf)-1); ir.CodeOf(err) != ir.InvalidParameter {
		t.Errorf("short buffer: got %v", err)
	}

	d, err := Duplicate(r)
	if err != nil {
		t.Fatal(err)
	}
	Destroy(&r)
	if r != nil {
		t.Errorf("handle not cleared")
	}
	if s, _ := ToString(d); s != `{"a":"x"}` {
		t.Errorf("duplicate damaged: %s", s)
	}
}

type point struct {
	X     int      `json:"x"`
	Y     float64  `json:"y"`
	Label string   `json:"label"`
	Tags  []string `json:"tags"`
}

func TestFromGoDecode(t *testing.T) {
	in := point{X: 3, Y: 0.25, Label: "p", Tags: []string{"a", "b"}}
	n, err := FromGo(in)
	if err != nil {
		t.Fatal(err)
	}
	s, err := ToString(n)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"x":3,"y":0.25,"label":"p","tags":["a","b"]}`; s != want {
		t.Errorf("got %s, want %s", s, want)
	}
	var out point
	if err := Decode(n, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := Decode(n, &[]int{}); ir.CodeOf(err) != ir.InvalidParameter {
		t.Errorf("decode into wrong type: got %v", err)
	}
	if _, err := FromGo(func() {}); ir.CodeOf(err) != ir.InvalidParameter {
		t.Errorf("unmarshalable value: got %v", err)
	}
}

func TestRoundTripOracle(t *testing.T) {
	ins := []string{
		`{"b":[1,2,{"c":null}],"a":"x"}`,
		` [ 1.5 , 2 , -3, "" ] `,
		`{"s":"é😀"}`,
	}
	for _, in := range ins {
		n, err := Parse([]byte(in), 0)
		if err != nil {
			t.Fatalf("%s: %v", in, err)
		}
		out, err := ToString(n)
		if err != nil {
			t.Fatal(err)
		}
		if !jsonpatch.Equal([]byte(in), []byte(out)) {
			t.Errorf("%s -> %s changed the value", in, out)
		}
	}
}

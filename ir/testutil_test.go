package ir

import (
	"errors"
	"testing"
)

// refuseAfter installs an allocation hook granting n requests and refusing
// every later one. The hook is removed when the test ends.
func refuseAfter(t *testing.T, n int) {
	t.Helper()
	SetAllocator(func(int) bool {
		if n == 0 {
			return false
		}
		n--
		return true
	})
	t.Cleanup(func() { SetAllocator(nil) })
}

func mustNew(t *testing.T, typ Type) *Node {
	t.Helper()
	n, err := New(typ)
	if err != nil {
		t.Fatalf("New(%s): %v", typ, err)
	}
	return n
}

func checkErr(t *testing.T, err, want error) {
	t.Helper()
	if want == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if !errors.Is(err, want) {
		t.Fatalf("got error %v, want %v", err, want)
	}
}

// sample builds {"s":"x","i":5,"d":1.5,"b":true,"z":null,"a":[1,{"k":[]}]}.
func sample(t *testing.T) *Node {
	t.Helper()
	root := mustNew(t, ObjectType)
	checkErr(t, root.AddString(Name("s"), "x"), nil)
	checkErr(t, root.AddInt(Name("i"), 5), nil)
	checkErr(t, root.AddDouble(Name("d"), 1.5), nil)
	checkErr(t, root.AddBool(Name("b"), true), nil)
	checkErr(t, root.AddNull(Name("z")), nil)
	arr, err := root.StartArray(Name("a"))
	checkErr(t, err, nil)
	checkErr(t, arr.AddInt(NoName, 1), nil)
	obj, err := arr.StartObject(NoName)
	checkErr(t, err, nil)
	_, err = obj.StartArray(Name("k"))
	checkErr(t, err, nil)
	return root
}

package ir

import (
	"testing"
)

func TestDuplicateIndependent(t *testing.T) {
	r := sample(t)
	d, err := r.Duplicate()
	checkErr(t, err, nil)
	if !Equal(r, d) {
		t.Fatalf("duplicate differs")
	}
	if d.Parent() != nil {
		t.Errorf("duplicate is not a root")
	}
	checkErr(t, d.AddNull(Name("extra")), nil)
	da, _ := d.ObjectItem("a")
	checkErr(t, da.AddInt(NoName, 3), nil)
	if r.Len() != 6 {
		t.Errorf("original changed: len %d", r.Len())
	}
	ra, _ := r.ObjectItem("a")
	if ra.Len() != 2 {
		t.Errorf("original array changed: len %d", ra.Len())
	}
	Destroy(&d)
	if s, _ := ra.Child(0).NumberValue(); s != 1 {
		t.Errorf("original damaged by destroying duplicate")
	}
}

func TestDuplicateSubtree(t *testing.T) {
	r := sample(t)
	a, _ := r.ObjectItem("a")
	d, err := a.Duplicate()
	checkErr(t, err, nil)
	if d.Parent() != nil || d.Path() != "$" {
		t.Errorf("subtree duplicate kept its parent")
	}
	if !Equal(a, d) {
		t.Errorf("subtree duplicate differs")
	}
	k := d.Child(1).Child(0)
	if k.Parent() != d.Child(1) || k.ParentName() != "k" {
		t.Errorf("bad links in duplicate")
	}
}

func TestDuplicateRefused(t *testing.T) {
	r := sample(t)
	var nilNode *Node
	_, err := nilNode.Duplicate()
	checkErr(t, err, ErrNullArgument)
	refuseAfter(t, 4)
	d, err := r.Duplicate()
	checkErr(t, err, ErrOutOfMemory)
	if d != nil {
		t.Errorf("partial duplicate returned")
	}
}

func TestDestroy(t *testing.T) {
	r := sample(t)
	a, _ := r.ObjectItem("a")
	Destroy(&r)
	if r != nil {
		t.Fatalf("handle not cleared")
	}
	if a.Len() != 0 {
		t.Errorf("subtree not torn down")
	}
	Destroy(&r)
	Destroy(nil)

	r = sample(t)
	a, _ = r.ObjectItem("a")
	Destroy(&a)
	if a != nil {
		t.Fatalf("interior handle not cleared")
	}
	if r.Len() != 6 {
		t.Errorf("destroying an interior handle changed the tree")
	}
	if got, _ := r.ObjectItem("a"); got == nil || got.Len() != 2 {
		t.Errorf("interior node torn down")
	}
}

package ir

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{ErrNullArgument, NullArgument},
		{fmt.Errorf("x: %w", ErrOutOfMemory), OutOfMemory},
		{&Error{Op: "AddInt", Err: ErrInvalidParameter}, InvalidParameter},
		{ErrTypeMismatch, TypeMismatch},
		{ErrNameDuplication, NameDuplication},
		{ErrNonExistingChild, NonExistingChild},
		{fmt.Errorf("%w: %w", ErrFail, ErrNameDuplication), Fail},
		{errors.New("other"), Fail},
	}
	for _, tt := range tests {
		if got := CodeOf(tt.err); got != tt.want {
			t.Errorf("CodeOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	r := mustNew(t, ObjectType)
	a, err := r.StartArray(Name("a"))
	checkErr(t, err, nil)
	err = a.AddInt(Name("n"), 1)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %T", err)
	}
	if e.Op != "AddInt" || e.Path != "$.a" || e.Name != "n" {
		t.Errorf("got %+v", e)
	}
	if got, want := err.Error(), `AddInt $.a "n": invalid parameter`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		checkErr(t, err, nil)
		var back Type
		checkErr(t, back.UnmarshalText(d), nil)
		if back != typ {
			t.Errorf("%s read back as %s", typ, back)
		}
	}
}

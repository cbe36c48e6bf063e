package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNullArgument     = errors.New("null argument")
	ErrOutOfMemory      = errors.New("out of memory")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrNameDuplication  = errors.New("name duplication")
	ErrNonExistingChild = errors.New("non existing child")
	ErrFail             = errors.New("fail")
)

// Code is the status of an operation, one per sentinel error.
type Code int

const (
	OK Code = iota
	NullArgument
	OutOfMemory
	InvalidParameter
	TypeMismatch
	NameDuplication
	NonExistingChild
	Fail
)

func (c Code) String() string {
	s, ok := map[Code]string{
		OK:               "OK",
		NullArgument:     "NullArgument",
		OutOfMemory:      "OutOfMemory",
		InvalidParameter: "InvalidParameter",
		TypeMismatch:     "TypeMismatch",
		NameDuplication:  "NameDuplication",
		NonExistingChild: "NonExistingChild",
		Fail:             "Fail",
	}[c]
	if ok {
		return s
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// CodeOf maps err to its Code. Errors that match none of the sentinels
// report Fail. Parser errors may wrap ErrFail together with a more specific
// sentinel; ErrFail wins for those.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, ErrNullArgument):
		return NullArgument
	case errors.Is(err, ErrOutOfMemory):
		return OutOfMemory
	case errors.Is(err, ErrFail):
		return Fail
	case errors.Is(err, ErrInvalidParameter):
		return InvalidParameter
	case errors.Is(err, ErrTypeMismatch):
		return TypeMismatch
	case errors.Is(err, ErrNameDuplication):
		return NameDuplication
	case errors.Is(err, ErrNonExistingChild):
		return NonExistingChild
	default:
		return Fail
	}
}

// Error is returned by builder and accessor operations.
type Error struct {
	Op   string // operation, e.g. "AddString"
	Path string // location of the target node, e.g. "$.a[1]"
	Name string // child name involved, if any
	Err  error  // one of the sentinels above
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %s", e.Op, e.Path, e.Name, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func opErr(op string, n *Node, err error) error {
	e := &Error{Op: op, Err: err}
	if n != nil {
		e.Path = n.Path()
	}
	return e
}

func nameErr(op string, n *Node, name string, err error) error {
	e := &Error{Op: op, Name: name, Err: err}
	if n != nil {
		e.Path = n.Path()
	}
	return e
}

package ir

import "fmt"

// Type is the kind of a Node.
type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	DoubleType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		IntegerType: "Integer",
		DoubleType:  "Double",
		StringType:  "String",
		ArrayType:   "Array",
		ObjectType:  "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Bool":    BoolType,
		"Integer": IntegerType,
		"Double":  DoubleType,
		"String":  StringType,
		"Array":   ArrayType,
		"Object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		DoubleType,
		StringType,
		ArrayType,
		ObjectType,
	}
}

// IsContainer reports whether nodes of type t hold children.
func (t Type) IsContainer() bool {
	switch t {
	case ArrayType, ObjectType:
		return true
	default:
		return false
	}
}

func (t Type) IsLeaf() bool {
	return !t.IsContainer()
}

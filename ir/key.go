package ir

// Key is the optional name argument of builder operations. Object targets
// require a named Key, array targets require NoName.
type Key struct {
	name  string
	named bool
}

// NoName is the absent name, used for array insertions.
var NoName = Key{}

// Name returns a Key naming an object member. The empty string is a valid
// name.
func Name(s string) Key {
	return Key{name: s, named: true}
}

func (k Key) IsNamed() bool {
	return k.named
}

func (k Key) String() string {
	return k.name
}

package jsontree

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/signadot/jsontree/encode"
	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/parse"
)

// FromGo builds a tree from the JSON form of v.
func FromGo(v any) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ir.ErrInvalidParameter, err)
	}
	return parse.Parse(d)
}

// Decode stores the value of n in v, as json.Unmarshal would from the text
// of n.
func Decode(n *ir.Node, v any) error {
	s, err := encode.ToString(n)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrInvalidParameter, err)
	}
	return nil
}

package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/token"
)

// EncState holds the output buffer and options of one encoding.
type EncState struct {
	buf []byte

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as compact JSON text to w.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	if err := es.encode(node); err != nil {
		return err
	}
	_, err := w.Write(es.buf)
	return err
}

// ToString returns node as compact JSON text.
func ToString(node *ir.Node, opts ...EncodeOption) (string, error) {
	es := newEncState(opts)
	if err := es.encode(node); err != nil {
		return "", err
	}
	return string(es.buf), nil
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) encode(node *ir.Node) error {
	if node == nil {
		return fmt.Errorf("encode: %w", ir.ErrNullArgument)
	}
	if err := es.value(node); err != nil {
		es.buf = nil
		return err
	}
	return nil
}

// write appends v, asking the allocation hook for its storage first.
func (es *EncState) write(v string) error {
	if err := ir.Reserve(len(v)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	es.buf = append(es.buf, v...)
	return nil
}

func (es *EncState) color(t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

func (es *EncState) sep(t ir.Type, v string) error {
	return es.write(es.color(t, SepColor, v))
}

func (es *EncState) value(node *ir.Node) error {
	switch t := node.Type(); t {
	case ir.ObjectType:
		return es.object(node)
	case ir.ArrayType:
		return es.array(node)
	case ir.StringType:
		s, err := node.StringValue()
		if err != nil {
			return err
		}
		return es.write(es.color(t, ValueColor, token.Quote(s)))
	case ir.IntegerType:
		i, err := node.IntegerValue()
		if err != nil {
			return err
		}
		return es.write(es.color(t, ValueColor, strconv.FormatInt(int64(i), 10)))
	case ir.DoubleType:
		f, err := node.DoubleValue()
		if err != nil {
			return err
		}
		s, err := FormatDouble(f)
		if err != nil {
			return fmt.Errorf("encode %s: %w", node.Path(), err)
		}
		return es.write(es.color(t, ValueColor, s))
	case ir.BoolType:
		b, err := node.BoolValue()
		if err != nil {
			return err
		}
		return es.write(es.color(t, ValueColor, strconv.FormatBool(b)))
	case ir.NullType:
		return es.write(es.color(t, ValueColor, "null"))
	default:
		return fmt.Errorf("encode %s: %w: node type %d", node.Path(), ir.ErrFail, t)
	}
}

func (es *EncState) object(node *ir.Node) error {
	if err := es.sep(ir.ObjectType, "{"); err != nil {
		return err
	}
	i := 0
	for name, child := range node.All() {
		if i > 0 {
			if err := es.sep(ir.ObjectType, ","); err != nil {
				return err
			}
		}
		i++
		if err := es.write(es.color(ir.ObjectType, FieldColor, token.Quote(name))); err != nil {
			return err
		}
		if err := es.sep(ir.ObjectType, ":"); err != nil {
			return err
		}
		if err := es.value(child); err != nil {
			return err
		}
	}
	return es.sep(ir.ObjectType, "}")
}

func (es *EncState) array(node *ir.Node) error {
	if err := es.sep(ir.ArrayType, "["); err != nil {
		return err
	}
	for i := range node.Len() {
		if i > 0 {
			if err := es.sep(ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := es.value(node.Child(i)); err != nil {
			return err
		}
	}
	return es.sep(ir.ArrayType, "]")
}

// FormatDouble formats f so that it reads back as the same double.
// Magnitudes in [1e-6, 1e21) use plain decimal notation, others exponent
// notation. The result always has a fraction or an exponent.
func FormatDouble(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: non-finite double %v", ir.ErrFail, f)
	}
	abs := math.Abs(f)
	fmtc := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtc = 'e'
	}
	s := strconv.FormatFloat(f, fmtc, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

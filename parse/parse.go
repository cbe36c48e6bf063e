// Package parse provides JSON parsing into ir trees.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/jsontree/debug"
	"github.com/signadot/jsontree/ir"
	"github.com/signadot/jsontree/token"
)

// Parse parses the JSON text in d. The text ends at the first NUL byte or
// at the end of d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseN(d, 0, opts...)
}

// ParseN parses the JSON text in the first size bytes of d. A size of 0
// means the text is NUL terminated, as for Parse.
func ParseN(d []byte, size int, opts ...ParseOption) (*ir.Node, error) {
	if d == nil {
		return nil, fmt.Errorf("parse: %w", ir.ErrNullArgument)
	}
	if size < 0 || size > len(d) {
		return nil, fmt.Errorf("parse: %w: buffer size %d for %d bytes", ir.ErrInvalidParameter, size, len(d))
	}
	if size != 0 {
		d = d[:size]
	}
	if i := bytes.IndexByte(d, 0); i != -1 {
		d = d[:i]
	}
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{tz: token.NewTokenizer(d), opts: pOpts}
	res, err := p.parseRoot()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %d bytes: %v\n", len(d), err)
		}
		return nil, err
	}
	return res, nil
}

type parser struct {
	tz   *token.Tokenizer
	opts *parseOpts
}

// next returns the next token, treating the end of input as an incomplete
// value.
func (p *parser) next() (*token.Token, error) {
	tok, err := p.tz.Next()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %w", ErrIncomplete, token.TruncatedErr("value", p.tz.EndPos()))
	}
	if err != nil {
		return nil, lexErr(err)
	}
	return tok, nil
}

func lexErr(err error) error {
	if errors.Is(err, token.ErrTruncated) {
		return fmt.Errorf("%w: %w", ErrIncomplete, err)
	}
	return fmt.Errorf("%w: %w", ErrParse, err)
}

func (p *parser) parseRoot() (*ir.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	var res *ir.Node
	switch tok.Type {
	case token.TLCurl:
		res, err = ir.New(ir.ObjectType)
		if err == nil {
			err = p.parseObject(res, 1, tok.Pos)
		}
	case token.TLSquare:
		res, err = ir.New(ir.ArrayType)
		if err == nil {
			err = p.parseArray(res, 1, tok.Pos)
		}
	default:
		res, err = p.scalar(tok)
	}
	if err != nil {
		return nil, err
	}
	trail, err := p.tz.Next()
	if err == io.EOF {
		return res, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrailing, err)
	}
	return nil, fmt.Errorf("%w: %s", ErrTrailing, trail.Info())
}

func (p *parser) checkDepth(depth int, pos *token.Pos) error {
	if depth > p.opts.maxDepth {
		return fmt.Errorf("%w (%d) at %s", ErrDepth, p.opts.maxDepth, pos)
	}
	return nil
}

func (p *parser) parseObject(obj *ir.Node, depth int, pos *token.Pos) error {
	if err := p.checkDepth(depth, pos); err != nil {
		return err
	}
	for i := 0; ; i++ {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if i == 0 && tok.Type == token.TRCurl {
			return nil
		}
		if tok.Type != token.TString {
			return fmt.Errorf("%w: %w", ErrParse, token.ExpectedErr("object member name", tok.Pos))
		}
		name := tok.String()
		colon, err := p.next()
		if err != nil {
			return err
		}
		if colon.Type != token.TColon {
			return fmt.Errorf("%w: %w", ErrParse, token.ExpectedErr("':'", colon.Pos))
		}
		val, err := p.next()
		if err != nil {
			return err
		}
		if err := p.parseValue(obj, ir.Name(name), val, depth); err != nil {
			return err
		}
		sep, err := p.next()
		if err != nil {
			return err
		}
		switch sep.Type {
		case token.TComma:
		case token.TRCurl:
			return nil
		default:
			return fmt.Errorf("%w: %w", ErrParse, token.ExpectedErr("',' or '}'", sep.Pos))
		}
	}
}

func (p *parser) parseArray(arr *ir.Node, depth int, pos *token.Pos) error {
	if err := p.checkDepth(depth, pos); err != nil {
		return err
	}
	for i := 0; ; i++ {
		tok, err := p.next()
		if err != nil {
			return err
		}
		if i == 0 && tok.Type == token.TRSquare {
			return nil
		}
		if err := p.parseValue(arr, ir.NoName, tok, depth); err != nil {
			return err
		}
		sep, err := p.next()
		if err != nil {
			return err
		}
		switch sep.Type {
		case token.TComma:
		case token.TRSquare:
			return nil
		default:
			return fmt.Errorf("%w: %w", ErrParse, token.ExpectedErr("',' or ']'", sep.Pos))
		}
	}
}

// parseValue parses the value starting with tok and inserts it into the
// container c under k.
func (p *parser) parseValue(c *ir.Node, k ir.Key, tok *token.Token, depth int) error {
	var err error
	switch tok.Type {
	case token.TLCurl:
		var child *ir.Node
		if child, err = c.StartObject(k); err == nil {
			return p.parseObject(child, depth+1, tok.Pos)
		}
	case token.TLSquare:
		var child *ir.Node
		if child, err = c.StartArray(k); err == nil {
			return p.parseArray(child, depth+1, tok.Pos)
		}
	case token.TString:
		err = c.AddString(k, tok.String())
	case token.TInteger, token.TFloat:
		var (
			i     int32
			f     float64
			isInt bool
		)
		i, f, isInt, err = number(tok)
		if err != nil {
			return err
		}
		if isInt {
			err = c.AddInt(k, i)
		} else {
			err = c.AddDouble(k, f)
		}
	case token.TTrue:
		err = c.AddBool(k, true)
	case token.TFalse:
		err = c.AddBool(k, false)
	case token.TNull:
		err = c.AddNull(k)
	default:
		return fmt.Errorf("%w: %w", ErrParse, token.UnexpectedErr(tok.Type.String(), tok.Pos))
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, ir.ErrNameDuplication) {
		return fmt.Errorf("%w: %w at %s", ErrParse, err, tok.Pos)
	}
	return fmt.Errorf("%w at %s", err, tok.Pos)
}

func (p *parser) scalar(tok *token.Token) (*ir.Node, error) {
	switch tok.Type {
	case token.TString:
		return ir.NewString(tok.String())
	case token.TInteger, token.TFloat:
		i, f, isInt, err := number(tok)
		if err != nil {
			return nil, err
		}
		if isInt {
			return ir.NewInt(i)
		}
		return ir.NewDouble(f)
	case token.TTrue:
		return ir.NewBool(true)
	case token.TFalse:
		return ir.NewBool(false)
	case token.TNull:
		return ir.NewNull()
	default:
		return nil, fmt.Errorf("%w: %w", ErrParse, token.UnexpectedErr(tok.Type.String(), tok.Pos))
	}
}

// number converts a number token. Integer forms that fit in 32 bits are
// integers, everything else is a double.
func number(tok *token.Token) (int32, float64, bool, error) {
	s := string(tok.Bytes)
	if tok.Type == token.TInteger {
		i, err := strconv.ParseInt(s, 10, 32)
		if err == nil {
			return int32(i), 0, true, nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: invalid number %w at %s", ErrParse, err, tok.Pos)
	}
	return 0, f, false, nil
}

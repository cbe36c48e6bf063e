package token

import (
	"bytes"
	"io"
)

// Tokenizer produces JSON tokens from a byte slice, one at a time.
type Tokenizer struct {
	doc    []byte
	posDoc *PosDoc
	i      int
}

func NewTokenizer(d []byte) *Tokenizer {
	return &Tokenizer{doc: d, posDoc: NewPosDoc(d)}
}

// Offset is the position of the next unread byte.
func (t *Tokenizer) Offset() int {
	return t.i
}

// Pos returns the position of byte offset i.
func (t *Tokenizer) Pos(i int) *Pos {
	return t.posDoc.Pos(i)
}

// EndPos is the position just past the last input byte.
func (t *Tokenizer) EndPos() *Pos {
	return t.posDoc.end()
}

// Next returns the next token. At the end of the input it returns io.EOF.
// Errors are *TokenizeErr values.
func (t *Tokenizer) Next() (*Token, error) {
	d := t.doc
	n := len(d)
	for t.i < n && isSpace(d[t.i]) {
		t.i++
	}
	if t.i == n {
		return nil, io.EOF
	}
	start := t.i
	pos := t.posDoc.Pos(start)
	tok := &Token{Pos: pos}
	switch c := d[start]; c {
	case '{':
		tok.Type = TLCurl
		t.i++
	case '}':
		tok.Type = TRCurl
		t.i++
	case '[':
		tok.Type = TLSquare
		t.i++
	case ']':
		tok.Type = TRSquare
		t.i++
	case ':':
		tok.Type = TColon
		t.i++
	case ',':
		tok.Type = TComma
		t.i++
	case '"':
		sz, err := bsEscQuoted(d[start:])
		if err != nil {
			return nil, NewTokenizeErr(err, t.posDoc.Pos(start+sz))
		}
		tok.Type = TString
		t.i += sz
	case 't':
		if err := t.literal("true"); err != nil {
			return nil, err
		}
		tok.Type = TTrue
	case 'f':
		if err := t.literal("false"); err != nil {
			return nil, err
		}
		tok.Type = TFalse
	case 'n':
		if err := t.literal("null"); err != nil {
			return nil, err
		}
		tok.Type = TNull
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		sz, isFloat, err := number(d[start:])
		if err != nil {
			return nil, NewTokenizeErr(err, t.posDoc.Pos(start+sz))
		}
		tok.Type = TInteger
		if isFloat {
			tok.Type = TFloat
		}
		t.i += sz
	default:
		return nil, UnexpectedErr(quoteByte(c), pos)
	}
	tok.Bytes = d[start:t.i]
	return tok, nil
}

func (t *Tokenizer) literal(lit string) error {
	rest := t.doc[t.i:]
	if bytes.HasPrefix(rest, []byte(lit)) {
		t.i += len(lit)
		return nil
	}
	pos := t.posDoc.Pos(t.i)
	if len(rest) < len(lit) && bytes.HasPrefix([]byte(lit), rest) {
		return TruncatedErr(lit, pos)
	}
	return NewTokenizeErr(ErrLiteral, pos)
}

// Tokenize appends all tokens of src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	tz := NewTokenizer(src)
	for {
		tok, err := tz.Next()
		if err == io.EOF {
			return dst, nil
		}
		if err != nil {
			return nil, err
		}
		dst = append(dst, *tok)
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func quoteByte(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return "'" + string(c) + "'"
	}
	return Quote(string([]byte{c}))
}

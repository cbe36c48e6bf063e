package token

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated reports that the input ended before a value was
	// complete. Errors for unterminated strings and cut off literals and
	// numbers wrap it.
	ErrTruncated = errors.New("unexpected end of input")

	ErrUnterminated      = fmt.Errorf("%w: unterminated string", ErrTruncated)
	ErrBadUTF8           = errors.New("bad utf8")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrNumber            = errors.New("number")
	ErrUnexpected        = errors.New("unexpected character")
)

func LeadingZeroErr(pos *Pos) error {
	return NewTokenizeErr(ErrNumberLeadingZero, pos)
}

func TruncatedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w in %s", ErrTruncated, what), p)
}

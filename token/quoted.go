package token

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns v as a JSON string literal.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends v as a JSON string literal to d. Quote, backslash and
// control characters are escaped; everything else is copied as UTF-8.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = append(d, '\\', 'u', '0', '0', hexDigits[r>>4&0xf], hexDigits[r&0xf])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return append(d, '"')
}

// Unquote decodes the JSON string literal v.
func Unquote(v string) (string, error) {
	b := []byte(v)
	n, err := bsEscQuoted(b)
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnexpected
	}
	return QuotedToString(b), nil
}

// bsEscQuoted validates the string literal starting at d[0] == '"' and
// returns its length including both quotes.
func bsEscQuoted(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnexpected
	}
	i := 1
	n := len(d)
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			sz, err := escape(d[i:])
			if err != nil {
				return i, err
			}
			i += sz
		case c < 0x20:
			return i, ErrUnicodeControl
		case c < utf8.RuneSelf:
			i++
		default:
			if !utf8.FullRune(d[i:]) {
				return i, ErrUnterminated
			}
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return i, ErrBadUTF8
			}
			i += sz
		}
	}
	return i, ErrUnterminated
}

// escape validates the escape sequence at d[0] == '\\' and returns its
// length. A \u escape holding a high surrogate must be followed by one
// holding a low surrogate; both are consumed.
func escape(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrUnterminated
	}
	switch d[1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2, nil
	case 'u':
	default:
		return 0, ErrBadEscape
	}
	r, err := hex4(d[2:])
	if err != nil {
		return 0, err
	}
	switch {
	case utf16.IsSurrogate(r) && r < 0xdc00:
		if len(d) > 6 && d[6] != '\\' || len(d) > 7 && d[7] != 'u' {
			return 0, ErrBadUnicode
		}
		if len(d) < 8 {
			return 0, ErrUnterminated
		}
		lo, err := hex4(d[8:])
		if err != nil {
			return 0, err
		}
		if utf16.DecodeRune(r, lo) == unicode.ReplacementChar {
			return 0, ErrBadUnicode
		}
		return 12, nil
	case utf16.IsSurrogate(r):
		return 0, ErrBadUnicode
	}
	return 6, nil
}

func hex4(d []byte) (rune, error) {
	if len(d) < 4 {
		if !allHex(d) {
			return 0, ErrBadUnicode
		}
		return 0, ErrUnterminated
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			r |= rune(c - 'A' + 10)
		default:
			return 0, ErrBadUnicode
		}
	}
	return r, nil
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// QuotedToString decodes a string literal already validated by the
// tokenizer.
func QuotedToString(d []byte) string {
	b := &strings.Builder{}
	b.Grow(len(d) - 2)
	i := 1
	n := len(d) - 1
	for i < n {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		switch d[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'u':
			r, _ := hex4(d[i+1:])
			i += 4
			if utf16.IsSurrogate(r) {
				lo, _ := hex4(d[i+3:])
				r = utf16.DecodeRune(r, lo)
				i += 6
			}
			b.WriteRune(r)
		default:
			// '"', '\\', '/'
			b.WriteByte(d[i])
		}
		i++
	}
	return b.String()
}

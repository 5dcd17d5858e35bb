package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/benbjohnson/scss/chars"
)

var (
	// ErrNotQuoted is returned by Unquote when the text is not a quoted string.
	ErrNotQuoted = errors.New("token: not a quoted string")

	// ErrInvalidUnicodeRange is returned by ParseUnicodeRange on malformed input.
	ErrInvalidUnicodeRange = errors.New("token: invalid unicode range")
)

// Unescape resolves CSS escapes in s.
//
// A hex escape of up to six digits is replaced by its code point and a
// single whitespace character after it is dropped. NUL, surrogates and code
// points above U+10FFFF become U+FFFD. An escaped newline is a line
// continuation and is removed. Any other escaped character stands for itself.
func Unescape(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s))
	for i := 0; i < len(s); {
		ch := s[i]
		if ch != '\\' {
			_ = buf.WriteByte(ch)
			i++
			continue
		}
		i++

		// A trailing backslash stands for the replacement character.
		if i >= len(s) {
			_, _ = buf.WriteRune(utf8.RuneError)
			break
		}

		// Line continuation.
		if n := newlineLen(s, i); n > 0 {
			i += n
			continue
		}

		// Hex escape: up to six digits then one optional whitespace.
		if chars.IsHexDigit(s[i]) {
			j := i
			for j < len(s) && j-i < 6 && chars.IsHexDigit(s[j]) {
				j++
			}
			v, _ := strconv.ParseUint(s[i:j], 16, 32)
			_, _ = buf.WriteRune(codePoint(v))
			i = j
			if n := newlineLen(s, i); n > 0 {
				i += n
			} else if i < len(s) && (s[i] == ' ' || s[i] == '\t') {
				i++
			}
			continue
		}

		// Literal escape of a single (possibly multi-byte) character.
		_, size := utf8.DecodeRuneInString(s[i:])
		_, _ = buf.WriteString(s[i : i+size])
		i += size
	}
	return buf.String()
}

// Unquote removes the surrounding quotes from a string token and resolves
// its escapes.
func Unquote(s string) (string, error) {
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') || s[len(s)-1] != s[0] {
		return "", ErrNotQuoted
	}
	return Unescape(s[1 : len(s)-1]), nil
}

// ParseUnicodeRange returns the inclusive bounds of a unicode-range token
// such as "U+26", "U+0-7F" or "U+4??".
//
// Wildcards are expanded by replacing "?" with "0" for the start and with
// "F" for the end.
func ParseUnicodeRange(s string) (start, end int, err error) {
	if len(s) < 3 || (s[0] != 'u' && s[0] != 'U') || s[1] != '+' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidUnicodeRange, s)
	}
	body := s[2:]

	if strings.IndexByte(body, '?') != -1 {
		if start, err = parseHex(strings.Replace(body, "?", "0", -1)); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidUnicodeRange, s)
		}
		if end, err = parseHex(strings.Replace(body, "?", "F", -1)); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidUnicodeRange, s)
		}
		return start, end, nil
	}

	lo, hi := body, body
	if i := strings.IndexByte(body, '-'); i != -1 {
		lo, hi = body[:i], body[i+1:]
	}
	if start, err = parseHex(lo); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidUnicodeRange, s)
	}
	if end, err = parseHex(hi); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidUnicodeRange, s)
	}
	return start, end, nil
}

func parseHex(s string) (int, error) {
	if s == "" || len(s) > 6 {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseUint(s, 16, 32)
	return int(v), err
}

// newlineLen returns the length of the newline at s[i], or zero.
func newlineLen(s string, i int) int {
	switch {
	case i >= len(s):
		return 0
	case s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n':
		return 2
	case chars.IsNewline(s[i]):
		return 1
	}
	return 0
}

// codePoint converts an escaped value to a rune.
func codePoint(v uint64) rune {
	if v == 0 || (v >= 0xD800 && v <= 0xDFFF) || v > utf8.MaxRune {
		return utf8.RuneError
	}
	return rune(v)
}

// Package match implements composable matchers over an immutable byte buffer.
//
// A Matcher maps a cursor to a new cursor, or to NoMatch on failure. Matchers
// hold no per-call state: a failed match leaves nothing behind, so ordered
// alternation and repetition can retry from the exact original cursor.
//
// The combinators follow parsing expression grammar semantics. Alternatives
// commit to the first success, and repetitions are greedy and never give back
// an accepted iteration.
package match

import "strings"

// Matcher is implemented by anything that can match at a cursor.
type Matcher interface {
	// Match returns the cursor after a successful match at p, or NoMatch.
	// A successful match may equal p for zero-width matchers.
	Match(in *Input, p int) int
}

// MatcherFunc is an adapter to allow ordinary functions to be used as matchers.
type MatcherFunc func(in *Input, p int) int

// Match calls fn(in, p).
func (fn MatcherFunc) Match(in *Input, p int) int {
	return fn(in, p)
}

// Exact returns a matcher that consumes lit exactly.
func Exact(lit string) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		for i := 0; i < len(lit); i++ {
			if ch, ok := in.byteAt(p + i); !ok || ch != lit[i] {
				return NoMatch
			}
		}
		in.reach(p + len(lit))
		return p + len(lit)
	})
}

// ExactFold returns a matcher that consumes lit ignoring ASCII case.
func ExactFold(lit string) Matcher {
	lit = strings.ToLower(lit)
	return MatcherFunc(func(in *Input, p int) int {
		for i := 0; i < len(lit); i++ {
			if ch, ok := in.byteAt(p + i); !ok || lower(ch) != lit[i] {
				return NoMatch
			}
		}
		in.reach(p + len(lit))
		return p + len(lit)
	})
}

// Char returns a matcher that consumes the single byte ch.
func Char(ch byte) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		if c, ok := in.byteAt(p); ok && c == ch {
			in.reach(p + 1)
			return p + 1
		}
		return NoMatch
	})
}

// Class returns a matcher that consumes one byte that is a member of set.
func Class(set string) Matcher {
	var table [256]bool
	for i := 0; i < len(set); i++ {
		table[set[i]] = true
	}
	return MatcherFunc(func(in *Input, p int) int {
		if ch, ok := in.byteAt(p); ok && table[ch] {
			in.reach(p + 1)
			return p + 1
		}
		return NoMatch
	})
}

// Pred returns a matcher that consumes one byte for which fn returns true.
func Pred(fn func(byte) bool) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		if ch, ok := in.byteAt(p); ok && fn(ch) {
			in.reach(p + 1)
			return p + 1
		}
		return NoMatch
	})
}

// Any returns a matcher that consumes any single byte.
func Any() Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		if _, ok := in.byteAt(p); ok {
			in.reach(p + 1)
			return p + 1
		}
		return NoMatch
	})
}

// EOI returns a matcher that succeeds only at the end of input.
func EOI() Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		if p == in.Len() {
			return p
		}
		return NoMatch
	})
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

package match

import "fmt"

// Sequence returns a matcher that applies each matcher in turn.
// It fails as a whole if any step fails.
func Sequence(ms ...Matcher) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		for _, m := range ms {
			if p = m.Match(in, p); p == NoMatch {
				return NoMatch
			}
		}
		return p
	})
}

// Alternatives returns a matcher that tries each matcher in order and
// returns the first success. Order matters: a shorter prefix listed first
// shadows a longer alternative listed after it.
func Alternatives(ms ...Matcher) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		for _, m := range ms {
			if next := m.Match(in, p); next != NoMatch {
				return next
			}
		}
		return NoMatch
	})
}

// Optional returns a matcher that tries m and succeeds either way.
func Optional(m Matcher) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		if next := m.Match(in, p); next != NoMatch {
			return next
		}
		return p
	})
}

// ZeroOrMore returns a matcher that applies m until it fails.
// Always succeeds.
func ZeroOrMore(m Matcher) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		return repeat(m, in, p, -1)
	})
}

// OneOrMore returns a matcher that applies m until it fails.
// Fails if m does not match at least once.
func OneOrMore(m Matcher) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		next := m.Match(in, p)
		if next == NoMatch {
			return NoMatch
		}
		if next == p {
			return p
		}
		return repeat(m, in, next, -1)
	})
}

// Between returns a matcher that requires at least lo repetitions of m and
// then consumes greedily up to hi repetitions in total.
func Between(lo, hi int, m Matcher) Matcher {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("match: invalid repetition bounds {%d,%d}", lo, hi))
	}
	return MatcherFunc(func(in *Input, p int) int {
		for i := 0; i < lo; i++ {
			if p = m.Match(in, p); p == NoMatch {
				return NoMatch
			}
		}
		return repeat(m, in, p, hi-lo)
	})
}

// repeat applies m at most max times (unbounded if max is negative).
// It stops early when m fails or succeeds without consuming input.
func repeat(m Matcher, in *Input, p, max int) int {
	for i := 0; max < 0 || i < max; i++ {
		next := m.Match(in, p)
		if next == NoMatch || next == p {
			break
		}
		p = next
	}
	return p
}

// Negate returns a zero-width matcher that succeeds iff m fails.
func Negate(m Matcher) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		if m.Match(in, p) != NoMatch {
			return NoMatch
		}
		return p
	})
}

// Lookahead returns a zero-width matcher that succeeds iff m succeeds.
func Lookahead(m Matcher) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		if m.Match(in, p) == NoMatch {
			return NoMatch
		}
		return p
	})
}

// Without returns a matcher that fails if pre matches, otherwise matches m.
func Without(pre, m Matcher) Matcher {
	return Sequence(Negate(pre), m)
}

// With returns a matcher that requires pre to match, without consuming it,
// and then matches m.
func With(pre, m Matcher) Matcher {
	return Sequence(Lookahead(pre), m)
}

// AnyCharExcept returns a matcher that consumes one byte if m does not
// match at the cursor. Unlike Negate it is not zero-width.
func AnyCharExcept(m Matcher) Matcher {
	return MatcherFunc(func(in *Input, p int) int {
		if _, ok := in.byteAt(p); !ok {
			return NoMatch
		}
		if m.Match(in, p) != NoMatch {
			return NoMatch
		}
		in.reach(p + 1)
		return p + 1
	})
}

package match_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/scss/match"
)

// run matches m against s at cursor p.
func run(m match.Matcher, s string, p int) int {
	return m.Match(match.NewInput([]byte(s)), p)
}

// Ensure primitive matchers consume the expected number of bytes.
func TestPrimitives(t *testing.T) {
	digit := match.Pred(func(ch byte) bool { return ch >= '0' && ch <= '9' })

	var tests = []struct {
		name string
		m    match.Matcher
		s    string
		p    int
		end  int
	}{
		{name: "exact", m: match.Exact("abc"), s: "abcd", end: 3},
		{name: "exact mismatch", m: match.Exact("abc"), s: "abx", end: match.NoMatch},
		{name: "exact short input", m: match.Exact("abc"), s: "ab", end: match.NoMatch},
		{name: "exact empty literal", m: match.Exact(""), s: "x", end: 0},
		{name: "exact offset", m: match.Exact("cd"), s: "abcd", p: 2, end: 4},
		{name: "exact fold", m: match.ExactFold("Important"), s: "IMPORTANT;", end: 9},
		{name: "exact fold mismatch", m: match.ExactFold("u+"), s: "v+", end: match.NoMatch},
		{name: "char", m: match.Char('#'), s: "#f", end: 1},
		{name: "char mismatch", m: match.Char('#'), s: "f#", end: match.NoMatch},
		{name: "class", m: match.Class(";}"), s: "}", end: 1},
		{name: "class mismatch", m: match.Class(";}"), s: "{", end: match.NoMatch},
		{name: "class empty set", m: match.Class(""), s: "a", end: match.NoMatch},
		{name: "pred", m: digit, s: "7", end: 1},
		{name: "pred end of input", m: digit, s: "", end: match.NoMatch},
		{name: "any", m: match.Any(), s: "\xff", end: 1},
		{name: "any end of input", m: match.Any(), s: "a", p: 1, end: match.NoMatch},
		{name: "eoi", m: match.EOI(), s: "ab", p: 2, end: 2},
		{name: "eoi before end", m: match.EOI(), s: "ab", p: 1, end: match.NoMatch},
		{name: "eoi empty", m: match.EOI(), s: "", end: 0},
		{name: "past end", m: match.Char('a'), s: "a", p: 5, end: match.NoMatch},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.end, run(tt.m, tt.s, tt.p), "%d. %s <%q>", i, tt.name, tt.s)
	}
}

// Ensure combinators follow ordered-choice, greedy-repetition semantics.
func TestCombinators(t *testing.T) {
	a, b := match.Char('a'), match.Char('b')

	var tests = []struct {
		name string
		m    match.Matcher
		s    string
		end  int
	}{
		{name: "sequence", m: match.Sequence(a, b), s: "abc", end: 2},
		{name: "sequence fails late", m: match.Sequence(a, b, a), s: "abb", end: match.NoMatch},
		{name: "sequence empty", m: match.Sequence(), s: "x", end: 0},

		{name: "alternatives first wins", m: match.Alternatives(a, match.Exact("ab")), s: "ab", end: 1},
		{name: "alternatives longer first", m: match.Alternatives(match.Exact("ab"), a), s: "ab", end: 2},
		{name: "alternatives fall through", m: match.Alternatives(b, a), s: "a", end: 1},
		{name: "alternatives none", m: match.Alternatives(b), s: "a", end: match.NoMatch},

		{name: "optional hit", m: match.Optional(a), s: "a", end: 1},
		{name: "optional miss", m: match.Optional(a), s: "b", end: 0},

		{name: "zero or more none", m: match.ZeroOrMore(a), s: "b", end: 0},
		{name: "zero or more many", m: match.ZeroOrMore(a), s: "aaab", end: 3},
		{name: "zero or more zero width", m: match.ZeroOrMore(match.Optional(a)), s: "aab", end: 2},

		{name: "one or more none", m: match.OneOrMore(a), s: "b", end: match.NoMatch},
		{name: "one or more many", m: match.OneOrMore(a), s: "aab", end: 2},
		{name: "one or more zero width", m: match.OneOrMore(match.Optional(a)), s: "b", end: 0},

		{name: "between below lo", m: match.Between(2, 3, a), s: "ab", end: match.NoMatch},
		{name: "between at lo", m: match.Between(2, 3, a), s: "aab", end: 2},
		{name: "between capped at hi", m: match.Between(2, 3, a), s: "aaaaa", end: 3},
		{name: "between exact", m: match.Between(3, 3, a), s: "aaaa", end: 3},
		{name: "between zero", m: match.Between(0, 0, a), s: "aaa", end: 0},
		{name: "between optional", m: match.Between(0, 6, a), s: "b", end: 0},

		{name: "negate hit", m: match.Negate(a), s: "a", end: match.NoMatch},
		{name: "negate miss", m: match.Negate(a), s: "b", end: 0},
		{name: "lookahead hit", m: match.Lookahead(a), s: "a", end: 0},
		{name: "lookahead miss", m: match.Lookahead(a), s: "b", end: match.NoMatch},

		{name: "without", m: match.Without(match.Exact("ab"), a), s: "ab", end: match.NoMatch},
		{name: "without pass", m: match.Without(match.Exact("ab"), a), s: "aa", end: 1},
		{name: "with", m: match.With(match.Exact("ab"), a), s: "ab", end: 1},
		{name: "with fail", m: match.With(match.Exact("ab"), a), s: "aa", end: match.NoMatch},

		{name: "any char except", m: match.AnyCharExcept(a), s: "b", end: 1},
		{name: "any char except excluded", m: match.AnyCharExcept(a), s: "a", end: match.NoMatch},
		{name: "any char except end of input", m: match.AnyCharExcept(a), s: "", end: match.NoMatch},
		{name: "any char except multi-byte", m: match.ZeroOrMore(match.AnyCharExcept(match.Exact("*/"))), s: "a*b*/", end: 3},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.end, run(tt.m, tt.s, 0), "%d. %s <%q>", i, tt.name, tt.s)
	}
}

// Ensure a sequence consumes exactly the concatenation of its parts.
func TestSequence_Concatenation(t *testing.T) {
	m1, m2 := match.OneOrMore(match.Char('a')), match.OneOrMore(match.Char('b'))
	in := match.NewInput([]byte("aaabbc"))

	mid := m1.Match(in, 0)
	require.Equal(t, 3, mid)
	end := m2.Match(in, mid)
	require.Equal(t, 5, end)
	assert.Equal(t, end, match.Sequence(m1, m2).Match(in, 0))
}

// Ensure zero-width matchers never move the cursor.
func TestZeroWidth(t *testing.T) {
	m := match.Exact("ab")
	for _, s := range []string{"ab", "ba", ""} {
		for _, z := range []match.Matcher{match.Negate(m), match.Lookahead(m)} {
			if end := run(z, s, 0); end != match.NoMatch && end != 0 {
				t.Errorf("<%q> zero-width matcher advanced to %d", s, end)
			}
		}
	}
}

// Ensure failed matches leave no residual state behind.
func TestNoResidualState(t *testing.T) {
	in := match.NewInput([]byte("abcabd"))
	m := match.Sequence(match.Exact("abc"), match.Exact("abc"))
	other := match.Exact("abc")

	require.Equal(t, match.NoMatch, m.Match(in, 0))
	assert.Equal(t, 3, other.Match(in, 0))
	assert.Equal(t, other.Match(match.NewInput([]byte("abcabd")), 0), other.Match(in, 0))

	// Repetition is deterministic across calls.
	rep := match.ZeroOrMore(match.Class("abc"))
	assert.Equal(t, rep.Match(in, 0), rep.Match(in, 0))
}

// Ensure Match reports the furthest position reached on failure.
func TestMatch_Error(t *testing.T) {
	m := match.Alternatives(
		match.Sequence(match.Exact("ab"), match.Exact("cd")),
		match.Exact("x"),
	)

	end, err := match.Match(m, []byte("abce"), 0)
	assert.Equal(t, match.NoMatch, end)

	var merr *match.Error
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, 0, merr.Start)
	assert.Equal(t, 3, merr.Furthest)
	assert.Equal(t, "no match at offset 0 (furthest offset 3)", err.Error())

	end, err = match.Match(m, []byte("abcd"), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, end)
}

// Ensure the furthest position only grows and can be reset.
func TestInput_Furthest(t *testing.T) {
	in := match.NewInput([]byte("hello"))
	assert.Equal(t, match.NoMatch, match.Exact("help").Match(in, 0))
	assert.Equal(t, 3, in.Furthest())

	assert.Equal(t, match.NoMatch, match.Exact("x").Match(in, 0))
	assert.Equal(t, 3, in.Furthest())

	in.Reset()
	assert.Equal(t, 0, in.Furthest())
	assert.Equal(t, 5, in.Len())
	assert.Equal(t, []byte("ell"), in.Slice(1, 4))
}

// Ensure rules support mutual recursion and reject misuse.
func TestRule(t *testing.T) {
	// parens = "(" parens* ")"
	parens := match.NewRule("parens")
	parens.Bind(match.Sequence(match.Char('('), match.ZeroOrMore(parens), match.Char(')')))

	assert.Equal(t, "parens", parens.Name())
	assert.True(t, parens.Bound())
	assert.Equal(t, 6, run(parens, "(()())x", 0))
	assert.Equal(t, match.NoMatch, run(parens, "(()", 0))

	assert.Panics(t, func() { parens.Bind(match.Any()) })

	unbound := match.NewRule("unbound")
	assert.False(t, unbound.Bound())
	assert.PanicsWithValue(t, `match: rule "unbound" is not bound`, func() { run(unbound, "x", 0) })
}

// Ensure invalid repetition bounds are rejected at construction.
func TestBetween_InvalidBounds(t *testing.T) {
	assert.Panics(t, func() { match.Between(3, 2, match.Any()) })
	assert.Panics(t, func() { match.Between(-1, 2, match.Any()) })
}

// Ensure one matcher can be shared by concurrent inputs.
func TestConcurrentMatch(t *testing.T) {
	m := match.Sequence(match.OneOrMore(match.Class("ab")), match.EOI())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if end := run(m, "abababab", 0); end != 8 {
					t.Errorf("unexpected end: %d", end)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkZeroOrMore(b *testing.B) {
	in := match.NewInput([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaab"))
	m := match.ZeroOrMore(match.Char('a'))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Match(in, 0)
	}
}

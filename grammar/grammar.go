package grammar

import (
	"errors"
	"fmt"

	"github.com/benbjohnson/scss/chars"
	"github.com/benbjohnson/scss/match"
)

var (
	// ErrNoTerminators is returned by New when Config.Terminators is empty.
	ErrNoTerminators = errors.New("grammar: empty terminator set")

	// ErrUnknownRule is returned when a rule name is not defined.
	ErrUnknownRule = errors.New("grammar: unknown rule")
)

// Config represents the configurable parts of the grammar.
type Config struct {
	// Terminators lists the bytes that may end a static value.
	Terminators string

	// FoldImportant matches the "important" keyword ignoring ASCII case.
	FoldImportant bool
}

// DefaultConfig returns the configuration used by Default.
func DefaultConfig() Config {
	return Config{Terminators: ";}"}
}

// Default is the grammar built from DefaultConfig.
var Default = MustNew(DefaultConfig())

// Grammar is a set of named lexical rules.
// Rules are immutable once New returns.
type Grammar struct {
	config Config
	rules  map[string]*match.Rule
	names  []string

	// Character classes.
	Newline      match.Matcher
	Whitespace   match.Matcher
	WS           match.Matcher
	NonPrintable match.Matcher
	Letter       match.Matcher
	Digit        match.Matcher
	HexDigit     match.Matcher
	NonASCII     match.Matcher
	NameStart    match.Matcher
	Name         match.Matcher

	// Names and numbers.
	Escape     match.Matcher
	Identifier match.Matcher
	Function   match.Matcher
	Number     match.Matcher
	Dimension  match.Matcher
	Percentage match.Matcher
	Numeric    match.Matcher
	AtKeyword  match.Matcher
	Hash       match.Matcher
	HexColor   match.Matcher
	Variable   match.Matcher

	UnicodeRange match.Matcher

	// Strings and URLs.
	String       match.Matcher
	StaticString match.Matcher
	UnquotedURL  match.Matcher

	// Attribute selector operators.
	IncludeMatch   match.Matcher
	DashMatch      match.Matcher
	PrefixMatch    match.Matcher
	SuffixMatch    match.Matcher
	SubstringMatch match.Matcher
	MatchOperator  match.Matcher
	Column         match.Matcher

	// Markers and comments.
	CDO              match.Matcher
	CDC              match.Matcher
	BlockComment     match.Matcher
	LineComment      match.Matcher
	Important        match.Matcher
	InterpolantStart match.Matcher

	StaticComponent match.Matcher
	StaticValue     match.Matcher

	EOI match.Matcher
}

// New returns a new grammar built from cfg.
func New(cfg Config) (*Grammar, error) {
	if cfg.Terminators == "" {
		return nil, ErrNoTerminators
	}

	g := &Grammar{config: cfg, rules: make(map[string]*match.Rule)}
	g.declare()
	g.define()
	return g, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(cfg Config) *Grammar {
	g, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// Config returns the configuration the grammar was built with.
func (g *Grammar) Config() Config { return g.config }

// Names returns the rule names in declaration order.
func (g *Grammar) Names() []string {
	return append([]string(nil), g.names...)
}

// Rule returns the rule with the given name.
func (g *Grammar) Rule(name string) (match.Matcher, bool) {
	r, ok := g.rules[name]
	if !ok {
		return nil, false
	}
	return r, true
}

// Match runs the named rule against src from the start of the buffer.
func (g *Grammar) Match(name string, src []byte) (int, error) {
	m, ok := g.Rule(name)
	if !ok {
		return match.NoMatch, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return match.Match(m, src, 0)
}

// declare creates an unbound placeholder for every rule so that rule bodies
// can refer to each other regardless of definition order.
func (g *Grammar) declare() {
	for _, d := range []struct {
		name string
		dst  *match.Matcher
	}{
		{"newline", &g.Newline},
		{"whitespace", &g.Whitespace},
		{"ws", &g.WS},
		{"nonPrintable", &g.NonPrintable},
		{"letter", &g.Letter},
		{"digit", &g.Digit},
		{"hexDigit", &g.HexDigit},
		{"nonASCII", &g.NonASCII},
		{"nameStart", &g.NameStart},
		{"name", &g.Name},
		{"escape", &g.Escape},
		{"identifier", &g.Identifier},
		{"function", &g.Function},
		{"number", &g.Number},
		{"dimension", &g.Dimension},
		{"percentage", &g.Percentage},
		{"numeric", &g.Numeric},
		{"atKeyword", &g.AtKeyword},
		{"hash", &g.Hash},
		{"hexColor", &g.HexColor},
		{"variable", &g.Variable},
		{"unicodeRange", &g.UnicodeRange},
		{"string", &g.String},
		{"staticString", &g.StaticString},
		{"unquotedUrl", &g.UnquotedURL},
		{"includeMatch", &g.IncludeMatch},
		{"dashMatch", &g.DashMatch},
		{"prefixMatch", &g.PrefixMatch},
		{"suffixMatch", &g.SuffixMatch},
		{"substringMatch", &g.SubstringMatch},
		{"matchOperator", &g.MatchOperator},
		{"column", &g.Column},
		{"cdo", &g.CDO},
		{"cdc", &g.CDC},
		{"blockComment", &g.BlockComment},
		{"lineComment", &g.LineComment},
		{"important", &g.Important},
		{"interpolantStart", &g.InterpolantStart},
		{"staticComponent", &g.StaticComponent},
		{"staticValue", &g.StaticValue},
		{"eoi", &g.EOI},
	} {
		r := match.NewRule(d.name)
		g.rules[d.name] = r
		g.names = append(g.names, d.name)
		*d.dst = r
	}
}

// bind sets the body of a declared rule.
func (g *Grammar) bind(name string, m match.Matcher) {
	g.rules[name].Bind(m)
}

// define binds the body of every declared rule.
func (g *Grammar) define() {
	g.defineChars()
	g.defineNames()
	g.defineStrings()
	g.defineSymbols()
	g.defineStatic()
}

func (g *Grammar) defineChars() {
	// CRLF must precede CR or the LF would be left behind.
	g.bind("newline", match.Alternatives(
		match.Exact("\r\n"),
		match.Char('\r'),
		match.Char('\n'),
		match.Char('\f'),
	))
	g.bind("whitespace", match.Alternatives(g.Newline, match.Char(' '), match.Char('\t')))
	g.bind("ws", match.ZeroOrMore(g.Whitespace))
	g.bind("nonPrintable", match.Pred(chars.IsNonPrintable))
	g.bind("letter", match.Pred(chars.IsLetter))
	g.bind("digit", match.Pred(chars.IsDigit))
	g.bind("hexDigit", match.Pred(chars.IsHexDigit))
	g.bind("nonASCII", match.Pred(chars.IsNonASCII))
	g.bind("nameStart", match.Alternatives(g.Letter, match.Char('_'), g.NonASCII))
	g.bind("name", match.Alternatives(g.NameStart, g.Digit, match.Char('-')))
	g.bind("eoi", match.EOI())
}

func (g *Grammar) defineNames() {
	// A non-hex escape excludes hex digits so "\41" is never read as "\4" + "1".
	g.bind("escape", match.Sequence(
		match.Char('\\'),
		match.Alternatives(
			match.Sequence(match.Between(1, 6, g.HexDigit), match.Optional(g.Whitespace)),
			match.AnyCharExcept(match.Alternatives(g.Newline, g.HexDigit)),
		),
	))

	g.bind("identifier", match.Sequence(
		match.Optional(match.Char('-')),
		match.Alternatives(g.NameStart, g.Escape),
		match.ZeroOrMore(match.Alternatives(g.Name, g.Escape)),
	))
	g.bind("function", match.Sequence(g.Identifier, match.Char('(')))

	sign := match.Class("+-")
	g.bind("number", match.Sequence(
		match.Optional(sign),
		match.Optional(match.Sequence(match.ZeroOrMore(g.Digit), match.Char('.'))),
		match.OneOrMore(g.Digit),
		match.Optional(match.Sequence(
			match.Class("eE"),
			match.Optional(sign),
			match.OneOrMore(g.Digit),
		)),
	))
	g.bind("dimension", match.Sequence(g.Number, g.Identifier))
	g.bind("percentage", match.Sequence(g.Number, match.Char('%')))
	g.bind("numeric", match.Sequence(
		g.Number,
		match.Optional(match.Alternatives(g.Identifier, match.Char('%'))),
	))

	g.bind("atKeyword", match.Sequence(match.Char('@'), g.Identifier))
	g.bind("variable", match.Sequence(match.Char('$'), g.Identifier))
	g.bind("hash", match.Sequence(
		match.Char('#'),
		match.OneOrMore(match.Alternatives(g.Name, g.Escape)),
	))

	// Only the 3 and 6 digit forms are colors; a 4th or 7th digit rejects.
	hex3 := match.Between(3, 3, g.HexDigit)
	g.bind("hexColor", match.Sequence(
		match.Char('#'),
		hex3,
		match.Optional(hex3),
		match.Negate(g.HexDigit),
	))

	g.bind("unicodeRange", g.unicodeRange())
}

// unicodeRange returns a matcher for "U+" followed by up to six positions of
// hex digits and then "?" wildcards. A range end ("-" and more hex digits)
// is only allowed when no wildcard was used.
func (g *Grammar) unicodeRange() match.Matcher {
	prefix := match.Sequence(match.Class("uU"), match.Char('+'))
	digits := match.Between(0, 6, g.HexDigit)
	end := match.Optional(match.Sequence(match.Char('-'), match.Between(1, 6, g.HexDigit)))

	// wildcards[n] consumes up to n question marks.
	var wildcards [7]match.Matcher
	for n := range wildcards {
		wildcards[n] = match.Between(0, n, match.Char('?'))
	}

	return match.MatcherFunc(func(in *match.Input, p int) int {
		if p = prefix.Match(in, p); p == match.NoMatch {
			return match.NoMatch
		}

		// Hex digits are single bytes so the cursor delta is the digit count.
		start := p
		p = digits.Match(in, p)
		n := p - start

		mark := p
		p = wildcards[6-n].Match(in, p)

		switch {
		case n == 0 && p == mark:
			return match.NoMatch
		case p > mark:
			return p
		}
		return end.Match(in, p)
	})
}

func (g *Grammar) defineStrings() {
	g.bind("interpolantStart", match.Exact("#{"))

	g.bind("string", match.Alternatives(g.quoted('"'), g.quoted('\'')))
	g.bind("staticString", match.Alternatives(
		g.quoted('"', g.InterpolantStart),
		g.quoted('\'', g.InterpolantStart),
	))

	g.bind("unquotedUrl", match.OneOrMore(match.Alternatives(
		match.AnyCharExcept(match.Alternatives(
			match.Class("\"'()\\"),
			g.Whitespace,
			g.NonPrintable,
		)),
		g.Escape,
	)))
}

// quoted returns a matcher for a string delimited by q. Any matcher in
// except also ends the literal content.
func (g *Grammar) quoted(q byte, except ...match.Matcher) match.Matcher {
	stop := append([]match.Matcher{match.Char(q), match.Char('\\'), g.Newline}, except...)
	return match.Sequence(
		match.Char(q),
		match.ZeroOrMore(match.Alternatives(
			match.AnyCharExcept(match.Alternatives(stop...)),
			match.Sequence(match.Char('\\'), g.Newline),
			g.Escape,
		)),
		match.Char(q),
	)
}

func (g *Grammar) defineSymbols() {
	g.bind("includeMatch", match.Exact("~="))
	g.bind("dashMatch", match.Exact("|="))
	g.bind("prefixMatch", match.Exact("^="))
	g.bind("suffixMatch", match.Exact("$="))
	g.bind("substringMatch", match.Exact("*="))
	g.bind("matchOperator", match.Alternatives(
		g.IncludeMatch,
		g.DashMatch,
		g.PrefixMatch,
		g.SuffixMatch,
		g.SubstringMatch,
	))
	g.bind("column", match.Exact("||"))
	g.bind("cdo", match.Exact("<!--"))
	g.bind("cdc", match.Exact("-->"))

	g.bind("blockComment", match.Sequence(
		match.Exact("/*"),
		match.ZeroOrMore(match.AnyCharExcept(match.Exact("*/"))),
		match.Exact("*/"),
	))
	g.bind("lineComment", match.Sequence(
		match.Exact("//"),
		match.ZeroOrMore(match.AnyCharExcept(g.Newline)),
		match.Alternatives(g.EOI, g.Newline),
	))

	keyword := match.Exact("important")
	if g.config.FoldImportant {
		keyword = match.ExactFold("important")
	}
	g.bind("important", match.Sequence(match.Char('!'), g.WS, keyword))
}

func (g *Grammar) defineStatic() {
	g.bind("staticComponent", match.Alternatives(
		g.Identifier,
		g.StaticString,
		g.HexColor,
		g.Numeric,
		g.Important,
	))
	g.bind("staticValue", match.Sequence(
		g.StaticComponent,
		match.ZeroOrMore(match.Sequence(g.WS, match.Class(",/"), g.WS, g.StaticComponent)),
		g.WS,
		match.Class(g.config.Terminators),
	))
}

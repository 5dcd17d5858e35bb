package scanner

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/benbjohnson/scss/grammar"
	"github.com/benbjohnson/scss/match"
	"github.com/benbjohnson/scss/token"
)

// Scanner breaks a CSS or SCSS buffer into tokens.
//
// Tokens carry byte offsets only; line and column tracking is left to the
// caller. Whitespace and comments are returned as tokens. A byte that no
// rule matches is returned as a single-rune DELIM token.
type Scanner struct {
	g     *grammar.Grammar
	in    *match.Input
	pos   int
	rules []rule
}

// rule pairs a token kind with the matcher that recognizes it.
type rule struct {
	kind token.Kind
	m    match.Matcher
}

// New returns a new instance of Scanner using the default grammar.
func New(src []byte) *Scanner {
	return NewWithGrammar(grammar.Default, src)
}

// NewWithGrammar returns a new instance of Scanner using g.
func NewWithGrammar(g *grammar.Grammar, src []byte) *Scanner {
	return &Scanner{
		g:     g,
		in:    match.NewInput(src),
		rules: rules(g),
	}
}

// rules returns the scanning order. Earlier rules shadow later ones so
// longer or more specific lexemes come first.
func rules(g *grammar.Grammar) []rule {
	// "10." is not a number to the grammar, so the integer part is taken
	// here and the dot is left as a delimiter.
	integer := match.Sequence(match.Optional(match.Class("+-")), match.OneOrMore(g.Digit))

	url := match.Sequence(
		match.ExactFold("url("),
		g.WS,
		g.UnquotedURL,
		g.WS,
		match.Char(')'),
	)

	return []rule{
		{token.WHITESPACE, match.OneOrMore(g.Whitespace)},
		{token.COMMENT, g.BlockComment},
		{token.COMMENT, g.LineComment},
		{token.STRING, g.String},
		{token.INTERPOLANT_START, g.InterpolantStart},
		{token.URL, url},
		{token.UNICODE_RANGE, g.UnicodeRange},
		{token.CDO, g.CDO},
		{token.CDC, g.CDC},
		{token.DIMENSION, g.Dimension},
		{token.PERCENTAGE, g.Percentage},
		{token.NUMBER, g.Number},
		{token.NUMBER, integer},
		{token.FUNCTION, g.Function},
		{token.IDENT, g.Identifier},
		{token.AT_KEYWORD, g.AtKeyword},
		{token.HASH, g.Hash},
		{token.VARIABLE, g.Variable},
		{token.IMPORTANT, g.Important},
		{token.INCLUDE_MATCH, g.IncludeMatch},
		{token.DASH_MATCH, g.DashMatch},
		{token.PREFIX_MATCH, g.PrefixMatch},
		{token.SUFFIX_MATCH, g.SuffixMatch},
		{token.SUBSTRING_MATCH, g.SubstringMatch},
		{token.COLUMN, g.Column},
		{token.COLON, match.Char(':')},
		{token.SEMICOLON, match.Char(';')},
		{token.COMMA, match.Char(',')},
		{token.LPAREN, match.Char('(')},
		{token.RPAREN, match.Char(')')},
		{token.LBRACK, match.Char('[')},
		{token.RBRACK, match.Char(']')},
		{token.LBRACE, match.Char('{')},
		{token.RBRACE, match.Char('}')},
	}
}

// Pos returns the byte offset of the next token.
func (s *Scanner) Pos() int { return s.pos }

// Scan returns the next token. EOF is returned at the end of the buffer and
// on every call after it.
func (s *Scanner) Scan() token.Token {
	pos := s.pos
	if pos >= s.in.Len() {
		return token.Token{Kind: token.EOF, Pos: pos}
	}

	for _, r := range s.rules {
		end := r.m.Match(s.in, pos)
		if end == match.NoMatch || end == pos {
			continue
		}
		s.pos = end
		return s.build(r.kind, pos, end)
	}

	// Otherwise this is a single code point delimiter.
	_, size := utf8.DecodeRune(s.in.Bytes()[pos:])
	s.pos = pos + size
	return token.Token{Kind: token.DELIM, Pos: pos, Value: string(s.in.Slice(pos, s.pos))}
}

// build creates a token and fills in the decoded fields for its kind.
func (s *Scanner) build(kind token.Kind, pos, end int) token.Token {
	tok := token.Token{Kind: kind, Pos: pos, Value: string(s.in.Slice(pos, end))}

	switch kind {
	case token.NUMBER, token.PERCENTAGE, token.DIMENSION:
		n := s.g.Number.Match(s.in, pos)
		if n == match.NoMatch || n > end {
			n = end
		}
		repr := string(s.in.Slice(pos, n))
		tok.Number, _ = strconv.ParseFloat(repr, 64)
		tok.Flag = "integer"
		if strings.ContainsAny(repr, ".eE") {
			tok.Flag = "number"
		}
		if kind == token.DIMENSION {
			tok.Unit = string(s.in.Slice(n, end))
		}

	case token.HASH:
		// The hash is an "id" if its name is also a valid identifier.
		tok.Flag = "unrestricted"
		if s.g.Identifier.Match(s.in, pos+1) == end {
			tok.Flag = "id"
		}

	case token.UNICODE_RANGE:
		tok.Start, tok.End, _ = token.ParseUnicodeRange(tok.Value)
	}
	return tok
}

// Tokenize returns every token in src up to, but not including, EOF.
func Tokenize(src []byte) []token.Token {
	s := New(src)
	var a []token.Token
	for {
		tok := s.Scan()
		if tok.Kind == token.EOF {
			return a
		}
		a = append(a, tok)
	}
}

package token

import "strings"

// Kind represents the kind of a lexical token.
type Kind int

const (
	// Special tokens
	ILLEGAL Kind = iota
	EOF
	WHITESPACE
	COMMENT

	// Names and values
	IDENT
	FUNCTION
	URL
	AT_KEYWORD
	HASH
	STRING
	NUMBER
	PERCENTAGE
	DIMENSION
	UNICODE_RANGE
	VARIABLE
	IMPORTANT
	INTERPOLANT_START

	// Attribute selector operators
	INCLUDE_MATCH   // ~=
	DASH_MATCH      // |=
	PREFIX_MATCH    // ^=
	SUFFIX_MATCH    // $=
	SUBSTRING_MATCH // *=
	COLUMN          // ||

	CDO // <!--
	CDC // -->

	// Punctuation
	COLON     // :
	SEMICOLON // ;
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	LBRACK    // [
	RBRACK    // ]
	LBRACE    // {
	RBRACE    // }
	DELIM
)

var kinds = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	WHITESPACE: "WHITESPACE",
	COMMENT:    "COMMENT",

	IDENT:             "IDENT",
	FUNCTION:          "FUNCTION",
	URL:               "URL",
	AT_KEYWORD:        "AT_KEYWORD",
	HASH:              "HASH",
	STRING:            "STRING",
	NUMBER:            "NUMBER",
	PERCENTAGE:        "PERCENTAGE",
	DIMENSION:         "DIMENSION",
	UNICODE_RANGE:     "UNICODE_RANGE",
	VARIABLE:          "VARIABLE",
	IMPORTANT:         "IMPORTANT",
	INTERPOLANT_START: "INTERPOLANT_START",

	INCLUDE_MATCH:   "INCLUDE_MATCH",
	DASH_MATCH:      "DASH_MATCH",
	PREFIX_MATCH:    "PREFIX_MATCH",
	SUFFIX_MATCH:    "SUFFIX_MATCH",
	SUBSTRING_MATCH: "SUBSTRING_MATCH",
	COLUMN:          "COLUMN",

	CDO: "CDO",
	CDC: "CDC",

	COLON:     "COLON",
	SEMICOLON: "SEMICOLON",
	COMMA:     "COMMA",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACK:    "LBRACK",
	RBRACK:    "RBRACK",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	DELIM:     "DELIM",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k >= 0 && k < Kind(len(kinds)) {
		return kinds[k]
	}
	return ""
}

// Token represents a lexeme found in a source buffer.
type Token struct {
	Kind Kind

	// Pos is the byte offset of the first byte of the token.
	Pos int

	// Value is the raw source text of the token.
	Value string

	// Flag is "integer" or "number" for numeric tokens and
	// "id" or "unrestricted" for hash tokens.
	Flag string

	// Number and Unit are set on numeric tokens.
	Number float64
	Unit   string

	// Start and End are the bounds of a unicode-range token.
	Start int
	End   int
}

// Text returns the decoded content of the token with escapes resolved and
// delimiters such as quotes, sigils and parentheses removed.
func (t Token) Text() string {
	switch t.Kind {
	case IDENT:
		return Unescape(t.Value)
	case FUNCTION:
		return Unescape(strings.TrimSuffix(t.Value, "("))
	case AT_KEYWORD, HASH, VARIABLE:
		if t.Value == "" {
			return ""
		}
		return Unescape(t.Value[1:])
	case STRING:
		if s, err := Unquote(t.Value); err == nil {
			return s
		}
		return t.Value
	case URL:
		// Strip "url(" and ")" then any surrounding whitespace.
		if len(t.Value) < 5 {
			return ""
		}
		return Unescape(strings.Trim(t.Value[4:len(t.Value)-1], " \t\n\r\f"))
	}
	return t.Value
}

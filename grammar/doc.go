/*
Package grammar implements the lexical grammar of CSS and SCSS source text.
This is meant to be a low-level library for recognizing lexemes in raw
stylesheet text; building tokens and trees from them is left to the caller.


Basics

Every rule in a Grammar is a match.Matcher: given a cursor into a buffer it
returns the cursor just past the lexeme, or match.NoMatch. Rules never
allocate, never modify the buffer, and never leave state behind when they
fail, so a caller can try one rule after another at the same cursor.

Rules are built once by New and are safe for concurrent use. The Default
grammar uses DefaultConfig and is ready at package initialization.

	end, err := grammar.Default.Match("hexColor", []byte("#fff;"))


Ordered Choice

Alternatives commit to the first rule that succeeds and repetitions never
give back an accepted iteration. Rule bodies are therefore written with the
longer or more specific form first. For example, a newline tries CRLF before
a lone CR, and a hex color rejects a trailing hex digit with a negative
lookahead instead of relying on backtracking.


Interpolation

SCSS allows "#{...}" inside strings. The String rule accepts it as literal
content while StaticString stops at it, which makes a static string fail so
the caller can fall back to an interpolation-aware path.


Static Values

StaticValue recognizes a declaration value that needs no evaluation, such as
"red, 10px;". The bytes that may terminate it are taken from
Config.Terminators.
*/
package grammar

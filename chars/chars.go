// Package chars classifies single bytes of CSS source text.
//
// Every class is an explicit ASCII table so classification never depends on
// the process locale. Bytes above 0x7F are treated as opaque non-ASCII units;
// a multi-byte UTF-8 sequence therefore classifies as a run of name bytes.
package chars

var (
	letter       [256]bool // a-z, A-Z
	digit        [256]bool // 0-9
	hexDigit     [256]bool // 0-9, a-f, A-F
	space        [256]bool // space, tab, LF, CR, FF
	newline      [256]bool // LF, CR, FF
	nonPrintable [256]bool // 0x00-0x08, 0x0B, 0x0E-0x1F, 0x7F
	nonASCII     [256]bool // 0x80-0xFF
	nameStart    [256]bool // letter, '_' or non-ASCII
	name         [256]bool // name start, digit or '-'
)

func init() {
	for i := 0; i < 256; i++ {
		ch := byte(i)

		letter[i] = (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		digit[i] = ch >= '0' && ch <= '9'
		hexDigit[i] = digit[i] || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
		newline[i] = ch == '\n' || ch == '\r' || ch == '\f'
		space[i] = newline[i] || ch == ' ' || ch == '\t'
		nonPrintable[i] = ch <= 0x08 || ch == 0x0B || (ch >= 0x0E && ch <= 0x1F) || ch == 0x7F
		nonASCII[i] = ch > 0x7F
		nameStart[i] = letter[i] || ch == '_' || nonASCII[i]
		name[i] = nameStart[i] || digit[i] || ch == '-'
	}
}

// IsLetter returns true if the byte is an ASCII letter.
func IsLetter(ch byte) bool { return letter[ch] }

// IsDigit returns true if the byte is a decimal digit.
func IsDigit(ch byte) bool { return digit[ch] }

// IsHexDigit returns true if the byte is a hex digit of either case.
func IsHexDigit(ch byte) bool { return hexDigit[ch] }

// IsNewline returns true if the byte can start a newline (LF, CR or FF).
// CRLF is a single newline; that pairing is handled by the grammar.
func IsNewline(ch byte) bool { return newline[ch] }

// IsWhitespace returns true if the byte is a space, tab, or newline byte.
func IsWhitespace(ch byte) bool { return space[ch] }

// IsNonPrintable returns true if the byte is a non-printable control character.
func IsNonPrintable(ch byte) bool { return nonPrintable[ch] }

// IsNonASCII returns true if the byte is above 0x7F.
func IsNonASCII(ch byte) bool { return nonASCII[ch] }

// IsNameStart returns true if the byte can start a name.
func IsNameStart(ch byte) bool { return nameStart[ch] }

// IsName returns true if the byte is a name code point.
func IsName(ch byte) bool { return name[ch] }

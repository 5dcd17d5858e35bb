package chars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benbjohnson/scss/chars"
)

// Ensure each byte class agrees with its ASCII definition.
func TestClassify(t *testing.T) {
	var tests = []struct {
		ch           byte
		letter       bool
		digit        bool
		hex          bool
		newline      bool
		whitespace   bool
		nonPrintable bool
		nonASCII     bool
		nameStart    bool
		name         bool
	}{
		{ch: 'a', letter: true, hex: true, nameStart: true, name: true},
		{ch: 'F', letter: true, hex: true, nameStart: true, name: true},
		{ch: 'g', letter: true, nameStart: true, name: true},
		{ch: 'Z', letter: true, nameStart: true, name: true},
		{ch: '0', digit: true, hex: true, name: true},
		{ch: '9', digit: true, hex: true, name: true},
		{ch: '_', nameStart: true, name: true},
		{ch: '-', name: true},
		{ch: ' ', whitespace: true},
		{ch: '\t', whitespace: true},
		{ch: '\n', newline: true, whitespace: true},
		{ch: '\r', newline: true, whitespace: true},
		{ch: '\f', newline: true, whitespace: true},
		{ch: 0x00, nonPrintable: true},
		{ch: 0x08, nonPrintable: true},
		{ch: 0x0B, nonPrintable: true},
		{ch: 0x0E, nonPrintable: true},
		{ch: 0x1F, nonPrintable: true},
		{ch: 0x7F, nonPrintable: true},
		{ch: 0x80, nonASCII: true, nameStart: true, name: true},
		{ch: 0xFF, nonASCII: true, nameStart: true, name: true},
		{ch: '#'},
		{ch: '\\'},
	}

	for i, tt := range tests {
		assert.Equal(t, tt.letter, chars.IsLetter(tt.ch), "%d. <%q> letter", i, tt.ch)
		assert.Equal(t, tt.digit, chars.IsDigit(tt.ch), "%d. <%q> digit", i, tt.ch)
		assert.Equal(t, tt.hex, chars.IsHexDigit(tt.ch), "%d. <%q> hex digit", i, tt.ch)
		assert.Equal(t, tt.newline, chars.IsNewline(tt.ch), "%d. <%q> newline", i, tt.ch)
		assert.Equal(t, tt.whitespace, chars.IsWhitespace(tt.ch), "%d. <%q> whitespace", i, tt.ch)
		assert.Equal(t, tt.nonPrintable, chars.IsNonPrintable(tt.ch), "%d. <%q> non-printable", i, tt.ch)
		assert.Equal(t, tt.nonASCII, chars.IsNonASCII(tt.ch), "%d. <%q> non-ASCII", i, tt.ch)
		assert.Equal(t, tt.nameStart, chars.IsNameStart(tt.ch), "%d. <%q> name start", i, tt.ch)
		assert.Equal(t, tt.name, chars.IsName(tt.ch), "%d. <%q> name", i, tt.ch)
	}
}

// Ensure every name-start byte is also a name byte.
func TestNameStartImpliesName(t *testing.T) {
	for i := 0; i < 256; i++ {
		if chars.IsNameStart(byte(i)) && !chars.IsName(byte(i)) {
			t.Errorf("%#02x is name start but not name", i)
		}
	}
}

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchNamedReference(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		decoded string
	}{
		{"amp;", 4, "&"},
		{"amp", 3, "&"},
		{"ampx", 3, "&"},
		{"amp;x", 4, "&"},
		{"notin;", 6, "∉"},
		{"notit;", 3, "¬"},
		{"NotEqualTilde;", 14, "\u2242\u0338"},
		{"CounterClockwiseContourIntegral;", 32, "∳"},
		{"foo;", 0, ""},
		{"f", 0, ""},
		{";", 0, ""},
		{"", 0, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			n, decoded := matchNamedReference([]byte(tt.in))
			assert.Equal(t, tt.n, n)
			assert.Equal(t, tt.decoded, decoded)
		})
	}
}

func TestNumericReferenceReplacementTable(t *testing.T) {
	for code, want := range numericCharacterReferenceEndStateTable {
		var errs ParseErrors
		p := NewHTMLTokenizer(nil, WithErrorReporter(&errs))
		p.returnState = dataState
		p.charRefCode = code
		p.numericCharacterReferenceEndStateParser(0, true)
		assert.Equal(t, string(want), string(p.text))
		assert.Equal(t, []ErrorCode{ErrControlCharacterReference}, errs.Codes())
	}
}

func TestCharClass(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		assert.Equal(t, b == '\t' || b == '\n' || b == '\f' || b == ' ', isASCIIWhitespace(b), "%q", b)
		assert.Equal(t, (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z'), isASCIIAlpha(b), "%q", b)
		assert.Equal(t, (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F'), isASCIIHexDigit(b), "%q", b)
	}
	assert.Equal(t, byte('a'), toLower('A'))
	assert.Equal(t, byte('['), toLower('['))
	assert.True(t, isNonCharacter(0xFDD0))
	assert.True(t, isNonCharacter(0x10FFFF))
	assert.False(t, isNonCharacter(0xFFFD))
}

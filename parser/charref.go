package parser

import (
	"unicode/utf8"

	"golang.org/x/net/html"
)

// longestNamedReference is the length of the longest name in the named
// character reference table, semicolon included.
const longestNamedReference = 32

var numericCharacterReferenceEndStateTable = map[int]rune{
	0x80: 0x20AC,
	0x82: 0x201A,
	0x83: 0x0192,
	0x84: 0x201E,
	0x85: 0x2026,
	0x86: 0x2020,
	0x87: 0x2021,
	0x88: 0x02C6,
	0x89: 0x2030,
	0x8A: 0x0160,
	0x8B: 0x2039,
	0x8C: 0x0152,
	0x8E: 0x017D,
	0x91: 0x2018,
	0x92: 0x2019,
	0x93: 0x201C,
	0x94: 0x201D,
	0x95: 0x2022,
	0x96: 0x2013,
	0x97: 0x2014,
	0x98: 0x02DC,
	0x99: 0x2122,
	0x9A: 0x0161,
	0x9B: 0x203A,
	0x9C: 0x0153,
	0x9E: 0x017E,
	0x9F: 0x0178,
}

func wasConsumedByAttribute(returnState tokenizerState) bool {
	switch returnState {
	case attributeValueDoubleQuotedState, attributeValueSingleQuotedState, attributeValueUnquotedState:
		return true
	}
	return false
}

// flushCodePointsAsCharacterReference hands the temporary buffer to the
// attribute value being built, or to the pending text.
func (p *HTMLTokenizer) flushCodePointsAsCharacterReference() {
	if wasConsumedByAttribute(p.returnState) {
		p.current.writeAttributeValue(p.tempBuffer...)
	} else {
		p.text = append(p.text, p.tempBuffer...)
	}
	p.tempBuffer = p.tempBuffer[:0]
}

func (p *HTMLTokenizer) characterReferenceStateParser(c byte, eof bool) (step, tokenizerState) {
	p.tempBuffer = append(p.tempBuffer[:0], '&')
	switch {
	case eof:
	case isASCIIAlphanumeric(c):
		return reconsume, namedCharacterReferenceState
	case c == '#':
		p.tempBuffer = append(p.tempBuffer, c)
		return consume, numericCharacterReferenceState
	}
	p.flushCodePointsAsCharacterReference()
	return reconsume, p.returnState
}

// matchNamedReference finds the longest named character reference at the
// start of b, which holds the input right after the '&'. It returns how many
// bytes the name takes (its ';' included) and the text it stands for, or 0
// when no name matches.
func matchNamedReference(b []byte) (int, string) {
	run := 0
	for run < len(b) && run < longestNamedReference && isASCIIAlphanumeric(b[run]) {
		run++
	}
	if run == 0 {
		return 0, ""
	}
	if run < len(b) && b[run] == ';' {
		candidate := "&" + string(b[:run+1])
		// A full match decodes to one or two code points. Anything longer
		// is a shorter prefix followed by the rest of the candidate.
		if decoded := html.UnescapeString(candidate); decoded != candidate && utf8.RuneCountInString(decoded) <= 2 {
			return run + 1, decoded
		}
	}
	// Legacy names may appear without a semicolon.
	for n := run; n > 0; n-- {
		candidate := "&" + string(b[:n])
		decoded := html.UnescapeString(candidate)
		if decoded == candidate || decoded[len(decoded)-1] == candidate[len(candidate)-1] {
			continue
		}
		return n, decoded
	}
	return 0, ""
}

func (p *HTMLTokenizer) namedCharacterReferenceStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.flushCodePointsAsCharacterReference()
		return reconsume, p.returnState
	}
	rest := p.src.remaining()
	n, decoded := matchNamedReference(rest)
	if n == 0 {
		p.flushCodePointsAsCharacterReference()
		return reconsume, ambiguousAmpersandState
	}

	name := rest[:n]
	endsInSemicolon := name[n-1] == ';'
	if wasConsumedByAttribute(p.returnState) && !endsInSemicolon && n < len(rest) {
		if next := rest[n]; next == '=' || isASCIIAlphanumeric(next) {
			// Historical: "&amp=" and "&ampx" in attribute values stay as written.
			p.tempBuffer = append(p.tempBuffer, name...)
			p.flushCodePointsAsCharacterReference()
			p.src.advanceN(n)
			return skip, p.returnState
		}
	}
	if !endsInSemicolon {
		p.parseError(ErrMissingSemicolonAfterCharacterReference)
	}
	p.tempBuffer = append(p.tempBuffer[:0], decoded...)
	p.flushCodePointsAsCharacterReference()
	p.src.advanceN(n)
	return skip, p.returnState
}

func (p *HTMLTokenizer) ambiguousAmpersandStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
	case isASCIIAlphanumeric(c):
		if wasConsumedByAttribute(p.returnState) {
			p.current.writeAttributeValue(c)
		} else {
			p.text = append(p.text, c)
		}
		return consume, ambiguousAmpersandState
	case c == ';':
		p.parseError(ErrUnknownNamedCharacterReference)
	}
	return reconsume, p.returnState
}

func (p *HTMLTokenizer) numericCharacterReferenceStateParser(c byte, eof bool) (step, tokenizerState) {
	p.charRefCode = 0
	if !eof && (c == 'x' || c == 'X') {
		p.tempBuffer = append(p.tempBuffer, c)
		return consume, hexadecimalCharacterReferenceStartState
	}
	return reconsume, decimalCharacterReferenceStartState
}

// absenceOfDigits gives up on "&#" or "&#x" and keeps what was read as text.
func (p *HTMLTokenizer) absenceOfDigits() (step, tokenizerState) {
	p.parseError(ErrAbsenceOfDigitsInNumericCharacterReference)
	p.flushCodePointsAsCharacterReference()
	return reconsume, p.returnState
}

func (p *HTMLTokenizer) hexadecimalCharacterReferenceStartStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && isASCIIHexDigit(c) {
		return reconsume, hexadecimalCharacterReferenceState
	}
	return p.absenceOfDigits()
}

func (p *HTMLTokenizer) decimalCharacterReferenceStartStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && isASCIIDigit(c) {
		return reconsume, decimalCharacterReferenceState
	}
	return p.absenceOfDigits()
}

// addToCharRef accumulates a digit, saturating just past the Unicode range
// so long digit runs cannot overflow.
func (p *HTMLTokenizer) addToCharRef(base, digit int) {
	p.charRefCode = p.charRefCode*base + digit
	if p.charRefCode > 0x10FFFF {
		p.charRefCode = 0x110000
	}
}

func (p *HTMLTokenizer) hexadecimalCharacterReferenceStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
	case isASCIIDigit(c):
		p.addToCharRef(16, int(c-'0'))
		return consume, hexadecimalCharacterReferenceState
	case c >= 'A' && c <= 'F':
		p.addToCharRef(16, int(c-'A'+10))
		return consume, hexadecimalCharacterReferenceState
	case c >= 'a' && c <= 'f':
		p.addToCharRef(16, int(c-'a'+10))
		return consume, hexadecimalCharacterReferenceState
	case c == ';':
		return consume, numericCharacterReferenceEndState
	}
	p.parseError(ErrMissingSemicolonAfterCharacterReference)
	return reconsume, numericCharacterReferenceEndState
}

func (p *HTMLTokenizer) decimalCharacterReferenceStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
	case isASCIIDigit(c):
		p.addToCharRef(10, int(c-'0'))
		return consume, decimalCharacterReferenceState
	case c == ';':
		return consume, numericCharacterReferenceEndState
	}
	p.parseError(ErrMissingSemicolonAfterCharacterReference)
	return reconsume, numericCharacterReferenceEndState
}

// numericCharacterReferenceEndStateParser never consumes; the code unit it
// is given belongs to the return state.
func (p *HTMLTokenizer) numericCharacterReferenceEndStateParser(c byte, eof bool) (step, tokenizerState) {
	code := p.charRefCode
	switch {
	case code == 0:
		p.parseError(ErrNullCharacterReference)
		code = utf8.RuneError
	case code > 0x10FFFF:
		p.parseError(ErrCharacterReferenceOutsideUnicodeRange)
		code = utf8.RuneError
	case isSurrogate(code):
		p.parseError(ErrSurrogateCharacterReference)
		code = utf8.RuneError
	case isNonCharacter(code):
		p.parseError(ErrNoncharacterCharacterReference)
	case code == 0x0D || (isControl(code) && !isWhitespaceCode(code)):
		p.parseError(ErrControlCharacterReference)
		if r, ok := numericCharacterReferenceEndStateTable[code]; ok {
			code = int(r)
		}
	}
	p.tempBuffer = utf8.AppendRune(p.tempBuffer[:0], rune(code))
	p.flushCodePointsAsCharacterReference()
	return reconsume, p.returnState
}

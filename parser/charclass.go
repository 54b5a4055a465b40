package parser

// charClass holds classification flags for a single byte.
type charClass uint8

const (
	classWhitespace charClass = 1 << iota // tab, line feed, form feed, space
	classUpper                            // A-Z
	classLower                            // a-z
	classDigit                            // 0-9
	classHexLetter                        // a-f, A-F
)

var charClassTable [256]charClass

func init() {
	for _, c := range []byte{'\t', '\n', '\f', ' '} {
		charClassTable[c] |= classWhitespace
	}
	for c := 'A'; c <= 'Z'; c++ {
		charClassTable[c] |= classUpper
	}
	for c := 'a'; c <= 'z'; c++ {
		charClassTable[c] |= classLower
	}
	for c := '0'; c <= '9'; c++ {
		charClassTable[c] |= classDigit
	}
	for c := 'a'; c <= 'f'; c++ {
		charClassTable[c] |= classHexLetter
		charClassTable[c-0x20] |= classHexLetter
	}
}

func isASCIIWhitespace(c byte) bool { return charClassTable[c]&classWhitespace != 0 }
func isASCIIUpper(c byte) bool      { return charClassTable[c]&classUpper != 0 }
func isASCIILower(c byte) bool      { return charClassTable[c]&classLower != 0 }
func isASCIIAlpha(c byte) bool      { return charClassTable[c]&(classUpper|classLower) != 0 }
func isASCIIDigit(c byte) bool      { return charClassTable[c]&classDigit != 0 }

func isASCIIAlphanumeric(c byte) bool {
	return charClassTable[c]&(classUpper|classLower|classDigit) != 0
}

func isASCIIHexDigit(c byte) bool {
	return charClassTable[c]&(classDigit|classHexLetter) != 0
}

// toLower folds an ASCII upper case letter and leaves every other byte alone.
func toLower(c byte) byte {
	if isASCIIUpper(c) {
		return c + 0x20
	}
	return c
}

// lowerASCII lowercases A-Z only, the way tag names are folded.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if isASCIIUpper(s[i]) {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = toLower(b[j])
			}
			return string(b)
		}
	}
	return s
}

func isNonCharacter(code int) bool {
	if code >= 0xFDD0 && code <= 0xFDEF {
		return true
	}
	// U+xFFFE and U+xFFFF in every plane.
	return code <= 0x10FFFF && code&0xFFFE == 0xFFFE
}

func isSurrogate(code int) bool {
	return code >= 0xD800 && code <= 0xDFFF
}

func isControl(code int) bool {
	return (code >= 0x00 && code <= 0x1F) || (code >= 0x7F && code <= 0x9F)
}

func isWhitespaceCode(code int) bool {
	switch code {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	}
	return false
}

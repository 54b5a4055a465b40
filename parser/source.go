package parser

import "bytes"

// charSource is a cursor over a fully materialized input buffer. End of input
// is reported separately from the byte value, so a zero byte is ordinary input.
type charSource struct {
	buf []byte
	pos int
}

func newCharSource(buf []byte) *charSource {
	return &charSource{buf: buf}
}

// current returns the code unit at the cursor. ok is false once the cursor
// has reached the end of the buffer.
func (s *charSource) current() (c byte, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.pos], true
}

// peek returns the code unit n positions after the cursor.
func (s *charSource) peek(n int) (byte, bool) {
	i := s.pos + n
	if i < 0 || i >= len(s.buf) {
		return 0, false
	}
	return s.buf[i], true
}

// matchLiteral reports whether the input at the cursor starts with lit and,
// on a match, moves the cursor past it.
func (s *charSource) matchLiteral(lit string, caseInsensitive bool) bool {
	if len(s.buf)-s.pos < len(lit) {
		return false
	}
	window := s.buf[s.pos : s.pos+len(lit)]
	var match bool
	if caseInsensitive {
		match = bytes.EqualFold(window, []byte(lit))
	} else {
		match = string(window) == lit
	}
	if match {
		s.pos += len(lit)
	}
	return match
}

func (s *charSource) advance() {
	if s.pos < len(s.buf) {
		s.pos++
	}
}

func (s *charSource) advanceN(n int) {
	s.pos += n
	if s.pos > len(s.buf) {
		s.pos = len(s.buf)
	}
}

// remaining returns the unread part of the buffer, starting at the cursor.
func (s *charSource) remaining() []byte {
	return s.buf[s.pos:]
}

func (s *charSource) offset() int {
	return s.pos
}

func (s *charSource) atEOF() bool {
	return s.pos >= len(s.buf)
}

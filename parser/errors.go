package parser

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrorCode names a parse error the way the HTML standard does.
type ErrorCode string

const (
	ErrAbruptClosingOfEmptyComment                       ErrorCode = "abrupt-closing-of-empty-comment"
	ErrAbruptDoctypePublicIdentifier                     ErrorCode = "abrupt-doctype-public-identifier"
	ErrAbruptDoctypeSystemIdentifier                     ErrorCode = "abrupt-doctype-system-identifier"
	ErrAbsenceOfDigitsInNumericCharacterReference        ErrorCode = "absence-of-digits-in-numeric-character-reference"
	ErrCDATAInHTMLContent                                ErrorCode = "cdata-in-html-content"
	ErrCharacterReferenceOutsideUnicodeRange             ErrorCode = "character-reference-outside-unicode-range"
	ErrControlCharacterReference                         ErrorCode = "control-character-reference"
	ErrDuplicateAttribute                                ErrorCode = "duplicate-attribute"
	ErrEndTagWithAttributes                              ErrorCode = "end-tag-with-attributes"
	ErrEndTagWithTrailingSolidus                         ErrorCode = "end-tag-with-trailing-solidus"
	ErrEOFBeforeTagName                                  ErrorCode = "eof-before-tag-name"
	ErrEOFInCDATA                                        ErrorCode = "eof-in-cdata"
	ErrEOFInComment                                      ErrorCode = "eof-in-comment"
	ErrEOFInDoctype                                      ErrorCode = "eof-in-doctype"
	ErrEOFInScriptHTMLCommentLikeText                    ErrorCode = "eof-in-script-html-comment-like-text"
	ErrEOFInTag                                          ErrorCode = "eof-in-tag"
	ErrIncorrectlyClosedComment                          ErrorCode = "incorrectly-closed-comment"
	ErrIncorrectlyOpenedComment                          ErrorCode = "incorrectly-opened-comment"
	ErrInvalidCharacterSequenceAfterDoctypeName          ErrorCode = "invalid-character-sequence-after-doctype-name"
	ErrInvalidFirstCharacterOfTagName                    ErrorCode = "invalid-first-character-of-tag-name"
	ErrMissingAttributeValue                             ErrorCode = "missing-attribute-value"
	ErrMissingDoctypeName                                ErrorCode = "missing-doctype-name"
	ErrMissingDoctypePublicIdentifier                    ErrorCode = "missing-doctype-public-identifier"
	ErrMissingDoctypeSystemIdentifier                    ErrorCode = "missing-doctype-system-identifier"
	ErrMissingEndTagName                                 ErrorCode = "missing-end-tag-name"
	ErrMissingQuoteBeforeDoctypePublicIdentifier         ErrorCode = "missing-quote-before-doctype-public-identifier"
	ErrMissingQuoteBeforeDoctypeSystemIdentifier         ErrorCode = "missing-quote-before-doctype-system-identifier"
	ErrMissingSemicolonAfterCharacterReference           ErrorCode = "missing-semicolon-after-character-reference"
	ErrMissingWhitespaceAfterDoctypePublicKeyword        ErrorCode = "missing-whitespace-after-doctype-public-keyword"
	ErrMissingWhitespaceAfterDoctypeSystemKeyword        ErrorCode = "missing-whitespace-after-doctype-system-keyword"
	ErrMissingWhitespaceBeforeDoctypeName                ErrorCode = "missing-whitespace-before-doctype-name"
	ErrMissingWhitespaceBetweenAttributes                ErrorCode = "missing-whitespace-between-attributes"
	ErrMissingWhitespaceBetweenDoctypePublicAndSystemIDs ErrorCode = "missing-whitespace-between-doctype-public-and-system-identifiers"
	ErrNoncharacterCharacterReference                    ErrorCode = "noncharacter-character-reference"
	ErrNullCharacterReference                            ErrorCode = "null-character-reference"
	ErrSurrogateCharacterReference                       ErrorCode = "surrogate-character-reference"
	ErrUnexpectedCharacterAfterDoctypeSystemIdentifier   ErrorCode = "unexpected-character-after-doctype-system-identifier"
	ErrUnexpectedCharacterInAttributeName                ErrorCode = "unexpected-character-in-attribute-name"
	ErrUnexpectedCharacterInUnquotedAttributeValue       ErrorCode = "unexpected-character-in-unquoted-attribute-value"
	ErrUnexpectedEqualsSignBeforeAttributeName           ErrorCode = "unexpected-equals-sign-before-attribute-name"
	ErrUnexpectedNullCharacter                           ErrorCode = "unexpected-null-character"
	ErrUnexpectedQuestionMarkInsteadOfTagName            ErrorCode = "unexpected-question-mark-instead-of-tag-name"
	ErrUnexpectedSolidusInTag                            ErrorCode = "unexpected-solidus-in-tag"
	ErrUnknownNamedCharacterReference                    ErrorCode = "unknown-named-character-reference"
	ErrNestedComment                                     ErrorCode = "nested-comment"
)

// ParseError is a recoverable deviation from well-formed markup. The
// tokenizer reports it and keeps going.
type ParseError struct {
	Code   ErrorCode
	Offset int    // byte offset of the code unit being processed
	State  string // tokenizer state that detected the error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error %s at offset %d (%s)", e.Code, e.Offset, e.State)
}

// ParseErrorReporter is notified of every parse error.
type ParseErrorReporter interface {
	ReportParseError(ParseError)
}

// ParseErrorFunc adapts a function to a ParseErrorReporter.
type ParseErrorFunc func(ParseError)

// ReportParseError calls f(err).
func (f ParseErrorFunc) ReportParseError(err ParseError) {
	f(err)
}

// ParseErrors collects every reported parse error in order.
type ParseErrors []ParseError

// ReportParseError appends err.
func (l *ParseErrors) ReportParseError(err ParseError) {
	*l = append(*l, err)
}

// Codes lists the error codes in the order they were reported.
func (l ParseErrors) Codes() []ErrorCode {
	codes := make([]ErrorCode, len(l))
	for i, e := range l {
		codes[i] = e.Code
	}
	return codes
}

// Err folds the collected errors into one error, or nil if there are none.
func (l ParseErrors) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return errors.WithStack(l[0])
	}
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return errors.Errorf("%d parse errors: %s", len(l), strings.Join(msgs, "; "))
}

// logReporter is the reporter used when none is configured.
type logReporter struct {
	log *logrus.Entry
}

func (r logReporter) ReportParseError(err ParseError) {
	if !r.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	r.log.WithFields(logrus.Fields{
		"code":   err.Code,
		"offset": err.Offset,
		"state":  err.State,
	}).Debug("parse error")
}

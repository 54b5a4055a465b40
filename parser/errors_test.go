package parser

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorsErr(t *testing.T) {
	var errs ParseErrors
	assert.NoError(t, errs.Err())

	TokenizeString("</>", WithErrorReporter(&errs))
	err := errs.Err()
	require.Error(t, err)
	var pe ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrMissingEndTagName, pe.Code)

	TokenizeString("<", WithErrorReporter(&errs))
	err = errs.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 parse errors")
	assert.Contains(t, err.Error(), string(ErrEOFBeforeTagName))
}

func TestParseErrorFunc(t *testing.T) {
	var codes []ErrorCode
	TokenizeString("<a b=>\x00", WithErrorReporter(ParseErrorFunc(func(err ParseError) {
		codes = append(codes, err.Code)
	})))
	assert.Equal(t, []ErrorCode{ErrMissingAttributeValue, ErrUnexpectedNullCharacter}, codes)
}

func TestParseErrorMessage(t *testing.T) {
	err := ParseError{Code: ErrEOFInTag, Offset: 7, State: "AttributeName"}
	assert.Equal(t, "parse error eof-in-tag at offset 7 (AttributeName)", err.Error())
}

package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenizerAttributeAccuracyTestcase struct {
	inHTML string      // snippet of HTML to tokenize (should only be one element)
	attrs  []Attribute // expected attributes collected from the first token that is produced
}

var tokenizerAttributeAccuracyTests = []tokenizerAttributeAccuracyTestcase{
	{"<head></head>", nil},
	{"<script src='123' onload='test'></script>", []Attribute{
		{"src", "123"},
		{"onload", "test"},
	}},
	{"<a href='https://google.com' onclick='alert(1)'>Click this</a>", []Attribute{
		{"href", "https://google.com"},
		{"onclick", "alert(1)"},
	}},
	{"<script src='123' src='456'></script>", []Attribute{
		{"src", "123"},
		{"src", "456"},
	}},
	{"<script src=123 onload=test></script>", []Attribute{
		{"src", "123"},
		{"onload", "test"},
	}},
	{"<script src='123' onload='test' ></script>", []Attribute{
		{"src", "123"},
		{"onload", "test"},
	}},
	{"<script =src='123'onload='test' ></script>", []Attribute{
		{"=src", "123"},
		{"onload", "test"},
	}},
	{"<script src></script>", []Attribute{
		{"src", ""},
	}},
	{"<script src test></script>", []Attribute{
		{"src", ""},
		{"test", ""},
	}},
	{"<script 'asd></script>", []Attribute{
		{"'asd", ""},
	}},
	{"<script <asd></script>", []Attribute{
		{"<asd", ""},
	}},
	{"<script ABC=123></script>", []Attribute{
		{"abc", "123"},
	}},
	{"<script abc='\u0000123'></script>", []Attribute{
		{"abc", "\uFFFD123"},
	}},
	{"<script abc=></script>", []Attribute{
		{"abc", ""},
	}},
	{"<script\tabc=123></script>", []Attribute{
		{"abc", "123"},
	}},
	{"<div CLASS=\"MixedCase\">", []Attribute{
		{"class", "MixedCase"},
	}},
	{"<a href='?x=1&amp;y=2'>", []Attribute{
		{"href", "?x=1&y=2"},
	}},
	{"<a href='?x=1&copy=2'>", []Attribute{
		{"href", "?x=1&copy=2"},
	}},
	{"<a title='&notit'>", []Attribute{
		{"title", "&notit"},
	}},
	{"<a title=&lt;b>", []Attribute{
		{"title", "<b"},
	}},
	{"<a title=&ltb>", []Attribute{
		{"title", "&ltb"},
	}},
}

// TestTokenizerAttributeAccuracy makes sure that we have the correct
// attribute names and values, in order.
func TestTokenizerAttributeAccuracy(t *testing.T) {
	for _, tt := range tokenizerAttributeAccuracyTests {
		runTestTokenizerAttributeAccuracy(tt, t)
	}
}

func runTestTokenizerAttributeAccuracy(tt tokenizerAttributeAccuracyTestcase, t *testing.T) {
	t.Run(tt.inHTML, func(t *testing.T) {
		t.Parallel()
		var errs ParseErrors
		tokens := TokenizeString(tt.inHTML, WithErrorReporter(&errs))
		require.NotEmpty(t, tokens)
		assert.Equal(t, StartTagToken, tokens[0].Type)
		assert.Equal(t, tt.attrs, tokens[0].Attr)
	})
}

type stateMachineTestCase struct {
	in                byte           // the code unit to pass to the startingState
	startingState     tokenizerState // the state to start from
	expectedStep      step           // what the handler should do with the cursor
	nextExpectedState tokenizerState // the next state
}

// TestStateParsers checks that each handler of the state machine returns the
// next expected state for a single code unit. Flows that need more context
// than one code unit are covered by the fixtures.
func TestStateParsers(t *testing.T) {
	stateParserTests := []stateMachineTestCase{
		{'&', dataState, consume, characterReferenceState},
		{'<', dataState, consume, tagOpenState},
		{0, dataState, consume, dataState},
		{'a', dataState, consume, dataState},
		{'A', dataState, consume, dataState},
		{'1', dataState, consume, dataState},

		{'&', rcDataState, consume, characterReferenceState},
		{'<', rcDataState, consume, rcDataLessThanSignState},
		{0, rcDataState, consume, rcDataState},
		{'#', rcDataState, consume, rcDataState},

		{'<', rawTextState, consume, rawTextLessThanSignState},
		{'&', rawTextState, consume, rawTextState},
		{'<', scriptDataState, consume, scriptDataLessThanSignState},
		{'<', plaintextState, consume, plaintextState},

		{'!', tagOpenState, consume, markupDeclarationOpenState},
		{'/', tagOpenState, consume, endTagOpenState},
		{'a', tagOpenState, reconsume, tagNameState},
		{'Z', tagOpenState, reconsume, tagNameState},
		{'?', tagOpenState, reconsume, bogusCommentState},
		{'1', tagOpenState, reconsume, dataState},

		{'>', endTagOpenState, consume, dataState},
		{'a', endTagOpenState, reconsume, tagNameState},
		{'1', endTagOpenState, reconsume, bogusCommentState},

		{' ', tagNameState, consume, beforeAttributeNameState},
		{'\t', tagNameState, consume, beforeAttributeNameState},
		{'/', tagNameState, consume, selfClosingStartTagState},
		{'>', tagNameState, consume, dataState},
		{'A', tagNameState, consume, tagNameState},
		{0, tagNameState, consume, tagNameState},

		{'=', beforeAttributeNameState, consume, attributeNameState},
		{'/', beforeAttributeNameState, reconsume, afterAttributeNameState},
		{'>', beforeAttributeNameState, reconsume, afterAttributeNameState},
		{'a', beforeAttributeNameState, reconsume, attributeNameState},
		{'=', attributeNameState, consume, beforeAttributeValueState},
		{' ', attributeNameState, reconsume, afterAttributeNameState},
		{'"', attributeNameState, consume, attributeNameState},
		{'=', afterAttributeNameState, consume, beforeAttributeValueState},
		{'a', afterAttributeNameState, reconsume, attributeNameState},

		{'"', beforeAttributeValueState, consume, attributeValueDoubleQuotedState},
		{'\'', beforeAttributeValueState, consume, attributeValueSingleQuotedState},
		{'a', beforeAttributeValueState, reconsume, attributeValueUnquotedState},
		{'>', beforeAttributeValueState, consume, dataState},
		{'"', attributeValueDoubleQuotedState, consume, afterAttributeValueQuotedState},
		{'\'', attributeValueDoubleQuotedState, consume, attributeValueDoubleQuotedState},
		{'&', attributeValueDoubleQuotedState, consume, characterReferenceState},
		{'\'', attributeValueSingleQuotedState, consume, afterAttributeValueQuotedState},
		{' ', attributeValueUnquotedState, consume, beforeAttributeNameState},
		{'>', attributeValueUnquotedState, consume, dataState},
		{'a', afterAttributeValueQuotedState, reconsume, beforeAttributeNameState},
		{'/', afterAttributeValueQuotedState, consume, selfClosingStartTagState},
		{'a', selfClosingStartTagState, reconsume, beforeAttributeNameState},
		{'>', selfClosingStartTagState, consume, dataState},

		{'>', bogusCommentState, consume, dataState},
		{'a', bogusCommentState, consume, bogusCommentState},
		{'a', markupDeclarationOpenState, reconsume, bogusCommentState},
		{'-', commentStartState, consume, commentStartDashState},
		{'>', commentStartState, consume, dataState},
		{'a', commentStartState, reconsume, commentState},
		{'-', commentStartDashState, consume, commentEndState},
		{'-', commentState, consume, commentEndDashState},
		{'<', commentState, consume, commentLessThanSignState},
		{'!', commentLessThanSignState, consume, commentLessThanSignBangState},
		{'a', commentLessThanSignBangDashDashState, reconsume, commentEndState},
		{'a', commentEndDashState, reconsume, commentState},
		{'!', commentEndState, consume, commentEndBangState},
		{'-', commentEndState, consume, commentEndState},
		{'a', commentEndState, reconsume, commentState},
		{'>', commentEndBangState, consume, dataState},
		{'-', commentEndBangState, consume, commentEndDashState},

		{' ', doctypeState, consume, beforeDoctypeNameState},
		{'h', doctypeState, reconsume, beforeDoctypeNameState},
		{'h', beforeDoctypeNameState, consume, doctypeNameState},
		{' ', doctypeNameState, consume, afterDoctypeNameState},
		{'>', doctypeNameState, consume, dataState},
		{'x', afterDoctypeNameState, reconsume, bogusDoctypeState},
		{'"', beforeDoctypePublicIdentifierState, consume, doctypePublicIdentifierDoubleQuotedState},
		{'"', doctypePublicIdentifierDoubleQuotedState, consume, afterDoctypePublicIdentifierState},
		{'\'', afterDoctypePublicIdentifierState, consume, doctypeSystemIdentifierSingleQuotedState},
		{'>', afterDoctypeSystemIdentifierState, consume, dataState},
		{'x', afterDoctypeSystemIdentifierState, reconsume, bogusDoctypeState},
		{'>', bogusDoctypeState, consume, dataState},

		{']', cdataSectionState, consume, cdataSectionBracketState},
		{'a', cdataSectionBracketState, reconsume, cdataSectionState},
		{'>', cdataSectionEndState, consume, dataState},

		{'#', characterReferenceState, consume, numericCharacterReferenceState},
		{'a', characterReferenceState, reconsume, namedCharacterReferenceState},
		{' ', characterReferenceState, reconsume, dataState},
		{'x', numericCharacterReferenceState, consume, hexadecimalCharacterReferenceStartState},
		{'1', numericCharacterReferenceState, reconsume, decimalCharacterReferenceStartState},
		{'g', hexadecimalCharacterReferenceStartState, reconsume, dataState},
		{'f', hexadecimalCharacterReferenceStartState, reconsume, hexadecimalCharacterReferenceState},
		{'f', hexadecimalCharacterReferenceState, consume, hexadecimalCharacterReferenceState},
		{';', decimalCharacterReferenceState, consume, numericCharacterReferenceEndState},
		{'!', decimalCharacterReferenceState, reconsume, numericCharacterReferenceEndState},
		{'a', decimalCharacterReferenceState, reconsume, numericCharacterReferenceEndState},
		{'a', numericCharacterReferenceEndState, reconsume, dataState},
		{'a', ambiguousAmpersandState, consume, ambiguousAmpersandState},
		{';', ambiguousAmpersandState, reconsume, dataState},

		{'!', scriptDataLessThanSignState, consume, scriptDataEscapeStartState},
		{'a', scriptDataEscapeStartState, reconsume, scriptDataState},
		{'-', scriptDataEscapedState, consume, scriptDataEscapedDashState},
		{'-', scriptDataEscapedDashDashState, consume, scriptDataEscapedDashDashState},
		{'>', scriptDataEscapedDashDashState, consume, scriptDataState},
		{'s', scriptDataEscapedLessThanSignState, reconsume, scriptDataDoubleEscapeStartState},
		{'>', scriptDataDoubleEscapeStartState, consume, scriptDataEscapedState},
		{'<', scriptDataDoubleEscapedState, consume, scriptDataDoubleEscapedLessThanSignState},
		{'/', scriptDataDoubleEscapedLessThanSignState, consume, scriptDataDoubleEscapeEndState},
	}

	for _, tt := range stateParserTests {
		runStateParserTest(tt, t)
	}
}

func runStateParserTest(testcase stateMachineTestCase, t *testing.T) {
	testName := fmt.Sprintf("%s-%#U", testcase.startingState, rune(testcase.in))
	t.Run(testName, func(t *testing.T) {
		t.Parallel()
		var errs ParseErrors
		p := NewHTMLTokenizer(nil, WithErrorReporter(&errs))
		// Handlers expect a token in progress in the tag, comment and
		// DOCTYPE states.
		p.current = newTokenBuilder(StartTagToken)
		p.current.startAttribute()
		p.currentState = testcase.startingState
		p.returnState = dataState

		action, state := p.stateToParser(testcase.startingState)(testcase.in, false)
		assert.Equal(t, testcase.nextExpectedState.String(), state.String())
		assert.Equal(t, testcase.expectedStep, action)
	})
}

func TestEveryStateHasAHandler(t *testing.T) {
	p := NewHTMLTokenizer(nil)
	for s := tokenizerState(0); s < numTokenizerStates; s++ {
		assert.NotNil(t, p.handlers[s], "no handler for %s", s)
		assert.NotContains(t, s.String(), "tokenizerState(", "no name for state %d", s)
	}
	assert.Nil(t, p.stateToParser(numTokenizerStates))
	assert.Equal(t, "tokenizerState(999)", tokenizerState(999).String())
}

type parserStatefulnessTestCase struct {
	inHTML     string                                // the HTML to tokenize
	startState tokenizerState                        // the starting state of the tokenizer
	testFunc   func(*HTMLTokenizer) (string, string) // since we are testing internal state, we need a function that can look inside the tokenizer
	setup      func(*HTMLTokenizer)                  // any setup code will be run before tokenization
}

func currentData(p *HTMLTokenizer) string {
	if p.current == nil {
		return "<nil>"
	}
	return string(p.current.data)
}

func inStartTag(p *HTMLTokenizer) {
	p.current = newTokenBuilder(StartTagToken)
}

// TestParseStatefulness runs the tokenizer over the whole input but stops
// before the end-of-input handlers, which would emit or drop the token under
// construction.
func TestParseStatefulness(t *testing.T) {
	parserStatefulnessTestCases := []parserStatefulnessTestCase{
		{"&", dataState, func(p *HTMLTokenizer) (string, string) { return p.returnState.String(), dataState.String() }, nil},
		{"&", rcDataState, func(p *HTMLTokenizer) (string, string) { return p.returnState.String(), rcDataState.String() }, nil},
		{"b", tagOpenState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "b" }, nil},
		{"ba", tagOpenState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "ba" }, nil},
		{"bAc", tagOpenState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "bac" }, nil},
		{"bA\u0000c", tagOpenState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "ba\uFFFDc" }, nil},
		{"a", endTagOpenState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "a" }, nil},
		{"P", endTagOpenState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "p" }, nil},
		{"1", endTagOpenState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "1" }, nil},
		{"U", tagNameState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "u" }, inStartTag},
		{"u", tagNameState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "u" }, inStartTag},
		{"div>", tagNameState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "<nil>" }, inStartTag},
		{"div>", tagNameState, func(p *HTMLTokenizer) (string, string) { return p.lastStartTagName, "div" }, inStartTag},
		{"a=b c", beforeAttributeNameState, func(p *HTMLTokenizer) (string, string) {
			attrs := p.current.token(false).Attr
			return fmt.Sprint(attrs), "[{a b} {c }]"
		}, inStartTag},
		{"a--b", commentState, func(p *HTMLTokenizer) (string, string) { return currentData(p), "a--b" }, func(p *HTMLTokenizer) {
			p.current = newTokenBuilder(CommentToken)
		}},
		{"#x4", characterReferenceState, func(p *HTMLTokenizer) (string, string) { return fmt.Sprint(p.charRefCode), "4" }, func(p *HTMLTokenizer) {
			p.returnState = dataState
		}},
		{"abc", dataState, func(p *HTMLTokenizer) (string, string) { return string(p.text), "abc" }, nil},
		{"ab<x>", dataState, func(p *HTMLTokenizer) (string, string) { return string(p.text), "" }, nil},
	}

	for _, testcase := range parserStatefulnessTestCases {
		runParserStatefulnessTest(testcase, t)
	}
}

func runParserStatefulnessTest(testcase parserStatefulnessTestCase, t *testing.T) {
	testName := fmt.Sprintf("%s-%s", testcase.startState, testcase.inHTML)
	t.Run(testName, func(t *testing.T) {
		t.Parallel()
		var errs ParseErrors
		p := NewHTMLTokenizer([]byte(testcase.inHTML), WithErrorReporter(&errs))
		p.currentState = testcase.startState
		if testcase.setup != nil {
			testcase.setup(p)
		}
		for !p.src.atEOF() {
			p.step()
		}
		answer, expected := testcase.testFunc(p)
		assert.Equal(t, expected, answer)
	})
}

func TestTokenizeExamples(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"", []Token{{Type: EndOfFileToken}}},
		{"hello", []Token{{Type: CharacterToken, Data: "hello"}, {Type: EndOfFileToken}}},
		{`<div CLASS="a">`, []Token{
			{Type: StartTagToken, Data: "div", Attr: []Attribute{{"class", "a"}}},
			{Type: EndOfFileToken},
		}},
		{"<br/>", []Token{{Type: StartTagToken, Data: "br", SelfClosing: true}, {Type: EndOfFileToken}}},
		{"</p>", []Token{{Type: EndTagToken, Data: "p"}, {Type: EndOfFileToken}}},
		{"<!-- x -->", []Token{{Type: CommentToken, Data: " x "}, {Type: EndOfFileToken}}},
		{"<!DOCTYPE html>", []Token{{Type: DoctypeToken, Data: "html"}, {Type: EndOfFileToken}}},
		{"<div", []Token{{Type: StartTagToken, Data: "div"}, {Type: EndOfFileToken}}},
		{`<a x="1" x="2">`, []Token{
			{Type: StartTagToken, Data: "a", Attr: []Attribute{{"x", "1"}, {"x", "2"}}},
			{Type: EndOfFileToken},
		}},
		{"a < b", []Token{{Type: CharacterToken, Data: "a < b"}, {Type: EndOfFileToken}}},
		{"x<p>y", []Token{
			{Type: CharacterToken, Data: "x"},
			{Type: StartTagToken, Data: "p"},
			{Type: CharacterToken, Data: "y"},
			{Type: EndOfFileToken},
		}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := TokenizeString(tt.in, WithErrorReporter(&ParseErrors{}))
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.True(t, tt.want[i].Equal(&got[i]), "token %d: want %s, got %s", i, &tt.want[i], &got[i])
			}
		})
	}
}

func TestTokenDataAtom(t *testing.T) {
	tokens := TokenizeString("<DIV></custom-el><!DOCTYPE html>", WithErrorReporter(&ParseErrors{}))
	require.Len(t, tokens, 4)
	assert.Equal(t, "div", tokens[0].DataAtom.String())
	assert.Zero(t, tokens[1].DataAtom)
	assert.Equal(t, "html", tokens[2].DataAtom.String())
}

func TestNullByteIsNotEndOfInput(t *testing.T) {
	var errs ParseErrors
	tokens := TokenizeString("a\x00b<p\x00>", WithErrorReporter(&errs))
	require.Len(t, tokens, 3)
	assert.Equal(t, "a\x00b", tokens[0].Data)
	assert.Equal(t, "p\uFFFD", tokens[1].Data)
	assert.Equal(t, EndOfFileToken, tokens[2].Type)
	assert.Equal(t, []ErrorCode{ErrUnexpectedNullCharacter, ErrUnexpectedNullCharacter}, errs.Codes())
}

func TestDuplicateAttributeRemoval(t *testing.T) {
	var errs ParseErrors
	tokens := TokenizeString(`<a x="1" X="2" y="3">`, WithDuplicateAttributeRemoval(), WithErrorReporter(&errs))
	require.Len(t, tokens, 2)
	assert.Equal(t, []Attribute{{"x", "1"}, {"y", "3"}}, tokens[0].Attr)
	assert.Equal(t, []ErrorCode{ErrDuplicateAttribute}, errs.Codes())
}

func TestCharacterReferencesDisabled(t *testing.T) {
	tokens := TokenizeString(`&amp;<a href="&lt;">`, WithCharacterReferences(false))
	require.Len(t, tokens, 3)
	assert.Equal(t, "&amp;", tokens[0].Data)
	assert.Equal(t, []Attribute{{"href", "&lt;"}}, tokens[1].Attr)
}

func TestNewlineNormalization(t *testing.T) {
	tokens := TokenizeString("a\r\nb\rc", WithNewlineNormalization())
	require.Len(t, tokens, 2)
	assert.Equal(t, "a\nb\nc", tokens[0].Data)

	tokens = TokenizeString("a\r\nb")
	assert.Equal(t, "a\r\nb", tokens[0].Data)
}

func TestTokenizeReader(t *testing.T) {
	tokens, err := TokenizeReader(strings.NewReader("<p>hi</p>"))
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, "hi", tokens[1].Data)

	_, err = TokenizeReader(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read html input")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("disk on fire")
}

func TestPullAPI(t *testing.T) {
	p := NewHTMLTokenizer([]byte("<p>a</p>"))
	var types []TokenType
	for p.Next() {
		tok := p.Token()
		require.NotNil(t, tok)
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{StartTagToken, CharacterToken, EndTagToken, EndOfFileToken}, types)
	assert.False(t, p.Next())
	assert.Nil(t, p.Token())
}

func TestParseErrorOffsets(t *testing.T) {
	var errs ParseErrors
	TokenizeString("ab</>", WithErrorReporter(&errs))
	require.Len(t, errs, 1)
	assert.Equal(t, ErrMissingEndTagName, errs[0].Code)
	assert.Equal(t, 4, errs[0].Offset)
	assert.Equal(t, "EndTagOpen", errs[0].State)
}

func TestTraceLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	TokenizeString("<a>", WithLogger(logrus.NewEntry(logger)))

	require.NotEmpty(t, hook.AllEntries())
	first := hook.AllEntries()[0]
	assert.Equal(t, "step", first.Message)
	assert.Equal(t, "Data", first.Data["state"])
	assert.Equal(t, "TagOpen", first.Data["next"])
}

func TestDefaultReporterLogsAtDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	TokenizeString("</>", WithLogger(logrus.NewEntry(logger)))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, ErrMissingEndTagName, entry.Data["code"])
}

func TestEmitWithoutTokenPanics(t *testing.T) {
	p := NewHTMLTokenizer(nil)
	assert.Panics(t, func() { p.emitCurrent() })
}

func TestLastStartTagIsCaseFolded(t *testing.T) {
	tokens := TokenizeString("a</TITLE>b", WithInitialContentModel(RCDATAContent), WithLastStartTag("TITLE"))
	require.Len(t, tokens, 4)
	assert.Equal(t, Token{Type: CharacterToken, Data: "a"}, tokens[0])
	assert.Equal(t, EndTagToken, tokens[1].Type)
	assert.Equal(t, "title", tokens[1].Data)
	assert.Equal(t, "b", tokens[2].Data)

	p := NewHTMLTokenizer([]byte("x</Style>"), WithInitialContentModel(RAWTEXTContent))
	p.SetLastStartTag("STYLE")
	got := p.Run().Drain()
	require.Len(t, got, 3)
	assert.Equal(t, EndTagToken, got[1].Type)
}

func TestDefaultReporterSkipsFieldsWhenDebugIsOff(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)
	input := []byte(strings.Repeat("</>", 50))

	quiet := []Option{WithLogger(logrus.NewEntry(logger))}
	discard := []Option{WithLogger(logrus.NewEntry(logger)), WithErrorReporter(ParseErrorFunc(func(ParseError) {}))}
	logged := testing.AllocsPerRun(10, func() { Tokenize(input, quiet...) })
	dropped := testing.AllocsPerRun(10, func() { Tokenize(input, discard...) })

	assert.Empty(t, hook.AllEntries())
	// 50 parse errors would cost several allocations each if fields were built.
	assert.LessOrEqual(t, logged, dropped+2)
}

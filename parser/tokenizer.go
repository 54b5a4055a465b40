package parser

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// step tells the run loop what to do with the cursor once a state handler
// has looked at the current code unit.
type step uint8

const (
	// consume accepts the code unit; the cursor moves past it.
	consume step = iota
	// reconsume hands the same code unit to the next state.
	reconsume
	// skip means the handler already moved the cursor past a literal, so the
	// loop must not advance it again.
	skip
)

// a stateHandler looks at one code unit (eof is set once the input is
// exhausted) and returns what to do with the cursor and the next state.
type stateHandler func(c byte, eof bool) (step, tokenizerState)

// HTMLTokenizer holds the state of one tokenization run. It owns its input,
// its in-progress token and its token queue, so independent tokenizers can
// run concurrently.
type HTMLTokenizer struct {
	src                       *charSource
	currentState, returnState tokenizerState
	current                   *tokenBuilder
	text                      []byte
	tempBuffer                []byte
	charRefCode               int
	lastStartTagName          string
	foreignContent            bool
	tokens                    *TokenQueue
	done, finished            bool

	errs               ParseErrorReporter
	log                *logrus.Entry
	trace              bool
	dropDuplicateAttrs bool
	charRefs           bool
	normalizeNewlines  bool

	handlers [numTokenizerStates]stateHandler
}

// Option configures an HTMLTokenizer.
type Option func(*HTMLTokenizer)

// WithErrorReporter sends parse errors to r instead of the debug log.
func WithErrorReporter(r ParseErrorReporter) Option {
	return func(p *HTMLTokenizer) {
		p.errs = r
	}
}

// WithLogger sets the logger used for tracing and for parse errors when no
// reporter is configured.
func WithLogger(l *logrus.Entry) Option {
	return func(p *HTMLTokenizer) {
		p.log = l
	}
}

// WithInitialContentModel starts the tokenizer in the given content model
// instead of Data.
func WithInitialContentModel(m ContentModel) Option {
	return func(p *HTMLTokenizer) {
		p.currentState = m.state()
	}
}

// WithLastStartTag sets the name end tags are compared against in the
// RCDATA, RAWTEXT and script data content models. The name is folded to
// lower case like every tag name.
func WithLastStartTag(name string) Option {
	return func(p *HTMLTokenizer) {
		p.lastStartTagName = lowerASCII(name)
	}
}

// WithDuplicateAttributeRemoval drops every attribute whose name was already
// seen in the same tag. By default duplicates are kept in order.
func WithDuplicateAttributeRemoval() Option {
	return func(p *HTMLTokenizer) {
		p.dropDuplicateAttrs = true
	}
}

// WithCharacterReferences turns character reference decoding on or off.
// When off, '&' is ordinary text.
func WithCharacterReferences(enabled bool) Option {
	return func(p *HTMLTokenizer) {
		p.charRefs = enabled
	}
}

// WithNewlineNormalization rewrites CR LF and lone CR to LF before
// tokenizing.
func WithNewlineNormalization() Option {
	return func(p *HTMLTokenizer) {
		p.normalizeNewlines = true
	}
}

// NewHTMLTokenizer creates a tokenizer over input. The buffer is not copied
// and must not change while the tokenizer runs.
func NewHTMLTokenizer(input []byte, opts ...Option) *HTMLTokenizer {
	p := &HTMLTokenizer{
		currentState: dataState,
		tokens:       NewTokenQueue(defaultQueueCapacity),
		log:          logrus.NewEntry(logrus.StandardLogger()),
		charRefs:     true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.errs == nil {
		p.errs = logReporter{log: p.log}
	}
	p.trace = p.log.Logger.IsLevelEnabled(logrus.TraceLevel)
	if p.normalizeNewlines {
		input = normalizeNewlines(input)
	}
	p.src = newCharSource(input)
	p.handlers = p.stateHandlers()
	return p
}

// Tokenize runs a tokenizer over the whole of input and returns every token,
// ending with the EndOfFile token.
func Tokenize(input []byte, opts ...Option) []Token {
	return NewHTMLTokenizer(input, opts...).Run().Drain()
}

// TokenizeString is Tokenize for a string.
func TokenizeString(s string, opts ...Option) []Token {
	return Tokenize([]byte(s), opts...)
}

// TokenizeReader reads r to the end and tokenizes what it read.
func TokenizeReader(r io.Reader, opts ...Option) ([]Token, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read html input")
	}
	return Tokenize(input, opts...), nil
}

// Run processes the whole input and returns the queue holding every token.
func (p *HTMLTokenizer) Run() *TokenQueue {
	for !p.done {
		p.step()
	}
	return p.tokens
}

// Next reports whether Token has anything left to return.
func (p *HTMLTokenizer) Next() bool {
	return !p.finished
}

// Token returns the next token, running the state machine until at least
// one token is available. It returns nil after the EndOfFile token.
func (p *HTMLTokenizer) Token() *Token {
	for p.tokens.IsEmpty() && !p.done {
		p.step()
	}
	t := p.tokens.Pop()
	if t == nil || t.Type == EndOfFileToken {
		p.finished = true
	}
	return t
}

// SwitchContentModel moves the tokenizer into the text state of m. Tree
// construction calls it right after it has seen the start tag that opens
// the content.
func (p *HTMLTokenizer) SwitchContentModel(m ContentModel) {
	p.currentState = m.state()
}

// SetLastStartTag overrides the name used to recognize an appropriate end tag.
func (p *HTMLTokenizer) SetLastStartTag(name string) {
	p.lastStartTagName = lowerASCII(name)
}

// SetForeignContent tells the tokenizer whether the adjusted current node is
// outside the HTML namespace, which is where CDATA sections are allowed.
func (p *HTMLTokenizer) SetForeignContent(foreign bool) {
	p.foreignContent = foreign
}

// step runs the state machine on the code unit at the cursor, handing it
// from state to state until one of them consumes it.
func (p *HTMLTokenizer) step() {
	c, ok := p.src.current()
	for {
		action, next := p.handlers[p.currentState](c, !ok)
		if p.trace {
			p.log.WithFields(logrus.Fields{
				"state":  p.currentState.String(),
				"next":   next.String(),
				"offset": p.src.offset(),
				"byte":   c,
				"eof":    !ok,
			}).Trace("step")
		}
		p.currentState = next
		switch action {
		case reconsume:
			continue
		case consume:
			p.src.advance()
		}
		return
	}
}

func (p *HTMLTokenizer) parseError(code ErrorCode) {
	p.errs.ReportParseError(ParseError{
		Code:   code,
		Offset: p.src.offset(),
		State:  p.currentState.String(),
	})
}

// flushText emits the pending run of text, if any, as one character token.
func (p *HTMLTokenizer) flushText() {
	if len(p.text) == 0 {
		return
	}
	p.tokens.Push(&Token{Type: CharacterToken, Data: string(p.text)})
	p.text = p.text[:0]
}

func (p *HTMLTokenizer) emit(t Token) {
	p.flushText()
	p.tokens.Push(&t)
}

// emitCurrent hands the in-progress token over to the queue and leaves the
// slot empty. It returns the data state, where every emission lands.
func (p *HTMLTokenizer) emitCurrent() tokenizerState {
	b := p.current
	if b == nil {
		panic("parser: emit with no token in progress")
	}
	p.current = nil
	t := b.token(p.dropDuplicateAttrs)
	switch t.Type {
	case StartTagToken:
		p.lastStartTagName = t.Data
	case EndTagToken:
		if len(t.Attr) > 0 {
			p.parseError(ErrEndTagWithAttributes)
		}
		if t.SelfClosing {
			p.parseError(ErrEndTagWithTrailingSolidus)
		}
	}
	p.emit(t)
	return dataState
}

// discardCurrent drops the in-progress token without emitting it.
func (p *HTMLTokenizer) discardCurrent() {
	p.current = nil
}

func (p *HTMLTokenizer) emitEOF() {
	p.emit(Token{Type: EndOfFileToken})
	p.done = true
}

func (p *HTMLTokenizer) isAppropriateEndTag() bool {
	return p.current != nil && p.lastStartTagName != "" && p.lastStartTagName == string(p.current.data)
}

func normalizeNewlines(in []byte) []byte {
	if bytes.IndexByte(in, '\r') < 0 {
		return in
	}
	out := bytes.ReplaceAll(in, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n"))
}

func (p *HTMLTokenizer) dataStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.emitEOF()
		return consume, dataState
	}
	switch c {
	case '&':
		if p.charRefs {
			p.returnState = dataState
			return consume, characterReferenceState
		}
	case '<':
		return consume, tagOpenState
	case 0:
		p.parseError(ErrUnexpectedNullCharacter)
	}
	p.text = append(p.text, c)
	return consume, dataState
}

func (p *HTMLTokenizer) tagOpenStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.parseError(ErrEOFBeforeTagName)
		p.text = append(p.text, '<')
		return reconsume, dataState
	}
	switch {
	case c == '!':
		return consume, markupDeclarationOpenState
	case c == '/':
		return consume, endTagOpenState
	case isASCIIAlpha(c):
		p.current = newTokenBuilder(StartTagToken)
		return reconsume, tagNameState
	case c == '?':
		p.parseError(ErrUnexpectedQuestionMarkInsteadOfTagName)
		p.current = newTokenBuilder(CommentToken)
		return reconsume, bogusCommentState
	default:
		p.parseError(ErrInvalidFirstCharacterOfTagName)
		p.text = append(p.text, '<')
		return reconsume, dataState
	}
}

func (p *HTMLTokenizer) endTagOpenStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.parseError(ErrEOFBeforeTagName)
		p.text = append(p.text, '<', '/')
		return reconsume, dataState
	}
	switch {
	case isASCIIAlpha(c):
		p.current = newTokenBuilder(EndTagToken)
		return reconsume, tagNameState
	case c == '>':
		p.parseError(ErrMissingEndTagName)
		return consume, dataState
	default:
		p.parseError(ErrInvalidFirstCharacterOfTagName)
		p.current = newTokenBuilder(CommentToken)
		return reconsume, bogusCommentState
	}
}

func (p *HTMLTokenizer) tagNameStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		// The partial tag is still handed to tree construction.
		p.parseError(ErrEOFInTag)
		p.emitCurrent()
		return reconsume, dataState
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeAttributeNameState
	case c == '/':
		return consume, selfClosingStartTagState
	case c == '>':
		return consume, p.emitCurrent()
	case c == 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeDataString(replacementCharacter)
	default:
		p.current.writeData(toLower(c))
	}
	return consume, tagNameState
}

func (p *HTMLTokenizer) beforeAttributeNameStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return reconsume, afterAttributeNameState
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeAttributeNameState
	case c == '/', c == '>':
		return reconsume, afterAttributeNameState
	case c == '=':
		p.parseError(ErrUnexpectedEqualsSignBeforeAttributeName)
		p.current.startAttribute()
		p.current.writeAttributeName(c)
		return consume, attributeNameState
	default:
		p.current.startAttribute()
		return reconsume, attributeNameState
	}
}

// finishAttributeName runs when the attribute name is complete.
func (p *HTMLTokenizer) finishAttributeName() {
	if p.current.markDuplicateAttribute() {
		p.parseError(ErrDuplicateAttribute)
	}
}

func (p *HTMLTokenizer) attributeNameStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.finishAttributeName()
		return reconsume, afterAttributeNameState
	}
	switch {
	case isASCIIWhitespace(c), c == '/', c == '>':
		p.finishAttributeName()
		return reconsume, afterAttributeNameState
	case c == '=':
		p.finishAttributeName()
		return consume, beforeAttributeValueState
	case c == 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeAttributeName([]byte(replacementCharacter)...)
	case c == '"', c == '\'', c == '<':
		p.parseError(ErrUnexpectedCharacterInAttributeName)
		p.current.writeAttributeName(c)
	default:
		p.current.writeAttributeName(toLower(c))
	}
	return consume, attributeNameState
}

func (p *HTMLTokenizer) afterAttributeNameStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInTag()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, afterAttributeNameState
	case c == '/':
		return consume, selfClosingStartTagState
	case c == '=':
		return consume, beforeAttributeValueState
	case c == '>':
		return consume, p.emitCurrent()
	default:
		p.current.startAttribute()
		return reconsume, attributeNameState
	}
}

// eofInTag drops a tag that was cut off inside its attributes.
func (p *HTMLTokenizer) eofInTag() (step, tokenizerState) {
	p.parseError(ErrEOFInTag)
	p.discardCurrent()
	return reconsume, dataState
}

func (p *HTMLTokenizer) beforeAttributeValueStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return reconsume, attributeValueUnquotedState
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeAttributeValueState
	case c == '"':
		return consume, attributeValueDoubleQuotedState
	case c == '\'':
		return consume, attributeValueSingleQuotedState
	case c == '>':
		p.parseError(ErrMissingAttributeValue)
		return consume, p.emitCurrent()
	default:
		return reconsume, attributeValueUnquotedState
	}
}

func (p *HTMLTokenizer) attributeValueQuoted(c byte, eof bool, quote byte, self tokenizerState) (step, tokenizerState) {
	if eof {
		return p.eofInTag()
	}
	switch c {
	case quote:
		return consume, afterAttributeValueQuotedState
	case '&':
		if p.charRefs {
			p.returnState = self
			return consume, characterReferenceState
		}
		p.current.writeAttributeValue(c)
	case 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeAttributeValueString(replacementCharacter)
	default:
		p.current.writeAttributeValue(c)
	}
	return consume, self
}

func (p *HTMLTokenizer) attributeValueDoubleQuotedStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.attributeValueQuoted(c, eof, '"', attributeValueDoubleQuotedState)
}

func (p *HTMLTokenizer) attributeValueSingleQuotedStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.attributeValueQuoted(c, eof, '\'', attributeValueSingleQuotedState)
}

func (p *HTMLTokenizer) attributeValueUnquotedStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInTag()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeAttributeNameState
	case c == '&' && p.charRefs:
		p.returnState = attributeValueUnquotedState
		return consume, characterReferenceState
	case c == '>':
		return consume, p.emitCurrent()
	case c == 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeAttributeValueString(replacementCharacter)
	case c == '"', c == '\'', c == '<', c == '=', c == '`':
		p.parseError(ErrUnexpectedCharacterInUnquotedAttributeValue)
		p.current.writeAttributeValue(c)
	default:
		p.current.writeAttributeValue(c)
	}
	return consume, attributeValueUnquotedState
}

func (p *HTMLTokenizer) afterAttributeValueQuotedStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInTag()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeAttributeNameState
	case c == '/':
		return consume, selfClosingStartTagState
	case c == '>':
		return consume, p.emitCurrent()
	default:
		p.parseError(ErrMissingWhitespaceBetweenAttributes)
		return reconsume, beforeAttributeNameState
	}
}

func (p *HTMLTokenizer) selfClosingStartTagStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInTag()
	}
	if c == '>' {
		p.current.selfClosing = true
		return consume, p.emitCurrent()
	}
	p.parseError(ErrUnexpectedSolidusInTag)
	return reconsume, beforeAttributeNameState
}

func (p *HTMLTokenizer) bogusCommentStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.emitCurrent()
		return reconsume, dataState
	}
	switch c {
	case '>':
		return consume, p.emitCurrent()
	case 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeDataString(replacementCharacter)
	default:
		p.current.writeData(c)
	}
	return consume, bogusCommentState
}

func (p *HTMLTokenizer) markupDeclarationOpenStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case p.src.matchLiteral("--", false):
		p.current = newTokenBuilder(CommentToken)
		return skip, commentStartState
	case p.src.matchLiteral("DOCTYPE", true):
		return skip, doctypeState
	case p.src.matchLiteral("[CDATA[", false):
		if p.foreignContent {
			return skip, cdataSectionState
		}
		p.parseError(ErrCDATAInHTMLContent)
		p.current = newTokenBuilder(CommentToken)
		p.current.writeDataString("[CDATA[")
		return skip, bogusCommentState
	}
	p.parseError(ErrIncorrectlyOpenedComment)
	p.current = newTokenBuilder(CommentToken)
	return reconsume, bogusCommentState
}

func (p *HTMLTokenizer) commentStartStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
	case c == '-':
		return consume, commentStartDashState
	case c == '>':
		p.parseError(ErrAbruptClosingOfEmptyComment)
		return consume, p.emitCurrent()
	}
	return reconsume, commentState
}

// eofInComment emits the unterminated comment.
func (p *HTMLTokenizer) eofInComment() (step, tokenizerState) {
	p.parseError(ErrEOFInComment)
	p.emitCurrent()
	return reconsume, dataState
}

func (p *HTMLTokenizer) commentStartDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInComment()
	}
	switch c {
	case '-':
		return consume, commentEndState
	case '>':
		p.parseError(ErrAbruptClosingOfEmptyComment)
		return consume, p.emitCurrent()
	}
	p.current.writeData('-')
	return reconsume, commentState
}

func (p *HTMLTokenizer) commentStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInComment()
	}
	switch c {
	case '<':
		p.current.writeData(c)
		return consume, commentLessThanSignState
	case '-':
		return consume, commentEndDashState
	case 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeDataString(replacementCharacter)
	default:
		p.current.writeData(c)
	}
	return consume, commentState
}

// The comment less-than-sign states only look for "<!--" nested inside a
// comment. Everything they see has already been written to the comment.
func (p *HTMLTokenizer) commentLessThanSignStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
	case c == '!':
		p.current.writeData(c)
		return consume, commentLessThanSignBangState
	case c == '<':
		p.current.writeData(c)
		return consume, commentLessThanSignState
	}
	return reconsume, commentState
}

func (p *HTMLTokenizer) commentLessThanSignBangStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && c == '-' {
		return consume, commentLessThanSignBangDashState
	}
	return reconsume, commentState
}

func (p *HTMLTokenizer) commentLessThanSignBangDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && c == '-' {
		return consume, commentLessThanSignBangDashDashState
	}
	return reconsume, commentEndDashState
}

func (p *HTMLTokenizer) commentLessThanSignBangDashDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && c != '>' {
		p.parseError(ErrNestedComment)
	}
	return reconsume, commentEndState
}

func (p *HTMLTokenizer) commentEndDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInComment()
	}
	if c == '-' {
		return consume, commentEndState
	}
	p.current.writeData('-')
	return reconsume, commentState
}

func (p *HTMLTokenizer) commentEndStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInComment()
	}
	switch c {
	case '>':
		return consume, p.emitCurrent()
	case '!':
		return consume, commentEndBangState
	case '-':
		p.current.writeData('-')
		return consume, commentEndState
	}
	p.current.writeData('-', '-')
	return reconsume, commentState
}

// commentEndBangStateParser handles "--!". Unless a '>' closes the comment
// the sequence is kept in the data as "-!".
func (p *HTMLTokenizer) commentEndBangStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInComment()
	}
	switch c {
	case '-':
		p.current.writeData('-', '!')
		return consume, commentEndDashState
	case '>':
		p.parseError(ErrIncorrectlyClosedComment)
		return consume, p.emitCurrent()
	}
	p.current.writeData('-', '!')
	return reconsume, commentState
}

// eofInDoctype emits whatever DOCTYPE has been built so far in quirks mode.
func (p *HTMLTokenizer) eofInDoctype() (step, tokenizerState) {
	p.parseError(ErrEOFInDoctype)
	if p.current == nil {
		p.current = newTokenBuilder(DoctypeToken)
	}
	p.current.forceQuirks = true
	p.emitCurrent()
	return reconsume, dataState
}

// missingDoctypePart emits the DOCTYPE in quirks mode when '>' arrives too early.
func (p *HTMLTokenizer) missingDoctypePart(code ErrorCode) (step, tokenizerState) {
	p.parseError(code)
	p.current.forceQuirks = true
	return consume, p.emitCurrent()
}

// toBogusDoctype gives up on the rest of the DOCTYPE.
func (p *HTMLTokenizer) toBogusDoctype(code ErrorCode, quirks bool) (step, tokenizerState) {
	p.parseError(code)
	if quirks {
		p.current.forceQuirks = true
	}
	return reconsume, bogusDoctypeState
}

func (p *HTMLTokenizer) doctypeStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
		return p.eofInDoctype()
	case isASCIIWhitespace(c):
		return consume, beforeDoctypeNameState
	case c == '>':
		return reconsume, beforeDoctypeNameState
	}
	p.parseError(ErrMissingWhitespaceBeforeDoctypeName)
	return reconsume, beforeDoctypeNameState
}

func (p *HTMLTokenizer) beforeDoctypeNameStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	if isASCIIWhitespace(c) {
		return consume, beforeDoctypeNameState
	}
	p.current = newTokenBuilder(DoctypeToken)
	switch c {
	case '>':
		return p.missingDoctypePart(ErrMissingDoctypeName)
	case 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeDataString(replacementCharacter)
	default:
		p.current.writeData(toLower(c))
	}
	return consume, doctypeNameState
}

func (p *HTMLTokenizer) doctypeNameStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, afterDoctypeNameState
	case c == '>':
		return consume, p.emitCurrent()
	case c == 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeDataString(replacementCharacter)
	default:
		p.current.writeData(toLower(c))
	}
	return consume, doctypeNameState
}

func (p *HTMLTokenizer) afterDoctypeNameStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
		return p.eofInDoctype()
	case isASCIIWhitespace(c):
		return consume, afterDoctypeNameState
	case c == '>':
		return consume, p.emitCurrent()
	case p.src.matchLiteral("PUBLIC", true):
		return skip, afterDoctypePublicKeywordState
	case p.src.matchLiteral("SYSTEM", true):
		return skip, afterDoctypeSystemKeywordState
	}
	return p.toBogusDoctype(ErrInvalidCharacterSequenceAfterDoctypeName, true)
}

func (p *HTMLTokenizer) afterDoctypePublicKeywordStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeDoctypePublicIdentifierState
	case c == '"':
		p.parseError(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		p.current.setPublicIDEmpty()
		return consume, doctypePublicIdentifierDoubleQuotedState
	case c == '\'':
		p.parseError(ErrMissingWhitespaceAfterDoctypePublicKeyword)
		p.current.setPublicIDEmpty()
		return consume, doctypePublicIdentifierSingleQuotedState
	case c == '>':
		return p.missingDoctypePart(ErrMissingDoctypePublicIdentifier)
	}
	return p.toBogusDoctype(ErrMissingQuoteBeforeDoctypePublicIdentifier, true)
}

func (p *HTMLTokenizer) beforeDoctypePublicIdentifierStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeDoctypePublicIdentifierState
	case c == '"':
		p.current.setPublicIDEmpty()
		return consume, doctypePublicIdentifierDoubleQuotedState
	case c == '\'':
		p.current.setPublicIDEmpty()
		return consume, doctypePublicIdentifierSingleQuotedState
	case c == '>':
		return p.missingDoctypePart(ErrMissingDoctypePublicIdentifier)
	}
	return p.toBogusDoctype(ErrMissingQuoteBeforeDoctypePublicIdentifier, true)
}

func (p *HTMLTokenizer) doctypePublicIdentifierQuoted(c byte, eof bool, quote byte, self tokenizerState) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch c {
	case quote:
		return consume, afterDoctypePublicIdentifierState
	case 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writePublicID([]byte(replacementCharacter)...)
	case '>':
		return p.missingDoctypePart(ErrAbruptDoctypePublicIdentifier)
	default:
		p.current.writePublicID(c)
	}
	return consume, self
}

func (p *HTMLTokenizer) doctypePublicIdentifierDoubleQuotedStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.doctypePublicIdentifierQuoted(c, eof, '"', doctypePublicIdentifierDoubleQuotedState)
}

func (p *HTMLTokenizer) doctypePublicIdentifierSingleQuotedStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.doctypePublicIdentifierQuoted(c, eof, '\'', doctypePublicIdentifierSingleQuotedState)
}

func (p *HTMLTokenizer) afterDoctypePublicIdentifierStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, betweenDoctypePublicAndSystemIdentifiersState
	case c == '>':
		return consume, p.emitCurrent()
	case c == '"':
		p.parseError(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIDs)
		p.current.setSystemIDEmpty()
		return consume, doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		p.parseError(ErrMissingWhitespaceBetweenDoctypePublicAndSystemIDs)
		p.current.setSystemIDEmpty()
		return consume, doctypeSystemIdentifierSingleQuotedState
	}
	return p.toBogusDoctype(ErrMissingQuoteBeforeDoctypeSystemIdentifier, true)
}

func (p *HTMLTokenizer) betweenDoctypePublicAndSystemIdentifiersStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, betweenDoctypePublicAndSystemIdentifiersState
	case c == '>':
		return consume, p.emitCurrent()
	case c == '"':
		p.current.setSystemIDEmpty()
		return consume, doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		p.current.setSystemIDEmpty()
		return consume, doctypeSystemIdentifierSingleQuotedState
	}
	return p.toBogusDoctype(ErrMissingQuoteBeforeDoctypeSystemIdentifier, true)
}

func (p *HTMLTokenizer) afterDoctypeSystemKeywordStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeDoctypeSystemIdentifierState
	case c == '"':
		p.parseError(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		p.current.setSystemIDEmpty()
		return consume, doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		p.parseError(ErrMissingWhitespaceAfterDoctypeSystemKeyword)
		p.current.setSystemIDEmpty()
		return consume, doctypeSystemIdentifierSingleQuotedState
	case c == '>':
		return p.missingDoctypePart(ErrMissingDoctypeSystemIdentifier)
	}
	return p.toBogusDoctype(ErrMissingQuoteBeforeDoctypeSystemIdentifier, true)
}

func (p *HTMLTokenizer) beforeDoctypeSystemIdentifierStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, beforeDoctypeSystemIdentifierState
	case c == '"':
		p.current.setSystemIDEmpty()
		return consume, doctypeSystemIdentifierDoubleQuotedState
	case c == '\'':
		p.current.setSystemIDEmpty()
		return consume, doctypeSystemIdentifierSingleQuotedState
	case c == '>':
		return p.missingDoctypePart(ErrMissingDoctypeSystemIdentifier)
	}
	return p.toBogusDoctype(ErrMissingQuoteBeforeDoctypeSystemIdentifier, true)
}

func (p *HTMLTokenizer) doctypeSystemIdentifierQuoted(c byte, eof bool, quote byte, self tokenizerState) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch c {
	case quote:
		return consume, afterDoctypeSystemIdentifierState
	case 0:
		p.parseError(ErrUnexpectedNullCharacter)
		p.current.writeSystemID([]byte(replacementCharacter)...)
	case '>':
		return p.missingDoctypePart(ErrAbruptDoctypeSystemIdentifier)
	default:
		p.current.writeSystemID(c)
	}
	return consume, self
}

func (p *HTMLTokenizer) doctypeSystemIdentifierDoubleQuotedStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.doctypeSystemIdentifierQuoted(c, eof, '"', doctypeSystemIdentifierDoubleQuotedState)
}

func (p *HTMLTokenizer) doctypeSystemIdentifierSingleQuotedStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.doctypeSystemIdentifierQuoted(c, eof, '\'', doctypeSystemIdentifierSingleQuotedState)
}

func (p *HTMLTokenizer) afterDoctypeSystemIdentifierStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInDoctype()
	}
	switch {
	case isASCIIWhitespace(c):
		return consume, afterDoctypeSystemIdentifierState
	case c == '>':
		return consume, p.emitCurrent()
	}
	// This one does not set force-quirks.
	return p.toBogusDoctype(ErrUnexpectedCharacterAfterDoctypeSystemIdentifier, false)
}

func (p *HTMLTokenizer) bogusDoctypeStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.emitCurrent()
		return reconsume, dataState
	}
	switch c {
	case '>':
		return consume, p.emitCurrent()
	case 0:
		p.parseError(ErrUnexpectedNullCharacter)
	}
	return consume, bogusDoctypeState
}

const replacementCharacter = "\uFFFD"

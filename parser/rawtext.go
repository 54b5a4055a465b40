package parser

import "strconv"

// ContentModel selects the family of text states the tokenizer reads
// character data with. Tree construction picks it after seeing certain
// start tags.
type ContentModel uint8

const (
	DataContent ContentModel = iota
	RCDATAContent
	RAWTEXTContent
	ScriptDataContent
	PLAINTEXTContent
)

func (m ContentModel) state() tokenizerState {
	switch m {
	case RCDATAContent:
		return rcDataState
	case RAWTEXTContent:
		return rawTextState
	case ScriptDataContent:
		return scriptDataState
	case PLAINTEXTContent:
		return plaintextState
	}
	return dataState
}

func (m ContentModel) String() string {
	switch m {
	case DataContent:
		return "Data"
	case RCDATAContent:
		return "RCDATA"
	case RAWTEXTContent:
		return "RAWTEXT"
	case ScriptDataContent:
		return "ScriptData"
	case PLAINTEXTContent:
		return "PLAINTEXT"
	}
	return "ContentModel(" + strconv.Itoa(int(m)) + ")"
}

// ParseContentModel maps the name printed by String back to its ContentModel.
func ParseContentModel(s string) (ContentModel, bool) {
	for m := DataContent; m <= PLAINTEXTContent; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return DataContent, false
}

// textWithNull handles the NUL shared by every text state but Data.
func (p *HTMLTokenizer) textWithNull(c byte) {
	if c == 0 {
		p.parseError(ErrUnexpectedNullCharacter)
		p.text = append(p.text, replacementCharacter...)
		return
	}
	p.text = append(p.text, c)
}

func (p *HTMLTokenizer) rcDataStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.emitEOF()
		return consume, rcDataState
	}
	switch c {
	case '&':
		if p.charRefs {
			p.returnState = rcDataState
			return consume, characterReferenceState
		}
	case '<':
		return consume, rcDataLessThanSignState
	}
	p.textWithNull(c)
	return consume, rcDataState
}

func (p *HTMLTokenizer) rawTextStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.emitEOF()
		return consume, rawTextState
	}
	if c == '<' {
		return consume, rawTextLessThanSignState
	}
	p.textWithNull(c)
	return consume, rawTextState
}

func (p *HTMLTokenizer) scriptDataStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.emitEOF()
		return consume, scriptDataState
	}
	if c == '<' {
		return consume, scriptDataLessThanSignState
	}
	p.textWithNull(c)
	return consume, scriptDataState
}

func (p *HTMLTokenizer) plaintextStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.emitEOF()
		return consume, plaintextState
	}
	p.textWithNull(c)
	return consume, plaintextState
}

// The RCDATA, RAWTEXT and script data end tag states only differ in the text
// state they fall back to when the tag turns out not to be an end tag for
// the element that opened the content.

func (p *HTMLTokenizer) textLessThanSign(c byte, eof bool, endTagOpen, text tokenizerState) (step, tokenizerState) {
	if !eof && c == '/' {
		p.tempBuffer = p.tempBuffer[:0]
		return consume, endTagOpen
	}
	p.text = append(p.text, '<')
	return reconsume, text
}

func (p *HTMLTokenizer) textEndTagOpen(c byte, eof bool, endTagName, text tokenizerState) (step, tokenizerState) {
	if !eof && isASCIIAlpha(c) {
		p.current = newTokenBuilder(EndTagToken)
		return reconsume, endTagName
	}
	p.text = append(p.text, '<', '/')
	return reconsume, text
}

func (p *HTMLTokenizer) textEndTagName(c byte, eof bool, self, text tokenizerState) (step, tokenizerState) {
	switch {
	case eof:
	case isASCIIWhitespace(c):
		if p.isAppropriateEndTag() {
			return consume, beforeAttributeNameState
		}
	case c == '/':
		if p.isAppropriateEndTag() {
			return consume, selfClosingStartTagState
		}
	case c == '>':
		if p.isAppropriateEndTag() {
			return consume, p.emitCurrent()
		}
	case isASCIIAlpha(c):
		p.current.writeData(toLower(c))
		p.tempBuffer = append(p.tempBuffer, c)
		return consume, self
	}
	p.discardCurrent()
	p.text = append(p.text, '<', '/')
	p.text = append(p.text, p.tempBuffer...)
	return reconsume, text
}

func (p *HTMLTokenizer) rcDataLessThanSignStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textLessThanSign(c, eof, rcDataEndTagOpenState, rcDataState)
}

func (p *HTMLTokenizer) rcDataEndTagOpenStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textEndTagOpen(c, eof, rcDataEndTagNameState, rcDataState)
}

func (p *HTMLTokenizer) rcDataEndTagNameStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textEndTagName(c, eof, rcDataEndTagNameState, rcDataState)
}

func (p *HTMLTokenizer) rawTextLessThanSignStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textLessThanSign(c, eof, rawTextEndTagOpenState, rawTextState)
}

func (p *HTMLTokenizer) rawTextEndTagOpenStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textEndTagOpen(c, eof, rawTextEndTagNameState, rawTextState)
}

func (p *HTMLTokenizer) rawTextEndTagNameStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textEndTagName(c, eof, rawTextEndTagNameState, rawTextState)
}

func (p *HTMLTokenizer) scriptDataLessThanSignStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
	case c == '/':
		p.tempBuffer = p.tempBuffer[:0]
		return consume, scriptDataEndTagOpenState
	case c == '!':
		p.text = append(p.text, '<', '!')
		return consume, scriptDataEscapeStartState
	}
	p.text = append(p.text, '<')
	return reconsume, scriptDataState
}

func (p *HTMLTokenizer) scriptDataEndTagOpenStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textEndTagOpen(c, eof, scriptDataEndTagNameState, scriptDataState)
}

func (p *HTMLTokenizer) scriptDataEndTagNameStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textEndTagName(c, eof, scriptDataEndTagNameState, scriptDataState)
}

func (p *HTMLTokenizer) scriptDataEscapeStartStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && c == '-' {
		p.text = append(p.text, c)
		return consume, scriptDataEscapeStartDashState
	}
	return reconsume, scriptDataState
}

func (p *HTMLTokenizer) scriptDataEscapeStartDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && c == '-' {
		p.text = append(p.text, c)
		return consume, scriptDataEscapedDashDashState
	}
	return reconsume, scriptDataState
}

// eofInScriptComment ends the run inside "<!--" script text.
func (p *HTMLTokenizer) eofInScriptComment() (step, tokenizerState) {
	p.parseError(ErrEOFInScriptHTMLCommentLikeText)
	p.emitEOF()
	return consume, dataState
}

func (p *HTMLTokenizer) scriptDataEscapedStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInScriptComment()
	}
	switch c {
	case '-':
		p.text = append(p.text, c)
		return consume, scriptDataEscapedDashState
	case '<':
		return consume, scriptDataEscapedLessThanSignState
	}
	p.textWithNull(c)
	return consume, scriptDataEscapedState
}

func (p *HTMLTokenizer) scriptDataEscapedDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInScriptComment()
	}
	switch c {
	case '-':
		p.text = append(p.text, c)
		return consume, scriptDataEscapedDashDashState
	case '<':
		return consume, scriptDataEscapedLessThanSignState
	}
	p.textWithNull(c)
	return consume, scriptDataEscapedState
}

func (p *HTMLTokenizer) scriptDataEscapedDashDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInScriptComment()
	}
	switch c {
	case '-':
		p.text = append(p.text, c)
		return consume, scriptDataEscapedDashDashState
	case '<':
		return consume, scriptDataEscapedLessThanSignState
	case '>':
		p.text = append(p.text, c)
		return consume, scriptDataState
	}
	p.textWithNull(c)
	return consume, scriptDataEscapedState
}

func (p *HTMLTokenizer) scriptDataEscapedLessThanSignStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
	case c == '/':
		p.tempBuffer = p.tempBuffer[:0]
		return consume, scriptDataEscapedEndTagOpenState
	case isASCIIAlpha(c):
		p.tempBuffer = p.tempBuffer[:0]
		p.text = append(p.text, '<')
		return reconsume, scriptDataDoubleEscapeStartState
	}
	p.text = append(p.text, '<')
	return reconsume, scriptDataEscapedState
}

func (p *HTMLTokenizer) scriptDataEscapedEndTagOpenStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textEndTagOpen(c, eof, scriptDataEscapedEndTagNameState, scriptDataEscapedState)
}

func (p *HTMLTokenizer) scriptDataEscapedEndTagNameStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.textEndTagName(c, eof, scriptDataEscapedEndTagNameState, scriptDataEscapedState)
}

// scriptEscapeBoundary collects a tag name into the temporary buffer while
// passing it through as text. When the name ends, the buffer decides whether
// the tokenizer moves to matched or stays in unmatched.
func (p *HTMLTokenizer) scriptEscapeBoundary(c byte, eof bool, self, matched, unmatched tokenizerState) (step, tokenizerState) {
	switch {
	case eof:
	case isASCIIWhitespace(c), c == '/', c == '>':
		p.text = append(p.text, c)
		if string(p.tempBuffer) == "script" {
			return consume, matched
		}
		return consume, unmatched
	case isASCIIAlpha(c):
		p.tempBuffer = append(p.tempBuffer, toLower(c))
		p.text = append(p.text, c)
		return consume, self
	}
	return reconsume, unmatched
}

func (p *HTMLTokenizer) scriptDataDoubleEscapeStartStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.scriptEscapeBoundary(c, eof, scriptDataDoubleEscapeStartState, scriptDataDoubleEscapedState, scriptDataEscapedState)
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInScriptComment()
	}
	switch c {
	case '-':
		p.text = append(p.text, c)
		return consume, scriptDataDoubleEscapedDashState
	case '<':
		p.text = append(p.text, c)
		return consume, scriptDataDoubleEscapedLessThanSignState
	}
	p.textWithNull(c)
	return consume, scriptDataDoubleEscapedState
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInScriptComment()
	}
	switch c {
	case '-':
		p.text = append(p.text, c)
		return consume, scriptDataDoubleEscapedDashDashState
	case '<':
		p.text = append(p.text, c)
		return consume, scriptDataDoubleEscapedLessThanSignState
	}
	p.textWithNull(c)
	return consume, scriptDataDoubleEscapedState
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedDashDashStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		return p.eofInScriptComment()
	}
	switch c {
	case '-':
		p.text = append(p.text, c)
		return consume, scriptDataDoubleEscapedDashDashState
	case '<':
		p.text = append(p.text, c)
		return consume, scriptDataDoubleEscapedLessThanSignState
	case '>':
		p.text = append(p.text, c)
		return consume, scriptDataState
	}
	p.textWithNull(c)
	return consume, scriptDataDoubleEscapedState
}

func (p *HTMLTokenizer) scriptDataDoubleEscapedLessThanSignStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && c == '/' {
		p.tempBuffer = p.tempBuffer[:0]
		p.text = append(p.text, c)
		return consume, scriptDataDoubleEscapeEndState
	}
	return reconsume, scriptDataDoubleEscapedState
}

func (p *HTMLTokenizer) scriptDataDoubleEscapeEndStateParser(c byte, eof bool) (step, tokenizerState) {
	return p.scriptEscapeBoundary(c, eof, scriptDataDoubleEscapeEndState, scriptDataEscapedState, scriptDataDoubleEscapedState)
}

func (p *HTMLTokenizer) cdataSectionStateParser(c byte, eof bool) (step, tokenizerState) {
	if eof {
		p.parseError(ErrEOFInCDATA)
		p.emitEOF()
		return consume, dataState
	}
	if c == ']' {
		return consume, cdataSectionBracketState
	}
	p.text = append(p.text, c)
	return consume, cdataSectionState
}

func (p *HTMLTokenizer) cdataSectionBracketStateParser(c byte, eof bool) (step, tokenizerState) {
	if !eof && c == ']' {
		return consume, cdataSectionEndState
	}
	p.text = append(p.text, ']')
	return reconsume, cdataSectionState
}

func (p *HTMLTokenizer) cdataSectionEndStateParser(c byte, eof bool) (step, tokenizerState) {
	switch {
	case eof:
	case c == ']':
		p.text = append(p.text, ']')
		return consume, cdataSectionEndState
	case c == '>':
		return consume, dataState
	}
	p.text = append(p.text, ']', ']')
	return reconsume, cdataSectionState
}

package parser

import "strconv"

type tokenizerState uint

const (
	dataState tokenizerState = iota
	rcDataState
	rawTextState
	scriptDataState
	plaintextState
	tagOpenState
	endTagOpenState
	tagNameState
	rcDataLessThanSignState
	rcDataEndTagOpenState
	rcDataEndTagNameState
	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState
	scriptDataLessThanSignState
	scriptDataEndTagOpenState
	scriptDataEndTagNameState
	scriptDataEscapeStartState
	scriptDataEscapeStartDashState
	scriptDataEscapedState
	scriptDataEscapedDashState
	scriptDataEscapedDashDashState
	scriptDataEscapedLessThanSignState
	scriptDataEscapedEndTagOpenState
	scriptDataEscapedEndTagNameState
	scriptDataDoubleEscapeStartState
	scriptDataDoubleEscapedState
	scriptDataDoubleEscapedDashState
	scriptDataDoubleEscapedDashDashState
	scriptDataDoubleEscapedLessThanSignState
	scriptDataDoubleEscapeEndState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState
	selfClosingStartTagState
	bogusCommentState
	markupDeclarationOpenState
	commentStartState
	commentStartDashState
	commentState
	commentLessThanSignState
	commentLessThanSignBangState
	commentLessThanSignBangDashState
	commentLessThanSignBangDashDashState
	commentEndDashState
	commentEndState
	commentEndBangState
	doctypeState
	beforeDoctypeNameState
	doctypeNameState
	afterDoctypeNameState
	afterDoctypePublicKeywordState
	beforeDoctypePublicIdentifierState
	doctypePublicIdentifierDoubleQuotedState
	doctypePublicIdentifierSingleQuotedState
	afterDoctypePublicIdentifierState
	betweenDoctypePublicAndSystemIdentifiersState
	afterDoctypeSystemKeywordState
	beforeDoctypeSystemIdentifierState
	doctypeSystemIdentifierDoubleQuotedState
	doctypeSystemIdentifierSingleQuotedState
	afterDoctypeSystemIdentifierState
	bogusDoctypeState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
	characterReferenceState
	namedCharacterReferenceState
	ambiguousAmpersandState
	numericCharacterReferenceState
	hexadecimalCharacterReferenceStartState
	decimalCharacterReferenceStartState
	hexadecimalCharacterReferenceState
	decimalCharacterReferenceState
	numericCharacterReferenceEndState

	numTokenizerStates
)

var tokenizerStateNames = [numTokenizerStates]string{
	dataState:                                     "Data",
	rcDataState:                                   "RCDATA",
	rawTextState:                                  "RAWTEXT",
	scriptDataState:                               "ScriptData",
	plaintextState:                                "PLAINTEXT",
	tagOpenState:                                  "TagOpen",
	endTagOpenState:                               "EndTagOpen",
	tagNameState:                                  "TagName",
	rcDataLessThanSignState:                       "RCDATALessThanSign",
	rcDataEndTagOpenState:                         "RCDATAEndTagOpen",
	rcDataEndTagNameState:                         "RCDATAEndTagName",
	rawTextLessThanSignState:                      "RAWTEXTLessThanSign",
	rawTextEndTagOpenState:                        "RAWTEXTEndTagOpen",
	rawTextEndTagNameState:                        "RAWTEXTEndTagName",
	scriptDataLessThanSignState:                   "ScriptDataLessThanSign",
	scriptDataEndTagOpenState:                     "ScriptDataEndTagOpen",
	scriptDataEndTagNameState:                     "ScriptDataEndTagName",
	scriptDataEscapeStartState:                    "ScriptDataEscapeStart",
	scriptDataEscapeStartDashState:                "ScriptDataEscapeStartDash",
	scriptDataEscapedState:                        "ScriptDataEscaped",
	scriptDataEscapedDashState:                    "ScriptDataEscapedDash",
	scriptDataEscapedDashDashState:                "ScriptDataEscapedDashDash",
	scriptDataEscapedLessThanSignState:            "ScriptDataEscapedLessThanSign",
	scriptDataEscapedEndTagOpenState:              "ScriptDataEscapedEndTagOpen",
	scriptDataEscapedEndTagNameState:              "ScriptDataEscapedEndTagName",
	scriptDataDoubleEscapeStartState:              "ScriptDataDoubleEscapeStart",
	scriptDataDoubleEscapedState:                  "ScriptDataDoubleEscaped",
	scriptDataDoubleEscapedDashState:              "ScriptDataDoubleEscapedDash",
	scriptDataDoubleEscapedDashDashState:          "ScriptDataDoubleEscapedDashDash",
	scriptDataDoubleEscapedLessThanSignState:      "ScriptDataDoubleEscapedLessThanSign",
	scriptDataDoubleEscapeEndState:                "ScriptDataDoubleEscapeEnd",
	beforeAttributeNameState:                      "BeforeAttributeName",
	attributeNameState:                            "AttributeName",
	afterAttributeNameState:                       "AfterAttributeName",
	beforeAttributeValueState:                     "BeforeAttributeValue",
	attributeValueDoubleQuotedState:               "AttributeValueDoubleQuoted",
	attributeValueSingleQuotedState:               "AttributeValueSingleQuoted",
	attributeValueUnquotedState:                   "AttributeValueUnquoted",
	afterAttributeValueQuotedState:                "AfterAttributeValueQuoted",
	selfClosingStartTagState:                      "SelfClosingStartTag",
	bogusCommentState:                             "BogusComment",
	markupDeclarationOpenState:                    "MarkupDeclarationOpen",
	commentStartState:                             "CommentStart",
	commentStartDashState:                         "CommentStartDash",
	commentState:                                  "Comment",
	commentLessThanSignState:                      "CommentLessThanSign",
	commentLessThanSignBangState:                  "CommentLessThanSignBang",
	commentLessThanSignBangDashState:              "CommentLessThanSignBangDash",
	commentLessThanSignBangDashDashState:          "CommentLessThanSignBangDashDash",
	commentEndDashState:                           "CommentEndDash",
	commentEndState:                               "CommentEnd",
	commentEndBangState:                           "CommentEndBang",
	doctypeState:                                  "DOCTYPE",
	beforeDoctypeNameState:                        "BeforeDOCTYPEName",
	doctypeNameState:                              "DOCTYPEName",
	afterDoctypeNameState:                         "AfterDOCTYPEName",
	afterDoctypePublicKeywordState:                "AfterDOCTYPEPublicKeyword",
	beforeDoctypePublicIdentifierState:            "BeforeDOCTYPEPublicIdentifier",
	doctypePublicIdentifierDoubleQuotedState:      "DOCTYPEPublicIdentifierDoubleQuoted",
	doctypePublicIdentifierSingleQuotedState:      "DOCTYPEPublicIdentifierSingleQuoted",
	afterDoctypePublicIdentifierState:             "AfterDOCTYPEPublicIdentifier",
	betweenDoctypePublicAndSystemIdentifiersState: "BetweenDOCTYPEPublicAndSystemIdentifiers",
	afterDoctypeSystemKeywordState:                "AfterDOCTYPESystemKeyword",
	beforeDoctypeSystemIdentifierState:            "BeforeDOCTYPESystemIdentifier",
	doctypeSystemIdentifierDoubleQuotedState:      "DOCTYPESystemIdentifierDoubleQuoted",
	doctypeSystemIdentifierSingleQuotedState:      "DOCTYPESystemIdentifierSingleQuoted",
	afterDoctypeSystemIdentifierState:             "AfterDOCTYPESystemIdentifier",
	bogusDoctypeState:                             "BogusDOCTYPE",
	cdataSectionState:                             "CDATASection",
	cdataSectionBracketState:                      "CDATASectionBracket",
	cdataSectionEndState:                          "CDATASectionEnd",
	characterReferenceState:                       "CharacterReference",
	namedCharacterReferenceState:                  "NamedCharacterReference",
	ambiguousAmpersandState:                       "AmbiguousAmpersand",
	numericCharacterReferenceState:                "NumericCharacterReference",
	hexadecimalCharacterReferenceStartState:       "HexadecimalCharacterReferenceStart",
	decimalCharacterReferenceStartState:           "DecimalCharacterReferenceStart",
	hexadecimalCharacterReferenceState:            "HexadecimalCharacterReference",
	decimalCharacterReferenceState:                "DecimalCharacterReference",
	numericCharacterReferenceEndState:             "NumericCharacterReferenceEnd",
}

func (s tokenizerState) String() string {
	if s < numTokenizerStates {
		return tokenizerStateNames[s]
	}
	return "tokenizerState(" + strconv.FormatUint(uint64(s), 10) + ")"
}

// stateHandlers resolves every state to its handler once so the run loop
// can index instead of switching on each code unit.
func (p *HTMLTokenizer) stateHandlers() [numTokenizerStates]stateHandler {
	var handlers [numTokenizerStates]stateHandler
	for s := range handlers {
		handlers[s] = p.stateToParser(tokenizerState(s))
	}
	return handlers
}

func (p *HTMLTokenizer) stateToParser(state tokenizerState) stateHandler {
	switch state {
	case dataState:
		return p.dataStateParser
	case rcDataState:
		return p.rcDataStateParser
	case rawTextState:
		return p.rawTextStateParser
	case scriptDataState:
		return p.scriptDataStateParser
	case plaintextState:
		return p.plaintextStateParser
	case tagOpenState:
		return p.tagOpenStateParser
	case endTagOpenState:
		return p.endTagOpenStateParser
	case tagNameState:
		return p.tagNameStateParser
	case rcDataLessThanSignState:
		return p.rcDataLessThanSignStateParser
	case rcDataEndTagOpenState:
		return p.rcDataEndTagOpenStateParser
	case rcDataEndTagNameState:
		return p.rcDataEndTagNameStateParser
	case rawTextLessThanSignState:
		return p.rawTextLessThanSignStateParser
	case rawTextEndTagOpenState:
		return p.rawTextEndTagOpenStateParser
	case rawTextEndTagNameState:
		return p.rawTextEndTagNameStateParser
	case scriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case scriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case scriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	case scriptDataEscapeStartState:
		return p.scriptDataEscapeStartStateParser
	case scriptDataEscapeStartDashState:
		return p.scriptDataEscapeStartDashStateParser
	case scriptDataEscapedState:
		return p.scriptDataEscapedStateParser
	case scriptDataEscapedDashState:
		return p.scriptDataEscapedDashStateParser
	case scriptDataEscapedDashDashState:
		return p.scriptDataEscapedDashDashStateParser
	case scriptDataEscapedLessThanSignState:
		return p.scriptDataEscapedLessThanSignStateParser
	case scriptDataEscapedEndTagOpenState:
		return p.scriptDataEscapedEndTagOpenStateParser
	case scriptDataEscapedEndTagNameState:
		return p.scriptDataEscapedEndTagNameStateParser
	case scriptDataDoubleEscapeStartState:
		return p.scriptDataDoubleEscapeStartStateParser
	case scriptDataDoubleEscapedState:
		return p.scriptDataDoubleEscapedStateParser
	case scriptDataDoubleEscapedDashState:
		return p.scriptDataDoubleEscapedDashStateParser
	case scriptDataDoubleEscapedDashDashState:
		return p.scriptDataDoubleEscapedDashDashStateParser
	case scriptDataDoubleEscapedLessThanSignState:
		return p.scriptDataDoubleEscapedLessThanSignStateParser
	case scriptDataDoubleEscapeEndState:
		return p.scriptDataDoubleEscapeEndStateParser
	case beforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case attributeNameState:
		return p.attributeNameStateParser
	case afterAttributeNameState:
		return p.afterAttributeNameStateParser
	case beforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case attributeValueDoubleQuotedState:
		return p.attributeValueDoubleQuotedStateParser
	case attributeValueSingleQuotedState:
		return p.attributeValueSingleQuotedStateParser
	case attributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case afterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case selfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case bogusCommentState:
		return p.bogusCommentStateParser
	case markupDeclarationOpenState:
		return p.markupDeclarationOpenStateParser
	case commentStartState:
		return p.commentStartStateParser
	case commentStartDashState:
		return p.commentStartDashStateParser
	case commentState:
		return p.commentStateParser
	case commentLessThanSignState:
		return p.commentLessThanSignStateParser
	case commentLessThanSignBangState:
		return p.commentLessThanSignBangStateParser
	case commentLessThanSignBangDashState:
		return p.commentLessThanSignBangDashStateParser
	case commentLessThanSignBangDashDashState:
		return p.commentLessThanSignBangDashDashStateParser
	case commentEndDashState:
		return p.commentEndDashStateParser
	case commentEndState:
		return p.commentEndStateParser
	case commentEndBangState:
		return p.commentEndBangStateParser
	case doctypeState:
		return p.doctypeStateParser
	case beforeDoctypeNameState:
		return p.beforeDoctypeNameStateParser
	case doctypeNameState:
		return p.doctypeNameStateParser
	case afterDoctypeNameState:
		return p.afterDoctypeNameStateParser
	case afterDoctypePublicKeywordState:
		return p.afterDoctypePublicKeywordStateParser
	case beforeDoctypePublicIdentifierState:
		return p.beforeDoctypePublicIdentifierStateParser
	case doctypePublicIdentifierDoubleQuotedState:
		return p.doctypePublicIdentifierDoubleQuotedStateParser
	case doctypePublicIdentifierSingleQuotedState:
		return p.doctypePublicIdentifierSingleQuotedStateParser
	case afterDoctypePublicIdentifierState:
		return p.afterDoctypePublicIdentifierStateParser
	case betweenDoctypePublicAndSystemIdentifiersState:
		return p.betweenDoctypePublicAndSystemIdentifiersStateParser
	case afterDoctypeSystemKeywordState:
		return p.afterDoctypeSystemKeywordStateParser
	case beforeDoctypeSystemIdentifierState:
		return p.beforeDoctypeSystemIdentifierStateParser
	case doctypeSystemIdentifierDoubleQuotedState:
		return p.doctypeSystemIdentifierDoubleQuotedStateParser
	case doctypeSystemIdentifierSingleQuotedState:
		return p.doctypeSystemIdentifierSingleQuotedStateParser
	case afterDoctypeSystemIdentifierState:
		return p.afterDoctypeSystemIdentifierStateParser
	case bogusDoctypeState:
		return p.bogusDoctypeStateParser
	case cdataSectionState:
		return p.cdataSectionStateParser
	case cdataSectionBracketState:
		return p.cdataSectionBracketStateParser
	case cdataSectionEndState:
		return p.cdataSectionEndStateParser
	case characterReferenceState:
		return p.characterReferenceStateParser
	case namedCharacterReferenceState:
		return p.namedCharacterReferenceStateParser
	case ambiguousAmpersandState:
		return p.ambiguousAmpersandStateParser
	case numericCharacterReferenceState:
		return p.numericCharacterReferenceStateParser
	case hexadecimalCharacterReferenceStartState:
		return p.hexadecimalCharacterReferenceStartStateParser
	case decimalCharacterReferenceStartState:
		return p.decimalCharacterReferenceStartStateParser
	case hexadecimalCharacterReferenceState:
		return p.hexadecimalCharacterReferenceStateParser
	case decimalCharacterReferenceState:
		return p.decimalCharacterReferenceStateParser
	case numericCharacterReferenceEndState:
		return p.numericCharacterReferenceEndStateParser
	}
	return nil
}

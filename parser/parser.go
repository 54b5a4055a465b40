package parser

import "golang.org/x/net/html/atom"

// Parser feeds tokens from a tokenizer to a consumer, which is usually tree
// construction. After every token the consumer reports how the tokenizer has
// to continue.
type Parser struct {
	Tokenizer *HTMLTokenizer
	Consumer  TokenConsumer
}

// TokenConsumer receives every token in order.
type TokenConsumer interface {
	ProcessToken(t *Token) Progress
}

// Progress is what a consumer hands back to the tokenizer after a token.
// ContentModel is nil when the tokenizer should stay where it is.
type Progress struct {
	ContentModel   *ContentModel
	ForeignContent bool
}

func MakeProgress(m *ContentModel, foreign bool) Progress {
	return Progress{
		ContentModel:   m,
		ForeignContent: foreign,
	}
}

func NewParser(input []byte, consumer TokenConsumer, opts ...Option) *Parser {
	return &Parser{
		Tokenizer: NewHTMLTokenizer(input, opts...),
		Consumer:  consumer,
	}
}

// Run pulls every token through the consumer and returns them in order.
func (p *Parser) Run() []Token {
	var tokens []Token
	for p.Tokenizer.Next() {
		t := p.Tokenizer.Token()
		if t == nil {
			break
		}
		tokens = append(tokens, *t)
		if p.Consumer == nil {
			continue
		}
		progress := p.Consumer.ProcessToken(t)
		if progress.ContentModel != nil {
			p.Tokenizer.SwitchContentModel(*progress.ContentModel)
		}
		p.Tokenizer.SetForeignContent(progress.ForeignContent)
	}
	return tokens
}

// ContentModelSwitcher is the part of tree construction that decides the
// tokenizer's content model. It knows which elements hold raw text and
// tracks whether the current node is inside svg or math.
type ContentModelSwitcher struct {
	scripting bool
	foreign   []string
}

// NewContentModelSwitcher creates a switcher. With scripting enabled
// noscript holds raw text.
func NewContentModelSwitcher(scripting bool) *ContentModelSwitcher {
	return &ContentModelSwitcher{scripting: scripting}
}

func (s *ContentModelSwitcher) ProcessToken(t *Token) Progress {
	switch t.Type {
	case StartTagToken:
		if len(s.foreign) > 0 || t.DataAtom == atom.Svg || t.DataAtom == atom.Math {
			if !t.SelfClosing {
				s.foreign = append(s.foreign, t.Data)
			}
			return MakeProgress(nil, s.inForeignContent())
		}
		if m, ok := s.contentModelFor(t.DataAtom); ok {
			return MakeProgress(&m, false)
		}
	case EndTagToken:
		for i := len(s.foreign) - 1; i >= 0; i-- {
			if s.foreign[i] == t.Data {
				s.foreign = s.foreign[:i]
				break
			}
		}
	}
	return MakeProgress(nil, s.inForeignContent())
}

func (s *ContentModelSwitcher) inForeignContent() bool {
	return len(s.foreign) > 0
}

func (s *ContentModelSwitcher) contentModelFor(a atom.Atom) (ContentModel, bool) {
	switch a {
	case atom.Title, atom.Textarea:
		return RCDATAContent, true
	case atom.Style, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes:
		return RAWTEXTContent, true
	case atom.Noscript:
		if s.scripting {
			return RAWTEXTContent, true
		}
	case atom.Script:
		return ScriptDataContent, true
	case atom.Plaintext:
		return PLAINTEXTContent, true
	}
	return DataContent, false
}

package parser

import (
	"strconv"

	"golang.org/x/net/html/atom"
)

// TokenType is the kind of a Token.
type TokenType uint8

const (
	// CharacterToken is a coalesced run of text.
	CharacterToken TokenType = iota
	// StartTagToken looks like <a href="x">.
	StartTagToken
	// EndTagToken looks like </a>.
	EndTagToken
	// CommentToken looks like <!--x-->.
	CommentToken
	// DoctypeToken looks like <!DOCTYPE html>.
	DoctypeToken
	// EndOfFileToken is always the last token of a run.
	EndOfFileToken
)

func (t TokenType) String() string {
	switch t {
	case CharacterToken:
		return "Character"
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case CommentToken:
		return "Comment"
	case DoctypeToken:
		return "DOCTYPE"
	case EndOfFileToken:
		return "EndOfFile"
	}
	return "Invalid(" + strconv.Itoa(int(t)) + ")"
}

// Attribute is a name/value pair in the order it was seen in the tag.
type Attribute struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Token is a concrete token that has been emitted by the tokenizer.
//
// Data holds the text of a character token, the lowercased name of a tag or
// DOCTYPE, or the data of a comment. PublicID and SystemID are nil when the
// DOCTYPE did not carry the identifier at all.
type Token struct {
	Type        TokenType
	Data        string
	DataAtom    atom.Atom
	Attr        []Attribute
	SelfClosing bool
	PublicID    *string
	SystemID    *string
	ForceQuirks bool
}

// Equal reports whether two tokens carry the same data.
func (t *Token) Equal(o *Token) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Type != o.Type || t.Data != o.Data || t.SelfClosing != o.SelfClosing || t.ForceQuirks != o.ForceQuirks {
		return false
	}
	if !equalIdentifier(t.PublicID, o.PublicID) || !equalIdentifier(t.SystemID, o.SystemID) {
		return false
	}
	if len(t.Attr) != len(o.Attr) {
		return false
	}
	for i := range t.Attr {
		if t.Attr[i] != o.Attr[i] {
			return false
		}
	}
	return true
}

// AttrValue returns the value of the first attribute called name.
func (t *Token) AttrValue(name string) (string, bool) {
	for _, a := range t.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func equalIdentifier(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type pendingAttr struct {
	name, value []byte
	duplicate   bool
}

// tokenBuilder is the token currently under construction. The tokenizer
// holds at most one and gives it up when the token is emitted.
type tokenBuilder struct {
	kind        TokenType
	data        []byte
	attrs       []pendingAttr
	selfClosing bool
	forceQuirks bool
	publicID    []byte
	systemID    []byte
	hasPublicID bool
	hasSystemID bool

	// seen holds attribute names once a tag has many of them.
	seen map[string]struct{}
}

func newTokenBuilder(kind TokenType) *tokenBuilder {
	return &tokenBuilder{kind: kind}
}

func (b *tokenBuilder) writeData(c ...byte) {
	b.data = append(b.data, c...)
}

func (b *tokenBuilder) writeDataString(s string) {
	b.data = append(b.data, s...)
}

// startAttribute begins a new attribute at the end of the attribute list.
func (b *tokenBuilder) startAttribute() {
	b.attrs = append(b.attrs, pendingAttr{})
}

func (b *tokenBuilder) writeAttributeName(c ...byte) {
	if len(b.attrs) == 0 {
		b.startAttribute()
	}
	last := &b.attrs[len(b.attrs)-1]
	last.name = append(last.name, c...)
}

func (b *tokenBuilder) writeAttributeValue(c ...byte) {
	if len(b.attrs) == 0 {
		b.startAttribute()
	}
	last := &b.attrs[len(b.attrs)-1]
	last.value = append(last.value, c...)
}

func (b *tokenBuilder) writeAttributeValueString(s string) {
	b.writeAttributeValue([]byte(s)...)
}

// attrIndexThreshold is how many attributes a tag may have before names are
// looked up in a set instead of scanned.
const attrIndexThreshold = 8

// markDuplicateAttribute flags the last attribute when an earlier attribute
// already has the same name, and reports whether it did so. It must run
// once per attribute, when its name is complete.
func (b *tokenBuilder) markDuplicateAttribute() bool {
	last := &b.attrs[len(b.attrs)-1]
	prior := b.attrs[:len(b.attrs)-1]
	if b.seen == nil {
		if len(prior) < attrIndexThreshold {
			for _, a := range prior {
				if string(a.name) == string(last.name) {
					last.duplicate = true
					return true
				}
			}
			return false
		}
		b.seen = make(map[string]struct{}, 2*len(prior))
		for _, a := range prior {
			b.seen[string(a.name)] = struct{}{}
		}
	}
	name := string(last.name)
	if _, ok := b.seen[name]; ok {
		last.duplicate = true
		return true
	}
	b.seen[name] = struct{}{}
	return false
}

func (b *tokenBuilder) setPublicIDEmpty() {
	b.publicID = b.publicID[:0]
	b.hasPublicID = true
}

func (b *tokenBuilder) setSystemIDEmpty() {
	b.systemID = b.systemID[:0]
	b.hasSystemID = true
}

func (b *tokenBuilder) writePublicID(c ...byte) {
	b.publicID = append(b.publicID, c...)
}

func (b *tokenBuilder) writeSystemID(c ...byte) {
	b.systemID = append(b.systemID, c...)
}

// token freezes the builder into a Token. Attributes flagged as duplicates
// are dropped only when dropDuplicates is set.
func (b *tokenBuilder) token(dropDuplicates bool) Token {
	t := Token{
		Type:        b.kind,
		Data:        string(b.data),
		SelfClosing: b.selfClosing,
		ForceQuirks: b.forceQuirks,
	}
	switch b.kind {
	case StartTagToken, EndTagToken, DoctypeToken:
		t.DataAtom = atom.Lookup(b.data)
	}
	if len(b.attrs) > 0 {
		t.Attr = make([]Attribute, 0, len(b.attrs))
		for _, a := range b.attrs {
			if dropDuplicates && a.duplicate {
				continue
			}
			t.Attr = append(t.Attr, Attribute{Name: string(a.name), Value: string(a.value)})
		}
	}
	if b.hasPublicID {
		id := string(b.publicID)
		t.PublicID = &id
	}
	if b.hasSystemID {
		id := string(b.systemID)
		t.SystemID = &id
	}
	return t
}

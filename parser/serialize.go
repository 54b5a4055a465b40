package parser

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

// String renders the token back to markup. Text is escaped; EndOfFile
// renders as nothing.
func (t *Token) String() string {
	var sb strings.Builder
	t.writeTo(&sb, false)
	return sb.String()
}

func (t *Token) writeTo(sb *strings.Builder, rawText bool) {
	switch t.Type {
	case CharacterToken:
		if rawText {
			sb.WriteString(t.Data)
		} else {
			sb.WriteString(escapeString(t.Data, false))
		}
	case StartTagToken:
		sb.WriteString("<" + t.Data)
		for _, a := range t.Attr {
			sb.WriteString(" " + a.Name + "=\"" + escapeString(a.Value, true) + "\"")
		}
		if t.SelfClosing {
			sb.WriteString("/")
		}
		sb.WriteString(">")
	case EndTagToken:
		sb.WriteString("</" + t.Data + ">")
	case CommentToken:
		sb.WriteString("<!--" + t.Data + "-->")
	case DoctypeToken:
		sb.WriteString("<!DOCTYPE")
		if t.Data != "" {
			sb.WriteString(" " + t.Data)
		}
		if t.PublicID != nil {
			sb.WriteString(" PUBLIC " + quoteIdentifier(*t.PublicID))
			if t.SystemID != nil {
				sb.WriteString(" " + quoteIdentifier(*t.SystemID))
			}
		} else if t.SystemID != nil {
			sb.WriteString(" SYSTEM " + quoteIdentifier(*t.SystemID))
		}
		sb.WriteString(">")
	}
}

// quoteIdentifier quotes a DOCTYPE identifier. Identifiers have no escapes,
// and one read between single quotes may hold a double quote.
func quoteIdentifier(id string) string {
	if strings.IndexByte(id, '"') >= 0 {
		return "'" + id + "'"
	}
	return "\"" + id + "\""
}

// holdsRawText reports whether text inside the element is written without
// escaping.
func holdsRawText(a atom.Atom) bool {
	switch a {
	case atom.Style, atom.Script, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes, atom.Plaintext:
		return true
	}
	return false
}

// Serialize renders a token sequence back to markup. Text directly inside
// raw text elements such as script and style is written as is.
func Serialize(tokens []Token) string {
	var (
		sb  strings.Builder
		raw atom.Atom
	)
	for i := range tokens {
		t := &tokens[i]
		t.writeTo(&sb, raw != 0)
		switch t.Type {
		case StartTagToken:
			if raw == 0 && holdsRawText(t.DataAtom) {
				raw = t.DataAtom
			}
		case EndTagToken:
			if t.DataAtom == raw {
				raw = 0
			}
		}
	}
	return sb.String()
}

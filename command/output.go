package command

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/heathj/htmltok/parser"
)

// document is the result of tokenizing one input.
type document struct {
	source string
	tokens []parser.Token
	errs   parser.ParseErrors
}

type tokenRecord struct {
	Type        string             `json:"type" yaml:"type"`
	Data        string             `json:"data,omitempty" yaml:"data,omitempty"`
	Attrs       []parser.Attribute `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	SelfClosing bool               `json:"selfClosing,omitempty" yaml:"selfClosing,omitempty"`
	PublicID    *string            `json:"publicId,omitempty" yaml:"publicId,omitempty"`
	SystemID    *string            `json:"systemId,omitempty" yaml:"systemId,omitempty"`
	ForceQuirks bool               `json:"forceQuirks,omitempty" yaml:"forceQuirks,omitempty"`
}

type errorRecord struct {
	Code   parser.ErrorCode `json:"code" yaml:"code"`
	Offset int              `json:"offset" yaml:"offset"`
	State  string           `json:"state" yaml:"state"`
}

type documentRecord struct {
	Source string        `json:"source" yaml:"source"`
	Tokens []tokenRecord `json:"tokens" yaml:"tokens"`
	Errors []errorRecord `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func (d *document) record() documentRecord {
	rec := documentRecord{
		Source: d.source,
		Tokens: make([]tokenRecord, 0, len(d.tokens)),
	}
	for _, t := range d.tokens {
		rec.Tokens = append(rec.Tokens, tokenRecord{
			Type:        t.Type.String(),
			Data:        t.Data,
			Attrs:       t.Attr,
			SelfClosing: t.SelfClosing,
			PublicID:    t.PublicID,
			SystemID:    t.SystemID,
			ForceQuirks: t.ForceQuirks,
		})
	}
	for _, e := range d.errs {
		rec.Errors = append(rec.Errors, errorRecord{Code: e.Code, Offset: e.Offset, State: e.State})
	}
	return rec
}

// tokenWriter prints documents in one output format.
type tokenWriter interface {
	write(d *document) error
	close() error
}

func newWriter(format string, stdout, stderr io.Writer, multiple bool) (tokenWriter, error) {
	switch format {
	case FormatText:
		return &textWriter{out: stdout, errOut: stderr, headers: multiple}, nil
	case FormatHTML:
		return &htmlWriter{out: stdout, errOut: stderr}, nil
	case FormatJSON:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return &jsonWriter{enc: enc}, nil
	case FormatYAML:
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		return &yamlWriter{enc: enc}, nil
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// printErrors writes parse errors for the formats that have no place for
// them in their own output.
func printErrors(w io.Writer, d *document) error {
	for _, e := range d.errs {
		if _, err := fmt.Fprintf(w, "%s: %s\n", d.source, e.Error()); err != nil {
			return err
		}
	}
	return nil
}

// textWriter prints one token per line: its type and, for everything but
// EndOfFile, the quoted markup it serializes to.
type textWriter struct {
	out, errOut io.Writer
	headers     bool
}

func (w *textWriter) write(d *document) error {
	if w.headers {
		if _, err := fmt.Fprintf(w.out, "==> %s <==\n", d.source); err != nil {
			return err
		}
	}
	for i := range d.tokens {
		t := &d.tokens[i]
		line := t.Type.String()
		if t.Type != parser.EndOfFileToken {
			line += "\t" + strconv.Quote(t.String())
		}
		if _, err := fmt.Fprintln(w.out, line); err != nil {
			return err
		}
	}
	return printErrors(w.errOut, d)
}

func (w *textWriter) close() error { return nil }

type htmlWriter struct {
	out, errOut io.Writer
}

func (w *htmlWriter) write(d *document) error {
	if _, err := io.WriteString(w.out, parser.Serialize(d.tokens)); err != nil {
		return err
	}
	return printErrors(w.errOut, d)
}

func (w *htmlWriter) close() error { return nil }

type jsonWriter struct {
	enc *json.Encoder
}

func (w *jsonWriter) write(d *document) error {
	return w.enc.Encode(d.record())
}

func (w *jsonWriter) close() error { return nil }

// yamlWriter puts each document in its own YAML document of one stream.
type yamlWriter struct {
	enc *yaml.Encoder
}

func (w *yamlWriter) write(d *document) error {
	return w.enc.Encode(d.record())
}

func (w *yamlWriter) close() error {
	return w.enc.Close()
}

package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/xpres/pkg/token"
	"gopkg.in/yaml.v3"
)

// TokenRecord is the serialized form of one token.
type TokenRecord struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Offset  int    `json:"offset" yaml:"offset"`
}

func toRecords(toks []token.Token) []TokenRecord {
	records := make([]TokenRecord, len(toks))
	for i, tok := range toks {
		records[i] = TokenRecord{
			Type:    tok.Type.String(),
			Literal: tok.Literal,
			Line:    tok.Pos.Line,
			Column:  tok.Pos.Column,
			Offset:  tok.Pos.Offset,
		}
	}
	return records
}

// RenderTokens writes toks in the given format. FormatAuto must be resolved
// by the caller.
func RenderTokens(w io.Writer, toks []token.Token, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(toks))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(toks)); err != nil {
			return err
		}
		return enc.Close()
	case FormatPlain:
		return renderPlain(w, toks)
	case FormatTable, FormatAuto, "":
		return renderTable(w, toks)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderPlain(w io.Writer, toks []token.Token) error {
	for _, tok := range toks {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Pos, tok.Type, tok.Literal); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, toks []token.Token) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Pos", "Type", "Literal"})
	for i, tok := range toks {
		t.AppendRow(table.Row{i + 1, tok.Pos.String(), tok.Type.String(), tok.Literal})
	}

	t.Render()
	_, err := fmt.Fprintf(w, "(%d tokens)\n", len(toks))
	return err
}

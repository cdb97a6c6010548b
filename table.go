package bending

import (
	"fmt"
	"io"
	"strings"
)

const (
	singularHeader = "sg"
	pluralHeader   = "pl"
)

// RenderTable parses citation, declines it under d and returns the table
// produced by [Paradigm.Table].
func RenderTable(citation string, d Declension) (string, error) {
	r, err := Parse(citation)
	if err != nil {
		return "", err
	}
	p, err := Decline(r, d)
	if err != nil {
		return "", err
	}
	return p.Table(), nil
}

// Table renders the paradigm as a grid with a header row and one row per
// case. Each column is as wide as its longest form.
//
//	    | sg    | pl    |
//	nom | vinur | vinir |
//	acc | vin   | vinir |
//	dat | vini  | vinum |
//	gen | vinar | vina  |
func (p Paradigm) Table() string {
	var sb strings.Builder
	_ = p.writeTable(&sb, false)
	return sb.String()
}

// DebugTable is like [Paradigm.Table] with the root's bracket notation on
// the first line.
func (p Paradigm) DebugTable() string {
	var sb strings.Builder
	_ = p.writeTable(&sb, true)
	return sb.String()
}

func (p Paradigm) writeTable(w io.Writer, debug bool) error {
	if debug {
		if _, err := fmt.Fprintf(w, "`%s`\n", p.root); err != nil {
			return err
		}
	}
	sgWidth, plWidth := p.columnWidths()
	if err := writeTableRow(w, "", padTo(singularHeader, sgWidth), padTo(pluralHeader, plWidth)); err != nil {
		return err
	}
	for _, s := range slots[:NomPl] {
		sg := p.forms[s]
		pl := p.forms[s+NomPl]
		if err := writeTableRow(w, s.Case(), sg.Pad(sgWidth), pl.Pad(plWidth)); err != nil {
			return err
		}
	}
	return nil
}

func (p Paradigm) columnWidths() (sg, pl int) {
	sg, pl = len(singularHeader), len(pluralHeader)
	for _, s := range slots {
		n := p.forms[s].Len()
		if s.Plural() {
			pl = max(pl, n)
		} else {
			sg = max(sg, n)
		}
	}
	return sg, pl
}

func writeTableRow(w io.Writer, label, sg, pl string) error {
	_, err := fmt.Fprintf(w, "%s | %s | %s |\n", padTo(label, 3), sg, pl)
	return err
}

func writeTables(w io.Writer, items []Paradigm, debug bool) error {
	for i, p := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := p.writeTable(w, debug); err != nil {
			return err
		}
	}
	return nil
}

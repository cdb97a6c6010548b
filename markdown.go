package bending

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown renders each paradigm as a GitHub-flavored Markdown table.
// Columns are aligned by display width so the source stays readable in a
// terminal.
func writeMarkdown(w io.Writer, items []Paradigm) error {
	for i, p := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeMarkdownTable(w, p); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownTable(w io.Writer, p Paradigm) error {
	forms := p.List()
	rows := [][]string{{"", singularHeader, pluralHeader}}
	for _, s := range slots[:NomPl] {
		rows = append(rows, []string{s.Case(), forms[s], forms[s+NomPl]})
	}

	// Minimum 3 for the separator dashes.
	widths := []int{3, 3, 3}
	for _, row := range rows {
		for i, cell := range row {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	if err := writeMarkdownRow(w, rows[0], widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = runewidth.FillRight(cells[i], width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

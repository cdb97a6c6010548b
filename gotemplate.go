package bending

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, items []Paradigm) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, p := range items {
		if err := tmpl.Execute(w, p.doc()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

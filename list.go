package bending

import (
	"io"
	"strings"
)

func writeList(w io.Writer, items []Paradigm) error {
	var all []string
	for _, p := range items {
		all = append(all, p.List()...)
	}
	if len(all) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(all, "\n")+"\n")
	return err
}

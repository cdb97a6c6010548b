package bending

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, items []Paradigm, comma rune) error {
	if len(items) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(items[0].Header()); err != nil {
		return err
	}
	for _, p := range items {
		if err := cw.Write(p.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package bending

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, items []Paradigm) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if len(items) == 1 {
		return enc.Encode(items[0])
	}
	if items == nil {
		items = []Paradigm{}
	}
	return enc.Encode(items)
}

func writeJSONL(w io.Writer, items []Paradigm) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, p := range items {
		if err := enc.Encode(p); err != nil {
			return err
		}
	}
	return nil
}

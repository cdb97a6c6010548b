package bending

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, items []Paradigm) error {
	if len(items) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if len(items) == 1 {
		if err := enc.Encode(items[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(items); err != nil {
			return err
		}
	}
	return enc.Close()
}

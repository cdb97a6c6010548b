package bending

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrNoSkerpingCluster = errors.New("no skerping cluster")
	ErrUnknownDeclension = errors.New("unknown declension")
	ErrUnsupported       = errors.New("not yet supported")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format for paradigms.
type Format string

const (
	Table      Format = "table"
	DebugTable Format = "table-debug"
	Markdown   Format = "markdown"
	CSV        Format = "csv"
	TSV        Format = "tsv"
	JSON       Format = "json"
	JSONL      Format = "jsonl"
	YAML       Format = "yaml"
	List       Format = "list"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Table, DebugTable, Markdown, CSV, TSV, JSON, JSONL, YAML, List}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each paradigm using a Go
// text/template. The template sees the fields Root, Declension, Singular
// and Plural, the last two holding Nom, Acc, Dat and Gen.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write formats paradigms and writes them to w.
func Write(w io.Writer, f Format, items ...Paradigm) error {
	switch f {
	case Table:
		return writeTables(w, items, false)
	case DebugTable:
		return writeTables(w, items, true)
	case Markdown:
		return writeMarkdown(w, items)
	case CSV:
		return writeCSV(w, items, ',')
	case TSV:
		return writeCSV(w, items, '\t')
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return writeJSONL(w, items)
	case YAML:
		return writeYAML(w, items)
	case List:
		return writeList(w, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, items)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal formats paradigms and returns the bytes.
func Marshal(f Format, items ...Paradigm) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

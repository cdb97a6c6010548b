package bending

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Form selects which shape of a root's stem is rendered.
type Form int

const (
	FormFull           Form = iota // citation stem
	FormConsonantAdded             // before a consonant-initial ending
	FormVowelAdded                 // before a vowel-initial ending
)

// String returns the form name.
func (f Form) String() string {
	switch f {
	case FormFull:
		return "Full"
	case FormConsonantAdded:
		return "ConsonantAdded"
	case FormVowelAdded:
		return "VowelAdded"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// RootForm is one rendering of a [Root]'s stem. It is computed on demand
// and holds a copy of the root.
type RootForm struct {
	root    Root
	form    Form
	dropYod bool
}

// Root returns the root being rendered.
func (f RootForm) Root() Root { return f.root }

// Form returns the selected stem shape.
func (f RootForm) Form() Form { return f.form }

// DropsYod reports whether a trailing j is removed from the skerping cluster.
func (f RootForm) DropsYod() bool { return f.dropYod }

// DropYod returns a copy that strips the trailing j from the skerping
// cluster.
func (f RootForm) DropYod() RootForm {
	f.dropYod = true
	return f
}

// DropYodIfPalatalized returns a copy that strips the trailing j from the
// skerping cluster only when the root is palatalized.
func (f RootForm) DropYodIfPalatalized() RootForm {
	f.dropYod = f.root.Palatalized()
	return f
}

// tail is the segment rendered between the first stem and the end.
func (f RootForm) tail() string {
	switch f.form {
	case FormFull, FormVowelAdded:
		if f.root.Skerping() {
			return f.skerping()
		}
		if f.form == FormVowelAdded {
			return ""
		}
		return f.root.deletable
	case FormConsonantAdded:
		return f.root.deletable
	default:
		panic(fmt.Sprintf("bending: unknown form %d", int(f.form)))
	}
}

func (f RootForm) skerping() string {
	last, _ := utf8.DecodeLastRuneInString(f.root.firstStem)
	cluster, ok := SkerpingCluster(last)
	if !ok {
		panic(fmt.Sprintf("bending: skerping root %q has no cluster for %q", f.root.String(), last))
	}
	if f.dropYod {
		cluster = strings.TrimSuffix(cluster, "j")
	}
	return cluster
}

// String renders the stem.
func (f RootForm) String() string {
	return f.root.firstStem + f.tail() + f.root.end
}

// Len returns the number of characters String renders.
func (f RootForm) Len() int {
	return utf8.RuneCountInString(f.root.firstStem) +
		utf8.RuneCountInString(f.tail()) +
		utf8.RuneCountInString(f.root.end)
}

// Pad renders the stem followed by spaces up to width characters. It never
// truncates.
func (f RootForm) Pad(width int) string {
	return padRight(f.String(), width-f.Len())
}

// padTo right-pads s with spaces to width characters.
func padTo(s string, width int) string {
	return padRight(s, width-utf8.RuneCountInString(s))
}

func padRight(s string, pad int) string {
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

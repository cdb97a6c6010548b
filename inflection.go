package bending

import "unicode/utf8"

// Inflection is a stem form paired with an ending.
type Inflection struct {
	stem   RootForm
	ending string
}

// NewInflection returns stem followed by ending.
func NewInflection(stem RootForm, ending string) Inflection {
	return Inflection{stem: stem, ending: ending}
}

// Stem returns the stem form.
func (i Inflection) Stem() RootForm { return i.stem }

// Ending returns the ending.
func (i Inflection) Ending() string { return i.ending }

// String renders the word form.
func (i Inflection) String() string {
	return i.stem.String() + i.ending
}

// Len returns the number of characters String renders.
func (i Inflection) Len() int {
	return i.stem.Len() + utf8.RuneCountInString(i.ending)
}

// Pad renders the word form followed by spaces up to width characters. The
// ending absorbs the padding left over after the stem.
func (i Inflection) Pad(width int) string {
	return i.stem.String() + padTo(i.ending, max(width-i.stem.Len(), 0))
}

package bending

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Markers appended to a citation form to record properties the letters
// alone do not carry.
const (
	PalatalizationMarker = "ʲ"
	SkerpingMarker       = "ˠ"
)

// Extra is a phonological property of a root that is not recoverable from
// its spelling.
type Extra int

const (
	ExtraNone Extra = iota
	ExtraPalatalized
	ExtraSkerping
)

// String returns the extra name.
func (e Extra) String() string {
	switch e {
	case ExtraNone:
		return "None"
	case ExtraPalatalized:
		return "Palatalized"
	case ExtraSkerping:
		return "Skerping"
	default:
		return fmt.Sprintf("Extra(%d)", int(e))
	}
}

func (e Extra) marker() string {
	switch e {
	case ExtraPalatalized:
		return PalatalizationMarker
	case ExtraSkerping:
		return SkerpingMarker
	default:
		return ""
	}
}

// Root is a parsed citation form. The zero value is the empty root.
//
// A Root can only be built by [Parse], [MustParse] or UnmarshalText, so a
// skerping root always ends in a vowel that has a skerping cluster.
type Root struct {
	firstStem string
	deletable string
	end       string
	extra     Extra
}

// Parse parses a citation form written as
//
//	stem[(deletable)end][marker]
//
// where marker is [PalatalizationMarker] or [SkerpingMarker]. Input is
// normalized to NFC first. Without a "(" followed later by a ")", the whole
// string is the stem.
func Parse(citation string) (Root, error) {
	s := norm.NFC.String(citation)

	var r Root
	if rest, ok := strings.CutSuffix(s, PalatalizationMarker); ok {
		s, r.extra = rest, ExtraPalatalized
	} else if rest, ok := strings.CutSuffix(s, SkerpingMarker); ok {
		s, r.extra = rest, ExtraSkerping
	}

	open := strings.IndexByte(s, '(')
	closing := strings.IndexByte(s, ')')
	if open >= 0 && closing > open {
		r.firstStem = s[:open]
		r.deletable = s[open+1 : closing]
		r.end = s[closing+1:]
	} else {
		r.firstStem = s
	}

	if r.extra == ExtraSkerping {
		if r.firstStem == "" {
			return Root{}, fmt.Errorf("%w: %q has an empty stem", ErrNoSkerpingCluster, citation)
		}
		last, _ := utf8.DecodeLastRuneInString(r.firstStem)
		if _, ok := SkerpingCluster(last); !ok {
			if !IsVowel(last) {
				return Root{}, fmt.Errorf("%w: %q has a consonant-final stem", ErrNoSkerpingCluster, citation)
			}
			return Root{}, fmt.Errorf("%w: %q ends in %q", ErrNoSkerpingCluster, citation, last)
		}
	}
	return r, nil
}

// MustParse is like [Parse] but panics if the citation cannot be parsed.
func MustParse(citation string) Root {
	r, err := Parse(citation)
	if err != nil {
		panic("bending: Parse(" + citation + "): " + err.Error())
	}
	return r
}

// Describe parses a citation form and returns the debug rendering of the
// resulting root. It is the single string-in, string-out entry point for
// embedding hosts.
func Describe(citation string) (string, error) {
	r, err := Parse(citation)
	if err != nil {
		return "", err
	}
	return r.GoString(), nil
}

// FirstStem returns the prefix present in every form.
func (r Root) FirstStem() string { return r.firstStem }

// Deletable returns the epenthetic segment lost before vowel-initial endings.
func (r Root) Deletable() string { return r.deletable }

// End returns the cluster following the deletable segment.
func (r Root) End() string { return r.end }

// Extra returns the root's marker.
func (r Root) Extra() Extra { return r.extra }

// Palatalized reports whether the root carries the palatalization marker.
func (r Root) Palatalized() bool { return r.extra == ExtraPalatalized }

// Skerping reports whether the root carries the skerping marker.
func (r Root) Skerping() bool { return r.extra == ExtraSkerping }

// Full returns the citation stem.
func (r Root) Full() RootForm { return RootForm{root: r, form: FormFull} }

// ConsonantAdded returns the stem used before consonant-initial endings.
func (r Root) ConsonantAdded() RootForm { return RootForm{root: r, form: FormConsonantAdded} }

// VowelAdded returns the stem used before vowel-initial endings.
func (r Root) VowelAdded() RootForm { return RootForm{root: r, form: FormVowelAdded} }

// String reconstructs the bracket notation. Parsing the result yields r.
func (r Root) String() string {
	var sb strings.Builder
	sb.WriteString(r.firstStem)
	if r.deletable != "" || r.end != "" {
		sb.WriteByte('(')
		sb.WriteString(r.deletable)
		sb.WriteByte(')')
		sb.WriteString(r.end)
	}
	sb.WriteString(r.extra.marker())
	return sb.String()
}

// GoString returns the segments and marker of r.
func (r Root) GoString() string {
	return fmt.Sprintf("bending.Root{FirstStem:%q, Deletable:%q, End:%q, Extra:%s}",
		r.firstStem, r.deletable, r.end, r.extra)
}

// MarshalText implements [encoding.TextMarshaler].
func (r Root) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *Root) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

package bending

import (
	"fmt"
	"slices"
	"strings"
)

// Slot is one of the eight case and number combinations.
type Slot int

const (
	NomSg Slot = iota
	AccSg
	DatSg
	GenSg
	NomPl
	AccPl
	DatPl
	GenPl
)

var slots = []Slot{NomSg, AccSg, DatSg, GenSg, NomPl, AccPl, DatPl, GenPl}

var caseLabels = [...]string{"nom", "acc", "dat", "gen"}

// Slots returns all slots, singular first, in nom, acc, dat, gen order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// Case returns the case label: "nom", "acc", "dat" or "gen".
func (s Slot) Case() string {
	if s < NomSg || s > GenPl {
		return "?"
	}
	return caseLabels[int(s)%len(caseLabels)]
}

// Plural reports whether s is a plural slot.
func (s Slot) Plural() bool { return s >= NomPl }

// String returns the slot name, e.g. "dat pl".
func (s Slot) String() string {
	if s < NomSg || s > GenPl {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	if s.Plural() {
		return s.Case() + " pl"
	}
	return s.Case() + " sg"
}

// GenitiveType selects the genitive singular ending of a masculine noun.
type GenitiveType int

const (
	GenitiveS    GenitiveType = iota // -s on the consonant-added stem
	GenitiveAr                       // -ar on the vowel-added stem
	GenitiveBoth                     // both -s and -ar; not supported yet
)

// PluralType selects the nominative plural ending of a masculine noun.
type PluralType int

const (
	PluralAr PluralType = iota
	PluralIr
)

// DativeType selects the dative singular of a masculine noun.
type DativeType int

const (
	DativeI    DativeType = iota // -i on the vowel-added stem
	DativeBare                   // the citation stem without ending
)

type gender int

const (
	genderUnknown gender = iota
	genderMasculine
	genderNeuter
)

// Declension is a declension class: the rules mapping each [Slot] to a stem
// form and an ending. Declensions are comparable values. The zero value is
// not a valid class.
type Declension struct {
	gender gender
	gen    GenitiveType
	pl     PluralType
	dat    DativeType
}

// Fixed declension classes.
var (
	MascSAr  = Masculine(GenitiveS, PluralAr, DativeI)
	MascArIr = Masculine(GenitiveAr, PluralIr, DativeI)
	MascSIr  = Masculine(GenitiveS, PluralIr, DativeI)
	Neuter   = Declension{gender: genderNeuter}
)

var declensionNames = map[Declension]string{
	MascSAr:  "masc-s-ar",
	MascArIr: "masc-ar-ir",
	MascSIr:  "masc-s-ir",
	Neuter:   "neuter",
}

// Masculine returns the general masculine class.
func Masculine(gen GenitiveType, pl PluralType, dat DativeType) Declension {
	return Declension{gender: genderMasculine, gen: gen, pl: pl, dat: dat}
}

// Inflect returns the form of r in slot s.
//
// A masculine class with [GenitiveBoth] reports [ErrUnsupported] for the
// genitive singular.
func (d Declension) Inflect(r Root, s Slot) (Inflection, error) {
	if d.gender != genderMasculine && d.gender != genderNeuter {
		return Inflection{}, ErrUnknownDeclension
	}
	switch s {
	case NomSg:
		if d.gender == genderMasculine && (r.deletable == "" || r.Skerping()) {
			return NewInflection(r.Full(), "ur"), nil
		}
		return NewInflection(r.Full(), ""), nil
	case AccSg:
		return NewInflection(r.Full(), ""), nil
	case DatSg:
		if d.gender == genderMasculine && d.dat == DativeBare {
			return NewInflection(r.Full(), ""), nil
		}
		return NewInflection(r.VowelAdded().DropYod(), "i"), nil
	case GenSg:
		return d.genSg(r)
	case NomPl:
		return d.nomPl(r)
	case AccPl:
		return d.nomPl(r)
	case DatPl:
		return NewInflection(r.VowelAdded().DropYodIfPalatalized(), palatal(r, "jum", "um")), nil
	case GenPl:
		return NewInflection(r.VowelAdded().DropYodIfPalatalized(), palatal(r, "ja", "a")), nil
	default:
		return Inflection{}, fmt.Errorf("bending: unknown slot %d", int(s))
	}
}

func (d Declension) genSg(r Root) (Inflection, error) {
	if d.gender == genderNeuter {
		return NewInflection(r.ConsonantAdded(), "s"), nil
	}
	switch d.gen {
	case GenitiveS:
		return NewInflection(r.ConsonantAdded(), "s"), nil
	case GenitiveAr:
		return NewInflection(r.VowelAdded().DropYodIfPalatalized(), palatal(r, "jar", "ar")), nil
	case GenitiveBoth:
		return Inflection{}, fmt.Errorf("%w: genitive with both -s and -ar for %q", ErrUnsupported, r.String())
	default:
		return Inflection{}, fmt.Errorf("%w: genitive type %d", ErrUnknownDeclension, int(d.gen))
	}
}

func (d Declension) nomPl(r Root) (Inflection, error) {
	if d.gender == genderNeuter {
		// u-umlaut marker
		if r.deletable == "i" {
			return NewInflection(r.Full(), "(r)"), nil
		}
		return NewInflection(r.Full(), ""), nil
	}
	switch d.pl {
	case PluralAr:
		return NewInflection(r.VowelAdded().DropYodIfPalatalized(), palatal(r, "jar", "ar")), nil
	case PluralIr:
		return NewInflection(r.VowelAdded().DropYod(), "ir"), nil
	default:
		return Inflection{}, fmt.Errorf("%w: plural type %d", ErrUnknownDeclension, int(d.pl))
	}
}

func palatal(r Root, palatalized, plain string) string {
	if r.Palatalized() {
		return palatalized
	}
	return plain
}

// String returns the class name accepted by [ParseDeclension].
func (d Declension) String() string {
	if name, ok := declensionNames[d]; ok {
		return name
	}
	if d.gender != genderMasculine {
		return "unknown"
	}
	var gen string
	switch d.gen {
	case GenitiveS:
		gen = "-s"
	case GenitiveAr:
		gen = "-ar"
	case GenitiveBoth:
		gen = "-s/-ar"
	default:
		return "unknown"
	}
	var pl string
	switch d.pl {
	case PluralAr:
		pl = "-ar"
	case PluralIr:
		pl = "-ir"
	default:
		return "unknown"
	}
	var dat string
	switch d.dat {
	case DativeI:
		dat = "-i"
	case DativeBare:
		dat = "-"
	default:
		return "unknown"
	}
	return "masc " + gen + " " + pl + " " + dat
}

// ParseDeclension parses a class name: "masc-s-ar", "masc-ar-ir",
// "masc-s-ir", "neuter", or "masc" followed by dictionary-style hints as
// accepted by [ParseMasculine], e.g. "masc -s/-ar -ir -".
func ParseDeclension(name string) (Declension, error) {
	for d, n := range declensionNames {
		if n == name {
			return d, nil
		}
	}
	fields := strings.Fields(name)
	if len(fields) == 3 && fields[0] == "masc" {
		return ParseMasculine(fields[1], fields[2], "-i")
	}
	if len(fields) == 4 && fields[0] == "masc" {
		return ParseMasculine(fields[1], fields[2], fields[3])
	}
	return Declension{}, fmt.Errorf("%w: %q", ErrUnknownDeclension, name)
}

// ParseMasculine builds a masculine class from dictionary-style ending
// hints. Placeholder characters are ignored, so "-ar" and "ar" are the same
// hint.
//
//	gen: "-s", "-ar", or "-s/-ar" for nouns with both genitives
//	pl:  "-ar" or "-ir"
//	dat: "-i", or "-" for a bare dative
func ParseMasculine(gen, pl, dat string) (Declension, error) {
	var g GenitiveType
	var hints []string
	for _, h := range strings.Split(gen, "/") {
		hints = append(hints, stripPlaceholders(h))
	}
	slices.Sort(hints)
	switch {
	case slices.Equal(hints, []string{"s"}):
		g = GenitiveS
	case slices.Equal(hints, []string{"ar"}):
		g = GenitiveAr
	case slices.Equal(hints, []string{"ar", "s"}):
		g = GenitiveBoth
	default:
		return Declension{}, fmt.Errorf("%w: genitive hint %q", ErrUnknownDeclension, gen)
	}

	var p PluralType
	switch stripPlaceholders(pl) {
	case "ar":
		p = PluralAr
	case "ir":
		p = PluralIr
	default:
		return Declension{}, fmt.Errorf("%w: plural hint %q", ErrUnknownDeclension, pl)
	}

	var dt DativeType
	switch stripPlaceholders(dat) {
	case "i":
		dt = DativeI
	case "":
		dt = DativeBare
	default:
		return Declension{}, fmt.Errorf("%w: dative hint %q", ErrUnknownDeclension, dat)
	}
	return Masculine(g, p, dt), nil
}

func stripPlaceholders(hint string) string {
	return strings.TrimFunc(strings.TrimSpace(hint), IsPlaceholder)
}

// MarshalText implements [encoding.TextMarshaler].
func (d Declension) MarshalText() ([]byte, error) {
	if d.gender == genderUnknown {
		return nil, ErrUnknownDeclension
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Declension) UnmarshalText(text []byte) error {
	parsed, err := ParseDeclension(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Package bending generates the inflected forms of Faroese-style nouns.
//
// A noun is given by its citation form in bracket notation:
//
//	stem[(deletable)end][marker]
//
// The deletable segment is an epenthetic vowel that surfaces before
// consonant-initial endings and is lost before vowel-initial ones
// (syncope). The marker records a property the spelling does not carry:
// [PalatalizationMarker] makes endings take a j glide, [SkerpingMarker]
// inserts a consonant cluster ("gv" or "ggj") between a vowel-final stem and
// a following vowel.
//
//	vin        vinur, vinar, vinir
//	sum(ma)r   summar, sumri
//	hey(g)ˠ    heyggjur, heygs, heyggi
//	veggʲ      veggur, veggjar, veggjum
//
// # Roots and stem forms
//
// [Parse] turns a citation form into a [Root]. A root renders in three
// shapes, each a [RootForm]: [Root.Full] for the citation stem,
// [Root.ConsonantAdded] before consonant-initial endings and
// [Root.VowelAdded] before vowel-initial ones. An [Inflection] pairs a stem
// form with an ending.
//
// # Declensions
//
// A [Declension] maps each of the eight [Slot] values to an inflection.
// The fixed classes are [MascSAr], [MascArIr], [MascSIr] and [Neuter];
// [Masculine] builds the general masculine class from its genitive, plural
// and dative choices, and [ParseDeclension] reads a class by name or from
// dictionary-style ending hints:
//
//	d, err := bending.ParseDeclension("masc -ar -ir")
//
// [Decline] computes a full [Paradigm].
//
// # Output
//
// [Paradigm.Table] renders the aligned grid. Widths are counted in
// characters, not bytes. [Write] and [Marshal] render paradigms in any
// [Format]: Table, DebugTable, Markdown, CSV, TSV, JSON, JSONL, YAML, List,
// or a [GoTemplate]:
//
//	bending.Write(os.Stdout, bending.GoTemplate("{{.Singular.Nom}}"), p)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrNoSkerpingCluster] — skerping marker on a stem that cannot take it
//   - [ErrUnknownDeclension] — zero or unparseable declension
//   - [ErrUnsupported] — masculine class with both genitives
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
package bending

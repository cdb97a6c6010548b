package bending

import (
	"encoding/json"
	"fmt"
)

// Paradigm holds the eight inflected forms of one root under one
// declension class.
type Paradigm struct {
	root       Root
	declension Declension
	forms      [8]Inflection
}

// Decline computes every slot of r under d. It fails if any slot does.
func Decline(r Root, d Declension) (Paradigm, error) {
	p := Paradigm{root: r, declension: d}
	for _, s := range slots {
		inf, err := d.Inflect(r, s)
		if err != nil {
			return Paradigm{}, fmt.Errorf("%s of %q: %w", s, r.String(), err)
		}
		p.forms[s] = inf
	}
	return p, nil
}

// Root returns the declined root.
func (p Paradigm) Root() Root { return p.root }

// Declension returns the class the root was declined under.
func (p Paradigm) Declension() Declension { return p.declension }

// Form returns the inflection in slot s.
func (p Paradigm) Form(s Slot) Inflection { return p.forms[s] }

// List returns every form, singular first.
func (p Paradigm) List() []string {
	out := make([]string, len(p.forms))
	for i, inf := range p.forms {
		out[i] = inf.String()
	}
	return out
}

// Header returns the column names matching [Paradigm.Row].
func (p Paradigm) Header() []string {
	h := []string{"root", "declension"}
	for _, s := range slots {
		h = append(h, s.String())
	}
	return h
}

// Row returns the root, the class and every form.
func (p Paradigm) Row() []string {
	return append([]string{p.root.String(), p.declension.String()}, p.List()...)
}

// caseForms is one number's column of a paradigm document.
type caseForms struct {
	Nom string `json:"nom" yaml:"nom"`
	Acc string `json:"acc" yaml:"acc"`
	Dat string `json:"dat" yaml:"dat"`
	Gen string `json:"gen" yaml:"gen"`
}

// paradigmDoc is the structured form used by JSON, YAML and templates.
type paradigmDoc struct {
	Root       string    `json:"root" yaml:"root"`
	Declension string    `json:"declension" yaml:"declension"`
	Singular   caseForms `json:"singular" yaml:"singular"`
	Plural     caseForms `json:"plural" yaml:"plural"`
}

func (p Paradigm) doc() paradigmDoc {
	f := p.List()
	return paradigmDoc{
		Root:       p.root.String(),
		Declension: p.declension.String(),
		Singular:   caseForms{Nom: f[NomSg], Acc: f[AccSg], Dat: f[DatSg], Gen: f[GenSg]},
		Plural:     caseForms{Nom: f[NomPl], Acc: f[AccPl], Dat: f[DatPl], Gen: f[GenPl]},
	}
}

// MarshalJSON implements [json.Marshaler].
func (p Paradigm) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.doc())
}

// MarshalYAML implements the yaml.v3 Marshaler interface.
func (p Paradigm) MarshalYAML() (any, error) {
	return p.doc(), nil
}

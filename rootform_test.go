package bending_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bjaus/bending"
	"github.com/stretchr/testify/assert"
)

var sampleCitations = []string{
	"vin", "veg", "stað", "gest", "blett", "hval", "dans",
	"veggʲ", "ryggʲ", "hylʲ", "úlv", "drongʲ",
	"hey(g)ˠ", "sjó(v)ˠ", "skóˠ", "skó(g)ˠ", "ký(r)ˠ",
	"vøkst(u)r", "meld(u)r", "ak(u)r", "stuð(u)l", "him(ma)l",
	"hand(i)l", "ham(a)r", "sum(ma)r", "heyst", "veð(u)r",
	"epl(i)", "tíðind(i)", "merk(i)ʲ",
}

func sampleRoots(t *testing.T) []bending.Root {
	t.Helper()
	var roots []bending.Root
	for _, c := range sampleCitations {
		r, err := bending.Parse(c)
		if err != nil {
			continue
		}
		roots = append(roots, r)
	}
	return roots
}

func TestRootFormString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		form bending.RootForm
		want string
	}{
		"skerping full":             {form: bending.MustParse("hey(g)ˠ").Full(), want: "heyggj"},
		"skerping consonant":        {form: bending.MustParse("hey(g)ˠ").ConsonantAdded(), want: "heyg"},
		"skerping vowel":            {form: bending.MustParse("hey(g)ˠ").VowelAdded(), want: "heyggj"},
		"skerping vowel drop yod":   {form: bending.MustParse("hey(g)ˠ").VowelAdded().DropYod(), want: "heygg"},
		"skerping full drop yod":    {form: bending.MustParse("hey(g)ˠ").Full().DropYod(), want: "heygg"},
		"skerping consonant no yod": {form: bending.MustParse("hey(g)ˠ").ConsonantAdded().DropYod(), want: "heyg"},
		"gv cluster":                {form: bending.MustParse("sjó(v)ˠ").Full(), want: "sjógv"},
		"gv cluster drop yod":       {form: bending.MustParse("sjó(v)ˠ").VowelAdded().DropYod(), want: "sjógv"},
		"gv without deletable":      {form: bending.MustParse("skóˠ").ConsonantAdded(), want: "skó"},
		"syncope full":              {form: bending.MustParse("sum(ma)r").Full(), want: "summar"},
		"syncope consonant":         {form: bending.MustParse("sum(ma)r").ConsonantAdded(), want: "summar"},
		"syncope vowel":             {form: bending.MustParse("sum(ma)r").VowelAdded(), want: "sumr"},
		"palatalized vowel":         {form: bending.MustParse("veggʲ").VowelAdded().DropYodIfPalatalized(), want: "vegg"},
		"plain vowel":               {form: bending.MustParse("vin").VowelAdded(), want: "vin"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.form.String())
		})
	}
}

func TestRootFormDropYodIfPalatalized(t *testing.T) {
	t.Parallel()
	assert.True(t, bending.MustParse("veggʲ").VowelAdded().DropYodIfPalatalized().DropsYod())
	assert.False(t, bending.MustParse("hey(g)ˠ").VowelAdded().DropYodIfPalatalized().DropsYod())
	assert.True(t, bending.MustParse("vin").VowelAdded().DropYod().DropsYod())
}

func TestRootFormLenMatchesString(t *testing.T) {
	t.Parallel()
	for _, r := range sampleRoots(t) {
		for _, f := range []bending.RootForm{r.Full(), r.ConsonantAdded(), r.VowelAdded()} {
			for _, form := range []bending.RootForm{f, f.DropYod(), f.DropYodIfPalatalized()} {
				assert.Equal(t, utf8.RuneCountInString(form.String()), form.Len(),
					"%s %s drop yod %v", r, form.Form(), form.DropsYod())
			}
		}
	}
}

func TestRootFormPad(t *testing.T) {
	t.Parallel()
	f := bending.MustParse("skó(g)ˠ").Full()
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, "skógv   ", f.Pad(8))
	assert.Equal(t, "skógv", f.Pad(5))
	assert.Equal(t, "skógv", f.Pad(2))
	assert.Equal(t, "skógv", f.Pad(-1))
}

func TestRootFormPadNeverTruncates(t *testing.T) {
	t.Parallel()
	for _, r := range sampleRoots(t) {
		for _, f := range []bending.RootForm{r.Full(), r.ConsonantAdded(), r.VowelAdded()} {
			for width := 0; width < 14; width++ {
				got := f.Pad(width)
				assert.Equal(t, f.String(), strings.TrimRight(got, " "))
				assert.Equal(t, max(width, f.Len()), utf8.RuneCountInString(got))
			}
		}
	}
}

func TestRootFormAccessors(t *testing.T) {
	t.Parallel()
	r := bending.MustParse("ham(a)r")
	f := r.ConsonantAdded()
	assert.Equal(t, r, f.Root())
	assert.Equal(t, bending.FormConsonantAdded, f.Form())
	assert.Equal(t, "ConsonantAdded", f.Form().String())
	assert.Equal(t, "Full", bending.FormFull.String())
	assert.Equal(t, "VowelAdded", bending.FormVowelAdded.String())
	assert.Equal(t, "Form(7)", bending.Form(7).String())
}

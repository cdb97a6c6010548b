package bending

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadToCountsCharacters(t *testing.T) {
	t.Parallel()
	// "tíð" is 3 characters but 5 bytes.
	assert.Equal(t, "tíð  ", padTo("tíð", 5))
	assert.Equal(t, "tíð", padTo("tíð", 3))
	assert.Equal(t, "tíð", padTo("tíð", 0))
	assert.Equal(t, "  ", padTo("", 2))
}

func TestSkerpingWithoutClusterPanics(t *testing.T) {
	t.Parallel()
	// Parse rejects this root; built directly it must fail loudly.
	r := Root{firstStem: "veg", deletable: "g", extra: ExtraSkerping}
	assert.Panics(t, func() { _ = r.Full().String() })
	assert.Panics(t, func() { _ = r.VowelAdded().Len() })
	assert.NotPanics(t, func() { _ = r.ConsonantAdded().String() })
}

func TestUnknownFormPanics(t *testing.T) {
	t.Parallel()
	f := RootForm{root: Root{firstStem: "vin"}, form: Form(9)}
	assert.Panics(t, func() { _ = f.String() })
}

func TestTailMirrorsRender(t *testing.T) {
	t.Parallel()
	r := Root{firstStem: "hey", deletable: "g", extra: ExtraSkerping}
	assert.Equal(t, "ggj", r.Full().tail())
	assert.Equal(t, "g", r.ConsonantAdded().tail())
	assert.Equal(t, "gg", r.VowelAdded().DropYod().tail())

	r = Root{firstStem: "sum", deletable: "ma", end: "r"}
	assert.Equal(t, "ma", r.Full().tail())
	assert.Equal(t, "ma", r.ConsonantAdded().tail())
	assert.Equal(t, "", r.VowelAdded().tail())
}

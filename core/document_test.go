package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourgraph/core"
)

func TestDocument_RoundTrip(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.DeleteSpot(1))

	doc := g.Document()
	require.Len(t, doc.Spots, 3)
	assert.True(t, doc.Spots[1].Deleted)

	back, err := core.FromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, doc, back.Document())
	assert.Equal(t, g.Revision(), back.Revision())
	assert.False(t, back.IsValid(1))
}

func TestFromDocument_Empty(t *testing.T) {
	g, err := core.FromDocument(core.Document{})
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestFromDocument_Corrupt(t *testing.T) {
	valid := func() core.Document {
		return core.Document{Spots: []core.SpotRecord{
			{ID: 0, Name: SpotGate, Paths: []core.PathRecord{{TargetID: 1, Distance: Dist10, Duration: Dur5}}},
			{ID: 1, Name: SpotLake, Paths: []core.PathRecord{{TargetID: 0, Distance: Dist10, Duration: Dur5}}},
		}}
	}

	cases := map[string]func(d *core.Document){
		"id mismatch":    func(d *core.Document) { d.Spots[1].ID = 5 },
		"empty name":     func(d *core.Document) { d.Spots[0].Name = "" },
		"dup name":       func(d *core.Document) { d.Spots[1].Name = SpotGate },
		"missing slot":   func(d *core.Document) { d.Spots[0].Paths[0].TargetID = 9 },
		"self loop":      func(d *core.Document) { d.Spots[0].Paths[0].TargetID = 0 },
		"zero weight":    func(d *core.Document) { d.Spots[0].Paths[0].Distance = 0 },
		"asymmetric":     func(d *core.Document) { d.Spots[1].Paths = nil },
		"weight differs": func(d *core.Document) { d.Spots[1].Paths[0].Duration = Dur7 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := valid()
			mutate(&d)
			_, err := core.FromDocument(d)
			require.ErrorIs(t, err, core.ErrCorruptDocument)
		})
	}

	_, err := core.FromDocument(valid())
	require.NoError(t, err)
}

func TestFromDocument_DeletedNameMayRepeat(t *testing.T) {
	doc := core.Document{Spots: []core.SpotRecord{
		{ID: 0, Name: SpotGate, Deleted: true},
		{ID: 1, Name: SpotGate},
	}}
	g, err := core.FromDocument(doc)
	require.NoError(t, err)

	s, err := g.FindSpotByName(SpotGate)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ID)
}

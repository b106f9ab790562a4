package main

import (
	"testing"

	"github.com/milk9111/ldtk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelEntries(t *testing.T) {
	p, err := ldtk.Load("../../testdata/external/project.ldtk")
	require.NoError(t, err)
	view, err := p.View()
	require.NoError(t, err)

	entries := levelEntries(view)
	require.Len(t, entries, 2)

	cases := []struct {
		index int
		label string
	}{
		{0, "1. Level_0 *"},
		{1, "2. Level_1 *"},
	}
	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			entry, ok := entries[c.index].(levelEntry)
			require.True(t, ok)
			assert.Equal(t, c.index, entry.Index)
			assert.Equal(t, c.label, levelLabel(entry))
		})
	}

	resolved, err := p.ResolvedView(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "1. Level_0", levelLabel(levelEntries(resolved)[0]))
	assert.Equal(t, "", levelLabel("not an entry"))
}

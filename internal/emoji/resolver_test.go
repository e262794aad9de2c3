package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTable gates latin letters: uppercase from version 1.0, lowercase
// from 2.0. Synthetic, but exercises the same machinery as the real
// emoji blocks.
func testTable() SupportTable {
	return SupportTable{
		{Lo: 'A', Hi: 'Z', Min: V(1, 0)},
		{Lo: 'a', Hi: 'z', Min: V(2, 0)},
	}
}

func TestResolveSupported(t *testing.T) {
	r := NewResolver(testTable(), V(2, 0))

	e := r.Resolve("41") // 'A'
	assert.True(t, e.Supported)
	assert.Equal(t, "A", e.Glyph)
	assert.Equal(t, "41", e.ID)

	e = r.Resolve("61") // 'a'
	assert.True(t, e.Supported)
	assert.Equal(t, "a", e.Glyph)
}

func TestResolveOlderRuntimeDropsNewerEmoji(t *testing.T) {
	r := NewResolver(testTable(), V(1, 0))

	// 'a' needs version 2.0; a 1.0 runtime cannot render it.
	e := r.Resolve("61")
	assert.False(t, e.Supported)
	assert.Empty(t, e.Glyph)
	assert.Equal(t, "61", e.ID)
}

func TestResolveSequenceNeedsNewestComponent(t *testing.T) {
	r := NewResolver(testTable(), V(1, 0))

	// "Aa": the sequence requires the max over its code points.
	e := r.Resolve("41-61")
	assert.False(t, e.Supported)

	e = NewResolver(testTable(), V(2, 0)).Resolve("41-61")
	assert.True(t, e.Supported)
	assert.Equal(t, "Aa", e.Glyph)
}

func TestResolveUndecodableIdentifier(t *testing.T) {
	r := NewResolver(testTable(), V(9, 0))

	tests := []string{"", "ZZZZ", "41-", "-41", "110000", "41--61"}
	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			e := r.Resolve(id)
			assert.False(t, e.Supported)
			assert.Empty(t, e.Glyph)
			assert.Equal(t, id, e.ID)
		})
	}
}

func TestResolveUnknownCodepoint(t *testing.T) {
	r := NewResolver(testTable(), V(9, 0))

	// '0' is not covered by the test table at all.
	e := r.Resolve("30")
	assert.False(t, e.Supported)
}

func TestDefaultTableGating(t *testing.T) {
	// Melting face (1FAE0) arrived in 14.0; grinning face (1F600) is
	// as old as emoji get.
	old := NewResolver(DefaultTable(), V(12, 0))
	assert.False(t, old.Resolve("1FAE0").Supported)
	assert.True(t, old.Resolve("1F600").Supported)

	current := NewDefaultResolver()
	assert.True(t, current.Resolve("1FAE0").Supported)
	assert.Equal(t, "\U0001FAE0", current.Resolve("1FAE0").Glyph)
}

func TestDefaultTableCoversBundledComponents(t *testing.T) {
	r := NewDefaultResolver()

	// Multi-codepoint forms from the bundled catalog: ZWJ family,
	// variation selector, flag pair, subdivision tag sequence.
	ids := []string{
		"1F468-200D-1F469-200D-1F466",
		"2708-FE0F",
		"1F1FA-1F1F8",
		"1F3F4-E0067-E0062-E0073-E0063-E0074-E007F",
	}
	for _, id := range ids {
		e := r.Resolve(id)
		require.True(t, e.Supported, "id %s", id)
		assert.NotEmpty(t, e.Glyph)
	}
}

func TestDefaultRuntimeVersionIsTableMax(t *testing.T) {
	assert.Equal(t, DefaultTable().Max(), DefaultRuntimeVersion())
	assert.True(t, DefaultRuntimeVersion().AtLeast(V(15, 0)))
}

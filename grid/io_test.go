package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lazuli/grid"
	"github.com/stretchr/testify/require"
)

// TestLoadWrite_RoundTrip loads a well-formed block and expects Write to
// reproduce it byte for byte.
func TestLoadWrite_RoundTrip(t *testing.T) {
	const block = "AAB\nABB\n"
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Load(strings.NewReader(block)))

	var out strings.Builder
	require.NoError(t, g.Write(&out))
	require.Equal(t, block, out.String())
}

// TestLoad_SkipsWhitespace accepts space-separated and ragged-whitespace
// input, matching character-at-a-time stream reads.
func TestLoad_SkipsWhitespace(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Load(strings.NewReader("A A B\r\n\tA BB")))

	var out strings.Builder
	require.NoError(t, g.Write(&out))
	require.Equal(t, "AAB\nABB\n", out.String())
}

// TestLoad_ShortInput expects ErrShortInput on truncated input.
func TestLoad_ShortInput(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	err = g.Load(strings.NewReader("AAB\nA"))
	require.ErrorIs(t, err, grid.ErrShortInput)
}

// TestLoad_OverwritesTiles verifies a second Load replaces prior contents
// and leaves visited flags alone.
func TestLoad_OverwritesTiles(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	require.NoError(t, g.Load(strings.NewReader("XY")))

	// Mark (0,0) visited, then reload
	g.Walk(grid.Cell{X: 0, Y: 0}, func(c grid.Cell) bool { return c.X == 0 }, nil)
	require.NoError(t, g.Load(strings.NewReader("PQ")))

	tl, err := g.Tile(grid.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	require.Equal(t, byte('P'), tl)

	v, err := g.Visited(grid.Cell{X: 0, Y: 0})
	require.NoError(t, err)
	require.True(t, v, "Load must not clear visited flags")
}

// TestDebug_Frame pins the framed diagnostic layout: dash border with the
// width appended, side-glyph rows, trailing height line.
func TestDebug_Frame(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Load(strings.NewReader("AAB\nABB\n")))

	var out strings.Builder
	g.Debug(&out)
	require.Equal(t, "\n┌───3\n│AAB\n│ABB\n2\n\n", out.String())
}

package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lazuli/grid"
)

// BenchmarkConnArea_Uniform floods a 1000×1000 single-tile grid: the worst
// case for the frame stack, every cell reachable from the start.
func BenchmarkConnArea_Uniform(b *testing.B) {
	const n = 1000
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			_ = g.SetTile(grid.Cell{X: x, Y: y}, '#')
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Refresh()
		if area := g.ConnArea(grid.Cell{X: 0, Y: 0}); area != n*n {
			b.Fatalf("area = %d; want %d", area, n*n)
		}
	}
}

// BenchmarkNextWalk_Random measures full component enumeration over a
// deterministic random 1000×1000 two-tile grid.
func BenchmarkNextWalk_Random(b *testing.B) {
	const n = 1000
	rnd := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			t := byte('.')
			if rnd.Intn(2) == 1 {
				t = '#'
			}
			_ = g.SetTile(grid.Cell{X: x, Y: y}, t)
		}
	}
	sharp := func(c grid.Cell) bool {
		tl, _ := g.Tile(c)

		return tl == '#'
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Refresh()
		comps := 0
		for c := g.Next('#'); c != grid.None; c = g.Next('#') {
			g.Walk(c, sharp, nil)
			comps++
		}
		if comps == 0 {
			b.Fatal("no components found")
		}
	}
}

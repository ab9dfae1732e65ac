package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Load fills the matrix from r, one character per cell in row-major order
// (rows top to bottom, columns left to right). Whitespace — newlines, tabs,
// spaces, carriage returns — is skipped between cells, so a block of height
// lines of width characters each loads exactly. Prior tile contents are
// overwritten; visited flags are untouched.
//
// Returns ErrShortInput when r is exhausted before width×height cells are
// read, or the underlying read error.
//
// Complexity: O(W×H).
func (g *Grid) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b, err := nextTile(br)
			if err != nil {
				if errors.Is(err, io.EOF) {
					return fmt.Errorf("%w: got %d of %d cells",
						ErrShortInput, y*g.width+x, g.width*g.height)
				}

				return fmt.Errorf("grid: load: %w", err)
			}
			g.tiles[g.index(Cell{X: x, Y: y})] = b
		}
	}

	return nil
}

// nextTile reads the next non-whitespace byte.
func nextTile(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b, nil
		}
	}
}

// Write emits the matrix to w as height lines of width characters each,
// rows top to bottom — exactly the layout Load consumes, so
// Load-then-Write round-trips a well-formed block byte for byte.
//
// Complexity: O(W×H).
func (g *Grid) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.height; y++ {
		row := g.index(Cell{X: 0, Y: y})
		if _, err := bw.Write(g.tiles[row : row+g.width]); err != nil {
			return fmt.Errorf("grid: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("grid: write: %w", err)
		}
	}

	return bw.Flush()
}

// Debug emits a framed human-readable dump to w: a border line of width
// dashes behind a corner glyph with the width appended, each row behind a
// side glyph, then a trailing line reporting the height. Intended for a
// debugging stream, not for parsing.
func (g *Grid) Debug(w io.Writer) {
	fmt.Fprint(w, "\n┌")
	for x := 0; x < g.width; x++ {
		fmt.Fprint(w, "─")
	}
	fmt.Fprintln(w, g.width)
	for y := 0; y < g.height; y++ {
		row := g.index(Cell{X: 0, Y: y})
		fmt.Fprintf(w, "│%s\n", g.tiles[row:row+g.width])
	}
	fmt.Fprintln(w, g.height)
	fmt.Fprintln(w)
}

// Command gridstat reads a rectangular character grid from a file or stdin
// and reports, per distinct tile, the cell count and the 4-connected
// component sizes. Dimensions are inferred from the first line and the line
// count.
//
// Usage:
//
//	gridstat [-f grid.txt] [-debug] [-profile]
//
// With -profile a CPU profile of the flood fills is written to the current
// directory.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/profile"

	"github.com/katalvlaran/lazuli/grid"
)

func main() {
	var (
		path    = flag.String("f", "-", "grid file path, \"-\" for stdin")
		debug   = flag.Bool("debug", false, "dump the framed grid view to stderr")
		cpuProf = flag.Bool("profile", false, "write a CPU profile to the working directory")
	)
	flag.Parse()

	if *cpuProf {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if err := run(*path, *debug, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "gridstat:", err)
		os.Exit(1)
	}
}

func run(path string, debug bool, out *os.File) error {
	g, err := load(path)
	if err != nil {
		return err
	}
	if debug {
		g.Debug(os.Stderr)
	}

	for _, pat := range tiles(g) {
		g.Refresh()
		var sizes []int
		for c := g.Next(pat); c != grid.None; c = g.Next(pat) {
			sizes = append(sizes, g.ConnArea(c))
		}
		largest := 0
		for _, s := range sizes {
			if s > largest {
				largest = s
			}
		}
		fmt.Fprintf(out, "tile %q: %d cell(s), %d component(s), largest %d\n",
			pat, g.Stat(pat), len(sizes), largest)
	}

	return nil
}

// load reads the whole input, infers dimensions, and fills a grid.
func load(path string) (*grid.Grid, error) {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	g, err := grid.New(len(lines[0]), len(lines))
	if err != nil {
		return nil, err
	}
	if err = g.Load(strings.NewReader(strings.Join(lines, "\n"))); err != nil {
		return nil, err
	}

	return g, nil
}

// tiles collects the distinct tile values present, in ascending byte order.
func tiles(g *grid.Grid) []byte {
	seen := make(map[byte]bool)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t, _ := g.Tile(grid.Cell{X: x, Y: y})
			seen[t] = true
		}
	}
	res := make([]byte, 0, len(seen))
	for t := range seen {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })

	return res
}

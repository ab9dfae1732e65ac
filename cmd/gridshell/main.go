// Command gridshell is an interactive explorer for character grids: load a
// file, query pattern counts and component areas, and watch the visited
// state evolve between refreshes.
//
// Commands:
//
//	load <file>      load a grid, dimensions inferred from the file
//	show             print the grid
//	debug            print the framed diagnostic view
//	stat <ch>        count cells holding <ch>
//	area <x> <y>     connected-area size from (x,y) (marks cells visited)
//	next <ch>        first unvisited cell holding <ch>
//	refresh          clear all visited flags
//	help, exit
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/katalvlaran/lazuli/grid"
)

const help = `commands:
  load <file>   load a grid from file
  show          print the grid
  debug         print the framed diagnostic view
  stat <ch>     count cells holding <ch>
  area <x> <y>  connected-area size from (x,y)
  next <ch>     first unvisited cell holding <ch>
  refresh       clear all visited flags
  exit          quit`

func main() {
	rl, err := readline.New("grid> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridshell:", err)
		os.Exit(1)
	}
	defer rl.Close()

	var g *grid.Grid
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil { // io.EOF on Ctrl-D
			return
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return
		}
		if g, err = eval(g, args, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

// eval runs one command against the current grid, returning the
// (possibly replaced) grid.
func eval(g *grid.Grid, args []string, out io.Writer) (*grid.Grid, error) {
	cmd := args[0]
	if cmd == "help" {
		fmt.Fprintln(out, help)

		return g, nil
	}
	if cmd == "load" {
		if len(args) != 2 {
			return g, fmt.Errorf("usage: load <file>")
		}

		return loadFile(args[1], out)
	}
	if g == nil {
		return nil, fmt.Errorf("no grid loaded; use: load <file>")
	}

	switch cmd {
	case "show":
		return g, g.Write(out)
	case "debug":
		g.Debug(out)
	case "refresh":
		g.Refresh()
	case "stat":
		pat, err := patArg(args)
		if err != nil {
			return g, err
		}
		fmt.Fprintln(out, g.Stat(pat))
	case "next":
		pat, err := patArg(args)
		if err != nil {
			return g, err
		}
		c := g.Next(pat)
		if c == grid.None {
			fmt.Fprintln(out, "none")
		} else {
			fmt.Fprintln(out, c)
		}
	case "area":
		if len(args) != 3 {
			return g, fmt.Errorf("usage: area <x> <y>")
		}
		x, errX := strconv.Atoi(args[1])
		y, errY := strconv.Atoi(args[2])
		if errX != nil || errY != nil {
			return g, fmt.Errorf("usage: area <x> <y>")
		}
		c := grid.Cell{X: x, Y: y}
		if !g.InBounds(c) {
			return g, grid.ErrInvalidCoordinate
		}
		fmt.Fprintln(out, g.ConnArea(c))
	default:
		return g, fmt.Errorf("unknown command %q; try help", cmd)
	}

	return g, nil
}

// patArg extracts the single-character pattern argument.
func patArg(args []string) (byte, error) {
	if len(args) != 2 || len(args[1]) != 1 {
		return 0, fmt.Errorf("usage: %s <ch>", args[0])
	}

	return args[1][0], nil
}

// loadFile reads a grid file, inferring dimensions from its lines.
func loadFile(path string, out io.Writer) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid file")
	}

	g, err := grid.New(len(lines[0]), len(lines))
	if err != nil {
		return nil, err
	}
	if err = g.Load(strings.NewReader(strings.Join(lines, "\n"))); err != nil {
		return nil, err
	}
	fmt.Fprintf(out, "loaded %d×%d grid\n", g.Width(), g.Height())

	return g, nil
}

// Package manifold simulates beams falling through a tachyon manifold.
//
// Beams leave every Start cell and move one row down per round. A beam
// entering a Splitter is replaced by two beams, one on each side of the
// splitter. Once no beam can move the manifold has settled and can be
// asked how many splitters were hit and how many timelines (distinct
// paths from a start to the bottom row) exist.
package manifold

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2025"
)

// Cell is the content of one grid position.
type Cell uint8

const (
	Void     Cell = iota // .
	Beam                 // |
	Splitter             // ^
	Start                // S
)

func (c Cell) String() string {
	switch c {
	case Void:
		return "."
	case Beam:
		return "|"
	case Splitter:
		return "^"
	case Start:
		return "S"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

func parseCell(r rune) (Cell, bool) {
	switch r {
	case '.':
		return Void, true
	case '|':
		return Beam, true
	case '^':
		return Splitter, true
	case 'S':
		return Start, true
	}
	return 0, false
}

// InvalidCellError reports a character outside the grid alphabet.
type InvalidCellError struct {
	Row, Col int // Col counts runes, not bytes
	Char     rune
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("manifold: invalid cell %q at row %d, col %d", e.Char, e.Row, e.Col)
}

// Grid is the manifold diagram. Its shape never changes after parsing.
type Grid struct {
	aoc.Grid[Cell]
}

// Parse parses a diagram. Blank lines are skipped and do not count as
// rows. It fails with an *InvalidCellError on the first character outside
// ".|^S".
func Parse(text string) (*Grid, error) {
	return parse(text, true)
}

// ParseLenient is like Parse but silently drops unrecognized characters,
// shifting the rest of the row left.
func ParseLenient(text string) *Grid {
	g, _ := parse(text, false)
	return g
}

func parse(text string, strict bool) (*Grid, error) {
	g := new(Grid)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		row := make([]Cell, 0, len(line))
		col := 0
		for _, r := range line {
			c, ok := parseCell(r)
			if !ok && strict {
				return nil, &InvalidCellError{Row: len(g.Grid), Col: col, Char: r}
			}
			col++
			if ok {
				row = append(row, c)
			}
		}
		g.Grid = append(g.Grid, row)
	}
	return g, nil
}

// Dimensions returns the number of rows and the width of the first row.
// ok is false for an empty grid.
func (g *Grid) Dimensions() (rows, cols int, ok bool) {
	if len(g.Grid) == 0 {
		return 0, 0, false
	}
	s := g.Size()
	return s.Y, s.X, true
}

// Count returns the number of cells equal to c.
func (g *Grid) Count(c Cell) int {
	n := 0
	g.Each(func(_ aoc.Pt, v Cell) bool {
		if v == c {
			n++
		}
		return true
	})
	return n
}

func (g *Grid) Clone() *Grid {
	return &Grid{g.Grid.Clone()}
}

// String renders the grid in the input alphabet, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Grid {
		for _, c := range row {
			sb.WriteString(c.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

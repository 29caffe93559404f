package aoc

import (
	"cmp"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a row-major grid indexed by Pt{X: column, Y: row}.
//
// Rows may have different lengths. Accessors treat a cell past the end of
// its own row as absent rather than panicking.
type Grid[T any] [][]T

// At returns the value at p. It panics if p is out of range.
func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

// AtOk returns the value at p and whether p is inside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// Set stores v at p. It reports false, and does nothing, if p is out of
// range.
func (g Grid[T]) Set(p Pt, v T) bool {
	if _, ok := g.AtOk(p); !ok {
		return false
	}
	g[p.Y][p.X] = v
	return true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Size returns the number of rows as Y and the width of the first row as
// X. The zero Pt is returned for an empty grid.
func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	if g == nil {
		return nil
	}
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Each calls f for every cell in row-major order until f returns false.
func (g Grid[T]) Each(f func(p Pt, v T) (keepGoing bool)) {
	for y, row := range g {
		for x, v := range row {
			if !f(Pt{x, y}, v) {
				return
			}
		}
	}
}

var hashers sync.Map // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a fingerprint of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Step returns the point one cell away from p in direction d.
func (p Pt2[T]) Step(d Direction) Pt2[T] {
	switch d {
	case Up:
		p.Y--
	case Right:
		p.X++
	case Down:
		p.Y++
	case Left:
		p.X--
	}
	return p
}

// Compare orders points row-major: by Y, then by X.
func (p Pt2[T]) Compare(q Pt2[T]) int {
	if c := cmp.Compare(p.Y, q.Y); c != 0 {
		return c
	}
	return cmp.Compare(p.X, q.X)
}

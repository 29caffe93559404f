package manifold

import (
	"fmt"
	"slices"

	aoc "github.com/maisem/aoc2025"
	"golang.org/x/exp/maps"
	"tailscale.com/types/logger"
	"tailscale.com/util/deephash"
	"tailscale.com/util/set"
)

// Edge is one beam move made during a round.
type Edge struct {
	From, To aoc.Pt
	Forked   bool // To is beside the splitter below From
}

func (e Edge) String() string {
	if e.Forked {
		return fmt.Sprintf("%v => %v", e.From, e.To)
	}
	return fmt.Sprintf("%v -> %v", e.From, e.To)
}

func compareEdges(a, b Edge) int {
	if c := a.From.Compare(b.From); c != 0 {
		return c
	}
	return a.To.Compare(b.To)
}

// Option configures a Manifold.
type Option func(*Manifold)

// WithLogf sets where per-round debug output goes. The default discards.
func WithLogf(logf logger.Logf) Option {
	return func(m *Manifold) {
		m.logf = logf
	}
}

// Manifold owns a Grid and the beams moving through it.
//
// It is not safe for concurrent use.
type Manifold struct {
	grid     *Grid
	frontier set.Set[aoc.Pt] // beam heads for the next round
	roots    []aoc.Pt        // Start cells, row-major
	dag      aoc.DAG[aoc.Pt] // every move ever made
	rounds   int
	logf     logger.Logf

	settledHash deephash.Sum
}

// New returns a Manifold with a beam head on every Start cell of g. The
// Manifold takes ownership of g; g must not be modified by the caller
// afterwards.
func New(g *Grid, opts ...Option) *Manifold {
	m := &Manifold{
		grid:     g,
		frontier: make(set.Set[aoc.Pt]),
		logf:     logger.Discard,
	}
	for _, o := range opts {
		o(m)
	}
	g.Each(func(p aoc.Pt, c Cell) bool {
		if c == Start {
			m.frontier.Add(p)
			m.roots = append(m.roots, p)
			m.dag.AddNode(p)
		}
		return true
	})
	if len(m.roots) > 1 {
		m.logf("%d start cells; each one is a timeline root", len(m.roots))
	}
	if !m.CanAdvance() {
		m.settle()
	}
	return m
}

// Grid returns the grid as painted so far.
func (m *Manifold) Grid() *Grid { return m.grid }

// Origin returns the first Start cell in row-major order.
func (m *Manifold) Origin() (aoc.Pt, bool) {
	if len(m.roots) == 0 {
		return aoc.Pt{}, false
	}
	return m.roots[0], true
}

// Roots returns every Start cell in row-major order.
func (m *Manifold) Roots() []aoc.Pt {
	return slices.Clone(m.roots)
}

// Rounds returns how many times Advance ran with beam heads left.
func (m *Manifold) Rounds() int { return m.rounds }

// Frontier returns the current beam heads in row-major order.
func (m *Manifold) Frontier() []aoc.Pt {
	heads := maps.Keys(m.frontier)
	slices.SortFunc(heads, aoc.Pt.Compare)
	return heads
}

// CanAdvance reports whether any beam head is left.
func (m *Manifold) CanAdvance() bool {
	return m.frontier.Len() > 0
}

// Advance moves every beam head one row down and returns the moves made,
// sorted by source then destination.
//
// A head above a Splitter moves to the cells left and right of the
// splitter; any other head moves straight down. Moves that would leave the
// grid are dropped. Destinations are painted Beam unless they are a
// Splitter or Start. The new heads replace the old ones once all heads
// have been moved, so no head sees another head's paint from the same
// round.
func (m *Manifold) Advance() []Edge {
	if !m.CanAdvance() {
		return nil
	}
	var edges []Edge
	for head := range m.frontier {
		below := head.Step(aoc.Down)
		c, ok := m.grid.AtOk(below)
		if !ok {
			continue
		}
		if c != Splitter {
			edges = append(edges, Edge{From: head, To: below})
			continue
		}
		for _, d := range []aoc.Direction{aoc.Left, aoc.Right} {
			to := below.Step(d)
			if _, ok := m.grid.AtOk(to); ok {
				edges = append(edges, Edge{From: head, To: to, Forked: true})
			}
		}
	}
	slices.SortFunc(edges, compareEdges)

	next := make(set.Set[aoc.Pt])
	for _, e := range edges {
		next.Add(e.To)
		m.dag.AddEdge(e.From, e.To)
		if c, _ := m.grid.AtOk(e.To); c == Void {
			m.grid.Set(e.To, Beam)
		}
	}
	m.frontier = next
	m.rounds++
	m.logf("round %d: %d moves, %d heads", m.rounds, len(edges), next.Len())
	if !m.CanAdvance() {
		m.settle()
	}
	return edges
}

// Run advances until no beam head is left and returns the number of
// rounds run by this call. It takes at most as many rounds as the grid has
// rows.
func (m *Manifold) Run() int {
	n := 0
	for m.CanAdvance() {
		m.Advance()
		n++
	}
	return n
}

func (m *Manifold) settle() {
	m.settledHash = m.grid.Hash()
	m.logf("settled after %d rounds, %d distinct moves", m.rounds, m.dag.NumEdges())
}

// Hits returns the number of splitters reached by a beam from directly
// above: a Splitter below a Beam or a Start cell.
func (m *Manifold) Hits() int {
	hits := 0
	m.grid.Each(func(p aoc.Pt, c Cell) bool {
		if c != Splitter || p.Y == 0 {
			return true
		}
		if above, _ := m.grid.AtOk(p.Step(aoc.Up)); above == Beam || above == Start {
			hits++
		}
		return true
	})
	return hits
}

// Timelines returns the number of distinct paths that start at a Start
// cell and end on the last row of the grid.
//
// It panics if the manifold has not settled, or if the grid was modified
// after it settled.
func (m *Manifold) Timelines() int {
	if m.CanAdvance() {
		panic("manifold: Timelines called before the beams settled")
	}
	if m.grid.Hash() != m.settledHash {
		panic("manifold: grid modified after the beams settled")
	}
	rows, _, ok := m.grid.Dimensions()
	if !ok {
		return 0
	}
	last := rows - 1
	isRoot := make(set.Set[aoc.Pt])
	for _, r := range m.roots {
		isRoot.Add(r)
	}

	counts := m.dag.CountPaths(m.roots, aoc.Pt.Compare)
	var ends []int
	for p, n := range counts {
		if p.Y != last || m.dag.InDegree(p) == 0 {
			continue
		}
		if isRoot.Contains(p) {
			// A start cell on the last row is not a timeline by itself.
			n--
		}
		ends = append(ends, n)
	}
	return aoc.Sum(ends...)
}

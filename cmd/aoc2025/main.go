// Command aoc2025 runs the Advent of Code 2025 solutions.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2025"
	"github.com/maisem/aoc2025/manifold"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// settle parses the day 7 input and runs the beams to completion.
func (s solver) settle() *manifold.Manifold {
	text := string(s.Input())
	var g *manifold.Grid
	if s.Config().Lenient {
		g = manifold.ParseLenient(text)
	} else {
		g = aoc.MustGet(manifold.Parse(text))
	}
	m := manifold.New(g, manifold.WithLogf(s.Logf))
	m.Run()
	return m
}

/*
want=21

.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
*/
func (s solver) D7p1() any {
	return s.settle().Hits()
}

// want=40
func (s solver) D7p2() any {
	m := s.settle()
	s.Logf("settled grid:\n%v", m.Grid())
	return m.Timelines()
}

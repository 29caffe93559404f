package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGridRagged(t *testing.T) {
	g := Grid[rune]{
		[]rune("abc"),
		[]rune("d"),
		[]rune("efgh"),
	}
	assert.Equal(t, Pt{3, 3}, g.Size())

	tests := []struct {
		p    Pt
		want rune
		ok   bool
	}{
		{Pt{0, 0}, 'a', true},
		{Pt{2, 0}, 'c', true},
		{Pt{1, 1}, 0, false},
		{Pt{3, 2}, 'h', true},
		{Pt{-1, 2}, 0, false},
		{Pt{0, -1}, 0, false},
		{Pt{0, 3}, 0, false},
	}
	for _, tt := range tests {
		got, ok := g.AtOk(tt.p)
		if got != tt.want || ok != tt.ok {
			t.Errorf("AtOk(%v) = %q, %v; want %q, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}

	assert.True(t, g.Set(Pt{3, 2}, 'H'))
	assert.False(t, g.Set(Pt{1, 1}, 'x'))
	assert.Equal(t, 'H', g.At(Pt{3, 2}))
}

func TestGridEmpty(t *testing.T) {
	var g Grid[int]
	assert.Equal(t, Pt{}, g.Size())
	_, ok := g.AtOk(Pt{})
	assert.False(t, ok)
	assert.Nil(t, g.Clone())
}

func TestGridCloneAndHash(t *testing.T) {
	g := MakeGrid[int](3, 2)
	g.Set(Pt{1, 1}, 7)

	c := g.Clone()
	if diff := cmp.Diff(g, c); diff != "" {
		t.Fatalf("Clone mismatch (-orig +clone):\n%s", diff)
	}
	assert.Equal(t, g.Hash(), c.Hash())

	c.Set(Pt{0, 0}, 1)
	assert.Equal(t, 0, g.At(Pt{0, 0}), "Clone shares rows")
	assert.NotEqual(t, g.Hash(), c.Hash())
}

func TestGridEach(t *testing.T) {
	g := Grid[int]{{1, 2}, {3}}
	var got []Pt
	g.Each(func(p Pt, v int) bool {
		got = append(got, p)
		return v < 2
	})
	assert.Equal(t, []Pt{{0, 0}, {1, 0}}, got)
}

func TestPtStep(t *testing.T) {
	p := Pt{X: 2, Y: 5}
	assert.Equal(t, Pt{2, 4}, p.Step(Up))
	assert.Equal(t, Pt{3, 5}, p.Step(Right))
	assert.Equal(t, Pt{2, 6}, p.Step(Down))
	assert.Equal(t, Pt{1, 5}, p.Step(Left))
	assert.Equal(t, "v", Down.String())
}

func TestPtCompare(t *testing.T) {
	tests := []struct {
		a, b Pt
		want int
	}{
		{Pt{0, 0}, Pt{0, 0}, 0},
		{Pt{5, 0}, Pt{0, 1}, -1},
		{Pt{0, 1}, Pt{5, 0}, 1},
		{Pt{1, 3}, Pt{2, 3}, -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

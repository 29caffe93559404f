package manifold

import (
	"errors"
	"testing"

	aoc "github.com/maisem/aoc2025"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := Parse("\n.S.\r\n\n|^.\n..\n\n")
	require.NoError(t, err)

	rows, cols, ok := g.Dimensions()
	require.True(t, ok)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, ".S.\n|^.\n..\n", g.String())

	tests := []struct {
		p    aoc.Pt
		want Cell
		ok   bool
	}{
		{aoc.Pt{X: 1, Y: 0}, Start, true},
		{aoc.Pt{X: 0, Y: 1}, Beam, true},
		{aoc.Pt{X: 1, Y: 1}, Splitter, true},
		{aoc.Pt{X: 1, Y: 2}, Void, true},
		{aoc.Pt{X: 2, Y: 2}, Void, false}, // past the end of a short row
		{aoc.Pt{X: -1, Y: 0}, Void, false},
		{aoc.Pt{X: 0, Y: 3}, Void, false},
	}
	for _, tt := range tests {
		got, ok := g.AtOk(tt.p)
		if got != tt.want || ok != tt.ok {
			t.Errorf("AtOk(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}

	assert.False(t, g.Set(aoc.Pt{X: 2, Y: 2}, Beam), "Set out of range")
	assert.Equal(t, ".S.\n|^.\n..\n", g.String())
}

func TestParseInvalidCell(t *testing.T) {
	_, err := Parse(".S.\n\n.^.\n..x\n")
	require.Error(t, err)

	var ice *InvalidCellError
	require.True(t, errors.As(err, &ice), "got %T", err)
	assert.Equal(t, InvalidCellError{Row: 2, Col: 2, Char: 'x'}, *ice)
	assert.EqualError(t, err, `manifold: invalid cell 'x' at row 2, col 2`)

	_, err = Settle("S\n#\n")
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, '#', ice.Char)
}

func TestParseLenient(t *testing.T) {
	g := ParseLenient(".x.S\n.^#.\n")
	assert.Equal(t, "..S\n.^.\n", g.String())
}

func TestDimensionsEmpty(t *testing.T) {
	g, err := Parse("\n\n")
	require.NoError(t, err)
	_, _, ok := g.Dimensions()
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	g, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 22, g.Count(Splitter))
	assert.Equal(t, 1, g.Count(Start))
	assert.Zero(t, g.Count(Beam))
}

func TestCellString(t *testing.T) {
	for r, want := range map[rune]Cell{'.': Void, '|': Beam, '^': Splitter, 'S': Start} {
		got, ok := parseCell(r)
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, string(r), got.String())
	}
	_, ok := parseCell('x')
	assert.False(t, ok)
	assert.Equal(t, "Cell(9)", Cell(9).String())
}

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridFromSurface(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tile          int
		want          Grid
	}{
		{"exact", 200, 100, 20, Grid{Width: 10, Height: 5}},
		{"floors remainder", 219, 119, 20, Grid{Width: 10, Height: 5}},
		{"smaller than tile", 19, 19, 20, Grid{}},
		{"zero surface", 0, 0, 20, Grid{}},
		{"zero tile", 200, 100, 0, Grid{}},
		{"negative surface", -40, 100, 20, Grid{}},
		{"terminal cells", 40, 20, 1, Grid{Width: 40, Height: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GridFromSurface(tt.width, tt.height, tt.tile))
		})
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 10, Height: 8}
	tests := []struct {
		in, want Point
	}{
		{Point{X: -1, Y: 3}, Point{X: 9, Y: 3}},
		{Point{X: 10, Y: 3}, Point{X: 0, Y: 3}},
		{Point{X: 4, Y: -1}, Point{X: 4, Y: 7}},
		{Point{X: 4, Y: 8}, Point{X: 4, Y: 0}},
		{Point{X: 0, Y: 0}, Point{X: 0, Y: 0}},
		{Point{X: 9, Y: 7}, Point{X: 9, Y: 7}},
		{Point{X: -1, Y: 8}, Point{X: 9, Y: 0}},
	}
	for _, tt := range tests {
		got := g.Wrap(tt.in)
		assert.Equal(t, tt.want, got, "wrap %v", tt.in)
		assert.True(t, g.Contains(got))
	}
}

func TestGridContainsAndArea(t *testing.T) {
	g := Grid{Width: 3, Height: 2}
	assert.Equal(t, 6, g.Area())
	assert.True(t, g.Playable())
	assert.True(t, g.Contains(Point{X: 2, Y: 1}))
	assert.False(t, g.Contains(Point{X: 3, Y: 1}))
	assert.False(t, g.Contains(Point{X: 0, Y: -1}))
	assert.False(t, Grid{Width: 0, Height: 4}.Playable())
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{UP, RIGHT, DOWN, LEFT} {
		assert.Equal(t, d, DirectionOf(d.ToPoint()))
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, d.ToPoint().Add(d.Opposite().ToPoint()), Point{})
	}
	assert.Equal(t, NONE, DirectionOf(Point{}))
	assert.Equal(t, NONE, DirectionOf(Point{X: 2}))
	assert.Equal(t, "left", LEFT.String())
}

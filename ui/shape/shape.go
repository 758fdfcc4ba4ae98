// Package shape holds the pixel geometry shared by the renderers: tile
// centres, snake strokes, eyes, screen layout and on-screen buttons. It has
// no graphics dependency so it can be tested headless.
package shape

import (
	"torus-snake/game/types"
)

// Proportions of a tile
const (
	BodyWidth       = 0.8
	HeadRadius      = 0.5
	EyeRadius       = 0.1
	EyeForward      = 0.2
	EyeSpread       = 0.15
	FoodRadius      = 0.4
	HighlightRadius = 0.15
	HighlightOffset = 0.35
)

type Vec struct {
	X, Y float32
}

type Rect struct {
	X, Y, W, H float32
}

// Contains checks if v lies inside the rectangle
func (r Rect) Contains(v Vec) bool {
	return v.X >= r.X && v.X < r.X+r.W && v.Y >= r.Y && v.Y < r.Y+r.H
}

// Center returns the pixel centre of a cell
func Center(p types.Point, tile int) Vec {
	t := float32(tile)
	return Vec{
		X: float32(p.X)*t + t/2,
		Y: float32(p.Y)*t + t/2,
	}
}

// Strokes splits the body into polylines of tile centres. A new run starts
// wherever two consecutive segments are not neighbours, which is where the
// snake wrapped around an edge.
func Strokes(body []types.Point, tile int) [][]Vec {
	if len(body) == 0 {
		return nil
	}
	var runs [][]Vec
	run := []Vec{Center(body[0], tile)}
	for i := 1; i < len(body); i++ {
		prev, cur := body[i-1], body[i]
		if abs(cur.X-prev.X) > 1 || abs(cur.Y-prev.Y) > 1 {
			runs = append(runs, run)
			run = nil
		}
		run = append(run, Center(cur, tile))
	}
	return append(runs, run)
}

// Eyes places the two eyes ahead of the head centre, spread across the heading
func Eyes(head, heading types.Point, tile int) (Vec, Vec) {
	t := float32(tile)
	c := Center(head, tile)
	dx, dy := float32(heading.X), float32(heading.Y)
	fx, fy := c.X+dx*t*EyeForward, c.Y+dy*t*EyeForward
	sx, sy := dy*t*EyeSpread, dx*t*EyeSpread
	return Vec{X: fx - sx, Y: fy + sy}, Vec{X: fx + sx, Y: fy - sy}
}

// Highlight is the glint position on a food disc
func Highlight(food types.Point, tile int) Vec {
	t := float32(tile)
	return Vec{
		X: float32(food.X)*t + t*HighlightOffset,
		Y: float32(food.Y)*t + t*HighlightOffset,
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

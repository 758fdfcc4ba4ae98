package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is a single grid cell, 0-indexed from the top-left corner
type Point struct {
	X, Y int
}

// Add returns p moved by the step d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Game constants
const (
	TileSize      = 20                     // Pixels per grid cell on the window surface
	TickInterval  = 120 * time.Millisecond // Time between snake movements
	FoodReward    = 10                     // Score added per food eaten
	InitialLength = 3                      // Snake segments after a reset
)

// GridFromSurface converts a drawing surface size into whole cells.
// A non-positive tile or surface yields an empty grid.
func GridFromSurface(surfaceWidth, surfaceHeight, tileSize int) Grid {
	if tileSize <= 0 || surfaceWidth <= 0 || surfaceHeight <= 0 {
		return Grid{}
	}
	return Grid{
		Width:  surfaceWidth / tileSize,
		Height: surfaceHeight / tileSize,
	}
}

// Area returns the number of cells on the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Playable reports whether the grid has at least one cell
func (g Grid) Playable() bool {
	return g.Width > 0 && g.Height > 0
}

// Contains checks if a point lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap brings a point that stepped one cell past an edge back in on the
// opposite edge.
func (g Grid) Wrap(p Point) Point {
	if p.X < 0 {
		p.X = g.Width - 1
	} else if p.X >= g.Width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = g.Height - 1
	} else if p.Y >= g.Height {
		p.Y = 0
	}
	return p
}

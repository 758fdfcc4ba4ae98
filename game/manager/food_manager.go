package manager

import (
	"golang.org/x/exp/rand"

	"torus-snake/game/entity"
	"torus-snake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// SetGrid updates the sampling bounds after a resize
func (fm *FoodManager) SetGrid(grid types.Grid) {
	fm.grid = grid
}

// GenerateFood samples random cells until one is off the snake.
// ok is false when the board has no free cell at all.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	if !fm.grid.Playable() {
		return types.Point{}, false
	}
	if snake != nil && snake.Len() >= fm.grid.Area() && fm.freeCells(snake) == 0 {
		return types.Point{}, false
	}
	for {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
}

// freeCells counts in-bounds cells not covered by the snake
func (fm *FoodManager) freeCells(snake *entity.Snake) int {
	covered := make(map[types.Point]struct{}, len(snake.Body))
	for _, p := range snake.Body {
		if fm.grid.Contains(p) {
			covered[p] = struct{}{}
		}
	}
	return fm.grid.Area() - len(covered)
}

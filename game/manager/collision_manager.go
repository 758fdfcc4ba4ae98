package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// SetGrid updates the bounds used for spawn validation after a resize
func (cm *CollisionManager) SetGrid(grid types.Grid) {
	cm.grid = grid
}

// IsSelfCollision checks the head against every other segment.
// Body-on-body overlap is never checked: the movement model cannot produce it.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	if snake == nil || len(snake.Body) < 1 {
		return false
	}
	head := snake.Body[0]
	for _, part := range snake.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

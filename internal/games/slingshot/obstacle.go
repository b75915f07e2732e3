package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/core"

// obstacleSpeed is the speed multiplier obstacles carry.
// Obstacles never move, so it only shows up in snapshots.
const obstacleSpeed = 100

// Obstacle is a static block that deflects or is destroyed by projectiles.
type Obstacle struct {
	Actor
	Kind ObstacleKind
}

// NewObstacle creates a visible obstacle.
func NewObstacle(kind ObstacleKind, pos, size core.Vec2) Obstacle {
	return Obstacle{
		Actor: Actor{Pos: pos, Size: size, Speed: obstacleSpeed, Visible: true},
		Kind:  kind,
	}
}

// Destructible reports whether projectiles can break the obstacle.
func (o *Obstacle) Destructible() bool {
	return o.Kind == Destructible
}

// Remove takes the obstacle out of play.
func (o *Obstacle) Remove() {
	o.Hide()
}

// Package entity holds the level objects the player moves among: solid
// platforms, hazards, pickups, the goal flag and patrolling enemies.
package entity

import (
	"samu/camera"
	"samu/geom"
	"samu/render"
)

// Drawable is anything rendered through the camera each frame.
type Drawable interface {
	Draw(s render.Surface, cam *camera.Camera)
}

// Collidable reports contact with the player's rect.
type Collidable interface {
	CheckCollision(target geom.Rect) bool
}

// Base is the positioned, sized box every entity owns.
type Base struct {
	Rect geom.Rect
}

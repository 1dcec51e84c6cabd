// Package camera maps world coordinates into the visible viewport.
package camera

import "samu/geom"

// Camera tracks a viewport rectangle inside a world of fixed size.
type Camera struct {
	View        geom.Rect
	WorldWidth  float64
	WorldHeight float64
}

func New(viewWidth, viewHeight, worldWidth, worldHeight float64) *Camera {
	return &Camera{
		View:        geom.NewRect(0, 0, viewWidth, viewHeight),
		WorldWidth:  worldWidth,
		WorldHeight: worldHeight,
	}
}

// Apply converts a world-space rect to screen space.
func (c *Camera) Apply(r geom.Rect) geom.Rect {
	return r.Move(-c.View.X, -c.View.Y)
}

// ApplyPoint converts a single world-space point to screen space.
func (c *Camera) ApplyPoint(p geom.Vec2) geom.Vec2 {
	return geom.Vec2{X: p.X - c.View.X, Y: p.Y - c.View.Y}
}

// Update centers the viewport on target, then clamps it to the world.
// A world smaller than the viewport pins the view at the origin.
func (c *Camera) Update(target geom.Rect) {
	c.View.SetCenter(target.Center())

	c.View.X = max(0, min(c.View.X, c.WorldWidth-c.View.Width))
	c.View.Y = max(0, min(c.View.Y, c.WorldHeight-c.View.Height))
}

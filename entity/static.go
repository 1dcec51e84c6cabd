package entity

import (
	"samu/asset"
	"samu/camera"
	"samu/geom"
	"samu/render"
)

// Platform is solid ground. It never moves and only draws itself.
type Platform struct {
	Base
}

func NewPlatform(x, y, width, height float64) *Platform {
	return &Platform{Base{Rect: geom.NewRect(x, y, width, height)}}
}

// Draw paints the body with a distinct top edge, the walkable surface.
func (p *Platform) Draw(s render.Surface, cam *camera.Camera) {
	r := cam.Apply(p.Rect)
	s.FillRect(r, '▒', render.StyleGround)

	top := r
	top.Height = min(r.Height, 1)
	s.FillRect(top, '━', render.StylePlatform)
}

// Lava hurts on every overlapping frame.
type Lava struct {
	Base
}

func NewLava(x, y, width, height float64) *Lava {
	return &Lava{Base{Rect: geom.NewRect(x, y, width, height)}}
}

func (l *Lava) CheckCollision(target geom.Rect) bool {
	return geom.Intersects(l.Rect, target)
}

func (l *Lava) Draw(s render.Surface, cam *camera.Camera) {
	s.FillRect(cam.Apply(l.Rect), '~', render.StyleLava)
}

// Spikes hurt on every overlapping frame. Triangles only affects drawing.
type Spikes struct {
	Base
	Triangles int
}

func NewSpikes(x, y, width, height float64, triangles int) *Spikes {
	if triangles < 1 {
		triangles = 1
	}
	return &Spikes{
		Base:      Base{Rect: geom.NewRect(x, y, width, height)},
		Triangles: triangles,
	}
}

func (sp *Spikes) CheckCollision(target geom.Rect) bool {
	return geom.Intersects(sp.Rect, target)
}

// Polygons returns one upward triangle per subdivision of r, in r's space.
func (sp *Spikes) Polygons(r geom.Rect) [][]geom.Vec2 {
	w := r.Width / float64(sp.Triangles)
	out := make([][]geom.Vec2, 0, sp.Triangles)
	for i := 0; i < sp.Triangles; i++ {
		baseX := r.X + float64(i)*w
		out = append(out, []geom.Vec2{
			{X: baseX, Y: r.Bottom()},
			{X: baseX + w/2, Y: r.Top()},
			{X: baseX + w, Y: r.Bottom()},
		})
	}
	return out
}

func (sp *Spikes) Draw(s render.Surface, cam *camera.Camera) {
	for _, tri := range sp.Polygons(sp.Rect) {
		for i, pt := range tri {
			tri[i] = cam.ApplyPoint(pt)
		}
		s.DrawPolygon(tri, '^', render.StyleSpikes)
	}
}

// Coin is collected once, on first contact.
type Coin struct {
	Base
	Collected bool
}

// Default coin size when the level does not give one.
const (
	CoinWidth  = 35
	CoinHeight = 35
)

func NewCoin(x, y, width, height float64) *Coin {
	return &Coin{Base: Base{Rect: geom.NewRect(x, y, width, height)}}
}

// CheckCollision marks the coin collected and returns true the first time
// the target overlaps it. Every call after that returns false.
func (c *Coin) CheckCollision(target geom.Rect) bool {
	if c.Collected || !geom.Intersects(c.Rect, target) {
		return false
	}
	c.Collected = true
	return true
}

func (c *Coin) Draw(s render.Surface, cam *camera.Camera) {
	if c.Collected {
		return
	}
	s.DrawSprite(asset.CoinSprite, cam.Apply(c.Rect).Pos(), false, render.StyleCoin)
}

// Flag ends the level when touched.
type Flag struct {
	Base
}

func NewFlag(x, y, width, height float64) *Flag {
	return &Flag{Base{Rect: geom.NewRect(x, y, width, height)}}
}

func (f *Flag) CheckCollision(target geom.Rect) bool {
	return geom.Intersects(f.Rect, target)
}

func (f *Flag) Draw(s render.Surface, cam *camera.Camera) {
	s.DrawSprite(asset.FlagSprite, cam.Apply(f.Rect).Pos(), false, render.StyleFlag)
}

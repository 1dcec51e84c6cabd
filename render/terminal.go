package render

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"

	"samu/asset"
	"samu/geom"
)

// Terminal rasterizes screen-space geometry onto a tcell screen. The whole
// viewport is stretched over the terminal, so one cell covers CellWidth x
// CellHeight world units.
type Terminal struct {
	screen tcell.Screen
	viewW  float64
	viewH  float64

	cols, rows int
	cellW      float64
	cellH      float64
}

func NewTerminal(screen tcell.Screen, viewWidth, viewHeight float64) *Terminal {
	t := &Terminal{
		screen: screen,
		viewW:  viewWidth,
		viewH:  viewHeight,
	}
	t.Resize()
	return t
}

// Resize picks up the current terminal size and recomputes the cell scale.
func (t *Terminal) Resize() {
	t.cols, t.rows = t.screen.Size()
	if t.cols < 1 {
		t.cols = 1
	}
	if t.rows < 1 {
		t.rows = 1
	}
	t.cellW = t.viewW / float64(t.cols)
	t.cellH = t.viewH / float64(t.rows)
}

func (t *Terminal) Size() (cols, rows int) { return t.cols, t.rows }

func (t *Terminal) CellSize() (w, h float64) { return t.cellW, t.cellH }

func (t *Terminal) Clear() { t.screen.Clear() }

func (t *Terminal) Show() { t.screen.Show() }

// Cell maps a screen-space point to the cell containing it.
func (t *Terminal) Cell(p geom.Vec2) (col, row int) {
	return int(math.Floor(p.X / t.cellW)), int(math.Floor(p.Y / t.cellH))
}

func (t *Terminal) set(col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return
	}
	t.screen.SetContent(col, row, r, nil, style)
}

// FillRect covers every cell the rect touches. Non-empty rects always cover
// at least one cell so thin geometry stays visible.
func (t *Terminal) FillRect(r geom.Rect, fill rune, style tcell.Style) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	c0, c1 := span(r.Left(), r.Right(), t.cellW)
	r0, r1 := span(r.Top(), r.Bottom(), t.cellH)

	for row := max(r0, 0); row < min(r1, t.rows); row++ {
		for col := max(c0, 0); col < min(c1, t.cols); col++ {
			t.set(col, row, fill, style)
		}
	}
}

// span converts [lo, hi) in world units into a half-open cell range.
func span(lo, hi, cell float64) (int, int) {
	a := int(math.Floor(lo / cell))
	b := int(math.Ceil(hi / cell))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// DrawSprite places the sprite's top-left rune at the cell containing pos.
// Spaces are transparent. flip mirrors the sprite horizontally.
func (t *Terminal) DrawSprite(s *asset.Sprite, pos geom.Vec2, flip bool, style tcell.Style) {
	col, row := t.Cell(pos)
	w := s.Width()

	for dy, line := range s.Rows {
		dx := 0
		for _, r := range line {
			x := col + dx
			if flip {
				x = col + w - 1 - dx
				r = Mirror(r)
			}
			if r != ' ' {
				t.set(x, row+dy, r, style)
			}
			dx++
		}
	}
}

// DrawPolygon fills a simple polygon with a scanline pass: each cell row is
// sampled at the middle of its overlap with the polygon and every cell whose
// x range overlaps an inside span (even-odd rule) is filled.
func (t *Terminal) DrawPolygon(points []geom.Vec2, fill rune, style tcell.Style) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	if maxY <= minY {
		return
	}

	r0, r1 := span(minY, maxY, t.cellH)
	xs := make([]float64, 0, len(points))

	for row := max(r0, 0); row < min(r1, t.rows); row++ {
		top := max(float64(row)*t.cellH, minY)
		bottom := min(float64(row+1)*t.cellH, maxY)
		y := (top + bottom) / 2

		xs = xs[:0]
		for i := range points {
			a, b := points[i], points[(i+1)%len(points)]
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			if xs[i+1] <= xs[i] {
				continue
			}
			c0, c1 := span(xs[i], xs[i+1], t.cellW)
			for col := max(c0, 0); col < min(c1, t.cols); col++ {
				t.set(col, row, fill, style)
			}
		}
	}
}

// DrawText writes text in cell coordinates, clipped to the screen.
func (t *Terminal) DrawText(col, row int, text string, style tcell.Style) {
	for _, r := range text {
		t.set(col, row, r, style)
		col++
	}
}

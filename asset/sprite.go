// Package asset holds the sprite tables shared by every entity instance.
//
// The tables are built once at package init and never mutated afterwards;
// entities keep references to them rather than copies. All sprites are drawn
// facing right, the renderer mirrors them for left-facing entities.
package asset

import "unicode/utf8"

// Sprite is a rectangular grid of runes. Spaces are transparent.
type Sprite struct {
	Rows  []string
	width int
}

// NewSprite builds a sprite and records the width of its widest row.
func NewSprite(rows ...string) *Sprite {
	s := &Sprite{Rows: rows}
	for _, row := range rows {
		s.width = max(s.width, utf8.RuneCountInString(row))
	}
	return s
}

// Width is the sprite width in cells.
func (s *Sprite) Width() int { return s.width }

// Height is the sprite height in cells.
func (s *Sprite) Height() int { return len(s.Rows) }

// Frames is an ordered animation loop.
type Frames []*Sprite

func frames(sprites ...*Sprite) Frames { return Frames(sprites) }

// Package render defines the draw capability entities call each frame and
// a terminal implementation of it.
package render

import (
	"github.com/gdamore/tcell/v2"

	"samu/asset"
	"samu/geom"
)

// Surface receives screen-space geometry (world units already shifted by the
// camera) and rasterizes it.
type Surface interface {
	FillRect(r geom.Rect, fill rune, style tcell.Style)
	DrawSprite(s *asset.Sprite, pos geom.Vec2, flip bool, style tcell.Style)
	DrawPolygon(points []geom.Vec2, fill rune, style tcell.Style)
	DrawText(col, row int, text string, style tcell.Style)
}

// Palette shared by the entity draw functions.
var (
	StylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	StylePlayerHit = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	StylePlatform  = tcell.StyleDefault.Foreground(tcell.Color(51)) // cyan
	StyleGround    = tcell.StyleDefault.Foreground(tcell.Color(240))
	StyleLava      = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorDarkRed)
	StyleSpikes    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleEnemy     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleCoin      = tcell.StyleDefault.Foreground(tcell.ColorGold)
	StyleFlag      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleHUD       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleBanner    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

var mirrored = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'/': '\\', '\\': '/',
}

// Mirror returns r as seen in a vertical mirror.
func Mirror(r rune) rune {
	if m, ok := mirrored[r]; ok {
		return m
	}
	return r
}

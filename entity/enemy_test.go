package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samu/anim"
	"samu/asset"
	"samu/camera"
	"samu/geom"
)

func TestEnemyFlipsWhenFarEdgeCrossesMax(t *testing.T) {
	e := NewEnemy(geom.NewRect(795, 500, 50, 50), Horizontal, 3, 400, 800, anim.DefaultStep, anim.DefaultDelay)

	e.Update()
	assert.Equal(t, 798.0, e.Rect.X)
	assert.Equal(t, -1, e.Direction)

	// Still past the bound but already heading back: no second flip.
	e.Update()
	assert.Equal(t, 795.0, e.Rect.X)
	assert.Equal(t, -1, e.Direction)
}

func TestEnemyNoFlipInsideBounds(t *testing.T) {
	e := NewEnemy(geom.NewRect(400, 500, 50, 50), Horizontal, 3, 400, 800, anim.DefaultStep, anim.DefaultDelay)

	e.Update()
	assert.Equal(t, 403.0, e.Rect.X)
	assert.Equal(t, 1, e.Direction)
}

func TestEnemyFlipsAtMin(t *testing.T) {
	e := NewEnemy(geom.NewRect(401, 500, 50, 50), Horizontal, 3, 400, 800, anim.DefaultStep, anim.DefaultDelay)
	e.Direction = -1

	e.Update()
	assert.Equal(t, 398.0, e.Rect.X)
	assert.Equal(t, 1, e.Direction)
}

func TestEnemyVerticalPatrol(t *testing.T) {
	e := NewEnemy(geom.NewRect(1000, 450, 50, 50), Vertical, 2, 400, 500, anim.DefaultStep, anim.DefaultDelay)

	e.Update()
	assert.Equal(t, 452.0, e.Rect.Y)
	assert.Equal(t, 1000.0, e.Rect.X)
	assert.Equal(t, -1, e.Direction)
}

func TestEnemyPatrolContainment(t *testing.T) {
	tests := []struct {
		name  string
		enemy *Enemy
	}{
		{"horizontal", NewEnemy(geom.NewRect(400, 500, 50, 50), Horizontal, 3, 400, 800, anim.DefaultStep, anim.DefaultDelay)},
		{"vertical", NewEnemy(geom.NewRect(1000, 450, 50, 50), Vertical, 2, 400, 500, anim.DefaultStep, anim.DefaultDelay)},
		{"fast", NewEnemy(geom.NewRect(100, 0, 20, 20), Horizontal, 7, 90, 200, anim.DefaultStep, anim.DefaultDelay)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.enemy
			flips := 0
			for frame := 0; frame < 2000; frame++ {
				before := e.Direction
				e.Update()

				lo, hi := e.edges()
				assert.GreaterOrEqual(t, lo, e.Min-e.Speed)
				assert.LessOrEqual(t, hi, e.Max+e.Speed)

				crossed := lo < e.Min || hi > e.Max
				if e.Direction != before {
					flips++
					assert.True(t, crossed, "flip without crossing at frame %d", frame)
				}
			}
			assert.Greater(t, flips, 2)
		})
	}
}

func TestEnemyAnimationLoops(t *testing.T) {
	e := NewEnemy(geom.NewRect(400, 500, 50, 50), Horizontal, 3, 400, 800, anim.DefaultStep, anim.DefaultDelay)
	n := len(asset.EnemyWalk) * anim.New(anim.DefaultStep, anim.DefaultDelay).UpdatesPerFrame()

	for i := 0; i < n; i++ {
		e.Update()
	}
	assert.Equal(t, 0, e.Anim.Index)
}

func TestEnemyDrawMirrorsWhenWalkingLeft(t *testing.T) {
	e := NewEnemy(geom.NewRect(400, 500, 50, 50), Horizontal, 3, 400, 800, anim.DefaultStep, anim.DefaultDelay)
	cam := camera.New(800, 600, 2000, 600)

	rec := &recorder{}
	e.Draw(rec, cam)
	e.Direction = -1
	e.Draw(rec, cam)

	require.Len(t, rec.flips, 2)
	assert.False(t, rec.flips[0])
	assert.True(t, rec.flips[1])
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, a)

	a, err = ParseAxis("")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, a)

	_, err = ParseAxis("diagonal")
	assert.Error(t, err)
	assert.Equal(t, "vertical", Vertical.String())
}

func TestEnemyAnimationUsesGivenTiming(t *testing.T) {
	e := NewEnemy(geom.NewRect(400, 500, 50, 50), Horizontal, 3, 400, 800, 1, 1)

	e.Update()
	assert.Equal(t, 1, e.Anim.Index)
	e.Update()
	assert.Equal(t, 0, e.Anim.Index)
}

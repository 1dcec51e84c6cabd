package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestKeyboard() (*Keyboard, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	k := NewKeyboard(150 * time.Millisecond)
	k.now = clock.now
	return k, clock
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow left", key(tcell.KeyLeft), ActionLeft},
		{"arrow right", key(tcell.KeyRight), ActionRight},
		{"arrow up", key(tcell.KeyUp), ActionJump},
		{"space", char(' '), ActionJump},
		{"a", char('a'), ActionLeft},
		{"d", char('d'), ActionRight},
		{"escape", key(tcell.KeyEscape), ActionQuit},
		{"q", char('q'), ActionQuit},
		{"r", char('r'), ActionRestart},
		{"unbound", char('z'), ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActionFor(tt.ev))
		})
	}
}

func TestKeyHeldUntilTimeout(t *testing.T) {
	k, clock := newTestKeyboard()

	k.HandleKey(key(tcell.KeyRight))
	assert.Equal(t, State{Right: true}, k.Snapshot())

	clock.advance(100 * time.Millisecond)
	assert.True(t, k.Snapshot().Right)

	clock.advance(60 * time.Millisecond)
	assert.Equal(t, State{}, k.Snapshot())
}

func TestRepeatExtendsHold(t *testing.T) {
	k, clock := newTestKeyboard()

	for i := 0; i < 5; i++ {
		k.HandleKey(char(' '))
		clock.advance(100 * time.Millisecond)
		assert.True(t, k.Snapshot().Jump)
	}
}

func TestOppositeDirectionCancels(t *testing.T) {
	k, _ := newTestKeyboard()

	k.HandleKey(key(tcell.KeyLeft))
	k.HandleKey(key(tcell.KeyRight))
	assert.Equal(t, State{Right: true}, k.Snapshot())

	k.HandleKey(key(tcell.KeyLeft))
	assert.Equal(t, State{Left: true}, k.Snapshot())
}

func TestJumpWhileMoving(t *testing.T) {
	k, _ := newTestKeyboard()

	k.HandleKey(key(tcell.KeyLeft))
	k.HandleKey(key(tcell.KeyUp))
	assert.Equal(t, State{Left: true, Jump: true}, k.Snapshot())
}

func TestQuitAndReset(t *testing.T) {
	k, _ := newTestKeyboard()
	assert.False(t, k.QuitRequested())

	k.HandleKey(key(tcell.KeyRight))
	assert.Equal(t, ActionQuit, k.HandleKey(key(tcell.KeyEscape)))
	assert.True(t, k.QuitRequested())

	k.Reset()
	assert.Equal(t, State{}, k.Snapshot())
}

func TestRestartDoesNotHold(t *testing.T) {
	k, _ := newTestKeyboard()

	assert.Equal(t, ActionRestart, k.HandleKey(char('r')))
	assert.Equal(t, State{}, k.Snapshot())
	assert.False(t, k.QuitRequested())
}

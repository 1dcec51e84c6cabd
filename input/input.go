// Package input turns terminal key events into the per-frame control state
// the player reads.
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// State is what the player sees of the controls for one frame.
type State struct {
	Left  bool
	Right bool
	Jump  bool
}

// Action is a logical control, independent of the key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionQuit
	ActionRestart
)

// DefaultKeyTimeout is how long a key counts as held after its last press.
const DefaultKeyTimeout = 150 * time.Millisecond

// Keyboard emulates held keys on a terminal. Terminals only report presses
// (and auto-repeats), never releases, so an action stays held until its last
// press is older than the timeout.
type Keyboard struct {
	mu      sync.Mutex
	timeout time.Duration
	pressed map[Action]time.Time
	quit    bool
	now     func() time.Time
}

func NewKeyboard(timeout time.Duration) *Keyboard {
	if timeout <= 0 {
		timeout = DefaultKeyTimeout
	}
	return &Keyboard{
		timeout: timeout,
		pressed: make(map[Action]time.Time),
		now:     time.Now,
	}
}

// ActionFor maps a key event to its action.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionJump
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			return ActionLeft
		case 'd', 'D', 'l':
			return ActionRight
		case ' ', 'w', 'W', 'k':
			return ActionJump
		case 'q', 'Q':
			return ActionQuit
		case 'r', 'R':
			return ActionRestart
		}
	}
	return ActionNone
}

// HandleKey records a key event. It returns the action the key mapped to.
func (k *Keyboard) HandleKey(ev *tcell.EventKey) Action {
	action := ActionFor(ev)

	k.mu.Lock()
	defer k.mu.Unlock()

	switch action {
	case ActionNone, ActionRestart:
	case ActionQuit:
		k.quit = true
	case ActionLeft:
		// Reversing cancels the opposite direction immediately
		delete(k.pressed, ActionRight)
		k.pressed[action] = k.now()
	case ActionRight:
		delete(k.pressed, ActionLeft)
		k.pressed[action] = k.now()
	default:
		k.pressed[action] = k.now()
	}
	return action
}

func (k *Keyboard) held(action Action, now time.Time) bool {
	last, ok := k.pressed[action]
	return ok && now.Sub(last) < k.timeout
}

// Snapshot returns the control state as of now.
func (k *Keyboard) Snapshot() State {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	return State{
		Left:  k.held(ActionLeft, now),
		Right: k.held(ActionRight, now),
		Jump:  k.held(ActionJump, now),
	}
}

// QuitRequested reports whether a quit key has been pressed.
func (k *Keyboard) QuitRequested() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.quit
}

// Reset forgets every held key.
func (k *Keyboard) Reset() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed = make(map[Action]time.Time)
}

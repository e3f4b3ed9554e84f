// Package input translates terminal key events into game actions.
// Terminals report key presses but not releases, so held movement keys
// are modeled with autorepeat-refreshed hold deadlines.
package input

import "github.com/gdamore/tcell/v2"

// Action is a semantic game input
type Action uint8

const (
	ActionNone Action = iota
	ActionTurnLeft
	ActionTurnRight
	ActionThrust
	ActionFirePrimary
	ActionFireSecondary
	ActionPause
	ActionTelemetry
	ActionRestart
	ActionQuit
)

// held reports whether the action is level-sampled rather than edge-triggered
func (a Action) held() bool {
	switch a {
	case ActionTurnLeft, ActionTurnRight, ActionThrust:
		return true
	}
	return false
}

// KeyTable maps keys to actions. Special keys (arrows, escape) and rune
// keys are kept in separate maps because tcell reports them differently.
type KeyTable struct {
	SpecialKeys map[tcell.Key]Action
	Runes       map[rune]Action
}

// DefaultKeyTable binds arrows plus wasd steering, space to fire
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionTurnLeft,
			tcell.KeyRight:  ActionTurnRight,
			tcell.KeyUp:     ActionThrust,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionTurnLeft,
			'd': ActionTurnRight,
			'w': ActionThrust,
			'h': ActionTurnLeft,
			'l': ActionTurnRight,
			'k': ActionThrust,
			' ': ActionFirePrimary,
			'b': ActionFireSecondary,
			'p': ActionPause,
			't': ActionTelemetry,
			'r': ActionRestart,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a tcell key event to an action
func (t *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}

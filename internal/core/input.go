package core

import "time"

// AxisPaddle is the analog axis that drives the paddle.
const AxisPaddle = "paddle"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLaunch         // Space - release the ball from the paddle
	ActionRestart        // R key - restart after the stage ends
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLaunch:
		return "Launch"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Axes holds analog axis values in [-1, 1]. A missing axis reads as 0.
	Axes map[string]float64

	// Elapsed is the wall time covered by this frame.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Axes:    make(map[string]float64),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetAxis records an axis value, clamped to [-1, 1].
func (f *InputFrame) SetAxis(name string, value float64) {
	if f.Axes == nil {
		f.Axes = make(map[string]float64)
	}
	f.Axes[name] = ClampF(value, -1, 1)
}

// Axis returns the value of the named axis, or 0 when it is unbound.
func (f InputFrame) Axis(name string) float64 {
	if f.Axes == nil {
		return 0
	}
	return f.Axes[name]
}

// Seconds returns Elapsed as fractional seconds.
func (f InputFrame) Seconds() float64 {
	return f.Elapsed.Seconds()
}

// Clear resets all actions and axes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Axes {
		delete(f.Axes, k)
	}
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Axes {
		clone.Axes[k] = v
	}
	clone.Elapsed = f.Elapsed
	return clone
}

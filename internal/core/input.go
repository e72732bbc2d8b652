package core

// Key is a decoded game button, abstracted from physical key presses.
// The platform maps terminal keys onto these; anything else is KeyNone.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // A, Left arrow - move left
	KeyRight     // D, Right arrow - move right
	KeyReset     // R - start over after game over
	KeyPause     // P - pause/unpause
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyReset:
		return "Reset"
	case KeyPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Transition is the edge of a button event.
type Transition int

const (
	Press Transition = iota
	Release
)

// String returns a human-readable name for the transition.
func (t Transition) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		return "Unknown"
	}
}

// ButtonEvent is one press or release delivered by the host.
type ButtonEvent struct {
	Key        Key
	Transition Transition
}

// Pressed builds a press event for k.
func Pressed(k Key) ButtonEvent {
	return ButtonEvent{Key: k, Transition: Press}
}

// Released builds a release event for k.
func Released(k Key) ButtonEvent {
	return ButtonEvent{Key: k, Transition: Release}
}

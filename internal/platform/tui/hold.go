package tui

import (
	"time"

	"github.com/vovakirdan/falling/internal/core"
)

// holdKeys is the fixed order Expire reports releases in.
var holdKeys = [...]core.Key{core.KeyLeft, core.KeyRight}

// holdTracker fakes key releases for terminals, which only report presses
// and auto-repeats. A movement key counts as held until it stops repeating
// for releaseAfter, or until the opposite key is pressed.
type holdTracker struct {
	releaseAfter time.Duration
	held         map[core.Key]time.Time // Last press or repeat
}

func newHoldTracker(releaseAfter time.Duration) *holdTracker {
	return &holdTracker{
		releaseAfter: releaseAfter,
		held:         make(map[core.Key]time.Time, len(holdKeys)),
	}
}

// Press records a press or repeat of k at now and returns the events to
// forward: a release of the opposite key if it was held, then a press of k
// unless k was already held.
func (h *holdTracker) Press(k core.Key, now time.Time) []core.ButtonEvent {
	var events []core.ButtonEvent

	if other := opposite(k); other != core.KeyNone {
		if _, ok := h.held[other]; ok {
			delete(h.held, other)
			events = append(events, core.Released(other))
		}
	}

	if _, ok := h.held[k]; !ok {
		events = append(events, core.Pressed(k))
	}
	h.held[k] = now
	return events
}

// Expire releases every key that has not repeated within releaseAfter.
// A zero releaseAfter releases keys on the first call after the press.
func (h *holdTracker) Expire(now time.Time) []core.ButtonEvent {
	var events []core.ButtonEvent
	for _, k := range holdKeys {
		last, ok := h.held[k]
		if !ok {
			continue
		}
		if now.Sub(last) >= h.releaseAfter {
			delete(h.held, k)
			events = append(events, core.Released(k))
		}
	}
	return events
}

// Held reports whether k is currently considered held.
func (h *holdTracker) Held(k core.Key) bool {
	_, ok := h.held[k]
	return ok
}

// Clear forgets all held keys without reporting releases.
func (h *holdTracker) Clear() {
	clear(h.held)
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	default:
		return core.KeyNone
	}
}

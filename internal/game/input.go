package game

import (
	"time"
)

// ButtonState is one edge-triggered input delta: a single physical
// control changing level during a poll. Immutable once created.
type ButtonState struct {
	ID       string  // Device-scoped identifier, e.g. "Key.f", "MIDI.38"
	Pressed  bool    // true for a press edge, false for a release edge
	Velocity float64 // In [0, 1]; keyboards report 1
	Time     time.Duration
}

// LaneHitEvent is a pressed ButtonState resolved through the binding
// table to a logical lane. Produced by the router, consumed
// synchronously by the judgement engine, never stored.
type LaneHitEvent struct {
	Lane   int
	Button ButtonState
	Time   time.Duration
}

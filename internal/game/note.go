package game

import (
	"time"
)

type Note struct {
	Lane int
	Time time.Duration // The time the note should be hit
	ID   string

	// This is state, written exactly once by the judgement engine
	Judged  bool
	Timeout bool          // Judged by the miss sweep, not by a hit
	HitTime time.Duration // When the note was hit
	Delta   time.Duration // Signed timing error, positive is late
	Tier    Tier
}

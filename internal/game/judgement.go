package game

import (
	"time"
)

// JudgementEvent is the outcome of matching one note: either a hit with
// its signed timing error, or a timeout miss from the sweep.
type JudgementEvent struct {
	Note    *Note
	Lane    int
	Delta   time.Duration // Positive is late, negative is early
	Tier    Tier
	Timeout bool
}

package game

import "time"

// Tier is a judgement accuracy bucket, best first.
type Tier int

const (
	TierJust Tier = iota
	TierGreat
	TierGood
	TierPoor
	TierMiss
)

var tierNames = [...]string{"Just", "Great", "Good", "Poor", "Miss"}

func (t Tier) String() string {
	if t < TierJust || t > TierMiss {
		return "Unknown"
	}
	return tierNames[t]
}

// Window is one timing band of the judgement table. Tables are ordered
// tightest first, and the last entry (the miss window) is the outer
// bound for matching a hit to a note at all.
type Window struct {
	Tier  Tier
	Width time.Duration
}

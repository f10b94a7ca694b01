package input

import (
	"time"

	"git.lost.host/meutraa/eotd/internal/game"
)

// Source is one polled input device. Update is called once per frame
// with the current song time and returns only the state changes since
// the previous call; a key held across frames yields a single press
// delta. Implementations must not block in Update.
type Source interface {
	Name() string

	// Initialize prepares device access. Called once; an error leaves
	// the source unavailable but is not fatal to the session.
	Initialize() error
	Available() bool

	Update(now time.Duration) []game.ButtonState

	// PressedButtons is the instantaneous down-set, for diagnostics
	// and lane highlighting, independent of edge detection.
	PressedButtons() []string

	Close() error
}

package input

import (
	"fmt"
	"time"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/eotd/internal/game"
)

// KeyboardSource drains the terminal key event channel each frame.
// Terminals deliver no key-up events, so every press is given a hold
// window and a release delta is synthesized once it expires without a
// repeat arriving.
type KeyboardSource struct {
	events    <-chan keyboard.KeyEvent
	available bool
	hold      time.Duration

	det         detector
	deadlines   map[string]time.Duration
	order       []string
	interrupted bool
}

func NewKeyboard(hold time.Duration) *KeyboardSource {
	return &KeyboardSource{
		hold:      hold,
		det:       newDetector(),
		deadlines: map[string]time.Duration{},
	}
}

func (s *KeyboardSource) Name() string { return "keyboard" }

func (s *KeyboardSource) Initialize() error {
	if s.available {
		return nil
	}
	ch, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	s.events = ch
	s.available = true
	return nil
}

func (s *KeyboardSource) Available() bool { return s.available }

// Interrupted reports whether escape was seen; escape is a session
// control key, never a lane button.
func (s *KeyboardSource) Interrupted() bool { return s.interrupted }

func buttonID(key keyboard.KeyEvent) string {
	if key.Rune != 0 {
		return "Key." + string(key.Rune)
	}
	switch key.Key {
	case keyboard.KeySpace:
		return "Key.space"
	case keyboard.KeyEnter:
		return "Key.enter"
	case keyboard.KeyTab:
		return "Key.tab"
	}
	return ""
}

func (s *KeyboardSource) Update(now time.Duration) []game.ButtonState {
	if !s.available {
		return nil
	}

	var deltas []game.ButtonState

	// Expired holds release first, in press order.
	remaining := s.order[:0]
	for _, id := range s.order {
		if !s.det.held(id) {
			continue
		}
		if now < s.deadlines[id] {
			remaining = append(remaining, id)
			continue
		}
		delete(s.deadlines, id)
		b := game.ButtonState{ID: id, Pressed: false, Time: now}
		if s.det.sample(b) {
			deltas = append(deltas, b)
		}
	}
	s.order = remaining

	for i := len(s.events); i > 0; i-- {
		key := <-s.events
		if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC {
			s.interrupted = true
			continue
		}
		id := buttonID(key)
		if id == "" {
			continue
		}
		held := s.det.held(id)
		s.deadlines[id] = now + s.hold
		if held {
			// Autorepeat of a key already down, not an edge.
			continue
		}
		b := game.ButtonState{ID: id, Pressed: true, Velocity: 1, Time: now}
		if s.det.sample(b) {
			deltas = append(deltas, b)
			s.order = append(s.order, id)
		}
	}

	return deltas
}

func (s *KeyboardSource) PressedButtons() []string {
	return s.det.pressed()
}

func (s *KeyboardSource) Close() error {
	if !s.available {
		return nil
	}
	s.available = false
	return keyboard.Close()
}

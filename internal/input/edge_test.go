package input

import (
	"testing"
	"time"

	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/eotd/internal/game"
)

func TestDetectorHeldButtonIsOneEdge(t *testing.T) {
	d := newDetector()
	press := game.ButtonState{ID: "MIDI.38", Pressed: true, Velocity: 0.8}

	if !d.sample(press) {
		t.Log("first press was not an edge")
		t.Fail()
	}
	for i := 0; i < 5; i++ {
		if d.sample(press) {
			t.Log("repeated press reported as an edge")
			t.Fail()
		}
	}
	if !d.sample(game.ButtonState{ID: "MIDI.38", Pressed: false}) {
		t.Log("release was not an edge")
		t.Fail()
	}
	if d.sample(game.ButtonState{ID: "MIDI.38", Pressed: false}) {
		t.Log("repeated release reported as an edge")
		t.Fail()
	}
}

func TestDetectorPressedSet(t *testing.T) {
	d := newDetector()
	d.sample(game.ButtonState{ID: "Key.f", Pressed: true})
	d.sample(game.ButtonState{ID: "Key.a", Pressed: true})
	d.sample(game.ButtonState{ID: "Key.f", Pressed: false})

	pressed := d.pressed()
	if len(pressed) != 1 || pressed[0] != "Key.a" {
		t.Log("pressed set", pressed)
		t.Fail()
	}
}

func TestKeyboardSynthesizedRelease(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 8)
	s := NewKeyboard(40 * time.Millisecond)
	s.events = events
	s.available = true

	events <- keyboard.KeyEvent{Rune: 'f'}
	deltas := s.Update(1000 * time.Millisecond)
	if len(deltas) != 1 || !deltas[0].Pressed || deltas[0].ID != "Key.f" {
		t.Log("deltas", deltas)
		t.Fail()
	}

	// Within the hold window: key still down, no deltas.
	deltas = s.Update(1020 * time.Millisecond)
	if len(deltas) != 0 {
		t.Log("unexpected deltas inside hold window", deltas)
		t.Fail()
	}
	if pressed := s.PressedButtons(); len(pressed) != 1 || pressed[0] != "Key.f" {
		t.Log("pressed set inside hold window", pressed)
		t.Fail()
	}

	// Autorepeat extends the hold.
	events <- keyboard.KeyEvent{Rune: 'f'}
	deltas = s.Update(1030 * time.Millisecond)
	if len(deltas) != 0 {
		t.Log("autorepeat produced deltas", deltas)
		t.Fail()
	}
	deltas = s.Update(1060 * time.Millisecond)
	if len(deltas) != 0 {
		t.Log("release before extended deadline", deltas)
		t.Fail()
	}

	deltas = s.Update(1080 * time.Millisecond)
	if len(deltas) != 1 || deltas[0].Pressed || deltas[0].ID != "Key.f" {
		t.Log("expected synthesized release, got", deltas)
		t.Fail()
	}
	if pressed := s.PressedButtons(); len(pressed) != 0 {
		t.Log("pressed set after release", pressed)
		t.Fail()
	}
}

func TestKeyboardEscapeInterrupts(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 8)
	s := NewKeyboard(40 * time.Millisecond)
	s.events = events
	s.available = true

	events <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	deltas := s.Update(0)
	if len(deltas) != 0 {
		t.Log("escape produced deltas", deltas)
		t.Fail()
	}
	if !s.Interrupted() {
		t.Log("escape did not interrupt")
		t.Fail()
	}
}

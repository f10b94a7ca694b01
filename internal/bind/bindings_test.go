package bind

import (
	"testing"

	"git.lost.host/meutraa/eotd/internal/game"
)

var roundTripTests = map[string]int{
	"Key.z":   game.LaneBass,
	"MIDI.57": game.LaneRightCymbal,
	"Pad.3":   game.LaneSnare,
}

func TestBindRoundTrip(t *testing.T) {
	b := New(game.LaneCount)
	for id, lane := range roundTripTests {
		if err := b.Bind(id, lane); nil != err {
			t.Log("bind failed", id, err)
			t.Fail()
			continue
		}
		got, ok := b.Lane(id)
		if !ok || got != lane {
			t.Log("id      ", id)
			t.Log("got     ", got, ok)
			t.Log("expected", lane)
			t.Fail()
		}
	}
}

func TestBindOutOfRange(t *testing.T) {
	b := New(game.LaneCount)
	before := b.Len()
	for _, lane := range []int{-1, game.LaneCount, game.LaneCount + 7} {
		if err := b.Bind("Key.q", lane); err != ErrLaneOutOfRange {
			t.Log("lane", lane, "expected ErrLaneOutOfRange, got", err)
			t.Fail()
		}
	}
	if _, ok := b.Lane("Key.q"); ok {
		t.Log("rejected bind mutated the table")
		t.Fail()
	}
	if b.Len() != before {
		t.Log("table size changed on rejected bind")
		t.Fail()
	}
}

func TestRebindOverwrites(t *testing.T) {
	b := New(game.LaneCount)
	if err := b.Bind("Key.f", game.LaneHiHat); nil != err {
		t.Fatal(err)
	}
	lane, ok := b.Lane("Key.f")
	if !ok || lane != game.LaneHiHat {
		t.Log("expected last-write-wins, got", lane, ok)
		t.Fail()
	}
}

func TestUnbind(t *testing.T) {
	b := New(game.LaneCount)
	b.Unbind("Key.f")
	if _, ok := b.Lane("Key.f"); ok {
		t.Log("Key.f still bound after Unbind")
		t.Fail()
	}
}

func TestUnbindLaneRemovesAll(t *testing.T) {
	b := New(game.LaneCount)
	// Both the key and the MIDI pad point at the snare by default.
	b.UnbindLane(game.LaneSnare)
	found := false
	b.Each(func(id string, lane int) {
		if lane == game.LaneSnare {
			found = true
		}
	})
	if found {
		t.Log("a binding still points at the unbound lane")
		t.Fail()
	}
}

func TestChangeNotificationPerCall(t *testing.T) {
	b := New(game.LaneCount)
	calls := 0
	b.Notify(func() { calls++ })

	b.Bind("Key.z", game.LaneBass)
	if calls != 1 {
		t.Log("Bind notifications:", calls)
		t.Fail()
	}

	calls = 0
	b.UnbindLane(game.LaneSnare) // removes two default bindings
	if calls != 1 {
		t.Log("UnbindLane notifications:", calls)
		t.Fail()
	}

	calls = 0
	b.Clear()
	if calls != 1 {
		t.Log("Clear notifications:", calls)
		t.Fail()
	}
	if b.Len() != 0 {
		t.Log("table not empty after Clear")
		t.Fail()
	}

	calls = 0
	b.UnbindLane(game.LaneSnare) // nothing to remove, no mutation
	if calls != 0 {
		t.Log("no-op UnbindLane notified:", calls)
		t.Fail()
	}

	calls = 0
	b.LoadDefaults()
	if calls != 1 {
		t.Log("LoadDefaults notifications:", calls)
		t.Fail()
	}
	if b.Len() == 0 {
		t.Log("defaults not restored")
		t.Fail()
	}
}

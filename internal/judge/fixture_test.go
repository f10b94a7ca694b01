package judge

import (
	"testing"
	"time"

	"git.lost.host/meutraa/eotd/internal/game"
	"git.lost.host/meutraa/eotd/internal/testdata"
)

func TestFixtureChartTimesOutCompletely(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal("unable to parse fixture chart", err)
	}

	events := []game.JudgementEvent{}
	e := NewEngine(chart, testWindows(), func(ev game.JudgementEvent) {
		events = append(events, ev)
	})

	last := chart.Notes[len(chart.Notes)-1].Time
	for now := time.Duration(0); now <= last+time.Second; now += 16 * time.Millisecond {
		e.Sweep(now)
	}

	if len(events) != chart.NoteCount {
		t.Log("events", len(events), "notes", chart.NoteCount)
		t.Fail()
	}
	if e.Remaining() != 0 {
		t.Log("remaining", e.Remaining())
		t.Fail()
	}
	for _, ev := range events {
		if ev.Tier != game.TierMiss || !ev.Timeout {
			t.Log("unexpected event", ev)
			t.Fail()
		}
	}
}

func TestFixtureChartChordHitsBothLanes(t *testing.T) {
	chart, err := testdata.GetChart()
	if nil != err {
		t.Fatal("unable to parse fixture chart", err)
	}

	// The fixture has two notes at 2500ms on different lanes; two hits
	// in the same tick judge independently.
	events := []game.JudgementEvent{}
	e := NewEngine(chart, testWindows(), func(ev game.JudgementEvent) {
		events = append(events, ev)
	})

	e.HandleHit(hit(game.LaneBass, 2500*time.Millisecond))
	e.HandleHit(hit(game.LaneHiHat, 2500*time.Millisecond))

	if len(events) != 2 {
		t.Fatal("event count", len(events))
	}
	for _, ev := range events {
		if ev.Tier != game.TierJust {
			t.Log("chord hit judged", ev.Tier)
			t.Fail()
		}
	}
}

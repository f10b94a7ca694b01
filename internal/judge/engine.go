package judge

import (
	"time"

	"git.lost.host/meutraa/eotd/internal/game"
)

// Engine matches lane hits against each lane's pending notes and turns
// every note into exactly one JudgementEvent: by the nearest-note hit
// path, or by the per-tick miss sweep once a note's outer window has
// passed unhit.
type Engine struct {
	windows []game.Window
	outer   time.Duration // Width of the widest (miss) window
	lanes   [][]*game.Note
	emit    func(game.JudgementEvent)
	pending int
}

// NewEngine indexes the chart's notes into per-lane pending queues.
// windows must be ordered tightest first with the miss window last;
// chart notes are assumed validated and time-ordered by the parser.
func NewEngine(chart *game.Chart, windows []game.Window, emit func(game.JudgementEvent)) *Engine {
	e := &Engine{
		windows: windows,
		outer:   windows[len(windows)-1].Width,
		lanes:   make([][]*game.Note, chart.Lanes),
		emit:    emit,
		pending: len(chart.Notes),
	}
	for _, note := range chart.Notes {
		e.lanes[note.Lane] = append(e.lanes[note.Lane], note)
	}
	return e
}

// Remaining is the count of notes still pending judgement.
func (e *Engine) Remaining() int {
	return e.pending
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// HandleHit finds the pending note in the hit's lane nearest in time,
// ties broken toward the earlier note. A hit with no pending note
// inside the outer window is discarded: it consumes nothing and emits
// nothing, so stray presses never spawn misses.
func (e *Engine) HandleHit(hit game.LaneHitEvent) {
	var closest *game.Note
	best := time.Duration(1<<63 - 1)
	delta := best

	for _, note := range e.lanes[hit.Lane] {
		if note.Judged {
			continue
		}
		dd := hit.Time - note.Time
		d := abs(dd)
		if d < best {
			delta = dd
			best = d
			closest = note
		} else if nil != closest {
			// Queue is time-ordered, so distances only grow from here.
			break
		}
	}

	if nil == closest || best > e.outer {
		return
	}

	closest.Judged = true
	closest.HitTime = hit.Time
	closest.Delta = delta
	closest.Tier = e.classify(best)
	e.pending--
	e.emit(game.JudgementEvent{
		Note:  closest,
		Lane:  hit.Lane,
		Delta: delta,
		Tier:  closest.Tier,
	})
}

func (e *Engine) classify(d time.Duration) game.Tier {
	for _, w := range e.windows {
		if d <= w.Width {
			return w.Tier
		}
	}
	return game.TierMiss
}

// Sweep emits a timeout miss for every pending note whose outer window
// elapsed before now. Run once per tick, outside the hit path.
func (e *Engine) Sweep(now time.Duration) {
	for lane, queue := range e.lanes {
		for _, note := range queue {
			if note.Judged {
				continue
			}
			if now <= note.Time+e.outer {
				break
			}
			note.Judged = true
			note.Timeout = true
			note.Tier = game.TierMiss
			note.Delta = now - note.Time
			e.pending--
			e.emit(game.JudgementEvent{
				Note:    note,
				Lane:    lane,
				Delta:   note.Delta,
				Tier:    game.TierMiss,
				Timeout: true,
			})
		}
		// Drop the judged prefix so neither path rescans it.
		for len(queue) > 0 && queue[0].Judged {
			queue = queue[1:]
		}
		e.lanes[lane] = queue
	}
}

package bind

import (
	"errors"

	"git.lost.host/meutraa/eotd/internal/game"
)

var ErrLaneOutOfRange = errors.New("lane index out of range")

// Bindings maps physical button identifiers to logical lanes. At most
// one lane per button id; any number of ids may share a lane. Not safe
// for concurrent use; everything runs on the simulation tick.
type Bindings struct {
	lanes    int
	table    map[string]int
	onChange []func()
}

// The built-in layout: home row plus space for the bass drum, and the
// general MIDI percussion map.
var defaultLayout = map[string]int{
	"Key.a":     game.LaneLeftCymbal,
	"Key.s":     game.LaneHiHat,
	"Key.d":     game.LaneLeftPedal,
	"Key.f":     game.LaneSnare,
	"Key.g":     game.LaneHighTom,
	"Key.space": game.LaneBass,
	"Key.j":     game.LaneLowTom,
	"Key.k":     game.LaneFloorTom,
	"Key.l":     game.LaneRightCymbal,

	"MIDI.36": game.LaneBass,
	"MIDI.38": game.LaneSnare,
	"MIDI.42": game.LaneHiHat,
	"MIDI.44": game.LaneLeftPedal,
	"MIDI.43": game.LaneFloorTom,
	"MIDI.45": game.LaneLowTom,
	"MIDI.48": game.LaneHighTom,
	"MIDI.49": game.LaneLeftCymbal,
	"MIDI.51": game.LaneRightCymbal,
}

func New(lanes int) *Bindings {
	b := &Bindings{
		lanes: lanes,
		table: make(map[string]int, len(defaultLayout)),
	}
	b.loadDefaults()
	return b
}

// Notify registers fn to run once after every mutating call that
// changed the table. Used by the owning manager for auto-persistence.
func (b *Bindings) Notify(fn func()) {
	b.onChange = append(b.onChange, fn)
}

func (b *Bindings) notify() {
	for _, fn := range b.onChange {
		fn()
	}
}

func (b *Bindings) Lane(id string) (int, bool) {
	lane, ok := b.table[id]
	return lane, ok
}

func (b *Bindings) Len() int {
	return len(b.table)
}

func (b *Bindings) Each(fn func(id string, lane int)) {
	for id, lane := range b.table {
		fn(id, lane)
	}
}

// Bind points id at lane, overwriting any existing binding for id.
func (b *Bindings) Bind(id string, lane int) error {
	if lane < 0 || lane >= b.lanes {
		return ErrLaneOutOfRange
	}
	b.table[id] = lane
	b.notify()
	return nil
}

func (b *Bindings) Unbind(id string) {
	if _, ok := b.table[id]; !ok {
		return
	}
	delete(b.table, id)
	b.notify()
}

// UnbindLane removes every binding pointing at lane, with a single
// change notification for the whole batch.
func (b *Bindings) UnbindLane(lane int) {
	removed := false
	for id, l := range b.table {
		if l == lane {
			delete(b.table, id)
			removed = true
		}
	}
	if removed {
		b.notify()
	}
}

func (b *Bindings) Clear() {
	for id := range b.table {
		delete(b.table, id)
	}
	b.notify()
}

// LoadDefaults restores the built-in layout, discarding all current
// bindings. Default entries for lanes outside this table's range are
// skipped.
func (b *Bindings) LoadDefaults() {
	b.loadDefaults()
	b.notify()
}

func (b *Bindings) loadDefaults() {
	for id := range b.table {
		delete(b.table, id)
	}
	for id, lane := range defaultLayout {
		if lane >= b.lanes {
			continue
		}
		b.table[id] = lane
	}
}

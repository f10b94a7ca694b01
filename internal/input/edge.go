package input

import (
	"sort"

	"git.lost.host/meutraa/eotd/internal/game"
)

// detector turns raw level reports into edge deltas by comparing each
// report against the previous frame's down-set. Repeated reports of an
// unchanged level (key autorepeat, duplicate NoteOn) are not edges.
type detector struct {
	down map[string]game.ButtonState
}

func newDetector() detector {
	return detector{down: map[string]game.ButtonState{}}
}

// sample applies one raw report and reports whether it was an edge.
func (d *detector) sample(b game.ButtonState) bool {
	_, held := d.down[b.ID]
	if b.Pressed == held {
		return false
	}
	if b.Pressed {
		d.down[b.ID] = b
	} else {
		delete(d.down, b.ID)
	}
	return true
}

func (d *detector) held(id string) bool {
	_, ok := d.down[id]
	return ok
}

func (d *detector) pressed() []string {
	ids := make([]string, 0, len(d.down))
	for id := range d.down {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

package router

import (
	"log"
	"time"

	"git.lost.host/meutraa/eotd/internal/bind"
	"git.lost.host/meutraa/eotd/internal/game"
	"git.lost.host/meutraa/eotd/internal/input"
)

// Router fans polled button deltas from every registered source through
// the binding table and emits lane hits in strict device-poll order.
type Router struct {
	sources  []input.Source
	bindings *bind.Bindings
	onHit    func(game.LaneHitEvent)
}

func New(bindings *bind.Bindings, onHit func(game.LaneHitEvent)) *Router {
	return &Router{bindings: bindings, onHit: onHit}
}

func (r *Router) Register(s input.Source) {
	r.sources = append(r.sources, s)
}

// Initialize initializes sources in registration order. A source that
// fails stays unavailable and is skipped on Update; the session keeps
// running on whatever devices did open.
func (r *Router) Initialize() {
	for _, s := range r.sources {
		if err := s.Initialize(); nil != err {
			log.Println("input source unavailable:", s.Name(), err)
		}
	}
}

// Update polls each source and emits one LaneHitEvent per pressed delta
// with a bound lane, synchronously, before the next delta is examined.
// Releases never produce lane hits, and unbound ids are dropped.
func (r *Router) Update(now time.Duration) {
	for _, s := range r.sources {
		if !s.Available() {
			continue
		}
		for _, b := range s.Update(now) {
			if !b.Pressed {
				continue
			}
			lane, ok := r.bindings.Lane(b.ID)
			if !ok {
				continue
			}
			r.onHit(game.LaneHitEvent{Lane: lane, Button: b, Time: b.Time})
		}
	}
}

// PressedLanes is the set of lanes with a currently-down bound button,
// for hit-field highlighting.
func (r *Router) PressedLanes() map[int]bool {
	lanes := map[int]bool{}
	for _, s := range r.sources {
		if !s.Available() {
			continue
		}
		for _, id := range s.PressedButtons() {
			if lane, ok := r.bindings.Lane(id); ok {
				lanes[lane] = true
			}
		}
	}
	return lanes
}

func (r *Router) Close() {
	for _, s := range r.sources {
		if err := s.Close(); nil != err {
			log.Println("unable to close input source:", s.Name(), err)
		}
	}
}

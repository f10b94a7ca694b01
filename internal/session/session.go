package session

import (
	"time"

	"git.lost.host/meutraa/eotd/internal/bind"
	"git.lost.host/meutraa/eotd/internal/game"
	"git.lost.host/meutraa/eotd/internal/gauge"
	"git.lost.host/meutraa/eotd/internal/input"
	"git.lost.host/meutraa/eotd/internal/judge"
	"git.lost.host/meutraa/eotd/internal/router"
	"git.lost.host/meutraa/eotd/internal/score"
)

// Session wires one chart's play-through: sources are polled through
// the router, hits judged, and every judgement fanned out to the score
// and gauge managers, all on a single simulation tick.
type Session struct {
	chart  *game.Chart
	router *router.Router
	engine *judge.Engine
	score  *score.Manager
	gauge  *gauge.Manager

	onJudgement func(game.JudgementEvent)
}

func New(chart *game.Chart, bindings *bind.Bindings, windows []game.Window,
	scoreCfg score.Config, gaugeCfg gauge.Config) *Session {
	s := &Session{
		chart: chart,
		score: score.NewManager(scoreCfg, chart.NoteCount),
		gauge: gauge.NewManager(gaugeCfg),
	}
	s.engine = judge.NewEngine(chart, windows, s.fanOut)
	s.router = router.New(bindings, s.handleHit)
	return s
}

// OnJudgement registers a hook run after the score and gauge have
// absorbed each judgement, for HUD feedback.
func (s *Session) OnJudgement(fn func(game.JudgementEvent)) {
	s.onJudgement = fn
}

func (s *Session) Register(src input.Source) {
	s.router.Register(src)
}

func (s *Session) Initialize() {
	s.router.Initialize()
}

func (s *Session) handleHit(hit game.LaneHitEvent) {
	s.engine.HandleHit(hit)
}

func (s *Session) fanOut(ev game.JudgementEvent) {
	s.score.ProcessJudgement(ev)
	s.gauge.ProcessJudgement(ev)
	if s.onJudgement != nil {
		s.onJudgement(ev)
	}
}

// Tick runs one simulation step at song time now and reports whether
// any notes are still pending. The hit path runs before the miss
// sweep, so a hit landing on the tick its note would time out still
// counts.
func (s *Session) Tick(now time.Duration) bool {
	s.router.Update(now)
	s.engine.Sweep(now)
	return s.engine.Remaining() > 0
}

func (s *Session) PressedLanes() map[int]bool {
	return s.router.PressedLanes()
}

// Snapshot is a plain value copy for the HUD and any out-of-thread
// reader; it shares no state with the live session.
type Snapshot struct {
	Stats     score.Statistics
	Gauge     gauge.Snapshot
	Remaining int
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Stats:     s.score.Statistics(),
		Gauge:     s.gauge.Snapshot(),
		Remaining: s.engine.Remaining(),
	}
}

func (s *Session) Close() {
	s.router.Close()
}

package gauge

import (
	"testing"

	"git.lost.host/meutraa/eotd/internal/game"
)

func judgement(tier game.Tier) game.JudgementEvent {
	return game.JudgementEvent{Tier: tier}
}

func TestLifeClampedToMax(t *testing.T) {
	m := NewManager(DefaultConfig())
	for i := 0; i < 50; i++ {
		m.ProcessJudgement(judgement(game.TierJust))
	}
	s := m.Snapshot()
	if s.Life > s.MaxLife {
		t.Log("life", s.Life, "exceeds max", s.MaxLife)
		t.Fail()
	}
	if s.HasFailed {
		t.Log("healthy session marked failed")
		t.Fail()
	}
}

func TestLifeNeverNegative(t *testing.T) {
	m := NewManager(DefaultConfig())
	for i := 0; i < 200; i++ {
		m.ProcessJudgement(judgement(game.TierMiss))
		if life := m.Snapshot().Life; life < 0 {
			t.Log("life went negative:", life)
			t.Fail()
		}
	}
}

func TestAllMissFailure(t *testing.T) {
	cfg := DefaultConfig()
	m := NewManager(cfg)

	// Enough misses to drain the full starting life.
	drains := int(cfg.Start/-cfg.Deltas[game.TierMiss]) + 1
	for i := 0; i < drains; i++ {
		m.ProcessJudgement(judgement(game.TierMiss))
	}

	s := m.Snapshot()
	if !s.HasFailed || s.Life != 0 {
		t.Log("life", s.Life, "failed", s.HasFailed)
		t.Fail()
	}
}

func TestFailurePermanent(t *testing.T) {
	cfg := Config{Max: 10, Start: 1, Deltas: [5]float64{5, 3, 1, -2, -4}}
	m := NewManager(cfg)

	m.ProcessJudgement(judgement(game.TierMiss))
	if !m.Snapshot().HasFailed {
		t.Fatal("gauge did not fail")
	}

	// Judgements remain accepted but cannot resurrect the session.
	for i := 0; i < 100; i++ {
		m.ProcessJudgement(judgement(game.TierJust))
	}
	s := m.Snapshot()
	if !s.HasFailed {
		t.Log("failure flag cleared")
		t.Fail()
	}
	if s.Life != 0 {
		t.Log("life rose after failure:", s.Life)
		t.Fail()
	}
}

func TestStartClampedToMax(t *testing.T) {
	m := NewManager(Config{Max: 50, Start: 80, Deltas: DefaultConfig().Deltas})
	if life := m.Snapshot().Life; life != 50 {
		t.Log("starting life", life)
		t.Fail()
	}
}

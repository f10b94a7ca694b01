package gauge

import (
	"git.lost.host/meutraa/eotd/internal/game"
)

// Config is the life tuning table. Deltas are indexed by tier; good
// judgements heal, poor ones and misses drain.
type Config struct {
	Max    float64
	Start  float64
	Deltas [5]float64
}

func DefaultConfig() Config {
	return Config{
		Max:    100,
		Start:  100,
		Deltas: [5]float64{0.4, 0.3, 0.2, -2, -4},
	}
}

// Manager is the life gauge state machine. Life stays in [0, Max];
// reaching zero latches HasFailed for the rest of the session, after
// which judgements are still accepted (the session plays through) but
// life no longer moves.
type Manager struct {
	cfg    Config
	life   float64
	failed bool
}

func NewManager(cfg Config) *Manager {
	life := cfg.Start
	if life > cfg.Max {
		life = cfg.Max
	}
	return &Manager{cfg: cfg, life: life}
}

func (m *Manager) ProcessJudgement(ev game.JudgementEvent) {
	if m.failed {
		return
	}
	m.life += m.cfg.Deltas[ev.Tier]
	if m.life > m.cfg.Max {
		m.life = m.cfg.Max
	}
	if m.life <= 0 {
		m.life = 0
		m.failed = true
	}
}

type Snapshot struct {
	Life      float64
	MaxLife   float64
	HasFailed bool
}

func (m *Manager) Snapshot() Snapshot {
	return Snapshot{Life: m.life, MaxLife: m.cfg.Max, HasFailed: m.failed}
}

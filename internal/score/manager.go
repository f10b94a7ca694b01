package score

import (
	"git.lost.host/meutraa/eotd/internal/game"
)

// Config is the scoring tuning table. Points are indexed by tier; the
// combo factor for a judgement is 1 + combo/ComboStep, capped at
// MaxComboFactor, using the combo as it stood before the judgement.
// Tiers at or better than MinComboTier extend the combo; worse
// non-miss tiers leave it alone; a miss resets it.
type Config struct {
	Points         [5]int
	ComboStep      int
	MaxComboFactor int
	MinComboTier   game.Tier
}

func DefaultConfig() Config {
	return Config{
		Points:         [5]int{100, 70, 40, 10, 0},
		ComboStep:      10,
		MaxComboFactor: 4,
		MinComboTier:   game.TierGood,
	}
}

// Manager accumulates judgements into a running score and combo. The
// score only ever grows; reads are side-effect free snapshots.
type Manager struct {
	cfg         Config
	noteCount   int
	score       int
	combo       int
	maxCombo    int
	counts      [5]int
	theoretical int
}

func NewManager(cfg Config, noteCount int) *Manager {
	m := &Manager{cfg: cfg, noteCount: noteCount}
	// The theoretical maximum is an all-Just run, combo curve included.
	combo := 0
	for i := 0; i < noteCount; i++ {
		m.theoretical += cfg.Points[game.TierJust] * m.factor(combo)
		combo++
	}
	return m
}

func (m *Manager) factor(combo int) int {
	f := 1 + combo/m.cfg.ComboStep
	if f > m.cfg.MaxComboFactor {
		f = m.cfg.MaxComboFactor
	}
	return f
}

func (m *Manager) ProcessJudgement(ev game.JudgementEvent) {
	m.counts[ev.Tier]++
	m.score += m.cfg.Points[ev.Tier] * m.factor(m.combo)

	switch {
	case ev.Tier == game.TierMiss:
		m.combo = 0
	case ev.Tier <= m.cfg.MinComboTier:
		m.combo++
		if m.combo > m.maxCombo {
			m.maxCombo = m.combo
		}
	}
}

// Statistics is a read-only snapshot for the HUD and result store.
type Statistics struct {
	Score          int
	TheoreticalMax int
	Percent        float64
	Combo          int
	MaxCombo       int
	TierCounts     [5]int
}

func (m *Manager) Statistics() Statistics {
	s := Statistics{
		Score:          m.score,
		TheoreticalMax: m.theoretical,
		Combo:          m.combo,
		MaxCombo:       m.maxCombo,
		TierCounts:     m.counts,
	}
	if m.theoretical > 0 {
		s.Percent = 100 * float64(m.score) / float64(m.theoretical)
	}
	return s
}

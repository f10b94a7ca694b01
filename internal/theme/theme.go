package theme

import "git.lost.host/meutraa/eotd/internal/game"

type Theme interface {
	RenderNote(lane int) string
	RenderHitField(lane int, pressed bool) string
	RenderLaneLabel(lane int) string
	RenderJudgement(tier game.Tier) string
}

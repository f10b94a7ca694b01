package theme

import (
	"fmt"

	"git.lost.host/meutraa/eotd/internal/game"
	"git.lost.host/meutraa/eotd/internal/graphics"
)

type DefaultTheme struct {
}

func colorize(c graphics.Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

func (t *DefaultTheme) RenderNote(lane int) string {
	return colorize(laneColor(lane), noteSym(lane))
}

func (t *DefaultTheme) RenderHitField(lane int, pressed bool) string {
	if pressed {
		return colorize(laneColor(lane), "═")
	}
	return "─"
}

func (t *DefaultTheme) RenderLaneLabel(lane int) string {
	return colorize(laneColor(lane), game.LaneName(lane))
}

func (t *DefaultTheme) RenderJudgement(tier game.Tier) string {
	col, ok := tierColors[tier]
	if !ok {
		col = graphics.Color{R: 255, G: 255, B: 255}
	}
	return colorize(col, tier.String())
}

var (
	cymbalSym = "◆"
	drumSym   = "⬤"
	pedalSym  = "▲"

	laneColors = map[int]graphics.Color{
		game.LaneLeftCymbal:  {R: 236, G: 128, B: 0},
		game.LaneHiHat:       {R: 0, G: 190, B: 236},
		game.LaneLeftPedal:   {R: 173, G: 106, B: 236},
		game.LaneSnare:       {R: 236, G: 195, B: 0},
		game.LaneHighTom:     {R: 0, G: 236, B: 128},
		game.LaneBass:        {R: 170, G: 170, B: 170},
		game.LaneLowTom:      {R: 236, G: 30, B: 0},
		game.LaneFloorTom:    {R: 236, G: 0, B: 106},
		game.LaneRightCymbal: {R: 0, G: 118, B: 236},
	}

	tierColors = map[game.Tier]graphics.Color{
		game.TierJust:  {R: 173, G: 236, B: 236},
		game.TierGreat: {R: 0, G: 236, B: 128},
		game.TierGood:  {R: 236, G: 195, B: 0},
		game.TierPoor:  {R: 236, G: 128, B: 0},
		game.TierMiss:  {R: 236, G: 30, B: 0},
	}
)

func noteSym(lane int) string {
	switch lane {
	case game.LaneLeftCymbal, game.LaneRightCymbal:
		return cymbalSym
	case game.LaneLeftPedal, game.LaneBass:
		return pedalSym
	}
	return drumSym
}

func laneColor(lane int) graphics.Color {
	col, ok := laneColors[lane]
	if !ok {
		return graphics.Color{R: 255, G: 255, B: 255}
	}
	return col
}

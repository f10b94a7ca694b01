package render

import (
	"time"

	"git.lost.host/meutraa/eotd/internal/graphics"
)

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(row, col int, content string, frames int)
	RenderLoop(delay, framePeriod time.Duration, render func(now time.Time, duration time.Duration) bool)
	Fill(row, col int, message string)
	FillColor(row, col int, c graphics.Color, message string)
}

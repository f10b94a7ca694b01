package parser

import "git.lost.host/meutraa/eotd/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}

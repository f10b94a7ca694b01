package testdata

import (
	"bufio"
	"strings"

	"git.lost.host/meutraa/eotd/internal/game"
	"git.lost.host/meutraa/eotd/internal/parser"
)

const data = `#TITLE:Fixture Beat
#ARTIST:nobody
#LANES:9
// one bar of straight eighths plus fills
500 5
750 1
1000 3
1250 1
1500 5
1750 1
2000 3
2250 8
2500 5 accent
2500 1
2750 6
3000 7
3250 3
3500 5
3500 8
`

func GetChart() (*game.Chart, error) {
	p := parser.DefaultParser{}
	return p.ParseData(bufio.NewScanner(strings.NewReader(data)))
}

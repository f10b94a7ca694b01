package config

import (
	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/eotd/internal/game"
	"git.lost.host/meutraa/eotd/internal/gauge"
	"git.lost.host/meutraa/eotd/internal/score"
)

var (
	Directory     = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Rate          = kingpin.Flag("rate", "Playback speed").Default("1.0").Short('r').Float64()
	Offset        = kingpin.Flag("offset", "Global offset").Default("0ms").Short('o').Duration()
	Delay         = kingpin.Flag("delay", "Start delay").Default("1.5s").Short('d').Duration()
	FramePeriod   = kingpin.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	ColumnSpacing = kingpin.Flag("spacing", "Columns between lanes").Default("4").Short('S').Uint()
	BarRow        = kingpin.Flag("bar-row", "Console row to render hit bar, from bottom").Default("4").Uint()
	RowPeriod     = kingpin.Flag("row-period", "Scroll time per console row").Default("30ms").Duration()
	Database      = kingpin.Flag("database", "Score and binding database").Default("./eotd.db").String()
	MIDIPort      = kingpin.Flag("midi-port", "MIDI input port index, -1 to disable").Default("-1").Int()
	KeyHold       = kingpin.Flag("key-hold", "Synthesized key release delay").Default("40ms").Duration()

	justWindow  = kingpin.Flag("just-window", "Just timing window").Default("25ms").Duration()
	greatWindow = kingpin.Flag("great-window", "Great timing window").Default("50ms").Duration()
	goodWindow  = kingpin.Flag("good-window", "Good timing window").Default("100ms").Duration()
	poorWindow  = kingpin.Flag("poor-window", "Poor timing window").Default("150ms").Duration()
	missWindow  = kingpin.Flag("miss-window", "Outer matching window").Default("200ms").Duration()

	gaugeStart = kingpin.Flag("gauge", "Starting life").Default("100").Float64()

	// Derived tuning tables, built once after flag parsing.
	Windows     []game.Window
	ScoreConfig score.Config
	GaugeConfig gauge.Config
)

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	Windows = []game.Window{
		{Tier: game.TierJust, Width: *justWindow},
		{Tier: game.TierGreat, Width: *greatWindow},
		{Tier: game.TierGood, Width: *goodWindow},
		{Tier: game.TierPoor, Width: *poorWindow},
		{Tier: game.TierMiss, Width: *missWindow},
	}
	ScoreConfig = score.DefaultConfig()
	GaugeConfig = gauge.DefaultConfig()
	GaugeConfig.Start = *gaugeStart
}

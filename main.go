package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"golang.org/x/term"

	"git.lost.host/meutraa/eotd/internal/bind"
	"git.lost.host/meutraa/eotd/internal/config"
	"git.lost.host/meutraa/eotd/internal/game"
	"git.lost.host/meutraa/eotd/internal/input"
	"git.lost.host/meutraa/eotd/internal/parser"
	"git.lost.host/meutraa/eotd/internal/render"
	"git.lost.host/meutraa/eotd/internal/session"
	"git.lost.host/meutraa/eotd/internal/store"
	"git.lost.host/meutraa/eotd/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func isRowInField(rc int, row int) bool {
	return row < rc && row > 0
}

func run() error {
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var psr parser.Parser = &parser.DefaultParser{}

	columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	rc, cc := rows, columns

	var audioFile, oggFile, chartFile string
	if err := filepath.Walk(*config.Directory, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch path.Ext(info.Name()) {
		case ".mp3":
			audioFile = p
		case ".ogg":
			oggFile = p
		case ".chart":
			chartFile = p
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}
	if (audioFile == "" && oggFile == "") || chartFile == "" {
		return errors.New("unable to find .chart and .mp3/.ogg file in given directory")
	}

	chart, err := psr.Parse(chartFile)
	if nil != err {
		return err
	}
	if chart.NoteCount == 0 {
		return errors.New("chart has no notes")
	}

	// The rate stretches the whole timeline, judgement windows included
	// on the song clock, so scale note times once up front.
	for _, note := range chart.Notes {
		note.Time = time.Duration(math.Round(float64(note.Time) / *config.Rate))
	}

	st, err := store.Open(*config.Database)
	if nil != err {
		return fmt.Errorf("unable to open database: %w", err)
	}
	defer st.Close()

	bindings := bind.New(chart.Lanes)
	if err := st.LoadBindings(bindings); nil != err {
		log.Println("unable to load bindings:", err)
	}
	// Rebinds during the session persist without restart.
	bindings.Notify(func() {
		if err := st.SaveBindings(bindings); nil != err {
			log.Println("unable to save bindings:", err)
		}
	})

	best := 0
	if results, err := st.LoadResults(chart); nil != err {
		log.Println("unable to load results:", err)
	} else if len(results) > 0 {
		best = results[0].Score
	}

	sess := session.New(chart, bindings, config.Windows, config.ScoreConfig, config.GaugeConfig)
	defer sess.Close()

	kb := input.NewKeyboard(*config.KeyHold)
	sess.Register(kb)
	if *config.MIDIPort >= 0 {
		sess.Register(input.NewMIDI(*config.MIDIPort))
	}
	sess.Initialize()
	if !kb.Available() {
		return errors.New("keyboard unavailable")
	}

	f, err := os.Open(pick(oggFile, audioFile))
	if nil != err {
		return err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	if oggFile != "" {
		streamer, format, err = vorbis.Decode(f)
	} else {
		streamer, format, err = mp3.Decode(f)
	}
	if nil != err {
		return err
	}
	defer streamer.Close()

	sr := beep.SampleRate(math.Round(float64(format.SampleRate) * *config.Rate))
	if err := speaker.Init(sr, format.SampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to init speaker: %w", err)
	}
	go func() {
		time.Sleep(*config.Delay)
		speaker.Play(streamer)
	}()

	// Lane columns, centered.
	mc := cc >> 1
	cen := rc >> 1
	spacing := int(*config.ColumnSpacing)
	cis := make([]int, chart.Lanes)
	for i := range cis {
		cis[i] = mc + (2*i-chart.Lanes+1)*spacing/2
	}
	sideCol := cis[0] - 30
	if sideCol < 2 {
		sideCol = 2
	}
	hitRow := rc - int(*config.BarRow)

	sess.OnJudgement(func(ev game.JudgementEvent) {
		r.AddDecoration(cen, cis[ev.Lane]-2, th.RenderJudgement(ev.Tier), 90)
	})

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}()

	lastNote := chart.Notes[len(chart.Notes)-1].Time
	rowPeriod := *config.RowPeriod
	lastRows := map[*game.Note]int{}

	r.RenderLoop(*config.Delay, *config.FramePeriod, func(now time.Time, duration time.Duration) bool {
		songTime := duration + *config.Offset

		if kb.Interrupted() {
			return false
		}
		active := sess.Tick(songTime)
		if !active && songTime > lastNote+2*time.Second {
			return false
		}

		// Hit bar and lane labels.
		pressed := sess.PressedLanes()
		for lane := 0; lane < chart.Lanes; lane++ {
			r.Fill(hitRow, cis[lane], th.RenderHitField(lane, pressed[lane]))
			r.Fill(rc-1, cis[lane], th.RenderLaneLabel(lane))
		}

		// Notes: clear each note's previous row, then draw pending
		// notes at their new positions. The active window start slides
		// past the judged prefix; the sweep guarantees passed notes
		// join it within the outer window.
		notes, start, end := chart.Active()
		startOffset, endOffset := 0, 0
		prefix := true
		for _, note := range notes {
			row := hitRow - int((note.Time-songTime)/rowPeriod)
			if prev, ok := lastRows[note]; ok && prev != row && isRowInField(rc, prev) {
				r.Fill(prev, cis[note.Lane], " ")
			}
			lastRows[note] = row

			if note.Judged {
				if isRowInField(rc, row) {
					r.Fill(row, cis[note.Lane], " ")
				}
				if prefix {
					startOffset++
					delete(lastRows, note)
				}
				continue
			}
			prefix = false
			if isRowInField(rc, row) {
				r.Fill(row, cis[note.Lane], th.RenderNote(note.Lane))
			}
		}
		for _, note := range chart.Notes[end:] {
			row := hitRow - int((note.Time-songTime)/rowPeriod)
			if row > 0 {
				endOffset++
			} else {
				break
			}
		}
		chart.SetActive(start+startOffset, end+endOffset)

		snap := sess.Snapshot()
		r.Fill(3, sideCol, fmt.Sprintf("      Score: %8v", snap.Stats.Score))
		r.Fill(4, sideCol, fmt.Sprintf("    Percent: %7.2f%%", snap.Stats.Percent))
		r.Fill(5, sideCol, fmt.Sprintf("      Combo: %8v", snap.Stats.Combo))
		r.Fill(6, sideCol, fmt.Sprintf("  Max Combo: %8v", snap.Stats.MaxCombo))
		r.Fill(7, sideCol, fmt.Sprintf("       Best: %8v", best))
		for tier, count := range snap.Stats.TierCounts {
			r.Fill(9+tier, sideCol, fmt.Sprintf("%11v: %6v",
				th.RenderJudgement(game.Tier(tier)), count))
		}
		r.Fill(15, sideCol, gaugeBar(snap))

		return true
	})

	snap := sess.Snapshot()
	if err := st.SaveResult(chart, store.Result{
		Rate:     *config.Rate,
		Score:    snap.Stats.Score,
		Percent:  snap.Stats.Percent,
		MaxCombo: snap.Stats.MaxCombo,
		Counts:   snap.Stats.TierCounts,
		Failed:   snap.Gauge.HasFailed,
	}); nil != err {
		log.Println("unable to save result:", err)
	}

	outcome := "CLEAR"
	if snap.Gauge.HasFailed {
		outcome = "FAILED"
	}
	fmt.Printf("%v  %v  score %v (%.2f%%)  max combo %v\n",
		chart.Title, outcome, snap.Stats.Score, snap.Stats.Percent, snap.Stats.MaxCombo)
	return nil
}

func pick(first, second string) string {
	if first != "" {
		return first
	}
	return second
}

func gaugeBar(snap session.Snapshot) string {
	const width = 20
	filled := int(math.Round(snap.Gauge.Life / snap.Gauge.MaxLife * width))
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	if snap.Gauge.HasFailed {
		return fmt.Sprintf("       Life: \033[1;31m%v FAILED\033[0m", bar)
	}
	return fmt.Sprintf("       Life: %v %5.1f", bar, snap.Gauge.Life)
}

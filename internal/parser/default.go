package parser

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/eotd/internal/game"
)

// DefaultParser reads the plain-text .chart interchange format:
//
//	#TITLE:name
//	#ARTIST:name
//	#LANES:9
//	<time ms> <lane> [id]
//
// one note per line. Lanes are validated against the declared count
// here so the judgement engine never sees an out-of-range lane.
type DefaultParser struct{}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return p.ParseData(bufio.NewScanner(f))
}

func (p *DefaultParser) ParseData(scanner *bufio.Scanner) (*game.Chart, error) {
	chart := &game.Chart{Lanes: game.LaneCount}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "#") {
			key, value, found := strings.Cut(line[1:], ":")
			if !found {
				return nil, fmt.Errorf("line %v: malformed header %q", lineNo, line)
			}
			value = strings.TrimSpace(value)
			switch strings.ToUpper(strings.TrimSpace(key)) {
			case "TITLE":
				chart.Title = value
			case "ARTIST":
				chart.Artist = value
			case "LANES":
				lanes, err := strconv.Atoi(value)
				if nil != err || lanes < 1 {
					return nil, fmt.Errorf("line %v: bad lane count %q", lineNo, value)
				}
				chart.Lanes = lanes
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %v: expected \"<ms> <lane>\", got %q", lineNo, line)
		}
		ms, err := strconv.ParseFloat(fields[0], 64)
		if nil != err || ms < 0 {
			return nil, fmt.Errorf("line %v: bad note time %q", lineNo, fields[0])
		}
		lane, err := strconv.Atoi(fields[1])
		if nil != err {
			return nil, fmt.Errorf("line %v: bad lane %q", lineNo, fields[1])
		}
		if lane < 0 || lane >= chart.Lanes {
			return nil, fmt.Errorf("line %v: lane %v outside layout of %v", lineNo, lane, chart.Lanes)
		}

		note := &game.Note{
			Lane: lane,
			Time: time.Duration(ms * float64(time.Millisecond)),
		}
		if len(fields) > 2 {
			note.ID = fields[2]
		} else {
			note.ID = "n" + strconv.Itoa(len(chart.Notes))
		}
		chart.Notes = append(chart.Notes, note)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}

	// A #LANES header may follow note lines, so the per-line check is
	// not enough on its own; re-validate against the final count.
	for _, note := range chart.Notes {
		if note.Lane >= chart.Lanes {
			return nil, fmt.Errorf("note %v at %v: lane %v outside layout of %v",
				note.ID, note.Time, note.Lane, chart.Lanes)
		}
	}

	sort.SliceStable(chart.Notes, func(i, j int) bool {
		return chart.Notes[i].Time < chart.Notes[j].Time
	})
	chart.NoteCount = len(chart.Notes)
	return chart, nil
}

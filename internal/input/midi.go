package input

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"git.lost.host/meutraa/eotd/internal/game"
)

// MIDISource listens on one MIDI input port. The driver delivers
// messages on its own goroutine, so they are buffered under a mutex
// and drained on the simulation tick; everything downstream of Update
// stays single-threaded.
type MIDISource struct {
	port      int
	stop      func()
	available bool

	mu    sync.Mutex
	queue []rawMIDIEvent

	det detector
}

type rawMIDIEvent struct {
	note     uint8
	velocity uint8
	pressed  bool
}

func NewMIDI(port int) *MIDISource {
	return &MIDISource{port: port, det: newDetector()}
}

func (s *MIDISource) Name() string { return "midi" }

func (s *MIDISource) Initialize() error {
	if s.available {
		return nil
	}
	ins := midi.GetInPorts()
	if s.port < 0 || s.port >= len(ins) {
		return fmt.Errorf("no MIDI input port %v (%v available)", s.port, len(ins))
	}
	stop, err := midi.ListenTo(ins[s.port], func(msg midi.Message, timestampms int32) {
		var channel, note, velocity uint8
		switch {
		case msg.GetNoteOn(&channel, &note, &velocity):
			// Running status note-on with velocity 0 is a release.
			s.enqueue(rawMIDIEvent{note: note, velocity: velocity, pressed: velocity > 0})
		case msg.GetNoteOff(&channel, &note, &velocity):
			s.enqueue(rawMIDIEvent{note: note, pressed: false})
		}
	})
	if nil != err {
		return fmt.Errorf("unable to listen on MIDI port %v: %w", s.port, err)
	}
	s.stop = stop
	s.available = true
	return nil
}

func (s *MIDISource) Available() bool { return s.available }

func (s *MIDISource) enqueue(ev rawMIDIEvent) {
	s.mu.Lock()
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
}

func (s *MIDISource) Update(now time.Duration) []game.ButtonState {
	if !s.available {
		return nil
	}

	s.mu.Lock()
	raw := s.queue
	s.queue = nil
	s.mu.Unlock()

	var deltas []game.ButtonState
	for _, ev := range raw {
		b := game.ButtonState{
			ID:       "MIDI." + strconv.Itoa(int(ev.note)),
			Pressed:  ev.pressed,
			Velocity: float64(ev.velocity) / 127,
			Time:     now,
		}
		if s.det.sample(b) {
			deltas = append(deltas, b)
		}
	}
	return deltas
}

func (s *MIDISource) PressedButtons() []string {
	return s.det.pressed()
}

func (s *MIDISource) Close() error {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	s.available = false
	return nil
}

package game

type Chart struct {
	Title     string
	Artist    string
	Lanes     int
	Notes     []*Note // Ordered by Time
	NoteCount int

	activeNotes    []*Note
	startNoteIndex int
	endNoteIndex   int
}

// Active is the sliding window of notes near the current song time,
// maintained by the render loop so it never rescans the whole chart.
func (c *Chart) Active() ([]*Note, int, int) {
	return c.activeNotes, c.startNoteIndex, c.endNoteIndex
}

func (c *Chart) SetActive(start int, end int) {
	c.activeNotes = c.Notes[start:end]
	c.startNoteIndex = start
	c.endNoteIndex = end
}

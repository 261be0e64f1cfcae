package gems

import "fmt"

// FeedbackKind categorizes a floating label. Message text is cosmetic; the
// category is what the engine guarantees (combo beats splendid beats good).
type FeedbackKind int

const (
	FeedbackGood FeedbackKind = iota
	FeedbackSplendid
	FeedbackCombo
	FeedbackBombReady
)

// goodMessages is the pool a plain small match draws from.
var goodMessages = []string{"NICE!", "GOOD!", "SWEET!", "SHINY!"}

// label is a transient floating message anchored to a board position.
// Labels drift upward and are auto-removed when their lifetime expires.
type label struct {
	text      string
	kind      FeedbackKind
	row, col  float64 // anchor in board coordinates
	ticksLeft int
	lifetime  int
}

// pushFeedback emits the resolution-step label for a match set, per the
// feedback priority: combo multiplier first, then big-match size, then a
// pseudo-random pick from the good pool.
func (e *Engine) pushFeedback(m *MatchSet, combo int) {
	kind := FeedbackGood
	var text string
	switch {
	case combo > 1:
		kind = FeedbackCombo
		text = fmt.Sprintf("COMBO x%d", combo)
	case m.Size() >= e.tuning.Scoring.BigMatchSize:
		kind = FeedbackSplendid
		text = "SPLENDID!"
	default:
		text = goodMessages[e.rng.Intn(len(goodMessages))]
	}

	row, col := matchCentroid(m)
	e.pushLabel(text, kind, row, col)
}

// pushLabel appends a floating label at a board position.
func (e *Engine) pushLabel(text string, kind FeedbackKind, row, col float64) {
	ttl := e.tuning.Feedback.LabelTicks
	e.labels = append(e.labels, label{
		text:      text,
		kind:      kind,
		row:       row,
		col:       col,
		ticksLeft: ttl,
		lifetime:  ttl,
	})
}

// updateLabels ages labels and drops expired ones.
func (e *Engine) updateLabels() {
	kept := e.labels[:0]
	for _, l := range e.labels {
		l.ticksLeft--
		if l.ticksLeft > 0 {
			kept = append(kept, l)
		}
	}
	e.labels = kept
}

// matchCentroid returns the average board position of a match set, used to
// anchor its feedback label.
func matchCentroid(m *MatchSet) (row, col float64) {
	if m.Empty() {
		return BoardSize / 2, BoardSize / 2
	}
	for _, t := range m.Tiles() {
		row += float64(t.Row)
		col += float64(t.Col)
	}
	n := float64(m.Size())
	return row / n, col / n
}

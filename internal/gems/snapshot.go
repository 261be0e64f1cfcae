package gems

// Snapshot captures the observable engine state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Score        int
	Charge       int
	PendingBombs int
	Combo        int
	Busy         bool
	Phase        string
	Kinds        [BoardSize][BoardSize]Kind  // KindNone for empty cells
	IDs          [BoardSize][BoardSize]int64 // 0 for empty cells
}

// Snapshot returns the current engine snapshot. Kinds and IDs together
// identify the board byte-for-byte: two snapshots with equal arrays hold
// the same tiles in the same cells.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         e.tick,
		Score:        e.score,
		Charge:       e.charge,
		PendingBombs: e.pendingBombs,
		Combo:        e.combo,
		Busy:         e.Busy(),
		Phase:        e.phase.String(),
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if t := e.grid[row][col]; t != nil {
				s.Kinds[row][col] = t.Kind
				s.IDs[row][col] = t.ID
			}
		}
	}
	return s
}

// ChargeDisplay returns the charge fraction shown in the HUD: the counter,
// the threshold, and the bar fill percentage capped at 100.
func (e *Engine) ChargeDisplay() (charge, threshold, percent int) {
	threshold = e.tuning.Scoring.ChargeThreshold
	charge = e.charge
	percent = charge * 100 / threshold
	if percent > 100 {
		percent = 100
	}
	return charge, threshold, percent
}

package gems

// phase identifies the current step of the resolution machine. The original
// design awaited animation promises; here every wait is a fixed number of
// simulation ticks and the machine advances in Step. While the phase is
// anything but phaseIdle the engine is busy and pointer input is ignored.
type phase int

const (
	phaseIdle     phase = iota
	phaseSwap           // tentative exchange animating
	phaseRevert         // failed swap animating back
	phaseDetonate       // bomb swap animating before detonation
	phaseClear          // matched tiles shrinking
	phaseFall           // gravity compaction animating
	phaseRefill         // spawned tiles dropping in from above
)

// String returns the phase name, used in snapshots.
func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseSwap:
		return "swap"
	case phaseRevert:
		return "revert"
	case phaseDetonate:
		return "detonate"
	case phaseClear:
		return "clear"
	case phaseFall:
		return "fall"
	case phaseRefill:
		return "refill"
	default:
		return "unknown"
	}
}

// easeOutQuad provides smooth deceleration for tile movement.
func easeOutQuad(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t * (2 - t)
}

// phaseDuration returns the tick length of the current phase.
func (e *Engine) phaseDuration() int {
	anim := e.tuning.Animation
	switch e.phase {
	case phaseSwap, phaseRevert, phaseDetonate:
		return anim.SwapTicks
	case phaseClear:
		return anim.ClearTicks
	case phaseFall:
		return anim.FallTicks
	case phaseRefill:
		return anim.RefillTicks
	default:
		return 0
	}
}

// phaseProgress returns the current phase progress in [0, 1].
func (e *Engine) phaseProgress() float64 {
	d := e.phaseDuration()
	if d <= 0 {
		return 1
	}
	p := float64(e.phaseTicks) / float64(d)
	if p > 1 {
		return 1
	}
	return p
}

// beginPhase enters a phase and restarts the phase clock.
func (e *Engine) beginPhase(p phase) {
	e.phase = p
	e.phaseTicks = 0
}

// settleAnimations snaps every tile's visual position to its logical cell.
func (e *Engine) settleAnimations() {
	e.grid.forEach(func(t *Tile) {
		t.settleAnim()
	})
}

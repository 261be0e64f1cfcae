package gems

// Cascade resolution. The original recursive processMatches becomes an
// explicit loop over the phase machine: each completed clear/fall/refill
// round re-scans the board and either starts the next round with the combo
// multiplier incremented, or returns the engine to idle. Behavior matches
// the recursive form (strictly increasing multiplier per re-match step)
// without unbounded stack depth.

// advancePhase runs one tick of the in-flight resolution sequence and
// performs the phase transition when the current wait completes.
func (e *Engine) advancePhase() {
	e.phaseTicks++
	if e.phaseTicks < e.phaseDuration() {
		return
	}

	switch e.phase {
	case phaseSwap:
		e.settleSwap()
	case phaseRevert:
		e.settleRevert()
	case phaseDetonate:
		e.settleDetonation()
	case phaseClear:
		e.settleClear()
	case phaseFall:
		e.settleFall()
	case phaseRefill:
		e.settleRefill()
	}
}

// settleSwap runs match detection after a tentative exchange. A swap that
// produces no match is not an error: it reverts with visual feedback and
// leaves the board exactly as it was.
func (e *Engine) settleSwap() {
	e.settleAnimations()

	m := FindMatches(&e.grid)
	if m.Empty() {
		e.exchange(e.swapA, e.swapB)
		e.beginPhase(phaseRevert)
		return
	}

	e.swapA = nil
	e.swapB = nil
	e.beginClear(m, 1)
}

// settleRevert completes a failed swap's animation back to rest.
func (e *Engine) settleRevert() {
	e.settleAnimations()
	e.swapA = nil
	e.swapB = nil
	e.beginPhase(phaseIdle)
}

// settleDetonation collects the detonation set once the bomb swap has
// visually settled: every board tile of the partner's kind plus the two
// swapped tiles, deduplicated, cleared as one event. Bombs are worth an
// extra combo step, so the set is processed at multiplier 2.
func (e *Engine) settleDetonation() {
	e.settleAnimations()

	var m MatchSet
	m.add(e.grid.collectKind(e.detonateOn)...)
	m.add(e.swapA, e.swapB)

	e.swapA = nil
	e.swapB = nil
	e.detonateOn = KindNone
	e.beginClear(m, 2)
}

// beginClear starts one resolution step for a match set at the given combo
// multiplier: score, feedback, charge accumulation, then the awaited shrink
// animation before any grid mutation.
func (e *Engine) beginClear(m MatchSet, combo int) {
	e.combo = combo
	e.matched = m

	e.score += m.Size() * e.tuning.Scoring.TilePoints * combo
	e.pushFeedback(&m, combo)
	e.accumulateCharge(&m)

	if e.tuning.Bonus.FiveRunBomb && m.LongestRun() >= 5 {
		e.pendingBombs++
	}

	e.beginPhase(phaseClear)
}

// accumulateCharge feeds matched charge-colored tiles into the counter and
// converts every full threshold into a pending bomb.
func (e *Engine) accumulateCharge(m *MatchSet) {
	n := m.CountKind(ChargeKind)
	if n == 0 {
		return
	}
	e.charge += n

	threshold := e.tuning.Scoring.ChargeThreshold
	if e.charge >= threshold {
		e.pendingBombs += e.charge / threshold
		e.charge %= threshold
		e.pushLabel("BOMB READY!", FeedbackBombReady, 0, BoardSize/2)
	}
}

// settleClear deallocates the matched tiles, then starts gravity. The grid
// is only mutated here, after the shrink animation completed, to keep the
// visual and logical state in sync.
func (e *Engine) settleClear() {
	for _, t := range e.matched.Tiles() {
		e.grid[t.Row][t.Col] = nil
	}
	e.matched = MatchSet{}

	if e.grid.compact() {
		e.beginPhase(phaseFall)
		return
	}
	e.spawnRefill()
}

// settleFall completes the compaction animation and spawns the refill.
func (e *Engine) settleFall() {
	e.settleAnimations()
	e.spawnRefill()
}

// spawnRefill creates a new tile for every remaining empty cell, processed
// top to bottom per column, left to right. Pending bombs are consumed one
// per spawned tile until exhausted; all further spawns sample an ordinary
// kind uniformly, with no anti-match resampling. New tiles animate in from
// above the visible board.
func (e *Engine) spawnRefill() {
	spawned := false
	for col := 0; col < BoardSize; col++ {
		empty := e.grid.emptyCellsTopDown(col)
		drop := len(empty)
		for _, row := range empty {
			var k Kind
			if e.pendingBombs > 0 {
				k = KindBomb
				e.pendingBombs--
			} else {
				k = e.randomKind()
			}
			t := e.newTile(k, row, col)
			t.startAnim(float64(row-drop), float64(col))
			e.grid[row][col] = t
			spawned = true
		}
	}

	if spawned {
		e.beginPhase(phaseRefill)
		return
	}
	// A cascade step always leaves holes, but guard the transition anyway.
	e.settleRefill()
}

// settleRefill re-scans the settled board: a fresh match continues the
// cascade at the next combo step, otherwise the engine returns to idle.
func (e *Engine) settleRefill() {
	e.settleAnimations()

	m := FindMatches(&e.grid)
	if !m.Empty() {
		e.beginClear(m, e.combo+1)
		return
	}

	e.combo = 0
	e.beginPhase(phaseIdle)
}

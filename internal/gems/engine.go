package gems

import (
	"math/rand"

	"github.com/vovakirdan/gemfall/internal/config"
	"github.com/vovakirdan/gemfall/internal/core"
)

// dragThreshold is the drag displacement, in tile units along the dominant
// axis, beyond which a drag commits to a swap attempt. Displacement below
// it on release is a tap.
const dragThreshold = 0.5

// Package-level variables for CLI config, set before game creation.
var configPath string

// SetConfigPath sets a custom engine tuning file for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Engine owns the complete match-3 simulation: board state, input
// interpretation, match detection, cascade resolution, scoring, and the
// bomb-charge mechanic. All state lives on the instance; multiple engines
// can run independently.
type Engine struct {
	cfg    core.RuntimeConfig
	tuning config.GemsConfig
	rng    *rand.Rand
	tick   uint64

	grid   Grid
	nextID int64

	score        int
	charge       int
	pendingBombs int

	// Resolution machine
	phase      phase
	phaseTicks int
	combo      int
	matched    MatchSet
	swapA      *Tile
	swapB      *Tile
	detonateOn Kind // target kind of an in-flight bomb swap

	// Input state: selection and drag are mutually exclusive.
	selected *Tile
	dragging bool
	dragTile *Tile
	dragX    int
	dragY    int

	// Keyboard cursor, a TUI affordance feeding the same tap path.
	cursorRow int
	cursorCol int

	labels []label

	layout   Layout
	screenW  int
	screenH  int
	tooSmall bool
	paused   bool
}

// New creates a new match engine.
func New() *Engine {
	return &Engine{}
}

// ID returns the game identifier used for score storage.
func (e *Engine) ID() string {
	return "gemfall"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Gemfall"
}

// Reset initializes or restarts the engine. Any in-flight cascade is a hard
// stop: the phase machine, match set, labels, and selection are discarded
// wholesale and the board is rebuilt fresh. Safe to call at any time.
func (e *Engine) Reset(cfg core.RuntimeConfig) {
	e.cfg = cfg
	e.rng = rand.New(rand.NewSource(cfg.Seed))
	e.tick = 0

	tuning, err := config.LoadGems(configPath)
	if err != nil {
		tuning = config.DefaultGemsConfig()
	}
	e.tuning = tuning

	e.screenW = cfg.ScreenW
	e.screenH = cfg.ScreenH
	e.layout = computeLayout(cfg.ScreenW)
	e.tooSmall = !e.layout.fitsScreen(cfg.ScreenW, cfg.ScreenH)
	e.paused = false

	e.resetBoard()
}

// resetBoard clears all play state and refills the board. Unlike Reset it
// keeps the RNG stream running, so an in-game restart deals a new board.
func (e *Engine) resetBoard() {
	e.grid = Grid{}
	e.score = 0
	e.charge = 0
	e.pendingBombs = 0
	e.combo = 0
	e.phase = phaseIdle
	e.phaseTicks = 0
	e.matched = MatchSet{}
	e.swapA = nil
	e.swapB = nil
	e.detonateOn = KindNone
	e.selected = nil
	e.dragging = false
	e.dragTile = nil
	e.labels = nil
	e.cursorRow = BoardSize / 2
	e.cursorCol = BoardSize / 2

	e.fillBoard()
}

// fillBoard procedurally fills all 64 cells so that no initial placement
// forms a run of >= 3 same-kind tiles. Each cell is resampled until its
// kind does not complete a run against the two neighbors to its left and
// the two above; with 5 kinds and a 2-neighbor check this terminates fast.
func (e *Engine) fillBoard() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			var k Kind
			for {
				k = e.randomKind()
				if !e.completesRun(row, col, k) {
					break
				}
			}
			e.grid[row][col] = e.newTile(k, row, col)
		}
	}
}

// completesRun reports whether placing kind k at (row, col) would form a
// horizontal or vertical run of 3 with already-placed neighbors.
func (e *Engine) completesRun(row, col int, k Kind) bool {
	if col >= 2 && tileKind(e.grid[row][col-1]) == k && tileKind(e.grid[row][col-2]) == k {
		return true
	}
	if row >= 2 && tileKind(e.grid[row-1][col]) == k && tileKind(e.grid[row-2][col]) == k {
		return true
	}
	return false
}

// tileKind returns the kind of a possibly-nil tile.
func tileKind(t *Tile) Kind {
	if t == nil {
		return KindNone
	}
	return t.Kind
}

// randomKind samples an ordinary kind uniformly.
func (e *Engine) randomKind() Kind {
	return KindRuby + Kind(e.rng.Intn(OrdinaryKinds))
}

// newTile creates a tile with a fresh, never-reused identity.
func (e *Engine) newTile(k Kind, row, col int) *Tile {
	e.nextID++
	return &Tile{ID: e.nextID, Kind: k, Row: row, Col: col}
}

// Busy reports whether a swap, detonation, or cascade sequence is in
// flight. While busy all pointer input is ignored; this is the engine's
// sole backpressure mechanism.
func (e *Engine) Busy() bool {
	return e.phase != phaseIdle
}

// Step advances the simulation by one fixed tick.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	e.tick++

	if in.Has(core.ActionPause) {
		e.paused = !e.paused
	}
	if e.paused || e.tooSmall {
		return core.StepResult{State: e.State()}
	}

	e.updateLabels()

	if in.Has(core.ActionRestart) {
		e.resetBoard()
		return core.StepResult{State: e.State()}
	}

	if e.Busy() {
		e.advancePhase()
		return core.StepResult{State: e.State()}
	}

	e.handleInput(in)
	return core.StepResult{State: e.State()}
}

// handleInput interprets one idle-state input frame. The frame may carry
// several queued pointer events plus keyboard actions; processing stops the
// moment one of them commits a swap, so nothing in the same frame can touch
// the selection while tiles are in flight.
func (e *Engine) handleInput(in core.InputFrame) {
	for _, p := range in.Pointers {
		if e.Busy() {
			return
		}
		switch p.Kind {
		case core.PointerDown:
			e.pointerDown(p.X, p.Y)
		case core.PointerMove:
			e.pointerMove(p.X, p.Y)
		case core.PointerUp:
			e.pointerUp(p.X, p.Y)
		}
	}
	if e.Busy() {
		return
	}

	if in.Has(core.ActionBack) {
		e.selected = nil
	}
	e.handleCursor(in)
}

// pointerDown starts a drag on the tile under the pointer, or clears the
// selection when the press lands off the board.
func (e *Engine) pointerDown(x, y int) {
	row, col, ok := e.layout.cellAt(x, y)
	if !ok {
		e.selected = nil
		return
	}
	t := e.grid.At(row, col)
	if t == nil {
		return
	}
	e.dragging = true
	e.dragTile = t
	e.dragX = x
	e.dragY = y
}

// pointerMove commits the drag to a swap attempt once the displacement
// crosses the threshold along the dominant axis.
func (e *Engine) pointerMove(x, y int) {
	if !e.dragging {
		return
	}
	tx, ty := dragDelta(x-e.dragX, y-e.dragY)
	ax, ay := tx, ty
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax < dragThreshold && ay < dragThreshold {
		return
	}

	dRow, dCol := 0, 0
	if ax >= ay {
		if tx > 0 {
			dCol = 1
		} else {
			dCol = -1
		}
	} else {
		if ty > 0 {
			dRow = 1
		} else {
			dRow = -1
		}
	}

	a := e.dragTile
	e.dragging = false
	e.dragTile = nil
	e.selected = nil
	b := e.grid.At(a.Row+dRow, a.Col+dCol) // nil off-board: rejected below
	e.attemptSwap(a, b)
}

// pointerUp below the drag threshold is a tap.
func (e *Engine) pointerUp(x, y int) {
	if !e.dragging {
		return
	}
	t := e.dragTile
	e.dragging = false
	e.dragTile = nil
	e.tap(t)
}

// tap toggles or moves the selection, or triggers a swap attempt when the
// tapped tile is orthogonally adjacent to the current selection.
func (e *Engine) tap(t *Tile) {
	switch {
	case t == nil:
	case e.selected == nil:
		e.selected = t
	case e.selected == t:
		e.selected = nil
	case adjacent(e.selected, t):
		a := e.selected
		e.selected = nil
		e.attemptSwap(a, t)
	default:
		e.selected = t
	}
}

// handleCursor moves the keyboard cursor and routes Confirm through the
// same tap path the pointer uses.
func (e *Engine) handleCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		e.cursorRow = core.Clamp(e.cursorRow-1, 0, BoardSize-1)
	case in.Has(core.ActionDown):
		e.cursorRow = core.Clamp(e.cursorRow+1, 0, BoardSize-1)
	case in.Has(core.ActionLeft):
		e.cursorCol = core.Clamp(e.cursorCol-1, 0, BoardSize-1)
	case in.Has(core.ActionRight):
		e.cursorCol = core.Clamp(e.cursorCol+1, 0, BoardSize-1)
	}
	if in.Has(core.ActionConfirm) {
		e.tap(e.grid.At(e.cursorRow, e.cursorCol))
	}
}

// attemptSwap validates and starts a swap between two tiles. Off-board
// targets, self-swaps, and non-adjacent pairs are rejected without mutating
// any state. A pair with exactly one bomb detonates; a bomb-bomb pair takes
// the ordinary path and reverts on its own since bombs never match.
func (e *Engine) attemptSwap(a, b *Tile) {
	if a == nil || b == nil || a == b || !adjacent(a, b) {
		return
	}

	// The swapped tiles may not survive the cascade; any selection or
	// latched drag referencing them must not outlive this moment.
	e.selected = nil
	e.dragging = false
	e.dragTile = nil

	e.swapA = a
	e.swapB = b
	e.exchange(a, b)

	if (a.Kind == KindBomb) != (b.Kind == KindBomb) {
		if a.Kind == KindBomb {
			e.detonateOn = b.Kind
		} else {
			e.detonateOn = a.Kind
		}
		e.beginPhase(phaseDetonate)
		return
	}

	e.beginPhase(phaseSwap)
}

// exchange swaps two tiles' grid slots and coordinates in place, recording
// animation origins so the move renders as transit rather than a jump.
func (e *Engine) exchange(a, b *Tile) {
	a.startAnim(float64(a.Row), float64(a.Col))
	b.startAnim(float64(b.Row), float64(b.Col))

	e.grid[a.Row][a.Col], e.grid[b.Row][b.Col] = b, a
	a.Row, a.Col, b.Row, b.Col = b.Row, b.Col, a.Row, a.Col
}

// Resize reflows the layout for new screen dimensions without touching the
// simulation.
func (e *Engine) Resize(screenW, screenH int) {
	e.screenW = screenW
	e.screenH = screenH
	e.layout = computeLayout(screenW)
	e.tooSmall = !e.layout.fitsScreen(screenW, screenH)
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// State returns the platform-facing game state. The engine has no game-over
// condition: play continues until the host unmounts it.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		GameOver: false,
		Paused:   e.paused || e.tooSmall,
	}
}

// Package gems implements the Gemfall match-3 engine: an 8x8 board of
// colored gems with swap/match/cascade resolution, combo scoring, and a
// charge-driven bomb mechanic. The engine is a deterministic, tick-driven
// simulation; the platform owns timing, input mapping, and display.
package gems

// Kind is the color/category of a tile: one of five ordinary gem kinds or
// the special bomb kind. KindNone marks an empty snapshot cell.
type Kind int8

const (
	KindNone Kind = iota
	KindRuby
	KindEmerald
	KindSapphire
	KindAmber
	KindAmethyst
	KindBomb
)

// OrdinaryKinds is the number of ordinary (matchable) gem kinds.
const OrdinaryKinds = 5

// ChargeKind is the designated charge color: matched amethyst tiles feed
// the bomb charge counter.
const ChargeKind = KindAmethyst

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRuby:
		return "ruby"
	case KindEmerald:
		return "emerald"
	case KindSapphire:
		return "sapphire"
	case KindAmber:
		return "amber"
	case KindAmethyst:
		return "amethyst"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Ordinary returns true for the five matchable gem kinds.
func (k Kind) Ordinary() bool {
	return k >= KindRuby && k <= KindAmethyst
}

// Tile is a single playable unit on the board. A tile keeps its identity
// for its whole lifetime: movement (swap, fall) mutates Row/Col in place,
// only creation and destruction allocate or drop a tile.
type Tile struct {
	ID   int64
	Kind Kind
	Row  int
	Col  int

	// Visual projection: where the tile is drawn while an animation phase
	// is in flight. When animating is false the tile renders at (Row, Col).
	fromRow   float64
	fromCol   float64
	animating bool
}

// startAnim records the tile's current visual origin before a logical move.
func (t *Tile) startAnim(fromRow, fromCol float64) {
	t.fromRow = fromRow
	t.fromCol = fromCol
	t.animating = true
}

// settleAnim snaps the tile's visual position to its logical cell.
func (t *Tile) settleAnim() {
	t.animating = false
}

// renderPos returns the tile's visual board position for the given phase
// progress in [0, 1].
func (t *Tile) renderPos(progress float64) (row, col float64) {
	if !t.animating {
		return float64(t.Row), float64(t.Col)
	}
	p := easeOutQuad(progress)
	row = t.fromRow + (float64(t.Row)-t.fromRow)*p
	col = t.fromCol + (float64(t.Col)-t.fromCol)*p
	return row, col
}

// adjacent returns true if the two tiles occupy orthogonally adjacent cells
// (Manhattan distance exactly 1).
func adjacent(a, b *Tile) bool {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

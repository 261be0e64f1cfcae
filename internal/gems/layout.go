package gems

// Screen cell footprint of one board cell. The board-to-screen mapping is
// the TUI stand-in for the original's board-to-pixel projection: every tile
// owns a visual position derived from its (row, col) through this layout.
const (
	cellW = 4
	cellH = 2
)

// HUD rows above the board: title, score line, charge bar line.
const hudHeight = 3

// Layout anchors the board and HUD elements on the screen. It is recomputed
// on Reset and on resize; all pointer hit-testing goes through it.
type Layout struct {
	BoardX int // left edge of the board border
	BoardY int // top edge of the board border
	BoardW int // full border width in screen cells
	BoardH int // full border height in screen cells
}

// computeLayout centers the board horizontally below the HUD.
func computeLayout(screenW int) Layout {
	w := BoardSize*cellW + 1
	h := BoardSize*cellH + 1
	x := (screenW - w) / 2
	if x < 0 {
		x = 0
	}
	return Layout{
		BoardX: x,
		BoardY: hudHeight + 1,
		BoardW: w,
		BoardH: h,
	}
}

// fitsScreen reports whether the board, its border, the HUD, and the hint
// line all fit the given dimensions.
func (l Layout) fitsScreen(screenW, screenH int) bool {
	return screenW >= l.BoardW+1 && screenH >= l.BoardY+l.BoardH+2
}

// cellOrigin returns the screen position of a (possibly fractional) board
// position. Fractional positions occur mid-animation.
func (l Layout) cellOrigin(row, col float64) (x, y int) {
	x = l.BoardX + 1 + int(col*cellW+0.5)
	y = l.BoardY + 1 + int(row*cellH+0.5)
	return x, y
}

// cellAt maps a screen position to a board coordinate. ok is false when the
// position falls outside the playable area.
func (l Layout) cellAt(x, y int) (row, col int, ok bool) {
	ix := x - l.BoardX - 1
	iy := y - l.BoardY - 1
	if ix < 0 || iy < 0 {
		return 0, 0, false
	}
	col = ix / cellW
	row = iy / cellH
	if !InBounds(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// dragDelta converts a screen displacement into tile units per axis, so the
// drag threshold is independent of the cell aspect ratio.
func dragDelta(dx, dy int) (tx, ty float64) {
	return float64(dx) / cellW, float64(dy) / cellH
}

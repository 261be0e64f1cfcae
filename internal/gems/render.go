package gems

import (
	"fmt"

	"github.com/vovakirdan/gemfall/internal/core"
)

// Gem glyphs and colors per kind.
var kindGlyphs = map[Kind]rune{
	KindRuby:     '◆',
	KindEmerald:  '●',
	KindSapphire: '▲',
	KindAmber:    '■',
	KindAmethyst: '✦',
	KindBomb:     '✸',
}

var kindColors = map[Kind]core.Color{
	KindRuby:     core.ColorBrightRed,
	KindEmerald:  core.ColorBrightGreen,
	KindSapphire: core.ColorBrightBlue,
	KindAmber:    core.ColorBrightYellow,
	KindAmethyst: core.ColorBrightMagenta,
	KindBomb:     core.ColorOrange,
}

var feedbackColors = map[FeedbackKind]core.Color{
	FeedbackGood:      core.ColorWhite,
	FeedbackSplendid:  core.ColorBrightYellow,
	FeedbackCombo:     core.ColorBrightCyan,
	FeedbackBombReady: core.ColorOrange,
}

// Render draws the engine state to the screen buffer.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	if e.tooSmall {
		e.renderTooSmall(dst)
		return
	}

	e.renderHUD(dst)
	e.renderBoard(dst)
	e.renderLabels(dst)

	if e.paused {
		e.renderPaused(dst)
	}
}

// renderTooSmall shows a "window too small" message; the engine stays
// inert until the host grows the terminal.
func (e *Engine) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (e.screenW - len(msg)) / 2
	y := e.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (e.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, score, and the bomb charge bar with its
// fraction text.
func (e *Engine) renderHUD(dst *core.Screen) {
	l := e.layout

	title := "GEMFALL"
	dst.DrawTextColored(l.BoardX+(l.BoardW-len(title))/2, 0, title, core.ColorBrightWhite)

	dst.DrawText(l.BoardX, 1, fmt.Sprintf("Score: %d", e.score))

	charge, threshold, percent := e.ChargeDisplay()
	chargeText := fmt.Sprintf("%d/%d", charge, threshold)
	barWidth := 14
	filled := barWidth * percent / 100

	barX := l.BoardX
	dst.DrawText(barX, 2, "Bomb ")
	for i := 0; i < barWidth; i++ {
		r := '░'
		if i < filled {
			r = '█'
		}
		dst.SetCell(barX+5+i, 2, r, core.ColorBrightMagenta)
	}
	dst.DrawText(barX+5+barWidth+1, 2, chargeText)

	if e.pendingBombs > 0 {
		dst.DrawTextColored(barX+5+barWidth+1+len(chargeText)+2, 2,
			fmt.Sprintf("queued: %d", e.pendingBombs), core.ColorOrange)
	}
}

// renderBoard draws the border, the tiles at their interpolated positions,
// and the cursor/selection markers.
func (e *Engine) renderBoard(dst *core.Screen) {
	l := e.layout
	dst.DrawBox(core.NewRect(l.BoardX, l.BoardY, l.BoardW+1, l.BoardH+1))

	progress := e.phaseProgress()
	shrinking := e.phase == phaseClear

	e.grid.forEach(func(t *Tile) {
		row, col := t.renderPos(progress)
		x, y := l.cellOrigin(row, col)
		x++ // center the glyph in its 4-cell-wide slot

		glyph := kindGlyphs[t.Kind]
		color := kindColors[t.Kind]

		if shrinking && e.matched.Contains(t) {
			switch {
			case progress > 0.7:
				return // popped
			case progress > 0.35:
				glyph = '·'
			}
		}

		// Spawned tiles above the border stay hidden until they enter.
		if y <= l.BoardY {
			return
		}

		dst.SetCell(x, y, glyph, color)

		if t == e.selected {
			dst.SetCell(x-1, y, '[', core.ColorBrightWhite)
			dst.SetCell(x+1, y, ']', core.ColorBrightWhite)
		}
	})

	// Keyboard cursor markers, drawn under selection brackets.
	cx, cy := l.cellOrigin(float64(e.cursorRow), float64(e.cursorCol))
	cx++
	if cur := e.grid.At(e.cursorRow, e.cursorCol); cur == nil || cur != e.selected {
		dst.SetCell(cx-1, cy, '>', core.ColorGray)
		dst.SetCell(cx+1, cy, '<', core.ColorGray)
	}

	hint := e.Controls()
	dst.DrawTextColored((e.screenW-len(hint))/2, l.BoardY+l.BoardH+1, hint, core.ColorGray)
}

// renderLabels draws floating feedback text drifting up from its anchor.
func (e *Engine) renderLabels(dst *core.Screen) {
	l := e.layout
	for _, lb := range e.labels {
		elapsed := lb.lifetime - lb.ticksLeft
		rise := elapsed / 12
		x, y := l.cellOrigin(lb.row, lb.col)
		x -= len(lb.text) / 2
		y -= rise
		if y <= l.BoardY {
			y = l.BoardY + 1
		}
		dst.DrawTextColored(x, y, lb.text, feedbackColors[lb.kind])
	}
}

// renderPaused draws the pause overlay.
func (e *Engine) renderPaused(dst *core.Screen) {
	l := e.layout
	cx := l.BoardX + l.BoardW/2
	cy := l.BoardY + l.BoardH/2

	lines := []string{"PAUSED", "Press P to resume"}
	boxW := len(lines[1]) + 4
	boxH := len(lines) + 2
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints shown under the board.
func (e *Engine) Controls() string {
	return "drag/tap to swap | arrows+enter select | P pause | R restart | Q quit"
}

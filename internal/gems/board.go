package gems

// BoardSize is the fixed board dimension. The grid is 8x8 for the whole
// lifetime of the engine.
const BoardSize = 8

// Grid is the board: an 8x8 array of tile references, nil meaning empty.
// Indexed [row][col], row 0 at the top.
type Grid [BoardSize][BoardSize]*Tile

// At returns the tile at (row, col), nil for empty or out-of-bounds cells.
func (g *Grid) At(row, col int) *Tile {
	if !InBounds(row, col) {
		return nil
	}
	return g[row][col]
}

// InBounds returns true if (row, col) is a valid board coordinate.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// forEach calls fn for every non-empty cell in row-major order.
func (g *Grid) forEach(fn func(t *Tile)) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if g[row][col] != nil {
				fn(g[row][col])
			}
		}
	}
}

// collectKind returns all tiles of the given kind in row-major order.
func (g *Grid) collectKind(k Kind) []*Tile {
	var tiles []*Tile
	g.forEach(func(t *Tile) {
		if t.Kind == k {
			tiles = append(tiles, t)
		}
	})
	return tiles
}

// compact collapses every column downward into its empty cells, preserving
// relative vertical order. Moved tiles keep their identity; Row is updated
// in place and an animation origin is recorded. Returns true if any tile
// moved.
func (g *Grid) compact() bool {
	moved := false
	for col := 0; col < BoardSize; col++ {
		write := BoardSize - 1
		for row := BoardSize - 1; row >= 0; row-- {
			t := g[row][col]
			if t == nil {
				continue
			}
			if row != write {
				g[write][col] = t
				g[row][col] = nil
				t.startAnim(float64(t.Row), float64(t.Col))
				t.Row = write
				moved = true
			}
			write--
		}
	}
	return moved
}

// emptyCellsTopDown returns the empty cells of the given column ordered
// top to bottom. After a compact pass these are always the topmost cells.
func (g *Grid) emptyCellsTopDown(col int) []int {
	var rows []int
	for row := 0; row < BoardSize; row++ {
		if g[row][col] == nil {
			rows = append(rows, row)
		}
	}
	return rows
}

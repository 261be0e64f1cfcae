package gems

// MatchSet is the set of tiles cleared together in one resolution step,
// unioned from one or more same-kind runs of length >= 3. Tiles matched in
// both directions appear once; discovery order is stable (rows first, then
// columns) for deterministic feedback placement.
type MatchSet struct {
	tiles      []*Tile
	seen       map[int64]bool
	longestRun int
}

// Empty returns true if no tiles matched.
func (m *MatchSet) Empty() bool {
	return len(m.tiles) == 0
}

// Size returns the number of distinct matched tiles.
func (m *MatchSet) Size() int {
	return len(m.tiles)
}

// Tiles returns the matched tiles in discovery order.
func (m *MatchSet) Tiles() []*Tile {
	return m.tiles
}

// LongestRun returns the length of the longest single run in the set.
func (m *MatchSet) LongestRun() int {
	return m.longestRun
}

// CountKind returns how many matched tiles have the given kind.
func (m *MatchSet) CountKind(k Kind) int {
	n := 0
	for _, t := range m.tiles {
		if t.Kind == k {
			n++
		}
	}
	return n
}

// Contains reports whether the tile is part of the set.
func (m *MatchSet) Contains(t *Tile) bool {
	if t == nil || m.seen == nil {
		return false
	}
	return m.seen[t.ID]
}

// add unions tiles into the set, deduplicating by tile identity.
func (m *MatchSet) add(tiles ...*Tile) {
	if m.seen == nil {
		m.seen = make(map[int64]bool)
	}
	for _, t := range tiles {
		if t == nil || m.seen[t.ID] {
			continue
		}
		m.seen[t.ID] = true
		m.tiles = append(m.tiles, t)
	}
}

// addRun unions a run and tracks the longest run length.
func (m *MatchSet) addRun(run []*Tile) {
	if len(run) > m.longestRun {
		m.longestRun = len(run)
	}
	m.add(run...)
}

// FindMatches scans all rows and columns for maximal runs of >= 3
// consecutive identical ordinary kinds and unions them into one match set.
// Bomb tiles never form or extend a run.
func FindMatches(g *Grid) MatchSet {
	var m MatchSet

	// Horizontal runs
	for row := 0; row < BoardSize; row++ {
		col := 0
		for col < BoardSize {
			start := col
			t := g[row][col]
			for col < BoardSize && sameRunKind(t, g[row][col]) {
				col++
			}
			if t != nil && t.Kind.Ordinary() && col-start >= 3 {
				run := make([]*Tile, 0, col-start)
				for i := start; i < col; i++ {
					run = append(run, g[row][i])
				}
				m.addRun(run)
			}
			if col == start {
				col++
			}
		}
	}

	// Vertical runs
	for col := 0; col < BoardSize; col++ {
		row := 0
		for row < BoardSize {
			start := row
			t := g[row][col]
			for row < BoardSize && sameRunKind(t, g[row][col]) {
				row++
			}
			if t != nil && t.Kind.Ordinary() && row-start >= 3 {
				run := make([]*Tile, 0, row-start)
				for i := start; i < row; i++ {
					run = append(run, g[i][col])
				}
				m.addRun(run)
			}
			if row == start {
				row++
			}
		}
	}

	return m
}

// sameRunKind reports whether other continues a run started by ref.
// Empty cells and bombs never continue a run.
func sameRunKind(ref, other *Tile) bool {
	if ref == nil || other == nil {
		return false
	}
	if !ref.Kind.Ordinary() || !other.Kind.Ordinary() {
		return false
	}
	return ref.Kind == other.Kind
}

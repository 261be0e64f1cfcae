package gems

import "testing"

func TestCompactPreservesOrderAndIdentity(t *testing.T) {
	var g Grid
	// Column 3: tiles at rows 1, 4, 6 with holes between them.
	a := &Tile{ID: 1, Kind: KindRuby, Row: 1, Col: 3}
	b := &Tile{ID: 2, Kind: KindEmerald, Row: 4, Col: 3}
	c := &Tile{ID: 3, Kind: KindSapphire, Row: 6, Col: 3}
	g[1][3] = a
	g[4][3] = b
	g[6][3] = c

	if !g.compact() {
		t.Fatal("compact should report movement")
	}

	// Relative vertical order preserved, all settled at the bottom.
	if g[5][3] != a || g[6][3] != b || g[7][3] != c {
		t.Errorf("compacted column order wrong: got rows a=%d b=%d c=%d", a.Row, b.Row, c.Row)
	}
	if a.Row != 5 || b.Row != 6 || c.Row != 7 {
		t.Errorf("tile rows not updated in place: a=%d b=%d c=%d", a.Row, b.Row, c.Row)
	}
	// Same tile objects, same identities.
	if a.ID != 1 || b.ID != 2 || c.ID != 3 {
		t.Error("compact must move tiles, not recreate them")
	}
	// Vacated cells are empty.
	for row := 0; row < 5; row++ {
		if g[row][3] != nil {
			t.Errorf("cell (%d,3) should be empty after compact", row)
		}
	}
}

func TestCompactFullColumnNoMovement(t *testing.T) {
	g := gridFromKinds(patternKinds())
	if g.compact() {
		t.Error("compact on a full board should report no movement")
	}
}

func TestCompactIndependentColumns(t *testing.T) {
	g := gridFromKinds(patternKinds())
	// Punch holes in two columns at different heights.
	g[7][0] = nil
	g[3][5] = nil

	if !g.compact() {
		t.Fatal("compact should report movement")
	}

	// Holes rise to the top of their own columns only.
	if g[0][0] != nil {
		t.Error("column 0 hole should surface at row 0")
	}
	if g[0][5] != nil {
		t.Error("column 5 hole should surface at row 0")
	}
	for col := 0; col < BoardSize; col++ {
		empty := g.emptyCellsTopDown(col)
		want := 0
		if col == 0 || col == 5 {
			want = 1
		}
		if len(empty) != want {
			t.Errorf("column %d empty cells = %d, want %d", col, len(empty), want)
		}
	}
}

func TestGridAtBounds(t *testing.T) {
	g := gridFromKinds(patternKinds())
	if g.At(-1, 0) != nil || g.At(0, -1) != nil || g.At(BoardSize, 0) != nil || g.At(0, BoardSize) != nil {
		t.Error("At should return nil for out-of-bounds coordinates")
	}
	if g.At(0, 0) == nil {
		t.Error("At should return the tile for a valid cell")
	}
}

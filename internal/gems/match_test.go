package gems

import "testing"

// patternKinds returns a full board with no runs anywhere: along a row
// adjacent kinds differ by 2 mod 5, along a column by 1 mod 5. Tests
// override individual cells to stage scenarios.
func patternKinds() [BoardSize][BoardSize]Kind {
	var kinds [BoardSize][BoardSize]Kind
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			kinds[r][c] = KindRuby + Kind((r+2*c)%OrdinaryKinds)
		}
	}
	return kinds
}

// gridFromKinds builds a grid with sequential tile IDs; KindNone cells
// stay empty.
func gridFromKinds(kinds [BoardSize][BoardSize]Kind) Grid {
	var g Grid
	id := int64(0)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if kinds[r][c] == KindNone {
				continue
			}
			id++
			g[r][c] = &Tile{ID: id, Kind: kinds[r][c], Row: r, Col: c}
		}
	}
	return g
}

func TestFindMatchesNoneOnPatternBoard(t *testing.T) {
	g := gridFromKinds(patternKinds())
	m := FindMatches(&g)
	if !m.Empty() {
		t.Errorf("pattern board should have no matches, got %d tiles", m.Size())
	}
}

func TestFindMatchesHorizontalRun(t *testing.T) {
	kinds := patternKinds()
	kinds[3][2] = KindRuby
	kinds[3][3] = KindRuby
	kinds[3][4] = KindRuby
	// (3,1) is ruby in the base pattern and would extend the run
	kinds[3][1] = KindEmerald
	// Break accidental verticals created by the overrides
	kinds[4][2] = KindEmerald
	kinds[4][3] = KindSapphire
	kinds[4][4] = KindAmber
	kinds[2][2] = KindAmber
	kinds[2][3] = KindEmerald
	kinds[2][4] = KindSapphire

	g := gridFromKinds(kinds)
	m := FindMatches(&g)

	if m.Size() != 3 {
		t.Fatalf("match size = %d, want 3", m.Size())
	}
	if m.LongestRun() != 3 {
		t.Errorf("longest run = %d, want 3", m.LongestRun())
	}
	for _, tile := range m.Tiles() {
		if tile.Row != 3 || tile.Col < 2 || tile.Col > 4 {
			t.Errorf("unexpected tile in match at (%d,%d)", tile.Row, tile.Col)
		}
	}
}

func TestFindMatchesVerticalRun(t *testing.T) {
	kinds := patternKinds()
	// Rows 0 and 5 at col 6 are sapphire in the base pattern, so a sapphire
	// column here would run 6 long; amber keeps the staged run at exactly 4.
	for r := 1; r <= 4; r++ {
		kinds[r][6] = KindAmber
	}
	g := gridFromKinds(kinds)
	m := FindMatches(&g)

	if m.Size() != 4 {
		t.Fatalf("match size = %d, want 4", m.Size())
	}
	if m.LongestRun() != 4 {
		t.Errorf("longest run = %d, want 4", m.LongestRun())
	}
}

func TestFindMatchesCrossDeduplicates(t *testing.T) {
	kinds := patternKinds()
	// Horizontal run at row 2, cols 1-3 and vertical run at col 1, rows 2-4
	// share the tile at (2,1): union must count it once.
	kinds[2][1] = KindAmber
	kinds[2][2] = KindAmber
	kinds[2][3] = KindAmber
	kinds[3][1] = KindAmber
	kinds[4][1] = KindAmber
	// Break collaterals
	kinds[1][1] = KindRuby
	kinds[5][1] = KindRuby
	kinds[1][2] = KindSapphire
	kinds[3][2] = KindEmerald
	kinds[1][3] = KindEmerald
	kinds[3][3] = KindRuby
	kinds[2][0] = KindEmerald
	kinds[2][4] = KindEmerald
	kinds[3][0] = KindSapphire
	kinds[4][0] = KindEmerald
	kinds[4][2] = KindRuby

	g := gridFromKinds(kinds)
	m := FindMatches(&g)

	if m.Size() != 5 {
		t.Fatalf("cross match size = %d, want 5 (shared corner once)", m.Size())
	}
}

func TestFindMatchesBombsNeverMatch(t *testing.T) {
	kinds := patternKinds()
	kinds[5][2] = KindBomb
	kinds[5][3] = KindBomb
	kinds[5][4] = KindBomb

	g := gridFromKinds(kinds)
	m := FindMatches(&g)

	if !m.Empty() {
		t.Errorf("a run of bombs must not match, got %d tiles", m.Size())
	}
}

func TestFindMatchesBombBreaksRun(t *testing.T) {
	kinds := patternKinds()
	kinds[6][1] = KindEmerald
	kinds[6][2] = KindBomb
	kinds[6][3] = KindEmerald
	kinds[6][4] = KindEmerald
	// Two emeralds on each side of the bomb: no run of 3.
	kinds[6][0] = KindRuby
	kinds[6][5] = KindRuby

	g := gridFromKinds(kinds)
	m := FindMatches(&g)

	if !m.Empty() {
		t.Errorf("bomb must not extend a run, got %d matched tiles", m.Size())
	}
}

func TestMatchSetCountKind(t *testing.T) {
	var m MatchSet
	m.add(
		&Tile{ID: 1, Kind: KindAmethyst},
		&Tile{ID: 2, Kind: KindAmethyst},
		&Tile{ID: 3, Kind: KindRuby},
	)
	if got := m.CountKind(KindAmethyst); got != 2 {
		t.Errorf("CountKind(amethyst) = %d, want 2", got)
	}
	// Re-adding the same identity must not grow the set
	m.add(&Tile{ID: 2, Kind: KindAmethyst})
	if m.Size() != 3 {
		t.Errorf("set size after duplicate add = %d, want 3", m.Size())
	}
}

package game

import "testing"

func TestNextCellEntries(t *testing.T) {
	next, finished := NextCell(CellBottomRight, true)
	if next != CellRight0 || finished {
		t.Errorf("entering from start: got (%s, %v), want (Right0, false)", next, finished)
	}

	next, finished = NextCell(CellBottomRight, false)
	if !finished {
		t.Errorf("passing BottomRight on the board should finish, got (%s, %v)", next, finished)
	}

	next, _ = NextCell(CellTopRight, false)
	if next != CellAntiDiagonal0 {
		t.Errorf("TopRight should enter the anti diagonal, got %s", next)
	}
	next, _ = NextCell(CellTopLeft, false)
	if next != CellMainDiagonal0 {
		t.Errorf("TopLeft should enter the main diagonal, got %s", next)
	}
	next, _ = NextCell(CellCenter, false)
	if next != CellMainDiagonal2 {
		t.Errorf("Center default step should be MainDiagonal2, got %s", next)
	}
}

func TestNextPassingCellCenter(t *testing.T) {
	next, finished := NextPassingCell(CellMainDiagonal1, CellCenter)
	if next != CellMainDiagonal2 || finished {
		t.Errorf("Center from main diagonal: got (%s, %v)", next, finished)
	}
	next, finished = NextPassingCell(CellAntiDiagonal1, CellCenter)
	if next != CellAntiDiagonal2 || finished {
		t.Errorf("Center from anti diagonal: got (%s, %v)", next, finished)
	}
	_, finished = NextPassingCell(CellBottom3, CellBottomRight)
	if !finished {
		t.Error("passing BottomRight must always finish")
	}
}

func TestPrevCellMergePoints(t *testing.T) {
	merges := map[Cell][2]Cell{
		CellBottomRight: {CellBottom3, CellMainDiagonal3},
		CellBottomLeft:  {CellLeft3, CellAntiDiagonal3},
		CellCenter:      {CellMainDiagonal1, CellAntiDiagonal1},
	}
	for c := Cell(0); c < CellCount; c++ {
		prevA, prevB := PrevCell(c)
		if want, ok := merges[c]; ok {
			if prevA != want[0] || prevB != want[1] {
				t.Errorf("%s: got preds (%s, %s), want (%s, %s)", c, prevA, prevB, want[0], want[1])
			}
			continue
		}
		if prevA != prevB {
			t.Errorf("%s: non-merge cell returned distinct preds (%s, %s)", c, prevA, prevB)
		}
	}
}

// Every predecessor must have a forward step that arrives back at the cell,
// either as a fresh move or while passing through.
func TestPrevNextConsistency(t *testing.T) {
	reaches := func(from, to Cell) bool {
		if next, _ := NextCell(from, from == CellBottomRight); next == to {
			return true
		}
		ppA, ppB := PrevCell(from)
		if next, _ := NextPassingCell(ppA, from); next == to {
			return true
		}
		if next, _ := NextPassingCell(ppB, from); next == to {
			return true
		}
		return false
	}
	for c := Cell(0); c < CellCount; c++ {
		prevA, prevB := PrevCell(c)
		for _, prev := range []Cell{prevA, prevB} {
			if !reaches(prev, c) {
				t.Errorf("no forward step from %s reaches %s", prev, c)
			}
		}
	}
}

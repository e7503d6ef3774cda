package game

// MoveSequence computes the cells a piece visits for a given roll. For a
// positive roll there is a single path: one NextCell step using the piece's
// at-start flag, then roll-1 passing steps, stopping early when a step
// crosses the finish line. For the back-up roll (-1) the paths hold the one
// or two predecessor cells as alternative landing cells; a piece still at
// start cannot back up and gets empty paths. The terminal cell of each
// non-empty path is a legal landing target.
func MoveSequence(piece Piece, roll int) (pathA, pathB []Cell, finish bool) {
	if roll == -1 {
		if piece.AtStart {
			return nil, nil, false
		}
		backA, backB := PrevCell(piece.Cell)
		return []Cell{backA}, []Cell{backB}, false
	}

	prev := piece.Cell
	next, fin := NextCell(piece.Cell, piece.AtStart)
	pathA = append(pathA, next)
	if fin {
		return pathA, nil, true
	}
	for i := 1; i < roll; i++ {
		cell, fin := NextPassingCell(prev, pathA[i-1])
		prev = pathA[i-1]
		pathA = append(pathA, cell)
		if fin {
			return pathA, nil, true
		}
	}
	return pathA, nil, false
}

// legalTarget reports whether cell is the terminal cell of a non-empty path
// of MoveSequence(piece, roll), along with the finish flag of that sequence.
func legalTarget(piece Piece, roll int, cell Cell) (bool, bool) {
	pathA, pathB, finish := MoveSequence(piece, roll)
	if len(pathA) != 0 && pathA[len(pathA)-1] == cell {
		return true, finish
	}
	if len(pathB) != 0 && pathB[len(pathB)-1] == cell {
		return true, finish
	}
	return false, false
}

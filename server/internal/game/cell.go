package game

// Cell identifies one of the 29 positions on the Yutnori board. The ordinal
// is the wire encoding, so the order below must never change.
type Cell uint8

const (
	CellBottomRight Cell = iota
	CellRight0
	CellRight1
	CellRight2
	CellRight3
	CellTopRight
	CellTop0
	CellTop1
	CellTop2
	CellTop3
	CellTopLeft
	CellLeft0
	CellLeft1
	CellLeft2
	CellLeft3
	CellBottomLeft
	CellBottom0
	CellBottom1
	CellBottom2
	CellBottom3
	CellMainDiagonal0
	CellMainDiagonal1
	CellMainDiagonal2
	CellMainDiagonal3
	CellAntiDiagonal0
	CellAntiDiagonal1
	CellAntiDiagonal2
	CellAntiDiagonal3
	CellCenter
)

// CellCount is the number of board positions.
const CellCount = 29

var cellNames = [CellCount]string{
	"BottomRight",
	"Right0", "Right1", "Right2", "Right3",
	"TopRight",
	"Top0", "Top1", "Top2", "Top3",
	"TopLeft",
	"Left0", "Left1", "Left2", "Left3",
	"BottomLeft",
	"Bottom0", "Bottom1", "Bottom2", "Bottom3",
	"MainDiagonal0", "MainDiagonal1", "MainDiagonal2", "MainDiagonal3",
	"AntiDiagonal0", "AntiDiagonal1", "AntiDiagonal2", "AntiDiagonal3",
	"Center",
}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "Unknown"
}

// Valid reports whether c names an actual board position.
func (c Cell) Valid() bool {
	return int(c) < CellCount
}

// NextCell returns the default forward step from a cell, together with a
// flag reporting that the step crosses the finish line. BottomRight is both
// the entry cell (when the piece is still at start) and the finish gateway.
// The corners TopRight and TopLeft enter the diagonal shortcuts; a piece
// sitting on Center continues onto the main diagonal by default.
func NextCell(c Cell, atStart bool) (Cell, bool) {
	switch c {
	case CellBottomRight:
		if atStart {
			return CellRight0, false
		}
		return CellBottomRight, true
	case CellRight0:
		return CellRight1, false
	case CellRight1:
		return CellRight2, false
	case CellRight2:
		return CellRight3, false
	case CellRight3:
		return CellTopRight, false
	case CellTopRight:
		return CellAntiDiagonal0, false
	case CellTop0:
		return CellTop1, false
	case CellTop1:
		return CellTop2, false
	case CellTop2:
		return CellTop3, false
	case CellTop3:
		return CellTopLeft, false
	case CellTopLeft:
		return CellMainDiagonal0, false
	case CellLeft0:
		return CellLeft1, false
	case CellLeft1:
		return CellLeft2, false
	case CellLeft2:
		return CellLeft3, false
	case CellLeft3:
		return CellBottomLeft, false
	case CellBottomLeft:
		return CellBottom0, false
	case CellBottom0:
		return CellBottom1, false
	case CellBottom1:
		return CellBottom2, false
	case CellBottom2:
		return CellBottom3, false
	case CellBottom3:
		return CellBottomRight, false
	case CellMainDiagonal0:
		return CellMainDiagonal1, false
	case CellMainDiagonal1:
		return CellCenter, false
	case CellMainDiagonal2:
		return CellMainDiagonal3, false
	case CellMainDiagonal3:
		return CellBottomRight, false
	case CellAntiDiagonal0:
		return CellAntiDiagonal1, false
	case CellAntiDiagonal1:
		return CellCenter, false
	case CellAntiDiagonal2:
		return CellAntiDiagonal3, false
	case CellAntiDiagonal3:
		return CellBottomLeft, false
	case CellCenter:
		return CellMainDiagonal2, false
	}
	return CellBottomRight, false
}

// NextPassingCell returns the step taken while passing through a cell rather
// than starting a move on it. It differs from NextCell in two places:
// passing over BottomRight always finishes, and leaving Center depends on
// which diagonal the piece arrived from.
func NextPassingCell(prev, c Cell) (Cell, bool) {
	switch c {
	case CellBottomRight:
		return CellBottomRight, true
	case CellRight0:
		return CellRight1, false
	case CellRight1:
		return CellRight2, false
	case CellRight2:
		return CellRight3, false
	case CellRight3:
		return CellTopRight, false
	case CellTopRight:
		return CellTop0, false
	case CellTop0:
		return CellTop1, false
	case CellTop1:
		return CellTop2, false
	case CellTop2:
		return CellTop3, false
	case CellTop3:
		return CellTopLeft, false
	case CellTopLeft:
		return CellLeft0, false
	case CellLeft0:
		return CellLeft1, false
	case CellLeft1:
		return CellLeft2, false
	case CellLeft2:
		return CellLeft3, false
	case CellLeft3:
		return CellBottomLeft, false
	case CellBottomLeft:
		return CellBottom0, false
	case CellBottom0:
		return CellBottom1, false
	case CellBottom1:
		return CellBottom2, false
	case CellBottom2:
		return CellBottom3, false
	case CellBottom3:
		return CellBottomRight, false
	case CellMainDiagonal0:
		return CellMainDiagonal1, false
	case CellMainDiagonal1:
		return CellCenter, false
	case CellMainDiagonal2:
		return CellMainDiagonal3, false
	case CellMainDiagonal3:
		return CellBottomRight, false
	case CellAntiDiagonal0:
		return CellAntiDiagonal1, false
	case CellAntiDiagonal1:
		return CellCenter, false
	case CellAntiDiagonal2:
		return CellAntiDiagonal3, false
	case CellAntiDiagonal3:
		return CellBottomLeft, false
	case CellCenter:
		if prev == CellMainDiagonal1 {
			return CellMainDiagonal2, false
		} else if prev == CellAntiDiagonal1 {
			return CellAntiDiagonal2, false
		}
	}
	return CellBottomRight, false
}

// PrevCell returns the one or two predecessors of a cell. Only the cells
// where two paths merge (BottomRight, BottomLeft, Center) have two distinct
// predecessors; everywhere else the same cell is returned twice.
func PrevCell(c Cell) (Cell, Cell) {
	switch c {
	case CellBottomRight:
		return CellBottom3, CellMainDiagonal3
	case CellRight0:
		return CellBottomRight, CellBottomRight
	case CellRight1:
		return CellRight0, CellRight0
	case CellRight2:
		return CellRight1, CellRight1
	case CellRight3:
		return CellRight2, CellRight2
	case CellTopRight:
		return CellRight3, CellRight3
	case CellTop0:
		return CellTopRight, CellTopRight
	case CellTop1:
		return CellTop0, CellTop0
	case CellTop2:
		return CellTop1, CellTop1
	case CellTop3:
		return CellTop2, CellTop2
	case CellTopLeft:
		return CellTop3, CellTop3
	case CellLeft0:
		return CellTopLeft, CellTopLeft
	case CellLeft1:
		return CellLeft0, CellLeft0
	case CellLeft2:
		return CellLeft1, CellLeft1
	case CellLeft3:
		return CellLeft2, CellLeft2
	case CellBottomLeft:
		return CellLeft3, CellAntiDiagonal3
	case CellBottom0:
		return CellBottomLeft, CellBottomLeft
	case CellBottom1:
		return CellBottom0, CellBottom0
	case CellBottom2:
		return CellBottom1, CellBottom1
	case CellBottom3:
		return CellBottom2, CellBottom2
	case CellMainDiagonal0:
		return CellTopLeft, CellTopLeft
	case CellMainDiagonal1:
		return CellMainDiagonal0, CellMainDiagonal0
	case CellMainDiagonal2:
		return CellCenter, CellCenter
	case CellMainDiagonal3:
		return CellMainDiagonal2, CellMainDiagonal2
	case CellAntiDiagonal0:
		return CellTopRight, CellTopRight
	case CellAntiDiagonal1:
		return CellAntiDiagonal0, CellAntiDiagonal0
	case CellAntiDiagonal2:
		return CellCenter, CellCenter
	case CellAntiDiagonal3:
		return CellAntiDiagonal2, CellAntiDiagonal2
	case CellCenter:
		return CellMainDiagonal1, CellAntiDiagonal1
	}
	return CellBottomRight, CellBottomRight
}

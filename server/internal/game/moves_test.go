package game

import (
	"reflect"
	"testing"
)

func TestMoveSequenceFromStart(t *testing.T) {
	piece := Piece{AtStart: true, Cell: CellBottomRight}
	pathA, pathB, finish := MoveSequence(piece, 3)
	want := []Cell{CellRight0, CellRight1, CellRight2}
	if !reflect.DeepEqual(pathA, want) {
		t.Errorf("pathA = %v, want %v", pathA, want)
	}
	if len(pathB) != 0 || finish {
		t.Errorf("pathB = %v, finish = %v, want empty and false", pathB, finish)
	}
}

func TestMoveSequenceBackUp(t *testing.T) {
	pathA, pathB, _ := MoveSequence(Piece{Cell: CellRight1}, -1)
	if !reflect.DeepEqual(pathA, []Cell{CellRight0}) || !reflect.DeepEqual(pathB, []Cell{CellRight0}) {
		t.Errorf("back-up from Right1: got %v / %v", pathA, pathB)
	}

	pathA, pathB, _ = MoveSequence(Piece{Cell: CellCenter}, -1)
	if !reflect.DeepEqual(pathA, []Cell{CellMainDiagonal1}) || !reflect.DeepEqual(pathB, []Cell{CellAntiDiagonal1}) {
		t.Errorf("back-up from Center: got %v / %v", pathA, pathB)
	}

	pathA, pathB, _ = MoveSequence(Piece{AtStart: true, Cell: CellBottomRight}, -1)
	if len(pathA) != 0 || len(pathB) != 0 {
		t.Errorf("back-up at start should yield empty paths, got %v / %v", pathA, pathB)
	}
}

func TestMoveSequenceDiagonalCrossing(t *testing.T) {
	// Passing through Center continues on the diagonal the piece came from.
	pathA, _, finish := MoveSequence(Piece{Cell: CellAntiDiagonal0}, 3)
	want := []Cell{CellAntiDiagonal1, CellCenter, CellAntiDiagonal2}
	if !reflect.DeepEqual(pathA, want) || finish {
		t.Errorf("got %v (finish=%v), want %v", pathA, finish, want)
	}
}

func TestMoveSequenceFinish(t *testing.T) {
	pathA, _, finish := MoveSequence(Piece{Cell: CellBottomRight}, 1)
	if !finish {
		t.Fatal("moving off BottomRight should finish")
	}
	if len(pathA) == 0 || pathA[len(pathA)-1] != CellBottomRight {
		t.Errorf("terminal cell = %v, want BottomRight", pathA)
	}

	// A roll overshooting the finish line stops early.
	pathA, _, finish = MoveSequence(Piece{Cell: CellBottom3}, 5)
	if !finish || len(pathA) != 2 {
		t.Errorf("overshoot from Bottom3: got %v (finish=%v), want 2 steps finishing", pathA, finish)
	}
}

func TestLegalTarget(t *testing.T) {
	piece := Piece{AtStart: true, Cell: CellBottomRight}
	if ok, _ := legalTarget(piece, 3, CellRight2); !ok {
		t.Error("Right2 should be legal for roll 3 from start")
	}
	if ok, _ := legalTarget(piece, 3, CellRight1); ok {
		t.Error("Right1 is not the terminal cell for roll 3 from start")
	}

	// Both predecessors of Center are legal back-up targets.
	center := Piece{Cell: CellCenter}
	if ok, _ := legalTarget(center, -1, CellMainDiagonal1); !ok {
		t.Error("MainDiagonal1 should be a legal back-up from Center")
	}
	if ok, _ := legalTarget(center, -1, CellAntiDiagonal1); !ok {
		t.Error("AntiDiagonal1 should be a legal back-up from Center")
	}
}

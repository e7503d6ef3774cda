package game

// ClientID is the opaque identity handed to every accepted connection.
type ClientID string

// RoomID identifies a room for as long as it has members.
type RoomID string

const (
	MaxPlayerCount = 6
	MinPlayerCount = 2
	MaxPieceCount  = 6
	MinPieceCount  = 2
)

// Piece is one of a player's tokens. A piece that has not entered the board
// yet sits at BottomRight with AtStart set; a finished piece never has
// AtStart set.
type Piece struct {
	AtStart  bool
	Finished bool
	Cell     Cell
}

// Move is a (roll, piece index, landing cell) triple as submitted by the
// turn player.
type Move struct {
	Roll  int
	Piece int
	Cell  Cell
}

// State enumerates the phases of the per-room state machine. The zero value
// is GameEnded, which doubles as the lobby state.
type State uint8

const (
	StateGameEnded State = iota
	StateGameStarted
	StateBeginTurn
	StateEndTurn
	StateCanRoll
	StateBeginRoll
	StateEndRoll
	StateBeginMove
	StateEndMove
	StateSelectingMove
)

func (s State) String() string {
	switch s {
	case StateGameEnded:
		return "GameEnded"
	case StateGameStarted:
		return "GameStarted"
	case StateBeginTurn:
		return "BeginTurn"
	case StateEndTurn:
		return "EndTurn"
	case StateCanRoll:
		return "CanRoll"
	case StateBeginRoll:
		return "BeginRoll"
	case StateEndRoll:
		return "EndRoll"
	case StateBeginMove:
		return "BeginMove"
	case StateEndMove:
		return "EndMove"
	case StateSelectingMove:
		return "SelectingMove"
	}
	return "Unknown"
}

// Player is a room member together with its game-side state. Only
// Pieces[0:pieceCount] participate in a given game; the rest are inert.
type Player struct {
	ID      ClientID
	Name    string
	IsReady bool
	Pieces  [MaxPieceCount]Piece
}

func homePieces() [MaxPieceCount]Piece {
	var ps [MaxPieceCount]Piece
	for i := range ps {
		ps[i] = Piece{AtStart: true, Cell: CellBottomRight}
	}
	return ps
}

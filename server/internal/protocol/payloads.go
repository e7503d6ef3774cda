package protocol

import "github.com/phuhao00/yutnori-server/server/internal/game"

// Outbound payload structs, one per server-sent frame kind. Field tags are
// the wire contract; negative responses reuse the same struct with its zero
// values.

type KeepaliveMessage struct{}

func (KeepaliveMessage) Kind() MessageType { return MessageTypeKeepalive }

type ConnectResponse struct {
	ClientID game.ClientID `json:"client_id"`
}

func (ConnectResponse) Kind() MessageType { return MessageTypeConnect }

type CreateRoomResponse struct {
	RoomID game.RoomID `json:"room_id"`
}

func (CreateRoomResponse) Kind() MessageType { return MessageTypeCreateRoom }

type ExitRoomResponse struct {
	Exit bool `json:"exit"`
}

func (ExitRoomResponse) Kind() MessageType { return MessageTypeExitRoom }

type SetPieceCountResponse struct {
	PieceCount uint8 `json:"piece_count"`
	ShouldSet  bool  `json:"should_set"`
}

func (SetPieceCountResponse) Kind() MessageType { return MessageTypeSetPieceCount }

type PlayerLeftResponse struct {
	Player game.ClientID `json:"player"`
	Master game.ClientID `json:"master"`
	Kicked bool          `json:"kicked"`
}

func (PlayerLeftResponse) Kind() MessageType { return MessageTypePlayerLeft }

// PlayerRoomState is the per-member entry of the room snapshot a joiner
// receives.
type PlayerRoomState struct {
	ClientID game.ClientID `json:"client_id"`
	Name     string        `json:"name"`
	IsReady  bool          `json:"is_ready"`
}

type JoinRoomResponse struct {
	RoomID     game.RoomID       `json:"room_id"`
	Join       bool              `json:"join"`
	Master     game.ClientID     `json:"master"`
	PieceCount uint8             `json:"piece_count"`
	Players    []PlayerRoomState `json:"players"`
}

func (JoinRoomResponse) Kind() MessageType { return MessageTypeEnterRoom }

type PlayerJoinedResponse struct {
	ClientID game.ClientID `json:"client_id"`
	Name     string        `json:"name"`
}

func (PlayerJoinedResponse) Kind() MessageType { return MessageTypePlayerJoined }

type PlayerReadyResponse struct {
	Player  game.ClientID `json:"player"`
	IsReady bool          `json:"is_ready"`
}

func (PlayerReadyResponse) Kind() MessageType { return MessageTypePlayerReady }

type StartGameResponse struct {
	ShouldStart    bool          `json:"should_start"`
	StartingPlayer game.ClientID `json:"starting_player"`
}

func (StartGameResponse) Kind() MessageType { return MessageTypeStartGame }

type BeginTurnResponse struct{}

func (BeginTurnResponse) Kind() MessageType { return MessageTypeBeginTurn }

type CanRollResponse struct {
	Player game.ClientID `json:"player"`
}

func (CanRollResponse) Kind() MessageType { return MessageTypeCanRoll }

type EndRollResponse struct {
	ShouldAppend bool `json:"should_append"`
	Roll         int  `json:"roll"`
}

func (EndRollResponse) Kind() MessageType { return MessageTypeEndRoll }

type EndTurnResponse struct {
	NextPlayer game.ClientID `json:"next_player"`
}

func (EndTurnResponse) Kind() MessageType { return MessageTypeEndTurn }

type SelectingMoveResponse struct {
	Player game.ClientID `json:"player"`
}

func (SelectingMoveResponse) Kind() MessageType { return MessageTypeSelectingMove }

type BeginMoveResponse struct {
	Player     game.ClientID `json:"player"`
	ShouldMove bool          `json:"should_move"`
	Roll       int           `json:"roll"`
	Cell       game.Cell     `json:"cell"`
	Piece      int           `json:"piece"`
	Finished   bool          `json:"finished"`
}

func (BeginMoveResponse) Kind() MessageType { return MessageTypeBeginMove }

type EndGameResponse struct {
	Winner game.ClientID `json:"winner"`
}

func (EndGameResponse) Kind() MessageType { return MessageTypeEndGame }

type ChangeNameResponse struct {
	Player game.ClientID `json:"player"`
	Name   string        `json:"name"`
}

func (ChangeNameResponse) Kind() MessageType { return MessageTypeChangeName }

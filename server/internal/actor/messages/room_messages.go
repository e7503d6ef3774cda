package messages

import (
	"github.com/asynkron/protoactor-go/actor"

	"github.com/phuhao00/yutnori-server/server/internal/game"
)

// Messages routed from session actors to the hub and to room actors. Every
// request carries the sender's ClientID and session PID so the room can
// answer the initiator directly.

// CreateRoom asks the hub to mint a room with the sender as master.
type CreateRoom struct {
	ClientID game.ClientID
	Name     string
	Session  *actor.PID
}

// EnterRoom asks the hub to route a join request to an existing room.
type EnterRoom struct {
	RoomID   game.RoomID
	ClientID game.ClientID
	Name     string
	Session  *actor.PID
}

// DestroyRoom tells the hub that a room has emptied and stopped.
type DestroyRoom struct {
	RoomID game.RoomID
}

// ExitRoom removes a member from its room, either voluntarily or as a kick
// issued by the master (By).
type ExitRoom struct {
	ClientID game.ClientID
	Kicked   bool
	By       game.ClientID
}

// SetPieceCount asks the room to change the per-player piece count.
type SetPieceCount struct {
	ClientID   game.ClientID
	Session    *actor.PID
	PieceCount uint8
}

// ReadyPlayer sets a member's ready flag.
type ReadyPlayer struct {
	ClientID game.ClientID
	Session  *actor.PID
	IsReady  bool
}

// StartGame asks the room master to start the game.
type StartGame struct {
	ClientID game.ClientID
	Session  *actor.PID
}

// ChangeName renames a room member.
type ChangeName struct {
	ClientID game.ClientID
	Session  *actor.PID
	Name     string
}

// BeginRoll asks the room for a dice roll on behalf of the turn player.
type BeginRoll struct {
	ClientID game.ClientID
}

// BeginMove submits a move for legality checking.
type BeginMove struct {
	ClientID game.ClientID
	Session  *actor.PID
	Move     game.Move
}

// EndMove acknowledges that the client finished animating the current move.
type EndMove struct {
	ClientID game.ClientID
	Move     game.Move
}

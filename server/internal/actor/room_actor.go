package actor

import (
	"math/rand"

	"github.com/asynkron/protoactor-go/actor"

	"github.com/phuhao00/yutnori-server/server/internal/actor/messages"
	"github.com/phuhao00/yutnori-server/server/internal/game"
	"github.com/phuhao00/yutnori-server/server/internal/protocol"
	"github.com/phuhao00/yutnori-server/server/internal/utils"
)

// RoomActor owns one room: its member sessions, the master and the game
// instance. All mutation happens inside Receive, so every transition the
// instance makes is atomic with respect to the wire traffic it produces.
//
// The instance reports transitions through callbacks; those run synchronously
// inside Receive while curCtx is valid, which is what lets a single BeginRoll
// message fan out into EndRoll, EndTurn and CanRoll frames in order.
type RoomActor struct {
	id       game.RoomID
	hubPID   *actor.PID
	master   game.ClientID
	sessions map[game.ClientID]*actor.PID
	inst     *game.Instance
	curCtx   actor.Context
}

// NewRoomActor creates a room pre-seeded with its creator as master and sole
// member. The creator's session learns the room PID from the hub.
func NewRoomActor(id game.RoomID, hubPID *actor.PID, master game.ClientID, masterName string, masterSession *actor.PID) actor.Actor {
	a := &RoomActor{
		id:       id,
		hubPID:   hubPID,
		master:   master,
		sessions: map[game.ClientID]*actor.PID{master: masterSession},
	}
	a.inst = game.NewInstance(game.Callbacks{
		OnGameStarted:   a.onGameStarted,
		OnRolled:        a.onRolled,
		OnCanRoll:       a.onCanRoll,
		OnTurnEnded:     a.onTurnEnded,
		OnSelectingMove: a.onSelectingMove,
		OnMoveAccepted:  a.onMoveAccepted,
		OnMoveRejected:  a.onMoveRejected,
		OnGameEnded:     a.onGameEnded,
	}, nil)
	a.inst.AddPlayer(master, masterName)
	return a
}

func (a *RoomActor) Receive(ctx actor.Context) {
	a.curCtx = ctx
	defer func() { a.curCtx = nil }()

	switch msg := ctx.Message().(type) {
	case *actor.Started:
		utils.LogInfof("room %s created, master %s", a.id, a.master)

	case *messages.EnterRoom:
		a.handleEnter(ctx, msg)

	case *messages.ExitRoom:
		a.handleExit(ctx, msg)

	case *messages.ReadyPlayer:
		if !a.inst.SetReady(msg.ClientID, msg.IsReady) {
			a.sendTo(ctx, msg.Session, &protocol.PlayerReadyResponse{})
			return
		}
		a.broadcast(&protocol.PlayerReadyResponse{Player: msg.ClientID, IsReady: msg.IsReady})

	case *messages.SetPieceCount:
		if msg.ClientID != a.master {
			a.sendTo(ctx, msg.Session, &protocol.SetPieceCountResponse{})
			return
		}
		count, ok := a.inst.SetPieceCount(msg.PieceCount)
		if !ok {
			a.sendTo(ctx, msg.Session, &protocol.SetPieceCountResponse{})
			return
		}
		a.broadcast(&protocol.SetPieceCountResponse{PieceCount: count, ShouldSet: true})

	case *messages.StartGame:
		if msg.ClientID != a.master || !a.inst.Start() {
			a.sendTo(ctx, msg.Session, &protocol.StartGameResponse{})
		}

	case *messages.ChangeName:
		if !a.inst.Rename(msg.ClientID, msg.Name) {
			a.sendTo(ctx, msg.Session, &protocol.ChangeNameResponse{})
			return
		}
		a.broadcast(&protocol.ChangeNameResponse{Player: msg.ClientID, Name: msg.Name})

	case *messages.BeginRoll:
		a.inst.BeginRoll(msg.ClientID)

	case *messages.BeginMove:
		a.inst.BeginMove(msg.ClientID, msg.Move)

	case *messages.EndMove:
		a.inst.EndMove(msg.ClientID, msg.Move)
	}
}

func (a *RoomActor) handleEnter(ctx actor.Context, msg *messages.EnterRoom) {
	if a.inst.PlayerCount() >= game.MaxPlayerCount ||
		a.inst.State() != game.StateGameEnded ||
		a.inst.IsMember(msg.ClientID) {
		a.sendTo(ctx, msg.Session, &protocol.JoinRoomResponse{RoomID: a.id})
		return
	}

	// Snapshot before the join so the broadcast does not echo back.
	snapshot := &protocol.JoinRoomResponse{
		RoomID:     a.id,
		Join:       true,
		Master:     a.master,
		PieceCount: a.inst.PieceCount(),
	}
	for _, p := range a.inst.Players() {
		snapshot.Players = append(snapshot.Players, protocol.PlayerRoomState{
			ClientID: p.ID,
			Name:     p.Name,
			IsReady:  p.IsReady,
		})
	}
	a.sendTo(ctx, msg.Session, snapshot)
	a.broadcast(&protocol.PlayerJoinedResponse{ClientID: msg.ClientID, Name: msg.Name})

	a.inst.AddPlayer(msg.ClientID, msg.Name)
	a.sessions[msg.ClientID] = msg.Session
	ctx.Send(msg.Session, &messages.JoinedRoom{Room: ctx.Self()})
	utils.LogInfof("room %s: %s joined (%d members)", a.id, msg.ClientID, a.inst.PlayerCount())
}

func (a *RoomActor) handleExit(ctx actor.Context, msg *messages.ExitRoom) {
	if msg.Kicked && msg.By != a.master {
		return
	}
	session, ok := a.sessions[msg.ClientID]
	if !ok {
		return
	}
	a.inst.RemovePlayer(msg.ClientID)

	if msg.ClientID == a.master {
		a.master = ""
		if a.inst.PlayerCount() > 0 {
			a.master = a.electMaster()
			utils.LogInfof("room %s: new master %s", a.id, a.master)
		}
	}

	// The departing session is still registered here, so the broadcast
	// reaches it too; a kicked client learns of its removal from this frame.
	a.broadcast(&protocol.PlayerLeftResponse{
		Player: msg.ClientID,
		Master: a.master,
		Kicked: msg.Kicked,
	})
	ctx.Send(session, &messages.LeftRoom{})
	delete(a.sessions, msg.ClientID)

	if len(a.sessions) == 0 {
		utils.LogInfof("room %s emptied", a.id)
		ctx.Send(a.hubPID, &messages.DestroyRoom{RoomID: a.id})
		ctx.Stop(ctx.Self())
	}
}

// electMaster picks a new master uniformly at random from the remaining
// members.
func (a *RoomActor) electMaster() game.ClientID {
	players := a.inst.Players()
	return players[rand.Intn(len(players))].ID
}

func (a *RoomActor) onGameStarted(starting game.ClientID) {
	utils.LogInfof("room %s: game started, %s begins", a.id, starting)
	a.broadcast(&protocol.StartGameResponse{ShouldStart: true, StartingPlayer: starting})
	a.broadcast(&protocol.BeginTurnResponse{})
}

func (a *RoomActor) onRolled(player game.ClientID, roll int, appended bool) {
	a.broadcast(&protocol.EndRollResponse{ShouldAppend: appended, Roll: roll})
}

func (a *RoomActor) onCanRoll(player game.ClientID) {
	a.sendTo(a.curCtx, a.sessions[player], &protocol.CanRollResponse{Player: player})
}

func (a *RoomActor) onTurnEnded(next game.ClientID) {
	a.broadcast(&protocol.EndTurnResponse{NextPlayer: next})
	a.broadcast(&protocol.BeginTurnResponse{})
}

func (a *RoomActor) onSelectingMove(player game.ClientID) {
	a.sendTo(a.curCtx, a.sessions[player], &protocol.SelectingMoveResponse{Player: player})
}

func (a *RoomActor) onMoveAccepted(player game.ClientID, mv game.Move, finished bool) {
	a.broadcast(&protocol.BeginMoveResponse{
		Player:     player,
		ShouldMove: true,
		Roll:       mv.Roll,
		Cell:       mv.Cell,
		Piece:      mv.Piece,
		Finished:   finished,
	})
}

func (a *RoomActor) onMoveRejected(player game.ClientID) {
	a.sendTo(a.curCtx, a.sessions[player], &protocol.BeginMoveResponse{Player: player})
}

func (a *RoomActor) onGameEnded(winner game.ClientID) {
	utils.LogInfof("room %s: game over, winner %s", a.id, winner)
	a.broadcast(&protocol.EndGameResponse{Winner: winner})
}

// broadcast serializes once and enqueues the same byte slice on every
// member's session.
func (a *RoomActor) broadcast(msg protocol.Serializer) {
	data, err := protocol.Serialize(msg)
	if err != nil {
		utils.LogErrorf("room %s serialize %s: %v", a.id, msg.Kind(), err)
		return
	}
	for _, session := range a.sessions {
		a.curCtx.Send(session, &messages.ForwardToClient{Data: data})
	}
}

func (a *RoomActor) sendTo(ctx actor.Context, session *actor.PID, msg protocol.Serializer) {
	if session == nil {
		return
	}
	data, err := protocol.Serialize(msg)
	if err != nil {
		utils.LogErrorf("room %s serialize %s: %v", a.id, msg.Kind(), err)
		return
	}
	ctx.Send(session, &messages.ForwardToClient{Data: data})
}

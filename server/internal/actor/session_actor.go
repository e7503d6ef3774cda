package actor

import (
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/tidwall/gjson"

	"github.com/phuhao00/yutnori-server/server/internal/actor/messages"
	"github.com/phuhao00/yutnori-server/server/internal/game"
	"github.com/phuhao00/yutnori-server/server/internal/protocol"
	"github.com/phuhao00/yutnori-server/server/internal/utils"
)

// keepaliveInterval is how often an idle session pings its client. Any
// actor message resets the timer, so a busy session never pings.
const keepaliveInterval = time.Minute

// SessionActor owns one client connection. It is the single writer for that
// connection: every outbound frame, whether a direct response or a room
// broadcast, passes through its mailbox as a ForwardToClient message. It
// also tracks which room currently holds the client, so requests can be
// routed without consulting the hub.
type SessionActor struct {
	conn     protocol.FrameConn
	clientID game.ClientID
	hubPID   *actor.PID
	roomPID  *actor.PID
}

// NewSessionActor creates a session actor bound to the hub.
func NewSessionActor(hubPID *actor.PID) actor.Actor {
	return &SessionActor{hubPID: hubPID}
}

func (a *SessionActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Stopping:
		if a.conn != nil {
			a.conn.Close()
		}
		if a.roomPID != nil {
			ctx.Send(a.roomPID, &messages.ExitRoom{ClientID: a.clientID})
			a.roomPID = nil
		}

	case *actor.ReceiveTimeout:
		a.write(ctx, &protocol.KeepaliveMessage{})
		ctx.SetReceiveTimeout(keepaliveInterval)

	case *messages.ClientConnected:
		a.conn = msg.Conn
		a.clientID = msg.ID
		utils.LogInfof("session %s connected from %s", a.clientID, a.conn.RemoteAddr())
		a.write(ctx, &protocol.ConnectResponse{ClientID: a.clientID})
		ctx.SetReceiveTimeout(keepaliveInterval)

	case *messages.ClientFrame:
		a.handleFrame(ctx, msg.Msg)

	case *messages.ClientDisconnected:
		utils.LogInfof("session %s disconnected: %v", a.clientID, msg.Reason)
		ctx.Stop(ctx.Self())

	case *messages.ForwardToClient:
		if a.conn == nil {
			return
		}
		if err := a.conn.WriteFrame(msg.Data); err != nil {
			utils.LogWarnf("session %s write failed: %v", a.clientID, err)
			ctx.Stop(ctx.Self())
		}

	case *messages.JoinedRoom:
		a.roomPID = msg.Room

	case *messages.LeftRoom:
		a.roomPID = nil
	}
}

// handleFrame routes one client request. Requests that need a room the
// client is not in are answered locally with the negative form of their
// response, so a confused client never hangs waiting.
func (a *SessionActor) handleFrame(ctx actor.Context, msg protocol.Message) {
	if len(msg.Payload) != 0 && !gjson.ValidBytes(msg.Payload) {
		utils.LogWarnf("session %s sent malformed payload for %s, disconnecting", a.clientID, msg.Kind)
		ctx.Stop(ctx.Self())
		return
	}

	switch msg.Kind {
	case protocol.MessageTypeKeepalive:
		// Client ping, nothing to do. Receiving it already reset the timer.

	case protocol.MessageTypeCreateRoom:
		if a.roomPID != nil {
			ctx.Send(a.roomPID, &messages.ExitRoom{ClientID: a.clientID})
			a.roomPID = nil
		}
		ctx.Send(a.hubPID, &messages.CreateRoom{
			ClientID: a.clientID,
			Name:     protocol.ParseName(msg.Payload),
			Session:  ctx.Self(),
		})

	case protocol.MessageTypeEnterRoom:
		roomID, name := protocol.ParseEnterRoom(msg.Payload)
		if a.roomPID != nil {
			ctx.Send(a.roomPID, &messages.ExitRoom{ClientID: a.clientID})
			a.roomPID = nil
		}
		ctx.Send(a.hubPID, &messages.EnterRoom{
			RoomID:   roomID,
			ClientID: a.clientID,
			Name:     name,
			Session:  ctx.Self(),
		})

	case protocol.MessageTypeExitRoom:
		if a.roomPID == nil {
			a.write(ctx, &protocol.ExitRoomResponse{Exit: false})
			return
		}
		a.write(ctx, &protocol.ExitRoomResponse{Exit: true})
		ctx.Send(a.roomPID, &messages.ExitRoom{ClientID: a.clientID})
		a.roomPID = nil

	case protocol.MessageTypeSetPieceCount:
		if a.roomPID == nil {
			a.write(ctx, &protocol.SetPieceCountResponse{})
			return
		}
		ctx.Send(a.roomPID, &messages.SetPieceCount{
			ClientID:   a.clientID,
			Session:    ctx.Self(),
			PieceCount: protocol.ParseSetPieceCount(msg.Payload),
		})

	case protocol.MessageTypePlayerReady:
		if a.roomPID == nil {
			a.write(ctx, &protocol.PlayerReadyResponse{})
			return
		}
		ctx.Send(a.roomPID, &messages.ReadyPlayer{
			ClientID: a.clientID,
			Session:  ctx.Self(),
			IsReady:  protocol.ParseReady(msg.Payload),
		})

	case protocol.MessageTypeKickPlayer:
		if a.roomPID == nil {
			return
		}
		ctx.Send(a.roomPID, &messages.ExitRoom{
			ClientID: protocol.ParseKickPlayer(msg.Payload),
			Kicked:   true,
			By:       a.clientID,
		})

	case protocol.MessageTypeStartGame:
		if a.roomPID == nil {
			a.write(ctx, &protocol.StartGameResponse{})
			return
		}
		ctx.Send(a.roomPID, &messages.StartGame{ClientID: a.clientID, Session: ctx.Self()})

	case protocol.MessageTypeBeginRoll:
		if a.roomPID == nil {
			return
		}
		ctx.Send(a.roomPID, &messages.BeginRoll{ClientID: a.clientID})

	case protocol.MessageTypeBeginMove:
		if a.roomPID == nil {
			a.write(ctx, &protocol.BeginMoveResponse{})
			return
		}
		ctx.Send(a.roomPID, &messages.BeginMove{
			ClientID: a.clientID,
			Session:  ctx.Self(),
			Move:     protocol.ParseMove(msg.Payload),
		})

	case protocol.MessageTypeEndMove:
		if a.roomPID == nil {
			return
		}
		ctx.Send(a.roomPID, &messages.EndMove{
			ClientID: a.clientID,
			Move:     protocol.ParseMove(msg.Payload),
		})

	case protocol.MessageTypeChangeName:
		if a.roomPID == nil {
			a.write(ctx, &protocol.ChangeNameResponse{})
			return
		}
		ctx.Send(a.roomPID, &messages.ChangeName{
			ClientID: a.clientID,
			Session:  ctx.Self(),
			Name:     protocol.ParseName(msg.Payload),
		})

	default:
		utils.LogDebugf("session %s sent unsupported kind %s", a.clientID, msg.Kind)
	}
}

// write serializes a payload and queues it through the actor's own mailbox
// path, keeping the single-writer rule trivially true.
func (a *SessionActor) write(ctx actor.Context, msg protocol.Serializer) {
	data, err := protocol.Serialize(msg)
	if err != nil {
		utils.LogErrorf("session %s serialize %s: %v", a.clientID, msg.Kind(), err)
		return
	}
	if a.conn == nil {
		return
	}
	if err := a.conn.WriteFrame(data); err != nil {
		utils.LogWarnf("session %s write failed: %v", a.clientID, err)
		ctx.Stop(ctx.Self())
	}
}

package actor

import (
	"github.com/asynkron/protoactor-go/actor"

	"github.com/phuhao00/yutnori-server/server/internal/actor/messages"
	"github.com/phuhao00/yutnori-server/server/internal/game"
	"github.com/phuhao00/yutnori-server/server/internal/protocol"
	"github.com/phuhao00/yutnori-server/server/internal/utils"
)

// HubActor owns the room table. It mints rooms, routes join requests to
// them, and drops entries when rooms empty out. Nothing else touches the
// table.
type HubActor struct {
	rooms map[game.RoomID]*actor.PID
}

func NewHubActor() actor.Actor {
	return &HubActor{rooms: make(map[game.RoomID]*actor.PID)}
}

func (a *HubActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		utils.LogInfo("hub started")

	case *messages.CreateRoom:
		roomID := game.RoomID(utils.GenerateID())
		roomPID := ctx.Spawn(actor.PropsFromProducer(func() actor.Actor {
			return NewRoomActor(roomID, ctx.Self(), msg.ClientID, msg.Name, msg.Session)
		}))
		a.rooms[roomID] = roomPID
		utils.LogInfof("hub: room %s created by %s (%d rooms)", roomID, msg.ClientID, len(a.rooms))

		a.sendTo(ctx, msg.Session, &protocol.CreateRoomResponse{RoomID: roomID})
		ctx.Send(msg.Session, &messages.JoinedRoom{Room: roomPID})

	case *messages.EnterRoom:
		roomPID, ok := a.rooms[msg.RoomID]
		if !ok {
			a.sendTo(ctx, msg.Session, &protocol.JoinRoomResponse{RoomID: msg.RoomID})
			return
		}
		ctx.Send(roomPID, msg)

	case *messages.DestroyRoom:
		delete(a.rooms, msg.RoomID)
		utils.LogInfof("hub: room %s destroyed (%d rooms)", msg.RoomID, len(a.rooms))
	}
}

func (a *HubActor) sendTo(ctx actor.Context, session *actor.PID, msg protocol.Serializer) {
	data, err := protocol.Serialize(msg)
	if err != nil {
		utils.LogErrorf("hub serialize %s: %v", msg.Kind(), err)
		return
	}
	ctx.Send(session, &messages.ForwardToClient{Data: data})
}

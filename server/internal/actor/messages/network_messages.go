package messages

import (
	"github.com/asynkron/protoactor-go/actor"

	"github.com/phuhao00/yutnori-server/server/internal/game"
	"github.com/phuhao00/yutnori-server/server/internal/protocol"
)

// Messages exchanged between the network layer and session actors.

// ClientConnected hands a freshly accepted connection to its session actor.
type ClientConnected struct {
	Conn protocol.FrameConn
	ID   game.ClientID
}

// ClientFrame carries one inbound frame from the reader goroutine.
type ClientFrame struct {
	Msg protocol.Message
}

// ClientDisconnected reports that the reader goroutine terminated.
type ClientDisconnected struct {
	Reason error
}

// ForwardToClient asks a session actor to write one serialized frame to its
// connection.
type ForwardToClient struct {
	Data []byte
}

// JoinedRoom tells a session actor which room now owns it.
type JoinedRoom struct {
	Room *actor.PID
}

// LeftRoom tells a session actor that its room no longer tracks it.
type LeftRoom struct{}

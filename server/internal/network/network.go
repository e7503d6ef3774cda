package network

import (
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/asynkron/protoactor-go/actor"

	sessionactor "github.com/phuhao00/yutnori-server/server/internal/actor"
	"github.com/phuhao00/yutnori-server/server/internal/actor/messages"
	"github.com/phuhao00/yutnori-server/server/internal/game"
	"github.com/phuhao00/yutnori-server/server/internal/protocol"
	"github.com/phuhao00/yutnori-server/server/internal/utils"
)

// TCPServer accepts raw TCP connections and bridges each one into the actor
// system: one session actor plus one reader goroutine per connection. The
// session actor is the single writer; the reader only converts frames into
// mailbox messages.
type TCPServer struct {
	listener    net.Listener
	host        string
	port        int
	actorSystem *actor.ActorSystem
	hubPID      *actor.PID
	wg          sync.WaitGroup
	shutdown    chan struct{}
}

// NewTCPServer creates a server bound to the hub actor.
func NewTCPServer(host string, port int, system *actor.ActorSystem, hubPID *actor.PID) *TCPServer {
	return &TCPServer{
		host:        host,
		port:        port,
		actorSystem: system,
		hubPID:      hubPID,
		shutdown:    make(chan struct{}),
	}
}

// Start begins listening and accepting connections.
func (s *TCPServer) Start() error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.listener = listener
	utils.LogInfof("tcp server listening on %s", addr)

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

func (s *TCPServer) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return
			default:
			}
			utils.LogWarnf("accept failed: %v", err)
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return
		}
		s.wg.Add(1)
		go s.serveConn(protocol.NewTCPFrameConn(conn))
	}
}

// ServeConn registers an already established frame connection, minting its
// client identity and spawning its session actor. The WebSocket gateway
// feeds its upgraded connections through here as well.
func (s *TCPServer) ServeConn(conn protocol.FrameConn) {
	s.wg.Add(1)
	go s.serveConn(conn)
}

func (s *TCPServer) serveConn(conn protocol.FrameConn) {
	defer s.wg.Done()

	clientID := game.ClientID(utils.GenerateID())
	props := actor.PropsFromProducer(func() actor.Actor {
		return sessionactor.NewSessionActor(s.hubPID)
	})
	sessionPID := s.actorSystem.Root.Spawn(props)
	s.actorSystem.Root.Send(sessionPID, &messages.ClientConnected{Conn: conn, ID: clientID})

	for {
		msg, err := conn.ReadMessage()
		if err != nil {
			s.actorSystem.Root.Send(sessionPID, &messages.ClientDisconnected{Reason: err})
			return
		}
		s.actorSystem.Root.Send(sessionPID, &messages.ClientFrame{Msg: msg})
	}
}

// Stop closes the listener and waits for the accept loop and per-connection
// readers to drain, up to a grace period.
func (s *TCPServer) Stop() {
	close(s.shutdown)
	if s.listener != nil {
		s.listener.Close()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		utils.LogInfo("tcp server stopped")
	case <-time.After(10 * time.Second):
		utils.LogWarn("tcp server shutdown timed out waiting for connections")
	}
}

package network

import (
	"encoding/binary"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phuhao00/yutnori-server/server/internal/protocol"
	"github.com/phuhao00/yutnori-server/server/internal/utils"
)

// WSGateway exposes the frame protocol over WebSocket for clients that
// cannot open raw TCP sockets. Each binary WebSocket message carries exactly
// one frame, header included; upgraded connections are handed to the same
// session pipeline as TCP ones.
type WSGateway struct {
	host     string
	port     int
	server   *http.Server
	upgrader websocket.Upgrader
	tcp      *TCPServer
}

// NewWSGateway creates a gateway that registers its connections with srv.
func NewWSGateway(host string, port int, srv *TCPServer) *WSGateway {
	return &WSGateway{
		host: host,
		port: port,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The frame protocol has no use for the Origin header.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		tcp: srv,
	}
}

// Start serves the upgrade endpoint in the background.
func (g *WSGateway) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", g.handleUpgrade)
	addr := net.JoinHostPort(g.host, strconv.Itoa(g.port))
	g.server = &http.Server{Addr: addr, Handler: mux}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	utils.LogInfof("websocket gateway listening on %s/ws", addr)
	go func() {
		if err := g.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogErrorf("websocket gateway: %v", err)
		}
	}()
	return nil
}

func (g *WSGateway) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.LogWarnf("websocket upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}
	g.tcp.ServeConn(newWSFrameConn(conn))
}

// Stop closes the upgrade endpoint. Established connections are torn down
// by their session actors.
func (g *WSGateway) Stop() {
	if g.server != nil {
		g.server.Close()
	}
}

// wsFrameConn adapts a WebSocket connection to the FrameConn interface. The
// message boundary replaces stream framing, but the 3-byte header is still
// present and must agree with the message length.
type wsFrameConn struct {
	conn *websocket.Conn
}

func newWSFrameConn(conn *websocket.Conn) protocol.FrameConn {
	return &wsFrameConn{conn: conn}
}

func (c *wsFrameConn) ReadMessage() (protocol.Message, error) {
	for {
		kind, data, err := c.conn.ReadMessage()
		if err != nil {
			return protocol.Message{}, err
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		if len(data) < protocol.HeaderSize {
			return protocol.Message{}, errors.New("websocket frame shorter than header")
		}
		payloadLen := int(binary.BigEndian.Uint16(data[1:]))
		if payloadLen != len(data)-protocol.HeaderSize {
			return protocol.Message{}, errors.New("websocket frame length mismatch")
		}
		return protocol.Message{
			Kind:    protocol.MessageType(data[0]),
			Payload: data[protocol.HeaderSize:],
		}, nil
	}
}

func (c *wsFrameConn) WriteFrame(frame []byte) error {
	c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return c.conn.WriteMessage(websocket.BinaryMessage, frame)
}

func (c *wsFrameConn) Close() error {
	return c.conn.Close()
}

func (c *wsFrameConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

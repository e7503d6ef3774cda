package protocol

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net"
)

// Every frame on the wire is [kind: uint8][payload_len: uint16 BE][payload].
// There is no framing magic and no checksum; the TCP stream is trusted.
const (
	HeaderSize     = 3
	MaxPayloadSize = 1<<16 - 1
)

// MessageType tags a frame. The ordinals are the wire encoding and span
// both directions; they must never be renumbered.
type MessageType uint8

const (
	MessageTypeKeepalive MessageType = iota
	MessageTypeConnect
	MessageTypeDisconnect
	MessageTypeQuit
	MessageTypeCreateRoom
	MessageTypeExitRoom
	MessageTypeSetPieceCount
	MessageTypePlayerLeft
	MessageTypeEnterRoom
	MessageTypePlayerJoined
	MessageTypePlayerReady
	MessageTypeKickPlayer
	MessageTypeStartGame
	MessageTypeBeginTurn
	MessageTypeCanRoll
	MessageTypeBeginRoll
	MessageTypeEndRoll
	MessageTypeEndTurn
	MessageTypeSelectingMove
	MessageTypeBeginMove
	MessageTypeEndMove
	MessageTypeEndGame
	MessageTypeChangeName
)

var messageTypeNames = [...]string{
	"Keepalive", "Connect", "Disconnect", "Quit", "CreateRoom", "ExitRoom",
	"SetPieceCount", "PlayerLeft", "EnterRoom", "PlayerJoined", "PlayerReady",
	"KickPlayer", "StartGame", "BeginTurn", "CanRoll", "BeginRoll", "EndRoll",
	"EndTurn", "SelectingMove", "BeginMove", "EndMove", "EndGame", "ChangeName",
}

func (kind MessageType) String() string {
	if int(kind) < len(messageTypeNames) {
		return messageTypeNames[kind]
	}
	return "Unsupported"
}

// Message is one decoded frame.
type Message struct {
	Kind    MessageType
	Payload []byte
}

// Serializer is implemented by every outbound payload struct.
type Serializer interface {
	Kind() MessageType
}

// Serialize marshals a payload and prepends the frame header, returning the
// raw bytes ready for the wire. The same byte slice is handed to every
// recipient of a broadcast.
func Serialize(msg Serializer) ([]byte, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	if len(payload) > MaxPayloadSize {
		return nil, fmt.Errorf("payload for %s exceeds %d bytes", msg.Kind(), MaxPayloadSize)
	}
	var b bytes.Buffer
	b.WriteByte(byte(msg.Kind()))
	binary.Write(&b, binary.BigEndian, uint16(len(payload)))
	b.Write(payload)
	return b.Bytes(), nil
}

// ReadMessage blocks until a whole frame has been received. Timeout-class
// errors on the underlying read are retried; any other error terminates the
// connection and is surfaced to the caller.
func ReadMessage(conn net.Conn) (Message, error) {
	header := make([]byte, HeaderSize)
	if err := readFull(conn, header); err != nil {
		return Message{}, err
	}
	kind := MessageType(header[0])
	payloadLen := binary.BigEndian.Uint16(header[1:])
	if payloadLen == 0 {
		return Message{Kind: kind}, nil
	}
	payload := make([]byte, payloadLen)
	if err := readFull(conn, payload); err != nil {
		return Message{}, err
	}
	return Message{Kind: kind, Payload: payload}, nil
}

// readFull fills buf, resuming at the partial offset when a timeout-class
// error interrupts a read so no received bytes are discarded.
func readFull(conn net.Conn, buf []byte) error {
	for read := 0; read < len(buf); {
		n, err := conn.Read(buf[read:])
		read += n
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			return err
		}
	}
	return nil
}

// WriteFrame writes one serialized frame, retrying timeout-class errors. The
// retry resumes at the partial offset so an interrupted write never repeats
// bytes already on the wire. Callers must guarantee a single writer per
// connection so that frames are never interleaved.
func WriteFrame(conn net.Conn, frame []byte) error {
	for written := 0; written < len(frame); {
		n, err := conn.Write(frame[written:])
		written += n
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			return err
		}
	}
	return nil
}

// FrameConn abstracts one client connection at frame granularity, so the
// session layer does not care whether the bytes travel over raw TCP or a
// WebSocket.
type FrameConn interface {
	// ReadMessage blocks for the next inbound frame.
	ReadMessage() (Message, error)
	// WriteFrame writes one already-serialized frame.
	WriteFrame(frame []byte) error
	Close() error
	RemoteAddr() net.Addr
}

type tcpFrameConn struct {
	conn net.Conn
}

// NewTCPFrameConn wraps a raw TCP connection as a FrameConn.
func NewTCPFrameConn(conn net.Conn) FrameConn {
	return &tcpFrameConn{conn: conn}
}

func (c *tcpFrameConn) ReadMessage() (Message, error) {
	return ReadMessage(c.conn)
}

func (c *tcpFrameConn) WriteFrame(frame []byte) error {
	return WriteFrame(c.conn, frame)
}

func (c *tcpFrameConn) Close() error {
	return c.conn.Close()
}

func (c *tcpFrameConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

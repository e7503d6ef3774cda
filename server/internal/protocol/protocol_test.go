package protocol

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/phuhao00/yutnori-server/server/internal/game"
)

func TestMessageTypeOrdinals(t *testing.T) {
	// The ordinals are the wire contract.
	checks := map[MessageType]uint8{
		MessageTypeKeepalive:     0,
		MessageTypeConnect:       1,
		MessageTypeCreateRoom:    4,
		MessageTypeEnterRoom:     8,
		MessageTypePlayerReady:   10,
		MessageTypeStartGame:     12,
		MessageTypeBeginRoll:     15,
		MessageTypeBeginMove:     19,
		MessageTypeEndGame:       21,
		MessageTypeChangeName:    22,
	}
	for kind, ord := range checks {
		if uint8(kind) != ord {
			t.Errorf("%s = %d, want %d", kind, kind, ord)
		}
	}
}

func TestSerializeFrameLayout(t *testing.T) {
	frame, err := Serialize(&ConnectResponse{ClientID: "abc"})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if frame[0] != byte(MessageTypeConnect) {
		t.Errorf("kind byte = %d, want %d", frame[0], MessageTypeConnect)
	}
	payloadLen := binary.BigEndian.Uint16(frame[1:])
	if int(payloadLen) != len(frame)-HeaderSize {
		t.Errorf("header length %d disagrees with payload length %d", payloadLen, len(frame)-HeaderSize)
	}
	var decoded ConnectResponse
	if err := json.Unmarshal(frame[HeaderSize:], &decoded); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if decoded.ClientID != "abc" {
		t.Errorf("client_id = %q, want abc", decoded.ClientID)
	}
}

func TestReadMessageOverPipe(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	frame, err := Serialize(&EndRollResponse{ShouldAppend: true, Roll: -1})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	go WriteFrame(server, frame)

	client.SetReadDeadline(time.Now().Add(time.Second))
	msg, err := ReadMessage(client)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Kind != MessageTypeEndRoll {
		t.Errorf("kind = %s, want EndRoll", msg.Kind)
	}
	var decoded EndRollResponse
	if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.ShouldAppend || decoded.Roll != -1 {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestReadMessageEmptyPayload(t *testing.T) {
	frame := []byte{byte(MessageTypeBeginRoll), 0, 0}
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()
	go server.Write(frame)

	msg, err := ReadMessage(client)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Kind != MessageTypeBeginRoll || len(msg.Payload) != 0 {
		t.Errorf("msg = %+v, want empty BeginRoll", msg)
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

// chunkyConn accepts at most three bytes per Write and reports a timeout
// when the frame did not fit, mimicking a deadline expiring mid-write.
type chunkyConn struct {
	net.Conn
	buf bytes.Buffer
}

func (c *chunkyConn) Write(p []byte) (int, error) {
	n := len(p)
	if n > 3 {
		n = 3
	}
	c.buf.Write(p[:n])
	if n < len(p) {
		return n, timeoutError{}
	}
	return n, nil
}

// chunkyReader delivers at most two bytes per Read with a timeout whenever
// data remains.
type chunkyReader struct {
	net.Conn
	data []byte
	pos  int
}

func (c *chunkyReader) Read(p []byte) (int, error) {
	limit := c.pos + 2
	if limit > len(c.data) {
		limit = len(c.data)
	}
	n := copy(p, c.data[c.pos:limit])
	c.pos += n
	if c.pos < len(c.data) {
		return n, timeoutError{}
	}
	return n, nil
}

func TestWriteFrameResumesAfterTimeout(t *testing.T) {
	frame, err := Serialize(&EndTurnResponse{NextPlayer: "bob"})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	conn := &chunkyConn{}
	if err := WriteFrame(conn, frame); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.Equal(conn.buf.Bytes(), frame) {
		t.Errorf("stream = %x, want %x (no repeated or dropped bytes)", conn.buf.Bytes(), frame)
	}
}

func TestReadMessageResumesAfterTimeout(t *testing.T) {
	frame, err := Serialize(&EndTurnResponse{NextPlayer: "bob"})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	msg, err := ReadMessage(&chunkyReader{data: frame})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var decoded EndTurnResponse
	if err := json.Unmarshal(msg.Payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Kind != MessageTypeEndTurn || decoded.NextPlayer != "bob" {
		t.Errorf("decoded (%s, %+v)", msg.Kind, decoded)
	}
}

func TestJoinRoomSnapshotRoundTrip(t *testing.T) {
	resp := &JoinRoomResponse{
		RoomID:     "room",
		Join:       true,
		Master:     "alice",
		PieceCount: 4,
		Players: []PlayerRoomState{
			{ClientID: "alice", Name: "Alice", IsReady: true},
			{ClientID: "bob", Name: "Bob"},
		},
	}
	frame, err := Serialize(resp)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !bytes.Contains(frame, []byte(`"is_ready":true`)) {
		t.Error("snapshot payload missing snake_case ready flag")
	}
	var decoded JoinRoomResponse
	if err := json.Unmarshal(frame[HeaderSize:], &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Master != "alice" || len(decoded.Players) != 2 || decoded.Players[1].ClientID != "bob" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRequestParsers(t *testing.T) {
	if name := ParseName([]byte(`{"name":"Alice"}`)); name != "Alice" {
		t.Errorf("ParseName = %q", name)
	}

	roomID, name := ParseEnterRoom([]byte(`{"room_id":"r1","name":"Bob"}`))
	if roomID != "r1" || name != "Bob" {
		t.Errorf("ParseEnterRoom = (%q, %q)", roomID, name)
	}

	mv := ParseMove([]byte(`{"roll":-1,"piece":2,"cell":28}`))
	want := game.Move{Roll: -1, Piece: 2, Cell: game.CellCenter}
	if mv != want {
		t.Errorf("ParseMove = %+v, want %+v", mv, want)
	}

	if n := ParseSetPieceCount([]byte(`{"piece_count":4}`)); n != 4 {
		t.Errorf("ParseSetPieceCount = %d", n)
	}
	// Oversized counts must cap before the uint8 narrowing, not wrap.
	if n := ParseSetPieceCount([]byte(`{"piece_count":258}`)); n != game.MaxPieceCount {
		t.Errorf("ParseSetPieceCount(258) = %d, want %d", n, game.MaxPieceCount)
	}

	// Malformed bodies degrade to zero values.
	if mv := ParseMove([]byte(`not json`)); mv != (game.Move{}) {
		t.Errorf("malformed move parsed to %+v", mv)
	}
	if ParseReady(nil) {
		t.Error("empty ready payload should be false")
	}
}

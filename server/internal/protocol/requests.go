package protocol

import (
	"github.com/tidwall/gjson"

	"github.com/phuhao00/yutnori-server/server/internal/game"
)

// Request payload parsers. The session rejects syntactically invalid JSON
// before dispatch, so these extract fields with gjson and let a missing field
// degrade to its zero value; the room rejects the resulting illegal request
// like any other.

// ParseName extracts the name field of CreateRoom and ChangeName requests.
func ParseName(payload []byte) string {
	return gjson.GetBytes(payload, "name").String()
}

// ParseEnterRoom extracts the target room and the display name of an
// EnterRoom request.
func ParseEnterRoom(payload []byte) (game.RoomID, string) {
	body := gjson.ParseBytes(payload)
	return game.RoomID(body.Get("room_id").String()), body.Get("name").String()
}

// ParseSetPieceCount extracts the requested piece count. Values above the
// board maximum are capped here so the narrowing to uint8 cannot wrap an
// oversized request into a small one.
func ParseSetPieceCount(payload []byte) uint8 {
	n := gjson.GetBytes(payload, "piece_count").Uint()
	if n > game.MaxPieceCount {
		n = game.MaxPieceCount
	}
	return uint8(n)
}

// ParseReady extracts the requested ready flag.
func ParseReady(payload []byte) bool {
	return gjson.GetBytes(payload, "is_ready").Bool()
}

// ParseKickPlayer extracts the kick target.
func ParseKickPlayer(payload []byte) game.ClientID {
	return game.ClientID(gjson.GetBytes(payload, "player").String())
}

// ParseMove extracts the (roll, piece, cell) triple of BeginMove and EndMove
// requests.
func ParseMove(payload []byte) game.Move {
	body := gjson.ParseBytes(payload)
	return game.Move{
		Roll:  int(body.Get("roll").Int()),
		Piece: int(body.Get("piece").Int()),
		Cell:  game.Cell(body.Get("cell").Uint()),
	}
}

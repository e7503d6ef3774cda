package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/phuhao00/yutnori-server/server/configs"
	"github.com/phuhao00/yutnori-server/server/internal/protocol"
)

// Interactive test client for the frame protocol. Type 'help' for the
// command list; every server frame is printed as it arrives.
func main() {
	addr := flag.String("addr", fmt.Sprintf("localhost:%d", configs.DefaultTCPPort), "server address")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dial %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer conn.Close()
	fmt.Printf("connected to %s\n", *addr)

	go readLoop(conn)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !dispatch(conn, line) {
			return
		}
		fmt.Print("> ")
	}
}

func readLoop(conn net.Conn) {
	for {
		msg, err := protocol.ReadMessage(conn)
		if err != nil {
			fmt.Printf("\nconnection closed: %v\n", err)
			os.Exit(0)
		}
		if msg.Kind == protocol.MessageTypeKeepalive {
			continue
		}
		fmt.Printf("\n<< %s %s\n> ", msg.Kind, msg.Payload)
	}
}

// dispatch runs one REPL command. It returns false when the client should
// exit.
func dispatch(conn net.Conn, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		fmt.Println(`commands:
  create <name>              create a room
  enter <room_id> <name>     join a room
  exit                       leave the current room
  name <name>                change display name
  pieces <n>                 set piece count (master)
  ready <true|false>         toggle ready
  kick <client_id>           kick a player (master)
  start                      start the game (master)
  roll                       roll the sticks
  move <roll> <piece> <cell> submit a move
  endmove <roll> <piece> <cell>  ack the current move
  quit                       disconnect`)

	case "quit":
		return false

	case "create":
		send(conn, protocol.MessageTypeCreateRoom, obj{"name": strings.Join(args, " ")})
	case "enter":
		if len(args) < 2 {
			fmt.Println("usage: enter <room_id> <name>")
			break
		}
		send(conn, protocol.MessageTypeEnterRoom, obj{"room_id": args[0], "name": strings.Join(args[1:], " ")})
	case "exit":
		send(conn, protocol.MessageTypeExitRoom, nil)
	case "name":
		send(conn, protocol.MessageTypeChangeName, obj{"name": strings.Join(args, " ")})
	case "pieces":
		n, err := strconv.Atoi(argOr(args, 0))
		if err != nil {
			fmt.Println("usage: pieces <n>")
			break
		}
		send(conn, protocol.MessageTypeSetPieceCount, obj{"piece_count": n})
	case "ready":
		send(conn, protocol.MessageTypePlayerReady, obj{"is_ready": argOr(args, 0) != "false"})
	case "kick":
		send(conn, protocol.MessageTypeKickPlayer, obj{"player": argOr(args, 0)})
	case "start":
		send(conn, protocol.MessageTypeStartGame, nil)
	case "roll":
		send(conn, protocol.MessageTypeBeginRoll, nil)
	case "move", "endmove":
		if len(args) < 3 {
			fmt.Printf("usage: %s <roll> <piece> <cell>\n", cmd)
			break
		}
		roll, err1 := strconv.Atoi(args[0])
		piece, err2 := strconv.Atoi(args[1])
		cell, err3 := strconv.Atoi(args[2])
		if err1 != nil || err2 != nil || err3 != nil {
			fmt.Printf("usage: %s <roll> <piece> <cell>\n", cmd)
			break
		}
		kind := protocol.MessageTypeBeginMove
		if cmd == "endmove" {
			kind = protocol.MessageTypeEndMove
		}
		send(conn, kind, obj{"roll": roll, "piece": piece, "cell": cell})

	default:
		fmt.Printf("unknown command %q, try 'help'\n", cmd)
	}
	return true
}

type obj map[string]interface{}

func argOr(args []string, idx int) string {
	if idx < len(args) {
		return args[idx]
	}
	return ""
}

func send(conn net.Conn, kind protocol.MessageType, payload obj) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			fmt.Printf("marshal: %v\n", err)
			return
		}
	}
	frame := make([]byte, protocol.HeaderSize+len(body))
	frame[0] = byte(kind)
	binary.BigEndian.PutUint16(frame[1:], uint16(len(body)))
	copy(frame[protocol.HeaderSize:], body)
	if err := protocol.WriteFrame(conn, frame); err != nil {
		fmt.Printf("write: %v\n", err)
	}
}

package game

import (
	"math/rand"
	"time"
)

// Callbacks is how an Instance reports game-flow transitions to its owner.
// The room actor translates each hook into wire messages; the instance
// itself never touches the transport. Nil hooks are skipped.
type Callbacks struct {
	// OnGameStarted fires after a successful start; the owner should
	// announce the starting player and the first turn.
	OnGameStarted func(starting ClientID)
	// OnRolled fires for every dice roll with the drawn value and whether
	// it was appended to the roll pool.
	OnRolled func(player ClientID, roll int, appended bool)
	// OnCanRoll fires whenever the turn player becomes entitled to roll.
	OnCanRoll func(player ClientID)
	// OnTurnEnded fires when the turn passes to the next player; OnCanRoll
	// follows with the same player.
	OnTurnEnded func(next ClientID)
	// OnSelectingMove fires when the turn player must pick a move.
	OnSelectingMove func(player ClientID)
	// OnMoveAccepted fires when a submitted move passed all legality
	// checks and the room is now waiting for end-of-move acks.
	OnMoveAccepted func(player ClientID, mv Move, finished bool)
	// OnMoveRejected fires when a submitted move was illegal; state is
	// unchanged.
	OnMoveRejected func(player ClientID)
	// OnGameEnded fires when the turn player finished all active pieces.
	OnGameEnded func(winner ClientID)
}

// Instance holds the game data of one room and drives the turn/roll/move
// state machine. It is owned exclusively by the room actor; no method is
// safe for concurrent use.
type Instance struct {
	players             []Player
	pieceCount          uint8
	state               State
	turnIdx             int
	rolls               []int
	endMoveAcks         map[ClientID]struct{}
	currentMove         Move
	currentMoveFinishes bool
	rng                 *rand.Rand
	cb                  Callbacks
}

// NewInstance creates an empty instance in the GameEnded (lobby) state.
// A nil rng gets a time-seeded source; tests pass their own for
// deterministic rolls.
func NewInstance(cb Callbacks, rng *rand.Rand) *Instance {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Instance{
		pieceCount:  MinPieceCount,
		state:       StateGameEnded,
		endMoveAcks: make(map[ClientID]struct{}),
		rng:         rng,
		cb:          cb,
	}
}

func (g *Instance) State() State      { return g.state }
func (g *Instance) PieceCount() uint8 { return g.pieceCount }
func (g *Instance) Rolls() []int      { return g.rolls }

// Players exposes the member list in join order. The slice is owned by the
// instance; callers must not retain it across mutations.
func (g *Instance) Players() []Player { return g.players }

func (g *Instance) PlayerCount() int { return len(g.players) }

// TurnPlayer returns the identity of the player whose turn it is.
func (g *Instance) TurnPlayer() ClientID {
	if len(g.players) == 0 {
		return ""
	}
	return g.players[g.turnIdx].ID
}

func (g *Instance) playerIndex(id ClientID) int {
	for idx := range g.players {
		if g.players[idx].ID == id {
			return idx
		}
	}
	return -1
}

// IsMember reports whether id belongs to this room.
func (g *Instance) IsMember(id ClientID) bool {
	return g.playerIndex(id) != -1
}

// AddPlayer appends a new member with all pieces at home.
func (g *Instance) AddPlayer(id ClientID, name string) {
	g.players = append(g.players, Player{
		ID:     id,
		Name:   name,
		Pieces: homePieces(),
	})
}

// RemovePlayer takes a member out of the game. A departure while a game is
// running resets the whole instance first, so the survivors land back in the
// lobby with their pieces at home. The member is swap-removed.
func (g *Instance) RemovePlayer(id ClientID) bool {
	idx := g.playerIndex(id)
	if idx == -1 {
		return false
	}
	if g.state != StateGameEnded {
		g.Reset()
	}
	last := len(g.players) - 1
	g.players[idx] = g.players[last]
	g.players = g.players[:last]
	return true
}

// SetReady flips a member's ready flag.
func (g *Instance) SetReady(id ClientID, ready bool) bool {
	idx := g.playerIndex(id)
	if idx == -1 {
		return false
	}
	g.players[idx].IsReady = ready
	return true
}

// Rename updates a member's display name.
func (g *Instance) Rename(id ClientID, name string) bool {
	idx := g.playerIndex(id)
	if idx == -1 {
		return false
	}
	g.players[idx].Name = name
	return true
}

// SetPieceCount sets the number of active pieces per player, clamped to
// [MinPieceCount, MaxPieceCount]. Only legal in the lobby. Returns the
// clamped value and whether it was applied.
func (g *Instance) SetPieceCount(n uint8) (uint8, bool) {
	if g.state != StateGameEnded {
		return 0, false
	}
	if n > MaxPieceCount {
		n = MaxPieceCount
	}
	if n < MinPieceCount {
		n = MinPieceCount
	}
	g.pieceCount = n
	return n, true
}

// Reset re-homes every piece, clears the ready flags and the roll pool, and
// returns the state machine to GameEnded. Applying it twice equals applying
// it once.
func (g *Instance) Reset() {
	g.state = StateGameEnded
	g.turnIdx = 0
	g.rolls = g.rolls[:0]
	g.currentMove = Move{}
	g.currentMoveFinishes = false
	clear(g.endMoveAcks)
	for idx := range g.players {
		g.players[idx].IsReady = false
		g.players[idx].Pieces = homePieces()
	}
}

// Start begins a fresh game: every member must be ready, at least two must
// be present, and no game may be running. On success the pieces are
// re-homed, a starting player is drawn uniformly at random and the machine
// enters CanRoll.
func (g *Instance) Start() bool {
	if g.state != StateGameEnded {
		return false
	}
	if len(g.players) < MinPlayerCount {
		return false
	}
	for _, p := range g.players {
		if !p.IsReady {
			return false
		}
	}
	g.Reset()
	g.turnIdx = g.rng.Intn(len(g.players))
	g.state = StateCanRoll
	starter := g.players[g.turnIdx].ID
	if g.cb.OnGameStarted != nil {
		g.cb.OnGameStarted(starter)
	}
	if g.cb.OnCanRoll != nil {
		g.cb.OnCanRoll(starter)
	}
	return true
}

// roll draws from the weighted stick distribution:
// -1 and 0 at 10% each, +1..+3 at 20% each, +4 and +5 at 10% each.
func (g *Instance) roll() int {
	v := g.rng.Intn(100)
	switch {
	case v < 10:
		return -1
	case v < 20:
		return 0
	case v < 40:
		return 1
	case v < 60:
		return 2
	case v < 80:
		return 3
	case v < 90:
		return 4
	default:
		return 5
	}
}

// BeginRoll performs a dice roll for the turn player. Requests from any
// other player or in any other state are ignored. The drawn value mutates
// the roll pool: 0 clears it, -1 with an empty pool and every piece still
// at home is discarded, anything else is appended. A 4 or 5 entitles the
// player to roll again; an empty pool ends the turn; otherwise the player
// picks a move.
func (g *Instance) BeginRoll(from ClientID) {
	if g.state != StateCanRoll {
		return
	}
	player := &g.players[g.turnIdx]
	if player.ID != from {
		return
	}

	n := g.roll()
	appended := true
	if n == 0 {
		appended = false
		g.rolls = g.rolls[:0]
	}
	allAtStart := true
	for i := 0; i < int(g.pieceCount); i++ {
		if !player.Pieces[i].AtStart {
			allAtStart = false
			break
		}
	}
	if n == -1 && allAtStart && len(g.rolls) == 0 {
		appended = false
	}
	if appended {
		g.rolls = append(g.rolls, n)
	}
	if g.cb.OnRolled != nil {
		g.cb.OnRolled(from, n, appended)
	}

	switch {
	case n == 4 || n == 5:
		g.state = StateCanRoll
		if g.cb.OnCanRoll != nil {
			g.cb.OnCanRoll(from)
		}
	case len(g.rolls) == 0:
		g.advanceTurn()
	default:
		g.state = StateSelectingMove
		if g.cb.OnSelectingMove != nil {
			g.cb.OnSelectingMove(from)
		}
	}
}

func (g *Instance) advanceTurn() {
	g.turnIdx = (g.turnIdx + 1) % len(g.players)
	g.state = StateCanRoll
	next := g.players[g.turnIdx].ID
	if g.cb.OnTurnEnded != nil {
		g.cb.OnTurnEnded(next)
	}
	if g.cb.OnCanRoll != nil {
		g.cb.OnCanRoll(next)
	}
}

// BeginMove validates a move submitted by the turn player. A legal move
// consumes one occurrence of the roll from the pool, snapshots the move,
// resets the ack set and enters the BeginMove state; an illegal one reports
// rejection to the initiator and leaves everything unchanged.
func (g *Instance) BeginMove(from ClientID, mv Move) {
	reject := func() {
		if g.cb.OnMoveRejected != nil {
			g.cb.OnMoveRejected(from)
		}
	}
	if g.state != StateSelectingMove {
		reject()
		return
	}
	player := &g.players[g.turnIdx]
	if player.ID != from || mv.Piece < 0 || mv.Piece >= int(g.pieceCount) {
		reject()
		return
	}
	piece := player.Pieces[mv.Piece]
	if piece.Finished {
		reject()
		return
	}
	rollIdx := -1
	for idx, roll := range g.rolls {
		if roll == mv.Roll {
			rollIdx = idx
			break
		}
	}
	if rollIdx == -1 {
		reject()
		return
	}
	ok, finish := legalTarget(piece, mv.Roll, mv.Cell)
	if !ok {
		reject()
		return
	}

	g.rolls = append(g.rolls[:rollIdx], g.rolls[rollIdx+1:]...)
	clear(g.endMoveAcks)
	g.currentMove = mv
	g.currentMoveFinishes = finish
	g.state = StateBeginMove
	if g.cb.OnMoveAccepted != nil {
		g.cb.OnMoveAccepted(from, mv, finish)
	}
}

// EndMove records one member's animation-complete ack for the current move.
// Once every member has acked, the move is applied atomically: the carry set
// advances, opponents on the target cell are sent home, and the machine
// moves to GameEnded, CanRoll (stomp or turn change) or SelectingMove.
func (g *Instance) EndMove(from ClientID, mv Move) {
	if g.state != StateBeginMove {
		return
	}
	if !g.IsMember(from) || mv != g.currentMove {
		return
	}
	g.endMoveAcks[from] = struct{}{}
	if len(g.endMoveAcks) != len(g.players) {
		return
	}
	g.applyCurrentMove()
}

func (g *Instance) applyCurrentMove() {
	player := &g.players[g.turnIdx]
	mv := g.currentMove
	moved := player.Pieces[mv.Piece]

	if moved.AtStart {
		// A piece entering the board moves alone.
		player.Pieces[mv.Piece] = Piece{
			AtStart:  false,
			Finished: g.currentMoveFinishes,
			Cell:     mv.Cell,
		}
	} else {
		// Stacking: every on-board piece sharing the source cell moves
		// together.
		for i := 0; i < int(g.pieceCount); i++ {
			p := player.Pieces[i]
			if p.Finished || p.AtStart || p.Cell != moved.Cell {
				continue
			}
			p.Cell = mv.Cell
			p.Finished = g.currentMoveFinishes
			player.Pieces[i] = p
		}
	}

	// Stomp: opponent pieces on the landing cell go home.
	stomped := false
	for idx := range g.players {
		if idx == g.turnIdx {
			continue
		}
		opp := &g.players[idx]
		for i := 0; i < int(g.pieceCount); i++ {
			p := opp.Pieces[i]
			if p.Finished || p.AtStart || p.Cell != mv.Cell {
				continue
			}
			p.Cell = CellBottomRight
			p.AtStart = true
			opp.Pieces[i] = p
			stomped = true
		}
	}

	finished := 0
	for i := 0; i < int(g.pieceCount); i++ {
		if player.Pieces[i].Finished {
			finished++
		}
	}

	switch {
	case finished == int(g.pieceCount):
		g.state = StateGameEnded
		if g.cb.OnGameEnded != nil {
			g.cb.OnGameEnded(player.ID)
		}
	case stomped:
		g.state = StateCanRoll
		if g.cb.OnCanRoll != nil {
			g.cb.OnCanRoll(player.ID)
		}
	case len(g.rolls) == 0:
		g.advanceTurn()
	default:
		g.state = StateSelectingMove
		if g.cb.OnSelectingMove != nil {
			g.cb.OnSelectingMove(player.ID)
		}
	}
}

package board

import "github.com/younwookim/connectfour/internal/application/state"

// Player is one side of a match. A nil Computer means a human.
type Player struct {
	Name     string
	Computer *Computer
}

// IsComputer reports whether moves are chosen by a computer.
func (p Player) IsComputer() bool { return p.Computer != nil }

// Outcome is the result of a finished match. Draw matches have no winner.
type Outcome struct {
	Winner string
	Draw   bool
}

// Move is a disc placed during a match.
type Move struct {
	Column int
	Row    int
	Disc   Disc
}

// Match is a game between two players on one board.
type Match struct {
	board   *Board
	players [2]Player
	turn    int
	moves   []Move
	outcome *Outcome
}

// NewMatch starts a match on an empty cols x rows board. p1 moves first.
func NewMatch(cols, rows int, p1, p2 Player) *Match {
	return &Match{
		board:   New(cols, rows),
		players: [2]Player{p1, p2},
	}
}

// Board returns the live board. Callers must not drop discs on it.
func (m *Match) Board() *Board { return m.board }

// Players returns both players in turn order.
func (m *Match) Players() [2]Player { return m.players }

// Current returns the player to move.
func (m *Match) Current() Player { return m.players[m.turn] }

// CurrentDisc returns the disc of the player to move.
func (m *Match) CurrentDisc() Disc { return Disc(m.turn + 1) }

// Moves returns the moves so far, oldest first.
func (m *Match) Moves() []Move { return m.moves }

// LastMove returns the latest move.
func (m *Match) LastMove() (Move, bool) {
	if len(m.moves) == 0 {
		return Move{}, false
	}
	return m.moves[len(m.moves)-1], true
}

// Outcome returns the result once the match is over.
func (m *Match) Outcome() (Outcome, bool) {
	if m.outcome == nil {
		return Outcome{}, false
	}
	return *m.outcome, true
}

// Finished reports whether the match is over.
func (m *Match) Finished() bool { return m.outcome != nil }

// Status reports what the match waits for: Winner once it is over,
// ComputerTurn when a computer is to move, otherwise Running.
func (m *Match) Status() state.Code {
	switch {
	case m.outcome != nil:
		return state.Winner
	case m.Current().IsComputer():
		return state.ComputerTurn
	}
	return state.Running
}

// Advance drops the current player's disc in col and reports the new
// status. A move into a full or missing column is ignored.
func (m *Match) Advance(col int) state.Code {
	if m.outcome != nil {
		return state.Winner
	}
	d := m.CurrentDisc()
	row, err := m.board.Drop(col, d)
	if err != nil {
		return m.Status()
	}
	m.moves = append(m.moves, Move{Column: col, Row: row, Disc: d})

	switch {
	case m.board.Connects(col, row):
		m.outcome = &Outcome{Winner: m.Current().Name}
	case m.board.Full():
		m.outcome = &Outcome{Draw: true}
	default:
		m.turn = 1 - m.turn
	}
	return m.Status()
}

// ComputerMove lets the computer to move pick a column. It returns false
// when a human is to move or the match is over.
func (m *Match) ComputerMove() (int, bool) {
	p := m.Current()
	if !p.IsComputer() || m.outcome != nil {
		return -1, false
	}
	return p.Computer.Choose(m.board, m.CurrentDisc()), true
}

// Reset clears the board and gives the first move back to the first player.
func (m *Match) Reset() {
	m.board = New(m.board.Columns(), m.board.Rows())
	m.turn = 0
	m.moves = nil
	m.outcome = nil
}

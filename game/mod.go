package game

// Player identifies a side. The searcher never looks inside it, it only
// compares players for equality.
type Player uint8

const (
	NoPlayer Player = iota
	First
	Second
)

// Other returns the opposing player. NoPlayer has no opponent.
func (p Player) Other() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case First:
		return "Player1"
	case Second:
		return "Player2"
	default:
		return "None"
	}
}

// Move identifies a move in a position, e.g. a column index.
type Move int

// NoMove is returned when a search produced no move (terminal root or depth 0).
const NoMove Move = -1

// StateKey is a canonical, comparable encoding of a position: two positions
// with the same placement and the same player to move share a key no matter
// which move order produced them.
type StateKey string

// Transition pairs a move with the position it leads to.
type Transition struct {
	Move  Move
	State State
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player   // player to move
	Opponent() Player // player not to move
	Moves() []Transition
	Winner() Player // NoPlayer if no one has won yet
	IsTie() bool
	Tokens() int // pieces placed so far
	Key() StateKey
}

// Grid exposes the board contents that heuristics score.
type Grid interface {
	State
	Rows() int
	Cols() int
	Cell(row, col int) Player
	Chains(p Player) []Chain
	LongestChain(p Player) int
}

// Evaluates the game state to a score from the perspective of the player to
// move. Scores >= WinThreshold mean that player has won, <= -WinThreshold lost.
type Evaluate func(State) float64

// Generate lists the (move, resulting state) pairs reachable in one ply.
type Generate func(State) []Transition

// Terminal reports whether the search should stop descending at state with
// depth plies of budget left.
type Terminal func(depth int, state State) bool

// NextMoves is the default move generator: the state's own ordering.
func NextMoves(s State) []Transition {
	return s.Moves()
}

// IsOver reports whether the game has ended in a win or a tie.
func IsOver(s State) bool {
	return s.Winner() != NoPlayer || s.IsTie()
}

// IsTerminal is the default terminal test: out of depth or game over.
func IsTerminal(depth int, s State) bool {
	return depth <= 0 || IsOver(s)
}

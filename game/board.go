package game

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultRows   = 6
	DefaultCols   = 7
	ConnectLength = 4 // chain length that wins the game
)

var (
	ErrColumnOutOfRange = errors.New("column out of range")
	ErrColumnFull       = errors.New("column is full")
	ErrGameOver         = errors.New("game is over")
)

// Cell is a board coordinate. Row 0 is the top row, tokens fall towards
// row Rows()-1.
type Cell struct {
	Row int
	Col int
}

// Chain is a maximal contiguous run of one player's pieces along a single
// direction.
type Chain []Cell

// Vertical, horizontal and the two diagonals.
var directions = [4]Cell{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Board is a Connect Four position. It is never modified after construction:
// Play and Moves return new boards that share nothing mutable with it.
type Board struct {
	rows   int
	cols   int
	cells  []Player // Row-major
	player Player   // Player to move
	tokens int
	winner Player
}

// NewBoard returns an empty board where First moves first.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 || rows > 255 || cols > 255 {
		panic(fmt.Sprintf("invalid board size %dx%d", rows, cols))
	}
	return &Board{
		rows:   rows,
		cols:   cols,
		cells:  make([]Player, rows*cols),
		player: First,
	}
}

// NewStandardBoard returns an empty 6x7 board.
func NewStandardBoard() *Board {
	return NewBoard(DefaultRows, DefaultCols)
}

// FromMoves plays the given columns in order on an empty standard board.
func FromMoves(cols ...int) (*Board, error) {
	b := NewStandardBoard()
	for i, col := range cols {
		next, err := b.Play(col)
		if err != nil {
			return nil, fmt.Errorf("move %d (column %d): %w", i+1, col, err)
		}
		b = next
	}
	return b, nil
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

func (b *Board) Player() Player   { return b.player }
func (b *Board) Opponent() Player { return b.player.Other() }
func (b *Board) Winner() Player   { return b.winner }
func (b *Board) Tokens() int      { return b.tokens }

func (b *Board) IsTie() bool {
	return b.winner == NoPlayer && b.tokens == b.rows*b.cols
}

// Cell returns the occupant of a cell, NoPlayer if empty or off the board.
func (b *Board) Cell(row, col int) Player {
	if !b.inside(row, col) {
		return NoPlayer
	}
	return b.cells[row*b.cols+col]
}

func (b *Board) inside(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsColumnFull reports whether no more tokens fit in col.
func (b *Board) IsColumnFull(col int) bool {
	return b.cells[col] != NoPlayer
}

// Play drops a token for the player to move into col.
func (b *Board) Play(col int) (*Board, error) {
	if col < 0 || col >= b.cols {
		return nil, fmt.Errorf("column %d: %w", col, ErrColumnOutOfRange)
	}
	if IsOver(b) {
		return nil, ErrGameOver
	}
	if b.IsColumnFull(col) {
		return nil, fmt.Errorf("column %d: %w", col, ErrColumnFull)
	}
	return b.drop(col), nil
}

// drop assumes col is on the board and not full.
func (b *Board) drop(col int) *Board {
	row := b.rows - 1
	for b.cells[row*b.cols+col] != NoPlayer {
		row--
	}

	cells := make([]Player, len(b.cells))
	copy(cells, b.cells)
	cells[row*b.cols+col] = b.player

	next := &Board{
		rows:   b.rows,
		cols:   b.cols,
		cells:  cells,
		player: b.player.Other(),
		tokens: b.tokens + 1,
	}
	for _, d := range directions {
		if next.runThrough(row, col, d) >= ConnectLength {
			next.winner = b.player
			break
		}
	}
	return next
}

// runThrough measures the run containing (row, col) along direction d.
func (b *Board) runThrough(row, col int, d Cell) int {
	p := b.Cell(row, col)
	length := 1
	for r, c := row+d.Row, col+d.Col; b.inside(r, c) && b.Cell(r, c) == p; r, c = r+d.Row, c+d.Col {
		length++
	}
	for r, c := row-d.Row, col-d.Col; b.inside(r, c) && b.Cell(r, c) == p; r, c = r-d.Row, c-d.Col {
		length++
	}
	return length
}

// ColumnOrder lists columns from the center outwards, left before right.
func (b *Board) ColumnOrder() []int {
	order := make([]int, 0, b.cols)
	center := b.cols / 2
	order = append(order, center)
	for offset := 1; len(order) < b.cols; offset++ {
		if left := center - offset; left >= 0 {
			order = append(order, left)
		}
		if right := center + offset; right < b.cols {
			order = append(order, right)
		}
	}
	return order
}

// Moves returns one transition per non-full column in center-out order, or
// nothing once the game is over.
func (b *Board) Moves() []Transition {
	if IsOver(b) {
		return nil
	}
	transitions := make([]Transition, 0, b.cols)
	for _, col := range b.ColumnOrder() {
		if !b.IsColumnFull(col) {
			transitions = append(transitions, Transition{Move: Move(col), State: b.drop(col)})
		}
	}
	return transitions
}

// Key packs the dimensions, the player to move and every cell.
func (b *Board) Key() StateKey {
	buf := make([]byte, 0, len(b.cells)+3)
	buf = append(buf, byte(b.rows), byte(b.cols), byte(b.player))
	for _, p := range b.cells {
		buf = append(buf, byte(p))
	}
	return StateKey(buf)
}

// WithTurn returns the same placement with p to move.
func (b *Board) WithTurn(p Player) *Board {
	swapped := *b
	swapped.player = p
	return &swapped
}

// Chains returns every maximal run of p's pieces in each of the four
// directions, single pieces included. Each piece belongs to exactly four
// chains.
func (b *Board) Chains(p Player) []Chain {
	if p == NoPlayer {
		return nil
	}
	var chains []Chain
	for _, d := range directions {
		for row := 0; row < b.rows; row++ {
			for col := 0; col < b.cols; col++ {
				if b.Cell(row, col) != p {
					continue
				}
				// Only start from the head of a run
				if b.inside(row-d.Row, col-d.Col) && b.Cell(row-d.Row, col-d.Col) == p {
					continue
				}
				var chain Chain
				for r, c := row, col; b.inside(r, c) && b.Cell(r, c) == p; r, c = r+d.Row, c+d.Col {
					chain = append(chain, Cell{Row: r, Col: c})
				}
				chains = append(chains, chain)
			}
		}
	}
	return chains
}

// LongestChain returns the length of p's longest chain, 0 if p has no pieces.
func (b *Board) LongestChain(p Player) int {
	longest := 0
	for _, chain := range b.Chains(p) {
		longest = max(longest, len(chain))
	}
	return longest
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			switch b.Cell(row, col) {
			case First:
				sb.WriteByte('X')
			case Second:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	for col := 0; col < b.cols; col++ {
		sb.WriteString(fmt.Sprint(col % 10))
	}
	return sb.String()
}

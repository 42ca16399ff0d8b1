package engine

import (
	"errors"
	"fmt"
)

// Size is the grid dimension; the game is fixed at 3x3.
const Size = 3

const emptyKey = '-'

var ErrInvalidKey = errors.New("invalid board key")

// Mark - the content of one cell: X, O or Empty.
type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent - returns the other playing mark; Empty stays Empty.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Cell - one grid coordinate, row and column both in [0, Size).
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board - the 3x3 grid of marks, row-major. The zero value is an empty board.
type Board [Size][Size]Mark

// cellOrder - every cell in fixed row-major order; move enumeration and the
// cache key both follow it.
var cellOrder = boardCells()

func boardCells() []Cell {
	cells := make([]Cell, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// At - returns the mark at cell.
func (that *Board) At(cell Cell) Mark {
	return that[cell.Row][cell.Col]
}

// Set - writes mark into cell.
func (that *Board) Set(cell Cell, mark Mark) {
	that[cell.Row][cell.Col] = mark
}

// IsFull - reports whether no empty cell remains.
func (that *Board) IsFull() bool {
	for _, cell := range cellOrder {
		if that.At(cell) == Empty {
			return false
		}
	}

	return true
}

// ValidMove - the single boundary check for a move: cell inside the grid and
// still empty.
func (that *Board) ValidMove(cell Cell) bool {
	if cell.Row < 0 || cell.Row >= Size || cell.Col < 0 || cell.Col >= Size {
		return false
	}

	return that.At(cell) == Empty
}

// Key - the canonical serialization of the position: all nine marks in
// row-major order, '-' for an empty cell. Used as the search cache key and as
// the archived form of finished boards.
func (that *Board) Key() string {
	key := make([]byte, 0, Size*Size)
	for _, cell := range cellOrder {
		mark := that.At(cell)
		if mark == Empty {
			key = append(key, emptyKey)
			continue
		}
		key = append(key, mark[0])
	}

	return string(key)
}

// ParseBoard - rebuilds a board from its canonical key.
func ParseBoard(key string) (*Board, error) {
	if len(key) != Size*Size {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	board := &Board{}
	for i, cell := range cellOrder {
		switch key[i] {
		case emptyKey:
		case 'X':
			board.Set(cell, X)
		case 'O':
			board.Set(cell, O)
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}

	return board, nil
}

package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameComplete = errors.New("game is already complete")
)

// Session - one game: the board plus the mark to move, with its own search
// engine. X always opens and the turn flips after every successful move. The
// engine's position cache lives exactly as long as the session and is never
// persisted.
type Session struct {
	board Board
	turn  Mark

	engine *Minimax
}

func NewSession() *Session {
	return &Session{
		turn:   X,
		engine: NewMinimax(),
	}
}

// Board - returns a snapshot of the current position.
func (that *Session) Board() Board {
	return that.board
}

// Turn - the mark that moves next.
func (that *Session) Turn() Mark {
	return that.turn
}

// IsCompleted - reports whether the game is over (won or drawn).
func (that *Session) IsCompleted() bool {
	return IsComplete(&that.board)
}

// Winner - the winning mark, or Empty while in progress or on a draw.
func (that *Session) Winner() Mark {
	return Winner(&that.board)
}

// IsValidMove - reports whether cell is inside the grid and still empty.
// Callers are expected to filter moves through this before PerformMove.
func (that *Session) IsValidMove(cell Cell) bool {
	return that.board.ValidMove(cell)
}

// PerformMove - writes the current player's mark into cell and passes the
// turn. Fails with ErrInvalidMove when the cell is out of bounds or occupied,
// leaving the board untouched.
func (that *Session) PerformMove(cell Cell) error {
	if !that.IsValidMove(cell) {
		return fmt.Errorf("%w: row %d col %d", ErrInvalidMove, cell.Row, cell.Col)
	}

	that.board.Set(cell, that.turn)
	that.turn = that.turn.Opponent()

	return nil
}

// BestMove - asks the engine for the optimal cell for the side to move
// without mutating the board. Fails with ErrGameComplete when no empty cell
// remains; callers should check IsCompleted first.
func (that *Session) BestMove() (Cell, error) {
	cell, err := that.engine.BestMove(&that.board, that.turn)
	if errors.Is(err, ErrNoAvailableMoves) {
		return Cell{}, ErrGameComplete
	}
	if err != nil {
		return Cell{}, fmt.Errorf("failed to search best move: %w", err)
	}

	return cell, nil
}

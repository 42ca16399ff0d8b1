package engine

import (
	"errors"
	"math"
)

var ErrNoAvailableMoves = errors.New("no available moves")

const winScore = 10

// Minimax - exhaustive game-tree search for the side to move. Scores are
// signed: X maximizes, O minimizes. A terminal position is worth 10-depth for
// an X win and depth-10 for an O win, where depth counts plies below the root
// of the current BestMove call, so faster wins and slower losses rank higher.
// Evaluated positions are cached by board key for the engine's lifetime.
type Minimax struct {
	cache map[string]int
}

func NewMinimax() *Minimax {
	return &Minimax{
		cache: make(map[string]int),
	}
}

// BestMove - picks the optimal cell for player on the given board. The board
// is reused as scratch space during the search: every speculative mark is
// undone before the next candidate, so the position is unchanged on return.
func (that *Minimax) BestMove(board *Board, player Mark) (Cell, error) {
	moves := AvailableMoves(board)
	if len(moves) == 0 {
		return Cell{}, ErrNoAvailableMoves
	}

	best := moves[0]
	bestScore := math.MinInt
	if player == O {
		bestScore = math.MaxInt
	}

	for _, move := range moves {
		board.Set(move, player)
		score := that.evaluate(board, 0, player.Opponent())
		board.Set(move, Empty)

		if (player == X && score > bestScore) || (player == O && score < bestScore) {
			bestScore = score
			best = move
		}
	}

	return best, nil
}

// evaluate - scores the position for the side to move, depth plies below the
// root of the current top-level call. Terminal positions are scored at the
// current depth before the cache is consulted; non-terminal results are
// memoized under the board key.
func (that *Minimax) evaluate(board *Board, depth int, player Mark) int {
	switch winner := Winner(board); winner {
	case X:
		return winScore - depth
	case O:
		return depth - winScore
	}
	if board.IsFull() {
		return 0
	}

	key := board.Key()
	if score, ok := that.cache[key]; ok {
		return score
	}

	best := math.MinInt
	if player == O {
		best = math.MaxInt
	}

	for _, move := range AvailableMoves(board) {
		board.Set(move, player)
		score := that.evaluate(board, depth+1, player.Opponent())
		board.Set(move, Empty)

		if (player == X && score > best) || (player == O && score < best) {
			best = score
		}
	}

	that.cache[key] = best

	return best
}

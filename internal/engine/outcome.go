package engine

// Winner - returns the mark holding a complete line, or Empty if neither side
// has won. X is checked before O so the answer is deterministic even on
// boards no legal game can reach.
func Winner(board *Board) Mark {
	if hasWin(board, X) {
		return X
	}
	if hasWin(board, O) {
		return O
	}

	return Empty
}

// IsComplete - reports whether the game is over: a side has won or the grid
// is full.
func IsComplete(board *Board) bool {
	return Winner(board) != Empty || board.IsFull()
}

func hasWin(board *Board, mark Mark) bool {
	for _, line := range Lines {
		if board.At(line[0]) == mark && board.At(line[1]) == mark && board.At(line[2]) == mark {
			return true
		}
	}

	return false
}

package engine

// AvailableMoves - lists every empty cell in fixed row-major order. The order
// matters: the search breaks score ties by the first candidate encountered.
func AvailableMoves(board *Board) []Cell {
	moves := make([]Cell, 0, Size*Size)
	for _, cell := range cellOrder {
		if board.At(cell) == Empty {
			moves = append(moves, cell)
		}
	}

	return moves
}

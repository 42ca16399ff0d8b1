package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_ValidMove(t *testing.T) {
	t.Run("Empty cell inside the grid", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// When: checking a cell inside the grid
		valid := board.ValidMove(Cell{Row: 1, Col: 1})

		// Then: the move should be valid
		assert.True(t, valid)
	})

	t.Run("Occupied cell", func(t *testing.T) {
		// Given: a board with a mark at (1,1)
		board := &Board{}
		board.Set(Cell{Row: 1, Col: 1}, X)

		// When: checking the same cell
		valid := board.ValidMove(Cell{Row: 1, Col: 1})

		// Then: the move should be rejected
		assert.False(t, valid)
	})

	t.Run("Out of bounds", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// Then: every coordinate outside [0,3) should be rejected
		assert.False(t, board.ValidMove(Cell{Row: 3, Col: 0}))
		assert.False(t, board.ValidMove(Cell{Row: 0, Col: 3}))
		assert.False(t, board.ValidMove(Cell{Row: -1, Col: 0}))
		assert.False(t, board.ValidMove(Cell{Row: 0, Col: -1}))
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		board := &Board{}

		assert.False(t, board.IsFull())
	})

	t.Run("Board with one empty cell is not full", func(t *testing.T) {
		// Given: a board with every cell but the last one filled
		board := &Board{
			{X, O, X},
			{O, X, O},
			{O, X, Empty},
		}

		assert.False(t, board.IsFull())
	})

	t.Run("Completely filled board is full", func(t *testing.T) {
		board := &Board{
			{X, O, X},
			{O, X, O},
			{O, X, O},
		}

		assert.True(t, board.IsFull())
	})
}

func TestBoard_Key(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// When: serializing it to its canonical key
		key := board.Key()

		// Then: all nine cells should read as empty
		assert.Equal(t, "---------", key)
	})

	t.Run("Mixed board serializes in row-major order", func(t *testing.T) {
		// Given: a board with marks across all three rows
		board := &Board{
			{X, Empty, O},
			{Empty, X, Empty},
			{O, Empty, X},
		}

		// When: serializing it to its canonical key
		key := board.Key()

		// Then: the key should follow row-major cell order
		assert.Equal(t, "X-O-X-O-X", key)
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trip recovers every mark", func(t *testing.T) {
		// Given: a board with marks of both sides
		board := &Board{
			{X, O, X},
			{Empty, O, Empty},
			{Empty, X, Empty},
		}

		// When: serializing and parsing it back
		parsed, err := ParseBoard(board.Key())

		// Then: the parsed board should match the original cell for cell
		require.NoError(t, err)
		require.Equal(t, board, parsed)
	})

	t.Run("Rejects a key of the wrong length", func(t *testing.T) {
		// When: parsing a key with fewer than nine cells
		_, err := ParseBoard("X-O")

		// Then: an ErrInvalidKey error should be returned
		require.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("Rejects a key with unknown marks", func(t *testing.T) {
		// When: parsing a key with a character that is not X, O or '-'
		_, err := ParseBoard("XO-?-----")

		// Then: an ErrInvalidKey error should be returned
		require.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestAvailableMoves(t *testing.T) {
	t.Run("Empty board lists all nine cells in row-major order", func(t *testing.T) {
		// Given: an empty board
		board := &Board{}

		// When: enumerating the available moves
		moves := AvailableMoves(board)

		// Then: every cell should be listed, top-left first
		expected := []Cell{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
			{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
			{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
		}
		require.Equal(t, expected, moves)
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		// Given: a board with two marks placed
		board := &Board{}
		board.Set(Cell{Row: 0, Col: 0}, X)
		board.Set(Cell{Row: 1, Col: 1}, O)

		// When: enumerating the available moves
		moves := AvailableMoves(board)

		// Then: only the seven empty cells should remain, order preserved
		require.Len(t, moves, 7)
		assert.NotContains(t, moves, Cell{Row: 0, Col: 0})
		assert.NotContains(t, moves, Cell{Row: 1, Col: 1})
		assert.Equal(t, Cell{Row: 0, Col: 1}, moves[0])
	})
}

func TestLines(t *testing.T) {
	// Then: the line set should hold exactly 3 rows, 3 columns and 2 diagonals
	require.Len(t, Lines, 8)

	assert.Contains(t, Lines, Line{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}})
	assert.Contains(t, Lines, Line{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}})
	assert.Contains(t, Lines, Line{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}})
	assert.Contains(t, Lines, Line{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}})
}

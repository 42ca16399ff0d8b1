package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinner(t *testing.T) {
	t.Run("X wins on a row", func(t *testing.T) {
		// Given: a board where X holds the top row
		board := &Board{
			{X, X, X},
			{O, O, Empty},
			{Empty, Empty, Empty},
		}

		// Then: X should be the winner
		assert.Equal(t, X, Winner(board))
	})

	t.Run("O wins on a column", func(t *testing.T) {
		// Given: a board where O holds the first column
		board := &Board{
			{O, X, X},
			{O, X, Empty},
			{O, Empty, Empty},
		}

		// Then: O should be the winner
		assert.Equal(t, O, Winner(board))
	})

	t.Run("X wins on the main diagonal", func(t *testing.T) {
		// Given: a board where X holds (0,0), (1,1), (2,2)
		board := &Board{
			{X, O, Empty},
			{O, X, Empty},
			{Empty, Empty, X},
		}

		// Then: X should be the winner
		assert.Equal(t, X, Winner(board))
	})

	t.Run("O wins on the anti diagonal", func(t *testing.T) {
		// Given: a board where O holds (0,2), (1,1), (2,0)
		board := &Board{
			{X, X, O},
			{X, O, Empty},
			{O, Empty, Empty},
		}

		// Then: O should be the winner
		assert.Equal(t, O, Winner(board))
	})

	t.Run("No winner while in progress", func(t *testing.T) {
		// Given: a board with no complete line
		board := &Board{
			{X, O, X},
			{Empty, O, Empty},
			{X, Empty, O},
		}

		// Then: neither side should be reported as winner
		assert.Equal(t, Empty, Winner(board))
	})

	t.Run("X is reported first on an unreachable double win", func(t *testing.T) {
		// Given: a board no legal game can reach, with a line for each side
		board := &Board{
			{X, X, X},
			{O, O, O},
			{Empty, Empty, Empty},
		}

		// Then: the answer should be deterministic, X before O
		assert.Equal(t, X, Winner(board))
	})
}

func TestIsComplete(t *testing.T) {
	t.Run("Won board with empty cells left", func(t *testing.T) {
		// Given: a board X already won
		board := &Board{
			{X, X, X},
			{O, O, Empty},
			{Empty, Empty, Empty},
		}

		assert.True(t, IsComplete(board))
	})

	t.Run("Full drawn board", func(t *testing.T) {
		// Given: a filled board without a winner
		board := &Board{
			{O, X, O},
			{O, X, X},
			{X, O, X},
		}

		assert.True(t, IsComplete(board))
	})

	t.Run("Game still in progress", func(t *testing.T) {
		// Given: a part-filled board without a winner
		board := &Board{
			{X, O, Empty},
			{Empty, X, Empty},
			{Empty, Empty, Empty},
		}

		assert.False(t, IsComplete(board))
	})

	t.Run("Empty board", func(t *testing.T) {
		assert.False(t, IsComplete(&Board{}))
	})
}

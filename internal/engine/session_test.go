package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	// When: creating a new session
	session := NewSession()

	// Then: X opens on an empty, unfinished board
	assert.Equal(t, X, session.Turn())
	assert.Equal(t, Board{}, session.Board())
	assert.False(t, session.IsCompleted())
	assert.Equal(t, Empty, session.Winner())
}

func TestSession_PerformMove(t *testing.T) {
	t.Run("Places the mark and passes the turn", func(t *testing.T) {
		// Given: a fresh session with X to move
		session := NewSession()

		// When: X plays the center
		err := session.PerformMove(Cell{Row: 1, Col: 1})

		// Then: the mark is on the board and O is to move
		require.NoError(t, err)
		board := session.Board()
		assert.Equal(t, X, board.At(Cell{Row: 1, Col: 1}))
		assert.Equal(t, O, session.Turn())
	})

	t.Run("Error on an occupied cell", func(t *testing.T) {
		// Given: a session where X already took the center
		session := NewSession()
		require.NoError(t, session.PerformMove(Cell{Row: 1, Col: 1}))
		snapshot := session.Board()

		// When: O tries the same cell
		err := session.PerformMove(Cell{Row: 1, Col: 1})

		// Then: an ErrInvalidMove error should be returned
		require.ErrorIs(t, err, ErrInvalidMove)

		// Then: the board and the turn should remain unchanged
		assert.Equal(t, snapshot, session.Board())
		assert.Equal(t, O, session.Turn())
	})

	t.Run("Error on a cell outside the grid", func(t *testing.T) {
		// Given: a fresh session
		session := NewSession()

		// When: playing outside the board
		err := session.PerformMove(Cell{Row: 3, Col: 1})

		// Then: an ErrInvalidMove error should be returned
		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("Error on negative coordinates", func(t *testing.T) {
		// Given: a fresh session
		session := NewSession()

		// When: playing a negative coordinate
		err := session.PerformMove(Cell{Row: -1, Col: 0})

		// Then: an ErrInvalidMove error should be returned
		require.ErrorIs(t, err, ErrInvalidMove)

		// Then: X is still to move
		assert.Equal(t, X, session.Turn())
	})
}

func TestSession_DiagonalWin(t *testing.T) {
	// Given: a scripted game leaving X one diagonal cell short
	//
	//	X O X
	//	O X O
	//	O X -
	session := NewSession()
	script := []Cell{
		{Row: 0, Col: 0}, // X
		{Row: 0, Col: 1}, // O
		{Row: 0, Col: 2}, // X
		{Row: 1, Col: 0}, // O
		{Row: 1, Col: 1}, // X
		{Row: 1, Col: 2}, // O
		{Row: 2, Col: 1}, // X
		{Row: 2, Col: 0}, // O
	}
	for _, cell := range script {
		require.NoError(t, session.PerformMove(cell))
	}
	require.Equal(t, X, session.Turn())
	require.False(t, session.IsCompleted())

	// When: X completes the main diagonal at (2,2)
	err := session.PerformMove(Cell{Row: 2, Col: 2})

	// Then: the move succeeds and X wins the game
	require.NoError(t, err)
	assert.True(t, session.IsCompleted())
	assert.Equal(t, X, session.Winner())
}

func TestSession_BestMove(t *testing.T) {
	t.Run("Error once the board is full", func(t *testing.T) {
		// Given: a session played to a full drawn board
		session := NewSession()
		script := []Cell{
			{Row: 1, Col: 1}, // X
			{Row: 0, Col: 0}, // O
			{Row: 0, Col: 1}, // X
			{Row: 2, Col: 1}, // O
			{Row: 1, Col: 0}, // X
			{Row: 1, Col: 2}, // O
			{Row: 0, Col: 2}, // X
			{Row: 2, Col: 0}, // O
			{Row: 2, Col: 2}, // X
		}
		for _, cell := range script {
			require.NoError(t, session.PerformMove(cell))
		}
		require.True(t, session.IsCompleted())
		require.Equal(t, Empty, session.Winner())

		// When: asking for another move
		_, err := session.BestMove()

		// Then: an ErrGameComplete error should be returned
		require.ErrorIs(t, err, ErrGameComplete)
	})

	t.Run("Leaves the position untouched", func(t *testing.T) {
		// Given: a session with a couple of moves played
		session := NewSession()
		require.NoError(t, session.PerformMove(Cell{Row: 0, Col: 0}))
		require.NoError(t, session.PerformMove(Cell{Row: 1, Col: 1}))
		snapshot := session.Board()

		// When: asking for the best move
		_, err := session.BestMove()

		// Then: neither the board nor the turn may change
		require.NoError(t, err)
		assert.Equal(t, snapshot, session.Board())
		assert.Equal(t, X, session.Turn())
	})

	t.Run("Identical sessions choose identical moves", func(t *testing.T) {
		// Given: two sessions fed the same opening
		first := NewSession()
		second := NewSession()
		opening := []Cell{
			{Row: 0, Col: 0},
			{Row: 1, Col: 1},
			{Row: 2, Col: 2},
		}
		for _, cell := range opening {
			require.NoError(t, first.PerformMove(cell))
			require.NoError(t, second.PerformMove(cell))
		}

		// When: asking both for the best move
		firstMove, err := first.BestMove()
		require.NoError(t, err)
		secondMove, err := second.BestMove()
		require.NoError(t, err)

		// Then: the evaluation is deterministic
		assert.Equal(t, firstMove, secondMove)
	})
}

package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRepository_SaveAndListRecent(t *testing.T) {
	t.Run("Saved result comes back with its board", func(t *testing.T) {
		ctx, st := suite.NewArchive(t)

		resultRepo := NewResultRepository(st.Connection)

		// Given: a finished game result
		board, err := engine.ParseBoard("XXXOO----")
		require.NoError(t, err)

		result := &entity.GameResult{
			GameID:     "123",
			Board:      *board,
			Winner:     "X",
			Moves:      5,
			FinishedAt: time.Now().UTC(),
		}

		// When: saving and listing
		require.NoError(t, resultRepo.Save(ctx, result))

		results, err := resultRepo.ListRecent(ctx, 10)
		require.NoError(t, err)

		// Then: the archived game is returned with the restored board
		require.Len(t, results, 1)
		assert.Equal(t, result.GameID, results[0].GameID)
		assert.Equal(t, result.Board, results[0].Board)
		assert.Equal(t, result.Winner, results[0].Winner)
		assert.Equal(t, result.Moves, results[0].Moves)
		assert.WithinDuration(t, result.FinishedAt, results[0].FinishedAt, time.Second)
	})

	t.Run("ListRecent returns newest first and honors the limit", func(t *testing.T) {
		ctx, st := suite.NewArchive(t)

		resultRepo := NewResultRepository(st.Connection)

		// Given: two archived games finished an hour apart
		older, err := engine.ParseBoard("XOXOXOOXO")
		require.NoError(t, err)

		newer, err := engine.ParseBoard("XXXOO----")
		require.NoError(t, err)

		finishedAt := time.Now().UTC()

		require.NoError(t, resultRepo.Save(ctx, &entity.GameResult{
			GameID:     "older",
			Board:      *older,
			Winner:     entity.PlayerTie,
			Moves:      9,
			FinishedAt: finishedAt.Add(-time.Hour),
		}))
		require.NoError(t, resultRepo.Save(ctx, &entity.GameResult{
			GameID:     "newer",
			Board:      *newer,
			Winner:     "X",
			Moves:      5,
			FinishedAt: finishedAt,
		}))

		// When: listing with a limit of one
		results, err := resultRepo.ListRecent(ctx, 1)
		require.NoError(t, err)

		// Then: only the newest game is returned
		require.Len(t, results, 1)
		assert.Equal(t, "newer", results[0].GameID)
	})

	t.Run("ListRecent on an empty archive returns nothing", func(t *testing.T) {
		ctx, st := suite.NewArchive(t)

		resultRepo := NewResultRepository(st.Connection)

		// When: listing an empty archive
		results, err := resultRepo.ListRecent(ctx, 10)

		// Then: no results and no error
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

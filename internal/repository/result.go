package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	ListRecent(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type resultRepository struct {
	conn *sql.DB
}

func NewResultRepository(conn *sql.DB) ResultRepository {
	return &resultRepository{
		conn: conn,
	}
}

// Save - archives one finished game; the board is stored as its canonical key.
func (that *resultRepository) Save(ctx context.Context, result *entity.GameResult) error {
	query := `INSERT INTO results (game_id, board, winner, moves, finished_at) VALUES (?, ?, ?, ?, ?)`

	_, err := that.conn.ExecContext(ctx, query, result.GameID, result.Board.Key(), result.Winner, result.Moves, result.FinishedAt)
	if err != nil {
		return fmt.Errorf("can't save result: %w", err)
	}

	return nil
}

// ListRecent - returns up to limit archived games, newest first.
func (that *resultRepository) ListRecent(ctx context.Context, limit int) ([]*entity.GameResult, error) {
	query := `SELECT game_id, board, winner, moves, finished_at FROM results ORDER BY finished_at DESC, id DESC LIMIT ?`

	rows, err := that.conn.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("can't list results: %w", err)
	}
	defer rows.Close()

	var results []*entity.GameResult
	for rows.Next() {
		var (
			result     entity.GameResult
			boardKey   string
			finishedAt time.Time
		)

		if err = rows.Scan(&result.GameID, &boardKey, &result.Winner, &result.Moves, &finishedAt); err != nil {
			return nil, fmt.Errorf("can't scan result: %w", err)
		}

		board, err := engine.ParseBoard(boardKey)
		if err != nil {
			return nil, fmt.Errorf("can't restore board %q: %w", boardKey, err)
		}

		result.Board = *board
		result.FinishedAt = finishedAt

		results = append(results, &result)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read results: %w", err)
	}

	return results, nil
}

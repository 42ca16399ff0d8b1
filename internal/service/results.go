package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrGameNotFinished = errors.New("game is not finished")

const defaultRecentLimit = 10

type ResultService interface {
	RecordGame(ctx context.Context, game *entity.Game) error
	RecentResults(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
	ListRecent(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type resultService struct {
	resultRepo resultRepo
}

func NewResultService(resultRepo resultRepo) ResultService {
	return &resultService{
		resultRepo: resultRepo,
	}
}

// RecordGame - archives a finished game with its final board.
func (that *resultService) RecordGame(ctx context.Context, game *entity.Game) error {
	if !game.IsFinished() {
		return fmt.Errorf("%w: game id %s", ErrGameNotFinished, game.ID)
	}

	result := &entity.GameResult{
		GameID:     game.ID,
		Board:      game.Board,
		Winner:     game.Winner,
		Moves:      game.Moves,
		FinishedAt: time.Now().UTC(),
	}

	if err := that.resultRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *resultService) RecentResults(ctx context.Context, limit int) ([]*entity.GameResult, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	results, err := that.resultRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

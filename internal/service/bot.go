package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) error
	Forget(gameID string)
}

// botService - answers with perfect play. Each game gets its own search
// engine so positions cached on earlier turns are reused on later ones.
type botService struct {
	mu      sync.Mutex
	engines map[string]*engine.Minimax
}

func NewBotService() BotService {
	return &botService{
		engines: make(map[string]*engine.Minimax),
	}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	cell, err := that.engineFor(game.ID).BestMove(&game.Board, botPlayer.Mark)
	if err != nil {
		return fmt.Errorf("failed to pick bot move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// Forget - drops the per-game engine once the game is over.
func (that *botService) Forget(gameID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.engines, gameID)
}

func (that *botService) engineFor(gameID string) *engine.Minimax {
	that.mu.Lock()
	defer that.mu.Unlock()

	eng, ok := that.engines[gameID]
	if !ok {
		eng = engine.NewMinimax()
		that.engines[gameID] = eng
	}

	return eng
}

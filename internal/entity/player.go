package entity

import (
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

const botIDPrefix = "bot:"

type Player struct {
	ID     string      `json:"id"`
	Mark   engine.Mark `json:"mark,omitempty"`
	GameID string      `json:"game_id,omitempty"`
}

// NewBotPlayer - creates the engine-driven opponent for a game.
func NewBotPlayer(gameID string) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}

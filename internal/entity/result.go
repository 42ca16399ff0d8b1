package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

// GameResult - the archived record of one finished game.
type GameResult struct {
	GameID     string       `json:"game_id"`
	Board      engine.Board `json:"board"`
	Winner     string       `json:"winner"`
	Moves      int          `json:"moves"`
	FinishedAt time.Time    `json:"finished_at"`
}

package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerTie = "-"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string       `json:"id"`
	Board   engine.Board `json:"board"`
	Winner  string       `json:"winner"`
	Status  string       `json:"status"`
	Turn    engine.Mark  `json:"player_turn"`
	Players []*Player    `json:"players,omitempty"`
	Type    string       `json:"type,omitempty"`
	Moves   int          `json:"moves"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Turn:   engine.X,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// DetermineGameResult - returns "X" or "O" for a won game, PlayerTie for a
// full drawn board, and an empty string while the game is still open.
func (that *Game) DetermineGameResult() string {
	if winner := engine.Winner(&that.Board); winner != engine.Empty {
		return string(winner)
	}

	// the game will continue until all the squares are full
	if that.Board.IsFull() {
		return PlayerTie
	}

	return ""
}

func (that *Game) UpdateGameState() {
	switch result := that.DetermineGameResult(); result {
	// one player wins or it's a tie
	case string(engine.X), string(engine.O), PlayerTie:
		that.Winner = result
		that.Status = StatusFinished
		that.Turn = engine.Empty
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark engine.Mark, cell engine.Cell) error {
	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if !that.Board.ValidMove(cell) {
		return fmt.Errorf("%w: row %d col %d", engine.ErrInvalidMove, cell.Row, cell.Col)
	}

	that.Board.Set(cell, playerMark)
	that.Moves++
	that.Turn = playerMark.Opponent()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (engine.Mark, engine.Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return engine.X, engine.O
	}
	return engine.O, engine.X
}

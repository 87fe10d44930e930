package entity

import (
	"fmt"

	"github.com/ayayrom/cs491-ex2/internal/apperror"
)

// GameStatus is the outcome of evaluating a board.
type GameStatus uint8

const (
	StatusInProgress GameStatus = iota
	StatusHumanWon
	StatusComputerWon
	StatusDraw
)

func (that GameStatus) String() string {
	switch that {
	case StatusInProgress:
		return "in_progress"
	case StatusHumanWon:
		return "human_won"
	case StatusComputerWon:
		return "computer_won"
	case StatusDraw:
		return "draw"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(that))
	}
}

// IsTerminal reports whether the status ends the game.
func (that GameStatus) IsTerminal() bool {
	return that != StatusInProgress
}

// Game is a single match between the human and the computer.
type Game struct {
	ID     string     `json:"id"`
	Board  Board      `json:"board"`
	Turn   Cell       `json:"turn"`
	Status GameStatus `json:"status"`
	Moves  int        `json:"moves"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  Board{},
		Turn:   Human,
		Status: StatusInProgress,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

// ConfirmTurn checks that the game accepts a move from player.
func (that *Game) ConfirmTurn(player Cell) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	return nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ayayrom/cs491-ex2/internal/entity"
	"github.com/ayayrom/cs491-ex2/internal/pkg"
	"github.com/ayayrom/cs491-ex2/internal/tictactoe"
)

// NoMove is returned in place of a cell when the computer did not play.
const NoMove = -1

type botService interface {
	ChooseMove(board entity.Board) (int, error)
}

// GameManager runs one game at a time for a presentation layer: it applies the human's move,
// lets the computer answer after a short pause and keeps the game status up to date.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	computerDelay time.Duration
}

func NewGameManager(logger *slog.Logger, bot botService, computerDelay time.Duration) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,

		computerDelay: computerDelay,
	}
}

func (that *GameManager) NewGame(_ context.Context) *entity.Game {
	game := entity.NewGame(pkg.GenerateGameID())
	game.Board = tictactoe.Reset()

	that.logger.Info("game started", "game_id", game.ID)

	return game
}

// ResetGame clears the board and gives the first move back to the human.
func (that *GameManager) ResetGame(_ context.Context, game *entity.Game) {
	game.Board = tictactoe.Reset()
	game.Turn = entity.Human
	game.Status = entity.StatusInProgress
	game.Moves = 0

	that.logger.Info("game reset", "game_id", game.ID)
}

// MakeTurn applies the human's move and, if the game goes on, the computer's answer.
// It returns the computer's cell or NoMove.
func (that *GameManager) MakeTurn(ctx context.Context, game *entity.Game, cell int) (int, error) {
	if err := that.PlayerTurn(ctx, game, cell); err != nil {
		return NoMove, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		return NoMove, nil
	}

	computerCell, err := that.ComputerTurn(ctx, game)
	if err != nil {
		return NoMove, fmt.Errorf("computer failed to make turn: %w", err)
	}

	return computerCell, nil
}

func (that *GameManager) PlayerTurn(_ context.Context, game *entity.Game, cell int) error {
	log := that.logger.With("method", "PlayerTurn", "game_id", game.ID)

	if err := that.applyTurn(game, entity.Human, cell); err != nil {
		log.Debug("move rejected", "cell", cell, "error", err)
		return err
	}

	log.Debug("move applied", "cell", cell, "status", game.Status.String())

	return nil
}

// ComputerTurn waits the configured delay, then plays the bot's move. A canceled context only
// shortens the pause; the move itself is still completed.
func (that *GameManager) ComputerTurn(ctx context.Context, game *entity.Game) (int, error) {
	log := that.logger.With("method", "ComputerTurn", "game_id", game.ID)

	if err := game.ConfirmTurn(entity.Computer); err != nil {
		return NoMove, err
	}

	that.pause(ctx)

	cell, err := that.bot.ChooseMove(game.Board)
	if err != nil {
		return NoMove, fmt.Errorf("failed to choose move: %w", err)
	}

	if err = that.applyTurn(game, entity.Computer, cell); err != nil {
		return NoMove, err
	}

	log.Debug("move applied", "cell", cell, "status", game.Status.String())

	return cell, nil
}

func (that *GameManager) applyTurn(game *entity.Game, player entity.Cell, cell int) error {
	if err := game.ConfirmTurn(player); err != nil {
		return err
	}

	board, err := tictactoe.ApplyMove(game.Board, cell, player)
	if err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	game.Board = board
	game.Moves++
	game.Status = tictactoe.Evaluate(board)

	if game.IsFinished() {
		that.logger.Info("game finished", "game_id", game.ID, "status", game.Status.String(), "moves", game.Moves)
		return nil
	}

	game.Turn = tictactoe.NextTurn(player)

	return nil
}

func (that *GameManager) pause(ctx context.Context) {
	if that.computerDelay <= 0 {
		return
	}

	timer := time.NewTimer(that.computerDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ayayrom/cs491-ex2/internal/apperror"
	"github.com/ayayrom/cs491-ex2/internal/usecase"
)

// handleStart - begins a game, reusing the current one when there is one.
func (that *Server) handleStart(ctx context.Context, _ string, writer *strings.Builder) error {
	if that.game == nil {
		that.game = that.uGame.NewGame(ctx)
	} else {
		that.uGame.ResetGame(ctx, that.game)
	}
	that.active = true

	that.renderBoard(writer, that.game.Board)
	writer.WriteString("Your move: pick a cell from 1 to 9.\n")

	return nil
}

// handleReset - clears the board and waits for start, like the page's Reset button.
func (that *Server) handleReset(ctx context.Context, _ string, writer *strings.Builder) error {
	if that.game != nil {
		that.uGame.ResetGame(ctx, that.game)
	}
	that.active = false

	writer.WriteString("Board cleared. Type 'start' to play.\n")

	return nil
}

func (that *Server) handleHelp(_ context.Context, _ string, writer *strings.Builder) error {
	writeHelp(writer)
	return nil
}

func (that *Server) handleQuit(_ context.Context, _ string, writer *strings.Builder) error {
	writer.WriteString("Bye!\n")
	return errQuit
}

// handleMove - plays the human's cell given in 1..9 and shows the computer's answer.
func (that *Server) handleMove(ctx context.Context, command string, writer *strings.Builder) error {
	if !that.active || that.game == nil {
		writer.WriteString("No game in progress. Type 'start' to play.\n")
		return nil
	}

	number, err := strconv.Atoi(command)
	if err != nil {
		return fmt.Errorf("failed to parse cell %q: %w", command, err)
	}

	computerCell, err := that.uGame.MakeTurn(ctx, that.game, number-1)
	switch {
	case errors.Is(err, apperror.ErrGameFinished):
		writer.WriteString("The game is over. Type 'start' for a new one.\n")
		return nil
	case errors.Is(err, apperror.ErrInvalidMove):
		fmt.Fprintf(writer, "Cell %s is not available.\n", command)
		return nil
	case err != nil:
		writer.WriteString("Something went wrong, the move was not completed.\n")
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if computerCell != usecase.NoMove {
		fmt.Fprintf(writer, "Computer played %d.\n", computerCell+1)
	}

	that.renderBoard(writer, that.game.Board)
	that.renderStatus(writer, that.game.Status)

	return nil
}

func writeHelp(writer *strings.Builder) {
	writer.WriteString("Commands:\n")
	writer.WriteString("  start   begin a game (you move first)\n")
	writer.WriteString("  1-9     play a cell, numbered left to right, top to bottom\n")
	writer.WriteString("  reset   clear the board\n")
	writer.WriteString("  help    show this list\n")
	writer.WriteString("  quit    leave\n")
}

package tictactoe

import (
	"fmt"

	"github.com/ayayrom/cs491-ex2/internal/apperror"
	"github.com/ayayrom/cs491-ex2/internal/entity"
)

// Reset returns a board with nine empty cells.
func Reset() entity.Board {
	return entity.Board{}
}

// ApplyMove returns a copy of board with cell set to player. The board passed in is left untouched.
func ApplyMove(board entity.Board, cell int, player entity.Cell) (entity.Board, error) {
	if err := validateMove(board, cell, player); err != nil {
		return board, err
	}

	board[cell] = player

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int, player entity.Cell) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if !player.IsPlayer() {
		return fmt.Errorf("%w: unknown player %d", apperror.ErrInvalidMove, player)
	}

	if board[cell] != entity.Empty {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, cell)
	}

	return nil
}

// Winner returns the owner of the first completed line in scan order.
func Winner(board entity.Board) (entity.Cell, bool) {
	for _, line := range entity.Lines {
		a := board[line[0]]
		if a.IsPlayer() && a == board[line[1]] && a == board[line[2]] {
			return a, true
		}
	}

	return entity.Empty, false
}

// Evaluate reports the status of board. Every line is checked for a win before the board is checked for a draw.
func Evaluate(board entity.Board) entity.GameStatus {
	if winner, ok := Winner(board); ok {
		if winner == entity.Human {
			return entity.StatusHumanWon
		}
		return entity.StatusComputerWon
	}

	if board.IsFull() {
		return entity.StatusDraw
	}

	return entity.StatusInProgress
}

// NextTurn returns the side that moves after player.
func NextTurn(player entity.Cell) entity.Cell {
	if player == entity.Human {
		return entity.Computer
	}
	return entity.Human
}

package service

import (
	"math/rand"

	"github.com/ayayrom/cs491-ex2/internal/apperror"
	"github.com/ayayrom/cs491-ex2/internal/entity"
)

type BotService interface {
	ChooseMove(board entity.Board) (int, error)
}

type botService struct {
	rnd *rand.Rand
}

// NewBotService returns the computer opponent. rnd drives the fallback move when neither side threatens a line.
func NewBotService(rnd *rand.Rand) BotService {
	return &botService{
		rnd: rnd,
	}
}

// ChooseMove picks the computer's cell: win now, otherwise block the human, otherwise take the center, otherwise a random free cell.
func (that *botService) ChooseMove(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, apperror.ErrNoMovesAvailable
	}

	if cell, ok := completingMove(board, availableCells, entity.Computer); ok {
		return cell, nil
	}

	if cell, ok := completingMove(board, availableCells, entity.Human); ok {
		return cell, nil
	}

	if board[entity.CenterCell] == entity.Empty {
		return entity.CenterCell, nil
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}

// completingMove returns the first free cell that would give player a full line.
// board is a value, so the probe never reaches the caller's board.
func completingMove(board entity.Board, availableCells []int, player entity.Cell) (int, bool) {
	for _, cell := range availableCells {
		probe := board
		probe[cell] = player

		if completesLine(probe, cell, player) {
			return cell, true
		}
	}

	return -1, false
}

// completesLine reports whether a line through cell is owned by player.
func completesLine(board entity.Board, cell int, player entity.Cell) bool {
	for _, line := range entity.Lines {
		if (line[0] == cell || line[1] == cell || line[2] == cell) && board.Owns(player, line) {
			return true
		}
	}

	return false
}

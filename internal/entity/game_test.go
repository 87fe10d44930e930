package entity

import (
	"testing"

	"github.com/ayayrom/cs491-ex2/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: creating a new game
	game := NewGame("123")

	// Then: the board is empty, the human moves first and the game is in progress
	expectedGame := &Game{
		ID:     "123",
		Board:  Board{Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty, Empty},
		Turn:   Human,
		Status: StatusInProgress,
	}

	require.Equal(t, expectedGame, game)
	assert.True(t, game.IsOngoing())
	assert.False(t, game.IsFinished())
}

func TestGameStatus_IsTerminal(t *testing.T) {
	t.Run("InProgress is not terminal", func(t *testing.T) {
		assert.False(t, StatusInProgress.IsTerminal())
	})

	t.Run("Wins and draw are terminal", func(t *testing.T) {
		for _, status := range []GameStatus{StatusHumanWon, StatusComputerWon, StatusDraw} {
			assert.True(t, status.IsTerminal(), status.String())
		}
	})
}

func TestGame_ConfirmTurn(t *testing.T) {
	t.Run("Returns nil when it is the player's turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123")

		// When: the human asks to move
		err := game.ConfirmTurn(Human)

		// Then: the move is allowed
		assert.NoError(t, err)
	})

	t.Run("Returns ErrNotYourTurn when the other side is to move", func(t *testing.T) {
		// Given: a new game where the human moves first
		game := NewGame("123")

		// When: the computer asks to move
		err := game.ConfirmTurn(Computer)

		// Then: it should return ErrNotYourTurn
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Returns ErrGameFinished when the game is over", func(t *testing.T) {
		// Given: a drawn game
		game := &Game{Status: StatusDraw, Turn: Human}

		// When: the human asks to move
		err := game.ConfirmTurn(Human)

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Empty board lists every index", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, Board{}.EmptyCells())
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		// Given: a board with a few moves
		board := Board{
			Human, Empty, Computer,
			Empty, Human, Empty,
			Computer, Empty, Empty,
		}

		// Then: only free cells are returned in ascending order
		assert.Equal(t, []int{1, 3, 5, 7, 8}, board.EmptyCells())
		assert.False(t, board.IsFull())
	})

	t.Run("Full board has no free cells", func(t *testing.T) {
		board := Board{
			Human, Computer, Human,
			Human, Computer, Computer,
			Computer, Human, Human,
		}

		assert.Empty(t, board.EmptyCells())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Owns(t *testing.T) {
	board := Board{
		Human, Human, Human,
		Computer, Computer, Empty,
		Empty, Empty, Empty,
	}

	assert.True(t, board.Owns(Human, Lines[0]))
	assert.False(t, board.Owns(Computer, Lines[1]))
	assert.False(t, board.Owns(Empty, Lines[2]))
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "X", Human.String())
	assert.Equal(t, "O", Computer.String())
	assert.Equal(t, "", Empty.String())
}

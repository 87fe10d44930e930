package console

import (
	"strconv"
	"strings"

	"github.com/ayayrom/cs491-ex2/internal/entity"
)

const (
	humanColor    = "#E06C75"
	computerColor = "#61AFEF"
	freeColor     = "8"
)

func (that *Server) renderBoard(writer *strings.Builder, board entity.Board) {
	for row := 0; row < 3; row++ {
		if row > 0 {
			writer.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				writer.WriteString("|")
			}

			writer.WriteString(" ")
			writer.WriteString(that.renderCell(board, row*3+col))
			writer.WriteString(" ")
		}

		writer.WriteString("\n")
	}
}

func (that *Server) renderCell(board entity.Board, index int) string {
	switch cell := board[index]; cell {
	case entity.Human:
		return that.output.String(cell.String()).Foreground(that.output.Color(humanColor)).Bold().String()
	case entity.Computer:
		return that.output.String(cell.String()).Foreground(that.output.Color(computerColor)).Bold().String()
	default:
		return that.output.String(strconv.Itoa(index + 1)).Foreground(that.output.Color(freeColor)).String()
	}
}

func (that *Server) renderStatus(writer *strings.Builder, status entity.GameStatus) {
	var message string

	switch status {
	case entity.StatusHumanWon:
		message = "You won!"
	case entity.StatusComputerWon:
		message = "You lost!"
	case entity.StatusDraw:
		message = "It's a draw!"
	default:
		return
	}

	writer.WriteString(that.output.String(message).Bold().String())
	writer.WriteString("\n")
}

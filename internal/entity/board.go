package entity

// Cell is the content of one board position.
type Cell uint8

const (
	Empty Cell = iota
	Human
	Computer
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// CenterCell is the index of the middle cell.
const CenterCell = 4

// Board is a 3x3 grid stored row-major: row = index/3, column = index%3.
type Board [BoardSize]Cell

// Lines are the eight index triples that win the game: three rows, three columns and two diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

func (that Cell) String() string {
	switch that {
	case Human:
		return "X"
	case Computer:
		return "O"
	default:
		return ""
	}
}

// IsPlayer reports whether the cell value names a side rather than Empty.
func (that Cell) IsPlayer() bool {
	return that == Human || that == Computer
}

// EmptyCells returns indices of free cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

// Owns reports whether all three cells of line belong to player.
func (that Board) Owns(player Cell, line [3]int) bool {
	return player.IsPlayer() &&
		that[line[0]] == player && that[line[1]] == player && that[line[2]] == player
}

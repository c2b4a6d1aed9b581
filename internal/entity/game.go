package entity

import "strings"

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize - number of cells on the board.
const BoardSize = 9

// Board holds the cells in row-major order, index 0 is the top-left cell.
type Board [BoardSize]Mark

// WinLine is a triple of cell indices forming a row, a column or a diagonal.
type WinLine [3]int

// Move is a cell index in the range [0, BoardSize).
type Move int

var WinCombos = [8]WinLine{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// String renders the board as nine characters, '_' marks an empty cell.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('_')
			continue
		}
		sb.WriteString(string(cell))
	}

	return sb.String()
}

func (that Move) Valid() bool {
	return that >= 0 && that < BoardSize
}

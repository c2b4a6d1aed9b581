package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// Winner - returns the first line fully held by mark.
func Winner(board entity.Board, mark entity.Mark) (entity.WinLine, bool) {
	if mark == entity.EmptyCell {
		return entity.WinLine{}, false
	}

	for _, combo := range entity.WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return combo, true
		}
	}

	return entity.WinLine{}, false
}

// IsFull - checks that no empty cell is left.
func IsFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// LegalMoves - returns the empty cells in ascending order.
func LegalMoves(board entity.Board) []entity.Move {
	moves := make([]entity.Move, 0, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			moves = append(moves, entity.Move(i))
		}
	}

	return moves
}

// Apply - returns a copy of board with mark placed on move. The given board is left untouched.
func Apply(board entity.Board, move entity.Move, mark entity.Mark) (entity.Board, error) {
	if !move.Valid() {
		return board, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, move)
	}

	if board[move] != entity.EmptyCell {
		return board, fmt.Errorf("%w: cell %d", apperror.ErrIllegalMove, move)
	}

	board[move] = mark

	return board, nil
}

// Undo - returns a copy of board with the cell at move cleared.
func Undo(board entity.Board, move entity.Move) entity.Board {
	if move.Valid() {
		board[move] = entity.EmptyCell
	}

	return board
}

// Classify - the terminal check run after every move.
func Classify(board entity.Board, playerMark, botMark entity.Mark) (entity.Outcome, entity.WinLine) {
	if line, ok := Winner(board, playerMark); ok {
		return entity.OutcomePlayerWins, line
	}

	if line, ok := Winner(board, botMark); ok {
		return entity.OutcomeBotWins, line
	}

	// the game will continue until all the squares are full
	if IsFull(board) {
		return entity.OutcomeDraw, entity.WinLine{}
	}

	return entity.OutcomeContinue, entity.WinLine{}
}

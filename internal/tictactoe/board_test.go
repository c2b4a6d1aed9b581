package tictactoe

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestWinner(t *testing.T) {
	t.Run("Returns every fixed line for the mark holding it", func(t *testing.T) {
		for _, combo := range entity.WinCombos {
			// Given: a board where X holds exactly one line
			var board entity.Board
			for _, idx := range combo {
				board[idx] = x
			}

			// When: looking for a winner
			line, ok := Winner(board, x)

			// Then: the line is reported for X and nothing for O
			require.True(t, ok)
			assert.Equal(t, combo, line)

			_, ok = Winner(board, o)
			assert.False(t, ok)
		}
	})

	t.Run("Returns the first line in scan order", func(t *testing.T) {
		// Given: X holds the top row and the left column
		board := entity.Board{
			x, x, x,
			x, o, o,
			x, o, e,
		}

		// When: looking for a winner
		line, ok := Winner(board, x)

		// Then: the row comes first
		require.True(t, ok)
		assert.Equal(t, entity.WinLine{0, 1, 2}, line)
	})

	t.Run("No line on an ongoing board", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			e, o, e,
			x, e, e,
		}

		_, ok := Winner(board, x)
		assert.False(t, ok)

		_, ok = Winner(board, o)
		assert.False(t, ok)
	})

	t.Run("Empty mark never wins", func(t *testing.T) {
		_, ok := Winner(entity.Board{}, e)
		assert.False(t, ok)
	})
}

func TestIsFullMatchesLegalMoves(t *testing.T) {
	rnd := rand.New(rand.NewSource(7)) //nolint: gosec // deterministic fixture

	for iter := 0; iter < 500; iter++ {
		// Given: a random board
		var board entity.Board
		for i := range board {
			board[i] = []entity.Mark{e, x, o}[rnd.Intn(3)]
		}

		// When: checking fullness and legal moves
		full := IsFull(board)
		moves := LegalMoves(board)

		// Then: the board is full exactly when no legal move exists
		assert.Equal(t, full, len(moves) == 0, board.String())
	}
}

func TestLegalMoves(t *testing.T) {
	t.Run("Ascending order of empty cells", func(t *testing.T) {
		board := entity.Board{
			e, x, e,
			o, e, x,
			e, o, e,
		}

		assert.Equal(t, []entity.Move{0, 2, 4, 6, 8}, LegalMoves(board))
	})

	t.Run("Drawn board has no legal moves", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		assert.Empty(t, LegalMoves(board))
		assert.True(t, IsFull(board))
	})
}

func TestApply(t *testing.T) {
	t.Run("Places the mark on a copy", func(t *testing.T) {
		// Given: an empty board
		original := entity.Board{}

		// When: player X plays the centre
		next, err := Apply(original, 4, x)

		// Then: only the copy changes
		require.NoError(t, err)
		assert.Equal(t, x, next[4])
		assert.Equal(t, entity.Board{}, original)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		board := entity.Board{x}

		next, err := Apply(board, 0, o)

		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, board, next)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		_, err := Apply(entity.Board{}, 9, x)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		_, err = Apply(entity.Board{}, -1, x)
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Apply then Undo restores the board", func(t *testing.T) {
		rnd := rand.New(rand.NewSource(11)) //nolint: gosec // deterministic fixture

		for iter := 0; iter < 200; iter++ {
			// Given: a random partially filled board
			var board entity.Board
			for i := range board {
				board[i] = []entity.Mark{e, e, x, o}[rnd.Intn(4)]
			}

			for _, move := range LegalMoves(board) {
				// When: a mark is placed and taken back
				next, err := Apply(board, move, o)
				require.NoError(t, err)

				// Then: the original board is restored
				assert.Equal(t, board, Undo(next, move))
			}
		}
	})
}

func TestClassify(t *testing.T) {
	t.Run("Player wins", func(t *testing.T) {
		board := entity.Board{
			x, o, e,
			x, o, e,
			x, e, e,
		}

		outcome, line := Classify(board, x, o)

		assert.Equal(t, entity.OutcomePlayerWins, outcome)
		assert.Equal(t, entity.WinLine{0, 3, 6}, line)
	})

	t.Run("Bot wins", func(t *testing.T) {
		board := entity.Board{
			x, x, o,
			e, o, e,
			o, x, e,
		}

		outcome, line := Classify(board, x, o)

		assert.Equal(t, entity.OutcomeBotWins, outcome)
		assert.Equal(t, entity.WinLine{2, 4, 6}, line)
	})

	t.Run("Draw", func(t *testing.T) {
		// Given: a full board with no winner
		board := entity.Board{
			o, x, o,
			o, x, x,
			x, o, x,
		}

		// When: classifying it
		outcome, _ := Classify(board, x, o)

		// Then: it is a draw and no legal move remains
		assert.Equal(t, entity.OutcomeDraw, outcome)
		assert.Empty(t, LegalMoves(board))
	})

	t.Run("Win on the last cell beats the draw", func(t *testing.T) {
		board := entity.Board{
			x, o, x,
			o, x, o,
			o, x, x,
		}

		outcome, line := Classify(board, x, o)

		assert.Equal(t, entity.OutcomePlayerWins, outcome)
		assert.Equal(t, entity.WinLine{0, 4, 8}, line)
	})

	t.Run("Continue", func(t *testing.T) {
		outcome, _ := Classify(entity.Board{x, o}, x, o)

		assert.Equal(t, entity.OutcomeContinue, outcome)
	})
}

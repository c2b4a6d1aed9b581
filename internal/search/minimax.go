// Package search picks the bot move with an exhaustive minimax search.
package search

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

const (
	scoreWin  = 1
	scoreLoss = -1
	scoreDraw = 0
)

// Engine is stateless, one value can serve any number of games.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// run holds the state of a single BestMove call.
type run struct {
	board  entity.Board
	bot    entity.Mark
	player entity.Mark
	nodes  int
}

// BestMove - returns the optimal move for botMark. Ties go to the lowest cell index.
func (that *Engine) BestMove(board entity.Board, botMark, playerMark entity.Mark) entity.SearchResult {
	r := &run{
		board:  board,
		bot:    botMark,
		player: playerMark,
	}

	result := entity.SearchResult{Score: math.MinInt}
	for _, move := range tictactoe.LegalMoves(r.board) {
		r.board[move] = botMark
		value := r.minimax(false, math.MinInt, math.MaxInt)
		r.board[move] = entity.EmptyCell

		if value > result.Score {
			result.Score = value
			result.Move = move
			result.Found = true
		}
	}

	if !result.Found {
		result.Score = scoreDraw
	}
	result.Nodes = r.nodes

	return result
}

// minimax mutates r.board in place. Every placement is cleared before the
// pruning check, so the board is intact on every return path.
func (r *run) minimax(isMax bool, alpha, beta int) int {
	r.nodes++

	if _, ok := tictactoe.Winner(r.board, r.bot); ok {
		return scoreWin
	}
	if _, ok := tictactoe.Winner(r.board, r.player); ok {
		return scoreLoss
	}
	if tictactoe.IsFull(r.board) {
		return scoreDraw
	}

	if isMax {
		best := math.MinInt
		for i := range r.board {
			if r.board[i] != entity.EmptyCell {
				continue
			}

			r.board[i] = r.bot
			value := r.minimax(false, alpha, beta)
			r.board[i] = entity.EmptyCell

			best = max(best, value)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := math.MaxInt
	for i := range r.board {
		if r.board[i] != entity.EmptyCell {
			continue
		}

		r.board[i] = r.player
		value := r.minimax(true, alpha, beta)
		r.board[i] = entity.EmptyCell

		best = min(best, value)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}

	return best
}

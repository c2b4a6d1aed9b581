package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/repository"
	"github.com/rocketscienceinc/tictactoe-desktop/internal/tictactoe"
)

type searcher interface {
	BestMove(board entity.Board, botMark, playerMark entity.Mark) entity.SearchResult
}

type moveCache interface {
	Get(ctx context.Context, board entity.Board, botMark entity.Mark) (entity.SearchResult, error)
	Save(ctx context.Context, board entity.Board, botMark entity.Mark, result entity.SearchResult) error
}

// TurnController sequences the human and the bot over one shared board.
// It is not safe for concurrent use; the presentation layer calls it from a single goroutine.
type TurnController struct {
	logger   *slog.Logger
	searcher searcher
	cache    moveCache

	playerMark entity.Mark
	botMark    entity.Mark

	board entity.Board
	state State
	score entity.Score
}

// NewTurnController - the human plays X and opens every round, the bot plays O.
// cache may be nil.
func NewTurnController(logger *slog.Logger, searcher searcher, cache moveCache) *TurnController {
	playerMark := entity.PlayerX

	return &TurnController{
		logger:     logger.With("component", "turn_controller"),
		searcher:   searcher,
		cache:      cache,
		playerMark: playerMark,
		botMark:    playerMark.Opponent(),
		state:      StateAwaitingPlayerMove,
	}
}

// PlayerMove - applies the human move. Moves out of turn or onto a taken cell are
// ignored and reported as not accepted.
func (that *TurnController) PlayerMove(cell int) (entity.TurnReport, bool) {
	log := that.logger.With("method", "PlayerMove", "cell", cell)

	if that.state != StateAwaitingPlayerMove {
		log.Debug("move ignored", "state", that.state)
		return entity.TurnReport{}, false
	}

	move := entity.Move(cell)
	board, err := tictactoe.Apply(that.board, move, that.playerMark)
	if err != nil {
		log.Debug("move ignored", "error", err)
		return entity.TurnReport{}, false
	}

	that.board = board
	that.transition(StatePlayerMoveApplied)

	return that.checkTerminal(StateCheckAfterPlayer, move, that.playerMark, StateAwaitingBotMove), true
}

// BotMove - searches and applies the bot reply.
func (that *TurnController) BotMove(ctx context.Context) (entity.TurnReport, error) {
	log := that.logger.With("method", "BotMove")

	if that.state.IsTerminal() {
		return entity.TurnReport{}, apperror.ErrGameFinished
	}

	if that.state != StateAwaitingBotMove {
		return entity.TurnReport{}, apperror.ErrNotYourTurn
	}

	result := that.bestMove(ctx)
	if !result.Found {
		return entity.TurnReport{}, apperror.ErrNoLegalMove
	}

	board, err := tictactoe.Apply(that.board, result.Move, that.botMark)
	if err != nil {
		return entity.TurnReport{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Info("bot moved", "move", result.Move, "score", result.Score, "nodes", result.Nodes)

	that.board = board
	that.transition(StateBotMoveApplied)

	report := that.checkTerminal(StateCheckAfterBot, result.Move, that.botMark, StateAwaitingPlayerMove)
	report.Nodes = result.Nodes

	return report, nil
}

// NewRound - clears the board and hands the first move to the human. The score is kept.
func (that *TurnController) NewRound() {
	that.board = entity.Board{}
	that.transition(StateAwaitingPlayerMove)
}

func (that *TurnController) Board() entity.Board {
	return that.board
}

func (that *TurnController) State() State {
	return that.state
}

func (that *TurnController) Score() entity.Score {
	return that.score
}

func (that *TurnController) PlayerMark() entity.Mark {
	return that.playerMark
}

// bestMove - asks the cache first; cache failures only cost a fresh search.
func (that *TurnController) bestMove(ctx context.Context) entity.SearchResult {
	log := that.logger.With("method", "bestMove", "board", that.board.String())

	if that.cache != nil {
		cached, err := that.cache.Get(ctx, that.board, that.botMark)
		switch {
		case err == nil && cached.Found && cached.Move.Valid() && that.board[cached.Move] == entity.EmptyCell:
			log.Debug("cache hit", "move", cached.Move)
			return cached
		case err == nil:
			log.Warn("cached move is not playable, searching again", "move", cached.Move)
		case !errors.Is(err, repository.ErrMoveNotCached):
			log.Warn("could not read move cache", "error", err)
		}
	}

	result := that.searcher.BestMove(that.board, that.botMark, that.playerMark)

	if that.cache != nil && result.Found {
		if err := that.cache.Save(ctx, that.board, that.botMark, result); err != nil {
			log.Warn("could not save move to cache", "error", err)
		}
	}

	return result
}

func (that *TurnController) checkTerminal(check State, move entity.Move, mark entity.Mark, next State) entity.TurnReport {
	that.transition(check)

	outcome, line := tictactoe.Classify(that.board, that.playerMark, that.botMark)
	report := entity.TurnReport{
		Board:   that.board,
		Mark:    mark,
		Move:    move,
		Outcome: outcome,
		Line:    line,
	}

	if outcome.IsTerminal() {
		that.score.Record(outcome)
		that.transition(terminalState(outcome))
		that.logger.Info("round finished", "outcome", outcome, "board", that.board.String())

		return report
	}

	that.transition(next)

	return report
}

func (that *TurnController) transition(to State) {
	that.logger.Debug("state changed", "from", that.state, "to", to)
	that.state = to
}

// Package tui is the terminal front end: it renders the board and forwards key presses to the turn controller.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

const helpText = "[::d]1-9 or arrows+Enter: play   n: new round   q: quit"

type turnController interface {
	PlayerMove(cell int) (entity.TurnReport, bool)
	BotMove(ctx context.Context) (entity.TurnReport, error)
	NewRound()
	Board() entity.Board
	Score() entity.Score
	PlayerMark() entity.Mark
}

type Game struct {
	logger     *slog.Logger
	ctx        context.Context
	app        *tview.Application
	controller turnController
	botDelay   time.Duration

	// schedule runs f on the UI goroutine after d.
	schedule func(d time.Duration, f func())
	screen   tcell.Screen

	root   *tview.Flex
	board  *tview.Table
	status *tview.TextView
	score  *tview.TextView

	round     int
	line      entity.WinLine
	highlight bool
}

func NewGame(ctx context.Context, logger *slog.Logger, controller turnController, botDelay time.Duration) *Game {
	g := &Game{
		logger:     logger.With("component", "tui"),
		ctx:        ctx,
		app:        tview.NewApplication(),
		controller: controller,
		botDelay:   botDelay,
	}
	g.schedule = func(d time.Duration, f func()) {
		time.AfterFunc(d, func() {
			g.app.QueueUpdateDraw(f)
		})
	}

	g.board = tview.NewTable().
		SetBorders(true).
		SetSelectable(true, true)
	g.board.SetSelectedFunc(func(row, column int) {
		g.playerTurn(int(cellIndex(row, column)))
	})
	g.board.SetBorder(true).SetTitle(" Tic Tac Toe ")

	g.status = tview.NewTextView().SetDynamicColors(true)
	g.status.SetBorder(true).SetTitle(" Status ").SetTitleAlign(tview.AlignLeft)

	g.score = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	g.score.SetBorder(true).SetTitle(" Score ").SetTitleAlign(tview.AlignLeft)

	help := tview.NewTextView().SetDynamicColors(true).SetText(helpText)

	g.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(g.board, 9, 0, true).
		AddItem(g.status, 3, 0, false).
		AddItem(g.score, 3, 0, false).
		AddItem(help, 1, 0, false)

	g.app.SetInputCapture(g.handleKey)
	g.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		g.screen = screen
		return false
	})

	g.status.SetText(fmt.Sprintf("Your turn. You play %s.", controller.PlayerMark()))
	g.refresh()

	return g
}

// Run - blocks until the player quits or ctx is canceled.
func (that *Game) Run() error {
	go func() {
		<-that.ctx.Done()
		that.app.Stop()
	}()

	if err := that.app.SetRoot(that.root, true).Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}

func (that *Game) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyRune {
		return event
	}

	switch r := event.Rune(); r {
	case 'q':
		that.app.Stop()
		return nil
	case 'n':
		that.newRound()
		return nil
	default:
		if cell, ok := keyToCell(r); ok {
			that.playerTurn(cell)
			return nil
		}
	}

	return event
}

func (that *Game) playerTurn(cell int) {
	report, accepted := that.controller.PlayerMove(cell)
	if !accepted {
		return
	}

	that.show(report)
	if report.Outcome.IsTerminal() {
		return
	}

	round := that.round
	that.schedule(that.botDelay, func() {
		// a new round was started while the bot was "thinking"
		if round != that.round {
			return
		}
		that.botTurn()
	})
}

func (that *Game) botTurn() {
	log := that.logger.With("method", "botTurn")

	report, err := that.controller.BotMove(that.ctx)
	if err != nil {
		log.Error("bot failed to make turn", "error", err)
		return
	}

	that.show(report)
}

func (that *Game) newRound() {
	that.round++
	that.highlight = false
	that.controller.NewRound()
	that.status.SetText("New round. Your turn.")
	that.refresh()
}

func (that *Game) show(report entity.TurnReport) {
	that.status.SetText(statusText(report))

	switch report.Outcome {
	case entity.OutcomePlayerWins, entity.OutcomeBotWins:
		that.line = report.Line
		that.highlight = true
		that.beep()
	case entity.OutcomeDraw:
		that.beep()
	case entity.OutcomeContinue:
	}

	that.refresh()
}

func (that *Game) beep() {
	if that.screen == nil {
		return
	}

	if err := that.screen.Beep(); err != nil {
		that.logger.Debug("terminal bell failed", "error", err)
	}
}

func (that *Game) refresh() {
	board := that.controller.Board()

	for i := range board {
		move := entity.Move(i)
		row, column := cellPosition(move)

		cell := tview.NewTableCell(cellText(board, move)).
			SetAlign(tview.AlignCenter).
			SetExpansion(1).
			SetTextColor(cellColor(board[i])).
			SetBackgroundColor(colorCell)

		if that.highlight && that.onLine(move) {
			cell.SetTextColor(tcell.ColorBlack).SetBackgroundColor(colorHighlight)
		}

		that.board.SetCell(row, column, cell)
	}

	that.score.SetText(scoreText(that.controller.Score()))
}

func (that *Game) onLine(move entity.Move) bool {
	for _, idx := range that.line {
		if entity.Move(idx) == move {
			return true
		}
	}

	return false
}

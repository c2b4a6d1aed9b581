package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

var (
	colorPlayer    = tcell.NewHexColor(0xFF6AA2)
	colorBot       = tcell.NewHexColor(0x00FFAA)
	colorHighlight = tcell.NewHexColor(0xFFD700)
	colorCell      = tcell.NewHexColor(0x222222)
	colorEmpty     = tcell.NewHexColor(0x555555)
)

// cellPosition maps a board index to its table row and column.
func cellPosition(move entity.Move) (int, int) {
	return int(move) / 3, int(move) % 3
}

func cellIndex(row, column int) entity.Move {
	return entity.Move(row*3 + column)
}

// keyToCell maps the digits 1-9 onto the board, top-left first.
func keyToCell(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}

	return int(r - '1'), true
}

func cellText(board entity.Board, move entity.Move) string {
	if board[move] == entity.EmptyCell {
		return fmt.Sprintf("%d", move+1)
	}

	return string(board[move])
}

func cellColor(mark entity.Mark) tcell.Color {
	switch mark {
	case entity.PlayerX:
		return colorPlayer
	case entity.PlayerO:
		return colorBot
	default:
		return colorEmpty
	}
}

func statusText(report entity.TurnReport) string {
	switch report.Outcome {
	case entity.OutcomePlayerWins:
		return "[#FFD700]You win![-] Press [::b]n[::-] for a new round."
	case entity.OutcomeBotWins:
		return "[#00FFAA]Bot wins![-] Press [::b]n[::-] for a new round."
	case entity.OutcomeDraw:
		return "It's a draw. Press [::b]n[::-] for a new round."
	case entity.OutcomeContinue:
	}

	if report.Mark == entity.PlayerO {
		return fmt.Sprintf("Bot analyzed %d moves. Your turn.", report.Nodes)
	}

	return "Bot is thinking..."
}

func scoreText(score entity.Score) string {
	return fmt.Sprintf("You: %d   Bot: %d   Draw: %d", score.PlayerWins, score.BotWins, score.Draws)
}

package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-desktop/internal/entity"
)

// Summary - prints the session score once the UI has released the terminal.
func Summary(w io.Writer, score entity.Score) error {
	out := termenv.NewOutput(w)

	if score.Rounds() == 0 {
		_, err := fmt.Fprintln(w, "No rounds played.")
		return err
	}

	you := out.String(fmt.Sprintf("You %d", score.PlayerWins)).Foreground(out.Color("#FF6AA2")).Bold()
	bot := out.String(fmt.Sprintf("Bot %d", score.BotWins)).Foreground(out.Color("#00FFAA")).Bold()
	draws := out.String(fmt.Sprintf("Draw %d", score.Draws)).Foreground(out.Color("#FFD700"))

	_, err := fmt.Fprintf(w, "%d rounds played: %s, %s, %s\n", score.Rounds(), you, bot, draws)

	return err
}

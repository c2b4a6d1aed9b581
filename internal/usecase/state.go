package usecase

import "github.com/rocketscienceinc/tictactoe-desktop/internal/entity"

type State string

const (
	StateAwaitingPlayerMove State = "awaiting_player_move"
	StatePlayerMoveApplied  State = "player_move_applied"
	StateCheckAfterPlayer   State = "check_terminal_after_player"
	StateAwaitingBotMove    State = "awaiting_bot_move"
	StateBotMoveApplied     State = "bot_move_applied"
	StateCheckAfterBot      State = "check_terminal_after_bot"
	StateTerminalPlayerWin  State = "terminal_player_win"
	StateTerminalBotWin     State = "terminal_bot_win"
	StateTerminalDraw       State = "terminal_draw"
)

func (that State) IsTerminal() bool {
	switch that {
	case StateTerminalPlayerWin, StateTerminalBotWin, StateTerminalDraw:
		return true
	default:
		return false
	}
}

func terminalState(outcome entity.Outcome) State {
	switch outcome {
	case entity.OutcomePlayerWins:
		return StateTerminalPlayerWin
	case entity.OutcomeBotWins:
		return StateTerminalBotWin
	case entity.OutcomeDraw:
		return StateTerminalDraw
	default:
		return ""
	}
}

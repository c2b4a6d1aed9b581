package entity

type Outcome string

const (
	OutcomeContinue   Outcome = "continue"
	OutcomePlayerWins Outcome = "player_wins"
	OutcomeBotWins    Outcome = "bot_wins"
	OutcomeDraw       Outcome = "draw"
)

func (that Outcome) IsTerminal() bool {
	return that != OutcomeContinue
}

// SearchResult is what the bot search reports for one position.
type SearchResult struct {
	Move  Move `json:"move"`
	Found bool `json:"found"`
	// Score is the minimax value of Move: 1 bot wins, 0 draw, -1 player wins.
	Score int `json:"score"`
	// Nodes counts evaluator calls made while searching. Diagnostic only.
	Nodes int `json:"nodes"`
}

// TurnReport is sent to the presentation layer after every applied move.
type TurnReport struct {
	Board   Board
	Mark    Mark
	Move    Move
	Outcome Outcome
	// Line is meaningful only when Outcome is a win.
	Line  WinLine
	Nodes int
}

type Score struct {
	PlayerWins int `json:"player_wins"`
	BotWins    int `json:"bot_wins"`
	Draws      int `json:"draws"`
}

// Record bumps the counter matching a terminal outcome; Continue is ignored.
func (that *Score) Record(outcome Outcome) {
	switch outcome {
	case OutcomePlayerWins:
		that.PlayerWins++
	case OutcomeBotWins:
		that.BotWins++
	case OutcomeDraw:
		that.Draws++
	case OutcomeContinue:
	}
}

func (that Score) Rounds() int {
	return that.PlayerWins + that.BotWins + that.Draws
}

package entity

// Outcomes are recorded from the point of view of the bucket they land
// in: in bot mode the bucket is the difficulty tier and the outcome is
// the human player's result, in PvP mode the bucket is the mark.
const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
	OutcomeDraw = "draw"
)

type Counter struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

func (that *Counter) Add(outcome string) {
	switch outcome {
	case OutcomeWin:
		that.Wins++
	case OutcomeLoss:
		that.Losses++
	case OutcomeDraw:
		that.Draws++
	}
}

// Stats is the aggregate scoreboard. BotTotal is recomputed from the
// per-difficulty counters on every load, never stored.
type Stats struct {
	Bot      map[string]Counter `json:"bot"`
	BotTotal Counter            `json:"bot_total"`
	PvP      map[string]Counter `json:"pvp"`
}

func NewStats() *Stats {
	return &Stats{
		Bot: map[string]Counter{},
		PvP: map[string]Counter{},
	}
}

package events

import "time"

// State is the lifecycle state of a game. The three states are semantically
// ordered (a game moves scheduled -> live -> final) but carry no numeric rank.
type State string

const (
	StateScheduled State = "scheduled"
	StateLive      State = "live"
	StateFinal     State = "final"
)

// TeamSide is one side of a game as reported by a feed.
type TeamSide struct {
	ID     string `json:"id"`
	Abbr   string `json:"abbreviation"`
	Score  string `json:"score"`
	Record string `json:"record,omitempty"`
	Logo   string `json:"logo,omitempty"`
}

// Leader is a statistical leader entry (passing/rushing/scoring/...).
type Leader struct {
	Athlete string `json:"athlete"`
	Display string `json:"display"`
	TeamID  string `json:"team_id,omitempty"`
}

// Situation carries in-progress situational detail (NFL only today).
type Situation struct {
	DownDistance string `json:"down_distance,omitempty"`
	Possession   string `json:"possession,omitempty"`
}

// Event is the canonical, sport-agnostic record of one game. The rotation
// layer only inspects ID, Sport and State; everything else is payload for
// projection and display.
type Event struct {
	ID        string              `json:"id"`
	Sport     string              `json:"sport"`
	State     State               `json:"state"`
	Status    string              `json:"status"`
	Clock     string              `json:"clock,omitempty"`
	Period    int                 `json:"period,omitempty"`
	StartTime time.Time           `json:"start_time,omitempty"`
	Home      TeamSide            `json:"home_team"`
	Away      TeamSide            `json:"away_team"`
	Leaders   map[string][]Leader `json:"leaders,omitempty"`
	Linescore map[string][]int    `json:"linescore,omitempty"`
	LastPlay  string              `json:"last_play,omitempty"`
	Situation Situation           `json:"situation,omitempty"`
}

// IsLive reports whether the game is in progress.
func (e Event) IsLive() bool { return e.State == StateLive }

// Package games turns canonical event records into display-ready games.
// Projection is a pure, total function: every valid event projects, missing
// optional fields just leave lines blank.
package games

import (
	"fmt"
	"strings"

	"scoreboardd/internal/events"
)

// Game is one event prepared for the display: formatted score, status and
// leader lines sized for a small matrix panel.
type Game struct {
	Event events.Event
}

// FromEvent projects an event into a displayable game.
func FromEvent(e events.Event) Game { return Game{Event: e} }

// FromEvents projects a whole fetch snapshot, preserving order.
func FromEvents(evts []events.Event) []Game {
	out := make([]Game, 0, len(evts))
	for _, e := range evts {
		out = append(out, FromEvent(e))
	}
	return out
}

func (g Game) ID() string          { return g.Event.ID }
func (g Game) Sport() string       { return g.Event.Sport }
func (g Game) State() events.State { return g.Event.State }
func (g Game) IsLive() bool        { return g.Event.IsLive() }

// ScoreLine renders "AWY 13 - 10 HOM".
func (g Game) ScoreLine() string {
	return fmt.Sprintf("%s %s - %s %s",
		g.Event.Away.Abbr, g.Event.Away.Score, g.Event.Home.Score, g.Event.Home.Abbr)
}

// StatusLine renders the human status: the feed description pre-game and
// post-game, period plus clock while live.
func (g Game) StatusLine() string {
	switch g.Event.State {
	case events.StateScheduled:
		if g.Event.Status != "" {
			return g.Event.Status
		}
		return "Scheduled"
	case events.StateFinal:
		if g.Event.Status != "" {
			return g.Event.Status
		}
		return "Final"
	}
	return strings.TrimSpace(g.periodText() + " " + g.Event.Clock)
}

// periodText formats the current period per sport: quarters for football,
// innings for baseball, halves for soccer.
func (g Game) periodText() string {
	p := g.Event.Period
	if p == 0 {
		return ""
	}
	switch g.Event.Sport {
	case "nfl":
		return fmt.Sprintf("Q%d", p)
	case "mlb":
		return fmt.Sprintf("In %d", p)
	case "prem":
		switch p {
		case 1:
			return "1H"
		case 2:
			return "2H"
		}
	}
	return fmt.Sprintf("P%d", p)
}

// LeaderLines renders up to three stat-leader lines with sport-specific
// prefixes.
func (g Game) LeaderLines() []string {
	var lines []string
	appendOne := func(prefix, key string) {
		if ls := g.Event.Leaders[key]; len(ls) > 0 {
			lines = append(lines, strings.TrimSpace(fmt.Sprintf("%s %s %s", prefix, ls[0].Athlete, ls[0].Display)))
		}
	}
	switch g.Event.Sport {
	case "nfl":
		appendOne("QB", "passing")
		appendOne("RB", "rushing")
		appendOne("WR", "receiving")
	case "mlb":
		appendOne("P", "pitching")
		appendOne("B", "batting")
	case "prem":
		for _, group := range g.Event.Leaders {
			for _, l := range group {
				lines = append(lines, strings.TrimSpace(fmt.Sprintf("G %s %s", l.Athlete, l.Display)))
				if len(lines) == 3 {
					return lines
				}
			}
		}
	default:
		for key, group := range g.Event.Leaders {
			if len(group) == 0 {
				continue
			}
			prefix := strings.ToUpper(key)
			if len(prefix) > 3 {
				prefix = prefix[:3]
			}
			lines = append(lines, strings.TrimSpace(fmt.Sprintf("%s %s %s", prefix, group[0].Athlete, group[0].Display)))
		}
	}
	if len(lines) > 3 {
		lines = lines[:3]
	}
	return lines
}

// DetailLines renders the full per-game block: score, status, and while live
// the truncated last play.
func (g Game) DetailLines() []string {
	lines := []string{g.ScoreLine(), g.StatusLine()}
	if g.Event.IsLive() && g.Event.LastPlay != "" {
		play := g.Event.LastPlay
		if len(play) > 48 {
			play = play[:48]
		}
		lines = append(lines, play)
	}
	if g.Event.IsLive() && g.Event.Situation.DownDistance != "" {
		lines = append(lines, g.Event.Situation.DownDistance)
	}
	return lines
}

package espn

import "scoreboardd/internal/events"

// normalizeMLB adds the baseball specifics: per-inning linescores attached to
// each competitor, plus pitching/batting leader categories.
func normalizeMLB(out *events.Event, comp wireCompetition) {
	out.Leaders = genericLeaders(comp.Leaders)

	linescore := map[string][]int{}
	for _, c := range comp.Competitors {
		if c.HomeAway != "home" && c.HomeAway != "away" {
			continue
		}
		innings := make([]int, 0, len(c.Linescores))
		for _, inn := range c.Linescores {
			innings = append(innings, int(inn.Value))
		}
		if len(innings) > 0 {
			linescore[c.HomeAway] = innings
		}
	}
	if len(linescore) > 0 {
		out.Linescore = linescore
	}
}

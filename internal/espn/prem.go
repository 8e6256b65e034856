package espn

import "scoreboardd/internal/events"

// normalizePrem adds the soccer specifics. The soccer endpoint rarely carries
// a simple leaders block; when it does, keep up to three entries per category
// so goal scorers can be shown.
func normalizePrem(out *events.Event, comp wireCompetition) {
	leaders := map[string][]events.Leader{}
	for _, set := range comp.Leaders {
		name := set.Name
		if name == "" {
			name = "scoring"
		}
		group := make([]events.Leader, 0, 3)
		for _, l := range set.Leaders {
			group = append(group, events.Leader{
				Athlete: l.Athlete.name(),
				Display: l.DisplayValue,
				TeamID:  l.Team.ID,
			})
			if len(group) == 3 {
				break
			}
		}
		if len(group) > 0 {
			leaders[name] = group
		}
	}
	if len(leaders) > 0 {
		out.Leaders = leaders
	}
}

package espn

import "scoreboardd/internal/events"

// normalizeNFL adds the football specifics: passing/rushing/receiving leader
// categories and the down-and-distance situation block.
func normalizeNFL(out *events.Event, comp wireCompetition) {
	leaders := map[string][]events.Leader{}
	for _, set := range comp.Leaders {
		if len(set.Leaders) == 0 {
			continue
		}
		var key string
		switch set.Name {
		case "passingLeader":
			key = "passing"
		case "rushingLeader":
			key = "rushing"
		case "receivingLeader":
			key = "receiving"
		default:
			continue
		}
		first := set.Leaders[0]
		leaders[key] = []events.Leader{{
			Athlete: first.Athlete.name(),
			Display: first.DisplayValue,
			TeamID:  first.Team.ID,
		}}
	}
	if len(leaders) > 0 {
		out.Leaders = leaders
	}
	if comp.Situation != nil {
		out.Situation = events.Situation{
			DownDistance: comp.Situation.DownDistanceText,
			Possession:   comp.Situation.Possession,
		}
	}
}

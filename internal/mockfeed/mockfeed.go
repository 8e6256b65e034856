// Package mockfeed serves static demo events for offline development, shaped
// exactly like the live adapter's output so everything downstream runs
// unchanged. Enabled with scoreboardd -run -mock.
package mockfeed

import (
	"context"
	"time"

	"scoreboardd/internal/events"
)

// Fetch implements cache.FetchFunc with canned data per sport.
func Fetch(_ context.Context, sport string) ([]events.Event, error) {
	now := time.Now().UTC()
	switch sport {
	case "nfl":
		return []events.Event{
			{
				ID: "nfl_pre_1", Sport: "nfl", State: events.StateScheduled, Status: "Scheduled",
				StartTime: now.Add(time.Hour),
				Home:      events.TeamSide{ID: "1", Abbr: "KC", Score: "0", Record: "0-0"},
				Away:      events.TeamSide{ID: "2", Abbr: "BUF", Score: "0", Record: "0-0"},
			},
			{
				ID: "nfl_in_1", Sport: "nfl", State: events.StateLive, Status: "In Progress",
				Clock: "05:12", Period: 2, StartTime: now.Add(-40 * time.Minute),
				Home:     events.TeamSide{ID: "3", Abbr: "PHI", Score: "10", Record: "0-0"},
				Away:     events.TeamSide{ID: "4", Abbr: "DAL", Score: "13", Record: "0-0"},
				LastPlay: "Pass complete short right for 8 yards",
				Situation: events.Situation{
					DownDistance: "2nd & 2 at PHI 45",
					Possession:   "4",
				},
				Leaders: map[string][]events.Leader{
					"passing": {{Athlete: "D. Prescott", Display: "188 YDS, 2 TD"}},
					"rushing": {{Athlete: "S. Barkley", Display: "64 YDS"}},
				},
			},
		}, nil
	case "mlb":
		return []events.Event{
			{
				ID: "mlb_post_1", Sport: "mlb", State: events.StateFinal, Status: "Final",
				Period: 9, StartTime: now.Add(-4 * time.Hour),
				Home:      events.TeamSide{ID: "10", Abbr: "NYY", Score: "4", Record: "0-0"},
				Away:      events.TeamSide{ID: "11", Abbr: "BOS", Score: "2", Record: "0-0"},
				Linescore: map[string][]int{"home": {0, 1, 0, 2, 0, 0, 1, 0}, "away": {0, 0, 2, 0, 0, 0, 0, 0}},
			},
			{
				ID: "mlb_in_1", Sport: "mlb", State: events.StateLive, Status: "In Progress",
				Period: 5, StartTime: now.Add(-90 * time.Minute),
				Home: events.TeamSide{ID: "12", Abbr: "LAD", Score: "3", Record: "0-0"},
				Away: events.TeamSide{ID: "13", Abbr: "SF", Score: "3", Record: "0-0"},
				Leaders: map[string][]events.Leader{
					"pitching": {{Athlete: "Y. Yamamoto", Display: "7 K"}},
					"batting":  {{Athlete: "M. Betts", Display: "2-3, HR"}},
				},
			},
		}, nil
	case "prem":
		return []events.Event{
			{
				ID: "prem_in_1", Sport: "prem", State: events.StateLive, Status: "In Progress",
				Clock: "63'", Period: 2, StartTime: now.Add(-70 * time.Minute),
				Home: events.TeamSide{ID: "20", Abbr: "ARS", Score: "2"},
				Away: events.TeamSide{ID: "21", Abbr: "LIV", Score: "1"},
				Leaders: map[string][]events.Leader{
					"scoring": {{Athlete: "B. Saka", Display: "2 G"}, {Athlete: "M. Salah", Display: "1 G"}},
				},
			},
			{
				ID: "prem_pre_1", Sport: "prem", State: events.StateScheduled, Status: "Scheduled",
				StartTime: now.Add(3 * time.Hour),
				Home:      events.TeamSide{ID: "22", Abbr: "MCI", Score: "0"},
				Away:      events.TeamSide{ID: "23", Abbr: "CHE", Score: "0"},
			},
		}, nil
	}
	return []events.Event{}, nil
}

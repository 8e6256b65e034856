package espn

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoreboardd/internal/events"
)

const nflEventJSON = `{
  "id": "401547321",
  "competitions": [{
    "startDate": "2026-09-13T17:00Z",
    "status": {
      "displayClock": "05:12",
      "period": 2,
      "type": {"state": "in", "description": "In Progress"}
    },
    "competitors": [
      {
        "homeAway": "home",
        "score": "10",
        "team": {"id": "21", "abbreviation": "PHI", "logos": [{"href": "https://cdn/phi.png"}]},
        "record": [{"summary": "1-0"}]
      },
      {
        "homeAway": "away",
        "score": "13",
        "team": {"id": "6", "abbreviation": "DAL", "logo": "https://cdn/dal.png"},
        "record": [{"summary": "0-1"}]
      }
    ],
    "situation": {
      "downDistanceText": "2nd & 2 at PHI 45",
      "possession": "6",
      "lastPlay": {"text": "Pass complete short right for 8 yards"}
    },
    "leaders": [
      {"name": "passingLeader", "leaders": [{"displayValue": "188 YDS", "athlete": {"shortName": "D. Prescott"}, "team": {"id": "6"}}]},
      {"name": "rushingLeader", "leaders": [{"displayValue": "64 YDS", "athlete": {"displayName": "Saquon Barkley"}, "team": {"id": "21"}}]}
    ]
  }]
}`

func decodeEvent(t *testing.T, raw string) wireEvent {
	t.Helper()
	var ev wireEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &ev))
	return ev
}

func TestNormalizeNFLEvent(t *testing.T) {
	got := normalizeEvent("nfl", decodeEvent(t, nflEventJSON))

	assert.Equal(t, "401547321", got.ID)
	assert.Equal(t, "nfl", got.Sport)
	assert.Equal(t, events.StateLive, got.State)
	assert.Equal(t, "In Progress", got.Status)
	assert.Equal(t, "05:12", got.Clock)
	assert.Equal(t, 2, got.Period)
	assert.Equal(t, time.Date(2026, 9, 13, 17, 0, 0, 0, time.UTC), got.StartTime.UTC())

	assert.Equal(t, "PHI", got.Home.Abbr)
	assert.Equal(t, "10", got.Home.Score)
	assert.Equal(t, "1-0", got.Home.Record)
	assert.Equal(t, "https://cdn/phi.png", got.Home.Logo)
	assert.Equal(t, "DAL", got.Away.Abbr)
	assert.Equal(t, "https://cdn/dal.png", got.Away.Logo, "single logo field used when logos list absent")

	assert.Equal(t, "Pass complete short right for 8 yards", got.LastPlay)
	assert.Equal(t, "2nd & 2 at PHI 45", got.Situation.DownDistance)
	assert.Equal(t, "6", got.Situation.Possession)

	require.Contains(t, got.Leaders, "passing")
	assert.Equal(t, "D. Prescott", got.Leaders["passing"][0].Athlete)
	require.Contains(t, got.Leaders, "rushing")
	assert.Equal(t, "Saquon Barkley", got.Leaders["rushing"][0].Athlete, "display name fallback")
	assert.NotContains(t, got.Leaders, "receiving")
}

func TestNormalizeMLBLinescore(t *testing.T) {
	raw := `{
	  "id": "mlb1",
	  "competitions": [{
	    "startDate": "2026-08-27T23:05Z",
	    "status": {"period": 5, "type": {"state": "in", "description": "In Progress"}},
	    "competitors": [
	      {"homeAway": "home", "score": "3", "team": {"id": "19", "abbreviation": "LAD"},
	       "linescores": [{"value": 0}, {"value": 1}, {"value": 0}, {"value": 2}]},
	      {"homeAway": "away", "score": "3", "team": {"id": "26", "abbreviation": "SF"},
	       "linescores": [{"value": 3}, {"value": 0}]}
	    ],
	    "leaders": [
	      {"name": "pitchingLeader", "leaders": [{"displayValue": "7 K", "athlete": {"shortName": "Y. Yamamoto"}}]}
	    ]
	  }]
	}`
	got := normalizeEvent("mlb", decodeEvent(t, raw))

	assert.Equal(t, events.StateLive, got.State)
	assert.Equal(t, []int{0, 1, 0, 2}, got.Linescore["home"])
	assert.Equal(t, []int{3, 0}, got.Linescore["away"])
	require.Contains(t, got.Leaders, "pitching")
	assert.Equal(t, "7 K", got.Leaders["pitching"][0].Display)
}

func TestNormalizePremKeepsScoringGroup(t *testing.T) {
	raw := `{
	  "id": "prem1",
	  "competitions": [{
	    "startDate": "2026-08-27T15:00Z",
	    "status": {"displayClock": "63'", "period": 2, "type": {"state": "in", "description": "In Progress"}},
	    "competitors": [
	      {"homeAway": "home", "score": "2", "team": {"id": "359", "abbreviation": "ARS"}},
	      {"homeAway": "away", "score": "1", "team": {"id": "364", "abbreviation": "LIV"}}
	    ],
	    "leaders": [
	      {"name": "", "leaders": [
	        {"displayValue": "2 G", "athlete": {"shortName": "B. Saka"}},
	        {"displayValue": "1 G", "athlete": {"shortName": "M. Salah"}},
	        {"displayValue": "1 A", "athlete": {"shortName": "M. Odegaard"}},
	        {"displayValue": "1 A", "athlete": {"shortName": "T. Alexander-Arnold"}}
	      ]}
	    ]
	  }]
	}`
	got := normalizeEvent("prem", decodeEvent(t, raw))

	require.Contains(t, got.Leaders, "scoring")
	assert.Len(t, got.Leaders["scoring"], 3, "scoring group capped at three entries")
	assert.Equal(t, "B. Saka", got.Leaders["scoring"][0].Athlete)
}

func TestStateFromWire(t *testing.T) {
	assert.Equal(t, events.StateScheduled, stateFromWire("pre"))
	assert.Equal(t, events.StateLive, stateFromWire("in"))
	assert.Equal(t, events.StateFinal, stateFromWire("post"))
	assert.Equal(t, events.StateScheduled, stateFromWire("halftime?"), "unknown states never jump the queue")
}

func TestNormalizeEmptyEventIsTotal(t *testing.T) {
	got := normalizeEvent("nfl", wireEvent{ID: "x"})
	assert.Equal(t, "x", got.ID)
	assert.Equal(t, events.StateScheduled, got.State)
	assert.Equal(t, "???", got.Home.Abbr)
	assert.Equal(t, "0", got.Home.Score)
}

func TestSplitSidesFallsBackToPosition(t *testing.T) {
	home, away := splitSides([]wireCompetitor{
		{Team: wireTeam{Abbreviation: "AAA"}},
		{Team: wireTeam{Abbreviation: "BBB"}},
	})
	assert.Equal(t, "AAA", home.Team.Abbreviation)
	assert.Equal(t, "BBB", away.Team.Abbreviation)
}

package espn

import (
	"time"

	"scoreboardd/internal/events"
)

// Wire shapes for the ESPN site API scoreboard document. Only the fields the
// normalizers read are declared; everything else in the payload is ignored.

type scoreboardResponse struct {
	Events []wireEvent `json:"events"`
}

type wireEvent struct {
	ID           string            `json:"id"`
	Competitions []wireCompetition `json:"competitions"`
}

type wireCompetition struct {
	StartDate   string           `json:"startDate"`
	Status      wireStatus       `json:"status"`
	Competitors []wireCompetitor `json:"competitors"`
	Situation   *wireSituation   `json:"situation"`
	Leaders     []wireLeaderSet  `json:"leaders"`
}

type wireStatus struct {
	DisplayClock string         `json:"displayClock"`
	Period       int            `json:"period"`
	Type         wireStatusType `json:"type"`
}

type wireStatusType struct {
	State       string `json:"state"`
	Description string `json:"description"`
}

type wireCompetitor struct {
	HomeAway   string          `json:"homeAway"`
	Score      string          `json:"score"`
	Team       wireTeam        `json:"team"`
	Records    []wireRecord    `json:"record"`
	Linescores []wireLinescore `json:"linescores"`
}

type wireTeam struct {
	ID           string     `json:"id"`
	Abbreviation string     `json:"abbreviation"`
	Logo         string     `json:"logo"`
	Logos        []wireLogo `json:"logos"`
}

type wireLogo struct {
	Href string `json:"href"`
}

type wireRecord struct {
	Summary string `json:"summary"`
}

type wireLinescore struct {
	Value float64 `json:"value"`
}

type wireSituation struct {
	DownDistanceText string        `json:"downDistanceText"`
	Possession       string        `json:"possession"`
	LastPlay         *wireLastPlay `json:"lastPlay"`
}

type wireLastPlay struct {
	Text string `json:"text"`
}

type wireLeaderSet struct {
	Name    string       `json:"name"`
	Leaders []wireLeader `json:"leaders"`
}

type wireLeader struct {
	DisplayValue string      `json:"displayValue"`
	Athlete      wireAthlete `json:"athlete"`
	Team         wireTeamRef `json:"team"`
}

type wireAthlete struct {
	ShortName   string `json:"shortName"`
	DisplayName string `json:"displayName"`
}

type wireTeamRef struct {
	ID string `json:"id"`
}

// stateFromWire maps the provider's pre|in|post lifecycle to the canonical
// states. Anything unrecognized is treated as scheduled so a feed quirk never
// jumps the rotation queue.
func stateFromWire(s string) events.State {
	switch s {
	case "in":
		return events.StateLive
	case "post":
		return events.StateFinal
	default:
		return events.StateScheduled
	}
}

var startLayouts = []string{"2006-01-02T15:04Z07:00", time.RFC3339}

func parseStart(s string) time.Time {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (t wireTeam) logoURL() string {
	if len(t.Logos) > 0 && t.Logos[0].Href != "" {
		return t.Logos[0].Href
	}
	return t.Logo
}

func sideFromCompetitor(c wireCompetitor) events.TeamSide {
	side := events.TeamSide{
		ID:    c.Team.ID,
		Abbr:  c.Team.Abbreviation,
		Score: c.Score,
		Logo:  c.Team.logoURL(),
	}
	if side.Abbr == "" {
		side.Abbr = "???"
	}
	if side.Score == "" {
		side.Score = "0"
	}
	if len(c.Records) > 0 {
		side.Record = c.Records[0].Summary
	}
	return side
}

// splitSides picks home and away competitors, falling back to positional
// order when the homeAway marker is missing.
func splitSides(competitors []wireCompetitor) (home, away wireCompetitor) {
	if len(competitors) > 0 {
		home = competitors[0]
	}
	if len(competitors) > 1 {
		away = competitors[1]
	}
	for _, c := range competitors {
		switch c.HomeAway {
		case "home":
			home = c
		case "away":
			away = c
		}
	}
	return home, away
}

func (a wireAthlete) name() string {
	if a.ShortName != "" {
		return a.ShortName
	}
	return a.DisplayName
}

// normalizeEvent converts one wire event into the canonical record, applying
// the sport-specific leader mapping and extras.
func normalizeEvent(sport string, ev wireEvent) events.Event {
	var comp wireCompetition
	if len(ev.Competitions) > 0 {
		comp = ev.Competitions[0]
	}
	homeC, awayC := splitSides(comp.Competitors)

	out := events.Event{
		ID:        ev.ID,
		Sport:     sport,
		State:     stateFromWire(comp.Status.Type.State),
		Status:    comp.Status.Type.Description,
		Clock:     comp.Status.DisplayClock,
		Period:    comp.Status.Period,
		StartTime: parseStart(comp.StartDate),
		Home:      sideFromCompetitor(homeC),
		Away:      sideFromCompetitor(awayC),
	}
	if comp.Situation != nil && comp.Situation.LastPlay != nil {
		out.LastPlay = comp.Situation.LastPlay.Text
	}

	switch sport {
	case "nfl":
		normalizeNFL(&out, comp)
	case "mlb":
		normalizeMLB(&out, comp)
	case "prem":
		normalizePrem(&out, comp)
	default:
		out.Leaders = genericLeaders(comp.Leaders)
	}
	return out
}

// genericLeaders flattens leader sets for sports without a bespoke mapping,
// trimming the provider's "...Leader" category suffix.
func genericLeaders(sets []wireLeaderSet) map[string][]events.Leader {
	out := map[string][]events.Leader{}
	for _, set := range sets {
		if len(set.Leaders) == 0 {
			continue
		}
		name := trimLeaderSuffix(set.Name)
		if name == "" {
			continue
		}
		first := set.Leaders[0]
		out[name] = append(out[name], events.Leader{
			Athlete: first.Athlete.name(),
			Display: first.DisplayValue,
			TeamID:  first.Team.ID,
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func trimLeaderSuffix(name string) string {
	const suffix = "Leader"
	if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
		return name[:len(name)-len(suffix)]
	}
	return name
}

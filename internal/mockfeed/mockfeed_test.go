package mockfeed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scoreboardd/internal/events"
)

func TestFetchCoversEveryDefaultSport(t *testing.T) {
	for _, sport := range []string{"nfl", "mlb", "prem"} {
		evts, err := Fetch(context.Background(), sport)
		require.NoError(t, err, sport)
		require.NotEmpty(t, evts, sport)

		live := false
		for _, e := range evts {
			assert.Equal(t, sport, e.Sport)
			assert.NotEmpty(t, e.ID)
			if e.State == events.StateLive {
				live = true
			}
		}
		assert.True(t, live, "%s demo data should include a live game so ordering is visible", sport)
	}
}

func TestFetchUnknownSportIsEmptyNotError(t *testing.T) {
	evts, err := Fetch(context.Background(), "nhl")
	require.NoError(t, err)
	assert.Empty(t, evts)
}

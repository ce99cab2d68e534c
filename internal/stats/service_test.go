package stats_test

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/passabola/futstats/internal/database"
	"github.com/passabola/futstats/internal/league"
	"github.com/passabola/futstats/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (stats.StatsService, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:")
	require.NoError(t, err)

	return stats.New(db), db, dbTeardown
}

func insertPlayer(t *testing.T, db *sql.DB, id, name string, active int) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO players (id, name, position, club_id, active) VALUES (?, ?, '', '', ?)`, id, name, active)
	require.NoError(t, err)
}

func insertEvent(t *testing.T, db *sql.DB, id, matchID, playerID string, kind league.EventKind, minute int) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO events (id, match_id, player_id, kind, minute, note) VALUES (?, ?, ?, ?, ?, '')`,
		id, matchID, playerID, kind, minute)
	require.NoError(t, err)
}

func TestPlayerStatsZeroForEventlessPlayer(t *testing.T) {
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	insertPlayer(t, db, "p1", "Player One", 1)

	ps, err := svc.PlayerStats("p1")
	require.NoError(t, err)
	assert.Equal(t, &stats.PlayerStats{PlayerID: "p1"}, ps)
}

func TestPlayerStatsCountsByKind(t *testing.T) {
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	insertPlayer(t, db, "p1", "Player One", 1)
	insertEvent(t, db, "e1", "m1", "p1", league.EventGoal, 10)
	insertEvent(t, db, "e2", "m1", "p1", league.EventGoal, 55)
	insertEvent(t, db, "e3", "m1", "p1", league.EventAssist, 70)
	insertEvent(t, db, "e4", "m2", "p1", league.EventYellowCard, 12)
	insertEvent(t, db, "e5", "m2", "p1", league.EventShot, 33)
	insertEvent(t, db, "e6", "m2", "p1", league.EventSave, 34)
	insertEvent(t, db, "e7", "m2", "p1", league.EventRedCard, 80)
	// Another player's events must not leak in.
	insertEvent(t, db, "e8", "m1", "p2", league.EventGoal, 44)

	ps, err := svc.PlayerStats("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, ps.Goals)
	assert.Equal(t, 1, ps.Assists)
	assert.Equal(t, 1, ps.YellowCards)
	assert.Equal(t, 1, ps.RedCards)
	assert.Equal(t, 1, ps.Shots)
	assert.Equal(t, 1, ps.Saves)
	assert.Equal(t, 2, ps.MatchesPlayed)
}

func TestMatchesPlayedCountsDistinctMatches(t *testing.T) {
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	insertPlayer(t, db, "p1", "Player One", 1)
	// Four events, all in the same match.
	insertEvent(t, db, "e1", "m1", "p1", league.EventGoal, 10)
	insertEvent(t, db, "e2", "m1", "p1", league.EventGoal, 20)
	insertEvent(t, db, "e3", "m1", "p1", league.EventAssist, 30)
	insertEvent(t, db, "e4", "m1", "p1", league.EventShot, 40)

	ps, err := svc.PlayerStats("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, ps.MatchesPlayed, "duplicate events in one match must count it once")
}

func TestRankByGoals(t *testing.T) {
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	insertPlayer(t, db, "p1", "Player One", 1)
	insertPlayer(t, db, "p2", "Player Two", 1)
	insertPlayer(t, db, "p3", "Player Three", 1)

	insertEvent(t, db, "e1", "m1", "p2", league.EventGoal, 10)
	insertEvent(t, db, "e2", "m1", "p2", league.EventGoal, 20)
	insertEvent(t, db, "e3", "m1", "p1", league.EventGoal, 30)
	insertEvent(t, db, "e4", "m1", "p3", league.EventGoal, 40)

	t.Run("sorted non-increasing with insertion-order tie-break", func(t *testing.T) {
		ranking, err := svc.RankByGoals(10)
		require.NoError(t, err)
		require.Len(t, ranking, 3)
		assert.Equal(t, "p2", ranking[0].PlayerID)
		assert.Equal(t, 2, ranking[0].Count)
		// p1 and p3 both have one goal; p1 was inserted first.
		assert.Equal(t, "p1", ranking[1].PlayerID)
		assert.Equal(t, "p3", ranking[2].PlayerID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		ranking, err := svc.RankByGoals(2)
		require.NoError(t, err)
		assert.Len(t, ranking, 2)
	})

	t.Run("limit zero yields empty ranking", func(t *testing.T) {
		ranking, err := svc.RankByGoals(0)
		require.NoError(t, err)
		assert.Empty(t, ranking)
	})

	t.Run("limit beyond roster returns everyone", func(t *testing.T) {
		ranking, err := svc.RankByGoals(50)
		require.NoError(t, err)
		assert.Len(t, ranking, 3)
	})
}

func TestRankByGoalsAggregatesOverSharedConnection(t *testing.T) {
	// The pool behind the store has a single connection. The ranking must
	// release the roster cursor before the per-player aggregation queries,
	// or each of them waits on the connection the cursor still holds.
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("p%d", i)
		insertPlayer(t, db, id, "Player "+id, 1)
		insertEvent(t, db, "e"+id, "m1", id, league.EventGoal, i)
	}

	ranking, err := svc.RankByGoals(25)
	require.NoError(t, err)
	require.Len(t, ranking, 25)
	for _, entry := range ranking {
		assert.Equal(t, 1, entry.Count)
		assert.Equal(t, 1, entry.MatchesPlayed)
	}
}

func TestRankByGoalsSkipsDeactivatedPlayers(t *testing.T) {
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	insertPlayer(t, db, "p1", "Active Player", 1)
	insertPlayer(t, db, "p2", "Retired Player", 0)
	insertEvent(t, db, "e1", "m1", "p2", league.EventGoal, 10)

	ranking, err := svc.RankByGoals(10)
	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, "p1", ranking[0].PlayerID)
}

func TestRankByGoalsEmptyRoster(t *testing.T) {
	svc, _, teardown := setupTestDB(t)
	defer teardown()

	ranking, err := svc.RankByGoals(10)
	require.NoError(t, err)
	assert.Empty(t, ranking)
}

func TestRankByAssists(t *testing.T) {
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	insertPlayer(t, db, "p1", "Player One", 1)
	insertPlayer(t, db, "p2", "Player Two", 1)
	insertEvent(t, db, "e1", "m1", "p2", league.EventAssist, 10)
	// Goals must not influence the assist ranking.
	insertEvent(t, db, "e2", "m1", "p1", league.EventGoal, 20)

	ranking, err := svc.RankByAssists(10)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, "p2", ranking[0].PlayerID)
	assert.Equal(t, 1, ranking[0].Count)
	assert.Equal(t, "p1", ranking[1].PlayerID)
	assert.Equal(t, 0, ranking[1].Count)
}

func TestStatsIndependentOfEventOrder(t *testing.T) {
	// Two logs with the same events in different order must aggregate identically.
	run := func(t *testing.T, order []int) *stats.PlayerStats {
		svc, db, teardown := setupTestDB(t)
		defer teardown()

		insertPlayer(t, db, "p1", "Player One", 1)
		kinds := []league.EventKind{league.EventGoal, league.EventAssist, league.EventGoal, league.EventSave}
		matchIDs := []string{"m1", "m1", "m2", "m2"}
		for i, idx := range order {
			insertEvent(t, db, fmt.Sprintf("e%d", i), matchIDs[idx], "p1", kinds[idx], 10+i)
		}
		ps, err := svc.PlayerStats("p1")
		require.NoError(t, err)
		return ps
	}

	forward := run(t, []int{0, 1, 2, 3})
	shuffled := run(t, []int{3, 1, 0, 2})
	assert.Equal(t, forward, shuffled)
}

func TestCompare(t *testing.T) {
	svc, db, teardown := setupTestDB(t)
	defer teardown()

	insertPlayer(t, db, "p1", "Player One", 1)
	insertPlayer(t, db, "p2", "Player Two", 1)
	insertEvent(t, db, "e1", "m1", "p1", league.EventGoal, 10)
	insertEvent(t, db, "e2", "m1", "p2", league.EventSave, 50)

	cmp, err := svc.Compare("p1", "p2")
	require.NoError(t, err)
	assert.Equal(t, "Player One", cmp.A.PlayerName)
	assert.Equal(t, 1, cmp.A.Stats.Goals)
	assert.Equal(t, "Player Two", cmp.B.PlayerName)
	assert.Equal(t, 1, cmp.B.Stats.Saves)

	t.Run("unknown player", func(t *testing.T) {
		_, err := svc.Compare("p1", "missing")
		assert.ErrorIs(t, err, league.ErrNotFound)
	})
}

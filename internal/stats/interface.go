package stats

// StatsService defines the read-only aggregation operations over the event log.
type StatsService interface {
	// PlayerStats recomputes the player's totals from the event log. Unknown
	// or eventless players yield all-zero counters, not an error.
	PlayerStats(playerID string) (*PlayerStats, error)
	// RankByGoals returns at most limit active players sorted by goals,
	// descending. Ties keep player insertion order.
	RankByGoals(limit int) ([]RankingEntry, error)
	// RankByAssists is RankByGoals for assists.
	RankByAssists(limit int) ([]RankingEntry, error)
	// Compare returns both players' stats; ErrNotFound if either id is unknown.
	Compare(playerA, playerB string) (*Comparison, error)
}

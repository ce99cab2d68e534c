package stats

// PlayerStats aggregates a player's event totals. MatchesPlayed counts
// distinct matches, so several events in the same match count it once.
type PlayerStats struct {
	PlayerID      string `json:"player_id"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	YellowCards   int    `json:"yellow_cards"`
	RedCards      int    `json:"red_cards"`
	Shots         int    `json:"shots"`
	Saves         int    `json:"saves"`
	MatchesPlayed int    `json:"matches_played"`
}

// RankingEntry is one row of a sorted, limited view over active players.
type RankingEntry struct {
	PlayerID      string `json:"player_id"`
	PlayerName    string `json:"player_name"`
	ClubID        string `json:"club_id"`
	Count         int    `json:"count"`
	MatchesPlayed int    `json:"matches_played"`
}

// ComparisonSide is one player's half of a comparison.
type ComparisonSide struct {
	PlayerID   string      `json:"player_id"`
	PlayerName string      `json:"player_name"`
	Stats      PlayerStats `json:"stats"`
}

// Comparison holds two players' statistics side by side.
type Comparison struct {
	A ComparisonSide `json:"a"`
	B ComparisonSide `json:"b"`
}

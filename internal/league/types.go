package league

import "errors"

// ErrNotFound is returned by point lookups when no record has the given id.
// Callers treat it as a normal outcome, not a failure.
var ErrNotFound = errors.New("record not found")

// EventKind enumerates the recordable match events.
type EventKind string

const (
	EventGoal       EventKind = "goal"
	EventAssist     EventKind = "assist"
	EventYellowCard EventKind = "yellow_card"
	EventRedCard    EventKind = "red_card"
	EventShot       EventKind = "shot"
	EventSave       EventKind = "save"
)

// Valid reports whether k is one of the recognized event kinds.
func (k EventKind) Valid() bool {
	switch k {
	case EventGoal, EventAssist, EventYellowCard, EventRedCard, EventShot, EventSave:
		return true
	}
	return false
}

// Club represents a football club in the store.
type Club struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Region  string   `json:"region"`
	Country string   `json:"country"`
	Founded int      `json:"founded"`
	Colors  []string `json:"colors"`
	Active  bool     `json:"active"`
}

// Player represents a registered player. ClubID is a plain reference and may
// point at a club that no longer resolves.
type Player struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	ClubID      string  `json:"club_id"`
	Jersey      int     `json:"jersey"`
	Age         int     `json:"age"`
	Nationality string  `json:"nationality"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Active      bool    `json:"active"`
}

// Championship represents a competition a match can belong to.
type Championship struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  string `json:"season"`
	Active  bool   `json:"active"`
}

// Match represents a fixture between two clubs.
type Match struct {
	ID             string `json:"id"`
	HomeClubID     string `json:"home_club_id"`
	AwayClubID     string `json:"away_club_id"`
	ChampionshipID string `json:"championship_id"`
	Date           string `json:"date"`
	HomeScore      int    `json:"home_score"`
	AwayScore      int    `json:"away_score"`
	Finalized      bool   `json:"finalized"`
}

// Event is an append-only log entry tying a player to something that happened
// in a match. Events are never updated or removed.
type Event struct {
	ID       string    `json:"id"`
	MatchID  string    `json:"match_id"`
	PlayerID string    `json:"player_id"`
	Kind     EventKind `json:"kind"`
	Minute   int       `json:"minute"`
	Note     string    `json:"note"`
}

// CreateClubParams holds the attributes for a new club.
type CreateClubParams struct {
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Region  string   `json:"region"`
	Country string   `json:"country"`
	Founded int      `json:"founded"`
	Colors  []string `json:"colors"`
}

// CreatePlayerParams holds the attributes for a new player.
type CreatePlayerParams struct {
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	ClubID      string  `json:"club_id"`
	Jersey      int     `json:"jersey"`
	Age         int     `json:"age"`
	Nationality string  `json:"nationality"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

// CreateChampionshipParams holds the attributes for a new championship.
type CreateChampionshipParams struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Season  string `json:"season"`
}

// CreateMatchParams holds the attributes for a new match. New matches start
// 0-0 and not finalized.
type CreateMatchParams struct {
	HomeClubID     string `json:"home_club_id"`
	AwayClubID     string `json:"away_club_id"`
	ChampionshipID string `json:"championship_id"`
	Date           string `json:"date"`
}

// RecordEventParams holds the attributes for a new match event.
type RecordEventParams struct {
	MatchID  string    `json:"match_id"`
	PlayerID string    `json:"player_id"`
	Kind     EventKind `json:"kind"`
	Minute   int       `json:"minute"`
	Note     string    `json:"note"`
}

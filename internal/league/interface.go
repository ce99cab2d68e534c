package league

// LeagueStore defines the interface for interacting with the league's records.
// Collections are append-only: records are deactivated, never removed, and
// listings preserve insertion order.
type LeagueStore interface {
	CreateClub(params CreateClubParams) (*Club, error)
	CreatePlayer(params CreatePlayerParams) (*Player, error)
	CreateChampionship(params CreateChampionshipParams) (*Championship, error)
	CreateMatch(params CreateMatchParams) (*Match, error)
	RecordEvent(params RecordEventParams) (*Event, error)

	GetClub(id string) (*Club, error)
	GetPlayer(id string) (*Player, error)
	GetChampionship(id string) (*Championship, error)
	GetMatch(id string) (*Match, error)

	SearchPlayersByName(term string) ([]Player, error)
	ListClubs() ([]Club, error)
	ListPlayers() ([]Player, error)
	ListChampionships() ([]Championship, error)
	ListMatches() ([]Match, error)
	ListEvents(matchID string) ([]Event, error)
	ListAllEvents() ([]Event, error)

	DeactivateClub(id string) error
	DeactivatePlayer(id string) error
	DeactivateChampionship(id string) error
	FinalizeMatch(id string, homeScore, awayScore int) error
}

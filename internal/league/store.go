package league

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

func (p CreateClubParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("club name is required")
	}
	if p.Founded < 0 {
		return errors.New("founding year cannot be negative")
	}
	return nil
}

func (p CreatePlayerParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("player name is required")
	}
	if p.Jersey < 0 {
		return errors.New("jersey number cannot be negative")
	}
	if p.Age < 0 {
		return errors.New("age cannot be negative")
	}
	if p.Height < 0 || p.Weight < 0 {
		return errors.New("height and weight cannot be negative")
	}
	return nil
}

func (p CreateChampionshipParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("championship name is required")
	}
	return nil
}

func (p CreateMatchParams) validate() error {
	if p.HomeClubID == "" || p.AwayClubID == "" {
		return errors.New("home and away club references are required")
	}
	return nil
}

func (p RecordEventParams) validate() error {
	if p.MatchID == "" || p.PlayerID == "" {
		return errors.New("match and player references are required")
	}
	if !p.Kind.Valid() {
		return fmt.Errorf("unrecognized event kind %q", p.Kind)
	}
	if p.Minute < 0 {
		return errors.New("minute cannot be negative")
	}
	return nil
}

// CreateClub validates the params, assigns a fresh id and appends the club.
func (s *store) CreateClub(params CreateClubParams) (*Club, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	club := &Club{
		ID:      uuid.NewString(),
		Name:    params.Name,
		City:    params.City,
		Region:  params.Region,
		Country: params.Country,
		Founded: params.Founded,
		Colors:  params.Colors,
		Active:  true,
	}
	colorsJSON, err := json.Marshal(club.Colors)
	if err != nil {
		return nil, err
	}
	_, err = s.db.Exec(`
		INSERT INTO clubs (id, name, city, region, country, founded, colors_json, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		club.ID, club.Name, club.City, club.Region, club.Country, club.Founded, string(colorsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to insert club: %w", err)
	}
	log.Info("Created club", "clubID", club.ID, "name", club.Name)
	return club, nil
}

// CreatePlayer validates the params, assigns a fresh id and appends the
// player. The club reference is not checked; a dangling reference simply
// fails later lookups.
func (s *store) CreatePlayer(params CreatePlayerParams) (*Player, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	player := &Player{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Position:    params.Position,
		ClubID:      params.ClubID,
		Jersey:      params.Jersey,
		Age:         params.Age,
		Nationality: params.Nationality,
		Height:      params.Height,
		Weight:      params.Weight,
		Active:      true,
	}
	_, err := s.db.Exec(`
		INSERT INTO players (id, name, position, club_id, jersey, age, nationality, height, weight, active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		player.ID, player.Name, player.Position, player.ClubID, player.Jersey,
		player.Age, player.Nationality, player.Height, player.Weight)
	if err != nil {
		return nil, fmt.Errorf("failed to insert player: %w", err)
	}
	log.Info("Created player", "playerID", player.ID, "name", player.Name)
	return player, nil
}

func (s *store) CreateChampionship(params CreateChampionshipParams) (*Championship, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	champ := &Championship{
		ID:      uuid.NewString(),
		Name:    params.Name,
		Country: params.Country,
		Season:  params.Season,
		Active:  true,
	}
	_, err := s.db.Exec(`
		INSERT INTO championships (id, name, country, season, active)
		VALUES (?, ?, ?, ?, 1)`,
		champ.ID, champ.Name, champ.Country, champ.Season)
	if err != nil {
		return nil, fmt.Errorf("failed to insert championship: %w", err)
	}
	log.Info("Created championship", "championshipID", champ.ID, "name", champ.Name)
	return champ, nil
}

func (s *store) CreateMatch(params CreateMatchParams) (*Match, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	match := &Match{
		ID:             uuid.NewString(),
		HomeClubID:     params.HomeClubID,
		AwayClubID:     params.AwayClubID,
		ChampionshipID: params.ChampionshipID,
		Date:           params.Date,
	}
	_, err := s.db.Exec(`
		INSERT INTO matches (id, home_club_id, away_club_id, championship_id, match_date, home_score, away_score, finalized)
		VALUES (?, ?, ?, ?, ?, 0, 0, 0)`,
		match.ID, match.HomeClubID, match.AwayClubID, match.ChampionshipID, match.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}
	log.Info("Created match", "matchID", match.ID, "home", match.HomeClubID, "away", match.AwayClubID)
	return match, nil
}

// RecordEvent appends an entry to the event log. Match and player references
// are taken as given, so an event may reference records that do not exist.
func (s *store) RecordEvent(params RecordEventParams) (*Event, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	event := &Event{
		ID:       uuid.NewString(),
		MatchID:  params.MatchID,
		PlayerID: params.PlayerID,
		Kind:     params.Kind,
		Minute:   params.Minute,
		Note:     params.Note,
	}
	_, err := s.db.Exec(`
		INSERT INTO events (id, match_id, player_id, kind, minute, note)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.MatchID, event.PlayerID, event.Kind, event.Minute, event.Note)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	log.Info("Recorded event", "eventID", event.ID, "matchID", event.MatchID, "kind", event.Kind)
	return event, nil
}

func (s *store) GetClub(id string) (*Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, city, region, country, founded, colors_json, active
		FROM clubs WHERE id = ?`, id)
	club, err := scanClub(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("club %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return club, nil
}

func (s *store) GetPlayer(id string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, name, position, club_id, jersey, age, nationality, height, weight, active
		FROM players WHERE id = ?`, id)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return player, nil
}

func (s *store) GetChampionship(id string) (*Championship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Championship
	err := s.db.QueryRow(`
		SELECT id, name, country, season, active
		FROM championships WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Country, &c.Season, &c.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("championship %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &c, nil
}

func (s *store) GetMatch(id string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var m Match
	err := s.db.QueryRow(`
		SELECT id, home_club_id, away_club_id, championship_id, match_date, home_score, away_score, finalized
		FROM matches WHERE id = ?`, id).
		Scan(&m.ID, &m.HomeClubID, &m.AwayClubID, &m.ChampionshipID, &m.Date, &m.HomeScore, &m.AwayScore, &m.Finalized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("match %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &m, nil
}

// likeEscaper neutralizes LIKE wildcards so a search term only ever matches
// literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchPlayersByName performs a case-insensitive substring search over all
// players, returned in insertion order. No match yields an empty slice.
func (s *store) SearchPlayersByName(term string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pattern := "%" + likeEscaper.Replace(term) + "%"
	rows, err := s.db.Query(`
		SELECT id, name, position, club_id, jersey, age, nationality, height, weight, active
		FROM players WHERE name COLLATE NOCASE LIKE ? ESCAPE '\' ORDER BY rowid`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (s *store) ListClubs() ([]Club, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, city, region, country, founded, colors_json, active
		FROM clubs WHERE active = 1 ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clubs := []Club{}
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			log.Error("Failed to scan club row", "error", err)
			continue
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

func (s *store) ListPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, position, club_id, jersey, age, nationality, height, weight, active
		FROM players WHERE active = 1 ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

func (s *store) ListChampionships() ([]Championship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, country, season, active
		FROM championships WHERE active = 1 ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	champs := []Championship{}
	for rows.Next() {
		var c Championship
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Season, &c.Active); err != nil {
			log.Error("Failed to scan championship row", "error", err)
			continue
		}
		champs = append(champs, c)
	}
	return champs, rows.Err()
}

func (s *store) ListMatches() ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, home_club_id, away_club_id, championship_id, match_date, home_score, away_score, finalized
		FROM matches ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []Match{}
	for rows.Next() {
		var m Match
		err := rows.Scan(&m.ID, &m.HomeClubID, &m.AwayClubID, &m.ChampionshipID,
			&m.Date, &m.HomeScore, &m.AwayScore, &m.Finalized)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *store) ListEvents(matchID string) ([]Event, error) {
	return s.listEvents("WHERE match_id = ?", matchID)
}

func (s *store) ListAllEvents() ([]Event, error) {
	return s.listEvents("")
}

func (s *store) listEvents(where string, args ...any) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, match_id, player_id, kind, minute, note FROM events " + where + " ORDER BY rowid"
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		var e Event
		var note sql.NullString
		if err := rows.Scan(&e.ID, &e.MatchID, &e.PlayerID, &e.Kind, &e.Minute, &note); err != nil {
			log.Error("Failed to scan event row", "error", err)
			continue
		}
		e.Note = note.String
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeactivateClub hides the club from listings. The record is never removed.
func (s *store) DeactivateClub(id string) error {
	return s.deactivate("clubs", id)
}

func (s *store) DeactivatePlayer(id string) error {
	return s.deactivate("players", id)
}

func (s *store) DeactivateChampionship(id string) error {
	return s.deactivate("championships", id)
}

func (s *store) deactivate(table, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("UPDATE "+table+" SET active = 0 WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%s %s: %w", strings.TrimSuffix(table, "s"), id, ErrNotFound)
	}
	log.Info("Deactivated record", "table", table, "id", id)
	return nil
}

// FinalizeMatch records the final score and marks the match as finalized.
func (s *store) FinalizeMatch(id string, homeScore, awayScore int) error {
	if homeScore < 0 || awayScore < 0 {
		return errors.New("scores cannot be negative")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE matches SET home_score = ?, away_score = ?, finalized = 1 WHERE id = ?`,
		homeScore, awayScore, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	log.Info("Finalized match", "matchID", id, "homeScore", homeScore, "awayScore", awayScore)
	return nil
}

func scanClub(scanner interface{ Scan(...any) error }) (*Club, error) {
	var c Club
	var colorsJSON sql.NullString
	err := scanner.Scan(&c.ID, &c.Name, &c.City, &c.Region, &c.Country, &c.Founded, &colorsJSON, &c.Active)
	if err != nil {
		return nil, err
	}
	if colorsJSON.Valid && colorsJSON.String != "" {
		if err := json.Unmarshal([]byte(colorsJSON.String), &c.Colors); err != nil {
			log.Error("Failed to unmarshal colors_json", "error", err, "clubID", c.ID)
		}
	} else {
		c.Colors = []string{}
	}
	return &c, nil
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var clubID, nationality sql.NullString
	err := scanner.Scan(&p.ID, &p.Name, &p.Position, &clubID, &p.Jersey, &p.Age,
		&nationality, &p.Height, &p.Weight, &p.Active)
	if err != nil {
		return nil, err
	}
	p.ClubID = clubID.String
	p.Nationality = nationality.String
	return &p, nil
}

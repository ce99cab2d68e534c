package stats

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/passabola/futstats/internal/league"
)

// service recomputes aggregates from the event log on every call. There is no
// cached counter to invalidate, so results only depend on the log contents,
// never on event ordering.
type service struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new StatsService over the shared database.
func New(db *sql.DB) StatsService {
	return &service{
		db: db,
	}
}

func (s *service) PlayerStats(playerID string) (*PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerStatsLocked(playerID)
}

func (s *service) playerStatsLocked(playerID string) (*PlayerStats, error) {
	rows, err := s.db.Query("SELECT kind, match_id FROM events WHERE player_id = ?", playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to scan event log: %w", err)
	}
	defer rows.Close()

	ps := &PlayerStats{PlayerID: playerID}
	matches := make(map[string]struct{})
	for rows.Next() {
		var kind, matchID string
		if err := rows.Scan(&kind, &matchID); err != nil {
			return nil, err
		}
		matches[matchID] = struct{}{}
		switch league.EventKind(kind) {
		case league.EventGoal:
			ps.Goals++
		case league.EventAssist:
			ps.Assists++
		case league.EventYellowCard:
			ps.YellowCards++
		case league.EventRedCard:
			ps.RedCards++
		case league.EventShot:
			ps.Shots++
		case league.EventSave:
			ps.Saves++
		default:
			// The store rejects unknown kinds; a stray row is skipped.
			log.Warn("Skipping event with unrecognized kind", "kind", kind, "playerID", playerID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	ps.MatchesPlayed = len(matches)
	return ps, nil
}

func (s *service) RankByGoals(limit int) ([]RankingEntry, error) {
	return s.rankBy(league.EventGoal, limit)
}

func (s *service) RankByAssists(limit int) ([]RankingEntry, error) {
	return s.rankBy(league.EventAssist, limit)
}

func (s *service) rankBy(kind league.EventKind, limit int) ([]RankingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, club_id FROM players WHERE active = 1 ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list active players: %w", err)
	}

	type rosterEntry struct {
		id     string
		name   string
		clubID string
	}
	roster := []rosterEntry{}
	for rows.Next() {
		var entry rosterEntry
		var clubID sql.NullString
		if err := rows.Scan(&entry.id, &entry.name, &clubID); err != nil {
			rows.Close()
			return nil, err
		}
		entry.clubID = clubID.String
		roster = append(roster, entry)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// The pool holds a single connection, so the roster cursor must be
	// closed before the per-player queries run.
	rows.Close()

	entries := []RankingEntry{}
	for _, p := range roster {
		ps, err := s.playerStatsLocked(p.id)
		if err != nil {
			return nil, err
		}
		count := ps.Goals
		if kind == league.EventAssist {
			count = ps.Assists
		}
		entries = append(entries, RankingEntry{
			PlayerID:      p.id,
			PlayerName:    p.name,
			ClubID:        p.clubID,
			Count:         count,
			MatchesPlayed: ps.MatchesPlayed,
		})
	}

	// Stable sort keeps insertion order for equal counts.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(entries) {
		limit = len(entries)
	}
	return entries[:limit], nil
}

func (s *service) Compare(playerA, playerB string) (*Comparison, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sideA, err := s.comparisonSideLocked(playerA)
	if err != nil {
		return nil, err
	}
	sideB, err := s.comparisonSideLocked(playerB)
	if err != nil {
		return nil, err
	}
	return &Comparison{A: *sideA, B: *sideB}, nil
}

func (s *service) comparisonSideLocked(playerID string) (*ComparisonSide, error) {
	var name string
	err := s.db.QueryRow("SELECT name FROM players WHERE id = ?", playerID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("player %s: %w", playerID, league.ErrNotFound)
		}
		return nil, err
	}
	ps, err := s.playerStatsLocked(playerID)
	if err != nil {
		return nil, err
	}
	return &ComparisonSide{PlayerID: playerID, PlayerName: name, Stats: *ps}, nil
}

package seed

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/passabola/futstats/internal/auth"
	"github.com/passabola/futstats/internal/league"
)

// Seed loads the demo dataset: two users, three clubs, three players, two
// championships, one finalized match and its four events. The fixed ids
// (jog_001, clube_001, ...) are part of the demo contract and are referenced
// by documentation and tests.
func Seed(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	stmts := []struct {
		query string
		args  []any
	}{
		{
			query: `INSERT INTO users (id, email, password_hash, name, role, active) VALUES (?, ?, ?, ?, ?, 1)`,
			args:  []any{"admin_001", "admin@passabola.com", auth.HashPassword("admin123"), "Administradora", auth.RoleAdmin},
		},
		{
			query: `INSERT INTO users (id, email, password_hash, name, role, active) VALUES (?, ?, ?, ?, ?, 1)`,
			args:  []any{"user_001", "usuario@teste.com", auth.HashPassword("user123"), "Usuária Teste", auth.RoleRegular},
		},
		{
			query: `INSERT INTO clubs (id, name, city, region, country, founded, colors_json, active) VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
			args:  []any{"clube_001", "São Paulo FC Feminino", "São Paulo", "SP", "Brasil", 1930, `["vermelho","branco","preto"]`},
		},
		{
			query: `INSERT INTO clubs (id, name, city, region, country, founded, colors_json, active) VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
			args:  []any{"clube_002", "Flamengo Feminino", "Rio de Janeiro", "RJ", "Brasil", 1895, `["vermelho","preto"]`},
		},
		{
			query: `INSERT INTO clubs (id, name, city, region, country, founded, colors_json, active) VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
			args:  []any{"clube_003", "Corinthians Feminino", "São Paulo", "SP", "Brasil", 1910, `["preto","branco"]`},
		},
		{
			query: `INSERT INTO players (id, name, position, club_id, jersey, age, nationality, height, weight, active) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
			args:  []any{"jog_001", "Marta Vieira da Silva", "Atacante", "clube_001", 10, 37, "Brasileira", 1.63, 58.0},
		},
		{
			query: `INSERT INTO players (id, name, position, club_id, jersey, age, nationality, height, weight, active) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
			args:  []any{"jog_002", "Debinha", "Atacante", "clube_002", 7, 32, "Brasileira", 1.57, 52.0},
		},
		{
			query: `INSERT INTO players (id, name, position, club_id, jersey, age, nationality, height, weight, active) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
			args:  []any{"jog_003", "Tamires Cássia Dias", "Lateral", "clube_003", 6, 35, "Brasileira", 1.60, 55.0},
		},
		{
			query: `INSERT INTO championships (id, name, country, season, active) VALUES (?, ?, ?, ?, 1)`,
			args:  []any{"camp_001", "Brasileirão Feminino", "Brasil", "2024"},
		},
		{
			query: `INSERT INTO championships (id, name, country, season, active) VALUES (?, ?, ?, ?, 1)`,
			args:  []any{"camp_002", "Copa do Brasil Feminina", "Brasil", "2024"},
		},
		{
			query: `INSERT INTO matches (id, home_club_id, away_club_id, championship_id, match_date, home_score, away_score, finalized) VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
			args:  []any{"part_001", "clube_001", "clube_002", "camp_001", "2024-03-15", 2, 1},
		},
		{
			query: `INSERT INTO events (id, match_id, player_id, kind, minute, note) VALUES (?, ?, ?, ?, ?, ?)`,
			args:  []any{"evt_001", "part_001", "jog_001", league.EventGoal, 15, "Gol de falta"},
		},
		{
			query: `INSERT INTO events (id, match_id, player_id, kind, minute, note) VALUES (?, ?, ?, ?, ?, ?)`,
			args:  []any{"evt_002", "part_001", "jog_001", league.EventAssist, 45, "Assistência para gol"},
		},
		{
			query: `INSERT INTO events (id, match_id, player_id, kind, minute, note) VALUES (?, ?, ?, ?, ?, ?)`,
			args:  []any{"evt_003", "part_001", "jog_002", league.EventGoal, 67, "Gol de cabeça"},
		},
		{
			query: `INSERT INTO events (id, match_id, player_id, kind, minute, note) VALUES (?, ?, ?, ?, ?, ?)`,
			args:  []any{"evt_004", "part_001", "jog_003", league.EventYellowCard, 78, "Falta tática"},
		},
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt.query, stmt.args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	log.Info("Seeded demo dataset", "users", 2, "clubs", 3, "players", 3, "championships", 2, "matches", 1, "events", 4)
	return nil
}

package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// InitDB opens the database and brings the schema up to date.
// dbPath is a filename, or ":memory:" for a store that only lives for the
// duration of the process.
func InitDB(dbPath string) (*sql.DB, func(), error) {
	log.Info("Initializing SQLite database", "path", dbPath)
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}

	// A :memory: database exists per connection, so the pool must never open a second one.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database %s: %w", dbPath, err)
	}

	teardown := func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", "error", err)
		}
	}
	return db, teardown, nil
}

func migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return err
	}
	log.Info("Database schema is up to date")
	return nil
}

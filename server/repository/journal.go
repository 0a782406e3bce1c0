package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
	"github.com/ponyo877/roomchat/server/domain"
	"github.com/ponyo877/roomchat/server/usecase"
)

const (
	driverName   = "sqlite3_with_go_func"
	defaultLimit = 50
)

var registerDriver sync.Once

func regex(re, s string) (bool, error) {
	return regexp.MatchString(re, s)
}

// Open opens the journal database at path. ":memory:" gives a private
// in-memory database.
func Open(path string) (*sql.DB, error) {
	registerDriver.Do(func() {
		sql.Register(driverName,
			&sqlite3.SQLiteDriver{
				ConnectHook: func(conn *sqlite3.SQLiteConn) error {
					return conn.RegisterFunc("regexp", regex, true)
				},
			})
	})
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// JournalQuery filters a journal listing. Zero values match everything.
type JournalQuery struct {
	Limit        int
	ConnectionID string
	Room         string
	NamePattern  string
}

type Journal struct {
	db *sql.DB
}

var _ usecase.Journal = (*Journal)(nil)

func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

func (j *Journal) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS presence_events (
			id            TEXT PRIMARY KEY,
			connection_id TEXT NOT NULL,
			kind          TEXT NOT NULL,
			name          TEXT NOT NULL DEFAULT '',
			room          TEXT NOT NULL DEFAULT '',
			created_at    DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_presence_events_created_at ON presence_events (created_at);
	`
	if _, err := j.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to migrate presence_events: %w", err)
	}
	return nil
}

func (j *Journal) Record(ctx context.Context, entry domain.PresenceEntry) error {
	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	query := "INSERT INTO presence_events (id, connection_id, kind, name, room, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	if _, err := j.db.ExecContext(ctx, query,
		entry.ID, entry.ConnectionID, string(entry.Kind), entry.Name, entry.Room, entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert presence event for %s: %w", entry.ConnectionID, err)
	}
	return nil
}

// List returns matching entries, newest first.
func (j *Journal) List(ctx context.Context, q JournalQuery) ([]domain.PresenceEntry, error) {
	var (
		where []string
		args  []any
	)
	if q.ConnectionID != "" {
		where = append(where, "connection_id = ?")
		args = append(args, q.ConnectionID)
	}
	if q.Room != "" {
		where = append(where, "room = ?")
		args = append(args, q.Room)
	}
	if q.NamePattern != "" {
		where = append(where, "name REGEXP ?")
		args = append(args, q.NamePattern)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := "SELECT id, connection_id, kind, name, room, created_at FROM presence_events"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query presence events: %w", err)
	}
	defer rows.Close()

	entries := []domain.PresenceEntry{}
	for rows.Next() {
		var entry domain.PresenceEntry
		var kind string
		if err := rows.Scan(&entry.ID, &entry.ConnectionID, &kind, &entry.Name, &entry.Room, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan presence event: %w", err)
		}
		entry.Kind = domain.PresenceKind(kind)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over presence events: %w", err)
	}
	return entries, nil
}

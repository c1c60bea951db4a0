package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// LocalSession is the semi-durable part of a client session: the identity
// token and the identity it belongs to. The session secret is deliberately
// absent from this type — it must never reach durable storage, so there is
// no field to put it in.
type LocalSession struct {
	UserID  int64
	Email   string
	Token   string
	SavedAt time.Time
}

// SessionStore persists the LocalSession across client restarts.
type SessionStore interface {
	// Save replaces the stored session with the given one.
	Save(ctx context.Context, session LocalSession) error

	// Load returns the stored session, or ErrLocalSessionNotFound when
	// nothing is persisted.
	Load(ctx context.Context) (LocalSession, error)

	// Clear removes the stored session. Clearing an empty store is not an
	// error.
	Clear(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}

// sqliteSessionStore is the SQLite-backed implementation of
// [SessionStore]. A single-row table keeps exactly one session per client
// installation.
type sqliteSessionStore struct {
	db *sql.DB
}

const createSessionTable = `
	CREATE TABLE IF NOT EXISTS session (
		id       INTEGER PRIMARY KEY CHECK (id = 1),
		user_id  INTEGER NOT NULL,
		email    TEXT    NOT NULL,
		token    TEXT    NOT NULL,
		saved_at TIMESTAMP NOT NULL
	);`

// NewSessionStore opens (or creates) the SQLite session database at path.
func NewSessionStore(path string) (SessionStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if _, err = db.Exec(createSessionTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session store schema: %w", err)
	}

	return &sqliteSessionStore{db: db}, nil
}

func (s *sqliteSessionStore) Save(ctx context.Context, session LocalSession) error {
	const query = `
		INSERT OR REPLACE INTO session (id, user_id, email, token, saved_at)
		VALUES (1, $1, $2, $3, $4);`

	if _, err := s.db.ExecContext(ctx, query, session.UserID, session.Email, session.Token, time.Now()); err != nil {
		return fmt.Errorf("save local session: %w", err)
	}

	return nil
}

func (s *sqliteSessionStore) Load(ctx context.Context) (LocalSession, error) {
	const query = `SELECT user_id, email, token, saved_at FROM session WHERE id = 1;`

	var session LocalSession
	row := s.db.QueryRowContext(ctx, query)
	if err := row.Scan(&session.UserID, &session.Email, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LocalSession{}, ErrLocalSessionNotFound
		}
		return LocalSession{}, fmt.Errorf("load local session: %w", err)
	}

	return session, nil
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session;`); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}

	return nil
}

func (s *sqliteSessionStore) Close() error {
	return s.db.Close()
}

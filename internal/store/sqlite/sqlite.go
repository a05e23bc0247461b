// Package sqlite persists sessions in a single SQLite file. Hands,
// deck, and discard pile are stored as JSON columns; the session row
// carries a version column checked on every write.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mpsalisbury/uno/pkg/cards"
	"github.com/mpsalisbury/uno/pkg/game/uno"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id                   TEXT PRIMARY KEY,
	status               INTEGER NOT NULL,
	creator_id           TEXT NOT NULL,
	min_players          INTEGER NOT NULL,
	max_players          INTEGER NOT NULL,
	seats                TEXT NOT NULL,
	current_player_index INTEGER NOT NULL,
	turn_direction       INTEGER NOT NULL,
	current_color        INTEGER NOT NULL,
	discard_pile         TEXT NOT NULL,
	deck                 TEXT NOT NULL,
	winner_id            TEXT NOT NULL,
	version              INTEGER NOT NULL,
	created_at           INTEGER NOT NULL,
	ended_at             INTEGER
);
`

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements session persistence over SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a session store and creates the schema if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.sqlDB.Close()
}

func (s *Store) Load(ctx context.Context, id string) (*uno.Session, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, status, creator_id, min_players, max_players, seats,
       current_player_index, turn_direction, current_color,
       discard_pile, deck, winner_id, version, created_at, ended_at
FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

// Save inserts a new session or updates an existing one whose stored
// version matches. The caller's version is bumped to match the row.
func (s *Store) Save(ctx context.Context, session *uno.Session) error {
	seats, discard, deck, err := encodeLists(session)
	if err != nil {
		return err
	}

	var endedAt any
	if session.EndedAt != nil {
		endedAt = toMillis(*session.EndedAt)
	}

	res, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO sessions
	(id, status, creator_id, min_players, max_players, seats,
	 current_player_index, turn_direction, current_color,
	 discard_pile, deck, winner_id, version, created_at, ended_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	status = excluded.status,
	seats = excluded.seats,
	current_player_index = excluded.current_player_index,
	turn_direction = excluded.turn_direction,
	current_color = excluded.current_color,
	discard_pile = excluded.discard_pile,
	deck = excluded.deck,
	winner_id = excluded.winner_id,
	version = excluded.version,
	ended_at = excluded.ended_at
WHERE sessions.version = excluded.version - 1`,
		session.ID, int(session.Status), session.CreatorID,
		session.MinPlayers, session.MaxPlayers, seats,
		session.CurrentPlayerIndex, session.TurnDirection, int(session.CurrentColor),
		discard, deck, session.WinnerID, session.Version+1,
		toMillis(session.CreatedAt), endedAt)
	if err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	if affected == 0 {
		return uno.ErrVersionConflict
	}
	session.Version++
	return nil
}

// Finalize ends a session in one step. Already-ended rows are left
// untouched.
func (s *Store) Finalize(ctx context.Context, id, winnerID string) error {
	res, err := s.sqlDB.ExecContext(ctx, `
UPDATE sessions
SET status = ?, winner_id = ?, ended_at = ?, version = version + 1
WHERE id = ? AND status != ?`,
		int(uno.Ended), winnerID, toMillis(s.now()), id, int(uno.Ended))
	if err != nil {
		return fmt.Errorf("finalize session %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finalize session %s: %w", id, err)
	}
	if affected == 0 {
		var exists int
		err := s.sqlDB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM sessions WHERE id = ?`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("finalize session %s: %w", id, err)
		}
		if exists == 0 {
			return uno.ErrNotFound
		}
	}
	return nil
}

// List returns every stored session, newest first.
func (s *Store) List(ctx context.Context) ([]*uno.Session, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, status, creator_id, min_players, max_players, seats,
       current_player_index, turn_direction, current_color,
       discard_pile, deck, winner_id, version, created_at, ended_at
FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*uno.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*uno.Session, error) {
	var (
		session              uno.Session
		status, color        int
		seats, discard, deck []byte
		createdAt            int64
		endedAt              sql.NullInt64
	)
	err := row.Scan(&session.ID, &status, &session.CreatorID,
		&session.MinPlayers, &session.MaxPlayers, &seats,
		&session.CurrentPlayerIndex, &session.TurnDirection, &color,
		&discard, &deck, &session.WinnerID, &session.Version,
		&createdAt, &endedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, uno.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	session.Status = uno.Status(status)
	session.CurrentColor = cards.Color(color)
	session.CreatedAt = fromMillis(createdAt)
	if endedAt.Valid {
		t := fromMillis(endedAt.Int64)
		session.EndedAt = &t
	}
	if err := json.Unmarshal(seats, &session.Seats); err != nil {
		return nil, fmt.Errorf("decode seats: %w", err)
	}
	if err := json.Unmarshal(discard, &session.DiscardPile); err != nil {
		return nil, fmt.Errorf("decode discard pile: %w", err)
	}
	if err := json.Unmarshal(deck, &session.Deck); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return &session, nil
}

func encodeLists(session *uno.Session) (seats, discard, deck []byte, err error) {
	if session.Seats == nil {
		session.Seats = []uno.Seat{}
	}
	seats, err = json.Marshal(session.Seats)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode seats: %w", err)
	}
	if session.DiscardPile == nil {
		session.DiscardPile = []uno.DiscardEntry{}
	}
	discard, err = json.Marshal(session.DiscardPile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode discard pile: %w", err)
	}
	if session.Deck == nil {
		session.Deck = cards.Cards{}
	}
	deck, err = json.Marshal(session.Deck)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode deck: %w", err)
	}
	return seats, discard, deck, nil
}

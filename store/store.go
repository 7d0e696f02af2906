package store

import (
	"context"
	"database/sql"
	_ "embed"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/LdDl/tracklets/tracks"
)

//go:embed schema.sql
var schemaSQL string

// ErrSessionNotFound is returned when no session has the requested identifier
var ErrSessionNotFound = errors.New("session not found")

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA foreign_keys=ON",
}

// Session describes a saved set of tracks
type Session struct {
	ID         uuid.UUID
	Name       string
	CreatedAt  time.Time
	TrackCount int
}

// Store is SQLite backed track storage
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) database at path and applies schema
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open database")
	}
	// foreign_keys is per connection
	db.SetMaxOpenConns(1)
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, errors.Wrapf(err, "Can't execute %q", pragma)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "Can't apply schema")
	}
	logger.Debug("store opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Close closes underlying database
func (store *Store) Close() error {
	return store.db.Close()
}

// SaveSession stores tracks as a new session and returns its identifier
func (store *Store) SaveSession(ctx context.Context, name string, trks []*tracks.Track) (uuid.UUID, error) {
	id := uuid.New()
	createdAt := time.Now().UTC()

	tx, err := store.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (session_id, name, created_at_ns, track_count) VALUES (?, ?, ?, ?)`,
		id.String(), name, createdAt.UnixNano(), len(trks))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't insert session")
	}

	insertTrack, err := tx.PrepareContext(ctx,
		`INSERT INTO tracks (session_id, object_id, object_type, format) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't prepare track insert")
	}
	defer insertTrack.Close()
	insertObservation, err := tx.PrepareContext(ctx,
		`INSERT INTO observations (session_id, object_id, frame, a, b, c, d) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't prepare observation insert")
	}
	defer insertObservation.Close()
	insertAttribute, err := tx.PrepareContext(ctx,
		`INSERT INTO attributes (session_id, object_id, frame, text) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't prepare attribute insert")
	}
	defer insertAttribute.Close()

	for _, track := range trks {
		objectID := track.GetObjectID()
		_, err = insertTrack.ExecContext(ctx, id.String(), objectID, track.GetObjectType(), track.GetFormat().String())
		if err != nil {
			return uuid.Nil, errors.Wrapf(err, "Can't insert object %d", objectID)
		}
		for frame, g := range track.GetObservations() {
			_, err = insertObservation.ExecContext(ctx, id.String(), objectID, frame, g[0], g[1], g[2], g[3])
			if err != nil {
				return uuid.Nil, errors.Wrapf(err, "Can't insert frame %d of object %d", frame, objectID)
			}
		}
		for frame, text := range track.GetAttributes() {
			_, err = insertAttribute.ExecContext(ctx, id.String(), objectID, frame, text)
			if err != nil {
				return uuid.Nil, errors.Wrapf(err, "Can't insert attribute %d of object %d", frame, objectID)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, errors.Wrap(err, "Can't commit session")
	}
	store.logger.Info("session saved", "session_id", id.String(), "name", name, "tracks", len(trks))
	return id, nil
}

// LoadSession returns tracks of the session ordered by object id
func (store *Store) LoadSession(ctx context.Context, id uuid.UUID) ([]*tracks.Track, error) {
	if _, err := store.session(ctx, id); err != nil {
		return nil, err
	}

	rows, err := store.db.QueryContext(ctx,
		`SELECT object_id, object_type, format FROM tracks WHERE session_id = ? ORDER BY object_id`, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "Can't query tracks")
	}
	trks := make([]*tracks.Track, 0)
	byID := make(map[int64]*tracks.Track)
	for rows.Next() {
		var objectID int64
		var objectType, format string
		if err := rows.Scan(&objectID, &objectType, &format); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "Can't scan track")
		}
		track, err := tracks.NewTrack(objectID, objectType, tracks.Format(format), nil)
		if err != nil {
			rows.Close()
			return nil, err
		}
		trks = append(trks, track)
		byID[objectID] = track
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "Can't iterate tracks")
	}

	if err := store.loadObservations(ctx, id, byID); err != nil {
		return nil, err
	}
	if err := store.loadAttributes(ctx, id, byID); err != nil {
		return nil, err
	}
	store.logger.Debug("session loaded", "session_id", id.String(), "tracks", len(trks))
	return trks, nil
}

func (store *Store) loadObservations(ctx context.Context, id uuid.UUID, byID map[int64]*tracks.Track) error {
	rows, err := store.db.QueryContext(ctx,
		`SELECT object_id, frame, a, b, c, d FROM observations WHERE session_id = ?`, id.String())
	if err != nil {
		return errors.Wrap(err, "Can't query observations")
	}
	defer rows.Close()
	for rows.Next() {
		var objectID int64
		var frame int
		var g tracks.Geometry
		if err := rows.Scan(&objectID, &frame, &g[0], &g[1], &g[2], &g[3]); err != nil {
			return errors.Wrap(err, "Can't scan observation")
		}
		if err := byID[objectID].AppendObservation(frame, g); err != nil {
			return err
		}
	}
	return errors.Wrap(rows.Err(), "Can't iterate observations")
}

func (store *Store) loadAttributes(ctx context.Context, id uuid.UUID, byID map[int64]*tracks.Track) error {
	rows, err := store.db.QueryContext(ctx,
		`SELECT object_id, frame, text FROM attributes WHERE session_id = ?`, id.String())
	if err != nil {
		return errors.Wrap(err, "Can't query attributes")
	}
	defer rows.Close()
	for rows.Next() {
		var objectID int64
		var frame int
		var text string
		if err := rows.Scan(&objectID, &frame, &text); err != nil {
			return errors.Wrap(err, "Can't scan attribute")
		}
		byID[objectID].AppendAttributes(map[int]string{frame: text})
	}
	return errors.Wrap(rows.Err(), "Can't iterate attributes")
}

// ListSessions returns sessions newest first
func (store *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := store.db.QueryContext(ctx,
		`SELECT session_id, name, created_at_ns, track_count FROM sessions ORDER BY created_at_ns DESC, session_id`)
	if err != nil {
		return nil, errors.Wrap(err, "Can't query sessions")
	}
	defer rows.Close()
	sessions := make([]Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, errors.Wrap(rows.Err(), "Can't iterate sessions")
}

// DeleteSession removes session with all its tracks
func (store *Store) DeleteSession(ctx context.Context, id uuid.UUID) error {
	result, err := store.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, id.String())
	if err != nil {
		return errors.Wrap(err, "Can't delete session")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "Can't count deleted sessions")
	}
	if affected == 0 {
		return errors.Wrapf(ErrSessionNotFound, "%s", id)
	}
	store.logger.Info("session deleted", "session_id", id.String())
	return nil
}

func (store *Store) session(ctx context.Context, id uuid.UUID) (Session, error) {
	row := store.db.QueryRowContext(ctx,
		`SELECT session_id, name, created_at_ns, track_count FROM sessions WHERE session_id = ?`, id.String())
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, errors.Wrapf(ErrSessionNotFound, "%s", id)
	}
	return session, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var rawID, name string
	var createdAt int64
	var count int
	if err := row.Scan(&rawID, &name, &createdAt, &count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, err
		}
		return Session{}, errors.Wrap(err, "Can't scan session")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return Session{}, errors.Wrapf(err, "bad session id %q", rawID)
	}
	return Session{
		ID:         id,
		Name:       name,
		CreatedAt:  time.Unix(0, createdAt).UTC(),
		TrackCount: count,
	}, nil
}

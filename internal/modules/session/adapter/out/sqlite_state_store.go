package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"planwise/internal/modules/session/domain"
	sessionout "planwise/internal/modules/session/port/out"
	"planwise/internal/platform/tx"

	_ "modernc.org/sqlite"
)

const (
	keyStudentID = "stu_id"
	keyPlanID    = "plan_id"
	keyProfile   = "profile"
)

// OpenDB opens (and creates) the local SQLite database.
func OpenDB(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// SQLiteStateStore keeps each session value under its own key so a missing
// or damaged value never hides the others.
type SQLiteStateStore struct {
	db *sql.DB
}

func NewSQLiteStateStore(db *sql.DB) (sessionout.StateStore, error) {
	store := &SQLiteStateStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStateStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create kv table: %w", err)
	}
	return nil
}

func (s *SQLiteStateStore) Load(ctx context.Context) (domain.State, error) {
	studentID, err := s.getInt(ctx, keyStudentID)
	if err != nil {
		return domain.State{}, err
	}
	planID, err := s.getInt(ctx, keyPlanID)
	if err != nil {
		return domain.State{}, err
	}
	return domain.State{StudentID: studentID, PlanID: planID}, nil
}

func (s *SQLiteStateStore) Save(ctx context.Context, state domain.State) error {
	if err := s.put(ctx, keyStudentID, strconv.FormatInt(state.StudentID, 10)); err != nil {
		return err
	}
	return s.put(ctx, keyPlanID, strconv.FormatInt(state.PlanID, 10))
}

func (s *SQLiteStateStore) LoadProfile(ctx context.Context) (domain.Profile, bool, error) {
	raw, ok, err := s.get(ctx, keyProfile)
	if err != nil || !ok {
		return domain.Profile{}, false, err
	}
	profile := domain.Profile{}
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return domain.Profile{}, false, nil
	}
	return profile, profile.Student.ID > 0, nil
}

func (s *SQLiteStateStore) SaveProfile(ctx context.Context, profile domain.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.put(ctx, keyProfile, string(payload))
}

func (s *SQLiteStateStore) getInt(ctx context.Context, key string) (int64, error) {
	raw, ok, err := s.get(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}

func (s *SQLiteStateStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := tx.Use(ctx, s.db).QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteStateStore) put(ctx context.Context, key, value string) error {
	const stmt = `
INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value;
`
	if _, err := tx.Use(ctx, s.db).ExecContext(ctx, stmt, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

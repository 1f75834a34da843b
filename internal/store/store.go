// Package store persists simulation presets in SQLite or Postgres.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/rpgo/wealth-planner/internal/domain"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrPresetExists   = errors.New("preset slug already in use")
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const schemaSQL = `CREATE TABLE IF NOT EXISTS presets (
	id                  TEXT PRIMARY KEY,
	slug                TEXT NOT NULL UNIQUE,
	title               TEXT NOT NULL,
	description         TEXT NOT NULL,
	input               TEXT NOT NULL,
	certified_by        TEXT NOT NULL DEFAULT '',
	certification_level TEXT NOT NULL DEFAULT '',
	badge               TEXT NOT NULL DEFAULT '',
	created_at          BIGINT NOT NULL
)`

const presetColumns = `id, slug, title, description, input, certified_by, certification_level, badge, created_at`

// Store is a preset repository over database/sql.
type Store struct {
	db     *sql.DB
	driver string
	now    func() time.Time
	newID  func() string
}

// Open connects to the database and creates the schema when missing.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("store dsn is required")
	}
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, driver: driver, now: time.Now, newID: uuid.NewString}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Count returns the number of stored presets.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM presets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count presets: %w", err)
	}
	return n, nil
}

// Seed inserts presets only when the table is empty and returns how many were written.
// The first preset becomes the newest one.
func (s *Store) Seed(ctx context.Context, presets []domain.Preset) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	base := s.now().UTC()
	for i, p := range presets {
		p.CreatedAt = base.Add(-time.Duration(i) * time.Millisecond)
		if _, err := s.Create(ctx, p); err != nil {
			return i, fmt.Errorf("seed preset %q: %w", p.Slug, err)
		}
	}
	return len(presets), nil
}

// Create stores a new preset. Slugs are case-insensitive and unique.
func (s *Store) Create(ctx context.Context, p domain.Preset) (domain.Preset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Preset{}, err
	}
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
	if p.Slug == "" {
		return domain.Preset{}, fmt.Errorf("preset slug is required")
	}
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	p.CreatedAt = time.UnixMilli(p.CreatedAt.UnixMilli()).UTC()

	input, err := json.Marshal(p.Input)
	if err != nil {
		return domain.Preset{}, fmt.Errorf("encode preset input: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.rebind(
		`INSERT INTO presets (`+presetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		p.ID, p.Slug, p.Title, p.Description, string(input),
		p.CertifiedBy, p.CertificationLevel, p.Badge, p.CreatedAt.UnixMilli(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Preset{}, ErrPresetExists
		}
		return domain.Preset{}, fmt.Errorf("create preset: %w", err)
	}
	return p, nil
}

// GetBySlug returns one preset.
func (s *Store) GetBySlug(ctx context.Context, slug string) (domain.Preset, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT `+presetColumns+` FROM presets WHERE slug = ?`),
		strings.ToLower(strings.TrimSpace(slug)),
	)
	p, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Preset{}, ErrPresetNotFound
	}
	if err != nil {
		return domain.Preset{}, fmt.Errorf("get preset: %w", err)
	}
	return p, nil
}

// List returns every preset, newest first.
func (s *Store) List(ctx context.Context) ([]domain.Preset, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+presetColumns+` FROM presets ORDER BY created_at DESC, slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	presets := make([]domain.Preset, 0)
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		presets = append(presets, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}
	return presets, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (domain.Preset, error) {
	var (
		p         domain.Preset
		input     string
		createdAt int64
	)
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Description, &input,
		&p.CertifiedBy, &p.CertificationLevel, &p.Badge, &createdAt); err != nil {
		return domain.Preset{}, err
	}
	if err := json.Unmarshal([]byte(input), &p.Input); err != nil {
		return domain.Preset{}, fmt.Errorf("decode preset input: %w", err)
	}
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	return p, nil
}

// rebind rewrites ? placeholders as $1, $2... for Postgres.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

package drafts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lkho/lrc-maker/internal/config"
	"github.com/lkho/lrc-maker/internal/logging"
)

// ErrNotFound reports a draft ID with no matching row.
var ErrNotFound = errors.New("draft not found")

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const draftColumns = `id, name, body, title, artist, line_count, timed_count, duration_seconds, created_at, updated_at`

// Store manages draft persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the drafts database and applies migrations.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	dbPath := cfg.DraftsPath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, logger: logging.NewComponentLogger(logger, "drafts")}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Save stores text as a new draft.
func (s *Store) Save(ctx context.Context, name, body string) (*Draft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("draft name is required")
	}

	now := time.Now().UTC()
	d := &Draft{ID: uuid.NewString(), Name: name, Body: body, CreatedAt: now, UpdatedAt: now}
	d.summarize()

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO drafts (`+draftColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID,
		d.Name,
		d.Body,
		nullableString(d.Title),
		nullableString(d.Artist),
		d.Lines,
		d.Timed,
		d.Duration,
		now.Format(timeLayout),
		now.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert draft: %w", err)
	}

	s.logger.Info("draft saved",
		logging.String(logging.FieldDraftID, d.ID),
		logging.Int(logging.FieldLines, d.Lines),
	)
	return d, nil
}

// Update replaces the text of an existing draft.
func (s *Store) Update(ctx context.Context, id, body string) (*Draft, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Body = body
	d.UpdatedAt = time.Now().UTC()
	d.summarize()

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE drafts
         SET body = ?, title = ?, artist = ?, line_count = ?, timed_count = ?,
             duration_seconds = ?, updated_at = ?
         WHERE id = ?`,
		d.Body,
		nullableString(d.Title),
		nullableString(d.Artist),
		d.Lines,
		d.Timed,
		d.Duration,
		d.UpdatedAt.Format(timeLayout),
		d.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update draft: %w", err)
	}
	if err := requireRow(res, id); err != nil {
		return nil, err
	}
	return d, nil
}

// Get fetches a draft by ID.
func (s *Store) Get(ctx context.Context, id string) (*Draft, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+draftColumns+` FROM drafts WHERE id = ?`, strings.TrimSpace(id))
	d, err := scanDraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	return d, nil
}

// List returns all drafts, most recently updated first.
func (s *Store) List(ctx context.Context) ([]*Draft, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+draftColumns+` FROM drafts ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scan draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drafts: %w", err)
	}
	return drafts, nil
}

// Delete removes a draft.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	if err := requireRow(res, id); err != nil {
		return err
	}
	s.logger.Info("draft deleted", logging.String(logging.FieldDraftID, id))
	return nil
}

func requireRow(res sql.Result, id string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func scanDraft(scanner interface{ Scan(dest ...any) error }) (*Draft, error) {
	var (
		d          Draft
		title      sql.NullString
		artist     sql.NullString
		createdRaw string
		updatedRaw string
	)
	if err := scanner.Scan(
		&d.ID,
		&d.Name,
		&d.Body,
		&title,
		&artist,
		&d.Lines,
		&d.Timed,
		&d.Duration,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}
	d.Title = title.String
	d.Artist = artist.String
	d.CreatedAt = parseTime(createdRaw)
	d.UpdatedAt = parseTime(updatedRaw)
	return &d, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

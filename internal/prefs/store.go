package prefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/lkho/lrc-maker/internal/fileutil"
	"github.com/lkho/lrc-maker/internal/logging"
)

const lockRetryDelay = 25 * time.Millisecond

// Store persists preferences in a single file.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// Open returns a store backed by path. The file does not need to exist.
func Open(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "prefs"),
	}
}

// Path returns the preferences file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored preferences, falling back to defaults when the file
// is missing or unreadable.
func (s *Store) Load() Prefs {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("preferences unreadable; using defaults",
				logging.String(logging.FieldFile, s.path),
				logging.Error(err),
			)
		}
		return Defaults()
	}
	return Decode(string(data))
}

// Save replaces the stored preferences.
func (s *Store) Save(ctx context.Context, p Prefs) error {
	return s.withLock(ctx, func() error {
		return s.write(p)
	})
}

// Update sets one preference and persists the result.
func (s *Store) Update(ctx context.Context, key, value string) (Prefs, error) {
	var updated Prefs
	err := s.withLock(ctx, func() error {
		next, err := Apply(s.Load(), key, value)
		if err != nil {
			return err
		}
		if err := s.write(next); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return Prefs{}, err
	}
	s.logger.Info("preference updated", logging.String(logging.FieldPrefKey, key))
	return updated, nil
}

// Reset removes stored preferences so defaults apply again.
func (s *Store) Reset(ctx context.Context) error {
	return s.withLock(ctx, func() error {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove prefs: %w", err)
		}
		return nil
	})
}

func (s *Store) write(p Prefs) error {
	text, err := Encode(p)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(s.path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs directory: %w", err)
	}
	ok, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire prefs lock: %w", err)
	}
	if !ok {
		return errors.New("acquire prefs lock: lock held by another process")
	}
	defer func() {
		_ = s.lock.Unlock()
	}()
	return fn()
}

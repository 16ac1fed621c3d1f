// Package storage persists habit entries. Three backends share one Store
// interface: sqlite (default), postgres and a single JSON file.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/config"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is safe for concurrent use.
type Store interface {
	Add(ctx context.Context, e model.Entry) error
	// List returns matching entries newest first.
	List(ctx context.Context, q Query) ([]model.Entry, error)
	Close() error
}

// Query filters List. Zero values mean "no filter"; Start and End are
// inclusive.
type Query struct {
	Habit string
	Start time.Time
	End   time.Time
	Limit int
}

func (q Query) matches(e model.Entry) bool {
	if q.Habit != "" && e.Habit != q.Habit {
		return false
	}
	if !q.Start.IsZero() && e.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && e.Timestamp.After(q.End) {
		return false
	}
	return true
}

var nowFunc = time.Now

// timeLayout is fixed width so that string comparison orders timestamps.
const timeLayout = "2006-01-02T15:04:05.000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad stored timestamp %q: %w", s, err)
	}
	return t, nil
}

// Open returns the backend named by cfg.Backend.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Opening storage", zap.String("backend", cfg.Backend))

	switch cfg.Backend {
	case "sqlite", "":
		return NewSQLite(ctx, cfg.Path)
	case "postgres":
		return NewPostgres(ctx, cfg.URL)
	case "json":
		s, err := NewJSON(cfg.JSONPath)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.Backend)
	}
}

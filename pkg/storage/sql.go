package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

// DOUBLE PRECISION is understood by both SQLite and PostgreSQL.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS habit_entries (
		id TEXT PRIMARY KEY,
		habit TEXT NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_habit_timestamp ON habit_entries(habit, timestamp)`,
}

// sqlStore implements Store over database/sql. Queries are written with ?
// placeholders and rebound for drivers that number them.
type sqlStore struct {
	db       *sql.DB
	numbered bool
}

func (s *sqlStore) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (s *sqlStore) rebind(query string) string {
	if !s.numbered {
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

func (s *sqlStore) Add(ctx context.Context, e model.Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	var notes sql.NullString
	if e.Notes != "" {
		notes = sql.NullString{String: e.Notes, Valid: true}
	}

	query := s.rebind(`INSERT INTO habit_entries (id, habit, value, unit, timestamp, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, query,
		e.ID, e.Habit, e.Value, e.Unit, formatTime(e.Timestamp), notes, formatTime(nowFunc()))
	if err != nil {
		return fmt.Errorf("failed to insert %s entry: %w", e.Habit, err)
	}
	return nil
}

func (s *sqlStore) List(ctx context.Context, q Query) ([]model.Entry, error) {
	query := "SELECT id, habit, value, unit, timestamp, notes FROM habit_entries WHERE 1=1"
	var args []interface{}

	if q.Habit != "" {
		query += " AND habit = ?"
		args = append(args, q.Habit)
	}
	if !q.Start.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, formatTime(q.Start))
	}
	if !q.End.IsZero() {
		query += " AND timestamp <= ?"
		args = append(args, formatTime(q.End))
	}
	query += " ORDER BY timestamp DESC, created_at DESC"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.Entry, 0)
	for rows.Next() {
		var (
			e     model.Entry
			ts    string
			notes sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Habit, &e.Value, &e.Unit, &ts, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		if e.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		e.Notes = notes.String
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	return entries, nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

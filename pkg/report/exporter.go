package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/storage"
)

const fileStamp = "20060102_150405"

// Exporter writes habit data and reports into a directory.
type Exporter struct {
	store  storage.Store
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*Exporter)

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

func NewExporter(store storage.Store, dir string, logger *zap.Logger, opts ...Option) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Exporter{store: store, dir: dir, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Entries loads the entries of the last days days, ending now, newest first.
func (e *Exporter) Entries(ctx context.Context, habit string, days int) ([]model.Entry, error) {
	if days < 1 {
		return nil, model.NewValidationError("days", "days must be at least 1, got %d", days)
	}
	end := e.now()
	entries, err := e.store.List(ctx, storage.Query{
		Habit: habit,
		Start: end.AddDate(0, 0, -days),
		End:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// Report builds the wellness report for the last days days.
func (e *Exporter) Report(ctx context.Context, days int) (Report, error) {
	entries, err := e.Entries(ctx, "", days)
	if err != nil {
		return Report{}, err
	}
	return Build(entries, days, e.now()), nil
}

// ExportCSV writes habits[_<habit>]_<stamp>.csv and returns its path.
func (e *Exporter) ExportCSV(ctx context.Context, habit string, days int) (string, error) {
	entries, err := e.Entries(ctx, habit, days)
	if err != nil {
		return "", err
	}

	name := "habits"
	if habit != "" {
		name += "_" + habit
	}
	path, err := e.create(fmt.Sprintf("%s_%s.csv", name, e.now().Format(fileStamp)), func(f *os.File) error {
		return WriteCSV(f, entries, e.now().Location())
	})
	if err != nil {
		return "", err
	}
	e.logger.Info("Exported habits", zap.String("path", path), zap.Int("entries", len(entries)))
	return path, nil
}

// ExportReport writes wellness_report_<days>days_<stamp>.json and returns
// its path.
func (e *Exporter) ExportReport(ctx context.Context, days int) (string, error) {
	r, err := e.Report(ctx, days)
	if err != nil {
		return "", err
	}
	path, err := e.create(fmt.Sprintf("wellness_report_%ddays_%s.json", days, e.now().Format(fileStamp)), func(f *os.File) error {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	})
	if err != nil {
		return "", err
	}
	e.logger.Info("Exported wellness report", zap.String("path", path), zap.Float64("score", r.WellnessScore.OverallScore))
	return path, nil
}

func (e *Exporter) create(name string, write func(*os.File) error) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir %s: %w", e.dir, err)
	}
	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

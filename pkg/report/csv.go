package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
)

var csvHeader = []string{"date", "time", "habit", "value", "unit", "notes"}

// WriteCSV writes entries with dates and times rendered in loc.
func WriteCSV(w io.Writer, entries []model.Entry, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, e := range entries {
		ts := e.Timestamp.In(loc)
		row := []string{
			ts.Format("2006-01-02"),
			ts.Format("15:04:05"),
			e.Habit,
			strconv.FormatFloat(e.Value, 'f', -1, 64),
			e.Unit,
			e.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

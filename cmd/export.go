package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/report"
)

var (
	exportFormat string
	exportDays   int
	exportHabit  string
	exportDir    string
)

func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export habit data to CSV or a JSON wellness report",
		Long: `Write a timestamped CSV of entries, or a JSON wellness report with
per-habit statistics, a wellness score and recommendations.

Examples:
  wellness export
  wellness export --format json --days 7
  wellness export --habit sleep --dir ./out`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Export format (csv, json)")
	cmd.Flags().IntVarP(&exportDays, "days", "d", 30, "Number of days to export")
	cmd.Flags().StringVar(&exportHabit, "habit", "", "Filter by habit (csv only)")
	cmd.Flags().StringVar(&exportDir, "dir", "", "Output directory (defaults to export.dir from config)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	format := strings.ToLower(exportFormat)
	if format != "csv" && format != "json" {
		return fmt.Errorf("unsupported format %q (use csv or json)", exportFormat)
	}
	h := exportHabit
	if h != "" {
		var err error
		if h, err = habit.ValidateHabit(h); err != nil {
			return err
		}
	}
	dir := exportDir
	if dir == "" {
		dir = currentConfig().Export.Dir
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	exporter := report.NewExporter(store, dir, currentLogger())

	fmt.Fprintf(out, "📤 Exporting %d days of data...\n", exportDays)
	s := newSpinner(cmd.ErrOrStderr(), "Writing export...")
	s.Start()

	var path string
	if format == "csv" {
		path, err = exporter.ExportCSV(ctx, h, exportDays)
	} else {
		path, err = exporter.ExportReport(ctx, exportDays)
	}
	s.Stop()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if format == "csv" {
		printSuccess(out, fmt.Sprintf("CSV exported to: %s", path))
	} else {
		printSuccess(out, fmt.Sprintf("Wellness report exported to: %s", path))
	}
	return nil
}

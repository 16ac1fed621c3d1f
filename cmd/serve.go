package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/advice"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/report"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/server"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/symptom"
)

var servePort int

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the JSON API until interrupted. SIGINT and SIGTERM drain in-flight
requests before exiting.

Examples:
  wellness serve
  wellness serve --port 9090 --provider gemini`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (defaults to server.port from config)")
	addLLMFlags(cmd)

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := currentConfig()
	log := currentLogger()
	port := servePort
	if port == 0 {
		port = c.Server.Port
	}

	l, err := newLLM(ctx, llmProvider, llmModel)
	if err != nil {
		return err
	}
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	tracker := habit.NewTracker(store, log)
	srv := server.New(server.Deps{
		Tracker:  tracker,
		Advisor:  advice.New(l, tracker, log),
		Analyzer: symptom.NewAnalyzer(),
		Exporter: report.NewExporter(store, c.Export.Dir, log),
	}, log)

	log.Info("Starting wellness API",
		zap.Int("port", port),
		zap.String("storage", c.Storage.Backend),
		zap.Bool("ai_enabled", l != nil))
	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Serving on http://localhost:%d", port))

	return srv.Run(ctx, fmt.Sprintf(":%d", port))
}

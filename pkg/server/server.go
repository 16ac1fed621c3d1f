// Package server exposes habit tracking, advice and symptom checks over a
// JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/advice"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/habit"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/model"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/report"
	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/symptom"
)

const (
	defaultSummaryDays  = 7
	defaultHistoryDays  = 7
	defaultHistoryLimit = 50
	defaultExportDays   = 30
	maxBodyBytes        = 1 << 20
	shutdownTimeout     = 10 * time.Second
)

// Deps are the services the handlers call.
type Deps struct {
	Tracker  *habit.Tracker
	Advisor  *advice.Advisor
	Analyzer *symptom.Analyzer
	Exporter *report.Exporter
}

type Server struct {
	deps   Deps
	logger *zap.Logger
	router chi.Router
	now    func() time.Time
}

func New(deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Analyzer == nil {
		deps.Analyzer = symptom.NewAnalyzer()
	}
	s := &Server{deps: deps, logger: logger, now: time.Now}
	s.routes()
	return s
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/track", s.handleTrack)
		r.Get("/summary", s.handleSummary)
		r.Post("/advice", s.handleAdvice)
		r.Post("/symptoms", s.handleSymptoms)
		r.Get("/history", s.handleHistory)
		r.Get("/export", s.handleExport)
		r.Get("/tips/daily", s.handleDailyTip)
	})
	s.router = r
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return <-errCh
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

type trackRequest struct {
	Habit string   `json:"habit"`
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
	Notes string   `json:"notes"`
	Date  string   `json:"date"`
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Value == nil {
		s.fail(w, r, model.NewValidationError("value", "value is required"))
		return
	}

	var at time.Time
	if req.Date != "" {
		var err error
		if at, err = habit.ParseDate(req.Date, s.now().Location()); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	e, err := s.deps.Tracker.Track(r.Context(), req.Habit, *req.Value, req.Unit, req.Notes, at)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Successfully tracked %s: %g %s", e.Habit, e.Value, e.Unit),
		"entry":   e,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	days, ok := s.intParam(w, r, "days", defaultSummaryDays)
	if !ok {
		return
	}
	stats, err := s.deps.Tracker.Summary(r.Context(), days)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"summary":     stats,
		"period_days": days,
	})
}

type adviceRequest struct {
	Question       string `json:"question"`
	IncludeContext *bool  `json:"include_context"`
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Question == "" {
		s.fail(w, r, model.NewValidationError("question", "question is required"))
		return
	}
	includeContext := req.IncludeContext == nil || *req.IncludeContext

	a := s.deps.Advisor.Ask(r.Context(), req.Question, includeContext)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"advice":  a,
	})
}

type symptomRequest struct {
	Description string `json:"description"`
}

func (s *Server) handleSymptoms(w http.ResponseWriter, r *http.Request) {
	var req symptomRequest
	if !s.decode(w, r, &req) {
		return
	}

	rep, err := s.deps.Analyzer.Analyze(req.Description)
	if err != nil {
		var verr *model.ValidationError
		status := http.StatusInternalServerError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
			rep = symptom.FailClosed(req.Description, err)
		}
		s.logger.Warn("Symptom check failed",
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())))
		writeJSON(w, status, map[string]interface{}{
			"success":            false,
			"message":            err.Error(),
			"requires_attention": true,
			"analysis":           rep,
		})
		return
	}

	if rep.RequiresAttention {
		s.logger.Warn("Symptom check requires attention",
			zap.Stringer("urgency", rep.Urgency),
			zap.Int("matches", len(rep.Matches)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"analysis": rep,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	days, ok := s.intParam(w, r, "days", defaultHistoryDays)
	if !ok {
		return
	}
	limit, ok := s.intParam(w, r, "limit", defaultHistoryLimit)
	if !ok {
		return
	}

	entries, err := s.deps.Tracker.Recent(r.Context(), r.URL.Query().Get("habit"), days)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"entries": entries,
		"total":   len(entries),
	})
}

// handleExport streams the export instead of writing it on the server's disk.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	days, ok := s.intParam(w, r, "days", defaultExportDays)
	if !ok {
		return
	}
	h := r.URL.Query().Get("habit")
	if h != "" {
		var err error
		if h, err = habit.ValidateHabit(h); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		rep, err := s.deps.Exporter.Report(r.Context(), days)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rep)
	case "csv":
		entries, err := s.deps.Exporter.Entries(r.Context(), h, days)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		name := "habits"
		if h != "" {
			name += "_" + h
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
		w.WriteHeader(http.StatusOK)
		if err := report.WriteCSV(w, entries, s.now().Location()); err != nil {
			s.logger.Error("Failed to write CSV export", zap.Error(err))
		}
	default:
		s.fail(w, r, model.NewValidationError("format", "format must be csv or json, got %q", format))
	}
}

func (s *Server) handleDailyTip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tip":     advice.DailyTipText(s.now()),
	})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.fail(w, r, model.NewValidationError("body", "invalid JSON: %v", err))
		return false
	}
	return true
}

func (s *Server) intParam(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.fail(w, r, model.NewValidationError(name, "%s must be an integer, got %q", name, raw))
		return 0, false
	}
	return n, true
}

// fail answers 400 for validation errors and 500 for everything else.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("Request failed",
			zap.Error(err),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	}
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

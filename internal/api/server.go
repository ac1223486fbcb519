package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/artflow/artflow/internal/metrics"
	"github.com/artflow/artflow/internal/service"
)

// Server provides the HTTP API.
type Server struct {
	svc    *service.Service
	logger *logrus.Logger
	mux    *http.ServeMux
}

// NewServer creates a Server, registers all routes, and returns it.
func NewServer(svc *service.Service, logger *logrus.Logger) *Server {
	s := &Server{svc: svc, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

// Handler returns the http.Handler that can be passed to http.Server.
func (s *Server) Handler() http.Handler {
	return s.instrument(s.mux)
}

// ---------------------------------------------------------------------------
// Routes
// ---------------------------------------------------------------------------

func (s *Server) routes() {
	// API – Calendar
	s.mux.HandleFunc("GET /api/calendar", s.handleGetCalendar)
	s.mux.HandleFunc("POST /api/events", s.handleCreateEvent)
	s.mux.HandleFunc("PUT /api/events/{id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/events/{id}", s.handleDeleteEventSeries)
	s.mux.HandleFunc("DELETE /api/events/{id}/occurrences/{date}", s.handleDeleteOccurrence)
	s.mux.HandleFunc("PUT /api/events/{id}/occurrences/{date}", s.handleRetitleOccurrence)

	// API – Labels and day notes
	s.mux.HandleFunc("GET /api/labels", s.handleGetLabels)
	s.mux.HandleFunc("POST /api/labels", s.handleCreateLabel)
	s.mux.HandleFunc("DELETE /api/labels/{id}", s.handleDeleteLabel)
	s.mux.HandleFunc("GET /api/notes", s.handleGetMonthNotes)
	s.mux.HandleFunc("PUT /api/notes/{date}", s.handleSaveDayNote)

	// API – Projects, templates and tasks
	s.mux.HandleFunc("GET /api/projects", s.handleGetProjects)
	s.mux.HandleFunc("POST /api/projects", s.handleCreateProject)
	s.mux.HandleFunc("PUT /api/projects/{id}", s.handleUpdateProject)
	s.mux.HandleFunc("DELETE /api/projects/{id}", s.handleDeleteProject)
	s.mux.HandleFunc("POST /api/projects/reorder", s.handleReorderProjects)
	s.mux.HandleFunc("POST /api/projects/{id}/objectives", s.handleAddObjective)
	s.mux.HandleFunc("PUT /api/projects/{id}/objectives/{objectiveID}/toggle", s.handleToggleObjective)
	s.mux.HandleFunc("POST /api/projects/{id}/template", s.handleSaveAsTemplate)
	s.mux.HandleFunc("GET /api/templates", s.handleGetTemplates)
	s.mux.HandleFunc("POST /api/templates/{id}/instantiate", s.handleCreateFromTemplate)
	s.mux.HandleFunc("DELETE /api/templates/{id}", s.handleDeleteTemplate)

	s.mux.HandleFunc("GET /api/projects/{id}/tasks", s.handleGetProjectTasks)
	s.mux.HandleFunc("POST /api/tasks", s.handleCreateTask)
	s.mux.HandleFunc("PUT /api/tasks/{id}", s.handleUpdateTask)
	s.mux.HandleFunc("PUT /api/tasks/{id}/toggle", s.handleToggleTask)
	s.mux.HandleFunc("DELETE /api/tasks/{id}", s.handleDeleteTask)
	s.mux.HandleFunc("POST /api/tasks/reorder", s.handleReorderTasks)
	s.mux.HandleFunc("POST /api/tasks/{id}/subtasks", s.handleAddSubtask)
	s.mux.HandleFunc("PUT /api/tasks/{id}/subtasks/{subtaskID}/toggle", s.handleToggleSubtask)
	s.mux.HandleFunc("POST /api/tasks/{id}/pomodoro", s.handleRecordPomodoro)

	// API – Daily planner
	s.mux.HandleFunc("GET /api/planner", s.handleGetPlannerDay)
	s.mux.HandleFunc("POST /api/planner", s.handleAddDailyTask)
	s.mux.HandleFunc("POST /api/planner/drop", s.handleDropTaskOnPlanner)
	s.mux.HandleFunc("POST /api/planner/rollover", s.handleRolloverPlanner)
	s.mux.HandleFunc("PUT /api/planner/{id}/move", s.handleMoveDailyTask)
	s.mux.HandleFunc("PUT /api/planner/{id}/toggle", s.handleToggleDailyTask)
	s.mux.HandleFunc("DELETE /api/planner/{id}", s.handleDeleteDailyTask)

	// API – Habits and annual goals
	s.mux.HandleFunc("GET /api/habits", s.handleGetHabits)
	s.mux.HandleFunc("POST /api/habits", s.handleCreateHabit)
	s.mux.HandleFunc("PUT /api/habits/{id}/complete", s.handleCompleteHabit)
	s.mux.HandleFunc("DELETE /api/habits/{id}", s.handleDeleteHabit)
	s.mux.HandleFunc("GET /api/goals", s.handleGetGoals)
	s.mux.HandleFunc("POST /api/goals", s.handleCreateGoal)
	s.mux.HandleFunc("PUT /api/goals/{id}/toggle", s.handleToggleGoal)
	s.mux.HandleFunc("DELETE /api/goals/{id}", s.handleDeleteGoal)

	// API – Brain dump
	s.mux.HandleFunc("GET /api/braindump", s.handleGetBrainDump)
	s.mux.HandleFunc("POST /api/braindump", s.handleCaptureThought)
	s.mux.HandleFunc("POST /api/braindump/{id}/convert", s.handleConvertThought)
	s.mux.HandleFunc("POST /api/braindump/{id}/promote", s.handlePromoteThought)
	s.mux.HandleFunc("DELETE /api/braindump/{id}", s.handleDeleteThought)

	// API – Payments
	s.mux.HandleFunc("GET /api/payments/obligations", s.handleGetObligations)
	s.mux.HandleFunc("POST /api/payments/obligations", s.handleCreateObligation)
	s.mux.HandleFunc("PUT /api/payments/obligations/{id}", s.handleUpdateObligation)
	s.mux.HandleFunc("DELETE /api/payments/obligations/{id}", s.handleDeleteObligation)
	s.mux.HandleFunc("GET /api/payments", s.handleGetMonthPayments)
	s.mux.HandleFunc("PUT /api/payments/{id}/toggle", s.handleTogglePaid)

	// API – Home missions
	s.mux.HandleFunc("GET /api/missions/daily", s.handleGetDailyMissions)
	s.mux.HandleFunc("PUT /api/missions/daily/{missionID}", s.handleSetDailyMission)
	s.mux.HandleFunc("GET /api/missions/weekly", s.handleGetWeeklyMissions)
	s.mux.HandleFunc("PUT /api/missions/weekly/{missionID}", s.handleSetWeeklyMission)

	// API – Creative advisor
	s.mux.HandleFunc("POST /api/advisor", s.handleAdvise)
	s.mux.HandleFunc("GET /api/summaries", s.handleGetSummaries)
	s.mux.HandleFunc("DELETE /api/summaries", s.handleDeleteMonthSummaries)

	// Operational endpoints
	s.mux.Handle("GET /metrics", promhttp.Handler())
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// instrument wraps the mux with request counting and latency metrics.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		pattern := r.Pattern
		if pattern == "" {
			pattern = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(r.Method, pattern, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPDuration.WithLabelValues(pattern).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.WithError(err).Error("failed to encode JSON response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses.
func (s *Server) respondServiceError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.WithError(err).Errorf("failed to %s", action)
		s.respondError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

// decodeJSON reads the request body into dst and returns an error message on
// failure.  The caller should return immediately when ok == false.
func (s *Server) decodeJSON(r *http.Request, dst any) (ok bool, errMsg string) {
	if r.Body == nil {
		return false, "request body is empty"
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return false, fmt.Sprintf("invalid JSON: %v", err)
	}
	return true, ""
}

// pathID extracts the {id} path value and converts it to int64.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	if raw == "" {
		return 0, fmt.Errorf("missing id in path")
	}
	return strconv.ParseInt(raw, 10, 64)
}

// requireUserID reads the user_id query parameter.  It writes an error
// response and returns "" when the parameter is absent.
func (s *Server) requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		s.respondError(w, http.StatusBadRequest, "user_id query parameter is required")
		return "", false
	}
	return userID, true
}

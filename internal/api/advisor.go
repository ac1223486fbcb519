package api

import (
	"net/http"

	"github.com/artflow/artflow/internal/service"
)

func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Kind string `json:"kind"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	advice, err := s.svc.Advise(r.Context(), userID, service.AdviceKind(req.Kind))
	if err != nil {
		s.respondServiceError(w, err, "generate advice")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"advice": advice})
}

func (s *Server) handleGetSummaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	grouped, err := s.svc.SummariesByMonth(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get summaries")
		return
	}
	s.respondJSON(w, http.StatusOK, grouped)
}

func (s *Server) handleDeleteMonthSummaries(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	monthID := r.URL.Query().Get("month")
	if monthID == "" {
		s.respondError(w, http.StatusBadRequest, "month query parameter is required")
		return
	}
	deleted, err := s.svc.DeleteMonthSummaries(r.Context(), userID, monthID)
	if err != nil {
		s.respondServiceError(w, err, "delete summaries")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

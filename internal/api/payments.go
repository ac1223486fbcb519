package api

import (
	"net/http"

	"github.com/artflow/artflow/internal/models"
)

type obligationRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	DueDay int     `json:"due_day"`
}

func (s *Server) handleGetObligations(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	obligations, err := s.svc.Payments.GetObligations(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get obligations")
		return
	}
	s.respondJSON(w, http.StatusOK, obligations)
}

func (s *Server) handleCreateObligation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req obligationRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	ob, err := s.svc.CreateObligation(r.Context(), &models.Obligation{
		UserID: userID, Name: req.Name, Amount: req.Amount, DueDay: req.DueDay,
	})
	if err != nil {
		s.respondServiceError(w, err, "create obligation")
		return
	}
	s.respondJSON(w, http.StatusCreated, ob)
}

func (s *Server) handleUpdateObligation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req obligationRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	ob, err := s.svc.UpdateObligation(r.Context(), &models.Obligation{
		ID: id, UserID: userID, Name: req.Name, Amount: req.Amount, DueDay: req.DueDay,
	})
	if err != nil {
		s.respondServiceError(w, err, "update obligation")
		return
	}
	s.respondJSON(w, http.StatusOK, ob)
}

func (s *Server) handleDeleteObligation(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUserID(w, r); !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.Payments.DeleteObligation(r.Context(), id); err != nil {
		s.respondServiceError(w, err, "delete obligation")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleGetMonthPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	monthID := r.URL.Query().Get("month")
	if monthID == "" {
		s.respondError(w, http.StatusBadRequest, "month query parameter is required")
		return
	}
	payments, summary, err := s.svc.MonthPayments(r.Context(), userID, monthID)
	if err != nil {
		s.respondServiceError(w, err, "get month payments")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"payments": payments,
		"summary":  summary,
	})
}

func (s *Server) handleTogglePaid(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	payment, err := s.svc.TogglePaid(r.Context(), userID, id)
	if err != nil {
		s.respondServiceError(w, err, "toggle payment")
		return
	}
	s.respondJSON(w, http.StatusOK, payment)
}

package api

import (
	"net/http"
	"time"

	"github.com/artflow/artflow/internal/calendar"
	"github.com/artflow/artflow/internal/models"
)

func (s *Server) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	view := calendar.View(q.Get("view"))
	if view == "" {
		view = calendar.ViewMonth
	}

	ref := time.Now()
	if date := q.Get("date"); date != "" {
		parsed, err := calendar.ParseDateID(date)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		ref = parsed
	}

	if view == calendar.ViewAgenda {
		groups, err := s.svc.Agenda(r.Context(), userID, ref)
		if err != nil {
			s.respondServiceError(w, err, "build agenda")
			return
		}
		s.respondJSON(w, http.StatusOK, groups)
		return
	}

	grouped, err := s.svc.CalendarByDate(r.Context(), userID, view, ref)
	if err != nil {
		s.respondServiceError(w, err, "expand calendar")
		return
	}
	s.respondJSON(w, http.StatusOK, grouped)
}

type eventRequest struct {
	Title      string             `json:"title"`
	StartDate  string             `json:"start_date"` // YYYY-MM-DD
	Recurrence *models.Recurrence `json:"recurrence,omitempty"`
	LabelID    *int64             `json:"label_id,omitempty"`
}

func (s *Server) eventFromRequest(w http.ResponseWriter, userID string, req eventRequest) (*models.CalendarEvent, bool) {
	event := &models.CalendarEvent{
		UserID:     userID,
		Title:      req.Title,
		Recurrence: req.Recurrence,
		LabelID:    req.LabelID,
	}
	if req.StartDate != "" {
		start, err := calendar.ParseDateID(req.StartDate)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		event.StartDate = start
	}
	return event, true
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req eventRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	event, ok := s.eventFromRequest(w, userID, req)
	if !ok {
		return
	}
	created, err := s.svc.CreateEvent(r.Context(), event)
	if err != nil {
		s.respondServiceError(w, err, "create event")
		return
	}
	s.respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req eventRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	event, ok := s.eventFromRequest(w, userID, req)
	if !ok {
		return
	}
	event.ID = id
	updated, err := s.svc.UpdateEvent(r.Context(), event)
	if err != nil {
		s.respondServiceError(w, err, "update event")
		return
	}
	s.respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteEventSeries(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.DeleteEventSeries(r.Context(), userID, id); err != nil {
		s.respondServiceError(w, err, "delete event")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleDeleteOccurrence(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.DeleteOccurrence(r.Context(), userID, id, r.PathValue("date")); err != nil {
		s.respondServiceError(w, err, "delete occurrence")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleRetitleOccurrence(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req struct {
		Title string `json:"title"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	exception, err := s.svc.RetitleOccurrence(r.Context(), userID, id, r.PathValue("date"), req.Title)
	if err != nil {
		s.respondServiceError(w, err, "retitle occurrence")
		return
	}
	s.respondJSON(w, http.StatusOK, exception)
}

func (s *Server) handleGetLabels(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	labels, err := s.svc.Labels.GetByUserID(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get labels")
		return
	}
	s.respondJSON(w, http.StatusOK, labels)
}

func (s *Server) handleCreateLabel(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	label, err := s.svc.CreateLabel(r.Context(), &models.Label{
		UserID: userID, Name: req.Name, Color: req.Color,
	})
	if err != nil {
		s.respondServiceError(w, err, "create label")
		return
	}
	s.respondJSON(w, http.StatusCreated, label)
}

func (s *Server) handleDeleteLabel(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUserID(w, r); !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.Labels.Delete(r.Context(), id); err != nil {
		s.respondServiceError(w, err, "delete label")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleGetMonthNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	monthID := r.URL.Query().Get("month")
	if monthID == "" {
		s.respondError(w, http.StatusBadRequest, "month query parameter is required")
		return
	}
	notes, err := s.svc.MonthNotes(r.Context(), userID, monthID)
	if err != nil {
		s.respondServiceError(w, err, "get day notes")
		return
	}
	s.respondJSON(w, http.StatusOK, notes)
}

func (s *Server) handleSaveDayNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Note string `json:"note"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	note, err := s.svc.SaveDayNote(r.Context(), userID, r.PathValue("date"), req.Note)
	if err != nil {
		s.respondServiceError(w, err, "save day note")
		return
	}
	if note == nil {
		// Empty text cleared the note.
		s.respondJSON(w, http.StatusNoContent, nil)
		return
	}
	s.respondJSON(w, http.StatusOK, note)
}

package api

import (
	"net/http"

	"github.com/artflow/artflow/internal/models"
)

func (s *Server) handleGetHabits(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	if date := r.URL.Query().Get("due"); date != "" {
		habits, err := s.svc.HabitsDueOn(r.Context(), userID, date)
		if err != nil {
			s.respondServiceError(w, err, "get due habits")
			return
		}
		s.respondJSON(w, http.StatusOK, habits)
		return
	}
	habits, err := s.svc.Habits.GetByUserID(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get habits")
		return
	}
	s.respondJSON(w, http.StatusOK, habits)
}

func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Name      string           `json:"name"`
		Frequency []models.Weekday `json:"frequency"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	habit, err := s.svc.CreateHabit(r.Context(), &models.Habit{
		UserID: userID, Name: req.Name, Frequency: req.Frequency,
	})
	if err != nil {
		s.respondServiceError(w, err, "create habit")
		return
	}
	s.respondJSON(w, http.StatusCreated, habit)
}

func (s *Server) handleCompleteHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	habit, err := s.svc.CompleteHabit(r.Context(), userID, id)
	if err != nil {
		s.respondServiceError(w, err, "complete habit")
		return
	}
	s.respondJSON(w, http.StatusOK, habit)
}

func (s *Server) handleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.DeleteHabit(r.Context(), userID, id); err != nil {
		s.respondServiceError(w, err, "delete habit")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleGetGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	goals, err := s.svc.Goals.GetByUserID(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get goals")
		return
	}
	s.respondJSON(w, http.StatusOK, goals)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	goal, err := s.svc.CreateGoal(r.Context(), &models.AnnualGoal{UserID: userID, Text: req.Text})
	if err != nil {
		s.respondServiceError(w, err, "create goal")
		return
	}
	s.respondJSON(w, http.StatusCreated, goal)
}

func (s *Server) handleToggleGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	goal, err := s.svc.ToggleGoal(r.Context(), userID, id)
	if err != nil {
		s.respondServiceError(w, err, "toggle goal")
		return
	}
	s.respondJSON(w, http.StatusOK, goal)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.DeleteGoal(r.Context(), userID, id); err != nil {
		s.respondServiceError(w, err, "delete goal")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

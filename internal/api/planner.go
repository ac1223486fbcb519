package api

import (
	"net/http"
)

func (s *Server) handleGetPlannerDay(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		s.respondError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}
	tasks, err := s.svc.PlannerDay(r.Context(), userID, date)
	if err != nil {
		s.respondServiceError(w, err, "get planner day")
		return
	}
	s.respondJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleAddDailyTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Text     string `json:"text"`
		PlanDate string `json:"plan_date"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	task, err := s.svc.AddDailyTask(r.Context(), userID, req.PlanDate, req.Text)
	if err != nil {
		s.respondServiceError(w, err, "add daily task")
		return
	}
	s.respondJSON(w, http.StatusCreated, task)
}

func (s *Server) handleDropTaskOnPlanner(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		TaskID   int64  `json:"task_id"`
		PlanDate string `json:"plan_date"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	task, err := s.svc.DropTaskOnPlanner(r.Context(), userID, req.TaskID, req.PlanDate)
	if err != nil {
		s.respondServiceError(w, err, "drop task on planner")
		return
	}
	s.respondJSON(w, http.StatusCreated, task)
}

func (s *Server) handleMoveDailyTask(w http.ResponseWriter, r *http.Request) {
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
		PlanDate string `json:"plan_date"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	task, err := s.svc.MoveDailyTask(r.Context(), userID, id, req.PlanDate)
	if err != nil {
		s.respondServiceError(w, err, "move daily task")
		return
	}
	s.respondJSON(w, http.StatusOK, task)
}

func (s *Server) handleToggleDailyTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	task, err := s.svc.ToggleDailyTask(r.Context(), userID, id)
	if err != nil {
		s.respondServiceError(w, err, "toggle daily task")
		return
	}
	s.respondJSON(w, http.StatusOK, task)
}

func (s *Server) handleRolloverPlanner(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	moved, err := s.svc.RolloverUserPlanner(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "roll over planner")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]int64{"moved": moved})
}

func (s *Server) handleDeleteDailyTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.DeleteDailyTask(r.Context(), userID, id); err != nil {
		s.respondServiceError(w, err, "delete daily task")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

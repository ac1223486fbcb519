package api

import (
	"net/http"

	"github.com/artflow/artflow/internal/calendar"
	"github.com/artflow/artflow/internal/models"
)

type taskRequest struct {
	ProjectID int64               `json:"project_id"`
	Name      string              `json:"name"`
	Notes     string              `json:"notes"`
	Priority  models.TaskPriority `json:"priority"`
	DueDate   string              `json:"due_date,omitempty"` // YYYY-MM-DD
}

func (s *Server) taskFromRequest(w http.ResponseWriter, userID string, req taskRequest) (*models.Task, bool) {
	task := &models.Task{
		UserID:    userID,
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Notes:     req.Notes,
		Priority:  req.Priority,
	}
	if req.DueDate != "" {
		due, err := calendar.ParseDateID(req.DueDate)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		task.DueDate = &due
	}
	return task, true
}

func (s *Server) handleGetProjectTasks(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUserID(w, r); !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	tasks, err := s.svc.Tasks.GetByProjectID(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, err, "get tasks")
		return
	}
	s.respondJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req taskRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	task, ok := s.taskFromRequest(w, userID, req)
	if !ok {
		return
	}
	created, err := s.svc.CreateTask(r.Context(), task)
	if err != nil {
		s.respondServiceError(w, err, "create task")
		return
	}
	s.respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var task models.Task
	if ok, msg := s.decodeJSON(r, &task); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	task.ID = id
	task.UserID = userID
	updated, err := s.svc.UpdateTask(r.Context(), &task)
	if err != nil {
		s.respondServiceError(w, err, "update task")
		return
	}
	s.respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	task, err := s.svc.ToggleTask(r.Context(), userID, id)
	if err != nil {
		s.respondServiceError(w, err, "toggle task")
		return
	}
	s.respondJSON(w, http.StatusOK, task)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.DeleteTask(r.Context(), userID, id); err != nil {
		s.respondServiceError(w, err, "delete task")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleReorderTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req reorderRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if err := s.svc.ReorderTasks(r.Context(), userID, req.DraggedID, req.TargetID, req.Before); err != nil {
		s.respondServiceError(w, err, "reorder tasks")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleAddSubtask(w http.ResponseWriter, r *http.Request) {
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
		Name string `json:"name"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	task, err := s.svc.AddSubtask(r.Context(), userID, id, req.Name)
	if err != nil {
		s.respondServiceError(w, err, "add subtask")
		return
	}
	s.respondJSON(w, http.StatusOK, task)
}

func (s *Server) handleToggleSubtask(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	task, err := s.svc.ToggleSubtask(r.Context(), userID, id, r.PathValue("subtaskID"))
	if err != nil {
		s.respondServiceError(w, err, "toggle subtask")
		return
	}
	s.respondJSON(w, http.StatusOK, task)
}

func (s *Server) handleRecordPomodoro(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	task, err := s.svc.RecordPomodoro(r.Context(), userID, id)
	if err != nil {
		s.respondServiceError(w, err, "record pomodoro")
		return
	}
	s.respondJSON(w, http.StatusOK, task)
}

package api

import (
	"net/http"
)

func (s *Server) handleGetBrainDump(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	items, err := s.svc.BrainDump.GetByUserID(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get brain dump")
		return
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleCaptureThought(w http.ResponseWriter, r *http.Request) {
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
	item, err := s.svc.CaptureThought(r.Context(), userID, req.Text)
	if err != nil {
		s.respondServiceError(w, err, "capture thought")
		return
	}
	s.respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleConvertThought(w http.ResponseWriter, r *http.Request) {
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
		ProjectID int64 `json:"project_id"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	task, err := s.svc.ConvertThoughtToTask(r.Context(), userID, id, req.ProjectID)
	if err != nil {
		s.respondServiceError(w, err, "convert thought")
		return
	}
	s.respondJSON(w, http.StatusCreated, task)
}

func (s *Server) handlePromoteThought(w http.ResponseWriter, r *http.Request) {
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
		Category string `json:"category"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	project, err := s.svc.ConvertThoughtToProject(r.Context(), userID, id, req.Category)
	if err != nil {
		s.respondServiceError(w, err, "promote thought")
		return
	}
	s.respondJSON(w, http.StatusCreated, project)
}

func (s *Server) handleDeleteThought(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.DeleteThought(r.Context(), userID, id); err != nil {
		s.respondServiceError(w, err, "delete thought")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

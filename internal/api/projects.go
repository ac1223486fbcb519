package api

import (
	"net/http"

	"github.com/artflow/artflow/internal/models"
)

func (s *Server) handleGetProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	projects, err := s.svc.Projects.GetByUserID(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get projects")
		return
	}
	s.respondJSON(w, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Name     string `json:"name"`
		Category string `json:"category"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	project, err := s.svc.CreateProject(r.Context(), &models.Project{
		UserID: userID, Name: req.Name, Category: req.Category,
	})
	if err != nil {
		s.respondServiceError(w, err, "create project")
		return
	}
	s.respondJSON(w, http.StatusCreated, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var project models.Project
	if ok, msg := s.decodeJSON(r, &project); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	project.ID = id
	project.UserID = userID
	updated, err := s.svc.UpdateProject(r.Context(), &project)
	if err != nil {
		s.respondServiceError(w, err, "update project")
		return
	}
	s.respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.DeleteProject(r.Context(), userID, id); err != nil {
		s.respondServiceError(w, err, "delete project")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

type reorderRequest struct {
	DraggedID int64 `json:"dragged_id"`
	TargetID  int64 `json:"target_id"`
	Before    bool  `json:"before"`
}

func (s *Server) handleReorderProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req reorderRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	if err := s.svc.ReorderProjects(r.Context(), userID, req.DraggedID, req.TargetID, req.Before); err != nil {
		s.respondServiceError(w, err, "reorder projects")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleAddObjective(w http.ResponseWriter, r *http.Request) {
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
		Text string `json:"text"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	project, err := s.svc.AddObjective(r.Context(), userID, id, req.Text)
	if err != nil {
		s.respondServiceError(w, err, "add objective")
		return
	}
	s.respondJSON(w, http.StatusOK, project)
}

func (s *Server) handleToggleObjective(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	project, err := s.svc.ToggleObjective(r.Context(), userID, id, r.PathValue("objectiveID"))
	if err != nil {
		s.respondServiceError(w, err, "toggle objective")
		return
	}
	s.respondJSON(w, http.StatusOK, project)
}

func (s *Server) handleSaveAsTemplate(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	tmpl, err := s.svc.SaveAsTemplate(r.Context(), userID, id)
	if err != nil {
		s.respondServiceError(w, err, "save template")
		return
	}
	s.respondJSON(w, http.StatusCreated, tmpl)
}

func (s *Server) handleGetTemplates(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	templates, err := s.svc.Templates.GetByUserID(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get templates")
		return
	}
	s.respondJSON(w, http.StatusOK, templates)
}

func (s *Server) handleCreateFromTemplate(w http.ResponseWriter, r *http.Request) {
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
	project, err := s.svc.CreateFromTemplate(r.Context(), userID, id, req.Name)
	if err != nil {
		s.respondServiceError(w, err, "create project from template")
		return
	}
	s.respondJSON(w, http.StatusCreated, project)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUserID(w, r); !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.svc.Templates.Delete(r.Context(), id); err != nil {
		s.respondServiceError(w, err, "delete template")
		return
	}
	s.respondJSON(w, http.StatusNoContent, nil)
}

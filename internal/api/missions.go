package api

import (
	"net/http"
)

func (s *Server) handleGetDailyMissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	missions, err := s.svc.TodayMissions(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get daily missions")
		return
	}
	s.respondJSON(w, http.StatusOK, missions)
}

func (s *Server) handleSetDailyMission(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Completed bool `json:"completed"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	reward, err := s.svc.SetDailyMission(r.Context(), userID, r.PathValue("missionID"), req.Completed)
	if err != nil {
		s.respondServiceError(w, err, "set daily mission")
		return
	}
	if reward == "" {
		s.respondJSON(w, http.StatusNoContent, nil)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"reward": reward})
}

func (s *Server) handleGetWeeklyMissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	missions, err := s.svc.WeekMissions(r.Context(), userID)
	if err != nil {
		s.respondServiceError(w, err, "get weekly missions")
		return
	}
	s.respondJSON(w, http.StatusOK, missions)
}

func (s *Server) handleSetWeeklyMission(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireUserID(w, r)
	if !ok {
		return
	}
	var req struct {
		Completed bool `json:"completed"`
	}
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondError(w, http.StatusBadRequest, msg)
		return
	}
	reward, err := s.svc.SetWeeklyMission(r.Context(), userID, r.PathValue("missionID"), req.Completed)
	if err != nil {
		s.respondServiceError(w, err, "set weekly mission")
		return
	}
	if reward == "" {
		s.respondJSON(w, http.StatusNoContent, nil)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"reward": reward})
}

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/logging"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/server/middleware"
	"github.com/jonathan/career-compass/internal/types"
)

// sessionHandler is a handler that runs with an authenticated session
type sessionHandler func(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID)

// requireSession authenticates the request and checks that storage is available
func (s *Server) requireSession(h sessionHandler) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.store == nil {
			s.writeError(w, r, &ErrUnavailable{Feature: "guide storage"})
			return
		}
		sessionID, err := middleware.SessionID(r)
		if err != nil {
			s.writeError(w, r, &ErrUnauthorized{})
			return
		}
		h(w, r, sessionID)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.sessions == nil {
			s.writeError(w, r, &ErrUnavailable{Feature: "sessions"})
			return
		}
		middleware.RequireSession(s.sessions.AsTokenValidator())(inner).ServeHTTP(w, r)
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	if s.sessions == nil {
		s.writeError(w, r, &ErrUnavailable{Feature: "sessions"})
		return
	}
	session, err := s.sessions.Issue()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, session)
}

func (s *Server) handleSaveGuide(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	var guide types.CareerGuide
	if err := s.decodeJSON(w, r, &guide); err != nil {
		s.writeError(w, r, err)
		return
	}
	if guide.ID != "" {
		if _, err := uuid.Parse(guide.ID); err != nil {
			s.writeError(w, r, &ErrValidation{Field: "id", Message: "must be a UUID"})
			return
		}
	}
	if guide.GeneratedAt == "" {
		guide.GeneratedAt = s.now().Format(time.RFC3339)
	}

	stored, err := s.store.SaveGuide(r.Context(), sessionID, &guide)
	if err != nil {
		if errors.Is(err, db.ErrGuideNotFound) {
			s.writeError(w, r, &ErrNotFound{Resource: "guide", ID: guide.ID})
			return
		}
		s.writeError(w, r, err)
		return
	}
	logging.Ctx(r.Context()).Debug().Str("guide", stored.ID).Msg("guide saved")
	s.jsonResponse(w, http.StatusCreated, stored)
}

func (s *Server) handleListGuides(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	limit := parseQueryInt(r, "limit", db.DefaultListLimit, db.MaxListLimit)
	guides, err := s.store.ListGuides(r.Context(), sessionID, limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"guides": guides,
		"count":  len(guides),
	})
}

func (s *Server) handleLatestGuide(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	guide, err := s.store.GetLatestGuide(r.Context(), sessionID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if guide == nil {
		s.writeError(w, r, &ErrNotFound{Resource: "guide", ID: "latest"})
		return
	}
	s.jsonResponse(w, http.StatusOK, guide)
}

// handleDeleteGuides clears every saved guide of the session
func (s *Server) handleDeleteGuides(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	deleted, err := s.store.DeleteGuides(r.Context(), sessionID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

func (s *Server) handleCreateLearningPath(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	path, ok := s.buildRoadmap(w, r)
	if !ok {
		return
	}
	if err := s.store.SaveLearningPath(r.Context(), sessionID, path); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, path)
}

func (s *Server) loadPath(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) (*types.LearningPath, bool) {
	idStr := r.PathValue("id")
	pathID, err := uuid.Parse(idStr)
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "id", Message: "invalid learning path ID"})
		return nil, false
	}

	path, err := s.store.GetLearningPath(r.Context(), sessionID, pathID)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	if path == nil {
		s.writeError(w, r, &ErrNotFound{Resource: "learning path", ID: idStr})
		return nil, false
	}
	return path, true
}

func (s *Server) handleGetLearningPath(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	path, ok := s.loadPath(w, r, sessionID)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, path)
}

func (s *Server) handleToggleMilestone(w http.ResponseWriter, r *http.Request, sessionID uuid.UUID) {
	path, ok := s.loadPath(w, r, sessionID)
	if !ok {
		return
	}

	if err := roadmap.ToggleMilestone(path, r.PathValue("mid"), s.now()); err != nil {
		if errors.Is(err, roadmap.ErrMilestoneNotFound) {
			s.writeError(w, r, &ErrNotFound{Resource: "milestone", ID: r.PathValue("mid")})
			return
		}
		s.writeError(w, r, err)
		return
	}

	updated, err := s.store.UpdateLearningPath(r.Context(), sessionID, path)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !updated {
		s.writeError(w, r, &ErrNotFound{Resource: "learning path", ID: path.ID})
		return
	}
	s.jsonResponse(w, http.StatusOK, path)
}

package server

import (
	"net/http"

	"github.com/jonathan/career-compass/internal/types"
)

// handleHealth reports liveness and which optional services are wired
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"storage":  s.store != nil,
		"sessions": s.sessions != nil,
	})
}

func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  s.catalog.JobTemplates,
		"total": len(s.catalog.JobTemplates),
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	job, ok := s.catalog.Job(id)
	if !ok {
		s.writeError(w, r, &ErrNotFound{Resource: "job", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleListMentors(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"mentors": s.catalog.Mentors,
		"total":   len(s.catalog.Mentors),
	})
}

func (s *Server) handleGetMentor(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	mentor, ok := s.catalog.Mentor(id)
	if !ok {
		s.writeError(w, r, &ErrNotFound{Resource: "mentor", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, mentor)
}

// requirementsFor resolves a request's requirement set from a job template or the explicit list
func (s *Server) requirementsFor(req *types.SkillGapRequest) (string, []string, error) {
	if req.JobID == "" {
		return "", req.Requirements, nil
	}
	job, ok := s.catalog.Job(req.JobID)
	if !ok {
		return "", nil, &ErrNotFound{Resource: "job", ID: req.JobID}
	}
	return job.Title, job.Skills, nil
}

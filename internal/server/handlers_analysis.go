package server

import (
	"net/http"

	"github.com/jonathan/career-compass/internal/ranking"
	"github.com/jonathan/career-compass/internal/rendering"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/skills"
	"github.com/jonathan/career-compass/internal/types"
)

func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	var req types.SkillGapRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	_, requirements, err := s.requirementsFor(&req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	gap, err := skills.AnalyzeSkillGap(requirements, req.Skills)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, gap)
}

// handlePrioritizeGaps accepts an optional ?priority= filter
func (s *Server) handlePrioritizeGaps(w http.ResponseWriter, r *http.Request) {
	priority := r.URL.Query().Get("priority")
	switch priority {
	case "", types.PriorityEssential, types.PriorityRecommended, types.PriorityNiceToHave:
	default:
		s.writeError(w, r, &ErrValidation{Field: "priority", Message: "unknown priority " + priority})
		return
	}

	var req types.SkillGapRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	_, requirements, err := s.requirementsFor(&req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	gaps, err := skills.PrioritizeGaps(requirements, req.Skills)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.PrioritizedGaps{Gaps: skills.FilterByPriority(gaps, priority)})
}

func (s *Server) handleSuggestSkills(w http.ResponseWriter, r *http.Request) {
	var req types.SuggestSkillsRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	suggestions := skills.SuggestRelatedSkills(req.Skills, s.catalog.RelatedSkills)
	if suggestions == nil {
		suggestions = []string{}
	}
	s.jsonResponse(w, http.StatusOK, types.SkillSuggestions{Suggestions: suggestions})
}

func (s *Server) handleMatchMentors(w http.ResponseWriter, r *http.Request) {
	var req types.MentorMatchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	needs := types.RoleNeeds{
		JobTitle:       req.JobTitle,
		RequiredSkills: req.RequiredSkills,
		SoftSkills:     req.SoftSkills,
	}
	matches := ranking.MatchMentors(needs, req.Interests, s.catalog.Mentors)
	if matches == nil {
		matches = []types.MentorMatch{}
	}
	s.jsonResponse(w, http.StatusOK, types.MentorMatches{JobTitle: req.JobTitle, Matches: matches})
}

func (s *Server) buildRoadmap(w http.ResponseWriter, r *http.Request) (*types.LearningPath, bool) {
	var req types.RoadmapRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return nil, false
	}

	return roadmap.Build(roadmap.Input{
		JobTitle:       req.JobTitle,
		RequiredSkills: req.RequiredSkills,
		CurrentSkills:  req.CurrentSkills,
		StartedAt:      s.now(),
	}, s.catalog), true
}

// handleBuildRoadmap builds a path without saving it
func (s *Server) handleBuildRoadmap(w http.ResponseWriter, r *http.Request) {
	path, ok := s.buildRoadmap(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, path)
}

func (s *Server) handleRenderResume(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeExportRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	tex, err := rendering.RenderResumeLaTeX(req.Resume, req.Guide, s.templatePath)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-tex; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.tex"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(tex))
}

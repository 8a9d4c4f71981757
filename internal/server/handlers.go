package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

const defaultTopK = 10

// handleMatch computes (or returns the cached) match score for one profile
// and one job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	profileID, err := parseUUID(r.PathValue("profile_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile_id")
		return
	}
	jobID, err := parseUUID(r.PathValue("job_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job_id")
		return
	}

	score, err := s.engine.Match(r.Context(), profileID, jobID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score)
}

// handleTopMatches ranks the job catalog for a profile. The top_k query
// parameter limits the result count (default 10).
func (s *Server) handleTopMatches(w http.ResponseWriter, r *http.Request) {
	profileID, err := parseUUID(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	topK := defaultTopK
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "top_k must be a positive integer")
			return
		}
		topK = parsed
	}

	ranked, err := s.engine.TopMatches(r.Context(), profileID, topK)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"profile_id": profileID,
		"matches":    ranked,
	})
}

// handleUpsertProfile creates or replaces a candidate profile.
func (s *Server) handleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	var profile profilePayload
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	record := profile.toProfile(id)

	if err := s.engine.UpsertProfile(r.Context(), record); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleUpsertJob creates or replaces a job posting.
func (s *Server) handleUpsertJob(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var job jobPayload
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	record := job.toJob(id)

	if err := s.engine.UpsertJob(r.Context(), record); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

func parseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID %q: %w", raw, err)
	}
	return id, nil
}

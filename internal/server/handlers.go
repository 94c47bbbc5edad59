package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/orgball2608/x-media-resolver/internal/domain"
	"github.com/orgball2608/x-media-resolver/internal/probe"
	"github.com/orgball2608/x-media-resolver/pkg/errors"
)

// maxRequestBytes bounds the resolve request body; a URL never needs more.
const maxRequestBytes = 16 << 10

type ResolveRequest struct {
	URL string `json:"url"`
}

type ResolveResponse struct {
	Success  bool                `json:"success"`
	Data     []domain.MediaAsset `json:"data"`
	Author   string              `json:"author"`
	Username string              `json:"username"`
	Text     string              `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewResolveResponse(r *domain.ResolutionResult) ResolveResponse {
	data := r.Media
	if data == nil {
		data = []domain.MediaAsset{}
	}
	return ResolveResponse{
		Success:  true,
		Data:     data,
		Author:   r.Author,
		Username: r.Username,
		Text:     r.Text,
	}
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed."})
		return
	}

	var req ResolveRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		s.logger.Warn("Malformed resolve request", "error", err)
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid URL. Please enter a valid X or Twitter link."})
		return
	}

	result, err := s.resolver.Resolve(r.Context(), req.URL)
	if err != nil {
		status := errors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("Resolve failed", "url", req.URL, "error", err)
		}
		s.writeJSON(w, status, ErrorResponse{Error: errors.GetMessage(err)})
		return
	}

	s.writeJSON(w, http.StatusOK, NewResolveResponse(result))
}

type healthResponse struct {
	Status    string     `json:"status"`
	Upstream  string     `json:"upstream"`
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Upstream: string(probe.StateUnknown)}
	if s.probe != nil {
		state, checkedAt := s.probe.Upstream()
		resp.Upstream = string(state)
		if !checkedAt.IsZero() {
			resp.CheckedAt = &checkedAt
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}

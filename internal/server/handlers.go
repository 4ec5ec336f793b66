package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/services"
	"github.com/aref-vc/youtube-content-analyzer/internal/youtube"
)

// HealthResponse is the /healthz payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// AnalyzeChannelRequest is the POST /api/channel/analyze payload.
type AnalyzeChannelRequest struct {
	Channel       string `json:"channel"` // @handle or channel ID
	MaxVideos     int    `json:"max_videos,omitempty"`
	Deep          bool   `json:"deep,omitempty"`
	WithSentiment bool   `json:"with_sentiment,omitempty"`
	SkipCache     bool   `json:"skip_cache,omitempty"`
}

// AnalyzeVideoRequest is the POST /api/video/analyze payload.
type AnalyzeVideoRequest struct {
	Video         string `json:"video"` // URL or 11-character ID
	Deep          bool   `json:"deep,omitempty"`
	WithSentiment bool   `json:"with_sentiment,omitempty"`
}

// DetectPatternsRequest is the POST /api/patterns/detect payload.
type DetectPatternsRequest struct {
	Title string `json:"title"`
	Deep  bool   `json:"deep,omitempty"`
}

// SearchRequest is the POST /api/search payload.
type SearchRequest struct {
	Query         string `json:"query"`
	MaxVideos     int    `json:"max_videos,omitempty"`
	Deep          bool   `json:"deep,omitempty"`
	WithSentiment bool   `json:"with_sentiment,omitempty"`
	SkipCache     bool   `json:"skip_cache,omitempty"`
}

// BatchResponse wraps a report with cache provenance.
type BatchResponse struct {
	Cached bool              `json:"cached"`
	Report *core.BatchReport `json:"report"`
}

// ErrorResponse is the error payload for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleAnalyzeChannel(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeChannelRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Channel) == "" {
		s.respondError(w, http.StatusBadRequest, "channel is required")
		return
	}

	report, cached, err := s.service.AnalyzeChannel(r.Context(), req.Channel, s.options(req.MaxVideos, req.Deep, req.WithSentiment, req.SkipCache))
	if err != nil {
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, BatchResponse{Cached: cached, Report: report})
}

func (s *Server) handleAnalyzeVideo(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeVideoRequest
	if !s.decode(w, r, &req) {
		return
	}

	videoID, err := youtube.ExtractVideoID(req.Video)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := s.service.AnalyzeVideo(r.Context(), videoID, s.options(0, req.Deep, req.WithSentiment, false))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, core.ErrEmptyTitle) {
			status = http.StatusUnprocessableEntity
		}
		s.respondError(w, status, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleDetectPatterns(w http.ResponseWriter, r *http.Request) {
	var req DetectPatternsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		s.respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	analysis, err := s.service.DetectPatterns(req.Title, req.Deep)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	report, cached, err := s.service.AnalyzeTopic(r.Context(), req.Query, s.options(req.MaxVideos, req.Deep, req.WithSentiment, req.SkipCache))
	if err != nil {
		s.respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, BatchResponse{Cached: cached, Report: report})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.cache.GetCacheStats()
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	if err := s.cache.ClearCache(); err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// options merges request knobs with the configured defaults.
func (s *Server) options(maxVideos int, deep, withSentiment, skipCache bool) services.Options {
	if maxVideos <= 0 {
		maxVideos = s.defaults.MaxVideos
	}
	return services.Options{
		MaxVideos:     maxVideos,
		Deep:          deep || s.defaults.Deep,
		WithSentiment: withSentiment || s.defaults.CommentSentiment,
		MaxComments:   50,
		Concurrency:   s.defaults.MaxConcurrency,
		SkipCache:     skipCache,
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("Failed to encode JSON response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, ErrorResponse{Error: message})
}

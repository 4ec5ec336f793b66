package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aref-vc/youtube-content-analyzer/internal/config"
	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/services"
)

func newTestServer() *Server {
	svc := services.NewAnalysisService(nil, nil, nil, 0)
	cfg := config.Server{
		Host:           "127.0.0.1",
		Port:           8200,
		ReadTimeout:    "10s",
		WriteTimeout:   "60s",
		RequestTimeout: "120s",
	}
	defaults := config.Analysis{MaxVideos: 25, MaxConcurrency: 5}
	return New(svc, nil, cfg, defaults)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
}

func TestDetectPatterns(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/patterns/detect",
		`{"title":"7 Morning Habits That Changed My Life"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var analysis core.VideoAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if analysis.Title.EffectivenessScore != 49 {
		t.Errorf("effectiveness score = %d, want 49", analysis.Title.EffectivenessScore)
	}
	if len(analysis.Title.Patterns) != 2 {
		t.Errorf("patterns = %v, want two tags", analysis.Title.Patterns)
	}
	if analysis.Hook != nil {
		t.Error("hook analysis must be absent without the deep flag")
	}
}

func TestDetectPatterns_DeepIncludesHook(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/patterns/detect",
		`{"title":"7 Morning Habits That Changed My Life","deep":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var analysis core.VideoAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if analysis.Hook == nil {
		t.Error("deep request must include a hook analysis")
	}
}

func TestDetectPatterns_BlankTitle(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/patterns/detect", `{"title":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDetectPatterns_InvalidJSON(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/patterns/detect", `{"title":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeChannel_MissingField(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/channel/analyze", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeChannel_NoProvider(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/channel/analyze", `{"channel":"@someone"}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502 when no provider is configured", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Error, "API key") {
		t.Errorf("error = %q, want an API key hint", resp.Error)
	}
}

func TestAnalyzeVideo_BadID(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/video/analyze", `{"video":"not a video"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an unparseable video reference", rec.Code)
	}
}

func TestSearch_MissingQuery(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodPost, "/api/search", `{"query":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCacheEndpoints_AbsentWithoutStore(t *testing.T) {
	srv := newTestServer()
	rec := doJSON(t, srv, http.MethodGet, "/api/cache/stats", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when caching is disabled", rec.Code)
	}
}

func TestParseDuration(t *testing.T) {
	if got := parseDuration("5s", 0); got.Seconds() != 5 {
		t.Errorf("parseDuration(5s) = %v", got)
	}
	if got := parseDuration("", 7); got != 7 {
		t.Errorf("parseDuration(empty) = %v, want fallback", got)
	}
	if got := parseDuration("bogus", 7); got != 7 {
		t.Errorf("parseDuration(bogus) = %v, want fallback", got)
	}
}

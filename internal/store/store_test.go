package store

import (
	"testing"
	"time"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testReport(id string, generatedAt time.Time) *core.BatchReport {
	return &core.BatchReport{
		ID:             id,
		Query:          "quantum",
		VideosAnalyzed: 2,
		GeneratedAt:    generatedAt,
	}
}

func TestCacheReport_Roundtrip(t *testing.T) {
	s := newTestStore(t)
	fp := Fingerprint("topic", "quantum", 25, false, false)

	if err := s.CacheReport(fp, "topic", "quantum", testReport("r1", time.Now().UTC())); err != nil {
		t.Fatalf("CacheReport: %v", err)
	}

	got, err := s.GetCachedReport(fp, time.Hour)
	if err != nil {
		t.Fatalf("GetCachedReport: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cache hit")
	}
	if got.ID != "r1" || got.Query != "quantum" || got.VideosAnalyzed != 2 {
		t.Errorf("cached report = %+v", got)
	}
}

func TestGetCachedReport_MissReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetCachedReport(Fingerprint("topic", "unseen", 25, false, false), time.Hour)
	if err != nil {
		t.Fatalf("GetCachedReport: %v", err)
	}
	if got != nil {
		t.Errorf("expected a miss, got %+v", got)
	}
}

func TestGetCachedReport_ExpiredEntry(t *testing.T) {
	s := newTestStore(t)
	fp := Fingerprint("channel", "@old", 25, false, false)

	stale := testReport("r-old", time.Now().UTC().Add(-2*time.Hour))
	if err := s.CacheReport(fp, "channel", "@old", stale); err != nil {
		t.Fatalf("CacheReport: %v", err)
	}

	got, err := s.GetCachedReport(fp, time.Hour)
	if err != nil {
		t.Fatalf("GetCachedReport: %v", err)
	}
	if got != nil {
		t.Errorf("entry older than maxAge must miss, got %+v", got)
	}
}

func TestCacheReport_ReplacesExisting(t *testing.T) {
	s := newTestStore(t)
	fp := Fingerprint("topic", "go", 25, false, false)

	if err := s.CacheReport(fp, "topic", "go", testReport("r1", time.Now().UTC())); err != nil {
		t.Fatalf("CacheReport: %v", err)
	}
	if err := s.CacheReport(fp, "topic", "go", testReport("r2", time.Now().UTC())); err != nil {
		t.Fatalf("CacheReport (replace): %v", err)
	}

	got, err := s.GetCachedReport(fp, time.Hour)
	if err != nil {
		t.Fatalf("GetCachedReport: %v", err)
	}
	if got == nil || got.ID != "r2" {
		t.Errorf("cached report = %+v, want the replacement", got)
	}

	stats, err := s.GetCacheStats()
	if err != nil {
		t.Fatalf("GetCacheStats: %v", err)
	}
	if stats.ReportCount != 1 {
		t.Errorf("report count = %d, want 1 after replacement", stats.ReportCount)
	}
}

func TestFingerprint_DistinguishesRequests(t *testing.T) {
	base := Fingerprint("topic", "go", 25, false, false)

	variants := []string{
		Fingerprint("channel", "go", 25, false, false),
		Fingerprint("topic", "rust", 25, false, false),
		Fingerprint("topic", "go", 10, false, false),
		Fingerprint("topic", "go", 25, true, false),
		Fingerprint("topic", "go", 25, false, true),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collides with the base fingerprint", i)
		}
	}
	if Fingerprint("topic", "go", 25, false, false) != base {
		t.Error("identical requests must produce identical fingerprints")
	}
}

func TestClearCache(t *testing.T) {
	s := newTestStore(t)
	fp := Fingerprint("topic", "go", 25, false, false)
	if err := s.CacheReport(fp, "topic", "go", testReport("r1", time.Now().UTC())); err != nil {
		t.Fatalf("CacheReport: %v", err)
	}

	if err := s.ClearCache(); err != nil {
		t.Fatalf("ClearCache: %v", err)
	}

	stats, err := s.GetCacheStats()
	if err != nil {
		t.Fatalf("GetCacheStats: %v", err)
	}
	if stats.ReportCount != 0 {
		t.Errorf("report count = %d after clear, want 0", stats.ReportCount)
	}
}

func TestCleanupOldCache(t *testing.T) {
	s := newTestStore(t)
	oldFp := Fingerprint("topic", "old", 25, false, false)
	newFp := Fingerprint("topic", "new", 25, false, false)

	if err := s.CacheReport(oldFp, "topic", "old", testReport("r-old", time.Now().UTC().Add(-48*time.Hour))); err != nil {
		t.Fatalf("CacheReport: %v", err)
	}
	if err := s.CacheReport(newFp, "topic", "new", testReport("r-new", time.Now().UTC())); err != nil {
		t.Fatalf("CacheReport: %v", err)
	}

	if err := s.CleanupOldCache(24 * time.Hour); err != nil {
		t.Fatalf("CleanupOldCache: %v", err)
	}

	stats, err := s.GetCacheStats()
	if err != nil {
		t.Fatalf("GetCacheStats: %v", err)
	}
	if stats.ReportCount != 1 {
		t.Errorf("report count = %d after cleanup, want 1", stats.ReportCount)
	}
	if got, _ := s.GetCachedReport(newFp, time.Hour); got == nil {
		t.Error("recent entry must survive cleanup")
	}
}

package youtube

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
)

const webUserAgent = "Mozilla/5.0 (compatible; ytca/1.0)"

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractVideoID pulls the 11-character video ID out of the common YouTube
// URL shapes, or accepts a bare ID.
func ExtractVideoID(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	for _, re := range videoIDPatterns {
		if matches := re.FindStringSubmatch(trimmed); len(matches) > 1 {
			return matches[1], nil
		}
	}
	return "", fmt.Errorf("could not extract video ID from %q", input)
}

// WebFetcher scrapes video metadata from the public watch page. It covers
// keyless single-video analysis; the record it produces carries no like or
// comment counts.
type WebFetcher struct {
	httpClient *http.Client
}

// NewWebFetcher creates a watch-page fetcher.
func NewWebFetcher(timeout time.Duration) *WebFetcher {
	return &WebFetcher{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchVideo downloads the watch page for a video ID and extracts its
// metadata from the embedded microdata and OpenGraph tags.
func (w *WebFetcher) FetchVideo(ctx context.Context, videoID string) (core.VideoRecord, error) {
	url := fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return core.VideoRecord{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", webUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return core.VideoRecord{}, fmt.Errorf("failed to fetch watch page for %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.VideoRecord{}, fmt.Errorf("watch page for %s returned status %d", videoID, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return core.VideoRecord{}, fmt.Errorf("failed to parse watch page for %s: %w", videoID, err)
	}

	rec := core.VideoRecord{ID: videoID}

	rec.Title, _ = doc.Find("meta[property='og:title']").Attr("content")
	rec.Description, _ = doc.Find("meta[property='og:description']").Attr("content")
	rec.ChannelName = doc.Find("span[itemprop='author'] link[itemprop='name']").AttrOr("content", "")

	if views, ok := doc.Find("meta[itemprop='interactionCount']").Attr("content"); ok {
		if n, err := strconv.ParseInt(views, 10, 64); err == nil {
			rec.ViewCount = n
		}
	}

	if iso, ok := doc.Find("meta[itemprop='duration']").Attr("content"); ok {
		if secs := parseISO8601Seconds(iso); secs > 0 {
			rec.Duration = &secs
		}
	}

	if published, ok := doc.Find("meta[itemprop='datePublished']").Attr("content"); ok {
		if ts, err := parseWatchPageDate(published); err == nil {
			rec.PublishedAt = &ts
		}
	}

	if rec.Title == "" {
		return core.VideoRecord{}, fmt.Errorf("watch page for %s carried no metadata (video private or removed?)", videoID)
	}

	return rec, nil
}

// parseWatchPageDate handles both the date-only and full RFC 3339 forms the
// watch page has used for datePublished.
func parseWatchPageDate(value string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", value)
}

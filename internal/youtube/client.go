// Package youtube fetches video and channel metadata. The primary path is the
// Data API v3 behind an API key; web.go provides a keyless watch-page
// fallback for single videos.
package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/aref-vc/youtube-content-analyzer/internal/core"
	"github.com/aref-vc/youtube-content-analyzer/internal/sentiment"
)

const detailsBatchSize = 50

// Client wraps the Data API service.
type Client struct {
	service *yt.Service
	region  string
}

// NewClient creates an API-key authenticated client. region is the code
// passed to search requests; empty means no region filter.
func NewClient(ctx context.Context, apiKey, region string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: API key is required")
	}
	service, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service, region: region}, nil
}

// ResolveChannel looks up a channel by @handle or channel ID and returns its
// info plus the uploads playlist ID used to list its videos.
func (c *Client) ResolveChannel(ctx context.Context, handleOrID string) (*core.ChannelInfo, string, error) {
	call := c.service.Channels.List([]string{"snippet", "statistics", "contentDetails"}).Context(ctx)
	if strings.HasPrefix(handleOrID, "@") {
		call = call.ForHandle(handleOrID)
	} else {
		call = call.Id(handleOrID)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up channel %q: %w", handleOrID, err)
	}
	if len(resp.Items) == 0 {
		return nil, "", fmt.Errorf("channel not found: %s", handleOrID)
	}

	ch := resp.Items[0]
	info := &core.ChannelInfo{
		ID:   ch.Id,
		Name: ch.Snippet.Title,
		URL:  fmt.Sprintf("https://www.youtube.com/channel/%s", ch.Id),
	}
	if ch.Statistics != nil {
		if !ch.Statistics.HiddenSubscriberCount {
			info.SubscriberCount = int64(ch.Statistics.SubscriberCount)
		}
		info.VideoCount = int64(ch.Statistics.VideoCount)
	}

	var uploads string
	if ch.ContentDetails != nil && ch.ContentDetails.RelatedPlaylists != nil {
		uploads = ch.ContentDetails.RelatedPlaylists.Uploads
	}
	if uploads == "" {
		return nil, "", fmt.Errorf("channel %s has no uploads playlist", handleOrID)
	}

	return info, uploads, nil
}

// ChannelVideos returns up to maxVideos records from the channel's uploads
// playlist, newest first.
func (c *Client) ChannelVideos(ctx context.Context, uploadsPlaylistID string, maxVideos int) ([]core.VideoRecord, error) {
	var ids []string
	pageToken := ""
	for len(ids) < maxVideos {
		call := c.service.PlaylistItems.List([]string{"snippet"}).
			Context(ctx).
			PlaylistId(uploadsPlaylistID).
			MaxResults(int64(min(detailsBatchSize, maxVideos-len(ids))))
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list uploads: %w", err)
		}
		for _, item := range resp.Items {
			if item.Snippet != nil && item.Snippet.ResourceId != nil {
				ids = append(ids, item.Snippet.ResourceId.VideoId)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" || len(resp.Items) == 0 {
			break
		}
	}

	return c.VideoDetails(ctx, ids)
}

// SearchVideos returns up to maxVideos records matching the query, ordered by
// relevance.
func (c *Client) SearchVideos(ctx context.Context, query string, maxVideos int) ([]core.VideoRecord, error) {
	var ids []string
	pageToken := ""
	for len(ids) < maxVideos {
		call := c.service.Search.List([]string{"id"}).
			Context(ctx).
			Q(query).
			Type("video").
			MaxResults(int64(min(detailsBatchSize, maxVideos-len(ids))))
		if c.region != "" {
			call = call.RegionCode(c.region)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to search videos for %q: %w", query, err)
		}
		for _, item := range resp.Items {
			if item.Id != nil && item.Id.VideoId != "" {
				ids = append(ids, item.Id.VideoId)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" || len(resp.Items) == 0 {
			break
		}
	}

	return c.VideoDetails(ctx, ids)
}

// VideoDetails fetches full records for the given IDs, batching requests at
// the API's 50-ID limit. IDs the API does not return are silently dropped.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]core.VideoRecord, error) {
	var records []core.VideoRecord

	for i := 0; i < len(ids); i += detailsBatchSize {
		end := i + detailsBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		resp, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
			Context(ctx).
			Id(strings.Join(ids[i:end], ",")).
			Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get video details: %w", err)
		}

		for _, item := range resp.Items {
			records = append(records, recordFromAPI(item))
		}
	}

	return records, nil
}

// TopComments fetches up to maxComments relevance-ordered top-level comments.
// Videos with comments disabled return an error; callers treat that as
// sentiment being unavailable.
func (c *Client) TopComments(ctx context.Context, videoID string, maxComments int) ([]sentiment.Comment, error) {
	if maxComments <= 0 {
		return nil, nil
	}

	resp, err := c.service.CommentThreads.List([]string{"snippet"}).
		Context(ctx).
		VideoId(videoID).
		Order("relevance").
		TextFormat("plainText").
		MaxResults(int64(min(100, maxComments))).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for %s: %w", videoID, err)
	}

	var comments []sentiment.Comment
	for _, thread := range resp.Items {
		top := thread.Snippet.TopLevelComment
		if top == nil || top.Snippet == nil {
			continue
		}
		comments = append(comments, sentiment.Comment{
			Text:      top.Snippet.TextDisplay,
			Author:    top.Snippet.AuthorDisplayName,
			LikeCount: top.Snippet.LikeCount,
		})
	}

	return comments, nil
}

// recordFromAPI maps one API video resource onto a record. Statistics the API
// withholds stay nil rather than zero.
func recordFromAPI(item *yt.Video) core.VideoRecord {
	rec := core.VideoRecord{
		ID: item.Id,
	}

	if item.Snippet != nil {
		rec.Title = item.Snippet.Title
		rec.Description = item.Snippet.Description
		rec.ChannelName = item.Snippet.ChannelTitle
		if ts, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			rec.PublishedAt = &ts
		}
	}

	if item.Statistics != nil {
		rec.ViewCount = int64(item.Statistics.ViewCount)
		if item.Statistics.LikeCount > 0 || contains(item.Statistics.ForceSendFields, "LikeCount") {
			likes := int64(item.Statistics.LikeCount)
			rec.LikeCount = &likes
		}
		if item.Statistics.CommentCount > 0 || contains(item.Statistics.ForceSendFields, "CommentCount") {
			comments := int64(item.Statistics.CommentCount)
			rec.CommentCount = &comments
		}
	}

	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		if secs := parseISO8601Seconds(item.ContentDetails.Duration); secs > 0 {
			rec.Duration = &secs
		}
	}

	return rec
}

var iso8601Re = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// parseISO8601Seconds converts the API's ISO 8601 duration (e.g. "PT2H15M30S")
// to seconds. Malformed input yields 0.
func parseISO8601Seconds(duration string) int64 {
	matches := iso8601Re.FindStringSubmatch(duration)
	if len(matches) == 0 {
		return 0
	}

	var total int64
	if matches[1] != "" {
		if hours, err := strconv.ParseInt(matches[1], 10, 64); err == nil {
			total += hours * 3600
		}
	}
	if matches[2] != "" {
		if minutes, err := strconv.ParseInt(matches[2], 10, 64); err == nil {
			total += minutes * 60
		}
	}
	if matches[3] != "" {
		if seconds, err := strconv.ParseInt(matches[3], 10, 64); err == nil {
			total += seconds
		}
	}
	return total
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

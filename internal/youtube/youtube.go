// Package youtube fetches video metadata from the YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"
	"time"

	"github.com/luckman212/ytx/internal/video"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const requestTimeout = 5 * time.Second

var parts = []string{"snippet", "contentDetails", "statistics"}

// Client wraps the Data API service. One lookup per video id, no
// retries; every failure class is reported as a plain error that the
// caller absorbs.
type Client struct {
	svc *yt.Service
}

// NewClient builds an API client around the given key. Extra options
// are applied after the key, which lets tests redirect the endpoint.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	svc, err := yt.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// Metadata looks up one video id, bounded by a 5 second deadline.
func (c *Client) Metadata(ctx context.Context, videoID string) (video.Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.svc.Videos.List(parts).Id(videoID).Context(ctx).Do()
	if err != nil {
		return video.Metadata{}, fmt.Errorf("videos.list %s: %w", videoID, err)
	}
	if len(resp.Items) == 0 {
		return video.Metadata{}, fmt.Errorf("invalid video id: %s", videoID)
	}

	item := resp.Items[0]
	md := video.Metadata{ID: item.Id}

	if item.Snippet != nil {
		md.Title = item.Snippet.Title
		md.Channel = item.Snippet.ChannelTitle
		if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			md.PostDate = t.UTC().Format("2006-01-02")
		}
	}
	if item.Statistics != nil {
		md.ViewCount = int64(item.Statistics.ViewCount)
	}
	if item.ContentDetails != nil {
		md.DurationSeconds = video.ParseISODuration(item.ContentDetails.Duration)
	}

	return md, nil
}

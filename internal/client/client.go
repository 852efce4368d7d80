// Package client is the HTTP consumer of the server's /api/now endpoint,
// used by the watch TUI.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/edkf/album-visualizer/internal/track"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) NowPlaying(ctx context.Context) (track.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/now", nil)
	if err != nil {
		return track.Snapshot{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "album-visualizer/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return track.Snapshot{}, fmt.Errorf("now playing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return track.Snapshot{}, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	var snap track.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return track.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

package artwork

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultLastfmEndpoint = "https://ws.audioscrobbler.com/2.0/"

// Last.fm returns a list of image sizes per album; try the biggest first.
var lastfmSizePreference = []string{"extralarge", "mega", "large", "medium"}

// Lastfm looks up cover art through the Last.fm track.getInfo method. It
// only works with an API key; callers skip constructing it entirely when no
// key is configured.
type Lastfm struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewLastfm(apiKey string) *Lastfm {
	return &Lastfm{
		apiKey:   apiKey,
		endpoint: defaultLastfmEndpoint,
		client:   getProviderClient(),
	}
}

func (p *Lastfm) Name() string { return "lastfm" }

type lastfmImage struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

type lastfmTrackInfo struct {
	Track struct {
		Album struct {
			Image []lastfmImage `json:"image"`
		} `json:"album"`
		Image []lastfmImage `json:"image"`
	} `json:"track"`
}

func (p *Lastfm) Lookup(ctx context.Context, artist string, title string, album string) (Ref, error) {
	if artist == "" || title == "" {
		return Ref{}, nil
	}

	params := url.Values{}
	params.Set("method", "track.getInfo")
	params.Set("api_key", p.apiKey)
	params.Set("artist", artist)
	params.Set("track", title)
	params.Set("format", "json")
	params.Set("autocorrect", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Ref{}, fmt.Errorf("failed to build last.fm request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return Ref{}, fmt.Errorf("last.fm request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Ref{}, fmt.Errorf("last.fm returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Ref{}, fmt.Errorf("failed to read last.fm response: %w", err)
	}

	var payload lastfmTrackInfo
	if err := json.Unmarshal(body, &payload); err != nil {
		return Ref{}, fmt.Errorf("failed to decode last.fm json: %w", err)
	}

	images := payload.Track.Album.Image
	if len(images) == 0 {
		images = payload.Track.Image
	}

	return Ref{URL: pickLastfmImage(images)}, nil
}

func pickLastfmImage(images []lastfmImage) string {
	for _, size := range lastfmSizePreference {
		for _, img := range images {
			if img.Size == size && img.URL != "" {
				return img.URL
			}
		}
	}
	// fall back to the first entry that has a url at all
	for _, img := range images {
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}

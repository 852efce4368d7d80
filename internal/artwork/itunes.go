package artwork

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const defaultITunesEndpoint = "https://itunes.apple.com/search"

// The iTunes Search API hands back 100x100 thumbnails, but Apple's image CDN
// serves any size named in the final path segment.
var itunesSizeSuffix = regexp.MustCompile(`(\d+)x(\d+)bb(\.(?:jpg|jpeg|png))$`)

// UpgradeITunesURL rewrites a thumbnail URL to request a larger size. The
// standard 100x100 thumbnail goes straight to the largest known size; other
// small sizes go to a conservative 600x600. Strictly an upgrade: URLs already
// at or above the target, and unknown URL shapes, come back as-is.
func UpgradeITunesURL(raw string) string {
	match := itunesSizeSuffix.FindStringSubmatch(raw)
	if match == nil {
		return raw
	}
	size, err := strconv.Atoi(match[1])
	if err != nil {
		return raw
	}

	switch {
	case size == 100:
		return itunesSizeSuffix.ReplaceAllString(raw, "2000x2000bb$3")
	case size < 600:
		return itunesSizeSuffix.ReplaceAllString(raw, "600x600bb$3")
	default:
		return raw
	}
}

// ITunes looks up cover art through the iTunes Search API. No key required.
type ITunes struct {
	endpoint string
	client   *http.Client
}

func NewITunes() *ITunes {
	return &ITunes{
		endpoint: defaultITunesEndpoint,
		client:   getProviderClient(),
	}
}

func (p *ITunes) Name() string { return "itunes" }

type itunesSearchResult struct {
	Results []struct {
		ArtworkURL100 string `json:"artworkUrl100"`
	} `json:"results"`
}

func (p *ITunes) Lookup(ctx context.Context, artist string, title string, album string) (Ref, error) {
	// album match first, then the looser song match
	if album != "" {
		ref, err := p.search(ctx, artist+" "+album, "album")
		if err != nil {
			return Ref{}, err
		}
		if !ref.IsZero() {
			return ref, nil
		}
	}

	if title == "" && artist == "" {
		return Ref{}, nil
	}
	return p.search(ctx, strings.TrimSpace(artist+" "+title), "song")
}

func (p *ITunes) search(ctx context.Context, term string, entity string) (Ref, error) {
	params := url.Values{}
	params.Set("term", term)
	params.Set("entity", entity)
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Ref{}, fmt.Errorf("failed to build itunes request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return Ref{}, fmt.Errorf("itunes request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Ref{}, fmt.Errorf("itunes returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Ref{}, fmt.Errorf("failed to read itunes response: %w", err)
	}

	var payload itunesSearchResult
	if err := json.Unmarshal(body, &payload); err != nil {
		return Ref{}, fmt.Errorf("failed to decode itunes json: %w", err)
	}

	for _, result := range payload.Results {
		if result.ArtworkURL100 != "" {
			return Ref{URL: UpgradeITunesURL(result.ArtworkURL100)}, nil
		}
	}
	return Ref{}, nil
}

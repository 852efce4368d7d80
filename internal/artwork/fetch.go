package artwork

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"strings"

	"github.com/edkf/album-visualizer/internal/config"
)

// FetchImage decodes the image behind a cover string as produced by
// Ref.Encode: a data URI, a file:// path, or a remote URL.
func FetchImage(ctx context.Context, cover string) (image.Image, error) {
	if cover == "" {
		return nil, errors.New("empty cover reference")
	}

	if strings.HasPrefix(cover, "data:") {
		return decodeDataURI(cover)
	}

	if strings.HasPrefix(cover, "file://") {
		path := strings.TrimPrefix(cover, "file://")
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open artwork file: %w", err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode artwork file: %w", err)
		}
		return img, nil
	}

	ctx, cancel := context.WithTimeout(ctx, config.ArtworkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cover, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build artwork request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := getProviderClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artwork: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("artwork fetch returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}
	return img, nil
}

func decodeDataURI(uri string) (image.Image, error) {
	_, payload, found := strings.Cut(uri, ";base64,")
	if !found {
		return nil, errors.New("unsupported data uri encoding")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data uri payload: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode inline artwork: %w", err)
	}
	return img, nil
}

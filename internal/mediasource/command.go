package mediasource

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/edkf/album-visualizer/internal/track"
)

// CommandSource invokes an external media-detection command once per call
// and parses its JSON output. The command is opaque: anything that prints
// {title, artist, album, bundleIdentifier?, artworkData?} works.
type CommandSource struct {
	argv []string
}

func NewCommandSource(command string) (*CommandSource, error) {
	argv := strings.Fields(command)
	if len(argv) == 0 {
		return nil, errors.New("empty media command")
	}
	return &CommandSource{argv: argv}, nil
}

type commandPayload struct {
	Title             string `json:"title"`
	Artist            string `json:"artist"`
	Album             string `json:"album"`
	BundleIdentifier  string `json:"bundleIdentifier"`
	ArtworkData       string `json:"artworkData"`
	ArtworkMimeType   string `json:"artworkMimeType"`
	DurationMicros    int64  `json:"durationMicros"`
	ElapsedTimeMicros int64  `json:"elapsedTimeMicros"`
}

func (s *CommandSource) Current(ctx context.Context) (*track.Info, error) {
	cmd := exec.CommandContext(ctx, s.argv[0], s.argv[1:]...)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("media command failed: %w", err)
	}

	return parseCommandOutput(out)
}

func parseCommandOutput(out []byte) (*track.Info, error) {
	raw := strings.TrimSpace(string(out))
	if raw == "" {
		return nil, nil
	}

	var payload commandPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("media command output is not json: %w", err)
	}

	info := &track.Info{
		Title:       strings.TrimSpace(payload.Title),
		Artist:      strings.TrimSpace(payload.Artist),
		Album:       strings.TrimSpace(payload.Album),
		Player:      payload.BundleIdentifier,
		ArtworkMime: payload.ArtworkMimeType,
	}
	if payload.ElapsedTimeMicros > 0 {
		info.Position = time.Duration(payload.ElapsedTimeMicros) * time.Microsecond
	}
	if payload.DurationMicros > 0 {
		info.Length = time.Duration(payload.DurationMicros) * time.Microsecond
	}
	if !info.IsValid() {
		return nil, nil
	}

	if payload.ArtworkData != "" {
		// some emitters wrap the payload in a data uri; keep only the base64
		data := payload.ArtworkData
		if idx := strings.Index(data, ";base64,"); idx >= 0 {
			data = data[idx+len(";base64,"):]
		}
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err == nil {
			info.ArtworkData = decoded
		}
	}

	return info, nil
}

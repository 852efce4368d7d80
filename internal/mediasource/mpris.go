package mediasource

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/edkf/album-visualizer/internal/track"
)

const (
	mprisPrefix      = "org.mpris.MediaPlayer2."
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
)

// playerPreference orders competing players: browser tabs usually carry the
// richer metadata, so they beat native clients. Unknown players go last in
// bus order.
var playerPreference = []string{"chromium", "chrome", "google-chrome", "brave", "vivaldi", "firefox", "spotify"}

// MPRISSource reads the currently playing track straight off the session
// bus, without shelling out to playerctl.
type MPRISSource struct {
	bus *dbus.Conn
}

func NewMPRISSource(bus *dbus.Conn) (*MPRISSource, error) {
	if bus == nil {
		return nil, errors.New("nil dbus connection")
	}
	return &MPRISSource{bus: bus}, nil
}

func (s *MPRISSource) Current(ctx context.Context) (*track.Info, error) {
	names, err := s.listPlayers()
	if err != nil {
		return nil, err
	}

	for _, name := range orderPlayers(names) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		obj := s.bus.Object(name, mprisPath)

		status, err := obj.GetProperty(mprisPlayerIface + ".PlaybackStatus")
		if err != nil {
			continue
		}
		if text, ok := status.Value().(string); !ok || text != "Playing" {
			continue
		}

		prop, err := obj.GetProperty(mprisPlayerIface + ".Metadata")
		if err != nil {
			continue
		}
		metadata, ok := prop.Value().(map[string]dbus.Variant)
		if !ok {
			continue
		}

		info := &track.Info{
			Title:      extractString(metadata, "xesam:title"),
			Artist:     extractArtist(metadata, "xesam:artist"),
			Album:      extractString(metadata, "xesam:album"),
			ArtworkURL: extractString(metadata, "mpris:artUrl"),
			Player:     strings.TrimPrefix(name, mprisPrefix),
			Length:     extractMicros(metadata, "mpris:length"),
		}
		if !info.IsValid() {
			continue
		}

		// position lives on the player object, not in the metadata map
		if pos, err := obj.GetProperty(mprisPlayerIface + ".Position"); err == nil {
			info.Position = microsToDuration(pos.Value())
		}

		// players sometimes advertise art files they have already deleted;
		// a dead local path falls through to the remote providers
		if path, found := strings.CutPrefix(info.ArtworkURL, "file://"); found {
			if _, err := os.Stat(path); err != nil {
				info.ArtworkURL = ""
			}
		}

		return info, nil
	}

	return nil, nil
}

func (s *MPRISSource) listPlayers() ([]string, error) {
	var names []string
	err := s.bus.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names)
	if err != nil {
		return nil, err
	}

	var players []string
	for _, name := range names {
		if strings.HasPrefix(name, mprisPrefix) {
			players = append(players, name)
		}
	}
	return players, nil
}

// orderPlayers sorts bus names by the preference list, appending anything
// unrecognized in its original order.
func orderPlayers(players []string) []string {
	ordered := make([]string, 0, len(players))
	taken := make(map[string]bool, len(players))

	for _, pref := range playerPreference {
		for _, p := range players {
			if !taken[p] && strings.Contains(strings.ToLower(p), pref) {
				ordered = append(ordered, p)
				taken[p] = true
			}
		}
	}
	for _, p := range players {
		if !taken[p] {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

func extractString(metadata map[string]dbus.Variant, key string) string {
	variant, exists := metadata[key]
	if !exists {
		return ""
	}
	if text, ok := variant.Value().(string); ok {
		return text
	}
	return ""
}

// extractMicros reads a microsecond count from the metadata map. Players
// disagree on the integer width for mpris:length, so every plausible numeric
// type is accepted; anything else reads as zero.
func extractMicros(metadata map[string]dbus.Variant, key string) time.Duration {
	variant, exists := metadata[key]
	if !exists {
		return 0
	}
	return microsToDuration(variant.Value())
}

func microsToDuration(value any) time.Duration {
	var micros int64
	switch typed := value.(type) {
	case int64:
		micros = typed
	case uint64:
		micros = int64(typed)
	case int32:
		micros = int64(typed)
	case uint32:
		micros = int64(typed)
	case float64:
		micros = int64(typed)
	default:
		return 0
	}
	if micros < 0 {
		return 0
	}
	return time.Duration(micros) * time.Microsecond
}

func extractArtist(metadata map[string]dbus.Variant, key string) string {
	variant, exists := metadata[key]
	if !exists {
		return ""
	}
	switch typed := variant.Value().(type) {
	case []string:
		if len(typed) > 0 {
			return typed[0]
		}
		return ""
	case string:
		return typed
	default:
		return ""
	}
}

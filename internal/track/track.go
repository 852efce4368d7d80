package track

import (
	"strings"
	"time"
)

// StoppedKey is the identity of the "nothing playing" state.
const StoppedKey = "stopped"

type Status string

const (
	StatusPlaying Status = "playing"
	StatusStopped Status = "stopped"
)

// Info is the raw result of one media source detection, before artwork
// resolution turns it into a client-facing Snapshot.
type Info struct {
	Title       string
	Artist      string
	Album       string
	Player      string
	ArtworkURL  string
	ArtworkData []byte
	ArtworkMime string

	// Position and Length are zero when the player does not report them.
	Position time.Duration
	Length   time.Duration
}

// IsValid reports whether the detection carries enough identity to be
// treated as a playing track. A track with no title and no artist is not
// identity-bearing.
func (t *Info) IsValid() bool {
	if t == nil {
		return false
	}
	return t.Title != "" || t.Artist != ""
}

// Snapshot is one immutable result of a poll against the media source.
// It is produced fresh on every poll and never mutated, only replaced.
type Snapshot struct {
	Status      Status `json:"status"`
	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	Cover       string `json:"cover,omitempty"`
	Source      string `json:"source,omitempty"`
	CoverSource string `json:"coverSource,omitempty"`

	// Position and Length are seconds into and total length of the track,
	// zero when the player does not report progress.
	Position float64 `json:"position,omitempty"`
	Length   float64 `json:"length,omitempty"`
}

func Stopped() Snapshot {
	return Snapshot{Status: StatusStopped}
}

func (s Snapshot) IsPlaying() bool {
	return s.Status == StatusPlaying
}

// Key returns the normalized identity of the snapshot, used for change
// detection. Snapshots differing only in letter case share a key.
func (s Snapshot) Key() string {
	if !s.IsPlaying() {
		return StoppedKey
	}
	return Key(s.Title, s.Artist, s.Album)
}

// Key derives the track key for a (title, artist, album) triple. Empty title
// and artist map to StoppedKey regardless of the album field.
func Key(title, artist, album string) string {
	if title == "" && artist == "" {
		return StoppedKey
	}
	return strings.ToLower(title) + "|" + strings.ToLower(artist) + "|" + strings.ToLower(album)
}

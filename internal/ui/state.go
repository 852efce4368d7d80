package ui

import (
	"time"

	"github.com/edkf/album-visualizer/internal/track"
)

// nothingPlayingText is the stopped-state headline.
const nothingPlayingText = "Nothing playing"

// RenderState mirrors the last values actually written to the screen. It
// gates both network fetches and redraw work: the poll tick stays fast for
// responsiveness, the fetch interval bounds calls to the server, and field
// writes only happen when a value differs from what is already rendered.
type RenderState struct {
	lastFetch time.Time
	trackKey  string

	title  string
	artist string
	album  string
	source string
	cover  string

	// writes counts applied field writes; tests assert that identical
	// snapshots cause none.
	writes int
}

// ShouldFetch reports whether a fetch is due: either enough time has passed
// since the last one, or no track has ever been observed.
func (s *RenderState) ShouldFetch(now time.Time, interval time.Duration) bool {
	if s.trackKey == "" {
		return true
	}
	return now.Sub(s.lastFetch) >= interval
}

func (s *RenderState) MarkFetched(now time.Time) {
	s.lastFetch = now
}

// TrackChanged compares a fresh key against the last rendered one.
func (s *RenderState) TrackChanged(key string) bool {
	return key != s.trackKey
}

func (s *RenderState) TrackKey() string { return s.trackKey }
func (s *RenderState) Writes() int      { return s.writes }

// ChangeSet lists which rendered fields a snapshot invalidated.
type ChangeSet struct {
	Title  bool
	Artist bool
	Album  bool
	Source bool
	Cover  bool
}

func (cs ChangeSet) Any() bool {
	return cs.Title || cs.Artist || cs.Album || cs.Source || cs.Cover
}

// Apply diffs the snapshot against the last rendered values, stores the
// fields that differ, and reports them. The artwork reference is diffed like
// any other field, so an unchanged cover never triggers a reload or a fresh
// color extraction.
func (s *RenderState) Apply(snap track.Snapshot) ChangeSet {
	var cs ChangeSet

	title, artist, album, source := displayFields(snap)
	if title != s.title {
		s.title = title
		s.writes++
		cs.Title = true
	}
	if artist != s.artist {
		s.artist = artist
		s.writes++
		cs.Artist = true
	}
	if album != s.album {
		s.album = album
		s.writes++
		cs.Album = true
	}
	if source != s.source {
		s.source = source
		s.writes++
		cs.Source = true
	}
	if snap.Cover != s.cover {
		s.cover = snap.Cover
		s.writes++
		cs.Cover = true
	}

	s.trackKey = snap.Key()
	return cs
}

// displayFields maps a snapshot to what the screen should say. The stopped
// state renders the headline and clears everything else.
func displayFields(snap track.Snapshot) (title, artist, album, source string) {
	if !snap.IsPlaying() {
		return nothingPlayingText, "", "", ""
	}
	return snap.Title, snap.Artist, snap.Album, snap.Source
}

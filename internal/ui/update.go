package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edkf/album-visualizer/internal/artwork"
	"github.com/edkf/album-visualizer/internal/colors"
	"github.com/edkf/album-visualizer/internal/config"
)

// extractCount is how many dominant colors each artwork load extracts; the
// theme only ever uses the first, the second softens the gradient.
const extractCount = 5

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case SnapshotMsg:
		return m.handleSnapshot(msg)

	case ArtworkMsg:
		return m.handleArtwork(msg)
	}

	return m, nil
}

// handleTick advances the poll loop. Every tick redraws the pulse, but only
// a due tick reaches the network.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.tickCount++

	cmds := []tea.Cmd{tickCmd()}
	if m.state.ShouldFetch(now, config.FetchInterval) {
		m.state.MarkFetched(now)
		cmds = append(cmds, fetchSnapshotCmd(m.client))
	}
	return m, tea.Batch(cmds...)
}

// handleSnapshot runs change detection on a fresh poll result. An unchanged
// track key short-circuits before any field writes; otherwise only the
// fields that differ get touched, and only a changed cover kicks off an
// artwork load.
func (m Model) handleSnapshot(msg SnapshotMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// absorbed; the next poll is the retry
		m.fetchErr = msg.Err
		return m, nil
	}
	m.fetchErr = nil

	key := msg.Snap.Key()
	if !m.state.TrackChanged(key) {
		// progress advances without the track changing; it is display-only
		// and never counts as a field write
		m.snap.Position = msg.Snap.Position
		m.snap.Length = msg.Snap.Length
		return m, nil
	}

	changes := m.state.Apply(msg.Snap)
	m.snap = msg.Snap

	if !changes.Cover {
		return m, nil
	}

	if msg.Snap.Cover == "" {
		m.img = nil
		m.loadingArt = false
		m.theme = DefaultTheme()
		return m, nil
	}

	m.loadingArt = true
	return m, loadArtworkCmd(key, msg.Snap.Cover)
}

// handleArtwork applies a finished load, unless the track has moved on
// since the load was requested.
func (m Model) handleArtwork(msg ArtworkMsg) (tea.Model, tea.Cmd) {
	if msg.Key != m.state.TrackKey() {
		return m, nil
	}
	m.loadingArt = false

	if msg.Err != nil || msg.Img == nil {
		m.img = nil
		m.theme = DefaultTheme()
		return m, nil
	}

	m.img = msg.Img
	m.theme = ThemeFromColors(msg.Colors)
	return m, nil
}

func loadArtworkCmd(key string, cover string) tea.Cmd {
	return func() tea.Msg {
		img, err := artwork.FetchImage(context.Background(), cover)
		if err != nil {
			return ArtworkMsg{Key: key, Cover: cover, Err: err}
		}
		return ArtworkMsg{
			Key:    key,
			Cover:  cover,
			Img:    img,
			Colors: colors.Extract(img, extractCount),
		}
	}
}

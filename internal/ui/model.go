package ui

import (
	"context"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/edkf/album-visualizer/internal/colors"
	"github.com/edkf/album-visualizer/internal/config"
	"github.com/edkf/album-visualizer/internal/terminal"
	"github.com/edkf/album-visualizer/internal/track"
)

// NowPlayingClient is what the model polls; satisfied by client.Client and
// by test stubs.
type NowPlayingClient interface {
	NowPlaying(ctx context.Context) (track.Snapshot, error)
}

type TickMsg time.Time

type SnapshotMsg struct {
	Snap track.Snapshot
	Err  error
}

// ArtworkMsg carries a finished artwork load. Key is the track key the load
// was requested for: completions for a track that is no longer current are
// discarded, so a slow load can never overwrite a newer track's theme.
type ArtworkMsg struct {
	Key    string
	Cover  string
	Img    image.Image
	Colors []colors.Color
	Err    error
}

type Model struct {
	client   NowPlayingClient
	termCaps *terminal.Capabilities

	state      RenderState
	snap       track.Snapshot
	theme      Theme
	img        image.Image
	loadingArt bool
	fetchErr   error

	width     int
	height    int
	tickCount int
	quitting  bool
}

type ModelConfig struct {
	Client   NowPlayingClient
	TermCaps *terminal.Capabilities
}

func NewModel(cfg ModelConfig) Model {
	m := Model{
		client:   cfg.Client,
		termCaps: cfg.TermCaps,
		theme:    DefaultTheme(),
		snap:     track.Stopped(),
	}
	// the Init fetch counts as the first one
	m.state.MarkFetched(time.Now())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchSnapshotCmd(m.client),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func fetchSnapshotCmd(c NowPlayingClient) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		snap, err := c.NowPlaying(ctx)
		return SnapshotMsg{Snap: snap, Err: err}
	}
}

func (m Model) Snapshot() track.Snapshot { return m.snap }
func (m Model) Theme() Theme             { return m.theme }
func (m Model) Image() image.Image       { return m.img }
func (m Model) IsLoadingArtwork() bool   { return m.loadingArt }
func (m Model) FetchErr() error          { return m.fetchErr }
func (m Model) IsQuitting() bool         { return m.quitting }

// RenderWrites exposes the write counter for instrumentation and tests.
func (m Model) RenderWrites() int { return m.state.Writes() }

// Package nowplaying normalizes whatever the media source reports into a
// client-facing snapshot, with artwork attached by the resolver.
package nowplaying

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/edkf/album-visualizer/internal/artwork"
	"github.com/edkf/album-visualizer/internal/config"
	"github.com/edkf/album-visualizer/internal/mediasource"
	"github.com/edkf/album-visualizer/internal/track"
)

// playerSource names a cover that came straight from the player's own
// metadata rather than a lookup provider.
const playerSource = "player"

type Service struct {
	source        mediasource.Source
	resolver      *artwork.Resolver
	sourceTimeout time.Duration
	log           logrus.FieldLogger
}

func New(source mediasource.Source, resolver *artwork.Resolver, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		source:        source,
		resolver:      resolver,
		sourceTimeout: config.SourceTimeout,
		log:           log,
	}
}

// GetNowPlaying polls the media source once and returns a fresh snapshot.
// It never fails: source errors, timeouts and unparsable output all degrade
// to the stopped snapshot. The absence of title and artist is the sole
// liveness signal; no play/pause flag from the source is trusted.
func (s *Service) GetNowPlaying(ctx context.Context) track.Snapshot {
	sourceCtx, cancel := context.WithTimeout(ctx, s.sourceTimeout)
	defer cancel()

	info, err := s.source.Current(sourceCtx)
	if err != nil {
		s.log.WithError(err).Warn("media source unavailable")
		return track.Stopped()
	}
	if !info.IsValid() {
		return track.Stopped()
	}

	snap := track.Snapshot{
		Status:   track.StatusPlaying,
		Title:    info.Title,
		Artist:   info.Artist,
		Album:    info.Album,
		Source:   info.Player,
		Position: info.Position.Seconds(),
		Length:   info.Length.Seconds(),
	}

	// art the player itself advertised wins outright; the provider chain
	// only runs when the player had nothing usable
	if info.ArtworkURL != "" {
		snap.Cover = info.ArtworkURL
		snap.CoverSource = playerSource
		return snap
	}

	ref, providerName := s.resolver.Resolve(ctx, info.Artist, info.Title, info.Album, info.ArtworkData)
	if !ref.IsZero() {
		snap.Cover = ref.Encode()
		snap.CoverSource = providerName
		s.log.WithFields(logrus.Fields{
			"provider": providerName,
			"track":    snap.Key(),
		}).Debug("artwork resolved")
	}

	return snap
}

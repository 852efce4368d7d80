package main

import (
	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edkf/album-visualizer/internal/artwork"
	"github.com/edkf/album-visualizer/internal/config"
	"github.com/edkf/album-visualizer/internal/mediasource"
	"github.com/edkf/album-visualizer/internal/nowplaying"
)

// loadConfig merges the environment config with any flag overrides.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()

	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if listenHost != "" {
		cfg.ListenHost = listenHost
	}
	if cmd.Flags().Changed("port") {
		cfg.ListenPort = listenPort
	}
	if mediaCommand != "" {
		cfg.MediaCommand = mediaCommand
	}
	if lastfmAPIKey != "" {
		cfg.LastfmAPIKey = lastfmAPIKey
	}
	if noITunes {
		cfg.ITunesEnabled = false
	}
	if noMPRIS {
		cfg.MPRISEnabled = false
	}

	return cfg
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}

// buildService wires the media source, the provider chain and the cache
// into a ready NowPlayingService. The returned cleanup closes the dbus
// connection when one was opened.
func buildService(cfg *config.Config, log *logrus.Logger) (*nowplaying.Service, func(), error) {
	cleanup := func() {}

	var source mediasource.Source
	if cfg.MPRISEnabled {
		bus, err := dbus.ConnectSessionBus()
		if err == nil {
			mpris, mprisErr := mediasource.NewMPRISSource(bus)
			if mprisErr == nil {
				source = mpris
				cleanup = func() { bus.Close() }
			} else {
				bus.Close()
			}
		} else {
			log.WithError(err).Debug("session bus unavailable, falling back to media command")
		}
	}
	if source == nil {
		cmdSource, err := mediasource.NewCommandSource(cfg.MediaCommand)
		if err != nil {
			return nil, cleanup, err
		}
		source = cmdSource
	}

	// providers in strict priority order; last.fm only exists with a key
	var providers []artwork.Provider
	if cfg.LastfmAPIKey != "" {
		providers = append(providers, artwork.NewLastfm(cfg.LastfmAPIKey))
	} else {
		log.Debug("no last.fm api key, provider skipped")
	}
	if cfg.ITunesEnabled {
		providers = append(providers, artwork.NewITunes())
	}

	resolver := artwork.NewResolver(artwork.NewCache(config.CacheTTL), providers...)

	return nowplaying.New(source, resolver, log), cleanup, nil
}

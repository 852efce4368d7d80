package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// global flags
	serverURL    string
	listenHost   string
	listenPort   int
	mediaCommand string
	lastfmAPIKey string
	noITunes     bool
	noMPRIS      bool
)

var rootCmd = &cobra.Command{
	Use:   "album-visualizer",
	Short: "live now-playing dashboard themed by album artwork",
	Long: `album-visualizer watches what your system is playing, looks up album
artwork through a chain of providers, and renders a live display whose
colors derive from the artwork's dominant color.

the serve subcommand exposes the snapshot over http; watch (the default)
polls that endpoint and draws it in the terminal.`,
	Version: "1.0.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		// default behavior: run the terminal watcher
		return runWatch(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "base url of a running serve instance")
	rootCmd.PersistentFlags().StringVar(&listenHost, "host", "", "listen host for serve")
	rootCmd.PersistentFlags().IntVarP(&listenPort, "port", "p", 0, "listen port for serve")
	rootCmd.PersistentFlags().StringVar(&mediaCommand, "media-command", "", "external media detection command")
	rootCmd.PersistentFlags().StringVar(&lastfmAPIKey, "lastfm-api-key", "", "last.fm api key (enables the last.fm provider)")
	rootCmd.PersistentFlags().BoolVar(&noITunes, "no-itunes", false, "disable the itunes search provider")
	rootCmd.PersistentFlags().BoolVar(&noMPRIS, "no-mpris", false, "skip mpris detection, use the media command only")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

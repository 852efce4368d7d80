package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/edkf/album-visualizer/internal/client"
	"github.com/edkf/album-visualizer/internal/terminal"
	"github.com/edkf/album-visualizer/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watch the now-playing display in the terminal",
	Long:  `polls a running serve instance and renders the current track with artwork-derived colors.`,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigChan
		cancel()
		terminal.Reset()
		os.Exit(0)
	}()

	defer terminal.Reset()

	cfg := loadConfig(cmd)

	model := ui.NewModel(ui.ModelConfig{
		Client:   client.New(cfg.ServerURL),
		TermCaps: terminal.Detect(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running bubble tea: %w", err)
	}
	return nil
}

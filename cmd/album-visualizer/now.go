package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "print the current snapshot once and exit",
	Long:  `runs one media detection plus artwork resolution and prints the resulting snapshot as json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		log := newLogger(cfg)

		service, cleanup, err := buildService(cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		snap := service.GetNowPlaying(context.Background())

		out, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nowCmd)
}

package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/edkf/album-visualizer/internal/artwork"
	"github.com/edkf/album-visualizer/internal/colors"
)

var paletteCount int

var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "extract dominant colors from an image",
	Long: `decodes an image (local path, file:// url, http url or data uri) and
prints its dominant colors, most frequent first. the first color listed is
what the watch display derives its theme from.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cover := args[0]

		img, err := artwork.FetchImage(context.Background(), cover)
		if err != nil {
			// bare paths are a convenience; retry as a local file
			var fileErr error
			img, fileErr = artwork.FetchImage(context.Background(), "file://"+cover)
			if fileErr != nil {
				return err
			}
		}

		extracted := colors.Extract(img, paletteCount)
		if len(extracted) == 0 {
			fmt.Println("no representative colors (image is transparent or near black/white)")
			return nil
		}

		for i, c := range extracted {
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex)).Render("      ")
			fmt.Printf("%d. %s %s  rgb(%d, %d, %d)", i+1, swatch, c.Hex, c.R, c.G, c.B)
			if i == 0 {
				dark := colors.Darken(c, 40)
				text := colors.AccessibleTextColor(c)
				fmt.Printf("  → background %s, text %s", dark.Hex, text.Hex)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	paletteCmd.Flags().IntVarP(&paletteCount, "count", "n", 5, "how many colors to extract")
	rootCmd.AddCommand(paletteCmd)
}

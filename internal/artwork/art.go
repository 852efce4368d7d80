package artwork

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"
)

// RenderHalfBlocks draws the image as terminal cells, packing two pixel rows
// per cell with the upper-half-block glyph. Returns one string per row.
func RenderHalfBlocks(img image.Image, targetWidth int, targetHeight int) []string {
	if img == nil || targetWidth < 4 || targetHeight < 2 {
		return nil
	}

	// each cell carries two vertical pixels
	resized := resize.Resize(uint(targetWidth), uint(targetHeight*2), img, resize.Lanczos3)
	bounds := resized.Bounds()

	lines := make([]string, targetHeight)
	for y := 0; y < targetHeight; y++ {
		var line strings.Builder
		topY := y * 2
		bottomY := topY + 1

		for x := 0; x < bounds.Dx(); x++ {
			topR, topG, topB, topA := resized.At(bounds.Min.X+x, bounds.Min.Y+topY).RGBA()

			bottomR, bottomG, bottomB, bottomA := topR, topG, topB, topA
			if bottomY < bounds.Dy() {
				bottomR, bottomG, bottomB, bottomA = resized.At(bounds.Min.X+x, bounds.Min.Y+bottomY).RGBA()
			}

			if topA>>8 < 128 && bottomA>>8 < 128 {
				line.WriteString(" ")
				continue
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", topR>>8, topG>>8, topB>>8))).
				Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", bottomR>>8, bottomG>>8, bottomB>>8)))
			line.WriteString(style.Render("▀"))
		}
		lines[y] = line.String()
	}

	return lines
}

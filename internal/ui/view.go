package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"

	"github.com/edkf/album-visualizer/internal/artwork"
	"github.com/edkf/album-visualizer/internal/colors"
	"github.com/edkf/album-visualizer/internal/terminal"
)

var pulseChars = []string{"·", "•", "●", "•"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	height := m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}

	var lines []string
	if m.snap.IsPlaying() {
		lines = m.renderPlaying(width, height)
	} else {
		lines = m.renderIdle(width, height)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// renderIdle draws the stopped state: an ascii banner over the default
// gradient with a slow pulse underneath.
func (m Model) renderIdle(width int, height int) []string {
	banner := figure.NewFigure("idle", "", true).Slicify()
	gradient := colors.Gradient(m.theme.GradientStart, m.theme.GradientEnd, len(banner)+1)

	content := make([]string, 0, len(banner)+4)
	for i, bannerLine := range banner {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradient[i].Hex))
		content = append(content, centerText(style.Render(bannerLine), len(bannerLine), width))
	}

	content = append(content, "")
	headline := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Text.Hex)).
		Italic(true).
		Render(nothingPlayingText)
	content = append(content, centerText(headline, len(nothingPlayingText), width))

	pulse := pulseChars[(m.tickCount)%len(pulseChars)]
	pulseStyled := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.GradientEnd.Hex)).
		Render(pulse)
	content = append(content, centerText(pulseStyled, 1, width))

	// vertically center the block
	top := (height - len(content)) / 2
	if top < 0 {
		top = 0
	}
	lines := make([]string, 0, height)
	for i := 0; i < top; i++ {
		lines = append(lines, "")
	}
	return append(lines, content...)
}

func (m Model) renderPlaying(width int, height int) []string {
	var lines []string
	lines = append(lines, "")

	artWidth, artHeight := 16, 8
	if width < 80 {
		artWidth, artHeight = 10, 5
	}
	if width < 50 || height < 14 {
		artWidth, artHeight = 0, 0
	}

	artLines := m.renderArtwork(artWidth, artHeight)
	infoLines := m.renderTrackInfo(width - artWidth - 6)

	rows := len(artLines)
	if len(infoLines) > rows {
		rows = len(infoLines)
	}
	for i := 0; i < rows; i++ {
		var row strings.Builder
		if artWidth > 0 {
			row.WriteString("  ")
			if i < len(artLines) {
				row.WriteString(artLines[i])
			} else {
				row.WriteString(strings.Repeat(" ", artWidth))
			}
			row.WriteString("  ")
		} else {
			row.WriteString("  ")
		}
		if i < len(infoLines) {
			row.WriteString(infoLines[i])
		}
		lines = append(lines, row.String())
	}

	return lines
}

// renderArtwork draws the cover art cell block, a pulsing placeholder while
// a load is in flight, or nothing at all.
func (m Model) renderArtwork(artWidth int, artHeight int) []string {
	if artWidth == 0 {
		return nil
	}

	if m.loadingArt || m.img == nil {
		placeholder := make([]string, artHeight)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent.Hex))
		for i := range placeholder {
			cell := " "
			if m.loadingArt && i == artHeight/2 {
				cell = pulseChars[m.tickCount%len(pulseChars)]
			}
			placeholder[i] = style.Render(centerText(cell, 1, artWidth))
		}
		return placeholder
	}

	if m.termCaps != nil && m.termCaps.KittyGraphics {
		if encoded := terminal.EncodeArtwork(m.img, artWidth, artHeight); encoded != "" {
			lines := make([]string, artHeight)
			lines[0] = encoded
			return lines
		}
	}

	return artwork.RenderHalfBlocks(m.img, artWidth, artHeight)
}

func (m Model) renderTrackInfo(width int) []string {
	if width < 10 {
		width = 10
	}

	panel := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Background.Hex))

	titleStyle := panel.
		Foreground(lipgloss.Color(m.theme.Text.Hex)).
		Bold(true)
	bodyStyle := panel.
		Foreground(lipgloss.Color(m.theme.Text.Hex))
	dimStyle := panel.
		Foreground(lipgloss.Color(m.theme.Accent.Hex)).
		Faint(true)

	var lines []string
	lines = append(lines, titleStyle.Render(" "+truncate(m.snap.Title, width)+" "))
	if m.snap.Artist != "" {
		lines = append(lines, bodyStyle.Render(" "+truncate(m.snap.Artist, width)+" "))
	}
	if m.snap.Album != "" {
		lines = append(lines, dimStyle.Render(" "+truncate(m.snap.Album, width)+" "))
	}

	if m.snap.Length > 0 {
		lines = append(lines, "")
		lines = append(lines, bodyStyle.Render(" "+renderProgress(m.snap.Position, m.snap.Length, width-2)+" "))
	}

	if m.snap.Source != "" {
		lines = append(lines, "")
		via := "via " + m.snap.Source
		if m.snap.CoverSource != "" {
			via += " · art " + m.snap.CoverSource
		}
		lines = append(lines, dimStyle.Render(" "+truncate(via, width)+" "))
	}

	return lines
}

// renderProgress draws "m:ss ━━━━──── m:ss" sized to the given width. The
// position clamps into [0, length] so a player reporting past the end still
// renders a full bar.
func renderProgress(position float64, length float64, width int) string {
	if position < 0 {
		position = 0
	}
	if position > length {
		position = length
	}

	elapsed := formatClock(position)
	total := formatClock(length)

	barWidth := width - len(elapsed) - len(total) - 2
	if barWidth < 4 {
		return elapsed + " / " + total
	}

	filled := int(float64(barWidth) * position / length)
	bar := strings.Repeat("━", filled) + strings.Repeat("─", barWidth-filled)

	return elapsed + " " + bar + " " + total
}

func formatClock(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	if total >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

func centerText(rendered string, visibleWidth int, totalWidth int) string {
	pad := (totalWidth - visibleWidth) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + rendered
}

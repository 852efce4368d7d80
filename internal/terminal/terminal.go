// Package terminal knows what the hosting terminal can do for artwork
// rendering and how to leave the screen clean on exit.
package terminal

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
)

// Capabilities is what the watch view consults when deciding how to draw
// cover art: the kitty graphics protocol when available, half-block cells
// otherwise.
type Capabilities struct {
	KittyGraphics bool
}

func Detect() *Capabilities {
	return &Capabilities{
		KittyGraphics: kittyGraphicsEnabled(
			os.Getenv("ALBUMVIZ_USE_KITTY_GRAPHICS"),
			os.Getenv("KITTY_WINDOW_ID"),
		),
	}
}

// kittyGraphicsEnabled decides whether to emit kitty graphics escapes. An
// explicit override always wins; otherwise the protocol is used only when
// kitty itself advertises a window id, since the escapes are garbage on any
// other terminal while half-block art is safe everywhere.
func kittyGraphicsEnabled(override string, kittyWindowID string) bool {
	switch override {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return kittyWindowID != ""
}

// Reset undoes everything the watch view turns on: alt screen, styling and
// a hidden cursor. Safe to call more than once.
func Reset() {
	os.Stdout.WriteString("\033[?25h")   // show cursor
	os.Stdout.WriteString("\033[0m")     // clear styling
	os.Stdout.WriteString("\033[?1049l") // leave alt screen
	os.Stdout.Sync()
}

// Cell pixel geometry assumed when sizing the transmitted bitmap. Kitty
// scales the image into the requested cell box regardless; this only bounds
// the payload so a large cover does not push megabytes per redraw.
const (
	cellPixelWidth  = 10
	cellPixelHeight = 20
)

// kittyChunkSize is the protocol's maximum escape payload per chunk.
const kittyChunkSize = 4096

// EncodeArtwork renders the image as a kitty graphics escape sequence
// occupying cols x rows terminal cells. Returns "" when the image cannot be
// encoded, in which case the caller falls back to half-block rendering.
func EncodeArtwork(img image.Image, cols int, rows int) string {
	if img == nil || cols < 1 || rows < 1 {
		return ""
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return ""
	}

	width, height := fitBitmap(bounds.Dx(), bounds.Dy(), cols, rows)
	resized := resize.Resize(width, height, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return ""
	}
	payload := base64.StdEncoding.EncodeToString(buf.Bytes())

	var out strings.Builder
	for i := 0; i < len(payload); i += kittyChunkSize {
		end := i + kittyChunkSize
		if end > len(payload) {
			end = len(payload)
		}
		more := 0
		if end < len(payload) {
			more = 1
		}

		if i == 0 {
			// a=T transmit and display, f=100 png payload
			fmt.Fprintf(&out, "\x1b_Ga=T,f=100,c=%d,r=%d,m=%d;%s\x1b\\", cols, rows, more, payload[i:end])
		} else {
			fmt.Fprintf(&out, "\x1b_Gm=%d;%s\x1b\\", more, payload[i:end])
		}
	}
	return out.String()
}

// fitBitmap shrinks the cell box's pixel budget to the image's aspect ratio
// so the transmitted bitmap is never stretched. Either edge bottoms out at
// ten pixels.
func fitBitmap(imgWidth int, imgHeight int, cols int, rows int) (uint, uint) {
	maxWidth := float64(cols * cellPixelWidth)
	maxHeight := float64(rows * cellPixelHeight)

	aspect := float64(imgWidth) / float64(imgHeight)
	width, height := maxWidth, maxHeight
	if aspect > maxWidth/maxHeight {
		height = maxWidth / aspect
	} else {
		width = maxHeight * aspect
	}

	if width < 10 {
		width = 10
	}
	if height < 10 {
		height = 10
	}
	return uint(width), uint(height)
}

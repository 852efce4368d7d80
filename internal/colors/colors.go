package colors

import "fmt"

// Color is one RGB color with its hex form precomputed for styling.
type Color struct {
	R   int    `json:"r"`
	G   int    `json:"g"`
	B   int    `json:"b"`
	Hex string `json:"hex"`
}

func New(r int, g int, b int) Color {
	r = clampInt(r, 0, 255)
	g = clampInt(g, 0, 255)
	b = clampInt(b, 0, 255)
	return Color{R: r, G: g, B: b, Hex: fmt.Sprintf("#%02X%02X%02X", r, g, b)}
}

var (
	// DarkText and LightText are the two candidates AccessibleTextColor
	// chooses between.
	DarkText  = New(34, 34, 34)
	LightText = New(245, 245, 245)
)

// Darken scales each channel toward black: 0 percent leaves the color
// unchanged, 100 is black. Channels floor to the nearest integer.
func Darken(c Color, percent int) Color {
	percent = clampInt(percent, 0, 100)
	factor := float64(100-percent) / 100.0
	return New(
		int(float64(c.R)*factor),
		int(float64(c.G)*factor),
		int(float64(c.B)*factor),
	)
}

// AccessibleTextColor picks a readable text color against c using perceptual
// brightness (ITU-R BT.601 luma) with a fixed midpoint of 128: bright
// backgrounds get dark text, dark backgrounds get light text.
func AccessibleTextColor(c Color) Color {
	brightness := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if brightness >= 128 {
		return DarkText
	}
	return LightText
}

// Blend linearly interpolates between two colors; t=0 gives a, t=1 gives b.
func Blend(a Color, b Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return New(
		a.R+int(t*float64(b.R-a.R)),
		a.G+int(t*float64(b.G-a.G)),
		a.B+int(t*float64(b.B-a.B)),
	)
}

// Gradient returns steps colors fading from start to end, inclusive.
func Gradient(start Color, end Color, steps int) []Color {
	if steps < 2 {
		steps = 2
	}
	out := make([]Color, steps)
	for i := 0; i < steps; i++ {
		out[i] = Blend(start, end, float64(i)/float64(steps-1))
	}
	return out
}

func clampInt(val int, min int, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

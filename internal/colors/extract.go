package colors

import (
	"image"
	"sort"

	"github.com/nfnt/resize"
)

const (
	// maxEdge bounds the working image size before sampling. Color
	// extraction does not need full resolution; the downsample is lossy on
	// purpose.
	maxEdge = 150

	// sampleStride skips pixels between samples.
	sampleStride = 4

	alphaThreshold = 128
	minBrightness  = 30
	maxBrightness  = 225

	// bucketWidth folds near-duplicate channel values into one bucket.
	bucketWidth = 10
)

// Extract returns up to n dominant colors of the image, most frequent
// first. Transparent, near-black and near-white pixels are discarded before
// the remaining samples are quantized into frequency buckets; ties between
// buckets break by encounter order, so the result is deterministic for a
// fixed input. The list is empty when every sample is filtered out;
// callers must cope with zero colors.
func Extract(img image.Image, n int) []Color {
	if img == nil || n <= 0 {
		return nil
	}

	img = downsample(img)
	bounds := img.Bounds()

	type bucket struct {
		r, g, b int
		count   int
		order   int
	}

	counts := make(map[[3]int]*bucket)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += sampleStride {
		for x := bounds.Min.X; x < bounds.Max.X; x += sampleStride {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			r, g, b, a := int(r16>>8), int(g16>>8), int(b16>>8), int(a16>>8)

			if a < alphaThreshold {
				continue
			}
			brightness := (r + g + b) / 3
			if brightness < minBrightness || brightness > maxBrightness {
				continue
			}

			key := [3]int{r / bucketWidth, g / bucketWidth, b / bucketWidth}
			if existing, ok := counts[key]; ok {
				existing.count++
				continue
			}
			counts[key] = &bucket{
				r:     key[0] * bucketWidth,
				g:     key[1] * bucketWidth,
				b:     key[2] * bucketWidth,
				count: 1,
				order: len(counts),
			}
		}
	}

	if len(counts) == 0 {
		return nil
	}

	buckets := make([]*bucket, 0, len(counts))
	for _, b := range counts {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].order < buckets[j].order
	})

	if len(buckets) > n {
		buckets = buckets[:n]
	}

	out := make([]Color, len(buckets))
	for i, b := range buckets {
		out[i] = New(b.r, b.g, b.b)
	}
	return out
}

// downsample shrinks the image so its longest edge is at most maxEdge,
// preserving aspect ratio. Images already small enough pass through.
func downsample(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}
	if w >= h {
		return resize.Resize(maxEdge, 0, img, resize.Bilinear)
	}
	return resize.Resize(0, maxEdge, img, resize.Bilinear)
}

// Package mediasource detects what the OS is currently playing. Two
// implementations exist: a one-shot subprocess speaking JSON, and a direct
// MPRIS read over D-Bus.
package mediasource

import (
	"context"

	"github.com/edkf/album-visualizer/internal/track"
)

// Source produces the currently playing track. A nil Info with nil error
// means nothing identity-bearing is playing; errors mean the source itself
// was unavailable or unparsable. Implementations respect the context
// deadline.
type Source interface {
	Current(ctx context.Context) (*track.Info, error)
}

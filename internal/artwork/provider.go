package artwork

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/edkf/album-visualizer/internal/config"
)

// Provider is one external artwork lookup service, consulted in a fixed
// priority order. Lookup returns the zero Ref when the provider legitimately
// has no artwork for the track; an error means the answer is unknown and
// must not be cached.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, artist string, title string, album string) (Ref, error)
}

const userAgent = "album-visualizer/1.0"

var (
	providerClient     *http.Client
	providerClientOnce sync.Once
)

func getProviderClient() *http.Client {
	providerClientOnce.Do(func() {
		transport := &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   2 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     60 * time.Second,
			TLSHandshakeTimeout: 2 * time.Second,
		}
		providerClient = &http.Client{
			Transport: transport,
			Timeout:   config.ProviderTimeout,
		}
	})
	return providerClient
}

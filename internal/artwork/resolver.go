package artwork

import "context"

// EmbeddedSource names the inline-bytes fallback in snapshot coverSource.
const EmbeddedSource = "embedded"

// Resolver owns the provider chain and the TTL cache. Providers are tried
// strictly in priority order and the first non-empty result wins; there is
// no merging or quality comparison across providers. The cache is shared
// across concurrent requests with plain overwrite semantics: two concurrent
// misses for the same key may both hit the network, last writer wins.
type Resolver struct {
	providers []Provider
	cache     *Cache
}

func NewResolver(cache *Cache, providers ...Provider) *Resolver {
	return &Resolver{providers: providers, cache: cache}
}

// Resolve walks the provider chain for a track and returns the winning
// artwork plus the name of the provider that produced it. Inline bytes from
// the media source are the last resort. A zero Ref means no artwork.
//
// Each provider is independently cache-gated. A cached answer, including a
// cached "nothing found", skips the network call for that provider; a
// provider error counts as no result for this request but is not cached, so
// the next poll retries it.
func (r *Resolver) Resolve(ctx context.Context, artist string, title string, album string, inline []byte) (Ref, string) {
	subject := album
	if subject == "" {
		subject = title
	}

	for _, provider := range r.providers {
		key := cacheKey(provider.Name(), artist, subject)

		ref, cached := r.cache.Get(key)
		if !cached {
			var err error
			ref, err = provider.Lookup(ctx, artist, title, album)
			if err != nil {
				continue
			}
			r.cache.Set(key, ref)
		}

		if !ref.IsZero() {
			return ref, provider.Name()
		}
	}

	if len(inline) > 0 {
		return Ref{Data: inline, Mime: SniffMime(inline)}, EmbeddedSource
	}
	return Ref{}, ""
}

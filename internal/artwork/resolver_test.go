package artwork

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeProvider scripts one provider in the chain and counts lookups.
type fakeProvider struct {
	name    string
	ref     Ref
	err     error
	lookups int
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Lookup(ctx context.Context, artist, title, album string) (Ref, error) {
	p.lookups++
	return p.ref, p.err
}

func TestResolverFirstNonEmptyWins(t *testing.T) {
	primary := &fakeProvider{name: "primary", ref: Ref{URL: "https://a.example/cover.jpg"}}
	secondary := &fakeProvider{name: "secondary", ref: Ref{URL: "https://b.example/cover.jpg"}}
	r := NewResolver(NewCache(time.Hour), primary, secondary)

	ref, source := r.Resolve(context.Background(), "Band", "Song", "Record", nil)
	if ref.URL != primary.ref.URL {
		t.Errorf("resolved %q, want primary's url", ref.URL)
	}
	if source != "primary" {
		t.Errorf("source = %q, want primary", source)
	}
	if secondary.lookups != 0 {
		t.Errorf("secondary consulted %d times despite primary hit", secondary.lookups)
	}
}

func TestResolverFallsThroughEmptyResult(t *testing.T) {
	primary := &fakeProvider{name: "primary"} // legitimate no-result
	secondary := &fakeProvider{name: "secondary", ref: Ref{URL: "https://b.example/cover.jpg"}}
	r := NewResolver(NewCache(time.Hour), primary, secondary)

	ref, source := r.Resolve(context.Background(), "Band", "Song", "Record", nil)
	if ref.URL != secondary.ref.URL || source != "secondary" {
		t.Errorf("got (%q, %q), want secondary's result", ref.URL, source)
	}
	if primary.lookups != 1 || secondary.lookups != 1 {
		t.Errorf("lookups = (%d, %d), want exactly one each", primary.lookups, secondary.lookups)
	}
}

func TestResolverCachesWithinTTL(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cache := NewCache(time.Hour)
	cache.now = func() time.Time { return now }

	provider := &fakeProvider{name: "primary", ref: Ref{URL: "https://a.example/cover.jpg"}}
	r := NewResolver(cache, provider)

	r.Resolve(context.Background(), "Band", "Song", "Record", nil)
	r.Resolve(context.Background(), "band", "song", "RECORD", nil)
	if provider.lookups != 1 {
		t.Fatalf("lookups within ttl = %d, want 1", provider.lookups)
	}

	now = now.Add(time.Hour)
	r.Resolve(context.Background(), "Band", "Song", "Record", nil)
	if provider.lookups != 2 {
		t.Errorf("lookups after ttl = %d, want 2", provider.lookups)
	}
}

func TestResolverCachesNegativeResult(t *testing.T) {
	provider := &fakeProvider{name: "primary"} // empty answer, no error
	r := NewResolver(NewCache(time.Hour), provider)

	r.Resolve(context.Background(), "Band", "Song", "Record", nil)
	r.Resolve(context.Background(), "Band", "Song", "Record", nil)
	if provider.lookups != 1 {
		t.Errorf("negative result not cached: %d lookups", provider.lookups)
	}
}

func TestResolverDoesNotCacheErrors(t *testing.T) {
	provider := &fakeProvider{name: "primary", err: errors.New("connection refused")}
	r := NewResolver(NewCache(time.Hour), provider)

	r.Resolve(context.Background(), "Band", "Song", "Record", nil)
	r.Resolve(context.Background(), "Band", "Song", "Record", nil)
	if provider.lookups != 2 {
		t.Errorf("errored lookup was cached: %d lookups, want 2", provider.lookups)
	}
}

func TestResolverEmbeddedFallback(t *testing.T) {
	provider := &fakeProvider{name: "primary"}
	r := NewResolver(NewCache(time.Hour), provider)

	inline := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, []byte("fake")...)
	ref, source := r.Resolve(context.Background(), "Band", "Song", "Record", inline)

	if source != EmbeddedSource {
		t.Fatalf("source = %q, want %q", source, EmbeddedSource)
	}
	if ref.Mime != "image/png" {
		t.Errorf("sniffed mime = %q, want image/png", ref.Mime)
	}

	encoded := ref.Encode()
	if len(encoded) == 0 || encoded[:15] != "data:image/png;" {
		t.Errorf("encoded cover does not look like a png data uri: %.40q", encoded)
	}
}

func TestResolverSubjectPrefersAlbum(t *testing.T) {
	cache := NewCache(time.Hour)
	provider := &fakeProvider{name: "primary", ref: Ref{URL: "https://a.example/cover.jpg"}}
	r := NewResolver(cache, provider)

	// same album, different song: one cache entry serves both
	r.Resolve(context.Background(), "Band", "Song One", "Record", nil)
	r.Resolve(context.Background(), "Band", "Song Two", "Record", nil)
	if provider.lookups != 1 {
		t.Errorf("album-keyed lookups = %d, want 1", provider.lookups)
	}

	// no album: the title becomes the subject
	r.Resolve(context.Background(), "Band", "Song One", "", nil)
	if provider.lookups != 2 {
		t.Errorf("title-keyed lookup did not miss: %d lookups", provider.lookups)
	}
}

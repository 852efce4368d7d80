package artwork

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUpgradeITunesURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"standard thumbnail",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/100x100bb.jpg",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/2000x2000bb.jpg",
		},
		{
			"png thumbnail",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/100x100bb.png",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/2000x2000bb.png",
		},
		{
			"unusual small size upgraded conservatively",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/170x170bb.jpg",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/600x600bb.jpg",
		},
		{
			"already at the conservative size stays put",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/600x600bb.jpg",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/600x600bb.jpg",
		},
		{
			"already large is never downgraded",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/2000x2000bb.jpg",
			"https://is1-ssl.mzstatic.com/image/thumb/Music/abc/2000x2000bb.jpg",
		},
		{
			"unknown shape passes through unchanged",
			"https://example.com/art/cover.jpg",
			"https://example.com/art/cover.jpg",
		},
		{
			"size in the middle of the path is left alone",
			"https://example.com/100x100bb/cover.jpg",
			"https://example.com/100x100bb/cover.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpgradeITunesURL(tt.in); got != tt.want {
				t.Errorf("UpgradeITunesURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestITunesLookupUpgradesArtwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"artworkUrl100":"https://cdn.example/thumb/100x100bb.jpg"}]}`))
	}))
	defer server.Close()

	p := &ITunes{endpoint: server.URL, client: server.Client()}

	ref, err := p.Lookup(context.Background(), "Band", "Song", "Record")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.URL != "https://cdn.example/thumb/2000x2000bb.jpg" {
		t.Errorf("lookup url = %q, want upgraded size", ref.URL)
	}
}

func TestITunesLookupFallsBackToSongEntity(t *testing.T) {
	var queries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entity := r.URL.Query().Get("entity")
		queries = append(queries, entity)
		w.Header().Set("Content-Type", "application/json")
		if entity == "album" {
			_, _ = w.Write([]byte(`{"results":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"artworkUrl100":"https://cdn.example/thumb/100x100bb.jpg"}]}`))
	}))
	defer server.Close()

	p := &ITunes{endpoint: server.URL, client: server.Client()}

	ref, err := p.Lookup(context.Background(), "Band", "Song", "Record")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.IsZero() {
		t.Fatal("expected a hit from the song entity")
	}
	if len(queries) != 2 || queries[0] != "album" || queries[1] != "song" {
		t.Errorf("entity order = %v, want [album song]", queries)
	}
}

func TestITunesLookupEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	p := &ITunes{endpoint: server.URL, client: server.Client()}

	ref, err := p.Lookup(context.Background(), "Band", "Song", "")
	if err != nil {
		t.Fatalf("empty result should not be an error: %v", err)
	}
	if !ref.IsZero() {
		t.Errorf("expected zero ref, got %+v", ref)
	}
}

func TestITunesLookupServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer server.Close()

	p := &ITunes{endpoint: server.URL, client: server.Client()}

	if _, err := p.Lookup(context.Background(), "Band", "Song", "Record"); err == nil {
		t.Fatal("expected an error for a 502 response")
	}
}

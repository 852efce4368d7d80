package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
)

func (s *Server) handleNow(w http.ResponseWriter, r *http.Request) {
	snap := s.service.GetNowPlaying(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.log.WithError(err).Warn("failed to write snapshot response")
	}
}

// handleCover relays artwork that only exists as a local file, since a
// browser or remote client cannot load a file:// reference itself.
func (s *Server) handleCover(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "no path provided", http.StatusBadRequest)
		return
	}
	path = strings.TrimPrefix(path, "file://")

	f, err := os.Open(path)
	if err != nil {
		s.log.WithField("path", path).Warn("cover file not found")
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", coverMimeType(path))
	if _, err := io.Copy(w, f); err != nil {
		s.log.WithError(err).Warn("failed to serve cover file")
	}
}

func coverMimeType(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"LISTEN_HOST", "LISTEN_PORT", "SERVER_URL", "MEDIA_COMMAND",
		"MPRIS_ENABLED", "LASTFM_API_KEY", "ITUNES_ENABLED", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.ListenPort != DefaultListenPort {
		t.Errorf("port = %d, want %d", cfg.ListenPort, DefaultListenPort)
	}
	if cfg.ListenAddr() != "0.0.0.0:5000" {
		t.Errorf("addr = %q", cfg.ListenAddr())
	}
	if cfg.ServerURL != "http://127.0.0.1:5000" {
		t.Errorf("server url = %q", cfg.ServerURL)
	}
	if !cfg.MPRISEnabled || !cfg.ITunesEnabled {
		t.Error("mpris and itunes should default on")
	}
	if cfg.LastfmAPIKey != "" {
		t.Errorf("lastfm key = %q, want unset", cfg.LastfmAPIKey)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_HOST", "127.0.0.1")
	t.Setenv("LISTEN_PORT", "8080")
	t.Setenv("SERVER_URL", "")
	t.Setenv("ITUNES_ENABLED", "false")
	t.Setenv("LASTFM_API_KEY", "abc123")

	cfg := Load()
	if cfg.ListenAddr() != "127.0.0.1:8080" {
		t.Errorf("addr = %q", cfg.ListenAddr())
	}
	// the derived server url follows the overridden port
	if cfg.ServerURL != "http://127.0.0.1:8080" {
		t.Errorf("server url = %q", cfg.ServerURL)
	}
	if cfg.ITunesEnabled {
		t.Error("itunes should be disabled")
	}
	if cfg.LastfmAPIKey != "abc123" {
		t.Errorf("lastfm key = %q", cfg.LastfmAPIKey)
	}
}

func TestLoadIgnoresBadPort(t *testing.T) {
	for _, raw := range []string{"not-a-port", "-1", "0", "70000"} {
		t.Setenv("LISTEN_PORT", raw)
		if cfg := Load(); cfg.ListenPort != DefaultListenPort {
			t.Errorf("LISTEN_PORT=%q gave port %d, want default %d", raw, cfg.ListenPort, DefaultListenPort)
		}
	}
}

func TestParseBool(t *testing.T) {
	for _, raw := range []string{"1", "true", "yes", "on"} {
		if !parseBool(raw) {
			t.Errorf("parseBool(%q) = false, want true", raw)
		}
	}
	for _, raw := range []string{"0", "false", "no", "off", "", "TRUE"} {
		if parseBool(raw) {
			t.Errorf("parseBool(%q) = true, want false", raw)
		}
	}
}

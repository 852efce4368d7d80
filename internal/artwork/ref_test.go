package artwork

import (
	"strings"
	"testing"
)

func TestSniffMime(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png signature", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}, "image/png"},
		{"gif87a", []byte("GIF87a........"), "image/gif"},
		{"gif89a", []byte("GIF89a........"), "image/gif"},
		{"jpeg markers default", []byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"},
		{"unknown bytes default to jpeg", []byte("whatever"), "image/jpeg"},
		{"truncated png header defaults to jpeg", []byte{0x89, 'P', 'N'}, "image/jpeg"},
		{"empty", nil, "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SniffMime(tt.data); got != tt.want {
				t.Errorf("SniffMime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRefEncode(t *testing.T) {
	t.Run("url wins over data", func(t *testing.T) {
		r := Ref{URL: "https://img/cover.jpg", Data: []byte{1, 2, 3}}
		if got := r.Encode(); got != "https://img/cover.jpg" {
			t.Errorf("Encode() = %q", got)
		}
	})

	t.Run("inline data becomes a data uri", func(t *testing.T) {
		r := Ref{Data: []byte{0xFF, 0xD8, 0xFF}}
		got := r.Encode()
		if !strings.HasPrefix(got, "data:image/jpeg;base64,") {
			t.Errorf("Encode() = %q, want a jpeg data uri", got)
		}
	})

	t.Run("explicit mime preferred over sniffing", func(t *testing.T) {
		r := Ref{Data: []byte{0xFF, 0xD8, 0xFF}, Mime: "image/webp"}
		if got := r.Encode(); !strings.HasPrefix(got, "data:image/webp;base64,") {
			t.Errorf("Encode() = %q, want the declared mime", got)
		}
	})

	t.Run("zero ref encodes empty", func(t *testing.T) {
		if got := (Ref{}).Encode(); got != "" {
			t.Errorf("Encode() = %q, want empty", got)
		}
	})
}

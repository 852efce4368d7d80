package artwork

import (
	"bytes"
	"encoding/base64"
)

// Ref points at one piece of album art: a remote URL or an inline payload.
// The zero value means "no artwork".
type Ref struct {
	URL  string
	Data []byte
	Mime string
}

func (r Ref) IsZero() bool {
	return r.URL == "" && len(r.Data) == 0
}

// Encode renders the client-facing cover string: the URL when remote,
// otherwise a data URI carrying the inline payload. Inline artwork is never
// written to disk; it only lives in the response.
func (r Ref) Encode() string {
	if r.URL != "" {
		return r.URL
	}
	if len(r.Data) == 0 {
		return ""
	}
	mime := r.Mime
	if mime == "" {
		mime = SniffMime(r.Data)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}

var (
	pngSignature   = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	gifSignature87 = []byte("GIF87a")
	gifSignature89 = []byte("GIF89a")
)

// SniffMime inspects the leading bytes of an image payload. Anything that is
// not recognizably PNG or GIF is assumed to be JPEG, which is what players
// embed in practice.
func SniffMime(data []byte) string {
	if len(data) >= len(pngSignature) && bytes.Equal(data[:len(pngSignature)], pngSignature) {
		return "image/png"
	}
	if len(data) >= 6 && (bytes.Equal(data[:6], gifSignature87) || bytes.Equal(data[:6], gifSignature89)) {
		return "image/gif"
	}
	return "image/jpeg"
}

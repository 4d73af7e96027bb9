package auth

import (
	"encoding/json"
	"strings"
)

// NormalizeBearer menormalkan header Authorization menjadi token mentah.
// Bentuk yang diterima:
//   - "Bearer <token>"
//   - "<token>" tanpa prefix (dikenali dari tepat dua pemisah '.')
//   - `Bearer {"token":"<token>"}` untuk klien yang melakukan double-encode
//
// Envelope yang tidak bisa diparse diperlakukan sebagai "tidak ada kredensial"
// (ok == false), bukan error keras.
func NormalizeBearer(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	lower := strings.ToLower(header)
	if strings.HasPrefix(lower, "bearer {") {
		var envelope struct {
			Token string `json:"token"`
		}
		raw := header[strings.Index(header, "{"):]
		if err := json.Unmarshal([]byte(raw), &envelope); err != nil || envelope.Token == "" {
			return "", false
		}
		return strings.TrimSpace(envelope.Token), true
	}

	if strings.HasPrefix(lower, "bearer ") {
		token := strings.TrimSpace(header[len("bearer "):])
		if token == "" {
			return "", false
		}
		return token, true
	}

	if strings.Count(header, ".") == 2 {
		return header, true
	}

	return "", false
}

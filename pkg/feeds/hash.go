package feeds

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ContentHash fingerprints an article for deduplication. GUIDs and
// URLs churn across fetches on some feeds, so the hash covers the
// normalised title, url, and body instead.
func ContentHash(title, url, body string) string {
	h := sha256.New()
	h.Write([]byte(normalise(title)))
	h.Write([]byte{0})
	h.Write([]byte(normalise(url)))
	h.Write([]byte{0})
	h.Write([]byte(normalise(body)))
	return hex.EncodeToString(h.Sum(nil))
}

// normalise lowercases and collapses runs of whitespace, so cosmetic
// reflows of the same article hash identically.
func normalise(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

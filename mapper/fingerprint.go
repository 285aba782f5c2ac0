package mapper

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// fingerprint computes a deterministic cache key from the fields that
// decide a mapping outcome. Field names are serialized in sorted key order
// so the key is independent of struct layout.
func fingerprint(product Product) string {
	normalized, _ := json.Marshal(map[string]string{
		"category":    strings.ToLower(strings.TrimSpace(product.Category)),
		"description": truncate(strings.ToLower(strings.TrimSpace(product.Description)), 200),
		"title":       truncate(strings.ToLower(strings.TrimSpace(product.Title)), 100),
	})
	sum := sha256.Sum256(normalized)
	return hex.EncodeToString(sum[:])
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

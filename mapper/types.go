// Package mapper orchestrates product-to-taxonomy classification. It runs
// the deterministic keyword matcher and/or delegates to a remote semantic
// classifier, merges the results and formats a normalized envelope.
package mapper

import (
	"context"

	"github.com/mixpeek/iab-product-mapper/cache"
	"github.com/mixpeek/iab-product-mapper/iab"
)

// Mode selects how a product is classified.
type Mode string

const (
	// ModeDeterministic uses exact keyword table lookups only.
	ModeDeterministic Mode = "deterministic"
	// ModeSemantic delegates classification to the remote classifier.
	ModeSemantic Mode = "semantic"
	// ModeHybrid runs deterministic first and falls back to (or merges
	// with) the semantic classifier when confidence is low.
	ModeHybrid Mode = "hybrid"
)

// Product is the free-text metadata describing a product to classify.
type Product struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Classification is a remote classifier's verdict for a product.
type Classification struct {
	Success    bool        `json:"success"`
	Categories []iab.Match `json:"categories"`
	Error      string      `json:"error,omitempty"`
}

// Health is a classifier's health probe result.
type Health struct {
	Status        string `json:"status"`
	LatencyMillis int64  `json:"latency_ms,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Classifier is the contract for the remote semantic classification
// service. Implementations own their retry and timeout behavior; the
// mapper only observes success or failure of the whole call.
type Classifier interface {
	Classify(ctx context.Context, product Product) (Classification, error)
	HealthCheck(ctx context.Context) Health
}

// Cache memoizes mapping envelopes by content fingerprint. Values are
// opaque serialized envelopes; eviction and expiry belong to the
// implementation. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Stats() cache.Stats
}

// IABProduct is the classified category block of a successful envelope.
type IABProduct struct {
	Primary     string              `json:"primary"`
	PrimaryID   int                 `json:"primary_id"`
	Label       string              `json:"label"`
	Confidence  float64             `json:"confidence"`
	Version     string              `json:"version"`
	Tier1       string              `json:"tier1,omitempty"`
	Tier1ID     int                 `json:"tier1_id,omitempty"`
	Tier1Label  string              `json:"tier1_label,omitempty"`
	Secondary   []SecondaryCategory `json:"secondary,omitempty"`
	Explanation string              `json:"explanation,omitempty"`
}

// SecondaryCategory is a lower-ranked candidate category.
type SecondaryCategory struct {
	Code       string  `json:"code"`
	ID         int     `json:"id"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// EchoedInput echoes the sanitized input back in the envelope.
type EchoedInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Result is the mapping result envelope.
type Result struct {
	Success       bool         `json:"success"`
	IABProduct    *IABProduct  `json:"iab_product,omitempty"`
	Source        string       `json:"source,omitempty"`
	Input         *EchoedInput `json:"input,omitempty"`
	Error         string       `json:"error,omitempty"`
	Cached        bool         `json:"cached"`
	LatencyMillis int64        `json:"latency_ms"`
}

// CategoryInfo is an enriched category view for lookups.
type CategoryInfo struct {
	ID     int    `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Label  string `json:"label"`
	Tier   int    `json:"tier"`
	Parent int    `json:"parent,omitempty"`
}

// HealthReport aggregates the mapper's own status with its collaborators.
type HealthReport struct {
	Status string       `json:"status"`
	Mode   Mode         `json:"mode"`
	Cache  *cache.Stats `json:"cache,omitempty"`
	API    *Health      `json:"api,omitempty"`
}

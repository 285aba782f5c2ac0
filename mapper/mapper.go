package mapper

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/mixpeek/iab-product-mapper/iab"
	"github.com/rs/zerolog/log"
)

const (
	// hybridShortCircuitConfidence is the deterministic confidence above
	// which hybrid mode skips the remote classifier entirely. Hand-tuned;
	// keep in sync with the taxonomy 2.0 connector.
	hybridShortCircuitConfidence = 0.9

	// mergeBoost is added to a category's confidence when both sources
	// agree on it, capped at maxMergedConfidence.
	mergeBoost          = 0.1
	maxMergedConfidence = 0.99

	defaultMinConfidence = 0.3

	maxTitleLength       = 500
	maxDescriptionLength = 2000
	maxSecondaryCount    = 3
)

// Opts configures a Mapper. Classifier and Cache are both optional:
// without a classifier only deterministic mapping works, and without a
// cache every call is computed fresh. MinConfidence nil means the 0.3
// default; a pointer to zero disables threshold filtering.
type Opts struct {
	Classifier    Classifier
	Cache         Cache
	Mode          Mode
	MinConfidence *float64
}

// Mapper maps products to IAB Ad Product Taxonomy categories. It holds no
// cross-call locks; the only mutable state is the statistics counters.
type Mapper struct {
	classifier    Classifier
	cache         Cache
	mode          Mode
	minConfidence float64
	stats         stats
}

// New creates a Mapper. Mode defaults to hybrid and the confidence
// threshold to 0.3.
func New(opts Opts) *Mapper {
	m := &Mapper{
		classifier:    opts.Classifier,
		cache:         opts.Cache,
		mode:          opts.Mode,
		minConfidence: defaultMinConfidence,
	}
	if m.mode == "" {
		m.mode = ModeHybrid
	}
	if opts.MinConfidence != nil {
		m.minConfidence = *opts.MinConfidence
	}
	return m
}

// Option overrides mapping parameters for a single MapProduct call.
type Option func(*callOpts)

type callOpts struct {
	mode             Mode
	minConfidence    float64
	hasMinConfidence bool
	withoutSecondary bool
}

// WithMode overrides the mapping mode for one call.
func WithMode(mode Mode) Option {
	return func(o *callOpts) { o.mode = mode }
}

// WithMinConfidence overrides the confidence threshold for one call.
func WithMinConfidence(min float64) Option {
	return func(o *callOpts) {
		o.minConfidence = min
		o.hasMinConfidence = true
	}
}

// WithoutSecondary omits secondary categories from the envelope.
func WithoutSecondary() Option {
	return func(o *callOpts) { o.withoutSecondary = true }
}

// matchSet is an intermediate mapping outcome before formatting.
type matchSet struct {
	source     string
	categories []iab.Match
}

// MapProduct maps a product to taxonomy categories and returns the result
// envelope. It never returns an unhandled fault: classifier and cache
// failures surface as a failure envelope with the error message.
func (m *Mapper) MapProduct(ctx context.Context, product Product, opts ...Option) Result {
	start := time.Now()
	m.stats.requests.Add(1)

	if strings.TrimSpace(product.Title) == "" && strings.TrimSpace(product.Description) == "" {
		m.stats.errors.Add(1)
		return Result{
			Success:       false,
			Error:         "at least title or description is required",
			LatencyMillis: time.Since(start).Milliseconds(),
		}
	}

	product = Product{
		Title:       sanitize(product.Title, maxTitleLength),
		Description: sanitize(product.Description, maxDescriptionLength),
		Category:    strings.TrimSpace(product.Category),
		Brand:       strings.TrimSpace(product.Brand),
		Keywords:    product.Keywords,
	}

	var key string
	if m.cache != nil {
		key = fingerprint(product)
		if data, ok := m.cache.Get(key); ok {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				m.stats.cacheHits.Add(1)
				cached.Cached = true
				cached.LatencyMillis = time.Since(start).Milliseconds()
				return cached
			}
			log.Warn().Str("key", key[:16]).Msg("discarding undecodable cache entry")
		}
	}

	call := callOpts{mode: m.mode, minConfidence: m.minConfidence}
	for _, opt := range opts {
		opt(&call)
	}
	if call.mode == "" {
		call.mode = m.mode
	}
	minConfidence := m.minConfidence
	if call.hasMinConfidence {
		minConfidence = call.minConfidence
	}

	var (
		set matchSet
		err error
	)
	switch call.mode {
	case ModeDeterministic:
		set = m.mapDeterministic(product, minConfidence)
	case ModeSemantic:
		set, err = m.mapSemantic(ctx, product, minConfidence)
	default:
		set, err = m.mapHybrid(ctx, product, minConfidence)
	}
	if err != nil {
		m.stats.errors.Add(1)
		return Result{
			Success:       false,
			Error:         err.Error(),
			LatencyMillis: time.Since(start).Milliseconds(),
		}
	}

	result := m.format(set, product, !call.withoutSecondary)
	result.LatencyMillis = time.Since(start).Milliseconds()

	if m.cache != nil && result.Success {
		if data, err := json.Marshal(result); err == nil {
			m.cache.Set(key, data)
		}
	}

	m.stats.totalLatencyMillis.Add(result.LatencyMillis)
	return result
}

// mapDeterministic matches keywords from the product's explicit keyword
// list and its concatenated text fields, falling back to a free-text scan
// when no keyword aggregates.
func (m *Mapper) mapDeterministic(product Product, minConfidence float64) matchSet {
	allText := strings.Join([]string{
		product.Title, product.Description, product.Category, product.Brand,
	}, " ")

	keywords := unionKeywords(product.Keywords, extractKeywords(allText))
	matches := iab.MatchKeywords(keywords)

	if len(matches) > 0 {
		m.stats.deterministicMatches.Add(1)
		return matchSet{source: "deterministic", categories: filterByConfidence(matches, minConfidence)}
	}

	if direct, ok := iab.FindBestMatch(allText); ok && direct.Confidence >= minConfidence {
		m.stats.deterministicMatches.Add(1)
		return matchSet{source: "deterministic", categories: []iab.Match{direct}}
	}

	m.stats.noMatches.Add(1)
	return matchSet{source: "deterministic"}
}

// mapSemantic delegates the product to the remote classifier. A returned
// error means the call itself faulted; an unsuccessful classification is
// reported as an empty match set.
func (m *Mapper) mapSemantic(ctx context.Context, product Product, minConfidence float64) (matchSet, error) {
	if m.classifier == nil {
		return matchSet{}, errClientUnavailable
	}

	classification, err := m.classifier.Classify(ctx, product)
	if err != nil {
		return matchSet{}, err
	}

	if classification.Success && len(classification.Categories) > 0 {
		m.stats.semanticMatches.Add(1)
		return matchSet{
			source:     "semantic",
			categories: filterByConfidence(classification.Categories, minConfidence),
		}, nil
	}

	m.stats.noMatches.Add(1)
	return matchSet{source: "semantic"}, nil
}

// mapHybrid runs deterministic matching first and trusts any result at or
// above the short-circuit threshold. Otherwise the classifier result is
// merged in, or the deterministic result stands alone if no classifier is
// configured or the remote call fails.
func (m *Mapper) mapHybrid(ctx context.Context, product Product, minConfidence float64) (matchSet, error) {
	deterministic := m.mapDeterministic(product, minConfidence)

	for _, c := range deterministic.categories {
		if c.Confidence >= hybridShortCircuitConfidence {
			return deterministic, nil
		}
	}

	if m.classifier != nil {
		semantic, err := m.mapSemantic(ctx, product, minConfidence)
		if err != nil {
			// The remote call is corroboration here, not the only
			// source; degrade to the deterministic result.
			log.Warn().Err(err).Msg("semantic classification failed in hybrid mode")
		} else if len(semantic.categories) > 0 {
			return matchSet{
				source:     "hybrid",
				categories: mergeMatches(deterministic.categories, semantic.categories),
			}, nil
		}
	}

	return matchSet{source: "hybrid", categories: deterministic.categories}, nil
}

// mergeMatches unions two match lists by category id. A category present
// in both gets a confidence boost and both source tags; singles keep their
// original confidence. The merged list is sorted by confidence descending.
func mergeMatches(deterministic, semantic []iab.Match) []iab.Match {
	var merged []iab.Match
	index := make(map[int]int)

	for _, c := range deterministic {
		c.Sources = []string{"deterministic"}
		index[c.ID] = len(merged)
		merged = append(merged, c)
	}

	for _, c := range semantic {
		if i, ok := index[c.ID]; ok {
			merged[i].Confidence += mergeBoost
			if merged[i].Confidence > maxMergedConfidence {
				merged[i].Confidence = maxMergedConfidence
			}
			merged[i].Sources = append(merged[i].Sources, "semantic")
		} else {
			c.Sources = []string{"semantic"}
			index[c.ID] = len(merged)
			merged = append(merged, c)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})
	return merged
}

// format builds the output envelope from a match set.
func (m *Mapper) format(set matchSet, product Product, includeSecondary bool) Result {
	input := &EchoedInput{
		Title:       product.Title,
		Description: truncate(product.Description, 100),
	}

	if len(set.categories) == 0 {
		return Result{
			Success: false,
			Error:   "no matching category found",
			Source:  set.source,
			Input:   input,
		}
	}

	primary := set.categories[0]

	out := &IABProduct{
		Primary:    iab.Code(primary.ID),
		PrimaryID:  primary.ID,
		Label:      iab.Label(primary.ID),
		Confidence: primary.Confidence,
		Version:    iab.Version,
	}

	if tier1, ok := iab.Tier1Ancestor(primary.ID); ok && tier1.ID != primary.ID {
		out.Tier1 = iab.Code(tier1.ID)
		out.Tier1ID = tier1.ID
		out.Tier1Label = tier1.Name
	}

	if includeSecondary && len(set.categories) > 1 {
		end := len(set.categories)
		if end > 1+maxSecondaryCount {
			end = 1 + maxSecondaryCount
		}
		for _, c := range set.categories[1:end] {
			out.Secondary = append(out.Secondary, SecondaryCategory{
				Code:       iab.Code(c.ID),
				ID:         c.ID,
				Label:      iab.Label(c.ID),
				Confidence: c.Confidence,
			})
		}
	}

	switch {
	case set.source == "deterministic" && len(primary.Keywords) > 0:
		out.Explanation = "Matched keywords: " + strings.Join(primary.Keywords, ", ")
	case set.source == "semantic":
		out.Explanation = "Semantic classification based on product content"
	case set.source == "hybrid":
		out.Explanation = "Combined deterministic and semantic classification"
	}

	return Result{
		Success:    true,
		IABProduct: out,
		Source:     set.source,
		Input:      input,
	}
}

// unionKeywords concatenates explicit and extracted keywords, dropping
// duplicates while keeping first-seen order.
func unionKeywords(explicit, extracted []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, kw := range append(append([]string{}, explicit...), extracted...) {
		normalized := strings.ToLower(strings.TrimSpace(kw))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, kw)
	}
	return out
}

func filterByConfidence(matches []iab.Match, min float64) []iab.Match {
	var out []iab.Match
	for _, c := range matches {
		if c.Confidence >= min {
			out = append(out, c)
		}
	}
	return out
}

// LookupCategory returns an enriched view of a category by id.
func (m *Mapper) LookupCategory(id int) (CategoryInfo, bool) {
	c, ok := iab.CategoryByID(id)
	if !ok {
		return CategoryInfo{}, false
	}
	return CategoryInfo{
		ID:     c.ID,
		Code:   iab.Code(c.ID),
		Name:   c.Name,
		Label:  iab.Label(c.ID),
		Tier:   c.Tier,
		Parent: c.Parent,
	}, true
}

// ValidateCategory reports whether an id or IAB-AP code names an existing
// category.
func (m *Mapper) ValidateCategory(idOrCode string) bool {
	return iab.IsValidCategory(idOrCode)
}

// HealthCheck aggregates cache statistics and, when a classifier is
// configured, its health probe. The overall status degrades when the
// classifier reports unhealthy.
func (m *Mapper) HealthCheck(ctx context.Context) HealthReport {
	report := HealthReport{Status: "healthy", Mode: m.mode}

	if m.cache != nil {
		s := m.cache.Stats()
		report.Cache = &s
	}

	if m.classifier != nil {
		h := m.classifier.HealthCheck(ctx)
		report.API = &h
		if h.Status != "healthy" {
			report.Status = "degraded"
		}
	}

	return report
}

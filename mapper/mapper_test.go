package mapper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mixpeek/iab-product-mapper/cache"
	"github.com/mixpeek/iab-product-mapper/iab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClassifier counts Classify calls and returns a canned result.
type fakeClassifier struct {
	calls          atomic.Int32
	classification Classification
	err            error
	health         Health
}

func (f *fakeClassifier) Classify(ctx context.Context, product Product) (Classification, error) {
	f.calls.Add(1)
	return f.classification, f.err
}

func (f *fakeClassifier) HealthCheck(ctx context.Context) Health {
	if f.health.Status == "" {
		return Health{Status: "healthy"}
	}
	return f.health
}

func TestMapProductMissingInput(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	result := m.MapProduct(context.Background(), Product{
		Category: "electronics",
		Brand:    "Apple",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "at least title or description is required", result.Error)
}

func TestMapProductMissingInputWhitespaceOnly(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	result := m.MapProduct(context.Background(), Product{Title: "   ", Description: "\t\n"})

	assert.False(t, result.Success)
}

func TestMapProductDeterministic(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	result := m.MapProduct(context.Background(), Product{
		Title:       "Apple Watch Series 9",
		Description: "GPS smartwatch with heart rate monitor",
	})

	require.True(t, result.Success)
	require.NotNil(t, result.IABProduct)
	assert.Equal(t, "IAB-AP-1121", result.IABProduct.Primary)
	assert.Equal(t, 1121, result.IABProduct.PrimaryID)
	assert.Equal(t, "Consumer Electronics > Wearables > Smartwatches", result.IABProduct.Label)
	assert.Equal(t, "Consumer Electronics", result.IABProduct.Tier1Label)
	assert.Equal(t, "IAB-AP-1115", result.IABProduct.Tier1)
	assert.Equal(t, "deterministic", result.Source)
	assert.Equal(t, "Matched keywords: smartwatch", result.IABProduct.Explanation)
	assert.False(t, result.Cached)
}

func TestMapProductTier1Primary(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	result := m.MapProduct(context.Background(), Product{Title: "cannabis dispensary"})

	require.True(t, result.Success)
	assert.Equal(t, 1050, result.IABProduct.PrimaryID)
	// Tier 1 block is omitted when the primary is itself tier 1.
	assert.Empty(t, result.IABProduct.Tier1)
	assert.Zero(t, result.IABProduct.Tier1ID)
}

func TestMapProductRealProducts(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	tests := []struct {
		title         string
		description   string
		expectedTier1 string
	}{
		{"Smartwatch GPS Wearable Device", "Smart wearable electronics", "Consumer Electronics"},
		{"Nike Running Shoes", "Athletic footwear", "Clothing and Accessories"},
		{"Marriott Hotel Booking", "Luxury hotel stay in New York City", "Travel and Tourism"},
		{"Chase Credit Card Visa", "Cashback credit card rewards", "Finance and Insurance"},
		{"Budweiser Beer", "American lager", "Alcohol"},
		{"DraftKings Sportsbook", "Sports betting", "Gambling"},
	}

	for _, tt := range tests {
		result := m.MapProduct(context.Background(), Product{Title: tt.title, Description: tt.description})
		require.True(t, result.Success, tt.title)
		assert.Equal(t, tt.expectedTier1, result.IABProduct.Tier1Label, tt.title)
	}
}

func TestMapProductExplicitKeywords(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	result := m.MapProduct(context.Background(), Product{
		Title:    "Unrecognizable gizmo thing",
		Keywords: []string{"smartphone", "phone"},
	})

	require.True(t, result.Success)
	assert.Equal(t, 1118, result.IABProduct.PrimaryID)
	assert.Equal(t, 0.96, result.IABProduct.Confidence)
}

func TestMapProductFreeTextFallback(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	// No token survives keyword aggregation, but the two-word scan in the
	// fallback finds "smart home".
	result := m.MapProduct(context.Background(), Product{Title: "Our smart home setup"})

	require.True(t, result.Success)
	assert.Equal(t, 1145, result.IABProduct.PrimaryID)
}

func TestMapProductNoMatch(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	result := m.MapProduct(context.Background(), Product{
		Title:       "xyz abc 123",
		Description: "nothing recognizable",
	})

	assert.False(t, result.Success)
	assert.Equal(t, "no matching category found", result.Error)
	assert.Equal(t, "deterministic", result.Source)
	require.NotNil(t, result.Input)
	assert.Equal(t, "xyz abc 123", result.Input.Title)
}

func TestMapProductSanitizesInput(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	longTail := make([]byte, 1000)
	for i := range longTail {
		longTail[i] = 'A'
	}

	result := m.MapProduct(context.Background(), Product{
		Title:       "Smartphone \x00\x1f  mobile   phone " + string(longTail),
		Description: "Test\x7f description",
	})

	require.True(t, result.Success)
	assert.Equal(t, 1118, result.IABProduct.PrimaryID)
	assert.LessOrEqual(t, len(result.Input.Title), 500)
	assert.NotContains(t, result.Input.Title, "\x00")
}

func TestMapProductSecondary(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	product := Product{
		Title:       "Apple Watch Series 9",
		Description: "GPS smartwatch with heart rate monitor",
	}

	result := m.MapProduct(context.Background(), product)
	require.True(t, result.Success)
	require.NotEmpty(t, result.IABProduct.Secondary)
	assert.LessOrEqual(t, len(result.IABProduct.Secondary), 3)
	for _, s := range result.IABProduct.Secondary {
		assert.NotEqual(t, result.IABProduct.PrimaryID, s.ID)
	}

	result = m.MapProduct(context.Background(), product, WithoutSecondary())
	require.True(t, result.Success)
	assert.Empty(t, result.IABProduct.Secondary)
}

func TestMapProductCaching(t *testing.T) {
	m := New(Opts{
		Mode:  ModeDeterministic,
		Cache: cache.NewMemory(time.Minute, 0),
	})

	product := Product{
		Title:       "Test Product Smartphone",
		Description: "Test description mobile phone",
	}

	first := m.MapProduct(context.Background(), product)
	second := m.MapProduct(context.Background(), product)

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.IABProduct, second.IABProduct)
}

func TestMapProductFailuresNotCached(t *testing.T) {
	m := New(Opts{
		Mode:  ModeDeterministic,
		Cache: cache.NewMemory(time.Minute, 0),
	})

	product := Product{Title: "xyz abc nothing matches"}

	first := m.MapProduct(context.Background(), product)
	second := m.MapProduct(context.Background(), product)

	assert.False(t, first.Success)
	assert.False(t, second.Success)
	assert.False(t, second.Cached)
}

func TestSemanticModeWithoutClassifier(t *testing.T) {
	m := New(Opts{Mode: ModeSemantic})

	result := m.MapProduct(context.Background(), Product{Title: "smartphone"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "classifier not configured")
}

func TestSemanticMode(t *testing.T) {
	fake := &fakeClassifier{
		classification: Classification{
			Success: true,
			Categories: []iab.Match{
				{ID: 1118, Name: "Smartphones", Tier: 2, Parent: 1115, Confidence: 0.8},
				{ID: 1812, Name: "Hotels", Tier: 2, Parent: 1810, Confidence: 0.2},
			},
		},
	}
	m := New(Opts{Mode: ModeSemantic, Classifier: fake})

	result := m.MapProduct(context.Background(), Product{Title: "some gadget"})

	require.True(t, result.Success)
	assert.Equal(t, int32(1), fake.calls.Load())
	assert.Equal(t, "semantic", result.Source)
	assert.Equal(t, 1118, result.IABProduct.PrimaryID)
	assert.Equal(t, "Semantic classification based on product content", result.IABProduct.Explanation)
	// The 0.2 candidate falls below the default 0.3 threshold.
	assert.Empty(t, result.IABProduct.Secondary)
}

func TestSemanticModeClassifierError(t *testing.T) {
	fake := &fakeClassifier{err: errors.New("connection refused")}
	m := New(Opts{Mode: ModeSemantic, Classifier: fake})

	result := m.MapProduct(context.Background(), Product{Title: "smartphone"})

	assert.False(t, result.Success)
	assert.Equal(t, "connection refused", result.Error)
	assert.Equal(t, int64(1), m.Stats().Errors)
}

func TestSemanticModeUnsuccessfulClassification(t *testing.T) {
	fake := &fakeClassifier{classification: Classification{Success: false, Error: "upstream 503"}}
	m := New(Opts{Mode: ModeSemantic, Classifier: fake})

	result := m.MapProduct(context.Background(), Product{Title: "smartphone"})

	assert.False(t, result.Success)
	assert.Equal(t, "no matching category found", result.Error)
	assert.Equal(t, "semantic", result.Source)
}

func TestHybridShortCircuit(t *testing.T) {
	fake := &fakeClassifier{classification: Classification{Success: true}}
	m := New(Opts{Mode: ModeHybrid, Classifier: fake})

	result := m.MapProduct(context.Background(), Product{Title: "smartphone for sale"})

	require.True(t, result.Success)
	assert.Equal(t, "deterministic", result.Source)
	assert.Equal(t, int32(0), fake.calls.Load(), "classifier must not be called on a high-confidence deterministic hit")
}

func TestHybridFallsBackToSemantic(t *testing.T) {
	fake := &fakeClassifier{
		classification: Classification{
			Success:    true,
			Categories: []iab.Match{{ID: 1561, Name: "Streaming Services", Tier: 2, Parent: 1560, Confidence: 0.7}},
		},
	}
	m := New(Opts{Mode: ModeHybrid, Classifier: fake})

	result := m.MapProduct(context.Background(), Product{Title: "unrecognizable widget"})

	require.True(t, result.Success)
	assert.Equal(t, int32(1), fake.calls.Load())
	assert.Equal(t, "hybrid", result.Source)
	assert.Equal(t, 1561, result.IABProduct.PrimaryID)
	assert.Equal(t, "Combined deterministic and semantic classification", result.IABProduct.Explanation)
}

func TestHybridDegradesWithoutClassifier(t *testing.T) {
	m := New(Opts{Mode: ModeHybrid})

	result := m.MapProduct(context.Background(), Product{Title: "unrecognizable widget"})

	assert.False(t, result.Success)
	assert.Equal(t, "hybrid", result.Source)
	assert.Equal(t, "no matching category found", result.Error)
}

func TestHybridSwallowsClassifierError(t *testing.T) {
	fake := &fakeClassifier{err: errors.New("timeout")}
	m := New(Opts{Mode: ModeHybrid, Classifier: fake})

	result := m.MapProduct(context.Background(), Product{Title: "unrecognizable widget"})

	// The remote call is corroboration in hybrid mode; its failure
	// degrades to the deterministic outcome instead of erroring.
	assert.False(t, result.Success)
	assert.Equal(t, "no matching category found", result.Error)
	assert.Equal(t, int64(0), m.Stats().Errors)
}

func TestMergeMatches(t *testing.T) {
	deterministic := []iab.Match{{ID: 1118, Confidence: 0.85}}
	semantic := []iab.Match{
		{ID: 1118, Confidence: 0.7},
		{ID: 1812, Confidence: 0.9},
	}

	merged := mergeMatches(deterministic, semantic)

	require.Len(t, merged, 2)
	assert.Equal(t, 1118, merged[0].ID)
	assert.InDelta(t, 0.95, merged[0].Confidence, 1e-9)
	assert.Equal(t, []string{"deterministic", "semantic"}, merged[0].Sources)
	assert.Equal(t, 1812, merged[1].ID)
	assert.Equal(t, []string{"semantic"}, merged[1].Sources)
}

func TestMergeMatchesConfidenceCap(t *testing.T) {
	merged := mergeMatches(
		[]iab.Match{{ID: 1118, Confidence: 0.95}},
		[]iab.Match{{ID: 1118, Confidence: 0.95}},
	)

	require.Len(t, merged, 1)
	assert.Equal(t, 0.99, merged[0].Confidence)
}

func TestWithMinConfidence(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	// An exact keyword hit scores 0.95, below an absurdly high threshold.
	result := m.MapProduct(context.Background(), Product{Title: "smartphone"}, WithMinConfidence(0.99))

	assert.False(t, result.Success)
	assert.Equal(t, "no matching category found", result.Error)
}

func TestZeroMinConfidence(t *testing.T) {
	fake := &fakeClassifier{
		classification: Classification{
			Success:    true,
			Categories: []iab.Match{{ID: 1812, Name: "Hotels", Tier: 2, Parent: 1810, Confidence: 0.1}},
		},
	}

	// nil means the 0.3 default; the 0.1 candidate is filtered out.
	m := New(Opts{Mode: ModeSemantic, Classifier: fake})
	result := m.MapProduct(context.Background(), Product{Title: "some gadget"})
	assert.False(t, result.Success)

	// An explicit zero threshold keeps every candidate.
	zero := 0.0
	m = New(Opts{Mode: ModeSemantic, Classifier: fake, MinConfidence: &zero})
	result = m.MapProduct(context.Background(), Product{Title: "some gadget"})
	require.True(t, result.Success)
	assert.Equal(t, 1812, result.IABProduct.PrimaryID)
}

func TestWithModeOverride(t *testing.T) {
	m := New(Opts{Mode: ModeSemantic})

	result := m.MapProduct(context.Background(), Product{Title: "smartphone"}, WithMode(ModeDeterministic))

	require.True(t, result.Success)
	assert.Equal(t, "deterministic", result.Source)
}

func TestStats(t *testing.T) {
	m := New(Opts{
		Mode:  ModeDeterministic,
		Cache: cache.NewMemory(time.Minute, 0),
	})

	m.MapProduct(context.Background(), Product{Title: "Test smartphone"})
	m.MapProduct(context.Background(), Product{Title: "Test smartphone"})
	m.MapProduct(context.Background(), Product{})

	s := m.Stats()
	assert.Equal(t, int64(3), s.Requests)
	assert.Equal(t, int64(1), s.CacheHits)
	assert.Equal(t, int64(1), s.DeterministicMatches)
	assert.Equal(t, int64(1), s.Errors)
	require.NotNil(t, s.Cache)

	m.ResetStats()
	assert.Equal(t, int64(0), m.Stats().Requests)
}

func TestLookupCategory(t *testing.T) {
	m := New(Opts{})

	info, ok := m.LookupCategory(1115)
	require.True(t, ok)
	assert.Equal(t, "Consumer Electronics", info.Name)
	assert.Equal(t, "IAB-AP-1115", info.Code)
	assert.Equal(t, 1, info.Tier)

	_, ok = m.LookupCategory(99999)
	assert.False(t, ok)
}

func TestValidateCategory(t *testing.T) {
	m := New(Opts{})

	assert.True(t, m.ValidateCategory("1115"))
	assert.True(t, m.ValidateCategory("IAB-AP-1115"))
	assert.False(t, m.ValidateCategory("99999"))
	assert.False(t, m.ValidateCategory("garbage"))
}

func TestHealthCheck(t *testing.T) {
	m := New(Opts{Cache: cache.NewMemory(time.Minute, 0)})
	report := m.HealthCheck(context.Background())
	assert.Equal(t, "healthy", report.Status)
	assert.NotNil(t, report.Cache)
	assert.Nil(t, report.API)

	unhealthy := &fakeClassifier{health: Health{Status: "unhealthy", Error: "boom"}}
	m = New(Opts{Classifier: unhealthy})
	report = m.HealthCheck(context.Background())
	assert.Equal(t, "degraded", report.Status)
	require.NotNil(t, report.API)
	assert.Equal(t, "unhealthy", report.API.Status)
}

func TestMapProducts(t *testing.T) {
	m := New(Opts{Mode: ModeDeterministic})

	products := []Product{
		{Title: "smartphone"},
		{Title: "nothing recognizable"},
		{Title: "Marriott hotel"},
	}

	results := m.MapProducts(context.Background(), products)

	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.Equal(t, 1118, results[0].IABProduct.PrimaryID)
	assert.False(t, results[1].Success)
	assert.True(t, results[2].Success)
	assert.Equal(t, 1812, results[2].IABProduct.PrimaryID)
}

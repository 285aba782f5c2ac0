package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategories(t *testing.T) {
	categories, err := parseCategories(`{"categories": [{"id": 1121, "confidence": 0.9}, {"id": 1812, "confidence": 0.4}]}`)

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, 1121, categories[0].ID)
	assert.Equal(t, "Smartwatches", categories[0].Name)
	assert.Equal(t, 3, categories[0].Tier)
	assert.Equal(t, 1120, categories[0].Parent)
	assert.Equal(t, 0.9, categories[0].Confidence)
	assert.Equal(t, 1812, categories[1].ID)
}

func TestParseCategoriesMarkdownWrapped(t *testing.T) {
	text := "```json\n{\"categories\": [{\"id\": 1118, \"confidence\": 0.85}]}\n```"

	categories, err := parseCategories(text)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 1118, categories[0].ID)
}

func TestParseCategoriesChattyResponse(t *testing.T) {
	text := `Sure! Here is the classification:
{"categories": [{"id": 1004, "confidence": 0.7}]}
Let me know if you need anything else.`

	categories, err := parseCategories(text)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Beer", categories[0].Name)
}

func TestParseCategoriesDropsUnknownIds(t *testing.T) {
	categories, err := parseCategories(`{"categories": [{"id": 99999, "confidence": 0.9}, {"id": 1812, "confidence": 0.5}]}`)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 1812, categories[0].ID)
}

func TestParseCategoriesNoJSON(t *testing.T) {
	_, err := parseCategories("I cannot classify this product.")
	assert.Error(t, err)

	_, err = parseCategories("")
	assert.Error(t, err)
}

func TestParseCategoriesMalformedJSON(t *testing.T) {
	_, err := parseCategories(`{"categories": [{"id": }`)
	assert.Error(t, err)
}

func TestHealthCheckWithoutClient(t *testing.T) {
	g := &GeminiClassifier{}
	h := g.HealthCheck(context.Background())
	assert.Equal(t, "unhealthy", h.Status)
}

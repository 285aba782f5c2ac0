// Package llm provides a Gemini-backed implementation of the classifier
// contract, for deployments without Mixpeek API access.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/mixpeek/iab-product-mapper/iab"
	"github.com/mixpeek/iab-product-mapper/mapper"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash-lite"

var classifyPrompt = strings.TrimSpace(dedent.Dedent(`
	Classify this product into IAB Ad Product Taxonomy 2.0 categories.

	%s

	Candidate top-level categories and their IAB-AP ids:
	%s

	Pick up to 3 category ids that best describe the product, most specific
	first, each with a confidence between 0 and 1.

	Respond with a JSON object of this exact shape:
	{"categories": [{"id": 1121, "confidence": 0.9}]}

	Respond ONLY with the JSON object, no markdown or other text.
`))

// GeminiClassifier classifies products with Google's Gemini API. It
// implements the mapper.Classifier contract.
type GeminiClassifier struct {
	client *genai.Client
}

// NewGeminiClassifier creates a Gemini-based classifier. It uses the
// GEMINI_API_KEY environment variable for authentication.
func NewGeminiClassifier(ctx context.Context) (*GeminiClassifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClassifier{client: client}, nil
}

// Classify prompts Gemini with the product text and the tier 1 category
// list and parses the returned category ids. Ids not present in the
// taxonomy are dropped.
func (g *GeminiClassifier) Classify(ctx context.Context, product mapper.Product) (mapper.Classification, error) {
	var lines []string
	if product.Title != "" {
		lines = append(lines, "Title: "+product.Title)
	}
	if product.Description != "" {
		lines = append(lines, "Description: "+product.Description)
	}
	if product.Category != "" {
		lines = append(lines, "Merchant category: "+product.Category)
	}
	if product.Brand != "" {
		lines = append(lines, "Brand: "+product.Brand)
	}

	var catLines []string
	for _, c := range iab.Tier1Categories() {
		catLines = append(catLines, fmt.Sprintf("- %d: %s", c.ID, c.Name))
	}

	prompt := fmt.Sprintf(classifyPrompt, strings.Join(lines, "\n"), strings.Join(catLines, "\n"))

	result, err := g.client.Models.GenerateContent(ctx, geminiModel, []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}, nil)
	if err != nil {
		return mapper.Classification{}, fmt.Errorf("gemini call failed: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return mapper.Classification{}, fmt.Errorf("empty response from gemini")
	}

	categories, err := parseCategories(result.Text())
	if err != nil {
		return mapper.Classification{}, err
	}

	if result.UsageMetadata != nil {
		log.Info().
			Str("model", geminiModel).
			Int("inputTokens", int(result.UsageMetadata.PromptTokenCount)).
			Int("outputTokens", int(result.UsageMetadata.CandidatesTokenCount)).
			Msg("classification llm call")
	}

	return mapper.Classification{Success: true, Categories: categories}, nil
}

// parseCategories extracts the JSON object from the model response and
// resolves the returned ids against the taxonomy.
func parseCategories(text string) ([]iab.Match, error) {
	// Extract JSON object from response (handles markdown blocks and
	// chatty responses).
	text = strings.TrimSpace(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object found in response: %s", text)
	}

	var resp struct {
		Categories []struct {
			ID         int     `json:"id"`
			Confidence float64 `json:"confidence"`
		} `json:"categories"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse category json: %w (response: %s)", err, text)
	}

	var out []iab.Match
	for _, c := range resp.Categories {
		cat, ok := iab.CategoryByID(c.ID)
		if !ok {
			log.Warn().Int("id", c.ID).Msg("gemini returned unknown category id")
			continue
		}
		out = append(out, iab.Match{
			ID:         cat.ID,
			Name:       cat.Name,
			Tier:       cat.Tier,
			Parent:     cat.Parent,
			Confidence: c.Confidence,
		})
	}
	return out, nil
}

// HealthCheck reports the classifier as healthy when a client is
// configured. The Gemini API has no cheap ping endpoint, so no request is
// made here.
func (g *GeminiClassifier) HealthCheck(ctx context.Context) mapper.Health {
	if g.client == nil {
		return mapper.Health{Status: "unhealthy", Error: "gemini client not initialized"}
	}
	return mapper.Health{Status: "healthy"}
}

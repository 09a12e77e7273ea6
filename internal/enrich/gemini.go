package enrich

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// geminiSchema constrains the Gemini response to the same shape as
// matchSchema so both providers feed the same parser.
var geminiSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"match":               {Type: genai.TypeString, Enum: []string{"Yes", "No"}},
		"keywords":            {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"years of experience": {Type: genai.TypeString},
		"salary":              {Type: genai.TypeString},
	},
	Required: []string{"match", "keywords", "years of experience", "salary"},
}

// GeminiProvider calls the Gemini API with a structured response schema.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a provider targeting the Gemini API. baseURL may
// be empty to use the default endpoint.
func NewGeminiProvider(ctx context.Context, apiKey, baseURL, model string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("gemini model is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(apiKey),
		Backend: genai.BackendGeminiAPI,
	}
	if strings.TrimSpace(baseURL) != "" {
		cc.HTTPOptions.BaseURL = strings.TrimSpace(baseURL)
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// Complete sends prompt to Gemini and returns the JSON answer text.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			CandidateCount:   1,
			ResponseMIMEType: "application/json",
			ResponseSchema:   geminiSchema,
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

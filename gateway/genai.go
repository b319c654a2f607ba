package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const (
	defaultTemperature float32 = 0.7
	defaultTopP        float32 = 0.95
)

// GeminiClient generates text with the Gemini API. The underlying client is
// created once and shared by all calls; system instruction contents are cached
// per instruction text so repeated calls with the same (model, instruction)
// pair reuse the prepared content.
type GeminiClient struct {
	client *genai.Client
	model  string

	mu      sync.Mutex
	systems map[string]*genai.Content
}

// NewGeminiClient creates a Gemini-backed generator. baseURL is optional and
// points the client at a proxy endpoint.
func NewGeminiClient(ctx context.Context, apiKey, baseURL, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   model,
		systems: make(map[string]*genai.Content),
	}, nil
}

// Generate sends one prompt and returns the trimmed reply text.
func (c *GeminiClient) Generate(ctx context.Context, req *Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(orDefault(req.Temperature, defaultTemperature)),
		TopP:        genai.Ptr(orDefault(req.TopP, defaultTopP)),
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = c.systemContent(req.SystemInstruction)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}

// Close releases the generator. The genai client holds no connection state
// that needs explicit teardown.
func (c *GeminiClient) Close() error {
	return nil
}

func (c *GeminiClient) systemContent(instruction string) *genai.Content {
	c.mu.Lock()
	defer c.mu.Unlock()

	if content, ok := c.systems[instruction]; ok {
		return content
	}
	content := genai.NewContentFromText(instruction, genai.RoleUser)
	c.systems[instruction] = content
	return content
}

func orDefault(v *float32, def float32) float32 {
	if v != nil {
		return *v
	}
	return def
}

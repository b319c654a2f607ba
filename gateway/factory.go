package gateway

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	// EnvAdvisorMode is the environment variable name for mode selection.
	EnvAdvisorMode = "ADVISOR_MODE"
	// ModeMock indicates the mock generator should be used.
	ModeMock = "MOCK"
)

// NewGenerator creates a generator based on the ADVISOR_MODE environment
// variable. ADVISOR_MODE=MOCK returns a MockClient; anything else returns a
// real Gemini client.
func NewGenerator(ctx context.Context, apiKey, baseURL, model string) (Generator, error) {
	if os.Getenv(EnvAdvisorMode) == ModeMock {
		log.Info("ADVISOR_MODE=MOCK detected, using mock generator")
		return NewMockClient(), nil
	}

	return NewGeminiClient(ctx, apiKey, baseURL, model)
}

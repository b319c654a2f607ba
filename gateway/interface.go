// Package gateway wraps the generative-text backend behind a single entry
// point and owns client reuse across calls.
package gateway

import "context"

// Request carries one generation call.
type Request struct {
	Prompt            string
	SystemInstruction string
	// Sampling parameters. Nil means the backend defaults (0.7 / 0.95).
	Temperature *float32
	TopP        *float32
}

// Generator is the boundary to the generation backend. Calls block until the
// backend replies or ctx is done.
type Generator interface {
	Generate(ctx context.Context, req *Request) (string, error)
	Close() error
}

// Ensure both implementations satisfy the interface.
var (
	_ Generator = (*GeminiClient)(nil)
	_ Generator = (*MockClient)(nil)
)

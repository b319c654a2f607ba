package intent

import (
	"context"

	"github.com/yl-doc/gearadvisor/domain"
)

// Intent names the pipeline a message routes to.
type Intent string

const (
	StructuredCompare Intent = "structured_compare"
	KeywordCompare    Intent = "keyword_compare"
	Purchase          Intent = "purchase"
	PlainChat         Intent = "plain_chat"
)

// Classification is the routing result for one message. Payload is set only
// for structured compare entry.
type Classification struct {
	Intent  Intent
	Payload *domain.ComparePayload
}

// Classifier routes messages. Structured compare payloads short-circuit the
// keyword policy; otherwise the policy decides compare, purchase or chat.
type Classifier struct {
	engine *Engine
}

// NewClassifier creates a classifier over the given policy engine.
func NewClassifier(engine *Engine) *Classifier {
	return &Classifier{engine: engine}
}

// Classify is a pure function of the message: same input, same result.
func (c *Classifier) Classify(ctx context.Context, message string) (Classification, error) {
	if payload := domain.DecodeComparePayload(message); payload != nil {
		return Classification{Intent: StructuredCompare, Payload: payload}, nil
	}

	decision, err := c.engine.Evaluate(ctx, message)
	if err != nil {
		return Classification{}, err
	}

	switch decision {
	case decisionCompare:
		return Classification{Intent: KeywordCompare}, nil
	case decisionPurchase:
		return Classification{Intent: Purchase}, nil
	default:
		return Classification{Intent: PlainChat}, nil
	}
}

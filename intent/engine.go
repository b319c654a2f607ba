// Package intent decides which response pipeline applies to a message.
package intent

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"
)

// Engine evaluates the keyword intent policy.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine compiles the given rego policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.intent.decision"),
		rego.Module("intent.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate returns the policy decision for a message: "compare", "purchase"
// or "chat".
func (e *Engine) Evaluate(ctx context.Context, message string) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(map[string]interface{}{
		"message": message,
	}))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate intent policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return decisionChat, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return decisionChat, nil
}

const (
	decisionCompare  = "compare"
	decisionPurchase = "purchase"
	decisionChat     = "chat"
)

// DefaultPolicy is the built-in intent policy. Exclude sets are checked before
// trigger sets so that hedging questions never route into an action pipeline,
// and compare outranks purchase.
const DefaultPolicy = `
package intent

compare_exclude := {"有必要", "需要吗", "值得", "要不要"}
compare_trigger := {"对比", "区别", "哪个好", "怎么选"}

purchase_exclude := {"不买", "别买", "先不买"}
purchase_trigger := {"买", "购买", "下单", "链接", "在哪里买", "能买吗"}

default decision := "chat"

compare_blocked if {
	some k in compare_exclude
	contains(input.message, k)
}

compare_hit if {
	not compare_blocked
	some k in compare_trigger
	contains(input.message, k)
}

purchase_blocked if {
	some k in purchase_exclude
	contains(input.message, k)
}

purchase_hit if {
	not purchase_blocked
	some k in purchase_trigger
	contains(input.message, k)
}

decision := "compare" if {
	compare_hit
}

decision := "purchase" if {
	not compare_hit
	purchase_hit
}
`

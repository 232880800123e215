// Package policy decides whether a caller may perform an API operation.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.api_authz.allow"),
		rego.Module("api_authz.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Allow evaluates the authorization policy for a request. Role is the role
// claim of the caller's token, empty for anonymous callers.
func (e *Engine) Allow(ctx context.Context, role, method string) (bool, error) {
	input := map[string]interface{}{
		"role":   role,
		"method": method,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return false, nil
	}

	allowed, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return false, fmt.Errorf("policy returned non-boolean decision: %v", results[0].Expressions[0].Value)
	}
	return allowed, nil
}

// DefaultPolicy is the default policy content: reads are open, writes
// require the Admin role.
const DefaultPolicy = `
package api_authz

default allow := false

allow if input.method == "GET"

allow if input.role == "Admin"
`

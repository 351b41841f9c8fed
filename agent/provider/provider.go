// Package provider ships the mock implementation of the external
// data-provider boundary. In production these lookups hit analytics,
// inventory, pricing, and news backends; the mock gateway returns fixed
// structured records so the routing and orchestration layers stay fully
// testable offline.
package provider

import (
	"context"
	"fmt"

	contractx "github.com/promotor-ai/promotor/agent/contract"
)

type fetchFunc func(args map[string]any) any

// MockGateway resolves tool names to canned structured records. It is a
// pure function of its inputs: no hidden state, safe for concurrent use.
type MockGateway struct {
	funcs map[string]fetchFunc
}

var _ contractx.DataProvider = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	g := &MockGateway{funcs: map[string]fetchFunc{}}

	g.registerStrategicPlanning()
	g.registerMarketIntelligence()
	g.registerChannelManagement()
	g.registerAnalytics()
	g.registerOperations()

	return g
}

func (g *MockGateway) register(tool string, fn fetchFunc) {
	g.funcs[tool] = fn
}

// Tools lists every registered tool name.
func (g *MockGateway) Tools() []string {
	out := make([]string, 0, len(g.funcs))
	for name := range g.funcs {
		out = append(out, name)
	}
	return out
}

func (g *MockGateway) Fetch(ctx context.Context, tool string, args map[string]any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fn, ok := g.funcs[tool]
	if !ok {
		return nil, fmt.Errorf("%w: unknown tool %q", contractx.ErrProviderUnavailable, tool)
	}
	if args == nil {
		args = map[string]any{}
	}
	return fn(args), nil
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

package tool

import (
	"context"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	statex "github.com/promotor-ai/promotor/agent/state"
)

const (
	defaultTimeout = 10 * time.Second
	defaultRetries = 1
)

// Executor invokes the external data-provider boundary for an agent's
// declared tools. Provider failures are recoverable: after the retry
// budget is spent the failure is recorded in the ToolResult and the
// agent's answer degrades instead of the request aborting.
type Executor struct {
	provider contractx.DataProvider
	timeout  time.Duration
	retries  int
	log      zerolog.Logger
}

type ExecutorOption func(*Executor)

func WithTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

func WithRetries(n int) ExecutorOption {
	return func(e *Executor) {
		if n >= 0 {
			e.retries = n
		}
	}
}

func NewExecutor(provider contractx.DataProvider, log zerolog.Logger, opts ...ExecutorOption) *Executor {
	e := &Executor{
		provider: provider,
		timeout:  defaultTimeout,
		retries:  defaultRetries,
		log:      log,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Execute runs every declared tool once with the shared argument set and
// returns one ToolResult per tool, in declaration order.
func (e *Executor) Execute(ctx context.Context, infos []*schema.ToolInfo, args map[string]any) []statex.ToolResult {
	if len(infos) == 0 {
		return nil
	}

	results := make([]statex.ToolResult, 0, len(infos))
	for _, info := range infos {
		if info == nil || info.Name == "" {
			continue
		}
		results = append(results, e.executeOne(ctx, info.Name, args))
	}
	return results
}

func (e *Executor) executeOne(ctx context.Context, tool string, args map[string]any) statex.ToolResult {
	var lastErr error
	for attempt := 0; attempt <= e.retries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		result, err := e.provider.Fetch(callCtx, tool, args)
		cancel()

		if err == nil {
			return statex.ToolResult{Tool: tool, Result: result}
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
		e.log.Warn().Str("tool", tool).Int("attempt", attempt+1).Err(err).
			Msg("data provider call failed")
	}

	return statex.ToolResult{Tool: tool, Error: lastErr.Error()}
}

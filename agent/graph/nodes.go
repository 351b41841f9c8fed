package graph

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	"github.com/promotor-ai/promotor/agent/routing"
	statex "github.com/promotor-ai/promotor/agent/state"
)

const (
	multiDivisionBanner = "**Multi-Division Analysis Complete**\n\n"
	emptyResultsMessage = "I've processed your request but no specific division results were generated."
	errorMessagePrefix  = "An error occurred while processing your request: "
)

// route is the one routing decision shared by the coordinator node and
// cache-key previews: classify, fan out to divisions, pick the tier.
func route(brandID, query string) (statex.TaskType, []statex.Division, statex.Tier, string) {
	task := routing.Classify(query)
	divisions := routing.Divisions(query, task)
	if len(divisions) > 1 {
		task = statex.TaskMultiDivision
	}
	tier := routing.SelectTier(task, query)
	return task, divisions, tier, cacheKeyFor(brandID, task, query)
}

// Preview returns the task, tier, and cache key a query would route to,
// without running the graph. Callers use it for cache lookups before
// paying for a run.
func Preview(brandID, query string) (statex.TaskType, statex.Tier, string) {
	task, _, tier, key := route(brandID, query)
	return task, tier, key
}

// coordinate classifies the query, routes it to divisions, and picks the
// model tier. When no division claims the query the run proceeds straight
// to the aggregator, which renders the generic no-results message; no
// model turn fires on that path.
func (e *Engine) coordinate(st statex.ProcessingState) statex.ProcessingState {
	query, ok := st.LastUserMessage()
	if !ok {
		return st.WithError("No messages to process")
	}

	task, divisions, tier, cacheKey := route(st.BrandID, query)

	st = st.
		WithRouting(task, tier, cacheKey, divisions).
		WithCurrentAgent("coordinator")

	e.log.Info().
		Str("task", string(task)).
		Str("tier", string(tier)).
		Int("divisions", len(divisions)).
		Msg("request routed")

	return st
}

// runDivision executes one division's supervisor. A failed division is
// recorded as a failure marker in its result slot; it never aborts the
// run or its sibling divisions.
func (e *Engine) runDivision(
	ctx context.Context,
	st statex.ProcessingState,
	d statex.Division,
	hook EventHook,
) statex.ProcessingState {
	emit(hook, contractx.StreamEvent{Kind: contractx.StreamDivisionStart, Division: string(d)})

	res := e.processDivision(ctx, st, d)
	st = st.WithResult(d, res)

	emit(hook, contractx.StreamEvent{
		Kind:     contractx.StreamDivisionEnd,
		Division: string(d),
		Content:  res.Summary,
	})
	return st
}

// runDivisionsParallel fans every pending division out concurrently and
// applies the results in routing order, so the aggregated response matches
// the sequential schedule exactly.
func (e *Engine) runDivisionsParallel(
	ctx context.Context,
	st statex.ProcessingState,
	hook EventHook,
) statex.ProcessingState {
	pending := st.PendingDivisions()
	results := make([]statex.DivisionResult, len(pending))

	for _, d := range pending {
		emit(hook, contractx.StreamEvent{Kind: contractx.StreamDivisionStart, Division: string(d)})
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range pending {
		i, d := i, d
		g.Go(func() error {
			results[i] = e.processDivision(gctx, st, d)
			return nil
		})
	}
	// processDivision never returns an error; failures live in the result.
	_ = g.Wait()

	for i, d := range pending {
		st = st.WithResult(d, results[i])
		emit(hook, contractx.StreamEvent{
			Kind:     contractx.StreamDivisionEnd,
			Division: string(d),
			Content:  results[i].Summary,
		})
	}
	return st
}

func (e *Engine) processDivision(ctx context.Context, st statex.ProcessingState, d statex.Division) statex.DivisionResult {
	sup, ok := e.registry.Supervisor(d)
	if !ok {
		return failureResult(d, "", fmt.Sprintf("no supervisor registered for division %s", d))
	}

	res, err := sup.Process(ctx, st)
	if err != nil {
		e.log.Error().Err(err).Str("division", string(d)).Msg("division processing failed")
		return failureResult(d, sup.Name(), err.Error())
	}
	return res
}

func failureResult(d statex.Division, agent, msg string) statex.DivisionResult {
	return statex.DivisionResult{
		Division:  d,
		AgentName: agent,
		Success:   false,
		Error:     msg,
		Timestamp: time.Now().UTC(),
	}
}

// aggregate renders the division results into the final response, one
// section per routed division in routing order.
func (e *Engine) aggregate(st statex.ProcessingState, hook EventHook) statex.ProcessingState {
	var sections []string
	for _, d := range st.NextDivisions {
		res, ok := st.Results[d]
		if !ok {
			continue
		}
		body := res.Summary
		if !res.Success {
			body = fmt.Sprintf("Processing failed: %s", res.Error)
		}
		sections = append(sections, fmt.Sprintf("## %s\n%s", d.Title(), body))
	}

	final := emptyResultsMessage
	if len(sections) > 0 {
		final = strings.Join(sections, "\n\n")
		if len(sections) > 1 {
			final = multiDivisionBanner + final
		}
	}

	emit(hook, contractx.StreamEvent{Kind: contractx.StreamText, Content: final})
	return st.WithMessage(statex.Message{Role: statex.RoleAssistant, Content: final})
}

func (e *Engine) terminateWithError(st statex.ProcessingState, hook EventHook) statex.ProcessingState {
	msg := errorMessagePrefix + st.Err
	emit(hook, contractx.StreamEvent{Kind: contractx.StreamText, Content: msg})
	return st.WithMessage(statex.Message{Role: statex.RoleAssistant, Content: msg})
}

// cacheKeyFor builds the response cache key. The query contributes a hash
// rather than raw text so keys stay bounded and store-safe.
func cacheKeyFor(brandID string, task statex.TaskType, query string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("%s:%s:%08x", brandID, task, h.Sum32())
}

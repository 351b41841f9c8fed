package graph

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/promotor-ai/promotor/agent/agents"
	contractx "github.com/promotor-ai/promotor/agent/contract"
	statex "github.com/promotor-ai/promotor/agent/state"
)

// EventHook receives stream events as a run progresses. Hooks must be fast;
// they run on the graph's goroutine.
type EventHook func(contractx.StreamEvent)

// Engine drives one request through the orchestration graph. Nodes are a
// closed set and every edge lives in the transition function, so a run is
// guaranteed to reach a terminal node within a bounded step count.
type Engine struct {
	registry *agents.Registry
	log      zerolog.Logger
	parallel bool
}

type Option func(*Engine)

// WithParallel fans multi-division requests out concurrently. Results are
// still aggregated in routing order, so the final response is identical to
// the sequential schedule.
func WithParallel() Option {
	return func(e *Engine) { e.parallel = true }
}

func NewEngine(registry *agents.Registry, log zerolog.Logger, opts ...Option) *Engine {
	e := &Engine{registry: registry, log: log}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Run executes the graph to a terminal node and returns the final state.
// The aggregated response (or the error message) is the last assistant
// message on the returned state.
func (e *Engine) Run(ctx context.Context, st statex.ProcessingState) (statex.ProcessingState, error) {
	return e.RunWithEvents(ctx, st, nil)
}

// RunWithEvents is Run with a per-run stream hook. A nil hook disables
// event emission.
func (e *Engine) RunWithEvents(
	ctx context.Context,
	st statex.ProcessingState,
	hook EventHook,
) (statex.ProcessingState, error) {
	node := NodeCoordinator

	for steps := 0; node != NodeEnd; steps++ {
		// Coordinator, one step per routed division, aggregator, and at
		// most one error hop. Anything past that is a transition bug.
		if steps > len(st.NextDivisions)+3 {
			return st, fmt.Errorf("graph did not terminate at node %s after %d steps", node, steps)
		}
		if err := ctx.Err(); err != nil {
			return st, err
		}

		e.log.Debug().Str("node", node.String()).Int("step", steps).Msg("graph step")

		switch {
		case node == NodeCoordinator:
			st = e.coordinate(st)

		case node == NodeAggregator:
			st = e.aggregate(st, hook)

		case node == NodeError:
			st = e.terminateWithError(st, hook)

		default:
			d, ok := divisionForNode(node)
			if !ok {
				return st, fmt.Errorf("no handler for graph node %s", node)
			}
			if e.parallel && len(st.PendingDivisions()) > 1 {
				st = e.runDivisionsParallel(ctx, st, hook)
			} else {
				st = e.runDivision(ctx, st, d, hook)
			}
		}

		node = e.next(node, st)
	}

	return st, nil
}

// next is the single transition function: every edge of the graph lives
// here.
func (e *Engine) next(from NodeID, st statex.ProcessingState) NodeID {
	if st.Err != "" {
		if from == NodeError {
			return NodeEnd
		}
		return NodeError
	}

	switch from {
	case NodeCoordinator,
		NodeStrategicPlanning, NodeMarketIntelligence, NodeChannelManagement,
		NodeAnalytics, NodeOperations:
		// Empty or exhausted routing falls through to the aggregator,
		// which renders the generic no-results message when nothing ran.
		return e.nextDivisionNode(st)

	case NodeAggregator, NodeError:
		return NodeEnd

	default:
		return NodeEnd
	}
}

func (e *Engine) nextDivisionNode(st statex.ProcessingState) NodeID {
	pending := st.PendingDivisions()
	if len(pending) == 0 {
		return NodeAggregator
	}
	if n, ok := nodeForDivision(pending[0]); ok {
		return n
	}
	return NodeAggregator
}

func emit(hook EventHook, ev contractx.StreamEvent) {
	if hook != nil {
		hook(ev)
	}
}

package contract

import (
	"context"

	statex "github.com/promotor-ai/promotor/agent/state"
)

// Completer is the opaque language-model capability. Implementations may be
// slow and may fail; callers must treat every invocation as a suspension
// point.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []statex.Message) (string, error)
}

// DataProvider is the external data-provider boundary behind every agent
// tool: a pure function from a tool name plus scalar/record arguments to a
// structured record, with no hidden state.
type DataProvider interface {
	Fetch(ctx context.Context, tool string, args map[string]any) (any, error)
}

// Processor is any unit that can handle a request: a leaf agent answers
// directly, a supervisor delegates to one of its agents.
type Processor interface {
	Process(ctx context.Context, st statex.ProcessingState) (statex.DivisionResult, error)
}

// AgentRouter is the delegation capability composed into supervisors.
type AgentRouter interface {
	RouteTo(st statex.ProcessingState) string
}

// CacheStore is a pluggable key-value store with expiry used to cache
// aggregated responses by the coordinator's cache key.
type CacheStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}

// HistoryStore persists conversation message logs keyed by conversation id.
type HistoryStore interface {
	Load(ctx context.Context, conversationID string) ([]statex.Message, error)
	Append(ctx context.Context, conversationID string, msgs ...statex.Message) error
}

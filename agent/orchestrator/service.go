package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	"github.com/promotor-ai/promotor/agent/graph"
	statex "github.com/promotor-ai/promotor/agent/state"
	"github.com/promotor-ai/promotor/pkg/metrics"
)

// Service is the request-level entry point: it wraps the graph engine
// with conversation history, the response cache, and metrics.
type Service struct {
	engine  *graph.Engine
	cache   contractx.CacheStore
	history contractx.HistoryStore
	log     zerolog.Logger
}

func NewService(
	engine *graph.Engine,
	cache contractx.CacheStore,
	history contractx.HistoryStore,
	log zerolog.Logger,
) *Service {
	return &Service{engine: engine, cache: cache, history: history, log: log}
}

// HandleMessage runs one chat turn to completion and returns the
// aggregated response.
func (s *Service) HandleMessage(ctx context.Context, req contractx.ChatRequest) (contractx.ChatResponse, error) {
	return s.handle(ctx, req, nil)
}

// HandleStream is HandleMessage with incremental events. The emit
// callback receives division progress and text events before the final
// complete event.
func (s *Service) HandleStream(
	ctx context.Context,
	req contractx.ChatRequest,
	emit func(contractx.StreamEvent),
) (contractx.ChatResponse, error) {
	return s.handle(ctx, req, emit)
}

func (s *Service) handle(
	ctx context.Context,
	req contractx.ChatRequest,
	emit func(contractx.StreamEvent),
) (contractx.ChatResponse, error) {
	start := time.Now()

	query := strings.TrimSpace(req.Message)
	if query == "" {
		return contractx.ChatResponse{}, fmt.Errorf("%w: message is required", contractx.ErrValidation)
	}

	conversationID := strings.TrimSpace(req.ConversationID)
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	st := statex.NewProcessingState(req.UserID, req.BrandID, req.ActiveChannels, query)
	st = s.loadHistory(ctx, conversationID, st)

	task, tier, cacheKey := graph.Preview(st.BrandID, query)
	metrics.RequestsTotal.WithLabelValues(string(task), string(tier)).Inc()
	defer func() {
		metrics.RequestDuration.Observe(time.Since(start).Seconds())
	}()

	if cached, ok := s.cacheLookup(ctx, cacheKey); ok {
		metrics.CacheHits.Inc()
		s.appendHistory(ctx, conversationID, query, cached)
		if emit != nil {
			emit(contractx.StreamEvent{Kind: contractx.StreamText, Content: cached})
		}
		s.emitFinal(emit, cached)
		return contractx.ChatResponse{
			Message:          cached,
			ConversationID:   conversationID,
			DivisionsUsed:    []string{},
			ProcessingTimeMS: msSince(start),
			TaskType:         string(task),
			Cached:           true,
		}, nil
	}

	final, err := s.engine.RunWithEvents(ctx, st, graph.EventHook(emit))
	if err != nil {
		return contractx.ChatResponse{}, fmt.Errorf("run orchestration graph: %w", err)
	}

	for _, d := range final.CompletedDivisions {
		outcome := "success"
		if res, ok := final.Results[d]; ok && !res.Success {
			outcome = "failure"
		}
		metrics.DivisionRuns.WithLabelValues(string(d), outcome).Inc()
	}

	answer, ok := final.LastAssistantMessage()
	if !ok {
		return contractx.ChatResponse{}, fmt.Errorf("%w: graph produced no response", contractx.ErrSchemaViolation)
	}

	if final.Err == "" {
		s.cacheStore(ctx, final.CacheKey, answer)
	}
	s.appendHistory(ctx, conversationID, query, answer)
	s.emitFinal(emit, answer)

	return contractx.ChatResponse{
		Message:          answer,
		ConversationID:   conversationID,
		DivisionsUsed:    final.DivisionsUsed(),
		ProcessingTimeMS: msSince(start),
		TaskType:         string(final.TaskType),
	}, nil
}

func (s *Service) loadHistory(ctx context.Context, conversationID string, st statex.ProcessingState) statex.ProcessingState {
	if s.history == nil {
		return st
	}
	prior, err := s.history.Load(ctx, conversationID)
	if err != nil {
		s.log.Warn().Err(err).Str("conversation_id", conversationID).
			Msg("history load failed, continuing without context")
		return st
	}
	if len(prior) == 0 {
		return st
	}
	return st.WithHistory(prior)
}

func (s *Service) appendHistory(ctx context.Context, conversationID, query, answer string) {
	if s.history == nil {
		return
	}
	err := s.history.Append(ctx, conversationID,
		statex.Message{Role: statex.RoleUser, Content: query},
		statex.Message{Role: statex.RoleAssistant, Content: answer},
	)
	if err != nil {
		s.log.Warn().Err(err).Str("conversation_id", conversationID).
			Msg("history append failed")
	}
}

func (s *Service) cacheLookup(ctx context.Context, key string) (string, bool) {
	if s.cache == nil || key == "" {
		return "", false
	}
	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("cache_key", key).Msg("cache lookup failed")
		return "", false
	}
	return value, ok
}

func (s *Service) cacheStore(ctx context.Context, key, value string) {
	if s.cache == nil || key == "" {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.log.Warn().Err(err).Str("cache_key", key).Msg("cache store failed")
	}
}

func (s *Service) emitFinal(emit func(contractx.StreamEvent), message string) {
	if emit == nil {
		return
	}
	emit(contractx.StreamEvent{Kind: contractx.StreamComplete, Content: message})
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

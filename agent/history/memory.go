package history

import (
	"context"
	"strings"
	"sync"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	statex "github.com/promotor-ai/promotor/agent/state"
)

// MemoryStore is an in-process HistoryStore for development and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	logs  map[string][]statex.Message
	limit int
}

var _ contractx.HistoryStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		logs:  map[string][]statex.Message{},
		limit: defaultHistoryLimit,
	}
}

func (s *MemoryStore) Load(_ context.Context, conversationID string) ([]statex.Message, error) {
	if strings.TrimSpace(conversationID) == "" {
		return nil, ErrEmptyConversationID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	log := s.logs[conversationID]
	if len(log) > s.limit {
		log = log[len(log)-s.limit:]
	}
	return append([]statex.Message(nil), log...), nil
}

func (s *MemoryStore) Append(_ context.Context, conversationID string, msgs ...statex.Message) error {
	if strings.TrimSpace(conversationID) == "" {
		return ErrEmptyConversationID
	}
	if len(msgs) == 0 {
		return nil
	}

	s.mu.Lock()
	s.logs[conversationID] = append(s.logs[conversationID], msgs...)
	s.mu.Unlock()
	return nil
}

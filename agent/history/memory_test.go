package history

import (
	"context"
	"fmt"
	"testing"

	statex "github.com/promotor-ai/promotor/agent/state"
)

func TestMemoryStoreAppendAndLoad(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Append(ctx, "conv-1",
		statex.Message{Role: statex.RoleUser, Content: "question"},
		statex.Message{Role: statex.RoleAssistant, Content: "answer"},
	)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	msgs, err := store.Load(ctx, "conv-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[0].Role != statex.RoleUser || msgs[1].Role != statex.RoleAssistant {
		t.Fatalf("order wrong: %v", msgs)
	}
}

func TestMemoryStoreIsolatesConversations(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	_ = store.Append(ctx, "a", statex.Message{Role: statex.RoleUser, Content: "for a"})

	msgs, err := store.Load(ctx, "b")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("conversation b should be empty, got %v", msgs)
	}
}

func TestMemoryStoreTrimsToLimit(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < defaultHistoryLimit+10; i++ {
		_ = store.Append(ctx, "long", statex.Message{
			Role:    statex.RoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
	}

	msgs, err := store.Load(ctx, "long")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(msgs) != defaultHistoryLimit {
		t.Fatalf("len = %d, want %d", len(msgs), defaultHistoryLimit)
	}
	if msgs[len(msgs)-1].Content != fmt.Sprintf("message %d", defaultHistoryLimit+9) {
		t.Fatalf("newest message missing: %q", msgs[len(msgs)-1].Content)
	}
}

func TestMemoryStoreRejectsBlankConversationID(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	if err := store.Append(context.Background(), " ", statex.Message{}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := store.Load(context.Background(), ""); err == nil {
		t.Fatal("expected error")
	}
}

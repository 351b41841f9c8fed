package state

import (
	"testing"
	"time"
)

func TestNewProcessingStateDefaults(t *testing.T) {
	t.Parallel()

	st := NewProcessingState("", "", nil, "hello")

	if st.UserID != "default_user" {
		t.Fatalf("UserID = %q, want default_user", st.UserID)
	}
	if st.BrandID != "default_brand" {
		t.Fatalf("BrandID = %q, want default_brand", st.BrandID)
	}
	if len(st.ActiveChannels) != 4 {
		t.Fatalf("ActiveChannels = %v, want all four defaults", st.ActiveChannels)
	}
	if st.TaskType != TaskGeneralQuery || st.Tier != TierFull {
		t.Fatalf("routing defaults = (%s, %s)", st.TaskType, st.Tier)
	}
	if got, ok := st.LastUserMessage(); !ok || got != "hello" {
		t.Fatalf("LastUserMessage = (%q, %v)", got, ok)
	}
}

func TestNewProcessingStateEmptyQueryHasNoMessages(t *testing.T) {
	t.Parallel()

	st := NewProcessingState("u", "b", nil, "   ")
	if _, ok := st.LastUserMessage(); ok {
		t.Fatal("expected no user message for blank query")
	}
}

func TestWithMethodsDoNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := NewProcessingState("u", "b", []Channel{ChannelCoupang}, "query")

	updated := base.
		WithRouting(TaskMultiDivision, TierFull, "b:multi:abc", []Division{DivisionAnalytics}).
		WithResult(DivisionAnalytics, DivisionResult{
			Division:  DivisionAnalytics,
			AgentName: "margin_calculator",
			Summary:   "done",
			Success:   true,
			Timestamp: time.Now(),
		}).
		WithMessage(Message{Role: RoleAssistant, Content: "final"})

	if base.TaskType != TaskGeneralQuery {
		t.Fatalf("base task mutated to %s", base.TaskType)
	}
	if len(base.Results) != 0 || len(base.CompletedDivisions) != 0 {
		t.Fatal("base results mutated")
	}
	if len(base.Messages) != 1 {
		t.Fatalf("base messages mutated, len=%d", len(base.Messages))
	}

	if updated.TaskType != TaskMultiDivision {
		t.Fatalf("updated task = %s", updated.TaskType)
	}
	if !updated.Completed(DivisionAnalytics) {
		t.Fatal("updated should have analytics completed")
	}
}

func TestWithResultRecordsDivisionOnce(t *testing.T) {
	t.Parallel()

	st := NewProcessingState("u", "b", nil, "q").
		WithRouting(TaskMarginCalculation, TierFull, "", []Division{DivisionAnalytics})

	r := DivisionResult{Division: DivisionAnalytics, Success: true}
	st = st.WithResult(DivisionAnalytics, r)
	st = st.WithResult(DivisionAnalytics, r)

	if len(st.CompletedDivisions) != 1 {
		t.Fatalf("CompletedDivisions = %v, want single entry", st.CompletedDivisions)
	}
}

func TestPendingDivisionsPreservesRoutingOrder(t *testing.T) {
	t.Parallel()

	routed := []Division{DivisionOperations, DivisionChannelManagement, DivisionAnalytics}
	st := NewProcessingState("u", "b", nil, "q").
		WithRouting(TaskMultiDivision, TierFull, "", routed)

	st = st.WithResult(DivisionChannelManagement, DivisionResult{Division: DivisionChannelManagement, Success: true})

	pending := st.PendingDivisions()
	if len(pending) != 2 || pending[0] != DivisionOperations || pending[1] != DivisionAnalytics {
		t.Fatalf("PendingDivisions = %v", pending)
	}
}

func TestWithHistoryPrependsPriorTurns(t *testing.T) {
	t.Parallel()

	st := NewProcessingState("u", "b", nil, "current question")
	st = st.WithHistory([]Message{
		{Role: RoleUser, Content: "earlier question"},
		{Role: RoleAssistant, Content: "earlier answer"},
	})

	if len(st.Messages) != 3 {
		t.Fatalf("Messages len = %d, want 3", len(st.Messages))
	}
	if st.Messages[0].Content != "earlier question" {
		t.Fatalf("history not prepended: %v", st.Messages)
	}
	if got, _ := st.LastUserMessage(); got != "current question" {
		t.Fatalf("LastUserMessage = %q", got)
	}
}

func TestDivisionTitle(t *testing.T) {
	t.Parallel()

	if got := DivisionStrategicPlanning.Title(); got != "Strategic Planning" {
		t.Fatalf("Title = %q", got)
	}
	if got := DivisionAnalytics.Title(); got != "Analytics" {
		t.Fatalf("Title = %q", got)
	}
}

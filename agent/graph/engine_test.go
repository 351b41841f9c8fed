package graph

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	agentsx "github.com/promotor-ai/promotor/agent/agents"
	contractx "github.com/promotor-ai/promotor/agent/contract"
	providerx "github.com/promotor-ai/promotor/agent/provider"
	statex "github.com/promotor-ai/promotor/agent/state"
)

type fakeCompleter struct {
	mu        sync.Mutex
	calls     int
	reply     string
	err       error
	failFirst int
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, _ []statex.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failFirst > 0 {
		f.failFirst--
		return "", errors.New("transient model failure")
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeCompleter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestEngine(full contractx.Completer, opts ...Option) *Engine {
	registry := agentsx.NewRegistry(agentsx.Deps{
		Full:     full,
		Provider: providerx.NewMockGateway(),
		Log:      zerolog.Nop(),
	})
	return NewEngine(registry, zerolog.Nop(), opts...)
}

func TestRunSingleDivision(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(&fakeCompleter{reply: "competitor findings"})
	st := statex.NewProcessingState("u", "b", nil, "what promotions is innisfree running on each channel")

	final, err := engine.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := final.DivisionsUsed(); len(got) != 1 || got[0] != "market_intelligence" {
		t.Fatalf("DivisionsUsed = %v", got)
	}

	answer, ok := final.LastAssistantMessage()
	if !ok {
		t.Fatal("no assistant message")
	}
	if strings.Contains(answer, "Multi-Division") {
		t.Fatal("single division must not carry the multi-division banner")
	}
	if !strings.Contains(answer, "## Market Intelligence") {
		t.Fatalf("missing section header: %q", answer)
	}
	if !strings.Contains(answer, "competitor findings") {
		t.Fatalf("missing division summary: %q", answer)
	}
}

func TestRunMultiDivisionOrderAndBanner(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(&fakeCompleter{reply: "section body"})
	st := statex.NewProcessingState("u", "b", nil, "plan the summer promotion for the new sunscreen line")

	final, err := engine.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if final.TaskType != statex.TaskMultiDivision {
		t.Fatalf("TaskType = %s", final.TaskType)
	}
	if final.Tier != statex.TierFull {
		t.Fatalf("Tier = %s", final.Tier)
	}

	want := []string{"strategic_planning", "market_intelligence", "channel_management", "analytics"}
	got := final.DivisionsUsed()
	if len(got) != len(want) {
		t.Fatalf("DivisionsUsed = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DivisionsUsed[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	answer, _ := final.LastAssistantMessage()
	if !strings.HasPrefix(answer, "**Multi-Division Analysis Complete**") {
		t.Fatalf("missing banner: %q", answer)
	}
	headers := []string{"## Strategic Planning", "## Market Intelligence", "## Channel Management", "## Analytics"}
	last := -1
	for _, h := range headers {
		idx := strings.Index(answer, h)
		if idx < 0 {
			t.Fatalf("missing section %q", h)
		}
		if idx < last {
			t.Fatalf("section %q out of routing order", h)
		}
		last = idx
	}
}

func TestRunParallelMatchesSequentialOrder(t *testing.T) {
	t.Parallel()

	query := "plan the summer promotion for the new sunscreen line"

	seqFinal, err := newTestEngine(&fakeCompleter{reply: "body"}).
		Run(context.Background(), statex.NewProcessingState("u", "b", nil, query))
	if err != nil {
		t.Fatalf("sequential Run: %v", err)
	}
	parFinal, err := newTestEngine(&fakeCompleter{reply: "body"}, WithParallel()).
		Run(context.Background(), statex.NewProcessingState("u", "b", nil, query))
	if err != nil {
		t.Fatalf("parallel Run: %v", err)
	}

	seqAnswer, _ := seqFinal.LastAssistantMessage()
	parAnswer, _ := parFinal.LastAssistantMessage()
	if seqAnswer != parAnswer {
		t.Fatalf("parallel answer diverged:\nseq: %q\npar: %q", seqAnswer, parAnswer)
	}
}

func TestRunUnroutedQuerySkipsModel(t *testing.T) {
	t.Parallel()

	// A query no division claims goes coordinator -> aggregator: the
	// generic no-results message comes back and no model turn fires.
	full := &fakeCompleter{reply: "should never be used"}
	engine := newTestEngine(full)
	st := statex.NewProcessingState("u", "b", nil, "hi there")

	final, err := engine.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(final.CompletedDivisions) != 0 {
		t.Fatalf("CompletedDivisions = %v, want none", final.CompletedDivisions)
	}
	answer, _ := final.LastAssistantMessage()
	if answer != "I've processed your request but no specific division results were generated." {
		t.Fatalf("answer = %q", answer)
	}
	if full.callCount() != 0 {
		t.Fatalf("model calls = %d, want 0", full.callCount())
	}
}

func TestRunNoMessages(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(&fakeCompleter{reply: "unused"})
	st := statex.NewProcessingState("u", "b", nil, "")

	final, err := engine.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	answer, _ := final.LastAssistantMessage()
	if answer != "An error occurred while processing your request: No messages to process" {
		t.Fatalf("answer = %q", answer)
	}
	if len(final.CompletedDivisions) != 0 {
		t.Fatalf("CompletedDivisions = %v", final.CompletedDivisions)
	}
}

func TestRunDivisionFailureBecomesMarker(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(&fakeCompleter{err: errors.New("model unavailable")})
	st := statex.NewProcessingState("u", "b", nil, "what promotions is innisfree running on each channel")

	final, err := engine.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("Run must not fail on a division error: %v", err)
	}

	res, ok := final.Results[statex.DivisionMarketIntelligence]
	if !ok {
		t.Fatal("missing failure marker result")
	}
	if res.Success || res.Error == "" {
		t.Fatalf("result = %+v, want failure marker", res)
	}

	answer, _ := final.LastAssistantMessage()
	if !strings.Contains(answer, "Processing failed:") {
		t.Fatalf("answer = %q", answer)
	}
}

func TestRunSiblingsSurviveOneFailure(t *testing.T) {
	t.Parallel()

	// The first model call (operations, routed first) fails; channel
	// management still completes and both outcomes land in the response.
	engine := newTestEngine(&fakeCompleter{reply: "recovered body", failFirst: 1})
	st := statex.NewProcessingState("u", "b", nil, "run the pre-launch check for the 재고 현황")

	final, err := engine.Run(context.Background(), st)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(final.CompletedDivisions) != 2 {
		t.Fatalf("CompletedDivisions = %v, want both divisions recorded", final.CompletedDivisions)
	}
	if res := final.Results[statex.DivisionOperations]; res.Success {
		t.Fatal("operations should carry the failure marker")
	}
	if res := final.Results[statex.DivisionChannelManagement]; !res.Success {
		t.Fatalf("channel management should succeed, got %+v", res)
	}

	answer, _ := final.LastAssistantMessage()
	if !strings.Contains(answer, "Processing failed:") || !strings.Contains(answer, "recovered body") {
		t.Fatalf("answer should mix failure marker and surviving section: %q", answer)
	}
}

func TestRunWithEventsEmitsDivisionBoundaries(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(&fakeCompleter{reply: "body"})
	st := statex.NewProcessingState("u", "b", nil, "analyze channel performance for the spring campaign period")

	var events []contractx.StreamEvent
	if _, err := engine.RunWithEvents(context.Background(), st, func(ev contractx.StreamEvent) {
		events = append(events, ev)
	}); err != nil {
		t.Fatalf("RunWithEvents: %v", err)
	}

	var kinds []contractx.StreamEventKind
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	want := []contractx.StreamEventKind{
		contractx.StreamDivisionStart,
		contractx.StreamDivisionEnd,
		contractx.StreamDivisionStart,
		contractx.StreamDivisionEnd,
		contractx.StreamText,
	}
	if len(kinds) != len(want) {
		t.Fatalf("event kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("event[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
	if events[0].Division != "channel_management" {
		t.Fatalf("first division = %s", events[0].Division)
	}
}

func TestPreviewMatchesCoordinatorRouting(t *testing.T) {
	t.Parallel()

	task, tier, key := Preview("brand-1", "plan the summer promotion for the new sunscreen line")
	if task != statex.TaskMultiDivision {
		t.Fatalf("task = %s", task)
	}
	if tier != statex.TierFull {
		t.Fatalf("tier = %s", tier)
	}
	if !strings.HasPrefix(key, "brand-1:multi_division:") {
		t.Fatalf("key = %q", key)
	}

	// Same input, same key.
	_, _, again := Preview("brand-1", "plan the summer promotion for the new sunscreen line")
	if key != again {
		t.Fatalf("cache key unstable: %q vs %q", key, again)
	}
}

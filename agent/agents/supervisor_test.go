package agents

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	providerx "github.com/promotor-ai/promotor/agent/provider"
	statex "github.com/promotor-ai/promotor/agent/state"
)

type fakeCompleter struct {
	mu    sync.Mutex
	calls int
	reply string
	err   error
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, _ []statex.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
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

func newTestRegistry(full, mini contractx.Completer) *Registry {
	return NewRegistry(Deps{
		Full:     full,
		Mini:     mini,
		Provider: providerx.NewMockGateway(),
		Log:      zerolog.Nop(),
	})
}

func mustSupervisor(t *testing.T, r *Registry, d statex.Division) *Supervisor {
	t.Helper()
	sup, ok := r.Supervisor(d)
	if !ok {
		t.Fatalf("no supervisor for %s", d)
	}
	return sup
}

func TestRouteToByKeywords(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(&fakeCompleter{reply: "ok"}, nil)

	cases := []struct {
		division statex.Division
		query    string
		want     string
	}{
		{statex.DivisionChannelManagement, "올리브영 순위 어때?", "oliveyoung_agent"},
		{statex.DivisionChannelManagement, "coupang rocket listing status", "coupang_agent"},
		{statex.DivisionChannelManagement, "네이버 스마트스토어 등급 확인", "naver_agent"},
		{statex.DivisionChannelManagement, "how is the kakao gift ranking", "kakao_agent"},
		{statex.DivisionChannelManagement, "anything new today?", "cross_channel_syncer"},
		{statex.DivisionMarketIntelligence, "최근 업계 뉴스 알려줘", "industry_news_scout"},
		{statex.DivisionMarketIntelligence, "what is laneige doing", "competitor_watcher"},
		{statex.DivisionMarketIntelligence, "retinol formulas everywhere lately", "ingredient_trend_analyst"},
		{statex.DivisionMarketIntelligence, "tell me about the market", "industry_news_scout"},
		{statex.DivisionAnalytics, "고객 리뷰 반응 정리해줘", "review_sentiment_analyst"},
		{statex.DivisionAnalytics, "번들 구성 추천해줘", "bundle_analyzer"},
		{statex.DivisionAnalytics, "show me the numbers", "promotion_reviewer"},
		{statex.DivisionOperations, "가격 위반 리셀러 있어?", "price_monitor"},
		{statex.DivisionOperations, "물량 얼마나 남았어", "inventory_checker"},
		{statex.DivisionStrategicPlanning, "예산 배분 다시 잡아줘", "budget_allocator"},
		{statex.DivisionStrategicPlanning, "아무거나 해줘", "promotion_planner"},
	}

	for _, tc := range cases {
		sup := mustSupervisor(t, reg, tc.division)
		st := statex.NewProcessingState("u", "b", nil, tc.query)
		if got := sup.RouteTo(st); got != tc.want {
			t.Fatalf("RouteTo(%s, %q) = %s, want %s", tc.division, tc.query, got, tc.want)
		}
	}
}

func TestRouteToPrefersTaskOwner(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(&fakeCompleter{reply: "ok"}, nil)
	sup := mustSupervisor(t, reg, statex.DivisionAnalytics)

	// The query text points at margins, but the classified task owns the
	// routing decision.
	st := statex.NewProcessingState("u", "b", nil, "margin question").
		WithRouting(statex.TaskStockoutPrediction, statex.TierFull, "", []statex.Division{statex.DivisionAnalytics})

	if got := sup.RouteTo(st); got != "stockout_predictor" {
		t.Fatalf("RouteTo = %s, want stockout_predictor", got)
	}
}

func TestProcessFreeTierNeverCallsModel(t *testing.T) {
	t.Parallel()

	full := &fakeCompleter{reply: "model answer"}
	reg := newTestRegistry(full, nil)
	sup := mustSupervisor(t, reg, statex.DivisionOperations)

	st := statex.NewProcessingState("u", "b", nil, "재고 확인해줘").
		WithRouting(statex.TaskInventoryMonitoring, statex.TierFree, "", []statex.Division{statex.DivisionOperations})

	res, err := sup.Process(context.Background(), st)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.AgentName != "inventory_checker" {
		t.Fatalf("AgentName = %s", res.AgentName)
	}
	if !res.Success {
		t.Fatal("expected success")
	}
	if !strings.Contains(res.Summary, "inventory.status") {
		t.Fatalf("free-tier summary should render tool data, got %q", res.Summary)
	}
	if full.callCount() != 0 {
		t.Fatalf("model called %d times on free tier", full.callCount())
	}
}

func TestProcessCheapTierUsesMiniModel(t *testing.T) {
	t.Parallel()

	full := &fakeCompleter{reply: "full answer"}
	mini := &fakeCompleter{reply: "mini answer"}
	reg := newTestRegistry(full, mini)
	sup := mustSupervisor(t, reg, statex.DivisionMarketIntelligence)

	st := statex.NewProcessingState("u", "b", nil, "innisfree promo?").
		WithRouting(statex.TaskCompetitorAnalysis, statex.TierCheap, "", []statex.Division{statex.DivisionMarketIntelligence})

	res, err := sup.Process(context.Background(), st)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Summary != "mini answer" {
		t.Fatalf("Summary = %q, want mini answer", res.Summary)
	}
	if full.callCount() != 0 || mini.callCount() != 1 {
		t.Fatalf("calls full=%d mini=%d, want 0/1", full.callCount(), mini.callCount())
	}
	if len(res.ToolResults) == 0 {
		t.Fatal("expected tool results gathered before the model call")
	}
}

func TestProcessPropagatesModelFailure(t *testing.T) {
	t.Parallel()

	full := &fakeCompleter{err: errors.New("model unavailable")}
	reg := newTestRegistry(full, nil)
	sup := mustSupervisor(t, reg, statex.DivisionAnalytics)

	st := statex.NewProcessingState("u", "b", nil, "how did the spring promotion perform overall this year").
		WithRouting(statex.TaskPromotionReview, statex.TierFull, "", []statex.Division{statex.DivisionAnalytics})

	if _, err := sup.Process(context.Background(), st); err == nil {
		t.Fatal("expected error from failing model")
	}
}

func TestSupervisorDirectAnswerFallback(t *testing.T) {
	t.Parallel()

	full := &fakeCompleter{reply: "direct answer"}
	sup := &Supervisor{
		name:         "analytics_supervisor",
		division:     statex.DivisionAnalytics,
		systemPrompt: "prompt",
		agents:       map[string]*Agent{},
		defaultAgent: "ghost_agent",
		full:         full,
		log:          zerolog.Nop(),
	}

	st := statex.NewProcessingState("u", "b", nil, "anything")
	res, err := sup.Process(context.Background(), st)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if res.Summary != "direct answer" || res.AgentName != "analytics_supervisor" {
		t.Fatalf("unexpected result %+v", res)
	}
}

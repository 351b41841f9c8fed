package routing

import (
	"regexp"
	"strings"

	statex "github.com/promotor-ai/promotor/agent/state"
)

type multiDivisionPattern struct {
	Pattern     *regexp.Regexp
	Divisions   []statex.Division
	Description string
}

// multiDivisionPatterns are checked in order before the single-task table;
// the first match wins and overrides the classified task's division. This
// lets compound requests fan out to several divisions at once.
var multiDivisionPatterns = []multiDivisionPattern{
	{
		Pattern: regexp.MustCompile(`plan.*promotion|promotion.*plan|캠페인.*계획|계획.*캠페인`),
		Divisions: []statex.Division{
			statex.DivisionStrategicPlanning,
			statex.DivisionMarketIntelligence,
			statex.DivisionChannelManagement,
			statex.DivisionAnalytics,
		},
		Description: "Full promotion planning workflow",
	},
	{
		Pattern: regexp.MustCompile(`launch.*check|pre.*launch|런칭.*체크|사전.*검토`),
		Divisions: []statex.Division{
			statex.DivisionOperations,
			statex.DivisionChannelManagement,
		},
		Description: "Pre-launch validation",
	},
	{
		Pattern: regexp.MustCompile(`analyze.*channel|channel.*performance|채널.*분석|성과.*분석`),
		Divisions: []statex.Division{
			statex.DivisionChannelManagement,
			statex.DivisionAnalytics,
		},
		Description: "Channel performance analysis",
	},
}

type taskDivisionEntry struct {
	Task     statex.TaskType
	Division statex.Division
}

var taskDivisions = []taskDivisionEntry{
	// Strategic Planning
	{statex.TaskPromotionPlanning, statex.DivisionStrategicPlanning},
	{statex.TaskTimelineManagement, statex.DivisionStrategicPlanning},
	{statex.TaskBudgetAllocation, statex.DivisionStrategicPlanning},
	// Market Intelligence
	{statex.TaskNewsScouting, statex.DivisionMarketIntelligence},
	{statex.TaskCompetitorAnalysis, statex.DivisionMarketIntelligence},
	{statex.TaskIngredientTrends, statex.DivisionMarketIntelligence},
	{statex.TaskSeasonalAnalysis, statex.DivisionMarketIntelligence},
	// Channel Management
	{statex.TaskChannelStatus, statex.DivisionChannelManagement},
	{statex.TaskPriceSync, statex.DivisionChannelManagement},
	{statex.TaskInventoryCheck, statex.DivisionChannelManagement},
	{statex.TaskCrossChannel, statex.DivisionChannelManagement},
	// Analytics
	{statex.TaskSentimentAnalysis, statex.DivisionAnalytics},
	{statex.TaskPromotionReview, statex.DivisionAnalytics},
	{statex.TaskBundleAnalysis, statex.DivisionAnalytics},
	{statex.TaskMarginCalculation, statex.DivisionAnalytics},
	{statex.TaskStockoutPrediction, statex.DivisionAnalytics},
	{statex.TaskInfluencerROI, statex.DivisionAnalytics},
	{statex.TaskAttribution, statex.DivisionAnalytics},
	// Operations
	{statex.TaskInventoryMonitoring, statex.DivisionOperations},
	{statex.TaskPriceMonitoring, statex.DivisionOperations},
	{statex.TaskChecklistValidation, statex.DivisionOperations},
}

// Divisions determines which divisions handle the request. Multi-division
// patterns are tested first; otherwise the task maps to at most one
// division. An empty result means no division claims the query and the
// run falls through to the generic no-results response.
// The returned list is duplicate-free and preserves declared order.
func Divisions(query string, task statex.TaskType) []statex.Division {
	queryLower := strings.ToLower(query)

	for _, pc := range multiDivisionPatterns {
		if pc.Pattern.MatchString(queryLower) {
			return dedupe(pc.Divisions)
		}
	}

	for _, entry := range taskDivisions {
		if entry.Task == task {
			return []statex.Division{entry.Division}
		}
	}

	return nil
}

func dedupe(divisions []statex.Division) []statex.Division {
	seen := make(map[statex.Division]struct{}, len(divisions))
	out := make([]statex.Division, 0, len(divisions))
	for _, d := range divisions {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

type agentMapping struct {
	Task  statex.TaskType
	Agent string
}

var divisionAgents = map[statex.Division][]agentMapping{
	statex.DivisionStrategicPlanning: {
		{statex.TaskPromotionPlanning, "promotion_planner"},
		{statex.TaskTimelineManagement, "timeline_manager"},
		{statex.TaskBudgetAllocation, "budget_allocator"},
	},
	statex.DivisionMarketIntelligence: {
		{statex.TaskNewsScouting, "industry_news_scout"},
		{statex.TaskCompetitorAnalysis, "competitor_watcher"},
		{statex.TaskIngredientTrends, "ingredient_trend_analyst"},
		{statex.TaskSeasonalAnalysis, "seasonal_pattern_analyst"},
	},
	statex.DivisionChannelManagement: {
		{statex.TaskChannelStatus, "cross_channel_syncer"},
		{statex.TaskPriceSync, "cross_channel_syncer"},
		{statex.TaskInventoryCheck, "cross_channel_syncer"},
		{statex.TaskCrossChannel, "cross_channel_syncer"},
	},
	statex.DivisionAnalytics: {
		{statex.TaskSentimentAnalysis, "review_sentiment_analyst"},
		{statex.TaskPromotionReview, "promotion_reviewer"},
		{statex.TaskBundleAnalysis, "bundle_analyzer"},
		{statex.TaskMarginCalculation, "margin_calculator"},
		{statex.TaskStockoutPrediction, "stockout_predictor"},
		{statex.TaskInfluencerROI, "influencer_roi_analyst"},
		{statex.TaskAttribution, "attribution_analyst"},
	},
	statex.DivisionOperations: {
		{statex.TaskInventoryMonitoring, "inventory_checker"},
		{statex.TaskPriceMonitoring, "price_monitor"},
		{statex.TaskChecklistValidation, "checklist_manager"},
	},
}

// AgentForTask returns the agent within a division that owns a task type,
// or "supervisor" when the division has no dedicated agent for it.
func AgentForTask(division statex.Division, task statex.TaskType) string {
	for _, m := range divisionAgents[division] {
		if m.Task == task {
			return m.Agent
		}
	}
	return "supervisor"
}

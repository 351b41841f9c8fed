// Package routing holds the deterministic request-routing layer: the
// keyword task classifier, the division router, and the model-tier
// selector. Everything here is a pure function of the query text so that
// routing decisions stay auditable and reproducible in tests.
package routing

import (
	"strings"

	statex "github.com/promotor-ai/promotor/agent/state"
)

type taskKeywordSet struct {
	Task     statex.TaskType
	Keywords []string
}

// taskKeywords is an ordered list: on a score tie the first-declared task
// wins. Keyword lists carry both English and Korean variants because the
// domain is bilingual.
var taskKeywords = []taskKeywordSet{
	{statex.TaskPromotionPlanning, []string{
		"plan", "planning", "calendar", "schedule", "campaign", "q1", "q2", "q3", "q4",
		"quarterly", "monthly", "weekly", "annual", "프로모션", "계획", "캠페인",
	}},
	{statex.TaskTimelineManagement, []string{
		"timeline", "deadline", "milestone", "due", "when", "reminder", "일정", "마감",
	}},
	{statex.TaskBudgetAllocation, []string{
		"budget", "cost", "spend", "allocate", "roi", "예산", "비용", "배분",
	}},
	{statex.TaskNewsScouting, []string{
		"news", "trend", "industry", "뉴스", "트렌드", "업계",
	}},
	{statex.TaskCompetitorAnalysis, []string{
		"competitor", "competition", "innisfree", "laneige", "etude", "경쟁사", "경쟁",
	}},
	{statex.TaskIngredientTrends, []string{
		"ingredient", "centella", "retinol", "niacinamide", "vitamin", "성분", "레티놀",
	}},
	{statex.TaskSeasonalAnalysis, []string{
		"seasonal", "season", "summer", "winter", "holiday", "계절", "여름", "겨울",
	}},
	{statex.TaskChannelStatus, []string{
		"oliveyoung", "coupang", "naver", "kakao", "channel", "올리브영", "쿠팡", "네이버",
	}},
	{statex.TaskPriceSync, []string{
		"price sync", "price consistency", "가격 동기화", "가격 일치",
	}},
	{statex.TaskSentimentAnalysis, []string{
		"review", "sentiment", "feedback", "customer opinion", "리뷰", "평점", "고객 의견",
	}},
	{statex.TaskPromotionReview, []string{
		"performance", "analyze promotion", "how did", "결과", "성과", "분석",
	}},
	{statex.TaskBundleAnalysis, []string{
		"bundle", "cross-sell", "upsell", "세트", "번들", "교차판매",
	}},
	{statex.TaskMarginCalculation, []string{
		"margin", "profit", "discount level", "마진", "수익", "할인율",
	}},
	{statex.TaskStockoutPrediction, []string{
		"stockout", "stock out", "reorder", "inventory forecast", "재고 부족", "발주",
	}},
	{statex.TaskInfluencerROI, []string{
		"influencer", "kol", "creator", "인플루언서", "크리에이터",
	}},
	{statex.TaskAttribution, []string{
		"attribution", "channel contribution", "기여도", "채널 기여",
	}},
	{statex.TaskInventoryMonitoring, []string{
		"inventory", "stock level", "재고", "재고 현황",
	}},
	{statex.TaskPriceMonitoring, []string{
		"price monitor", "map violation", "reseller", "가격 모니터링", "리셀러",
	}},
	{statex.TaskChecklistValidation, []string{
		"checklist", "validation", "pre-launch", "체크리스트", "검증",
	}},
}

// Classify scores the query against each task's keyword list and returns
// the task with the highest nonzero score. Ties resolve to the
// first-declared task; zero matches fall back to the general query task.
func Classify(query string) statex.TaskType {
	queryLower := strings.ToLower(query)

	best := statex.TaskGeneralQuery
	bestScore := 0
	for _, set := range taskKeywords {
		score := 0
		for _, kw := range set.Keywords {
			if strings.Contains(queryLower, strings.ToLower(kw)) {
				score++
			}
		}
		if score > bestScore {
			best = set.Task
			bestScore = score
		}
	}
	return best
}

package agents

import (
	statex "github.com/promotor-ai/promotor/agent/state"
)

const (
	industryNewsScoutPrompt = `You are the industry news scout for a K-beauty brand.
Use the news and trending-topic data to report what is moving in the beauty
market right now. Lead with items that affect promotion decisions. Answer in
the user's language.`

	competitorWatcherPrompt = `You are the competitor watcher for a K-beauty brand.
Use the competitor promotion and pricing data to report what rivals such as
Innisfree and Laneige are running, at what discount, and on which channels.
Contrast against the brand's position when possible. Answer in the user's
language.`

	ingredientTrendAnalystPrompt = `You are the ingredient trend analyst for a K-beauty brand.
Use the ingredient trend data to report which actives (retinol, centella,
niacinamide and the like) are rising or fading, with search and sales signals.
Answer in the user's language.`

	seasonalPatternAnalystPrompt = `You are the seasonal pattern analyst for a K-beauty brand.
Use the seasonal demand data to report which categories peak in the upcoming
period and how past holiday events performed. Tie findings to promotion timing.
Answer in the user's language.`
)

func (c core) newMarketIntelligenceSupervisor() *Supervisor {
	return c.newSupervisor(
		statex.DivisionMarketIntelligence,
		[]keywordRule{
			{Keywords: []string{"news", "trend", "buzz", "뉴스", "트렌드", "이슈"}, Agent: "industry_news_scout"},
			{Keywords: []string{"competitor", "innisfree", "laneige", "경쟁사", "경쟁"}, Agent: "competitor_watcher"},
			{Keywords: []string{"ingredient", "retinol", "centella", "성분", "원료"}, Agent: "ingredient_trend_analyst"},
			{Keywords: []string{"season", "demand", "holiday", "event", "계절", "수요", "시즌"}, Agent: "seasonal_pattern_analyst"},
		},
		"industry_news_scout",
		c.newAgent("industry_news_scout", statex.DivisionMarketIntelligence, industryNewsScoutPrompt),
		c.newAgent("competitor_watcher", statex.DivisionMarketIntelligence, competitorWatcherPrompt),
		c.newAgent("ingredient_trend_analyst", statex.DivisionMarketIntelligence, ingredientTrendAnalystPrompt),
		c.newAgent("seasonal_pattern_analyst", statex.DivisionMarketIntelligence, seasonalPatternAnalystPrompt),
	)
}

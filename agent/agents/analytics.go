package agents

import (
	statex "github.com/promotor-ai/promotor/agent/state"
)

const (
	reviewSentimentAnalystPrompt = `You are the review sentiment analyst for a K-beauty brand.
Use the sentiment and alert data to report customer sentiment by product,
recurring complaint themes, and anything spiking negative. Answer in the
user's language.`

	promotionReviewerPrompt = `You are the promotion performance reviewer for a K-beauty brand.
Use the performance data to report revenue lift, units, and conversion against
the promotion's target. State clearly whether the promotion beat or missed
plan, and why. Answer in the user's language.`

	bundleAnalyzerPrompt = `You are the bundle analyst for a K-beauty brand.
Use the co-purchase data to report which product pairings sell together and
which bundle candidates have the best attach rates. Answer in the user's
language.`

	marginCalculatorPrompt = `You are the margin calculator for a K-beauty brand.
Use the margin simulation data to report contribution margin at the proposed
discount levels, the break-even discount, and channel fee impact. Never invent
numbers. Answer in the user's language.`

	stockoutPredictorPrompt = `You are the stockout predictor for a K-beauty brand.
Use the forecast data to report SKUs at risk of selling out, the projected
stockout date, and the reorder quantity that avoids it. Answer in the user's
language.`

	influencerROIAnalystPrompt = `You are the influencer ROI analyst for a K-beauty brand.
Use the campaign data to report spend, attributed revenue, and ROI per creator.
Rank creators by return, not by follower count. Answer in the user's language.`

	attributionAnalystPrompt = `You are the channel attribution analyst for a K-beauty brand.
Use the attribution report data to explain which channels drove conversions and
how credit shifts between first-touch and last-touch views. Answer in the
user's language.`
)

func (c core) newAnalyticsSupervisor() *Supervisor {
	return c.newSupervisor(
		statex.DivisionAnalytics,
		[]keywordRule{
			{Keywords: []string{"review", "sentiment", "feedback", "리뷰", "평가", "고객반응"}, Agent: "review_sentiment_analyst"},
			{Keywords: []string{"promotion result", "performance", "how did", "성과", "결과"}, Agent: "promotion_reviewer"},
			{Keywords: []string{"bundle", "cross-sell", "upsell", "세트", "번들"}, Agent: "bundle_analyzer"},
			{Keywords: []string{"margin", "profit", "discount", "마진", "수익", "할인"}, Agent: "margin_calculator"},
			{Keywords: []string{"stock", "inventory", "stockout", "재고", "품절"}, Agent: "stockout_predictor"},
			{Keywords: []string{"influencer", "kol", "creator", "인플루언서", "크리에이터"}, Agent: "influencer_roi_analyst"},
			{Keywords: []string{"attribution", "channel contribution", "기여도", "어트리뷰션"}, Agent: "attribution_analyst"},
		},
		"promotion_reviewer",
		c.newAgent("review_sentiment_analyst", statex.DivisionAnalytics, reviewSentimentAnalystPrompt),
		c.newAgent("promotion_reviewer", statex.DivisionAnalytics, promotionReviewerPrompt),
		c.newAgent("bundle_analyzer", statex.DivisionAnalytics, bundleAnalyzerPrompt),
		c.newAgent("margin_calculator", statex.DivisionAnalytics, marginCalculatorPrompt),
		c.newAgent("stockout_predictor", statex.DivisionAnalytics, stockoutPredictorPrompt),
		c.newAgent("influencer_roi_analyst", statex.DivisionAnalytics, influencerROIAnalystPrompt),
		c.newAgent("attribution_analyst", statex.DivisionAnalytics, attributionAnalystPrompt),
	)
}

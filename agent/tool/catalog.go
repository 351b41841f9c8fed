// Package tool declares the data-provider tool surface of every agent and
// the executor that invokes providers with timeout, retry, and recoverable
// degradation semantics.
package tool

import (
	"github.com/cloudwego/eino/schema"
)

func stringParam(desc string, required bool) *schema.ParameterInfo {
	return &schema.ParameterInfo{Type: schema.String, Desc: desc, Required: required}
}

func numberParam(desc string, required bool) *schema.ParameterInfo {
	return &schema.ParameterInfo{Type: schema.Number, Desc: desc, Required: required}
}

// catalog maps agent name to its tool declarations. Tool names double as
// provider lookup keys, so every entry here must have a matching provider
// registration.
var catalog = map[string][]*schema.ToolInfo{
	// Strategic Planning
	"promotion_planner": {
		{
			Name: "promotion.calendar",
			Desc: "Build a promotion calendar for a brand and quarter with recommended slots.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
				"quarter":  stringParam("Quarter such as Q1..Q4", false),
			}),
		},
		{
			Name: "promotion.templates",
			Desc: "Fetch promotion templates for a product category and season.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category": stringParam("Product category, e.g. sunscreen", false),
				"season":   stringParam("Season or period, e.g. summer", false),
			}),
		},
	},
	"timeline_manager": {
		{
			Name: "timeline.milestones",
			Desc: "List upcoming promotion milestones and deadlines for a brand.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},
	"budget_allocator": {
		{
			Name: "budget.allocation",
			Desc: "Propose a channel budget split with projected ROI per channel.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id":     stringParam("Brand identifier", true),
				"total_budget": numberParam("Total budget in KRW", false),
			}),
		},
	},

	// Market Intelligence
	"industry_news_scout": {
		{
			Name: "news.fetch",
			Desc: "Fetch recent K-beauty industry news articles.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category":  stringParam("News category filter", false),
				"days_back": numberParam("Look-back window in days", false),
			}),
		},
		{
			Name: "news.trending",
			Desc: "Detect trending topics across social and news sources.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"source": stringParam("Source filter: all, social, news, forums", false),
			}),
		},
	},
	"competitor_watcher": {
		{
			Name: "competitor.promotions",
			Desc: "List currently running competitor promotions.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand": stringParam("Competitor brand name", false),
			}),
		},
		{
			Name: "competitor.pricing",
			Desc: "Compare competitor pricing for a product segment.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"segment": stringParam("Product segment, e.g. toner", false),
			}),
		},
	},
	"ingredient_trend_analyst": {
		{
			Name: "ingredient.trends",
			Desc: "Report search and mention trends for a cosmetic ingredient.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"ingredient": stringParam("Ingredient name, e.g. retinol", false),
			}),
		},
	},
	"seasonal_pattern_analyst": {
		{
			Name: "seasonal.patterns",
			Desc: "Return seasonal demand patterns for a season or holiday window.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"season": stringParam("Season, e.g. summer, holiday", false),
			}),
		},
	},

	// Channel Management
	"oliveyoung_agent": {
		{
			Name: "oliveyoung.rankings",
			Desc: "Get Oliveyoung product rankings for a category.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category": stringParam("Product category", false),
			}),
		},
		{
			Name: "oliveyoung.deals",
			Desc: "List active Oliveyoung deals and promotion slots.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"deal_type": stringParam("Deal type: all, 1plus1, bundle, flash", false),
			}),
		},
	},
	"coupang_agent": {
		{
			Name: "coupang.rankings",
			Desc: "Get Coupang category rankings including Rocket delivery share.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category": stringParam("Product category", false),
			}),
		},
	},
	"naver_agent": {
		{
			Name: "naver.smartstore",
			Desc: "Get Naver SmartStore status and shopping rankings.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},
	"kakao_agent": {
		{
			Name: "kakao.gift",
			Desc: "Get Kakao Gift rankings and wish metrics.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"category": stringParam("Product category", false),
			}),
		},
	},
	"cross_channel_syncer": {
		{
			Name: "channels.status",
			Desc: "Report per-channel listing status for a brand.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
		{
			Name: "channels.price_consistency",
			Desc: "Check price consistency for a brand across channels.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},

	// Analytics
	"review_sentiment_analyst": {
		{
			Name: "sentiment.analyze",
			Desc: "Analyze review sentiment distribution for a product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": stringParam("Product identifier", false),
				"channel":    stringParam("Channel filter", false),
			}),
		},
		{
			Name: "sentiment.alerts",
			Desc: "List products with concerning sentiment trends.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},
	"promotion_reviewer": {
		{
			Name: "promotion.performance",
			Desc: "Report sales and conversion performance of a finished promotion.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"promotion_id": stringParam("Promotion identifier", false),
			}),
		},
	},
	"bundle_analyzer": {
		{
			Name: "bundle.candidates",
			Desc: "Suggest bundle and cross-sell candidates from co-purchase data.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},
	"margin_calculator": {
		{
			Name: "margin.simulate",
			Desc: "Simulate margin at a given discount level for a product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": stringParam("Product identifier", false),
				"discount":   numberParam("Discount percentage", false),
			}),
		},
	},
	"stockout_predictor": {
		{
			Name: "stockout.forecast",
			Desc: "Forecast stockout risk per SKU from sales velocity.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},
	"influencer_roi_analyst": {
		{
			Name: "influencer.roi",
			Desc: "Report ROI of influencer collaborations for a brand.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},
	"attribution_analyst": {
		{
			Name: "attribution.report",
			Desc: "Report per-channel contribution to conversions.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},

	// Operations
	"inventory_checker": {
		{
			Name: "inventory.status",
			Desc: "Get current inventory status across channels.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
				"channel":  stringParam("Optional channel filter", false),
			}),
		},
		{
			Name: "inventory.alerts",
			Desc: "List inventory alerts by severity.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
				"severity": stringParam("Severity filter: all, critical, warning", false),
			}),
		},
	},
	"price_monitor": {
		{
			Name: "price.violations",
			Desc: "List minimum-advertised-price violations by resellers.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand_id": stringParam("Brand identifier", true),
			}),
		},
	},
	"checklist_manager": {
		{
			Name: "checklist.validate",
			Desc: "Validate the pre-launch checklist for a promotion.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"promotion_id": stringParam("Promotion identifier", false),
			}),
		},
	},
}

// InfosForAgent returns the tool declarations of an agent, or nil for an
// agent with no tools.
func InfosForAgent(agentName string) []*schema.ToolInfo {
	return catalog[agentName]
}

// AgentNames lists every agent present in the catalog.
func AgentNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}

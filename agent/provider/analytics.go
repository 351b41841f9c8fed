package provider

func (g *MockGateway) registerAnalytics() {
	g.register("sentiment.analyze", func(args map[string]any) any {
		return map[string]any{
			"product_id":    stringArg(args, "product_id", "prod_001"),
			"channel":       stringArg(args, "channel", "all"),
			"total_reviews": 2450,
			"avg_rating":    4.6,
			"distribution": map[string]any{
				"positive": 0.77, "neutral": 0.15, "negative": 0.08,
			},
			"sentiment_score": 0.78,
			"top_themes": []map[string]any{
				{"theme": "순함/자극없음", "mentions": 420, "sentiment": 0.92},
				{"theme": "가성비", "mentions": 290, "sentiment": 0.90},
				{"theme": "용량부족", "mentions": 85, "sentiment": -0.65},
			},
		}
	})

	g.register("sentiment.alerts", func(args map[string]any) any {
		return []map[string]any{
			{
				"product":            "Retinol Night Cream",
				"current_sentiment":  0.45,
				"previous_sentiment": 0.68,
				"severity":           "high",
				"negative_themes":    []string{"자극", "발진"},
			},
		}
	})

	g.register("promotion.performance", func(args map[string]any) any {
		return map[string]any{
			"promotion_id":    stringArg(args, "promotion_id", "promo_2026_04"),
			"revenue":         182_000_000,
			"units_sold":      9400,
			"conversion_rate": 0.034,
			"vs_baseline":     map[string]any{"revenue_lift": 0.41, "traffic_lift": 0.27},
			"top_channel":     "oliveyoung",
		}
	})

	g.register("bundle.candidates", func(args map[string]any) any {
		return []map[string]any{
			{"products": []string{"sunscreen", "moisturizer"}, "lift": 1.8, "support": 0.12},
			{"products": []string{"cleanser", "toner"}, "lift": 1.5, "support": 0.09},
		}
	})

	g.register("margin.simulate", func(args map[string]any) any {
		discount := 20.0
		if v, ok := args["discount"].(float64); ok && v > 0 {
			discount = v
		}
		return map[string]any{
			"product_id":      stringArg(args, "product_id", "prod_001"),
			"discount_pct":    discount,
			"unit_price":      21900,
			"unit_cost":       8200,
			"margin_pct":      (21900*(1-discount/100) - 8200) / (21900 * (1 - discount/100)) * 100,
			"breakeven_units": 1250,
		}
	})

	g.register("stockout.forecast", func(args map[string]any) any {
		return []map[string]any{
			{"sku": "VCS-30ML-001", "days_of_supply": 34, "risk": "low"},
			{"sku": "RNC-50ML-003", "days_of_supply": 3, "risk": "critical", "action": "emergency restock"},
			{"sku": "SPF-50-007", "days_of_supply": 5, "risk": "critical", "action": "urgent restock"},
		}
	})

	g.register("influencer.roi", func(args map[string]any) any {
		return map[string]any{
			"brand_id": stringArg(args, "brand_id", "default_brand"),
			"campaigns": []map[string]any{
				{"creator": "beauty_kol_a", "spend": 20_000_000, "attributed_revenue": 58_000_000, "roi": 2.9},
				{"creator": "skincare_cr_b", "spend": 8_000_000, "attributed_revenue": 14_500_000, "roi": 1.8},
			},
			"best_platform": "tiktok",
		}
	})

	g.register("attribution.report", func(args map[string]any) any {
		return map[string]any{
			"brand_id": stringArg(args, "brand_id", "default_brand"),
			"model":    "last_touch",
			"contribution": map[string]any{
				"oliveyoung": 0.38, "coupang": 0.27, "naver": 0.22, "kakao": 0.13,
			},
		}
	})
}

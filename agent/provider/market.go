package provider

func (g *MockGateway) registerMarketIntelligence() {
	g.register("news.fetch", func(args map[string]any) any {
		return []map[string]any{
			{
				"id":              "news_001",
				"title":           "K-Beauty Export Hits Record $15B",
				"title_ko":        "K-뷰티 수출 150억 달러 돌파",
				"source":          "Korea Herald",
				"category":        "market",
				"sentiment":       "positive",
				"relevance_score": 0.9,
			},
			{
				"id":              "news_002",
				"title":           "New Sunscreen Regulations Take Effect in EU",
				"title_ko":        "EU 자외선차단제 신규 규정 시행",
				"source":          "Cosmetics Design",
				"category":        "regulation",
				"sentiment":       "neutral",
				"relevance_score": 0.7,
			},
		}
	})

	g.register("news.trending", func(args map[string]any) any {
		return []map[string]any{
			{
				"topic":               "Glass Skin 2.0",
				"mentions":            1250,
				"growth_rate":         0.35,
				"related_ingredients": []string{"hyaluronic acid", "niacinamide", "propolis"},
			},
			{
				"topic":               "Barrier Repair",
				"mentions":            980,
				"growth_rate":         0.28,
				"related_ingredients": []string{"ceramide", "centella", "panthenol"},
			},
		}
	})

	g.register("competitor.promotions", func(args map[string]any) any {
		return []map[string]any{
			{
				"brand":       stringArg(args, "brand", "Innisfree"),
				"promotion":   "Green Week",
				"discount":    "25%",
				"channels":    []string{"oliveyoung", "naver"},
				"valid_until": "2026-05-10",
			},
			{
				"brand":       "Laneige",
				"promotion":   "Hydration Festa",
				"discount":    "20%",
				"channels":    []string{"coupang"},
				"valid_until": "2026-05-03",
			},
		}
	})

	g.register("competitor.pricing", func(args map[string]any) any {
		segment := stringArg(args, "segment", "toner")
		return map[string]any{
			"segment": segment,
			"entries": []map[string]any{
				{"brand": "Round Lab", "product": "Dokdo Toner", "price": 18500, "discount": "20%"},
				{"brand": "COSRX", "product": "Snail 96 Mucin", "price": 14000, "discount": "22%"},
				{"brand": "Anua", "product": "Heartleaf Toner", "price": 19800, "discount": "21%"},
			},
			"median_price": 18500,
		}
	})

	g.register("ingredient.trends", func(args map[string]any) any {
		ingredient := stringArg(args, "ingredient", "retinol")
		return map[string]any{
			"ingredient":        ingredient,
			"search_growth_30d": 0.18,
			"mention_growth":    0.22,
			"lifecycle_stage":   "growth",
			"related":           []string{"bakuchiol", "peptide"},
		}
	})

	g.register("seasonal.patterns", func(args map[string]any) any {
		season := stringArg(args, "season", "summer")
		return map[string]any{
			"season":       season,
			"peak_months":  []string{"May", "June", "July"},
			"top_segments": []string{"sunscreen", "soothing gel", "mist"},
			"demand_index": 1.42,
			"notes":        "UV products peak ahead of the holiday window",
		}
	})
}

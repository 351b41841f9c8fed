package provider

func (g *MockGateway) registerStrategicPlanning() {
	g.register("promotion.calendar", func(args map[string]any) any {
		brandID := stringArg(args, "brand_id", "default_brand")
		quarter := stringArg(args, "quarter", "Q2")
		return map[string]any{
			"calendar_id": "cal_" + brandID + "_" + quarter,
			"quarter":     quarter,
			"slots": []map[string]any{
				{
					"date":        "2026-04-15",
					"type":        "flash_sale",
					"channels":    []string{"oliveyoung", "coupang"},
					"recommended": true,
				},
				{
					"date":        "2026-05-01",
					"type":        "seasonal_campaign",
					"channels":    []string{"all"},
					"recommended": true,
				},
			},
			"status": "draft",
		}
	})

	g.register("promotion.templates", func(args map[string]any) any {
		category := stringArg(args, "category", "skincare")
		season := stringArg(args, "season", "summer")
		return []map[string]any{
			{
				"name":              "UV Protection Campaign",
				"category":          category,
				"season":            season,
				"duration_days":     14,
				"discount_range":    "15-25%",
				"bundle_suggestion": "sunscreen + moisturizer",
			},
			{
				"name":              "Seasonal Refresh",
				"category":          category,
				"season":            season,
				"duration_days":     10,
				"discount_range":    "10-20%",
				"bundle_suggestion": "cleanser + toner + moisturizer",
			},
		}
	})

	g.register("timeline.milestones", func(args map[string]any) any {
		return map[string]any{
			"brand_id": stringArg(args, "brand_id", "default_brand"),
			"milestones": []map[string]any{
				{"name": "Creative assets due", "date": "2026-04-01", "status": "on_track"},
				{"name": "Inventory commitment", "date": "2026-04-08", "status": "at_risk"},
				{"name": "Channel slot confirmation", "date": "2026-04-10", "status": "pending"},
			},
			"next_deadline": "2026-04-01",
		}
	})

	g.register("budget.allocation", func(args map[string]any) any {
		total := 500_000_000.0
		if v, ok := args["total_budget"].(float64); ok && v > 0 {
			total = v
		}
		return map[string]any{
			"brand_id":     stringArg(args, "brand_id", "default_brand"),
			"total_budget": total,
			"allocation": []map[string]any{
				{"channel": "oliveyoung", "share": 0.35, "projected_roi": 2.4},
				{"channel": "coupang", "share": 0.30, "projected_roi": 2.1},
				{"channel": "naver", "share": 0.20, "projected_roi": 1.8},
				{"channel": "kakao", "share": 0.15, "projected_roi": 1.5},
			},
			"reserve_share": 0.05,
		}
	})
}

package provider

func (g *MockGateway) registerOperations() {
	g.register("inventory.status", func(args map[string]any) any {
		return map[string]any{
			"brand_id":        stringArg(args, "brand_id", "default_brand"),
			"total_sku_count": 45,
			"summary": map[string]any{
				"total_units": 125000,
				"healthy":     32,
				"low_stock":   8,
				"critical":    3,
				"out_of_stock": 2,
			},
			"by_channel": map[string]any{
				"oliveyoung": map[string]any{"total_units": 42000, "critical": 2},
				"coupang":    map[string]any{"total_units": 38000, "critical": 3},
				"naver":      map[string]any{"total_units": 28000, "critical": 2},
				"kakao":      map[string]any{"total_units": 17000, "critical": 1},
			},
		}
	})

	g.register("inventory.alerts", func(args map[string]any) any {
		severity := stringArg(args, "severity", "all")
		alerts := []map[string]any{
			{
				"alert_id": "inv_alert_001",
				"severity": "critical",
				"product":  "Retinol Night Cream 50ml",
				"channel":  "oliveyoung",
				"days_of_supply": 3,
				"action":   "Emergency restock",
			},
			{
				"alert_id": "inv_alert_002",
				"severity": "critical",
				"product":  "SPF50 Sunscreen",
				"channel":  "coupang",
				"days_of_supply": 5,
				"action":   "Urgent restock for Rocket delivery",
			},
			{
				"alert_id": "inv_alert_003",
				"severity": "warning",
				"product":  "Vitamin C Serum 30ml",
				"channel":  "naver",
				"days_of_supply": 12,
				"action":   "Schedule reorder",
			},
		}
		if severity == "all" {
			return alerts
		}
		filtered := make([]map[string]any, 0, len(alerts))
		for _, a := range alerts {
			if a["severity"] == severity {
				filtered = append(filtered, a)
			}
		}
		return filtered
	})

	g.register("price.violations", func(args map[string]any) any {
		return []map[string]any{
			{
				"product":   "Vitamin C Serum 30ml",
				"map_price": 21900,
				"observed":  18500,
				"reseller":  "unauthorized_store_77",
				"channel":   "naver",
				"severity":  "high",
			},
		}
	})

	g.register("checklist.validate", func(args map[string]any) any {
		return map[string]any{
			"promotion_id": stringArg(args, "promotion_id", "promo_2026_05"),
			"items": []map[string]any{
				{"item": "Inventory commitment", "status": "done"},
				{"item": "Marketing fee payment", "status": "pending"},
				{"item": "Creative assets", "status": "done"},
				{"item": "Channel slot confirmation", "status": "pending"},
			},
			"ready": false,
			"blocking_items": []string{"Marketing fee payment", "Channel slot confirmation"},
		}
	})
}

package provider

func (g *MockGateway) registerChannelManagement() {
	g.register("oliveyoung.rankings", func(args map[string]any) any {
		category := stringArg(args, "category", "skincare")
		return []map[string]any{
			{"rank": 1, "product": "Round Lab Dokdo Toner", "brand": "Round Lab", "price": 18500, "rating": 4.8, "category": category},
			{"rank": 2, "product": "COSRX Advanced Snail 96 Mucin", "brand": "COSRX", "price": 14000, "rating": 4.9, "category": category},
			{"rank": 3, "product": "Anua Heartleaf Cleansing Oil", "brand": "Anua", "price": 19800, "rating": 4.7, "category": category},
		}
	})

	g.register("oliveyoung.deals", func(args map[string]any) any {
		return []map[string]any{
			{"deal_id": "deal_001", "deal_type": "1plus1", "brand": "Some By Mi", "discount": "50%", "valid_until": "2026-05-15"},
			{"deal_id": "deal_002", "deal_type": "bundle", "brand": "Dr.Jart+", "discount": "30%", "valid_until": "2026-05-10"},
			{"deal_id": "deal_003", "deal_type": "flash", "brand": "Torriden", "discount": "40%", "valid_until": "2026-05-02"},
		}
	})

	g.register("coupang.rankings", func(args map[string]any) any {
		category := stringArg(args, "category", "skincare")
		return map[string]any{
			"category":     category,
			"rocket_share": 0.68,
			"top_products": []map[string]any{
				{"rank": 1, "product": "SPF50 Sunscreen", "price": 15900, "rocket": true},
				{"rank": 2, "product": "Vitamin C Serum", "price": 21900, "rocket": true},
			},
		}
	})

	g.register("naver.smartstore", func(args map[string]any) any {
		return map[string]any{
			"brand_id":       stringArg(args, "brand_id", "default_brand"),
			"store_status":   "active",
			"shopping_live":  map[string]any{"next_slot": "2026-05-07", "expected_reach": 12000},
			"search_ranking": []map[string]any{{"keyword": "선크림", "position": 4}, {"keyword": "토너", "position": 7}},
		}
	})

	g.register("kakao.gift", func(args map[string]any) any {
		category := stringArg(args, "category", "skincare")
		return map[string]any{
			"category": category,
			"rankings": []map[string]any{
				{"rank": 1, "product": "Hand Cream Set", "wish_count": 8200},
				{"rank": 2, "product": "Lip Balm Duo", "wish_count": 6100},
			},
		}
	})

	g.register("channels.status", func(args map[string]any) any {
		return map[string]any{
			"brand_id": stringArg(args, "brand_id", "default_brand"),
			"channels": map[string]any{
				"oliveyoung": map[string]any{"online": true, "listings": 42, "issues": 0},
				"coupang":    map[string]any{"online": true, "listings": 38, "issues": 1},
				"naver":      map[string]any{"online": true, "listings": 35, "issues": 0},
				"kakao":      map[string]any{"online": false, "listings": 12, "issues": 2},
			},
		}
	})

	g.register("channels.price_consistency", func(args map[string]any) any {
		return map[string]any{
			"brand_id":   stringArg(args, "brand_id", "default_brand"),
			"consistent": false,
			"mismatches": []map[string]any{
				{
					"product":  "Vitamin C Serum 30ml",
					"expected": 21900,
					"observed": map[string]any{"oliveyoung": 21900, "coupang": 19900, "naver": 21900},
				},
			},
		}
	})
}

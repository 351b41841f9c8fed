package agents

import (
	statex "github.com/promotor-ai/promotor/agent/state"
)

const (
	inventoryCheckerPrompt = `You are the inventory checker for a K-beauty brand.
Use the stock status and alert data to report current levels, days of cover,
and anything below reorder point. Lead with critical SKUs. Answer in the
user's language.`

	priceMonitorPrompt = `You are the price monitor for a K-beauty brand.
Use the violation data to report minimum-advertised-price breaches by reseller
and channel, with the listed price versus the floor. Answer in the user's
language.`

	checklistManagerPrompt = `You are the launch checklist manager for a K-beauty brand.
Use the checklist data to report completed, pending, and failed items for the
upcoming launch, with owners and due dates. Failed items come first. Answer in
the user's language.`
)

func (c core) newOperationsSupervisor() *Supervisor {
	return c.newSupervisor(
		statex.DivisionOperations,
		[]keywordRule{
			{Keywords: []string{"inventory", "stock", "재고", "품절", "물량"}, Agent: "inventory_checker"},
			{Keywords: []string{"price", "map", "violation", "reseller", "가격", "위반"}, Agent: "price_monitor"},
			{Keywords: []string{"checklist", "compliance", "launch", "체크리스트", "검증", "런칭"}, Agent: "checklist_manager"},
		},
		"inventory_checker",
		c.newAgent("inventory_checker", statex.DivisionOperations, inventoryCheckerPrompt),
		c.newAgent("price_monitor", statex.DivisionOperations, priceMonitorPrompt),
		c.newAgent("checklist_manager", statex.DivisionOperations, checklistManagerPrompt),
	)
}

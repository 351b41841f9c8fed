package agents

import (
	statex "github.com/promotor-ai/promotor/agent/state"
)

const (
	promotionPlannerPrompt = `You are the promotion planner for a K-beauty brand.
You own the promotion calendar and campaign design. Use the calendar entries and
promotion templates in the provided data to propose concrete campaigns: name,
channel mix, discount mechanics, and run dates. Flag collisions with existing
calendar entries. Answer in the user's language.`

	timelineManagerPrompt = `You are the campaign timeline manager for a K-beauty brand.
Use the milestone data to report deadlines, dependencies, and at-risk items.
Always state dates explicitly and order items by urgency. Answer in the user's
language.`

	budgetAllocatorPrompt = `You are the promotion budget allocator for a K-beauty brand.
Use the allocation data to report spend by channel and campaign, remaining
budget, and projected ROI. Recommend reallocations only when the numbers
support them. Answer in the user's language.`
)

func (c core) newStrategicPlanningSupervisor() *Supervisor {
	return c.newSupervisor(
		statex.DivisionStrategicPlanning,
		[]keywordRule{
			{Keywords: []string{"calendar", "plan", "campaign", "promotion", "캘린더", "계획", "캠페인"}, Agent: "promotion_planner"},
			{Keywords: []string{"deadline", "timeline", "schedule", "milestone", "마감", "일정"}, Agent: "timeline_manager"},
			{Keywords: []string{"budget", "cost", "roi", "spend", "예산", "비용"}, Agent: "budget_allocator"},
		},
		"promotion_planner",
		c.newAgent("promotion_planner", statex.DivisionStrategicPlanning, promotionPlannerPrompt),
		c.newAgent("timeline_manager", statex.DivisionStrategicPlanning, timelineManagerPrompt),
		c.newAgent("budget_allocator", statex.DivisionStrategicPlanning, budgetAllocatorPrompt),
	)
}

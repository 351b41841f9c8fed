package prompt

import (
	_ "embed"
	"strings"

	statex "github.com/promotor-ai/promotor/agent/state"
)

var (
	//go:embed template/strategic_planning.txt
	strategicPlanningRaw string

	//go:embed template/market_intelligence.txt
	marketIntelligenceRaw string

	//go:embed template/channel_management.txt
	channelManagementRaw string

	//go:embed template/analytics.txt
	analyticsRaw string

	//go:embed template/operations.txt
	operationsRaw string
)

// PromptSet holds the per-division supervisor prompts.
type PromptSet struct {
	Supervisors map[statex.Division]string
}

// LoadPromptSet returns the embedded prompt set with trimmed content. Safe
// to call concurrently; the embed is compile-time.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Supervisors: map[statex.Division]string{
			statex.DivisionStrategicPlanning:  strings.TrimSpace(strategicPlanningRaw),
			statex.DivisionMarketIntelligence: strings.TrimSpace(marketIntelligenceRaw),
			statex.DivisionChannelManagement:  strings.TrimSpace(channelManagementRaw),
			statex.DivisionAnalytics:          strings.TrimSpace(analyticsRaw),
			statex.DivisionOperations:         strings.TrimSpace(operationsRaw),
		},
	}
}

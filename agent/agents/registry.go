package agents

import (
	"github.com/rs/zerolog"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	promptx "github.com/promotor-ai/promotor/agent/prompt"
	statex "github.com/promotor-ai/promotor/agent/state"
	toolx "github.com/promotor-ai/promotor/agent/tool"
)

// Deps are the shared capabilities every agent is built from. Full serves
// tier3_full traffic, Mini serves tier2_cheap; tier1_free never touches a
// model.
type Deps struct {
	Full     contractx.Completer
	Mini     contractx.Completer
	Provider contractx.DataProvider
	Log      zerolog.Logger
}

// Registry holds the full agent org: one supervisor per division. Built
// once at startup and shared read-only.
type Registry struct {
	supervisors map[statex.Division]*Supervisor
}

func NewRegistry(d Deps) *Registry {
	prompts := promptx.LoadPromptSet()
	c := core{
		full:    d.Full,
		mini:    d.Mini,
		exec:    toolx.NewExecutor(d.Provider, d.Log),
		log:     d.Log,
		prompts: prompts,
	}

	return &Registry{
		supervisors: map[statex.Division]*Supervisor{
			statex.DivisionStrategicPlanning:  c.newStrategicPlanningSupervisor(),
			statex.DivisionMarketIntelligence: c.newMarketIntelligenceSupervisor(),
			statex.DivisionChannelManagement:  c.newChannelManagementSupervisor(),
			statex.DivisionAnalytics:          c.newAnalyticsSupervisor(),
			statex.DivisionOperations:         c.newOperationsSupervisor(),
		},
	}
}

// Supervisor returns the supervisor owning a division.
func (r *Registry) Supervisor(d statex.Division) (*Supervisor, bool) {
	s, ok := r.supervisors[d]
	return s, ok
}

// core carries the shared wiring while the division rosters are built.
type core struct {
	full    contractx.Completer
	mini    contractx.Completer
	exec    *toolx.Executor
	log     zerolog.Logger
	prompts promptx.PromptSet
}

func (c core) newAgent(name string, division statex.Division, systemPrompt string) *Agent {
	return &Agent{
		name:         name,
		division:     division,
		systemPrompt: systemPrompt,
		executor:     c.exec,
		full:         c.full,
		mini:         c.mini,
		log:          c.log,
	}
}

func (c core) newSupervisor(
	division statex.Division,
	rules []keywordRule,
	defaultAgent string,
	agents ...*Agent,
) *Supervisor {
	byName := make(map[string]*Agent, len(agents))
	for _, a := range agents {
		byName[a.name] = a
	}
	return &Supervisor{
		name:         string(division) + "_supervisor",
		division:     division,
		systemPrompt: c.prompts.Supervisors[division],
		agents:       byName,
		rules:        rules,
		defaultAgent: defaultAgent,
		full:         c.full,
		mini:         c.mini,
		log:          c.log,
	}
}

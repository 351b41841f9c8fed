package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	"github.com/promotor-ai/promotor/agent/routing"
	statex "github.com/promotor-ai/promotor/agent/state"
)

// keywordRule sends a query containing any of its keywords to one agent.
// Rules are checked in declaration order; the first hit wins.
type keywordRule struct {
	Keywords []string
	Agent    string
}

// Supervisor owns one division's agents. It routes each request to a leaf
// agent by task ownership first, then by division-local keywords, then to
// the division default. When the chosen agent is unknown the supervisor
// answers directly with its own prompt.
type Supervisor struct {
	name         string
	division     statex.Division
	systemPrompt string
	agents       map[string]*Agent
	rules        []keywordRule
	defaultAgent string
	full         contractx.Completer
	mini         contractx.Completer
	log          zerolog.Logger
}

var (
	_ contractx.Processor   = (*Supervisor)(nil)
	_ contractx.AgentRouter = (*Supervisor)(nil)
)

func (s *Supervisor) Name() string { return s.name }

func (s *Supervisor) Division() statex.Division { return s.division }

// AgentNames lists the supervisor's agents. Order is not guaranteed;
// used by diagnostics only.
func (s *Supervisor) AgentNames() []string {
	out := make([]string, 0, len(s.agents))
	for name := range s.agents {
		out = append(out, name)
	}
	return out
}

// RouteTo picks the agent name for a request. Classified tasks with a
// dedicated owner short-circuit; everything else falls through to the
// keyword rules and then the division default.
func (s *Supervisor) RouteTo(st statex.ProcessingState) string {
	if owner := routing.AgentForTask(s.division, st.TaskType); owner != "supervisor" {
		if _, ok := s.agents[owner]; ok {
			return owner
		}
	}

	query, _ := st.LastUserMessage()
	queryLower := strings.ToLower(query)
	for _, rule := range s.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(queryLower, kw) {
				return rule.Agent
			}
		}
	}
	return s.defaultAgent
}

func (s *Supervisor) Process(ctx context.Context, st statex.ProcessingState) (statex.DivisionResult, error) {
	name := s.RouteTo(st)
	agent, ok := s.agents[name]
	if !ok {
		s.log.Warn().
			Str("supervisor", s.name).
			Str("agent", name).
			Msg("routed to unknown agent, answering directly")
		return s.answerDirectly(ctx, st)
	}

	s.log.Info().
		Str("supervisor", s.name).
		Str("agent", name).
		Str("task", string(st.TaskType)).
		Msg("delegating to agent")
	return agent.Process(ctx, st)
}

// answerDirectly handles requests no agent claims: the supervisor's own
// model turn with no tool data.
func (s *Supervisor) answerDirectly(ctx context.Context, st statex.ProcessingState) (statex.DivisionResult, error) {
	query, ok := st.LastUserMessage()
	if !ok {
		return statex.DivisionResult{}, contractx.ErrNoMessages
	}

	completer := s.full
	if st.Tier == statex.TierCheap && s.mini != nil {
		completer = s.mini
	}
	if completer == nil {
		return statex.DivisionResult{}, fmt.Errorf("%w: no model for tier %s", contractx.ErrModelInvoke, st.Tier)
	}

	summary, err := completer.Complete(ctx, s.systemPrompt, []statex.Message{
		{Role: statex.RoleUser, Content: query},
	})
	if err != nil {
		return statex.DivisionResult{}, fmt.Errorf("supervisor %s: %w", s.name, err)
	}

	return statex.DivisionResult{
		Division:  s.division,
		AgentName: s.name,
		Summary:   summary,
		Success:   true,
		Timestamp: time.Now().UTC(),
	}, nil
}

package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	statex "github.com/promotor-ai/promotor/agent/state"
	toolx "github.com/promotor-ai/promotor/agent/tool"
)

// Agent is a leaf worker: it owns a fixed tool set, gathers data through
// the executor, and turns the data into an answer. On tier1_free the
// answer is rendered directly from the tool data without any model call.
type Agent struct {
	name         string
	division     statex.Division
	systemPrompt string
	executor     *toolx.Executor
	full         contractx.Completer
	mini         contractx.Completer
	log          zerolog.Logger
}

var _ contractx.Processor = (*Agent)(nil)

func (a *Agent) Name() string { return a.name }

func (a *Agent) Division() statex.Division { return a.division }

func (a *Agent) Process(ctx context.Context, st statex.ProcessingState) (statex.DivisionResult, error) {
	query, ok := st.LastUserMessage()
	if !ok {
		return statex.DivisionResult{}, contractx.ErrNoMessages
	}

	args := map[string]any{
		"query":    query,
		"brand_id": st.BrandID,
		"channels": channelStrings(st.ActiveChannels),
	}
	toolResults := a.executor.Execute(ctx, toolx.InfosForAgent(a.name), args)

	a.log.Debug().
		Str("agent", a.name).
		Str("division", string(a.division)).
		Str("tier", string(st.Tier)).
		Int("tools", len(toolResults)).
		Msg("agent processing")

	summary, err := a.summarize(ctx, st, query, toolResults)
	if err != nil {
		return statex.DivisionResult{}, fmt.Errorf("agent %s: %w", a.name, err)
	}

	return statex.DivisionResult{
		Division:    a.division,
		AgentName:   a.name,
		Summary:     summary,
		ToolResults: toolResults,
		Success:     true,
		Timestamp:   time.Now().UTC(),
	}, nil
}

func (a *Agent) summarize(
	ctx context.Context,
	st statex.ProcessingState,
	query string,
	toolResults []statex.ToolResult,
) (string, error) {
	if st.Tier == statex.TierFree {
		return renderDataSummary(a.name, toolResults), nil
	}

	completer := a.full
	if st.Tier == statex.TierCheap && a.mini != nil {
		completer = a.mini
	}
	if completer == nil {
		return "", fmt.Errorf("%w: no model for tier %s", contractx.ErrModelInvoke, st.Tier)
	}

	history := []statex.Message{{
		Role:    statex.RoleUser,
		Content: renderAgentInput(query, toolResults),
	}}
	return completer.Complete(ctx, a.systemPrompt, history)
}

// renderAgentInput packs the user question and the gathered tool data into
// a single user turn for the model.
func renderAgentInput(query string, toolResults []statex.ToolResult) string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(query)
	if len(toolResults) == 0 {
		return b.String()
	}

	b.WriteString("\n\nAvailable data:\n")
	for _, tr := range toolResults {
		b.WriteString("- ")
		b.WriteString(tr.Tool)
		b.WriteString(": ")
		if tr.Error != "" {
			b.WriteString("unavailable (")
			b.WriteString(tr.Error)
			b.WriteString(")")
		} else {
			b.WriteString(compactJSON(tr.Result))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderDataSummary is the tier1_free path: a plain status rendering of
// the tool data with no model involved.
func renderDataSummary(agent string, toolResults []statex.ToolResult) string {
	if len(toolResults) == 0 {
		return fmt.Sprintf("%s has no data for this request.", agent)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Status report from %s:\n", agent)
	for _, tr := range toolResults {
		if tr.Error != "" {
			fmt.Fprintf(&b, "- %s: data unavailable (%s)\n", tr.Tool, tr.Error)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", tr.Tool, compactJSON(tr.Result))
	}
	return strings.TrimRight(b.String(), "\n")
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}

func channelStrings(channels []statex.Channel) []string {
	out := make([]string, 0, len(channels))
	for _, c := range channels {
		out = append(out, string(c))
	}
	return out
}

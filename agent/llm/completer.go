package llm

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/promotor-ai/promotor/agent/contract"
	statex "github.com/promotor-ai/promotor/agent/state"
)

// Client adapts a chat model into the contract.Completer capability via a
// compiled prompt->model pipeline. One Client is built per tier at startup
// and shared by every agent on that tier.
type Client struct {
	runner compose.Runnable[map[string]any, *schema.Message]
}

var _ contractx.Completer = (*Client)(nil)

func NewClient(ctx context.Context, chatModel einomodel.BaseChatModel) (*Client, error) {
	runner, err := compileCompletionGraph(ctx, chatModel)
	if err != nil {
		return nil, fmt.Errorf("%w: compile completion graph: %v", contractx.ErrModelInvoke, err)
	}
	return &Client{runner: runner}, nil
}

func compileCompletionGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
) (compose.Runnable[map[string]any, *schema.Message], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system_prompt}"),
		schema.MessagesPlaceholder("history", false),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add completion prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add completion model node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add completion edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add completion edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", compose.END); err != nil {
		return nil, fmt.Errorf("add completion edge model->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("promotor.completion_graph"))
	if err != nil {
		return nil, fmt.Errorf("compile completion graph: %w", err)
	}
	return runner, nil
}

func (c *Client) Complete(ctx context.Context, systemPrompt string, history []statex.Message) (string, error) {
	msgs := make([]*schema.Message, 0, len(history))
	for _, m := range history {
		switch m.Role {
		case statex.RoleUser:
			msgs = append(msgs, schema.UserMessage(m.Content))
		case statex.RoleAssistant:
			msgs = append(msgs, schema.AssistantMessage(m.Content, nil))
		case statex.RoleSystem:
			msgs = append(msgs, schema.SystemMessage(m.Content))
		}
	}

	out, err := c.runner.Invoke(ctx, map[string]any{
		"system_prompt": systemPrompt,
		"history":       msgs,
	})
	if err != nil {
		return "", fmt.Errorf("%w: completion invoke: %v", contractx.ErrModelInvoke, err)
	}
	if out == nil {
		return "", fmt.Errorf("%w: empty completion response", contractx.ErrSchemaViolation)
	}

	content := strings.TrimSpace(out.Content)
	if content == "" {
		return "", fmt.Errorf("%w: completion content is empty", contractx.ErrSchemaViolation)
	}
	return content, nil
}

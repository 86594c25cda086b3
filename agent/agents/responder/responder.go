// Package responder implements the model-backed persona: one compiled
// eino graph (chat template -> chat model) per descriptor.
package responder

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/solacechat/solace/agent/contract"
	personax "github.com/solacechat/solace/agent/persona"
)

// contentFilterSignature is the substring Azure OpenAI embeds in
// content-policy rejections.
const contentFilterSignature = "content_filter"

type Responder struct {
	name   string
	runner compose.Runnable[map[string]any, *schema.Message]
}

var _ contractx.Responder = (*Responder)(nil)

func New(ctx context.Context, desc personax.Descriptor, chatModel einomodel.BaseChatModel) (*Responder, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is nil for persona %s", contractx.ErrValidation, desc.Name)
	}

	runner, err := compileRespondGraph(ctx, chatModel, desc.SystemPrompt, "persona."+desc.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: compile respond graph for %s: %v", contractx.ErrModelInvoke, desc.Name, err)
	}

	return &Responder{name: desc.Name, runner: runner}, nil
}

// Name returns the persona name this responder is bound to.
func (r *Responder) Name() string {
	return r.name
}

func (r *Responder) Respond(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt is empty", contractx.ErrValidation)
	}

	msg, err := r.runner.Invoke(ctx, map[string]any{"input": prompt})
	if err != nil {
		return "", classifyProviderError(r.name, err)
	}
	if msg == nil {
		return "", fmt.Errorf("%w: persona %s returned nil message", contractx.ErrSchemaViolation, r.name)
	}

	content := strings.TrimSpace(msg.Content)
	if content == "" {
		return "", fmt.Errorf("%w: persona %s returned empty reply", contractx.ErrSchemaViolation, r.name)
	}
	return content, nil
}

// classifyProviderError translates a raw provider failure into the
// typed taxonomy: content-filter rejections are distinguished so the
// service boundary can answer with the fixed apology.
func classifyProviderError(name string, err error) error {
	if strings.Contains(err.Error(), contentFilterSignature) {
		return fmt.Errorf("%w: persona %s: %v", contractx.ErrContentPolicy, name, err)
	}
	return fmt.Errorf("%w: persona %s: %v", contractx.ErrModelInvoke, name, err)
}

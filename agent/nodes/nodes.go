// Package nodes holds the lambda node functions and shared state of the
// orchestrator graph. Each node takes the graph state, does one step,
// and hands the state on.
package nodes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/solacechat/solace/agent/contract"
)

var (
	ErrInvalidMessage = errors.New("message is empty")
	ErrInvalidThread  = errors.New("thread id is empty")
)

type GraphInput struct {
	ThreadID string
	Text     string
}

type GraphOutput struct {
	Reply  string
	Routed string
}

type GraphState struct {
	ThreadID string
	Text     string

	Label     string
	AgentName string
	Agent     contractx.Responder

	Reply string
}

// Resolver is the registry view the graph needs: lookup plus the
// vocabulary for validation.
type Resolver interface {
	Resolve(name string) (contractx.Responder, bool)
	Names() []string
}

func ValidateRequest(in GraphInput) (*GraphState, error) {
	threadID := strings.TrimSpace(in.ThreadID)
	if threadID == "" {
		return nil, ErrInvalidThread
	}
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrInvalidMessage
	}
	return &GraphState{ThreadID: threadID, Text: text}, nil
}

func ClassifyIntent(ctx context.Context, in *GraphState, cls contractx.Classifier) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	label, err := cls.Classify(ctx, in.Text)
	if err != nil {
		return nil, err
	}
	in.Label = label
	return in, nil
}

// ResolveAgent maps the classifier label onto a registered responder.
// An unrecognized label routes to the default agent; with no default
// the request is unroutable.
func ResolveAgent(in *GraphState, registry Resolver, defaultAgent string) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if agent, ok := registry.Resolve(in.Label); ok {
		in.AgentName = in.Label
		in.Agent = agent
		return in, nil
	}

	if defaultAgent == "" {
		return nil, fmt.Errorf("%w: label=%q and no default agent", contractx.ErrNoAgentAvailable, in.Label)
	}

	agent, ok := registry.Resolve(defaultAgent)
	if !ok {
		return nil, fmt.Errorf("%w: default agent %q is not registered", contractx.ErrNoAgentAvailable, defaultAgent)
	}

	log.Debug().
		Str("thread_id", in.ThreadID).
		Str("label", in.Label).
		Str("default", defaultAgent).
		Msg("unrecognized classification label, routing to default agent")

	in.AgentName = defaultAgent
	in.Agent = agent
	return in, nil
}

func InvokeAgent(ctx context.Context, in *GraphState) (*GraphState, error) {
	if in == nil || in.Agent == nil {
		return nil, fmt.Errorf("%w: no resolved agent", contractx.ErrValidation)
	}

	reply, err := in.Agent.Respond(ctx, in.Text)
	if err != nil {
		return nil, err
	}
	in.Reply = reply
	return in, nil
}

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: agent %s returned empty reply", contractx.ErrSchemaViolation, in.AgentName)
	}
	return GraphOutput{Reply: reply, Routed: in.AgentName}, nil
}

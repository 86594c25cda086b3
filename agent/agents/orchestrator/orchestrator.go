// Package orchestrator turns a classification into a routed persona
// invocation: classify, resolve against the registry (default on
// unrecognized labels), invoke, return the reply.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"

	contractx "github.com/solacechat/solace/agent/contract"
	nodex "github.com/solacechat/solace/agent/nodes"
)

var (
	ErrInvalidMessage = nodex.ErrInvalidMessage
	ErrInvalidThread  = nodex.ErrInvalidThread
)

type Config struct {
	// DefaultAgent answers when the classifier's label is not a
	// registered name. Empty is permitted; unroutable requests then
	// surface ErrNoAgentAvailable.
	DefaultAgent string
}

type Orchestrator struct {
	classifier contractx.Classifier
	registry   *Registry

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	defaultAgent string
}

func New(classifier contractx.Classifier, registry *Registry, cfg Config) (*Orchestrator, error) {
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}
	if registry == nil || registry.Len() == 0 {
		return nil, errors.New("registry with at least one agent is required")
	}

	defaultAgent := strings.TrimSpace(cfg.DefaultAgent)
	if defaultAgent != "" {
		if _, ok := registry.Resolve(defaultAgent); !ok {
			return nil, fmt.Errorf("default agent %q is not registered", defaultAgent)
		}
	}

	o := &Orchestrator{
		classifier:   classifier,
		registry:     registry,
		defaultAgent: defaultAgent,
	}

	graphRunner, err := o.compileOrchestrateGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// Orchestrate routes one enriched message and returns the persona reply
// together with the persona name that produced it.
func (o *Orchestrator) Orchestrate(ctx context.Context, threadID string, enriched string) (contractx.ChatReply, error) {
	out, err := o.graphRunner.Invoke(ctx, nodex.GraphInput{
		ThreadID: threadID,
		Text:     enriched,
	})
	if err != nil {
		return contractx.ChatReply{}, err
	}
	return contractx.ChatReply{Reply: out.Reply, Routed: out.Routed}, nil
}

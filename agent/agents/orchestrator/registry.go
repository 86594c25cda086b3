package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	contractx "github.com/solacechat/solace/agent/contract"
)

// Registry maps persona names to their responders. Registration is
// append-only for the lifetime of one orchestrator; lookups never fail,
// they report "not found" so the caller can fall back.
type Registry struct {
	agents map[string]contractx.Responder
}

func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]contractx.Responder)}
}

func (r *Registry) Register(name string, agent contractx.Responder) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: agent name is empty", contractx.ErrValidation)
	}
	if agent == nil {
		return fmt.Errorf("%w: agent %s is nil", contractx.ErrValidation, name)
	}
	if _, exists := r.agents[name]; exists {
		return fmt.Errorf("%w: agent %s already registered", contractx.ErrValidation, name)
	}
	r.agents[name] = agent
	return nil
}

func (r *Registry) Resolve(name string) (contractx.Responder, bool) {
	agent, ok := r.agents[name]
	return agent, ok
}

// Names returns the registered names sorted, the classifier's valid
// output vocabulary.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.agents)
}

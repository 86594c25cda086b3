// Package persona defines the static configuration of the six support
// personas and the routing classifier. Prompts are embedded at compile
// time; the resource-navigation prompt is enriched with a best-effort
// location hint at startup.
package persona

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	contractx "github.com/solacechat/solace/agent/contract"
)

// Persona names double as registry keys and as the classifier's output
// vocabulary. They must stay in sync with the classifier prompt.
const (
	ActiveListening    = "active_listening_agent"
	GuidedCoping       = "guided_coping_agent"
	MultiDisciplinary  = "multi_disciplinary_agent"
	PrivacyGuard       = "privacy_guard_agent"
	ResourceNavigation = "resource_navigation_agent"
	CriticalCondition  = "critical_condition_agent"
	ClassifierName     = "classifier"
)

// DefaultAgent answers when classification cannot be resolved.
const DefaultAgent = ActiveListening

var (
	//go:embed template/active_listening.txt
	activeListeningRaw string

	//go:embed template/guided_coping.txt
	guidedCopingRaw string

	//go:embed template/multi_disciplinary.txt
	multiDisciplinaryRaw string

	//go:embed template/privacy_guard.txt
	privacyGuardRaw string

	//go:embed template/resource_navigation.txt
	resourceNavigationRaw string

	//go:embed template/critical_condition.txt
	criticalConditionRaw string

	//go:embed template/classifier.txt
	classifierRaw string
)

// Descriptor is the static configuration of one persona: the registry
// key, prompt, model selection, and sampling parameters.
type Descriptor struct {
	Name         string
	Description  string
	SystemPrompt string
	Model        string
	Temperature  float32
}

func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: persona name is empty", contractx.ErrValidation)
	}
	if strings.TrimSpace(d.SystemPrompt) == "" {
		return fmt.Errorf("%w: persona %s has no system prompt", contractx.ErrValidation, d.Name)
	}
	return nil
}

// Builtin returns the six conversational personas in registration
// order. The resource-navigation prompt is enriched with the location
// resolved by loc; lookup failure degrades to the plain prompt.
func Builtin(ctx context.Context, loc contractx.Locator) []Descriptor {
	return []Descriptor{
		{
			Name:         ActiveListening,
			Description:  "Active listening and emotional reflection for mental health support.",
			SystemPrompt: strings.TrimSpace(activeListeningRaw),
			Temperature:  0.7,
		},
		{
			Name:         GuidedCoping,
			Description:  "Mindfulness exercises, CBT techniques, and stress management strategies.",
			SystemPrompt: strings.TrimSpace(guidedCopingRaw),
			Temperature:  0.7,
		},
		{
			Name:         MultiDisciplinary,
			Description:  "Holistic insights across psychology, wellness, career coaching, and behavioral health.",
			SystemPrompt: strings.TrimSpace(multiDisciplinaryRaw),
			Temperature:  0.7,
		},
		{
			Name:         PrivacyGuard,
			Description:  "Ensures data privacy and upholds ethical guidelines.",
			SystemPrompt: strings.TrimSpace(privacyGuardRaw),
			Temperature:  0.7,
		},
		{
			Name:         ResourceNavigation,
			Description:  "Local support resources such as mental health NGOs, crisis helplines, and community programs.",
			SystemPrompt: resourceNavigationPrompt(ctx, loc),
			Temperature:  0.7,
		},
		{
			Name:         CriticalCondition,
			Description:  "Provides help when emotions are extreme.",
			SystemPrompt: strings.TrimSpace(criticalConditionRaw),
			Temperature:  0.7,
		},
	}
}

// Classifier returns the routing persona. Low temperature: the output
// must be a bare label, not prose.
func Classifier() Descriptor {
	return Descriptor{
		Name:         ClassifierName,
		Description:  "Task classifier for routing messages to appropriate mental health agents.",
		SystemPrompt: strings.TrimSpace(classifierRaw),
		Temperature:  0,
	}
}

// Names returns the routable persona names, the classifier's closed
// output vocabulary.
func Names() []string {
	return []string{
		ActiveListening,
		GuidedCoping,
		MultiDisciplinary,
		PrivacyGuard,
		ResourceNavigation,
		CriticalCondition,
	}
}

func resourceNavigationPrompt(ctx context.Context, loc contractx.Locator) string {
	prompt := strings.TrimSpace(resourceNavigationRaw)
	if loc == nil {
		return prompt
	}

	location, err := loc.Lookup(ctx)
	if err != nil || strings.TrimSpace(location) == "" {
		if err != nil {
			log.Warn().Err(err).Msg("location lookup failed, using plain resource prompt")
		}
		return prompt
	}

	return prompt + fmt.Sprintf(
		"\n\nBased on your connection, I estimate you might be in %s. "+
			"If this is incorrect or you'd like more specific resources, please provide your location.",
		strings.TrimSpace(location),
	)
}

package llm

import (
	"fmt"
	"strings"

	contractx "github.com/solacechat/solace/agent/contract"
	azurex "github.com/solacechat/solace/pkg/azureopenai"
)

// Role selects which model configuration a component runs with. The
// conversational personas share one configuration; the classifier and
// summarizer may be pinned to cheaper or stricter deployments.
type Role string

const (
	RolePersona    Role = "persona"
	RoleClassifier Role = "classifier"
	RoleSummarizer Role = "summarizer"
)

type Config struct {
	azurex.Config

	ClassifierModel       string  `envconfig:"CLASSIFIER_MODEL" split_words:"true"`
	ClassifierTemperature float32 `envconfig:"CLASSIFIER_TEMPERATURE" split_words:"true" default:"-1"`
	SummarizerModel       string  `envconfig:"SUMMARIZER_MODEL" split_words:"true"`
	SummarizerTemperature float32 `envconfig:"SUMMARIZER_TEMPERATURE" split_words:"true" default:"-1"`
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: azure api key is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("%w: azure endpoint is required", contractx.ErrValidation)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: default model is required", contractx.ErrValidation)
	}
	return nil
}

// AzureFor returns the Azure config for a role, applying any per-role
// model and temperature overrides on top of the shared settings.
func (c Config) AzureFor(role Role) azurex.Config {
	out := c.Config

	switch role {
	case RoleClassifier:
		if v := strings.TrimSpace(c.ClassifierModel); v != "" {
			out.Model = v
		}
		if c.ClassifierTemperature >= 0 {
			out.Temperature = c.ClassifierTemperature
		}
	case RoleSummarizer:
		if v := strings.TrimSpace(c.SummarizerModel); v != "" {
			out.Model = v
		}
		if c.SummarizerTemperature >= 0 {
			out.Temperature = c.SummarizerTemperature
		}
	}

	return out
}

// AzureForPersona pins the shared Azure config to one persona's model
// selection and sampling temperature.
func (c Config) AzureForPersona(model string, temperature float32) azurex.Config {
	out := c.Config
	if v := strings.TrimSpace(model); v != "" {
		out.Model = v
	}
	if temperature >= 0 {
		out.Temperature = temperature
	}
	return out
}

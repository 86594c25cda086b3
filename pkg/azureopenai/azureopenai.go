// Package azureopenai builds model clients against an Azure OpenAI
// deployment. Two flavors are exposed: an eino chat model for the
// persona graphs, and a raw SDK client for direct completion calls.
package azureopenai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openaimodel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
)

// ModelBuilder abstracts chat model construction so tests can swap in
// fakes without an Azure endpoint.
type ModelBuilder interface {
	New(ctx context.Context) (model.ToolCallingChatModel, error)
}

var _ ModelBuilder = (*Config)(nil)

type Config struct {
	Endpoint           string        `envconfig:"ENDPOINT" split_words:"true" required:"true"`
	APIKey             string        `envconfig:"API_KEY" split_words:"true" required:"true"`
	APIVersion         string        `envconfig:"API_VERSION" split_words:"true" default:"2024-12-01-preview"`
	Model              string        `envconfig:"MODEL" split_words:"true" default:"gpt-4o"`
	MaxCompletionToken *int          `envconfig:"MAX_COMPLETION_TOKEN" split_words:"true" default:"2000"`
	Temperature        float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.7"`
	Timeout            time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"60s"`
}

// New builds an eino chat model bound to the configured deployment.
func (c *Config) New(ctx context.Context) (model.ToolCallingChatModel, error) {
	conf := &openaimodel.ChatModelConfig{
		ByAzure:     true,
		BaseURL:     strings.TrimRight(strings.TrimSpace(c.Endpoint), "/"),
		APIKey:      strings.TrimSpace(c.APIKey),
		APIVersion:  strings.TrimSpace(c.APIVersion),
		Model:       strings.TrimSpace(c.Model),
		MaxTokens:   c.MaxCompletionToken,
		Temperature: &c.Temperature,
		Timeout:     c.Timeout,
	}

	m, err := openaimodel.NewChatModel(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("azureopenai: create chat model: %w", err)
	}
	return m, nil
}

// NewClient creates an OpenAI SDK client pointed at the Azure endpoint.
// Returns nil when no API key is configured.
func NewClient(cfg Config) *openaisdk.Client {
	apiKey := strings.TrimSpace(cfg.APIKey)
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if apiKey == "" || endpoint == "" {
		return nil
	}

	client := openaisdk.NewClient(
		azure.WithEndpoint(endpoint, strings.TrimSpace(cfg.APIVersion)),
		azure.WithAPIKey(apiKey),
	)
	return &client
}

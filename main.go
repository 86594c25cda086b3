package main

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	classifierx "github.com/solacechat/solace/agent/agents/classifier"
	orchestratorx "github.com/solacechat/solace/agent/agents/orchestrator"
	responderx "github.com/solacechat/solace/agent/agents/responder"
	contractx "github.com/solacechat/solace/agent/contract"
	llmx "github.com/solacechat/solace/agent/llm"
	memoryx "github.com/solacechat/solace/agent/memory"
	personax "github.com/solacechat/solace/agent/persona"
	servicex "github.com/solacechat/solace/agent/service"
	azurex "github.com/solacechat/solace/pkg/azureopenai"
	configx "github.com/solacechat/solace/pkg/config"
	geoipx "github.com/solacechat/solace/pkg/geoip"
	_ "github.com/solacechat/solace/pkg/logger/autoload"
	serverx "github.com/solacechat/solace/server"
)

type AppConfig struct {
	Addr string `envconfig:"ADDR" default:"127.0.0.1:8080"`

	// MemoryBackend selects the conversation log: memory, upstash, or postgres.
	MemoryBackend string `envconfig:"MEMORY_BACKEND" split_words:"true" default:"memory"`

	// ModelSummary switches the summarizer from the transcript formatter
	// to a model-backed condensation.
	ModelSummary    bool `envconfig:"MODEL_SUMMARY" split_words:"true" default:"false"`
	MaxSummaryTurns int  `envconfig:"MAX_SUMMARY_TURNS" split_words:"true" default:"20"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appCfg := configx.MustNew[AppConfig]("SOLACE")

	llmCfg := configx.MustNew[llmx.Config]("AZURE")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid llm config")
	}

	store, err := buildStore(ctx, appCfg.MemoryBackend)
	if err != nil {
		log.Fatal().Err(err).Msg("build message store")
	}

	summarizer, err := buildSummarizer(store, *llmCfg, appCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build summarizer")
	}

	orch, err := buildOrchestrator(ctx, *llmCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build orchestrator")
	}

	svc, err := servicex.New(store, summarizer, orch)
	if err != nil {
		log.Fatal().Err(err).Msg("build service")
	}

	srv := serverx.New(serverx.NewChatHandler(svc), serverx.NewHealthHandler(nil))
	if err := srv.Run(ctx, appCfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func buildStore(ctx context.Context, backend string) (contractx.MessageStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "memory":
		return memoryx.NewInMemoryStore(), nil
	case "upstash":
		cfg := configx.MustNew[memoryx.UpstashRedisConfig]("UPSTASH")
		return memoryx.NewUpstashRedisStore(*cfg)
	case "postgres":
		cfg := configx.MustNew[memoryx.PostgresConfig]("POSTGRES")
		store, err := memoryx.NewPostgresStore(*cfg)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown memory backend %q", backend)
	}
}

func buildSummarizer(store contractx.MessageStore, llmCfg llmx.Config, appCfg *AppConfig) (contractx.Summarizer, error) {
	if !appCfg.ModelSummary {
		return memoryx.NewTranscriptSummarizer(store, appCfg.MaxSummaryTurns), nil
	}

	summaryCfg := llmCfg.AzureFor(llmx.RoleSummarizer)
	client := azurex.NewClient(summaryCfg)
	if client == nil {
		return nil, fmt.Errorf("summary model requested but azure client could not be built")
	}
	return memoryx.NewModelSummarizer(store, client, summaryCfg.Model)
}

func buildOrchestrator(ctx context.Context, llmCfg llmx.Config) (*orchestratorx.Orchestrator, error) {
	geoCfg := configx.MustNew[geoipx.Config]("GEOIP")
	locator, err := geoipx.NewClient(*geoCfg)
	if err != nil {
		return nil, fmt.Errorf("build geoip client: %w", err)
	}

	registry := orchestratorx.NewRegistry()
	for _, desc := range personax.Builtin(ctx, locator) {
		modelCfg := llmCfg.AzureForPersona(desc.Model, desc.Temperature)
		chatModel, err := modelCfg.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("create model for persona %s: %w", desc.Name, err)
		}
		agent, err := responderx.New(ctx, desc, chatModel)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(desc.Name, agent); err != nil {
			return nil, err
		}
	}

	classifierModelCfg := llmCfg.AzureFor(llmx.RoleClassifier)
	classifierModel, err := classifierModelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create classifier model: %w", err)
	}
	cls, err := classifierx.New(ctx, personax.Classifier(), classifierModel, registry.Names())
	if err != nil {
		return nil, err
	}

	return orchestratorx.New(cls, registry, orchestratorx.Config{
		DefaultAgent: personax.DefaultAgent,
	})
}

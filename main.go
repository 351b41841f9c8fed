package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	agentsx "github.com/promotor-ai/promotor/agent/agents"
	cachex "github.com/promotor-ai/promotor/agent/cache"
	contractx "github.com/promotor-ai/promotor/agent/contract"
	graphx "github.com/promotor-ai/promotor/agent/graph"
	historyx "github.com/promotor-ai/promotor/agent/history"
	llmx "github.com/promotor-ai/promotor/agent/llm"
	"github.com/promotor-ai/promotor/agent/orchestrator"
	providerx "github.com/promotor-ai/promotor/agent/provider"
	statex "github.com/promotor-ai/promotor/agent/state"
	configx "github.com/promotor-ai/promotor/pkg/config"
	_ "github.com/promotor-ai/promotor/pkg/logger/autoload"
	openrouterx "github.com/promotor-ai/promotor/pkg/openrouter"
	serverx "github.com/promotor-ai/promotor/server"
)

type AppConfig struct {
	CacheBackend      string `envconfig:"CACHE_BACKEND" split_words:"true" default:"memory"`
	HistoryBackend    string `envconfig:"HISTORY_BACKEND" split_words:"true" default:"memory"`
	ParallelDivisions bool   `envconfig:"PARALLEL_DIVISIONS" split_words:"true" default:"false"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("")
	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	if err := llmCfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid openrouter configuration")
	}

	if client := openrouterx.NewClient(llmCfg.OpenRouterFor(statex.TierFull)); client == nil {
		log.Fatal().Msg("failed to initialize openrouter client")
	}

	full := mustCompleter(ctx, llmCfg.OpenRouterFor(statex.TierFull))
	var mini contractx.Completer
	if llmCfg.MiniModel != "" {
		mini = mustCompleter(ctx, llmCfg.OpenRouterFor(statex.TierCheap))
	}

	registry := agentsx.NewRegistry(agentsx.Deps{
		Full:     full,
		Mini:     mini,
		Provider: providerx.NewMockGateway(),
		Log:      log.Logger,
	})

	var engineOpts []graphx.Option
	if appCfg.ParallelDivisions {
		engineOpts = append(engineOpts, graphx.WithParallel())
	}
	engine := graphx.NewEngine(registry, log.Logger, engineOpts...)

	svc := orchestrator.NewService(engine, newCache(appCfg), newHistory(ctx, appCfg), log.Logger)

	srvCfg := configx.MustNew[serverx.Config]("SERVER")
	srv := serverx.New(*srvCfg, svc, log.Logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, srvCfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func mustCompleter(ctx context.Context, cfg openrouterx.Config) contractx.Completer {
	model, err := cfg.New(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("model", cfg.Model).Msg("failed to build chat model")
	}
	client, err := llmx.NewClient(ctx, model)
	if err != nil {
		log.Fatal().Err(err).Str("model", cfg.Model).Msg("failed to build completion pipeline")
	}
	return client
}

func newCache(cfg *AppConfig) contractx.CacheStore {
	switch cfg.CacheBackend {
	case "upstash":
		redisCfg := configx.MustNew[cachex.UpstashRedisConfig]("UPSTASH_REDIS")
		store, err := cachex.NewUpstashRedisStore(*redisCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize upstash cache")
		}
		return store
	default:
		return cachex.NewMemoryStore(0)
	}
}

func newHistory(ctx context.Context, cfg *AppConfig) contractx.HistoryStore {
	switch cfg.HistoryBackend {
	case "postgres":
		pgCfg := configx.MustNew[historyx.PostgresConfig]("POSTGRES")
		db, err := historyx.NewBunDB(*pgCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open postgres")
		}
		store := historyx.NewBunStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to prepare history schema")
		}
		return store
	default:
		return historyx.NewMemoryStore()
	}
}

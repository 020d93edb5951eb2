package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"line-talk-analyzer/internal/adapters/httpapi"
	"line-talk-analyzer/internal/adapters/parser"
	"line-talk-analyzer/internal/adapters/stopwords"
	"line-talk-analyzer/internal/adapters/tokenizer"
	"line-talk-analyzer/internal/domain"
	"line-talk-analyzer/internal/infra/cache"
	"line-talk-analyzer/internal/infra/config"
	httpinfra "line-talk-analyzer/internal/infra/http"
	loginfra "line-talk-analyzer/internal/infra/log"
	"line-talk-analyzer/internal/infra/metrics"
	"line-talk-analyzer/internal/usecase/analysis"
	"line-talk-analyzer/internal/usecase/demo"
)

func main() {
	cfg := config.Load()
	logger := loginfra.NewLogger(cfg.AppEnv)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Токенизатор загружает словарь один раз; без него анализ невозможен.
	tok, err := tokenizer.NewKagome()
	if err != nil {
		logger.Fatal().Err(err).Msg("api: токенизатор не инициализирован")
	}
	stopwordSet, err := stopwords.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("api: стоп-слова не загружены")
	}

	analyzer := analysis.NewService(parser.New(), tok, stopwordSet)

	var demoCache domain.Cache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		demoCache = cache.NewRedis(client)
	}
	demoService := demo.NewService(
		demoCache,
		logger.With().Str("component", "demo").Logger(),
		cfg.Demo.Enabled,
		cfg.Demo.TriggerFilename,
		cfg.Demo.Delay,
		cfg.Demo.CacheTTL,
	)

	defaults := domain.NewAnalysisConfig()
	defaults.TopN = cfg.Analysis.TopN
	defaults.MinWordLength = cfg.Analysis.MinWordLength
	defaults.MinMessageLength = cfg.Analysis.MinMessageLength
	defaults.MinWordCount = cfg.Analysis.MinWordCount
	defaults.MinMessageCount = cfg.Analysis.MinMessageCount

	server := httpinfra.NewServer(logger.With().Str("component", "http").Logger(), cfg.AllowedOrigins)
	handler := httpapi.NewHandler(analyzer, demoService, defaults, cfg.MaxFileSizeBytes(), logger.With().Str("component", "api").Logger())
	handler.Register(server.Router)

	metrics.StartServer(ctx, logger.With().Str("component", "metrics").Logger(), fmt.Sprintf(":%d", cfg.MetricsPort))

	go func() {
		logger.Info().Msg("api: старт")
		if err := server.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logger.Error().Err(err).Msg("api: сервер остановлен")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("api: остановка")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("api: ошибка при остановке")
	}
}

package demo

import (
	"context"
	_ "embed"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"line-talk-analyzer/internal/domain"
)

//go:embed demo_response.json
var demoResponseJSON []byte

const cacheKey = "demo:response"

// Service обслуживает демо-режим: по специальному имени файла вместо
// настоящего анализа возвращается заготовленный ответ. Это единственный
// компонент, которому разрешено держать состояние между запросами.
type Service struct {
	cache           domain.Cache
	log             zerolog.Logger
	enabled         bool
	triggerFilename string
	delay           time.Duration
	cacheTTL        time.Duration
}

// NewService создаёт демо-сервис. cache может быть nil: тогда ответ всегда
// берётся из встроенной копии.
func NewService(cache domain.Cache, logger zerolog.Logger, enabled bool, triggerFilename string, delay, cacheTTL time.Duration) *Service {
	return &Service{
		cache:           cache,
		log:             logger,
		enabled:         enabled,
		triggerFilename: triggerFilename,
		delay:           delay,
		cacheTTL:        cacheTTL,
	}
}

// IsDemoFile распознаёт демо-запрос по имени файла. Сравнение
// регистрозависимое.
func (s *Service) IsDemoFile(filename string) bool {
	if !s.enabled || filename == "" {
		return false
	}
	return filename == s.triggerFilename
}

// Response возвращает заготовленный ответ. Задержка имитирует настоящий
// анализ; отмену контекста (таймаут запроса) уважаем.
func (s *Service) Response(ctx context.Context) (json.RawMessage, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if s.cache != nil {
		if data, err := s.cache.Get(cacheKey); err == nil && len(data) > 0 {
			return data, nil
		}
		if err := s.cache.Set(cacheKey, demoResponseJSON, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Msg("demo: не удалось положить ответ в кэш")
		}
	}

	s.log.Info().Msg("demo: выдан заготовленный ответ")
	return demoResponseJSON, nil
}

package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	AnalyzeRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "analyze_requests_total",
		Help: "Общее количество запросов на анализ",
	})
	AnalyzeErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "analyze_errors_total",
		Help: "Ошибки анализа по видам",
	}, []string{"kind"})
	AnalyzeDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "analyze_duration_seconds",
		Help:    "Время полного прогона анализа",
		Buckets: prometheus.DefBuckets,
	})
	TranscriptMessages = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "transcript_messages",
		Help:    "Количество сообщений в обработанной истории",
		Buckets: []float64{10, 100, 1000, 10000, 100000},
	})
	UploadSizeBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "upload_size_bytes",
		Help:    "Размер загруженных файлов истории",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})
	DemoRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "demo_requests_total",
		Help: "Количество запросов, обслуженных демо-режимом",
	})
)

// MustRegister регистрирует метрики.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		AnalyzeRequestsTotal,
		AnalyzeErrorsTotal,
		AnalyzeDurationSeconds,
		TranscriptMessages,
		UploadSizeBytes,
		DemoRequestsTotal,
	)
}

// ObserveAnalyze записывает длительность и исход одного анализа.
func ObserveAnalyze(start time.Time, err error) {
	AnalyzeDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		AnalyzeErrorsTotal.WithLabelValues(errorKind(err)).Inc()
	}
}

func errorKind(err error) string {
	if err == nil {
		return "none"
	}
	return "error"
}

// StartServer запускает HTTP сервер с эндпоинтом /metrics.
func StartServer(ctx context.Context, logger zerolog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownTimeout); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: graceful shutdown failed")
		}
	}()

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics: server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: server stopped")
		}
	}()
}

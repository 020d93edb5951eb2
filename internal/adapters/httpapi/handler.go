package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"line-talk-analyzer/internal/domain"
	"line-talk-analyzer/internal/infra/metrics"
	"line-talk-analyzer/internal/usecase/demo"
)

// Handler принимает загрузку истории переписки и отдаёт результат анализа.
type Handler struct {
	analyzer    domain.Analyzer
	demo        *demo.Service
	defaults    domain.AnalysisConfig
	maxFileSize int64
	log         zerolog.Logger
}

// NewHandler создаёт обработчик. demoService может быть nil, если
// демо-режим не нужен.
func NewHandler(analyzer domain.Analyzer, demoService *demo.Service, defaults domain.AnalysisConfig, maxFileSize int64, logger zerolog.Logger) *Handler {
	return &Handler{
		analyzer:    analyzer,
		demo:        demoService,
		defaults:    defaults,
		maxFileSize: maxFileSize,
		log:         logger,
	}
}

// Register вешает маршруты на роутер.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/v1/analyze", h.analyze)
	r.Get("/healthz", h.health)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	metrics.AnalyzeRequestsTotal.Inc()
	analysisID := uuid.NewString()
	w.Header().Set("X-Analysis-ID", analysisID)
	logger := h.log.With().Str("analysis_id", analysisID).Logger()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize+1)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "файл слишком большой")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "файл не указан")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(header.Filename, ".txt") {
		writeError(w, http.StatusBadRequest, "ожидается файл в формате .txt")
		return
	}

	if h.demo != nil && h.demo.IsDemoFile(header.Filename) {
		metrics.DemoRequestsTotal.Inc()
		payload, err := h.demo.Response(r.Context())
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, "демо-ответ недоступен")
			return
		}
		logger.Info().Msg("analyze: обслужено демо-режимом")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "не удалось прочитать файл")
		return
	}
	metrics.UploadSizeBytes.Observe(float64(len(content)))
	if len(content) == 0 {
		writeError(w, http.StatusBadRequest, "файл пуст")
		return
	}
	if int64(len(content)) > h.maxFileSize {
		writeError(w, http.StatusRequestEntityTooLarge, "файл слишком большой")
		return
	}
	if !utf8.Valid(content) {
		writeError(w, http.StatusBadRequest, "файл должен быть в кодировке UTF-8")
		return
	}

	cfg, err := h.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	result, err := h.analyzer.Analyze(string(content), cfg)
	metrics.ObserveAnalyze(start, err)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrTokenizer):
			logger.Error().Err(err).Msg("analyze: сбой токенизатора")
			writeError(w, http.StatusInternalServerError, "сбой токенизатора")
		default:
			logger.Error().Err(err).Msg("analyze: внутренняя ошибка")
			writeError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		}
		return
	}

	metrics.TranscriptMessages.Observe(float64(result.TotalMessages))
	logger.Info().
		Int("messages", result.TotalMessages).
		Int("users", result.TotalUsers).
		Dur("took", time.Since(start)).
		Msg("analyze: готово")

	writeJSON(w, http.StatusOK, analyzeResponse{Status: "success", Data: toAnalysisData(result)})
}

// requestConfig собирает конфигурацию анализа из полей формы,
// подставляя значения по умолчанию для отсутствующих.
func (h *Handler) requestConfig(r *http.Request) (domain.AnalysisConfig, error) {
	cfg := h.defaults

	fields := []struct {
		name string
		dst  *int
	}{
		{"top_n", &cfg.TopN},
		{"min_word_length", &cfg.MinWordLength},
		{"max_word_length", &cfg.MaxWordLength},
		{"min_message_length", &cfg.MinMessageLength},
		{"max_message_length", &cfg.MaxMessageLength},
		{"min_word_count", &cfg.MinWordCount},
		{"min_message_count", &cfg.MinMessageCount},
	}
	for _, f := range fields {
		raw := r.FormValue(f.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return domain.AnalysisConfig{}, fmt.Errorf("поле %s должно быть числом", f.name)
		}
		*f.dst = value
	}

	if raw := r.FormValue("start_date"); raw != "" {
		ts, err := parseDate(raw)
		if err != nil {
			return domain.AnalysisConfig{}, err
		}
		cfg.StartDate = &ts
	}
	if raw := r.FormValue("end_date"); raw != "" {
		ts, err := parseDate(raw)
		if err != nil {
			return domain.AnalysisConfig{}, err
		}
		cfg.EndDate = &ts
	}

	return cfg, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("неверный формат даты: %q, ожидается YYYY-MM-DD или YYYY-MM-DD HH:MM:SS", raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

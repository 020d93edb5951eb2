package demo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type memoryCache struct {
	data map[string][]byte
}

func (m *memoryCache) Set(key string, value []byte, _ time.Duration) error {
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = value
	return nil
}

func (m *memoryCache) Get(key string) ([]byte, error) {
	return m.data[key], nil
}

func TestIsDemoFile(t *testing.T) {
	service := NewService(nil, zerolog.Nop(), true, "demo.txt", 0, 0)
	if !service.IsDemoFile("demo.txt") {
		t.Fatalf("ожидали срабатывание на demo.txt")
	}
	if service.IsDemoFile("Demo.txt") {
		t.Fatalf("сравнение должно быть регистрозависимым")
	}
	if service.IsDemoFile("talk.txt") {
		t.Fatalf("не ожидали срабатывание на обычный файл")
	}
}

func TestIsDemoFileDisabled(t *testing.T) {
	service := NewService(nil, zerolog.Nop(), false, "demo.txt", 0, 0)
	if service.IsDemoFile("demo.txt") {
		t.Fatalf("выключенный демо-режим не должен срабатывать")
	}
}

func TestResponseIsValidJSON(t *testing.T) {
	service := NewService(nil, zerolog.Nop(), true, "demo.txt", 0, 0)
	payload, err := service.Response(context.Background())
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("встроенный ответ должен быть валидным JSON: %v", err)
	}
	if parsed.Status != "success" {
		t.Fatalf("ожидали status=success, получили %q", parsed.Status)
	}
}

func TestResponsePopulatesCache(t *testing.T) {
	cache := &memoryCache{}
	service := NewService(cache, zerolog.Nop(), true, "demo.txt", 0, time.Hour)
	if _, err := service.Response(context.Background()); err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(cache.data[cacheKey]) == 0 {
		t.Fatalf("ожидали, что ответ окажется в кэше")
	}
}

func TestResponseRespectsContextCancellation(t *testing.T) {
	service := NewService(nil, zerolog.Nop(), true, "demo.txt", time.Minute, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := service.Response(ctx); err == nil {
		t.Fatalf("ожидали ошибку отменённого контекста")
	}
}

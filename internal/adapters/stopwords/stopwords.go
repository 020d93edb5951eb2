package stopwords

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed stopwords.json
var stopwordsJSON []byte

// Set реализует domain.StopwordSet. Загружается один раз при старте и
// дальше только читается, поэтому безопасен для конкурентного доступа.
type Set struct {
	words map[string]struct{}
}

// Load разбирает встроенный список стоп-слов.
func Load() (*Set, error) {
	var payload struct {
		StopWords []string `json:"stop_words"`
	}
	if err := json.Unmarshal(stopwordsJSON, &payload); err != nil {
		return nil, fmt.Errorf("чтение списка стоп-слов: %w", err)
	}
	words := make(map[string]struct{}, len(payload.StopWords))
	for _, w := range payload.StopWords {
		words[w] = struct{}{}
	}
	return &Set{words: words}, nil
}

// Contains проверяет лемму на точное совпадение со стоп-словом.
func (s *Set) Contains(lemma string) bool {
	_, ok := s.words[lemma]
	return ok
}

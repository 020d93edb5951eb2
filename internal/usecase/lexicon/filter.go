package lexicon

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"line-talk-analyzer/internal/domain"
)

// Filter превращает текст сообщения в набор нормализованных словарных
// кандидатов. Сегментацией и разметкой частей речи занимается внешний
// токенизатор; фильтр только отбирает и нормализует его выдачу.
type Filter struct {
	tokenizer domain.Tokenizer
	stopwords domain.StopwordSet
	allowed   map[domain.PartOfSpeech]struct{}
	minLen    int
	maxLen    int
}

// NewFilter создаёт фильтр. maxLen равный нулю означает отсутствие верхней
// границы длины леммы.
func NewFilter(tok domain.Tokenizer, stop domain.StopwordSet, allowed []domain.PartOfSpeech, minLen, maxLen int) *Filter {
	allowedSet := make(map[domain.PartOfSpeech]struct{}, len(allowed))
	for _, pos := range allowed {
		allowedSet[pos] = struct{}{}
	}
	return &Filter{tokenizer: tok, stopwords: stop, allowed: allowedSet, minLen: minLen, maxLen: maxLen}
}

// Extract возвращает вхождения слов для одного сообщения: токенизация,
// отбор по части речи, замена на лемму, границы длины, стоп-слова и
// дедупликация по лемме внутри сообщения.
func (f *Filter) Extract(text string) ([]domain.WordOccurrence, error) {
	tokens, err := f.tokenizer.Tokenize(text)
	if err != nil {
		if !errors.Is(err, domain.ErrTokenizer) {
			err = fmt.Errorf("%w: %v", domain.ErrTokenizer, err)
		}
		return nil, err
	}

	var occurrences []domain.WordOccurrence
	seen := make(map[string]struct{})
	for _, token := range tokens {
		if _, ok := f.allowed[token.PartOfSpeech]; !ok {
			continue
		}
		lemma := token.Lemma
		if lemma == "" {
			lemma = token.Surface
		}
		length := utf8.RuneCountInString(lemma)
		if length < f.minLen {
			continue
		}
		if f.maxLen > 0 && length > f.maxLen {
			continue
		}
		if f.stopwords.Contains(lemma) {
			continue
		}
		if _, ok := seen[lemma]; ok {
			continue
		}
		seen[lemma] = struct{}{}
		occurrences = append(occurrences, domain.WordOccurrence{Word: lemma, PartOfSpeech: token.PartOfSpeech})
	}
	return occurrences, nil
}

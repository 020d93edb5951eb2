package domain

import (
	"fmt"
	"time"
)

// Значения по умолчанию для AnalysisConfig.
const (
	DefaultTopN             = 50
	DefaultMinWordLength    = 2
	DefaultMinMessageLength = 2
	DefaultMinWordCount     = 2
	DefaultMinMessageCount  = 2
)

// DefaultAllowedPOS — части речи, учитываемые при подсчёте слов по умолчанию.
// Глаголы и наречия исключены, чтобы ранжирование тяготело к конкретной,
// называемой лексике.
var DefaultAllowedPOS = []PartOfSpeech{POSNoun, POSAdjective, POSInterjection}

// AnalysisConfig задаёт параметры одного запуска анализа.
// Нулевые Max-границы означают отсутствие ограничения, nil-даты — отсутствие
// фильтра по периоду.
type AnalysisConfig struct {
	TopN             int
	MinWordLength    int
	MaxWordLength    int
	MinMessageLength int
	MaxMessageLength int
	MinWordCount     int
	MinMessageCount  int
	StartDate        *time.Time
	EndDate          *time.Time
	AllowedPOS       []PartOfSpeech
}

// NewAnalysisConfig возвращает конфигурацию со значениями по умолчанию.
func NewAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TopN:             DefaultTopN,
		MinWordLength:    DefaultMinWordLength,
		MinMessageLength: DefaultMinMessageLength,
		MinWordCount:     DefaultMinWordCount,
		MinMessageCount:  DefaultMinMessageCount,
		AllowedPOS:       DefaultAllowedPOS,
	}
}

// Validate проверяет параметры до начала любой работы с текстом.
func (c AnalysisConfig) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("%w: top_n должен быть не меньше 1, получили %d", ErrValidation, c.TopN)
	}
	if c.MinWordLength < 1 {
		return fmt.Errorf("%w: min_word_length должен быть не меньше 1, получили %d", ErrValidation, c.MinWordLength)
	}
	if c.MinMessageLength < 1 {
		return fmt.Errorf("%w: min_message_length должен быть не меньше 1, получили %d", ErrValidation, c.MinMessageLength)
	}
	if c.MinWordCount < 1 {
		return fmt.Errorf("%w: min_word_count должен быть не меньше 1, получили %d", ErrValidation, c.MinWordCount)
	}
	if c.MinMessageCount < 1 {
		return fmt.Errorf("%w: min_message_count должен быть не меньше 1, получили %d", ErrValidation, c.MinMessageCount)
	}
	if c.MaxWordLength != 0 && c.MaxWordLength < c.MinWordLength {
		return fmt.Errorf("%w: max_word_length меньше min_word_length", ErrValidation)
	}
	if c.MaxMessageLength != 0 && c.MaxMessageLength < c.MinMessageLength {
		return fmt.Errorf("%w: max_message_length меньше min_message_length", ErrValidation)
	}
	if c.StartDate != nil && c.EndDate != nil && c.StartDate.After(*c.EndDate) {
		return fmt.Errorf("%w: start_date позже end_date", ErrValidation)
	}
	return nil
}

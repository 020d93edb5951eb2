package domain

import "time"

// Tokenizer отвечает за сегментацию текста и разметку частей речи.
// Реализация инициализируется один раз при старте; ошибка инициализации
// фатальна для процесса.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// StopwordSet — множество стоп-слов, загружаемое один раз и только читаемое
// во время анализа. Сравнение идёт по лемме, точным совпадением.
type StopwordSet interface {
	Contains(lemma string) bool
}

// Analyzer — единственная внешняя точка входа конвейера анализа.
type Analyzer interface {
	Analyze(rawText string, cfg AnalysisConfig) (AnalysisResult, error)
}

// Cache используется для простых TTL-хранилищ.
type Cache interface {
	Set(key string, value []byte, ttl time.Duration) error
	Get(key string) ([]byte, error)
}

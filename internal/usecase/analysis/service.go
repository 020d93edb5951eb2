package analysis

import (
	"errors"
	"sort"
	"time"

	"line-talk-analyzer/internal/domain"
	"line-talk-analyzer/internal/usecase/lexicon"
)

// Parser превращает сырой текст истории в упорядоченный список сообщений.
type Parser interface {
	Parse(rawText string) ([]domain.Message, error)
}

// Service — оркестратор конвейера анализа: парсинг, фильтр по периоду,
// агрегация, пороги, сортировка, усечение и разбивка по пользователям.
// Состояние между вызовами не сохраняется; один и тот же вход всегда даёт
// один и тот же результат.
type Service struct {
	parser    Parser
	tokenizer domain.Tokenizer
	stopwords domain.StopwordSet
}

var _ domain.Analyzer = (*Service)(nil)

// NewService создаёт оркестратор.
func NewService(parser Parser, tokenizer domain.Tokenizer, stopwords domain.StopwordSet) *Service {
	return &Service{parser: parser, tokenizer: tokenizer, stopwords: stopwords}
}

// Analyze выполняет один запуск анализа по сырому тексту истории.
// Недопустимая конфигурация отклоняется до какой-либо работы с текстом.
func (s *Service) Analyze(rawText string, cfg domain.AnalysisConfig) (domain.AnalysisResult, error) {
	if len(cfg.AllowedPOS) == 0 {
		cfg.AllowedPOS = domain.DefaultAllowedPOS
	}
	if err := cfg.Validate(); err != nil {
		return domain.AnalysisResult{}, err
	}

	messages, err := s.parser.Parse(rawText)
	if err != nil {
		if errors.Is(err, domain.ErrNoMessages) {
			return emptyResult(), nil
		}
		return domain.AnalysisResult{}, err
	}

	messages = filterByPeriod(messages, cfg.StartDate, cfg.EndDate)
	if len(messages) == 0 {
		return emptyResult(), nil
	}

	filter := lexicon.NewFilter(s.tokenizer, s.stopwords, cfg.AllowedPOS, cfg.MinWordLength, cfg.MaxWordLength)

	topWords, topMessages, err := buildTables(messages, filter, cfg)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	perUser, err := buildPerUser(messages, filter, cfg)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	return domain.AnalysisResult{
		Period:        corpusPeriod(messages),
		TotalMessages: len(messages),
		TotalUsers:    countUsers(messages),
		TopWords:      topWords,
		TopMessages:   topMessages,
		PerUser:       perUser,
	}, nil
}

// buildTables прогоняет агрегацию, пороги, устойчивую сортировку по убыванию
// счётчика и усечение до topN. Устойчивость сортировки сохраняет порядок
// первого появления при равных счётчиках.
func buildTables(messages []domain.Message, filter *lexicon.Filter, cfg domain.AnalysisConfig) ([]domain.WordCount, []domain.MessageCount, error) {
	words, err := AggregateWords(messages, filter)
	if err != nil {
		return nil, nil, err
	}
	words = filterWordCounts(words, cfg.MinWordCount)
	sort.SliceStable(words, func(i, j int) bool { return words[i].Count > words[j].Count })
	if len(words) > cfg.TopN {
		words = words[:cfg.TopN]
	}

	msgs := AggregateMessages(messages, cfg.MinMessageLength, cfg.MaxMessageLength)
	msgs = filterMessageCounts(msgs, cfg.MinMessageCount)
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Count > msgs[j].Count })
	if len(msgs) > cfg.TopN {
		msgs = msgs[:cfg.TopN]
	}

	return words, msgs, nil
}

// buildPerUser повторяет тот же конвейер по подмножеству сообщений каждого
// пользователя, с теми же порогами и topN.
func buildPerUser(messages []domain.Message, filter *lexicon.Filter, cfg domain.AnalysisConfig) (map[string]domain.UserBreakdown, error) {
	byUser := make(map[string][]domain.Message)
	for _, msg := range messages {
		byUser[msg.User] = append(byUser[msg.User], msg)
	}

	perUser := make(map[string]domain.UserBreakdown, len(byUser))
	for user, subset := range byUser {
		words, msgs, err := buildTables(subset, filter, cfg)
		if err != nil {
			return nil, err
		}
		perUser[user] = domain.UserBreakdown{TopWords: words, TopMessages: msgs}
	}
	return perUser, nil
}

func filterByPeriod(messages []domain.Message, start, end *time.Time) []domain.Message {
	if start == nil && end == nil {
		return messages
	}
	filtered := make([]domain.Message, 0, len(messages))
	for _, msg := range messages {
		if start != nil && msg.Timestamp.Before(*start) {
			continue
		}
		if end != nil && msg.Timestamp.After(*end) {
			continue
		}
		filtered = append(filtered, msg)
	}
	return filtered
}

func filterWordCounts(counts []domain.WordCount, minCount int) []domain.WordCount {
	filtered := counts[:0]
	for _, wc := range counts {
		if wc.Count >= minCount {
			filtered = append(filtered, wc)
		}
	}
	return filtered
}

func filterMessageCounts(counts []domain.MessageCount, minCount int) []domain.MessageCount {
	filtered := counts[:0]
	for _, mc := range counts {
		if mc.Count >= minCount {
			filtered = append(filtered, mc)
		}
	}
	return filtered
}

func corpusPeriod(messages []domain.Message) domain.Period {
	period := domain.Period{Start: messages[0].Timestamp, End: messages[0].Timestamp}
	for _, msg := range messages[1:] {
		if msg.Timestamp.Before(period.Start) {
			period.Start = msg.Timestamp
		}
		if msg.Timestamp.After(period.End) {
			period.End = msg.Timestamp
		}
	}
	return period
}

func countUsers(messages []domain.Message) int {
	users := make(map[string]struct{})
	for _, msg := range messages {
		if msg.User != "" {
			users[msg.User] = struct{}{}
		}
	}
	return len(users)
}

// emptyResult — результат для пустого корпуса. Метки периода нулевые,
// чтобы одинаковый вход всегда давал побайтово одинаковый результат.
func emptyResult() domain.AnalysisResult {
	return domain.AnalysisResult{
		TopWords:    []domain.WordCount{},
		TopMessages: []domain.MessageCount{},
		PerUser:     map[string]domain.UserBreakdown{},
	}
}

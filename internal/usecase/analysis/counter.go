package analysis

import (
	"unicode/utf8"

	"line-talk-analyzer/internal/domain"
)

// WordExtractor выдаёт вхождения слов для текста одного сообщения,
// уже дедуплицированные по лемме внутри сообщения.
type WordExtractor interface {
	Extract(text string) ([]domain.WordOccurrence, error)
}

// AggregateWords строит таблицу счётчиков по леммам. Поскольку вхождения
// внутри сообщения дедуплицированы, счётчик равен числу различных сообщений,
// содержащих лемму. Часть речи фиксируется при первом появлении леммы.
// Порядок записей — порядок первого появления в корпусе.
func AggregateWords(messages []domain.Message, extractor WordExtractor) ([]domain.WordCount, error) {
	index := make(map[string]int)
	var counts []domain.WordCount

	for _, msg := range messages {
		occurrences, err := extractor.Extract(msg.Content)
		if err != nil {
			return nil, err
		}
		for _, occ := range occurrences {
			if i, ok := index[occ.Word]; ok {
				counts[i].Count++
				continue
			}
			index[occ.Word] = len(counts)
			counts = append(counts, domain.WordCount{Word: occ.Word, PartOfSpeech: occ.PartOfSpeech, Count: 1})
		}
	}
	return counts, nil
}

// AggregateMessages группирует сообщения по посимвольно точному совпадению
// текста. Сообщения вне границ длины исключаются целиком, не обрезаются.
// Подстрочных и частичных совпадений нет: счётчик наращивается только
// идентичным текстом. Порядок записей — порядок первого появления.
func AggregateMessages(messages []domain.Message, minLen, maxLen int) []domain.MessageCount {
	index := make(map[string]int)
	var counts []domain.MessageCount

	for _, msg := range messages {
		length := utf8.RuneCountInString(msg.Content)
		if length < minLen {
			continue
		}
		if maxLen > 0 && length > maxLen {
			continue
		}
		if i, ok := index[msg.Content]; ok {
			counts[i].Count++
			continue
		}
		index[msg.Content] = len(counts)
		counts = append(counts, domain.MessageCount{Message: msg.Content, Count: 1})
	}
	return counts
}

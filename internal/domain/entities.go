package domain

import "time"

// PartOfSpeech обозначает грамматический класс, присвоенный токенизатором.
type PartOfSpeech string

const (
	POSNoun         PartOfSpeech = "noun"
	POSAdjective    PartOfSpeech = "adjective"
	POSInterjection PartOfSpeech = "interjection"
	POSVerb         PartOfSpeech = "verb"
	POSAdverb       PartOfSpeech = "adverb"
	POSParticle     PartOfSpeech = "particle"
	POSSymbol       PartOfSpeech = "symbol"
	POSOther        PartOfSpeech = "other"
)

// Message описывает одно сообщение из истории переписки.
// После парсинга сообщение неизменяемо; порядок в срезе повторяет порядок файла.
type Message struct {
	Timestamp time.Time
	User      string
	Content   string
}

// Token — результат сегментации текста внешним токенизатором.
type Token struct {
	Surface      string
	Lemma        string
	PartOfSpeech PartOfSpeech
}

// WordOccurrence фиксирует появление леммы в сообщении.
// Внутри одного сообщения лемма даёт не более одного вхождения.
type WordOccurrence struct {
	Word         string
	PartOfSpeech PartOfSpeech
}

// WordCount — итоговый счётчик по лемме: количество различных сообщений,
// в которых лемма встретилась хотя бы раз.
type WordCount struct {
	Word         string
	PartOfSpeech PartOfSpeech
	Count        int
}

// MessageCount — счётчик полных сообщений с посимвольно одинаковым текстом.
type MessageCount struct {
	Message string
	Count   int
}

// Period описывает границы проанализированного периода.
type Period struct {
	Start time.Time
	End   time.Time
}

// UserBreakdown — результаты, пересчитанные по сообщениям одного пользователя.
type UserBreakdown struct {
	TopWords    []WordCount
	TopMessages []MessageCount
}

// AnalysisResult — полный результат одного запуска анализа.
// Содержит только агрегаты: размер результата не зависит от размера корпуса.
type AnalysisResult struct {
	Period        Period
	TotalMessages int
	TotalUsers    int
	TopWords      []WordCount
	TopMessages   []MessageCount
	PerUser       map[string]UserBreakdown
}

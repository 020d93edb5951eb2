package httpapi

import (
	"time"

	"line-talk-analyzer/internal/domain"
)

type analyzeResponse struct {
	Status string       `json:"status"`
	Data   analysisData `json:"data"`
}

type analysisData struct {
	Period        periodData               `json:"period"`
	TotalMessages int                      `json:"total_messages"`
	TotalUsers    int                      `json:"total_users"`
	TopWords      []wordCountData          `json:"top_words"`
	TopMessages   []messageCountData       `json:"top_messages"`
	PerUser       map[string]breakdownData `json:"per_user"`
}

type periodData struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type wordCountData struct {
	Word         string `json:"word"`
	PartOfSpeech string `json:"part_of_speech"`
	Count        int    `json:"count"`
}

type messageCountData struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type breakdownData struct {
	TopWords    []wordCountData    `json:"top_words"`
	TopMessages []messageCountData `json:"top_messages"`
}

func toAnalysisData(result domain.AnalysisResult) analysisData {
	perUser := make(map[string]breakdownData, len(result.PerUser))
	for user, breakdown := range result.PerUser {
		perUser[user] = breakdownData{
			TopWords:    toWordCounts(breakdown.TopWords),
			TopMessages: toMessageCounts(breakdown.TopMessages),
		}
	}
	return analysisData{
		Period:        periodData{Start: result.Period.Start, End: result.Period.End},
		TotalMessages: result.TotalMessages,
		TotalUsers:    result.TotalUsers,
		TopWords:      toWordCounts(result.TopWords),
		TopMessages:   toMessageCounts(result.TopMessages),
		PerUser:       perUser,
	}
}

func toWordCounts(counts []domain.WordCount) []wordCountData {
	out := make([]wordCountData, 0, len(counts))
	for _, wc := range counts {
		out = append(out, wordCountData{Word: wc.Word, PartOfSpeech: string(wc.PartOfSpeech), Count: wc.Count})
	}
	return out
}

func toMessageCounts(counts []domain.MessageCount) []messageCountData {
	out := make([]messageCountData, 0, len(counts))
	for _, mc := range counts {
		out = append(out, messageCountData{Message: mc.Message, Count: mc.Count})
	}
	return out
}

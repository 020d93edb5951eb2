package lexicon

import (
	"errors"
	"testing"

	"line-talk-analyzer/internal/domain"
)

type stubTokenizer struct {
	tokens []domain.Token
	err    error
}

func (s *stubTokenizer) Tokenize(string) ([]domain.Token, error) {
	return s.tokens, s.err
}

type stubStopwords struct {
	words map[string]bool
}

func (s *stubStopwords) Contains(lemma string) bool { return s.words[lemma] }

func newFilter(tok domain.Tokenizer, stop domain.StopwordSet) *Filter {
	return NewFilter(tok, stop, domain.DefaultAllowedPOS, 2, 0)
}

func TestExtractFiltersByPartOfSpeech(t *testing.T) {
	tok := &stubTokenizer{tokens: []domain.Token{
		{Surface: "りんご", Lemma: "りんご", PartOfSpeech: domain.POSNoun},
		{Surface: "食べた", Lemma: "食べる", PartOfSpeech: domain.POSVerb},
		{Surface: "とても", Lemma: "とても", PartOfSpeech: domain.POSAdverb},
		{Surface: "楽しかった", Lemma: "楽しい", PartOfSpeech: domain.POSAdjective},
	}}
	occs, err := newFilter(tok, &stubStopwords{}).Extract("…")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(occs) != 2 {
		t.Fatalf("ожидали 2 вхождения, получили %d", len(occs))
	}
	if occs[0].Word != "りんご" || occs[1].Word != "楽しい" {
		t.Fatalf("неверные слова: %+v", occs)
	}
}

func TestExtractUsesLemma(t *testing.T) {
	tok := &stubTokenizer{tokens: []domain.Token{
		{Surface: "楽しかった", Lemma: "楽しい", PartOfSpeech: domain.POSAdjective},
	}}
	occs, err := newFilter(tok, &stubStopwords{}).Extract("…")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(occs) != 1 || occs[0].Word != "楽しい" {
		t.Fatalf("ожидали лемму 楽しい, получили %+v", occs)
	}
}

func TestExtractLengthBounds(t *testing.T) {
	tok := &stubTokenizer{tokens: []domain.Token{
		{Surface: "あ", Lemma: "あ", PartOfSpeech: domain.POSNoun},
		{Surface: "ラーメン", Lemma: "ラーメン", PartOfSpeech: domain.POSNoun},
		{Surface: "アイスクリーム", Lemma: "アイスクリーム", PartOfSpeech: domain.POSNoun},
	}}
	filter := NewFilter(tok, &stubStopwords{}, domain.DefaultAllowedPOS, 2, 5)
	occs, err := filter.Extract("…")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(occs) != 1 || occs[0].Word != "ラーメン" {
		t.Fatalf("ожидали только ラーメン, получили %+v", occs)
	}
}

func TestExtractDropsStopwords(t *testing.T) {
	tok := &stubTokenizer{tokens: []domain.Token{
		{Surface: "こと", Lemma: "こと", PartOfSpeech: domain.POSNoun},
		{Surface: "りんご", Lemma: "りんご", PartOfSpeech: domain.POSNoun},
	}}
	stop := &stubStopwords{words: map[string]bool{"こと": true}}
	occs, err := newFilter(tok, stop).Extract("…")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(occs) != 1 || occs[0].Word != "りんご" {
		t.Fatalf("ожидали только りんご, получили %+v", occs)
	}
}

func TestExtractDeduplicatesWithinMessage(t *testing.T) {
	tok := &stubTokenizer{tokens: []domain.Token{
		{Surface: "りんご", Lemma: "りんご", PartOfSpeech: domain.POSNoun},
		{Surface: "りんご", Lemma: "りんご", PartOfSpeech: domain.POSNoun},
		{Surface: "りんご", Lemma: "りんご", PartOfSpeech: domain.POSNoun},
	}}
	occs, err := newFilter(tok, &stubStopwords{}).Extract("…")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(occs) != 1 {
		t.Fatalf("ожидали 1 вхождение после дедупликации, получили %d", len(occs))
	}
}

func TestExtractWrapsTokenizerError(t *testing.T) {
	tok := &stubTokenizer{err: errors.New("словарь недоступен")}
	_, err := newFilter(tok, &stubStopwords{}).Extract("…")
	if !errors.Is(err, domain.ErrTokenizer) {
		t.Fatalf("ожидали ErrTokenizer, получили %v", err)
	}
}

func TestExtractCustomAllowedPOS(t *testing.T) {
	tok := &stubTokenizer{tokens: []domain.Token{
		{Surface: "走った", Lemma: "走る", PartOfSpeech: domain.POSVerb},
		{Surface: "りんご", Lemma: "りんご", PartOfSpeech: domain.POSNoun},
	}}
	filter := NewFilter(tok, &stubStopwords{}, []domain.PartOfSpeech{domain.POSVerb}, 2, 0)
	occs, err := filter.Extract("…")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(occs) != 1 || occs[0].Word != "走る" {
		t.Fatalf("ожидали только глагол, получили %+v", occs)
	}
}

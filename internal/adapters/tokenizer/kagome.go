package tokenizer

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"

	"line-talk-analyzer/internal/domain"
)

// posNames сопоставляет метки частей речи словаря IPA доменным значениям.
var posNames = map[string]domain.PartOfSpeech{
	"名詞":  domain.POSNoun,
	"形容詞": domain.POSAdjective,
	"感動詞": domain.POSInterjection,
	"動詞":  domain.POSVerb,
	"副詞":  domain.POSAdverb,
	"助詞":  domain.POSParticle,
	"記号":  domain.POSSymbol,
}

// Kagome реализует domain.Tokenizer поверх морфологического анализатора
// kagome со словарём IPA. Словарь только читается, поэтому экземпляр
// безопасен для конкурентного использования.
type Kagome struct {
	t *kagome.Tokenizer
}

// NewKagome загружает словарь и создаёт токенизатор. Ошибка инициализации
// фатальна для всего анализа.
func NewKagome() (*Kagome, error) {
	t, err := kagome.New(ipa.Dict(), kagome.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("%w: инициализация kagome: %v", domain.ErrTokenizer, err)
	}
	return &Kagome{t: t}, nil
}

// Tokenize сегментирует текст и возвращает токены с леммой и частью речи.
// Для неизвестных словарю токенов леммой служит поверхностная форма.
func (k *Kagome) Tokenize(text string) ([]domain.Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	raw := k.t.Tokenize(text)
	tokens := make([]domain.Token, 0, len(raw))
	for _, tk := range raw {
		if tk.Class == kagome.DUMMY {
			continue
		}
		lemma, ok := tk.BaseForm()
		if !ok || lemma == "" || lemma == "*" {
			lemma = tk.Surface
		}
		tokens = append(tokens, domain.Token{
			Surface:      tk.Surface,
			Lemma:        lemma,
			PartOfSpeech: mapPOS(tk.POS()),
		})
	}
	return tokens, nil
}

func mapPOS(features []string) domain.PartOfSpeech {
	if len(features) == 0 {
		return domain.POSOther
	}
	if pos, ok := posNames[features[0]]; ok {
		return pos
	}
	return domain.POSOther
}

package domain

import "errors"

// ErrValidation возвращается при недопустимых параметрах анализа,
// до начала парсинга.
var ErrValidation = errors.New("недопустимые параметры анализа")

// ErrNoMessages возвращается парсером, если во входе нет ни одного
// пригодного сообщения.
var ErrNoMessages = errors.New("в истории не найдено пригодных сообщений")

// ErrTokenizer возвращается при сбое внешнего токенизатора. Частичные
// результаты при этом не выдаются.
var ErrTokenizer = errors.New("сбой токенизатора")

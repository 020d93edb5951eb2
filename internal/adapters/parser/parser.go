package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"line-talk-analyzer/internal/domain"
)

// Паттерны строки даты: `YYYY/MM/DD(曜日)` и `YYYY.MM.DD 曜日`.
var (
	dateSlashPattern = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})\([月火水木金土日]\)$`)
	dateDotPattern   = regexp.MustCompile(`^(\d{4})\.(\d{1,2})\.(\d{1,2})\s+[月火水木金土日]曜日$`)
	timePattern      = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// metaPatterns описывает служебный контент, который не является сообщением:
// плейсхолдеры вложений и системные уведомления о составе чата.
var metaPatterns = []string{
	`^\[スタンプ\]$`,
	`^\[写真\]$`,
	`^\[動画\]$`,
	`^\[ファイル\]$`,
	`^\[アルバム\]$`,
	`^\[ノート\]$`,
	`^\[通話\]`,
	`が参加しました。$`,
	`が退出しました。$`,
	`がメンバーを追加しました。$`,
	`がメンバーを削除しました。$`,
}

// TalkParser разбирает экспорт истории переписки LINE в упорядоченный список
// сообщений. Единственное изменяемое состояние при разборе — текущая дата.
type TalkParser struct {
	metaPattern *regexp.Regexp
}

// New создаёт парсер.
func New() *TalkParser {
	return &TalkParser{metaPattern: regexp.MustCompile(strings.Join(metaPatterns, "|"))}
}

// Parse разбирает сырой текст истории. Непригодные строки пропускаются
// молча; ошибка возвращается только если не найдено ни одного сообщения.
func (p *TalkParser) Parse(rawText string) ([]domain.Message, error) {
	lines := strings.Split(strings.ReplaceAll(rawText, "\r\n", "\n"), "\n")

	var (
		messages    []domain.Message
		currentDate time.Time
		hasDate     bool
		// Индекс последнего принятого сообщения, к которому можно
		// присоединять строки-продолжения. -1 — присоединять некуда.
		anchor = -1
	)

	for i, line := range lines {
		if line == "" {
			anchor = -1
			continue
		}

		// Шапка экспорта: первая строка с названием чата и строка с
		// датой сохранения.
		if i == 0 && strings.HasPrefix(line, "[LINE]") {
			continue
		}
		if i == 1 && strings.HasPrefix(line, "保存日時：") {
			continue
		}

		if date, ok := parseDateLine(line); ok {
			currentDate = date
			hasDate = true
			anchor = -1
			continue
		}

		parts := strings.SplitN(line, "\t", 3)
		if len(parts) == 3 {
			if msg, ok := p.parseMessageLine(parts, currentDate, hasDate); ok {
				messages = append(messages, msg)
				anchor = len(messages) - 1
			} else {
				// Системное событие или плейсхолдер: его
				// продолжения тоже не нужны.
				anchor = -1
			}
			continue
		}

		// Строка без табуляции и без даты после принятого сообщения —
		// продолжение многострочного сообщения.
		if anchor >= 0 {
			messages[anchor].Content += "\n" + line
			continue
		}
		// Неопознанная строка пропускается молча.
	}

	if len(messages) == 0 {
		return nil, domain.ErrNoMessages
	}
	return messages, nil
}

func (p *TalkParser) parseMessageLine(parts []string, currentDate time.Time, hasDate bool) (domain.Message, bool) {
	if !hasDate {
		return domain.Message{}, false
	}

	timeStr := strings.TrimSpace(parts[0])
	user := strings.TrimSpace(parts[1])
	content := strings.TrimSpace(parts[2])

	m := timePattern.FindStringSubmatch(timeStr)
	if m == nil {
		return domain.Message{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return domain.Message{}, false
	}

	// Пустой пользователь — системное событие.
	if user == "" {
		return domain.Message{}, false
	}
	if content == "" {
		return domain.Message{}, false
	}
	if p.metaPattern.MatchString(content) {
		return domain.Message{}, false
	}

	ts := time.Date(currentDate.Year(), currentDate.Month(), currentDate.Day(), hour, minute, 0, 0, time.UTC)
	return domain.Message{Timestamp: ts, User: user, Content: content}, true
}

func parseDateLine(line string) (time.Time, bool) {
	m := dateSlashPattern.FindStringSubmatch(line)
	if m == nil {
		m = dateDotPattern.FindStringSubmatch(line)
	}
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date нормализует переполнение: 2024/13/32 превратилась бы в
	// другую дату, такие строки отбрасываем.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

package classifier

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmarochko/emergency_alert_system/internal/models"
	"github.com/dmarochko/emergency_alert_system/internal/translator"
	"github.com/sirupsen/logrus"
)

// StructuredReport - результат структурирования свободного текста обращения
type StructuredReport struct {
	Urgency           models.Urgency
	IssueType         models.IssueType
	PeopleAffected    *int
	TextLocation      *string
	TranslatedMessage string
	RawMessage        string
}

// Engine извлекает структурированные признаки из текста обращения.
// Все правила детерминированы и применяются к переведённому тексту.
type Engine struct {
	translator translator.Translator
	logger     *logrus.Logger
}

// NewEngine создает новый Engine
func NewEngine(t translator.Translator, logger *logrus.Logger) *Engine {
	return &Engine{
		translator: t,
		logger:     logger,
	}
}

// Structure переводит текст и последовательно применяет четыре независимых
// прохода извлечения: срочность, категория, число пострадавших, место.
// Сбой перевода не прерывает обработку: классификация выполняется по исходному тексту.
func (e *Engine) Structure(ctx context.Context, rawText string) StructuredReport {
	translated, err := e.translator.Translate(ctx, rawText)
	if err != nil {
		e.logger.WithError(err).Warn("Translation failed, falling back to the original text")
		translated = rawText
	}

	lower := strings.ToLower(translated)

	return StructuredReport{
		Urgency:           detectUrgency(lower),
		IssueType:         detectIssueType(lower),
		PeopleAffected:    detectPeopleAffected(lower),
		TextLocation:      detectTextLocation(lower),
		TranslatedMessage: translated,
		RawMessage:        rawText,
	}
}

// detectUrgency определяет срочность по словарям; высокая проверяется первой
func detectUrgency(text string) models.Urgency {
	for _, token := range highUrgencyTokens {
		if strings.Contains(text, token) {
			return models.UrgencyHigh
		}
	}
	for _, token := range mediumUrgencyTokens {
		if strings.Contains(text, token) {
			return models.UrgencyMedium
		}
	}
	return models.UrgencyLow
}

// detectIssueType возвращает первую категорию из таблицы с совпавшим ключевым словом
func detectIssueType(text string) models.IssueType {
	for _, rule := range issueRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.issue
			}
		}
	}
	return models.IssueUnknown
}

// detectPeopleAffected извлекает число пострадавших из первого совпадения шаблона
func detectPeopleAffected(text string) *int {
	match := peoplePattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	count, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &count
}

// detectTextLocation возвращает фразу после первого совпавшего предлога
func detectTextLocation(text string) *string {
	for _, pattern := range locationPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		location := strings.TrimSpace(match[1])
		return &location
	}
	return nil
}

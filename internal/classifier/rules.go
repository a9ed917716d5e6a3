package classifier

import (
	"regexp"

	"github.com/dmarochko/emergency_alert_system/internal/models"
)

// Словари срочности. Совпадение ищется по подстроке в тексте, приведённом
// к нижнему регистру; высокая срочность проверяется первой и побеждает.
var (
	highUrgencyTokens   = []string{"urgent", "immediately", "asap", "now", "help", "emergency"}
	mediumUrgencyTokens = []string{"soon", "please"}
)

// Правило определения категории происшествия по ключевым словам
type issueRule struct {
	issue    models.IssueType
	keywords []string
}

// Таблица категорий. Порядок фиксирован и является частью контракта:
// побеждает первая категория, у которой совпало хотя бы одно ключевое слово.
var issueRules = []issueRule{
	{models.IssueFire, []string{"fire", "smoke", "burning"}},
	{models.IssueMedical, []string{"injured", "hurt", "bleeding", "unconscious"}},
	{models.IssueFlood, []string{"flood", "overflow", "water entered"}},
	{models.IssueEarthquake, []string{"earthquake", "tremor"}},
	{models.IssuePowerOutage, []string{"power", "electricity", "outage"}},
}

// Число пострадавших: первая группа цифр, за которой следует слово-счётчик
var peoplePattern = regexp.MustCompile(`(\d+)\s+(people|persons|members)`)

// Шаблоны упоминания места. Порядок фиксирован: "at" важнее "near", "near" важнее "in".
// Захват ограничен буквами, цифрами и пробелами, поэтому обрывается на знаках препинания.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`at ([a-z0-9\s]+)`),
	regexp.MustCompile(`near ([a-z0-9\s]+)`),
	regexp.MustCompile(`in ([a-z0-9\s]+)`),
}

package classifier

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmarochko/emergency_alert_system/internal/models"
	"github.com/dmarochko/emergency_alert_system/internal/translator/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestEngine — вспомогательная функция для создания движка с мок-переводчиком.
func newTestEngine(t *testing.T) (*Engine, *mocks.MockTranslator) {
	ctrl := gomock.NewController(t)
	translatorMock := mocks.NewMockTranslator(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewEngine(translatorMock, logger), translatorMock
}

// expectIdentityTranslation настраивает мок так, чтобы перевод возвращал текст без изменений
func expectIdentityTranslation(translatorMock *mocks.MockTranslator, text string) {
	translatorMock.EXPECT().
		Translate(gomock.Any(), text).
		Return(text, nil).
		Times(1)
}

func TestStructure_MedicalReportWithPeopleAndLocation(t *testing.T) {
	engine, translatorMock := newTestEngine(t)
	text := "3 people injured near Main Street"
	expectIdentityTranslation(translatorMock, text)

	result := engine.Structure(context.Background(), text)

	assert.Equal(t, models.UrgencyLow, result.Urgency)
	assert.Equal(t, models.IssueMedical, result.IssueType)
	require.NotNil(t, result.PeopleAffected)
	assert.Equal(t, 3, *result.PeopleAffected)
	require.NotNil(t, result.TextLocation)
	assert.Equal(t, "main street", *result.TextLocation)
	assert.Equal(t, text, result.TranslatedMessage)
	assert.Equal(t, text, result.RawMessage)
}

func TestStructure_FireReportWithHighUrgency(t *testing.T) {
	engine, translatorMock := newTestEngine(t)
	text := "HELP fire at Block A now"
	expectIdentityTranslation(translatorMock, text)

	result := engine.Structure(context.Background(), text)

	assert.Equal(t, models.UrgencyHigh, result.Urgency)
	assert.Equal(t, models.IssueFire, result.IssueType)
	assert.Nil(t, result.PeopleAffected)
	require.NotNil(t, result.TextLocation)
	// Ветка "at" побеждает, захват идёт до конца строки
	assert.Equal(t, "block a now", *result.TextLocation)
}

func TestStructure_TranslationFailureFallsBackToOriginalText(t *testing.T) {
	engine, translatorMock := newTestEngine(t)
	text := "incendio urgente en el mercado"

	translatorMock.EXPECT().
		Translate(gomock.Any(), text).
		Return("", errors.New("translation service unavailable")).
		Times(1)

	result := engine.Structure(context.Background(), text)

	// Классификация продолжается по исходному тексту
	assert.Equal(t, text, result.TranslatedMessage)
	assert.Equal(t, text, result.RawMessage)
	assert.Equal(t, models.UrgencyHigh, result.Urgency) // "urgente" содержит "urgent"
}

func TestStructure_TranslatedTextIsClassified(t *testing.T) {
	engine, translatorMock := newTestEngine(t)
	raw := "пожар в доме, помогите"

	translatorMock.EXPECT().
		Translate(gomock.Any(), raw).
		Return("Fire in the house, help", nil).
		Times(1)

	result := engine.Structure(context.Background(), raw)

	assert.Equal(t, models.UrgencyHigh, result.Urgency)
	assert.Equal(t, models.IssueFire, result.IssueType)
	assert.Equal(t, raw, result.RawMessage)
	assert.Equal(t, "Fire in the house, help", result.TranslatedMessage)
}

func TestStructure_EmptyInput(t *testing.T) {
	engine, translatorMock := newTestEngine(t)
	expectIdentityTranslation(translatorMock, "")

	result := engine.Structure(context.Background(), "")

	assert.Equal(t, models.UrgencyLow, result.Urgency)
	assert.Equal(t, models.IssueUnknown, result.IssueType)
	assert.Nil(t, result.PeopleAffected)
	assert.Nil(t, result.TextLocation)
	assert.Equal(t, "", result.TranslatedMessage)
	assert.Equal(t, "", result.RawMessage)
}

func TestDetectUrgency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Urgency
	}{
		{"high token", "this is an emergency", models.UrgencyHigh},
		{"medium token", "please check the water level", models.UrgencyMedium},
		{"no tokens", "the road is blocked", models.UrgencyLow},
		{"high wins over medium", "please come immediately", models.UrgencyHigh},
		{"substring match inside a longer word", "nowhere to go", models.UrgencyHigh},
		{"empty text", "", models.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectUrgency(tt.text))
		})
	}
}

func TestDetectIssueType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.IssueType
	}{
		{"fire", "there is smoke everywhere", models.IssueFire},
		{"medical", "a man is bleeding", models.IssueMedical},
		{"flood multiword keyword", "water entered the basement", models.IssueFlood},
		{"earthquake", "we felt a tremor", models.IssueEarthquake},
		{"power outage", "electricity is gone", models.IssuePowerOutage},
		{"no match", "cat stuck on a tree", models.IssueUnknown},
		// Порядок таблицы решает, а не порядок слов в тексте
		{"fire beats power outage", "power lines caused a fire", models.IssueFire},
		{"medical beats flood", "flood victims are injured", models.IssueMedical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectIssueType(tt.text))
		})
	}
}

func TestDetectPeopleAffected(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"people", "about 12 people are trapped", intPtr(12)},
		{"persons", "2 persons are missing", intPtr(2)},
		{"members", "5 members of the family", intPtr(5)},
		{"first occurrence wins", "3 people then 7 people", intPtr(3)},
		{"digits without counter word", "house 42 is on fire", nil},
		{"no digits", "many people are hurt", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectPeopleAffected(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestDetectTextLocation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *string
	}{
		{"at", "fire at block 7", strPtr("block 7")},
		{"near", "accident near the bridge", strPtr("the bridge")},
		{"in", "smoke in the kitchen", strPtr("the kitchen")},
		// "at" важнее "near" и "in" независимо от позиции в тексте
		{"at beats near and in", "smoke in the hall near the gate at the main entrance", strPtr("the main entrance")},
		{"capture stops at punctuation", "fire at block 7, send help", strPtr("block 7")},
		{"no preposition", "everything burned down", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectTextLocation(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmarochko/emergency_alert_system/internal/classifier"
	"github.com/dmarochko/emergency_alert_system/internal/models"
	"github.com/dmarochko/emergency_alert_system/internal/service/mocks"
	"github.com/dmarochko/emergency_alert_system/internal/webhook"
	webhook_mocks "github.com/dmarochko/emergency_alert_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *mocks.MockStructurer, *webhook_mocks.MockApprovalPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	engineMock := mocks.NewMockStructurer(ctrl)
	publisherMock := webhook_mocks.NewMockApprovalPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAlertService(repoMock, engineMock, logger, publisherMock)
	return service.(*alertService), repoMock, engineMock, publisherMock
}

func TestSubmitReport_Success(t *testing.T) {
	// Подготовка
	service, repoMock, engineMock, _ := newTestAlertService(t)
	ctx := context.Background()
	people := 3
	location := "main street"

	alert := &models.Alert{
		ReporterName: "Anna",
		ReporterType: "citizen",
		RawMessage:   "3 people injured near Main Street",
	}

	structured := classifier.StructuredReport{
		Urgency:           models.UrgencyLow,
		IssueType:         models.IssueMedical,
		PeopleAffected:    &people,
		TextLocation:      &location,
		TranslatedMessage: "3 people injured near Main Street",
		RawMessage:        "3 people injured near Main Street",
	}

	// Ожидания
	engineMock.EXPECT().
		Structure(ctx, alert.RawMessage).
		Return(structured).
		Times(1)

	repoMock.EXPECT().
		Create(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = 0
			a.CreatedAt = time.Now()
			return nil
		}).
		Times(1)

	// Действие
	err := service.SubmitReport(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, alert.Status)
	assert.Equal(t, models.IssueMedical, alert.IssueType)
	assert.Equal(t, models.UrgencyLow, alert.Urgency)
	require.NotNil(t, alert.PeopleAffected)
	assert.Equal(t, 3, *alert.PeopleAffected)
	require.NotNil(t, alert.TextLocation)
	assert.Equal(t, "main street", *alert.TextLocation)
	assert.Equal(t, "3 people injured near Main Street", alert.TranslatedMessage)
}

func TestSubmitReport_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, engineMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{RawMessage: "fire"}
	repoError := fmt.Errorf("storage is full")

	// Ожидания
	engineMock.EXPECT().
		Structure(ctx, "fire").
		Return(classifier.StructuredReport{
			Urgency:           models.UrgencyLow,
			IssueType:         models.IssueFire,
			TranslatedMessage: "fire",
			RawMessage:        "fire",
		}).
		Times(1)

	repoMock.EXPECT().
		Create(ctx, alert).
		Return(repoError).
		Times(1)

	// Действие
	err := service.SubmitReport(ctx, alert)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, repoError)
}

func TestApproveAlert_Success_PublishesEvent(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	now := time.Now()
	approved := &models.Alert{
		ID:         2,
		Urgency:    models.UrgencyHigh,
		IssueType:  models.IssueFire,
		Status:     models.StatusApproved,
		AdminNote:  "crew dispatched",
		ApprovedAt: &now,
	}

	// Ожидания
	repoMock.EXPECT().
		Approve(ctx, 2, "crew dispatched").
		Return(approved, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ApprovalEvent) error {
			assert.Equal(t, 2, event.AlertID)
			assert.Equal(t, models.UrgencyHigh, event.Urgency)
			assert.Equal(t, models.IssueFire, event.IssueType)
			assert.Equal(t, "crew dispatched", event.AdminNote)
			assert.Equal(t, now, event.ApprovedAt)
			return nil
		}).
		Times(1)

	// Действие
	alert, err := service.ApproveAlert(ctx, 2, "crew dispatched")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, approved, alert)
}

func TestApproveAlert_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Approve(ctx, 99, "note").
		Return(nil, models.ErrAlertNotFound).
		Times(1)

	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0) // Событие не публикуется

	// Действие
	alert, err := service.ApproveAlert(ctx, 99, "note")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, models.ErrAlertNotFound)
}

func TestApproveAlert_PublishFailureDoesNotFailApproval(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	now := time.Now()
	approved := &models.Alert{
		ID:         0,
		Status:     models.StatusApproved,
		ApprovedAt: &now,
	}

	// Ожидания
	repoMock.EXPECT().
		Approve(ctx, 0, "").
		Return(approved, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(errors.New("redis is down")).
		Times(1)

	// Действие
	alert, err := service.ApproveAlert(ctx, 0, "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, approved, alert)
}

func TestListAlerts_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	expected := []*models.Alert{
		{ID: 0, Status: models.StatusApproved},
		{ID: 1, Status: models.StatusPending},
	}

	// Ожидания
	repoMock.EXPECT().
		List(ctx).
		Return(expected, nil).
		Times(1)

	// Действие
	alerts, err := service.ListAlerts(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestListAlerts_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestAlertService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("storage unavailable")

	// Ожидания
	repoMock.EXPECT().
		List(ctx).
		Return(nil, repoError).
		Times(1)

	// Действие
	alerts, err := service.ListAlerts(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alerts)
	assert.ErrorIs(t, err, repoError)
}

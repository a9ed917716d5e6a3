package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmarochko/emergency_alert_system/internal/classifier"
	"github.com/dmarochko/emergency_alert_system/internal/models"
	"github.com/dmarochko/emergency_alert_system/internal/webhook"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с хранилищем заявок
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	Approve(ctx context.Context, id int, adminNote string) (*models.Alert, error)
	List(ctx context.Context) ([]*models.Alert, error)
}

// Structurer определяет контракт движка структурирования текста обращений
type Structurer interface {
	Structure(ctx context.Context, rawText string) classifier.StructuredReport
}

// AlertService определяет контракт бизнес-логики работы с заявками
type AlertService interface {
	SubmitReport(ctx context.Context, alert *models.Alert) error
	ApproveAlert(ctx context.Context, id int, adminNote string) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]*models.Alert, error)
}

type alertService struct {
	repo      AlertRepository
	engine    Structurer
	logger    *logrus.Logger
	publisher webhook.ApprovalPublisher
}

func NewAlertService(repo AlertRepository, engine Structurer, logger *logrus.Logger, publisher webhook.ApprovalPublisher) AlertService {
	return &alertService{
		repo:      repo,
		engine:    engine,
		logger:    logger,
		publisher: publisher,
	}
}

// SubmitReport структурирует текст обращения и сохраняет новую заявку.
// Перевод выполняется до обращения к хранилищу, чтобы его задержка
// не удерживала блокировку коллекции.
func (s *alertService) SubmitReport(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "SubmitReport",
		"reporter": alert.ReporterName,
	})
	log.Info("Attempting to submit a new emergency report")

	structured := s.engine.Structure(ctx, alert.RawMessage)
	alert.TranslatedMessage = structured.TranslatedMessage
	alert.Urgency = structured.Urgency
	alert.IssueType = structured.IssueType
	alert.PeopleAffected = structured.PeopleAffected
	alert.TextLocation = structured.TextLocation
	alert.Status = models.StatusPending

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not submit report: %w", err)
	}

	log.WithFields(logrus.Fields{
		"alert_id":   alert.ID,
		"urgency":    alert.Urgency,
		"issue_type": alert.IssueType,
	}).Info("Report submitted successfully")
	return nil
}

// ApproveAlert переводит заявку в статус Approved и публикует событие одобрения.
// Повторное одобрение перезаписывает заметку и время, статус остаётся Approved.
func (s *alertService) ApproveAlert(ctx context.Context, id int, adminNote string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ApproveAlert",
		"alert_id": id,
	})
	log.Info("Attempting to approve alert")

	alert, err := s.repo.Approve(ctx, id, adminNote)
	if err != nil {
		if errors.Is(err, models.ErrAlertNotFound) {
			log.Warn("Attempted to approve a non-existent alert")
			return nil, fmt.Errorf("service: alert with id %d not found for approve: %w", id, err)
		}
		log.WithError(err).Error("Failed to approve alert in repository")
		return nil, fmt.Errorf("service: could not approve alert: %w", err)
	}

	// Сбой публикации не отменяет одобрение
	if s.publisher != nil && alert.ApprovedAt != nil {
		event := webhook.ApprovalEvent{
			EventID:        uuid.New(),
			AlertID:        alert.ID,
			Urgency:        alert.Urgency,
			IssueType:      alert.IssueType,
			PeopleAffected: alert.PeopleAffected,
			TextLocation:   alert.TextLocation,
			AdminNote:      alert.AdminNote,
			ApprovedAt:     *alert.ApprovedAt,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish approval event")
		}
	}

	log.Info("Alert approved successfully")
	return alert, nil
}

// ListAlerts возвращает все заявки в порядке поступления
func (s *alertService) ListAlerts(ctx context.Context) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListAlerts",
	})
	log.Info("Listing alerts")

	alerts, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

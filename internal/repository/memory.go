package repository

import (
	"context"
	"sync"
	"time"

	"github.com/dmarochko/emergency_alert_system/internal/models"
	"github.com/dmarochko/emergency_alert_system/internal/service"
)

// MemoryAlertRepository хранит заявки в памяти процесса.
// Коллекция только пополняется; id заявки равен её позиции на момент вставки.
// Вычисление id и добавление выполняются под одним мьютексом, поэтому
// id идут подряд без пропусков и дубликатов при конкурентных запросах.
type MemoryAlertRepository struct {
	mu     sync.Mutex
	alerts []models.Alert
}

func NewMemoryAlertRepository() service.AlertRepository {
	return &MemoryAlertRepository{
		alerts: make([]models.Alert, 0),
	}
}

// Create присваивает заявке id и время создания и добавляет её в коллекцию
func (r *MemoryAlertRepository) Create(_ context.Context, alert *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	alert.ID = len(r.alerts)
	alert.CreatedAt = time.Now()
	r.alerts = append(r.alerts, *alert)
	return nil
}

// Approve переводит заявку в статус Approved.
// Повторное одобрение не запрещено: заметка и время перезаписываются.
func (r *MemoryAlertRepository) Approve(_ context.Context, id int, adminNote string) (*models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id < 0 || id >= len(r.alerts) {
		return nil, models.ErrAlertNotFound
	}

	now := time.Now()
	r.alerts[id].Status = models.StatusApproved
	r.alerts[id].AdminNote = adminNote
	r.alerts[id].ApprovedAt = &now

	approved := r.alerts[id]
	return &approved, nil
}

// List возвращает снимок всех заявок в порядке поступления
func (r *MemoryAlertRepository) List(_ context.Context) ([]*models.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	alerts := make([]*models.Alert, len(r.alerts))
	for i := range r.alerts {
		alert := r.alerts[i]
		alerts[i] = &alert
	}
	return alerts, nil
}

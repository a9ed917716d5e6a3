package v1

import (
	"time"

	"github.com/dmarochko/emergency_alert_system/internal/models"
)

// SubmitReportRequest DTO для подачи обращения о чрезвычайной ситуации
// @Description DTO для подачи обращения о чрезвычайной ситуации
type SubmitReportRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
	Type string `json:"type,omitempty" validate:"max=255"`
	// Message - свободный текст на любом языке, вход движка структурирования
	Message string `json:"message" validate:"required"`
	// Координаты передаются как есть, без проверки
	Latitude  string `json:"latitude,omitempty"`
	Longitude string `json:"longitude,omitempty"`
}

// ApproveAlertRequest DTO для одобрения заявки
// @Description DTO для одобрения заявки
type ApproveAlertRequest struct {
	AdminNote string `json:"admin_note" validate:"max=1000"`
}

// AlertResponse DTO для ответа с информацией о заявке
// @Description DTO для ответа с информацией о заявке
type AlertResponse struct {
	ID                int                `json:"id"`
	ReporterName      string             `json:"reporter_name"`
	ReporterType      string             `json:"reporter_type,omitempty"`
	RawMessage        string             `json:"raw_message"`
	TranslatedMessage string             `json:"translated_message"`
	Urgency           models.Urgency     `json:"urgency"`
	IssueType         models.IssueType   `json:"issue_type"`
	PeopleAffected    *int               `json:"people_affected,omitempty"`
	TextLocation      *string            `json:"text_location,omitempty"`
	Latitude          string             `json:"latitude,omitempty"`
	Longitude         string             `json:"longitude,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	Status            models.AlertStatus `json:"status"`
	AdminNote         string             `json:"admin_note,omitempty"`
	ApprovedAt        *time.Time         `json:"approved_at,omitempty"`
}

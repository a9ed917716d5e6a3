package models

import (
	"errors"
	"time"
)

// Urgency — уровень срочности, извлечённый из текста обращения
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// IssueType — категория происшествия, извлечённая из текста обращения
type IssueType string

const (
	IssueFire        IssueType = "fire"
	IssueMedical     IssueType = "medical"
	IssueFlood       IssueType = "flood"
	IssueEarthquake  IssueType = "earthquake"
	IssuePowerOutage IssueType = "power_outage"
	IssueUnknown     IssueType = "unknown"
)

// AlertStatus — статус жизненного цикла заявки.
// Единственный допустимый переход: Pending -> Approved.
type AlertStatus string

const (
	StatusPending  AlertStatus = "Pending"
	StatusApproved AlertStatus = "Approved"
)

// ErrAlertNotFound возвращается при обращении к несуществующему id заявки
var ErrAlertNotFound = errors.New("alert not found")

// Alert представляет обращение о чрезвычайной ситуации.
// ID равен позиции записи в коллекции на момент создания и никогда не переиспользуется.
// RawMessage и TranslatedMessage заполняются один раз при создании и не изменяются.
type Alert struct {
	ID                int         `json:"id"`
	ReporterName      string      `json:"reporter_name"`
	ReporterType      string      `json:"reporter_type"`
	RawMessage        string      `json:"raw_message"`
	TranslatedMessage string      `json:"translated_message"`
	Urgency           Urgency     `json:"urgency"`
	IssueType         IssueType   `json:"issue_type"`
	PeopleAffected    *int        `json:"people_affected,omitempty"`
	TextLocation      *string     `json:"text_location,omitempty"`
	Latitude          string      `json:"latitude"`
	Longitude         string      `json:"longitude"`
	CreatedAt         time.Time   `json:"created_at"`
	Status            AlertStatus `json:"status"`
	AdminNote         string      `json:"admin_note,omitempty"`
	ApprovedAt        *time.Time  `json:"approved_at,omitempty"`
}

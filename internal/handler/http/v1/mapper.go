package v1

import "github.com/dmarochko/emergency_alert_system/internal/models"

// DTOToAlertModel преобразует DTO подачи обращения в доменную модель.
// Структурированные поля заполняет сервис.
func DTOToAlertModel(dto SubmitReportRequest) *models.Alert {
	return &models.Alert{
		ReporterName: dto.Name,
		ReporterType: dto.Type,
		RawMessage:   dto.Message,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
	}
}

// ModelToAlertResponse преобразует доменную модель в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:                model.ID,
		ReporterName:      model.ReporterName,
		ReporterType:      model.ReporterType,
		RawMessage:        model.RawMessage,
		TranslatedMessage: model.TranslatedMessage,
		Urgency:           model.Urgency,
		IssueType:         model.IssueType,
		PeopleAffected:    model.PeopleAffected,
		TextLocation:      model.TextLocation,
		Latitude:          model.Latitude,
		Longitude:         model.Longitude,
		CreatedAt:         model.CreatedAt,
		Status:            model.Status,
		AdminNote:         model.AdminNote,
		ApprovedAt:        model.ApprovedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}

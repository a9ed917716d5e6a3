package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты подачи и просмотра обращений
	reports := api.Group("/reports")
	{
		reports.POST("", h.submitReport)
		reports.GET("", h.listReports)
	}

	// Маршруты панели проверяющего
	admin := api.Group("/admin")
	{
		admin.GET("/reports", h.listAdminReports)
		admin.POST("/reports/:id/approve", h.approveAlert)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

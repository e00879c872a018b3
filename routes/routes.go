package routes

import (
	"github.com/gin-gonic/gin"

	"finance-assistant-api/handlers"
	"finance-assistant-api/services"
)

// SetupChatRoutes wires the conversational endpoint.
func SetupChatRoutes(rg *gin.RouterGroup, ai *services.GeminiService) {
	h := &handlers.ChatHandler{AI: ai}

	rg.POST("/chat", h.Chat)
}

// SetupReportRoutes wires expense report generation and downloads.
func SetupReportRoutes(rg *gin.RouterGroup) {
	h := &handlers.ReportHandler{}

	rg.POST("/download-excel", h.DownloadExcel)
	rg.GET("/download/excel", h.DownloadSampleExcel)
	rg.GET("/download/csv", h.DownloadSampleCSV)
	rg.POST("/generate-excel", h.GenerateExcel)
	rg.POST("/view-summary", h.ViewSummary)
	rg.GET("/test-excel", h.TestExcel)
}

// SetupTipRoutes wires the daily-tip endpoints.
func SetupTipRoutes(rg *gin.RouterGroup, tips *services.TipService) {
	h := &handlers.TipHandler{Tips: tips}

	rg.GET("/daily-tip", h.GetDailyTip)
	rg.POST("/daily-tip", h.PostDailyTip)
}

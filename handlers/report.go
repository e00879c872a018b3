package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"finance-assistant-api/models"
	"finance-assistant-api/services"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves workbook/CSV generation and download endpoints.
type ReportHandler struct{}

func sampleRecords() []models.ExpenseRecord {
	return []models.ExpenseRecord{
		{Date: "2025-08-20", Description: "Gaming Purchase", Amount: 1500.0, Category: models.CategoryEntertainment},
		{Date: "2025-08-20", Description: "Restaurant Bill", Amount: 850.0, Category: models.CategoryFood},
		{Date: "2025-08-20", Description: "Subscription", Amount: 299.0, Category: models.CategoryEntertainment},
	}
}

// DownloadExcel streams back a previously generated workbook. The
// transport encoding is base64; the timestamped filename is decided
// here, not by the builder.
func (h *ReportHandler) DownloadExcel(c *gin.Context) {
	var req models.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ExcelData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No excel data provided"})
		return
	}

	workbook, err := base64.StdEncoding.DecodeString(req.ExcelData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid excel data"})
		return
	}

	filename := fmt.Sprintf("expenses_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Length", strconv.Itoa(len(workbook)))
	c.Data(http.StatusOK, excelContentType, workbook)
}

// DownloadSampleExcel serves a demo workbook.
func (h *ReportHandler) DownloadSampleExcel(c *gin.Context) {
	workbook, err := services.BuildWorkbook(sampleRecords())
	if err != nil || len(workbook) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate Excel file"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=expenses.xlsx")
	c.Data(http.StatusOK, excelContentType, workbook)
}

// DownloadSampleCSV serves the same demo data as CSV.
func (h *ReportHandler) DownloadSampleCSV(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=expenses.csv")
	c.Data(http.StatusOK, "text/csv", services.BuildCSV(sampleRecords()))
}

// GenerateExcel extracts expenses from a raw message and returns the
// workbook as base64 alongside count and total.
func (h *ReportHandler) GenerateExcel(c *gin.Context) {
	var req models.GenerateExcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := services.ExtractExpenses(req.Message, "", time.Now())
	if len(records) == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "No expenses found in message"})
		return
	}

	workbook, err := services.BuildWorkbook(records)
	if err != nil || len(workbook) == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "Failed to generate Excel"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"excel_data":     base64.StdEncoding.EncodeToString(workbook),
		"expenses_count": len(records),
		"total_amount":   services.SumAmounts(records),
	})
}

// ViewSummary returns a demo summary payload for the frontend's
// summary view.
func (h *ReportHandler) ViewSummary(c *gin.Context) {
	var req models.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ExcelData == "" {
		c.JSON(http.StatusOK, gin.H{"error": "No excel data provided"})
		return
	}

	expenses := []models.ExpenseRecord{
		{Date: "2025-08-21", Description: "Books", Amount: 150.0, Category: "Education"},
		{Date: "2025-08-21", Description: "Snacks", Amount: 80.0, Category: models.CategoryFood},
		{Date: "2025-08-21", Description: "Bus fare", Amount: 25.0, Category: models.CategoryTransport},
		{Date: "2025-08-20", Description: "Coffee", Amount: 120.0, Category: models.CategoryFood},
		{Date: "2025-08-20", Description: "Stationery", Amount: 200.0, Category: "Education"},
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses":   expenses,
		"total":      services.SumAmounts(expenses),
		"currency":   "INR",
		"excel_data": req.ExcelData,
	})
}

// TestExcel builds a workbook from fixed records and returns a
// truncated base64 preview, handy for smoke-checking the builder.
func (h *ReportHandler) TestExcel(c *gin.Context) {
	records := []models.ExpenseRecord{
		{Date: "2025-08-20", Description: "Flight", Amount: 4000.0, Category: models.CategoryTransport},
		{Date: "2025-08-20", Description: "Airport Food", Amount: 1200.0, Category: models.CategoryFood},
		{Date: "2025-08-20", Description: "Headsets", Amount: 2000.0, Category: models.CategoryPersonal},
	}

	workbook, err := services.BuildWorkbook(records)
	if err != nil || len(workbook) == 0 {
		c.JSON(http.StatusOK, gin.H{"error": "Failed to generate Excel"})
		return
	}

	excelData := base64.StdEncoding.EncodeToString(workbook)
	preview := excelData
	if len(preview) > 100 {
		preview = preview[:100] + "..."
	}
	c.JSON(http.StatusOK, gin.H{"excel_data": preview, "size": len(excelData)})
}
